package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/ama-chapter/portal/config"
	"github.com/ama-chapter/portal/internal/handler"
	"github.com/ama-chapter/portal/internal/middleware"
	"github.com/ama-chapter/portal/internal/service"
	"github.com/ama-chapter/portal/internal/session"
	"github.com/ama-chapter/portal/pkg/backend"
	"github.com/ama-chapter/portal/pkg/media"
)

const sessionIdleTTL = 30 * time.Minute

func main() {
	cfg := config.Load()

	resolver := media.NewResolver(cfg.AssetBase())
	client := backend.NewClient(cfg.APIBaseURL, backend.NewMemoryTokenStore())

	if cfg.SkipBackendValidation {
		log.Printf("[Backend] validation skipped")
	} else {
		result := client.Validate(context.Background())
		switch {
		case !result.Valid:
			log.Printf("[Backend] unreachable: %s", result.Error)
		case result.Error != "":
			log.Printf("[Backend] reachable with warning: %s", result.Error)
		default:
			log.Printf("[Backend] reachable at %s", cfg.APIBaseURL)
		}
	}

	content := service.NewContentService(client, resolver, cfg.ContentTTL())
	rsvpSvc := service.NewRsvpService(client, content)
	sessions := session.NewStore(sessionIdleTTL)

	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "chapter-portal"})
	})

	// Public submission endpoints are rate limited per client IP.
	submitLimiter := echoMw.RateLimiter(echoMw.NewRateLimiterMemoryStore(rate.Limit(5)))

	api := e.Group("/api/v1")
	handler.NewRsvpHandler(rsvpSvc, sessions).RegisterRoutes(api, submitLimiter)
	handler.NewMembershipHandler(client, sessions).RegisterRoutes(api, submitLimiter)
	handler.NewContentHandler(content).RegisterRoutes(api)
	handler.NewAdminHandler(client, resolver).RegisterRoutes(api.Group("/admin"))

	log.Printf("Chapter Portal starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
