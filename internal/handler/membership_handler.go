package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ama-chapter/portal/internal/dto"
	"github.com/ama-chapter/portal/internal/models"
	"github.com/ama-chapter/portal/internal/service"
	"github.com/ama-chapter/portal/internal/session"
)

type MembershipHandler struct {
	api      service.MembershipBackend
	sessions *session.Store
}

func NewMembershipHandler(api service.MembershipBackend, sessions *session.Store) *MembershipHandler {
	return &MembershipHandler{api: api, sessions: sessions}
}

func (h *MembershipHandler) RegisterRoutes(g *echo.Group, submitLimiter echo.MiddlewareFunc) {
	g.GET("/membership/plans", h.ListPlans)
	g.GET("/membership/checkout", h.GetCheckout)
	g.PATCH("/membership/checkout", h.UpdateCheckout)
	if submitLimiter != nil {
		g.POST("/membership/checkout", h.SubmitCheckout, submitLimiter)
	} else {
		g.POST("/membership/checkout", h.SubmitCheckout)
	}
}

func (h *MembershipHandler) ListPlans(c echo.Context) error {
	plans := make([]dto.PlanResponse, 0, len(service.MembershipPlans))
	for id, plan := range service.MembershipPlans {
		plans = append(plans, dto.PlanResponse{ID: string(id), Plan: plan})
	}
	return c.JSON(http.StatusOK, plans)
}

func (h *MembershipHandler) GetCheckout(c echo.Context) error {
	state := visitorSession(c, h.sessions)
	return c.JSON(http.StatusOK, state.Checkout.Snapshot())
}

func (h *MembershipHandler) UpdateCheckout(c echo.Context) error {
	var req dto.CheckoutUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	state := visitorSession(c, h.sessions)

	if req.PaymentMethod != nil {
		method := models.PaymentMethod(*req.PaymentMethod)
		switch method {
		case models.PaymentCard, models.PaymentPaypal, models.PaymentCash:
			state.Checkout.SetPaymentMethod(method)
		default:
			return echo.NewHTTPError(http.StatusBadRequest, "payment method must be card, paypal or cash")
		}
	}

	updated := state.Checkout.Apply(service.CheckoutUpdate{
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Email:                req.Email,
		Phone:                req.Phone,
		Notes:                req.Notes,
		TransactionReference: req.TransactionReference,
		CardNumber:           req.CardNumber,
		CardExpiry:           req.CardExpiry,
		CardCvc:              req.CardCvc,
	})
	return c.JSON(http.StatusOK, updated)
}

func (h *MembershipHandler) SubmitCheckout(c echo.Context) error {
	state := visitorSession(c, h.sessions)

	checkoutState, err := state.Checkout.Submit(c.Request().Context(), h.api)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, checkoutState)
}
