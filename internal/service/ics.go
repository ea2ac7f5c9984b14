package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ama-chapter/portal/internal/models"
)

var (
	newlinePattern    = regexp.MustCompile(`\r?\n`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

func formatCalendarTime(t time.Time) string {
	return t.UTC().Format("20060102T150405") + "Z"
}

// BuildICS renders a minimal single-event calendar file. The UID falls back
// to title-date for events not yet assigned an id, and finally to a random
// uuid so two distinct untitled events never collide.
func BuildICS(event models.Event, now time.Time) []byte {
	timeRange := ParseEventTimeRange(event.Date, event.Time, now)

	uid := event.ID
	if uid == "" {
		uid = fmt.Sprintf("%s-%s", event.Title, event.Date)
	}
	if strings.TrimSpace(uid) == "" || uid == "-" {
		uid = uuid.NewString()
	}

	description := newlinePattern.ReplaceAllString(event.Description, `\n`)

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Chapter Portal//Event Calendar//EN",
		"CALSCALE:GREGORIAN",
		"BEGIN:VEVENT",
		"UID:" + uid,
		"DTSTAMP:" + formatCalendarTime(now),
		"DTSTART:" + formatCalendarTime(timeRange.Start),
		"DTEND:" + formatCalendarTime(timeRange.End),
		"SUMMARY:" + event.Title,
		"DESCRIPTION:" + description,
		"LOCATION:" + event.Location,
		"END:VEVENT",
		"END:VCALENDAR",
	}

	return []byte(strings.Join(lines, "\r\n"))
}

// CalendarFilename slugs the event title into a download filename.
func CalendarFilename(event models.Event) string {
	slug := strings.ToLower(whitespacePattern.ReplaceAllString(strings.TrimSpace(event.Title), "-"))
	if slug == "" {
		slug = "event"
	}
	return slug + ".ics"
}
