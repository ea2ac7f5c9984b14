package service

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// timePattern tolerates "6", "6:30", "6 PM", "6:30pm" anywhere in the text.
var timePattern = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(AM|PM)?`)

type TimeRange struct {
	Start time.Time
	End   time.Time
}

var eventDateLayouts = []string{"2006-01-02", time.RFC3339}

func parseEventDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range eventDateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseTimeComponent resolves free-text like "6:00 PM" against the given
// base date. Text with no parseable time yields the base unchanged. A bare
// "12" with no meridiem is treated as noon; that heuristic is deliberate and
// should not be extended without product confirmation.
func parseTimeComponent(base time.Time, text string) time.Time {
	text = strings.TrimSpace(text)
	if text == "" {
		return base
	}

	m := timePattern.FindStringSubmatch(text)
	if m == nil || m[1] == "" {
		return base
	}

	hours, _ := strconv.Atoi(m[1])
	minutes := 0
	if m[2] != "" {
		minutes, _ = strconv.Atoi(m[2])
	}
	meridiem := strings.ToUpper(m[3])

	resolved := hours % 12
	if meridiem == "PM" {
		resolved += 12
	} else if meridiem == "" && hours == 12 {
		resolved = 12
	}

	return time.Date(base.Year(), base.Month(), base.Day(), resolved, minutes, 0, 0, base.Location())
}

// ParseEventTimeRange derives start/end timestamps from an event's ISO date
// and its free-text time range ("6:00 PM - 8:00 PM"). When the end is
// missing or not after the start, the event defaults to one hour. An
// unparseable date falls back to a one-hour range starting at now.
func ParseEventTimeRange(date, timeText string, now time.Time) TimeRange {
	base, ok := parseEventDate(date)
	if !ok {
		return TimeRange{Start: now, End: now.Add(time.Hour)}
	}

	startText, endText, _ := strings.Cut(timeText, "-")
	startText = strings.TrimSpace(startText)
	endText = strings.TrimSpace(endText)
	if startText == "" {
		startText = strings.TrimSpace(timeText)
	}

	start := parseTimeComponent(base, startText)
	end := parseTimeComponent(base, endText)

	if !end.After(start) {
		end = start.Add(time.Hour)
	}

	return TimeRange{Start: start, End: end}
}
