package validator

import (
	"strconv"
	"strings"
	"time"
)

// timelineDateLayouts mirrors the documented permissive-parser formats
// (ISO, MM/DD/YYYY, "Month D, YYYY", "Mon D, YYYY"); this is a separate
// implementation from pkg/consolidator's, deliberately, so the timeline
// validator doesn't depend on (and can't silently diverge in lockstep
// with) the consolidator's own parsing bugs.
var timelineDateLayouts = []string{
	"2006-01-02",
	"1/2/2006", "01/02/2006",
	"January 2, 2006", "January 2 2006",
	"Jan 2, 2006", "Jan. 2, 2006", "Jan 2 2006",
}

func parseTimelineDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timelineDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return parseDayMonthYearFormat(s)
}

func parseDayMonthYearFormat(s string) (time.Time, bool) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(fields[0])
	if err != nil {
		return time.Time{}, false
	}
	month := monthFromName(fields[1])
	if month == 0 {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(fields[2])
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), true
}

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March, "apr": time.April,
	"may": time.May, "jun": time.June, "jul": time.July, "aug": time.August,
	"sep": time.September, "oct": time.October, "nov": time.November, "dec": time.December,
}

func monthFromName(s string) time.Month {
	s = strings.ToLower(s)
	if len(s) < 3 {
		return 0
	}
	return monthsByPrefix[s[:3]]
}
