// Package timeparse turns free-text time phrases like "in 5 minutes",
// "at 8 pm", "tomorrow at 9" or "friday" into concrete future timestamps.
// Parsing is a pure function of the phrase and the reference time.
package timeparse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrNoMatch is returned (wrapped) whenever a phrase cannot be resolved
// into a time. Callers must treat it as "could not determine a time" and
// ask the user for clarification, never substitute a default.
var ErrNoMatch = errors.New("unrecognized time phrase")

var (
	relativeRe = regexp.MustCompile(`in\s+(\d+)\s*(second|minute|hour|day)s?`)
	clockRe    = regexp.MustCompile(`at\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)
)

var weekdays = []struct {
	name string
	day  time.Weekday
}{
	{"monday", time.Monday},
	{"tuesday", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"thursday", time.Thursday},
	{"friday", time.Friday},
	{"saturday", time.Saturday},
	{"sunday", time.Sunday},
}

// Parse resolves phrase against the reference time now. Rules are tried in
// a fixed order and the first match wins: relative offsets, "tomorrow"
// (with an optional clock time), weekday names (with an optional clock
// time), then a bare clock time with next-day rollover. Weekday resolution
// is strictly future: naming today's weekday means next week.
func Parse(phrase string, now time.Time) (time.Time, error) {
	lower := strings.ToLower(strings.TrimSpace(phrase))

	if m := relativeRe.FindStringSubmatch(lower); m != nil {
		amount, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: bad amount %q", ErrNoMatch, m[1])
		}
		switch m[2] {
		case "second":
			return now.Add(time.Duration(amount) * time.Second), nil
		case "minute":
			return now.Add(time.Duration(amount) * time.Minute), nil
		case "hour":
			return now.Add(time.Duration(amount) * time.Hour), nil
		case "day":
			return now.AddDate(0, 0, amount), nil
		}
	}

	if strings.Contains(lower, "tomorrow") {
		tomorrow := now.AddDate(0, 0, 1)
		if hour, minute, ok, err := clockFields(lower); err != nil {
			return time.Time{}, err
		} else if ok {
			return atClock(tomorrow, hour, minute), nil
		}
		return tomorrow, nil
	}

	for _, wd := range weekdays {
		if !strings.Contains(lower, wd.name) {
			continue
		}
		daysAhead := (int(wd.day) - int(now.Weekday()) + 7) % 7
		if daysAhead == 0 {
			daysAhead = 7
		}
		target := now.AddDate(0, 0, daysAhead)
		if hour, minute, ok, err := clockFields(lower); err != nil {
			return time.Time{}, err
		} else if ok {
			return atClock(target, hour, minute), nil
		}
		return target, nil
	}

	if hour, minute, ok, err := clockFields(lower); err != nil {
		return time.Time{}, err
	} else if ok {
		target := atClock(now, hour, minute)
		if !target.After(now) {
			target = target.AddDate(0, 0, 1)
		}
		return target, nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrNoMatch, phrase)
}

// clockFields extracts an "at H[:MM] [am|pm]" clause. ok reports whether a
// clause was present; a present but invalid clause is an error.
func clockFields(lower string) (hour, minute int, ok bool, err error) {
	m := clockRe.FindStringSubmatch(lower)
	if m == nil {
		return 0, 0, false, nil
	}

	hour, err = strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false, fmt.Errorf("%w: bad hour %q", ErrNoMatch, m[1])
	}
	if m[2] != "" {
		minute, err = strconv.Atoi(m[2])
		if err != nil || minute > 59 {
			return 0, 0, false, fmt.Errorf("%w: bad minutes %q", ErrNoMatch, m[2])
		}
	}

	switch m[3] {
	case "pm":
		if hour < 1 || hour > 12 {
			return 0, 0, false, fmt.Errorf("%w: hour %d out of range for pm", ErrNoMatch, hour)
		}
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour < 1 || hour > 12 {
			return 0, 0, false, fmt.Errorf("%w: hour %d out of range for am", ErrNoMatch, hour)
		}
		if hour == 12 {
			hour = 0
		}
	default:
		if hour > 23 {
			return 0, 0, false, fmt.Errorf("%w: hour %d out of range", ErrNoMatch, hour)
		}
	}

	return hour, minute, true, nil
}

func atClock(date time.Time, hour, minute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}

// Until renders a duration as friendly text for reminder confirmations,
// e.g. "in 2 hours and 15 minutes".
func Until(d time.Duration) string {
	seconds := int(d.Seconds())
	switch {
	case seconds < 60:
		return fmt.Sprintf("in %d seconds", seconds)
	case seconds < 3600:
		minutes := seconds / 60
		return fmt.Sprintf("in %d %s", minutes, plural("minute", minutes))
	case seconds < 86400:
		hours := seconds / 3600
		minutes := (seconds % 3600) / 60
		if minutes > 0 {
			return fmt.Sprintf("in %d %s and %d %s", hours, plural("hour", hours), minutes, plural("minute", minutes))
		}
		return fmt.Sprintf("in %d %s", hours, plural("hour", hours))
	default:
		days := seconds / 86400
		hours := (seconds % 86400) / 3600
		if hours > 0 {
			return fmt.Sprintf("in %d %s and %d %s", days, plural("day", days), hours, plural("hour", hours))
		}
		return fmt.Sprintf("in %d %s", days, plural("day", days))
	}
}

func plural(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
