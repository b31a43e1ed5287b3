package timeparse

import (
	"errors"
	"testing"
	"time"
)

// reference is a Wednesday at 10:00 AM.
var reference = time.Date(2024, time.June, 5, 10, 0, 0, 0, time.UTC)

func TestParseRelative(t *testing.T) {
	t.Parallel()

	cases := map[string]time.Time{
		"in 30 seconds": reference.Add(30 * time.Second),
		"in 1 second":   reference.Add(1 * time.Second),
		"in 5 minutes":  reference.Add(5 * time.Minute),
		"in 90 minutes": reference.Add(90 * time.Minute),
		"in 2 hours":    reference.Add(2 * time.Hour),
		"in 3 days":     reference.AddDate(0, 0, 3),
		"in 1 day":      reference.AddDate(0, 0, 1),
	}

	for phrase, want := range cases {
		got, err := Parse(phrase, reference)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", phrase, err)
		}
		if !got.Equal(want) {
			t.Fatalf("Parse(%q) = %v, want %v", phrase, got, want)
		}
	}
}

func TestParseClock(t *testing.T) {
	t.Parallel()

	cases := map[string]time.Time{
		// Still ahead today.
		"at 8 pm":     time.Date(2024, time.June, 5, 20, 0, 0, 0, time.UTC),
		"at 10:30":    time.Date(2024, time.June, 5, 10, 30, 0, 0, time.UTC),
		"at 11:59 am": time.Date(2024, time.June, 5, 11, 59, 0, 0, time.UTC),
		"at 12 pm":    time.Date(2024, time.June, 5, 12, 0, 0, 0, time.UTC),
		"at 23":       time.Date(2024, time.June, 5, 23, 0, 0, 0, time.UTC),
		// Already passed (or exactly now): rolls to the next day.
		"at 9 am":     time.Date(2024, time.June, 6, 9, 0, 0, 0, time.UTC),
		"at 10:00 am": time.Date(2024, time.June, 6, 10, 0, 0, 0, time.UTC),
		"at 12 am":    time.Date(2024, time.June, 6, 0, 0, 0, 0, time.UTC),
	}

	for phrase, want := range cases {
		got, err := Parse(phrase, reference)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", phrase, err)
		}
		if !got.Equal(want) {
			t.Fatalf("Parse(%q) = %v, want %v", phrase, got, want)
		}
	}
}

func TestParseTomorrow(t *testing.T) {
	t.Parallel()

	got, err := Parse("tomorrow", reference)
	if err != nil {
		t.Fatalf("Parse(tomorrow) returned error: %v", err)
	}
	if want := reference.AddDate(0, 0, 1); !got.Equal(want) {
		t.Fatalf("Parse(tomorrow) = %v, want same time-of-day next day %v", got, want)
	}

	// A clock time with "tomorrow" lands on tomorrow's date with no
	// further rollover, even when the time-of-day is earlier than now.
	got, err = Parse("tomorrow at 9 am", reference)
	if err != nil {
		t.Fatalf("Parse(tomorrow at 9 am) returned error: %v", err)
	}
	if want := time.Date(2024, time.June, 6, 9, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("Parse(tomorrow at 9 am) = %v, want %v", got, want)
	}
}

func TestParseWeekday(t *testing.T) {
	t.Parallel()

	// Naming today's weekday means next week, never today.
	got, err := Parse("wednesday", reference)
	if err != nil {
		t.Fatalf("Parse(wednesday) returned error: %v", err)
	}
	if want := reference.AddDate(0, 0, 7); !got.Equal(want) {
		t.Fatalf("Parse(wednesday) = %v, want %v", got, want)
	}

	got, err = Parse("friday", reference)
	if err != nil {
		t.Fatalf("Parse(friday) returned error: %v", err)
	}
	if want := reference.AddDate(0, 0, 2); !got.Equal(want) {
		t.Fatalf("Parse(friday) = %v, want %v", got, want)
	}

	got, err = Parse("on friday at 3 pm", reference)
	if err != nil {
		t.Fatalf("Parse(on friday at 3 pm) returned error: %v", err)
	}
	if want := time.Date(2024, time.June, 7, 15, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("Parse(on friday at 3 pm) = %v, want %v", got, want)
	}

	got, err = Parse("monday", reference)
	if err != nil {
		t.Fatalf("Parse(monday) returned error: %v", err)
	}
	if want := reference.AddDate(0, 0, 5); !got.Equal(want) {
		t.Fatalf("Parse(monday) = %v, want %v", got, want)
	}
}

func TestParseFailures(t *testing.T) {
	t.Parallel()

	phrases := []string{
		"",
		"whenever",
		"at 25",
		"at 8:75",
		"at 13 pm",
		"next blue moon",
	}

	for _, phrase := range phrases {
		if _, err := Parse(phrase, reference); !errors.Is(err, ErrNoMatch) {
			t.Fatalf("Parse(%q) = %v, want ErrNoMatch", phrase, err)
		}
	}
}

func TestParseIsPure(t *testing.T) {
	t.Parallel()

	first, err1 := Parse("in 45 minutes", reference)
	second, err2 := Parse("in 45 minutes", reference)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if !first.Equal(second) {
		t.Fatalf("equal inputs produced different outputs: %v vs %v", first, second)
	}
}

func TestUntil(t *testing.T) {
	t.Parallel()

	cases := map[time.Duration]string{
		30 * time.Second:             "in 30 seconds",
		time.Minute:                  "in 1 minute",
		5 * time.Minute:              "in 5 minutes",
		2 * time.Hour:                "in 2 hours",
		2*time.Hour + 15*time.Minute: "in 2 hours and 15 minutes",
		26 * time.Hour:               "in 1 day and 2 hours",
		48 * time.Hour:               "in 2 days",
	}

	for d, want := range cases {
		if got := Until(d); got != want {
			t.Fatalf("Until(%v) = %q, want %q", d, got, want)
		}
	}
}
