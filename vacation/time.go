package vacation

import (
	"fmt"
	"time"
)

// =============================================================================
// DATE - calendar date at day granularity (the only granularity here)
// =============================================================================

// Date is a calendar date. The zero value is "no date".
// All arithmetic is calendar-correct (AddDate), never hour math, so leap
// years behave: 2024-02-28 + 1 year = 2025-02-28.
type Date struct {
	t time.Time
}

const isoDateLayout = "2006-01-02"

// localizedDateLayout is the pt-BR display form used by the UI.
const localizedDateLayout = "02/01/2006"

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(isoDateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t: t}, nil
}

// MustDate parses an ISO date or returns the zero Date. For tests and seeds.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		return Date{}
	}
	return d
}

// DateOf truncates a time.Time to its UTC calendar date.
func DateOf(t time.Time) Date {
	u := t.UTC()
	return NewDate(u.Year(), u.Month(), u.Day())
}

// Comparison
func (d Date) Before(other Date) bool        { return d.t.Before(other.t) }
func (d Date) After(other Date) bool         { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool         { return d.t.Equal(other.t) }
func (d Date) BeforeOrEqual(other Date) bool { return !d.t.After(other.t) }
func (d Date) AfterOrEqual(other Date) bool  { return !d.t.Before(other.t) }
func (d Date) IsZero() bool                  { return d.t.IsZero() }

// Arithmetic
func (d Date) AddDays(n int) Date  { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) AddYears(n int) Date { return Date{t: d.t.AddDate(n, 0, 0)} }

// Time returns the date as a UTC midnight time.Time (for SQL drivers).
func (d Date) Time() time.Time { return d.t }

// MonthKey returns the YYYY-MM bucket key. Lexicographic order on these
// keys is chronological order, which the dashboard relies on.
func (d Date) MonthKey() string { return d.t.Format("2006-01") }

func (d Date) String() string { return d.t.Format(isoDateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == `""` || s == "null" {
		*d = Date{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date json: %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// =============================================================================
// PERIOD - inclusive [Start, End] window
// =============================================================================

type Period struct {
	Start Date
	End   Date
}

// Valid reports End >= Start. Callers treat a failing period as a
// validation error, never as a negative duration.
func (p Period) Valid() bool {
	return !p.Start.IsZero() && !p.End.IsZero() && p.End.AfterOrEqual(p.Start)
}

// Contains returns true if d is within [Start, End].
func (p Period) Contains(d Date) bool {
	return d.AfterOrEqual(p.Start) && d.BeforeOrEqual(p.End)
}

func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}

// =============================================================================
// DAY COUNTING AND THE CONCESSIVE-PERIOD RULE
// =============================================================================

// DaysBetween returns the number of whole days from 'from' to 'to'.
func DaysBetween(from, to Date) int {
	return int(to.t.Sub(from.t).Hours() / 24)
}

// InclusiveDayCount counts the calendar days spanning [start, end],
// including both endpoints: a single-day window counts as 1.
// If end < start the result is non-positive; callers must reject it.
func InclusiveDayCount(start, end Date) int {
	return DaysBetween(start, end) + 1
}

// ConcessivePeriod derives the 12-month window during which accrued
// vacation must be used: it opens the day after the acquisition period
// ends and stays open for exactly one year, inclusive. The year is added
// calendar-correct, not as 365 days. Only the acquisition end matters;
// the start is accepted to mirror the stored window.
func ConcessivePeriod(_, acquisitionEnd Date) Period {
	start := acquisitionEnd.AddDays(1)
	return Period{Start: start, End: start.AddYears(1).AddDays(-1)}
}

// =============================================================================
// LOCALIZED FORMATTING - ISO <-> dd/MM/yyyy, bijective for valid input
// =============================================================================

// LocalizeDate converts an ISO date to the dd/MM/yyyy display form.
// Returns "" for malformed input, never an error.
func LocalizeDate(iso string) string {
	d, err := ParseDate(iso)
	if err != nil {
		return ""
	}
	return d.t.Format(localizedDateLayout)
}

// ISODate converts a dd/MM/yyyy display date back to ISO form.
// Returns "" for malformed input. Round-trips with LocalizeDate.
func ISODate(localized string) string {
	t, err := time.Parse(localizedDateLayout, localized)
	if err != nil {
		return ""
	}
	return t.Format(isoDateLayout)
}
