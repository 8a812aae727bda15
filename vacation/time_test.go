package vacation_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unchain0/sistema-ferias/vacation"
)

func TestInclusiveDayCount(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"single day counts as one", "2024-01-01", "2024-01-01", 1},
		{"full january", "2024-01-01", "2024-01-31", 31},
		{"across leap day", "2024-02-28", "2024-03-01", 3},
		{"across non-leap february", "2023-02-28", "2023-03-01", 2},
		{"full year 2024 (leap)", "2024-01-01", "2024-12-31", 366},
		{"end before start is non-positive", "2024-01-10", "2024-01-05", -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := vacation.InclusiveDayCount(vacation.MustDate(tt.start), vacation.MustDate(tt.end))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConcessivePeriod(t *testing.T) {
	t.Run("calendar year acquisition", func(t *testing.T) {
		// GIVEN: acquisition over calendar year 2023
		// WHEN: deriving the concessive window
		// THEN: it opens Jan 1 2024 and closes Dec 31 2024, inclusive
		p := vacation.ConcessivePeriod(vacation.MustDate("2023-01-01"), vacation.MustDate("2023-12-31"))
		assert.Equal(t, "2024-01-01", p.Start.String())
		assert.Equal(t, "2024-12-31", p.End.String())
	})

	t.Run("leap year acquisition end", func(t *testing.T) {
		// Acquisition ends Feb 28 2024: the window opens on the leap day
		// and the year-add must be calendar-correct, not +365 days.
		p := vacation.ConcessivePeriod(vacation.MustDate("2023-03-01"), vacation.MustDate("2024-02-28"))
		assert.Equal(t, "2024-02-29", p.Start.String())
		assert.Equal(t, "2025-02-28", p.End.String())
	})
}

func TestDateComparisonAndArithmetic(t *testing.T) {
	a := vacation.NewDate(2024, time.March, 10)
	b := vacation.NewDate(2024, time.March, 11)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.BeforeOrEqual(a))
	assert.True(t, a.AfterOrEqual(a))
	assert.True(t, a.AddDays(1).Equal(b))
	assert.Equal(t, "2025-03-10", a.AddYears(1).String())
	assert.Equal(t, "2024-03", a.MonthKey())
}

func TestParseDate_Invalid(t *testing.T) {
	for _, bad := range []string{"", "2024-13-01", "10/03/2024", "not-a-date"} {
		_, err := vacation.ParseDate(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := vacation.MustDate("2024-07-15")

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-07-15"`, string(raw))

	var back vacation.Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, d.Equal(back))

	var zero vacation.Date
	require.NoError(t, json.Unmarshal([]byte(`""`), &zero))
	assert.True(t, zero.IsZero())
}

func TestLocalizedDateFormatting(t *testing.T) {
	t.Run("round trip for valid input", func(t *testing.T) {
		iso := "2024-12-05"
		display := vacation.LocalizeDate(iso)
		assert.Equal(t, "05/12/2024", display)
		assert.Equal(t, iso, vacation.ISODate(display))
	})

	t.Run("malformed input yields empty marker", func(t *testing.T) {
		assert.Equal(t, "", vacation.LocalizeDate("2024-99-99"))
		assert.Equal(t, "", vacation.LocalizeDate("garbage"))
		assert.Equal(t, "", vacation.ISODate("31-12-2024"))
		assert.Equal(t, "", vacation.ISODate(""))
	})
}

func TestPeriodValidAndContains(t *testing.T) {
	p := vacation.Period{Start: vacation.MustDate("2024-01-10"), End: vacation.MustDate("2024-01-20")}

	assert.True(t, p.Valid())
	assert.True(t, p.Contains(vacation.MustDate("2024-01-10")))
	assert.True(t, p.Contains(vacation.MustDate("2024-01-20")))
	assert.False(t, p.Contains(vacation.MustDate("2024-01-21")))

	inverted := vacation.Period{Start: p.End, End: p.Start}
	assert.False(t, inverted.Valid())
	assert.False(t, vacation.Period{}.Valid())
}
