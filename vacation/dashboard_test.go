package vacation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unchain0/sistema-ferias/vacation"
)

func pro(id, name string) vacation.Professional {
	return vacation.Professional{
		ID:             id,
		UserID:         "user-1",
		Name:           name,
		MonthlyRevenue: vacation.MustParseDecimal("3000"),
	}
}

func vac(proID, usageStart, usageEnd string, days int, deduction string) vacation.VacationPeriod {
	return vacation.VacationPeriod{
		ID:               "vac-" + proID + "-" + usageStart,
		ProfessionalID:   proID,
		UserID:           "user-1",
		UsageStart:       vacation.MustDate(usageStart),
		UsageEnd:         vacation.MustDate(usageEnd),
		TotalDays:        days,
		RevenueDeduction: vacation.MustParseDecimal(deduction),
	}
}

func TestAggregate_TotalsAndZeroDayExclusion(t *testing.T) {
	// GIVEN: P1 with 3 vacation days ($100 impact), P2 with none
	pros := []vacation.Professional{pro("p1", "Ana"), pro("p2", "Bruno")}
	vacs := []vacation.VacationPeriod{vac("p1", "2024-01-10", "2024-01-12", 3, "100")}

	data := vacation.Aggregate(pros, vacs, nil)

	// THEN: both professionals count, only P1 appears in the impact list
	assert.Equal(t, 2, data.TotalProfessionals)
	assert.Equal(t, 3, data.TotalVacationDays)
	assert.True(t, data.TotalRevenueImpact.Equal(vacation.MustParseDecimal("100")))
	require.Len(t, data.ProfessionalImpacts, 1)
	assert.Equal(t, "Ana", data.ProfessionalImpacts[0].ProfessionalName)
	assert.Equal(t, 3, data.ProfessionalImpacts[0].TotalDays)
}

func TestAggregate_MonthOrderingIsChronological(t *testing.T) {
	// Vacations inserted March first, then January: the series must still
	// come out January-then-March.
	pros := []vacation.Professional{pro("p1", "Ana")}
	vacs := []vacation.VacationPeriod{
		vac("p1", "2024-03-01", "2024-03-05", 5, "500"),
		vac("p1", "2024-01-01", "2024-01-02", 2, "200"),
	}

	data := vacation.Aggregate(pros, vacs, nil)

	require.Len(t, data.VacationsByMonth, 2)
	assert.Equal(t, "2024-01", data.VacationsByMonth[0].Month)
	assert.Equal(t, "2024-03", data.VacationsByMonth[1].Month)
	assert.Equal(t, 2, data.VacationsByMonth[0].Count)
	assert.Equal(t, 5, data.VacationsByMonth[1].Count)
}

func TestAggregate_MonthBucketUsesUsageStart(t *testing.T) {
	// A vacation spanning a month boundary lands entirely in its start
	// month, never split.
	pros := []vacation.Professional{pro("p1", "Ana")}
	vacs := []vacation.VacationPeriod{vac("p1", "2024-01-25", "2024-02-05", 12, "1200")}

	data := vacation.Aggregate(pros, vacs, nil)

	require.Len(t, data.VacationsByMonth, 1)
	assert.Equal(t, "2024-01", data.VacationsByMonth[0].Month)
	assert.Equal(t, 12, data.VacationsByMonth[0].Count)
}

func TestAggregate_DateRangeOverlap(t *testing.T) {
	// One long vacation: 2024-01-01 .. 2024-03-31.
	pros := []vacation.Professional{pro("p1", "Ana")}
	vacs := []vacation.VacationPeriod{vac("p1", "2024-01-01", "2024-03-31", 91, "9100")}

	tests := []struct {
		name     string
		from, to string
		included bool
	}{
		{"range fully inside the vacation", "2024-02-01", "2024-02-15", true},
		{"partial overlap at vacation start", "2023-12-01", "2024-01-15", true},
		{"partial overlap at vacation end", "2024-03-15", "2024-04-15", true},
		{"disjoint range", "2024-05-01", "2024-05-31", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := &vacation.DateRange{From: vacation.MustDate(tt.from), To: vacation.MustDate(tt.to)}
			data := vacation.Aggregate(pros, vacs, rng)

			if tt.included {
				assert.Equal(t, 91, data.TotalVacationDays)
				assert.Len(t, data.ProfessionalImpacts, 1)
			} else {
				assert.Equal(t, 0, data.TotalVacationDays)
				assert.Empty(t, data.ProfessionalImpacts)
			}
			// The professional count ignores the filter.
			assert.Equal(t, 1, data.TotalProfessionals)
		})
	}
}

func TestAggregate_UnknownProfessionalReference(t *testing.T) {
	// A vacation pointing at a professional missing from the supplied set
	// must surface with the sentinel name, not abort.
	pros := []vacation.Professional{pro("p1", "Ana")}
	vacs := []vacation.VacationPeriod{
		vac("p1", "2024-01-10", "2024-01-12", 3, "300"),
		vac("ghost", "2024-02-01", "2024-02-02", 2, "200"),
	}

	data := vacation.Aggregate(pros, vacs, nil)

	assert.Equal(t, 5, data.TotalVacationDays)
	require.Len(t, data.ProfessionalImpacts, 2)
	assert.Equal(t, "Ana", data.ProfessionalImpacts[0].ProfessionalName)
	assert.Equal(t, vacation.UnknownProfessionalName, data.ProfessionalImpacts[1].ProfessionalName)
	assert.Equal(t, 2, data.ProfessionalImpacts[1].TotalDays)
}

func TestAggregate_EmptyInputs(t *testing.T) {
	data := vacation.Aggregate(nil, nil, nil)

	assert.Equal(t, 0, data.TotalProfessionals)
	assert.Equal(t, 0, data.TotalVacationDays)
	assert.True(t, data.TotalRevenueImpact.IsZero())
	assert.NotNil(t, data.VacationsByMonth)
	assert.NotNil(t, data.ProfessionalImpacts)
}
