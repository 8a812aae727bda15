package vacation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unchain0/sistema-ferias/vacation"
)

func testProfessional(revenue string) *vacation.Professional {
	return &vacation.Professional{
		ID:             "pro-1",
		UserID:         "user-1",
		Name:           "Ana Souza",
		ClientManager:  "Carlos Lima",
		MonthlyRevenue: vacation.MustParseDecimal(revenue),
	}
}

func period(start, end string) vacation.Period {
	return vacation.Period{Start: vacation.MustDate(start), End: vacation.MustDate(end)}
}

func TestPlanVacation(t *testing.T) {
	acquisition := period("2023-01-01", "2023-12-31")

	t.Run("computes days and deduction", func(t *testing.T) {
		plan, err := vacation.PlanVacation(testProfessional("3000"),
			period("2024-01-01", "2024-01-30"), acquisition)
		require.NoError(t, err)

		assert.Equal(t, 30, plan.TotalDays())
		assert.True(t, plan.RevenueDeduction().Equal(vacation.MustParseDecimal("3000")))
	})

	t.Run("single day vacation yields one day", func(t *testing.T) {
		plan, err := vacation.PlanVacation(testProfessional("3000"),
			period("2024-03-10", "2024-03-10"), acquisition)
		require.NoError(t, err)

		assert.Equal(t, 1, plan.TotalDays())
		assert.True(t, plan.RevenueDeduction().Equal(vacation.MustParseDecimal("100")))
	})

	t.Run("rejects usage end before start", func(t *testing.T) {
		_, err := vacation.PlanVacation(testProfessional("3000"),
			period("2024-01-10", "2024-01-05"), acquisition)

		require.Error(t, err)
		assert.True(t, errors.Is(err, vacation.ErrInvalidPeriod))
		verr := vacation.AsValidation(err)
		require.NotNil(t, verr)
		assert.Equal(t, "usageEndDate", verr.Field)
	})

	t.Run("rejects acquisition end before start", func(t *testing.T) {
		_, err := vacation.PlanVacation(testProfessional("3000"),
			period("2024-01-01", "2024-01-05"), period("2023-12-31", "2023-01-01"))

		require.Error(t, err)
		assert.True(t, errors.Is(err, vacation.ErrInvalidPeriod))
	})

	t.Run("rejects non-positive revenue", func(t *testing.T) {
		_, err := vacation.PlanVacation(testProfessional("0"),
			period("2024-01-01", "2024-01-05"), acquisition)

		require.Error(t, err)
		assert.True(t, errors.Is(err, vacation.ErrNonPositiveRevenue))
		assert.True(t, vacation.IsClientError(err))
	})
}
