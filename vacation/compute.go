/*
compute.go - The vacation computation service

PURPOSE:
  Pure computation of a vacation's derived fields. Given a professional
  and the requested windows, produce the inclusive day count and the
  proportional revenue deduction. Persisting the result is the caller's
  job, always done in the same step that verified the professional exists
  and is owned by the caller.

WHY VacationPlan HAS UNEXPORTED FIELDS:
  TotalDays and RevenueDeduction must never be taken from client input.
  Making the plan opaque means the only way to obtain one is PlanVacation,
  so the compiler rejects any attempt to patch derived fields directly.
*/
package vacation

import (
	"github.com/shopspring/decimal"
)

// VacationPlan holds the derived fields of a vacation period. Construct
// one only via PlanVacation.
type VacationPlan struct {
	totalDays        int
	revenueDeduction decimal.Decimal
}

func (p VacationPlan) TotalDays() int                    { return p.totalDays }
func (p VacationPlan) RevenueDeduction() decimal.Decimal { return p.revenueDeduction }

// PlanVacation validates the requested windows and computes the financial
// impact against the professional's current monthly revenue.
//
// Edge case: a single-day vacation (usage start == usage end) yields
// TotalDays 1, not 0.
func PlanVacation(pro *Professional, usage, acquisition Period) (VacationPlan, error) {
	if !usage.Valid() {
		return VacationPlan{}, NewValidationError("usageEndDate",
			"usage end must not precede usage start", ErrInvalidPeriod)
	}
	if !acquisition.Valid() {
		return VacationPlan{}, NewValidationError("acquisitionEndDate",
			"acquisition end must not precede acquisition start", ErrInvalidPeriod)
	}
	if !pro.MonthlyRevenue.IsPositive() {
		return VacationPlan{}, NewValidationError("monthlyRevenue",
			"monthly revenue must be positive", ErrNonPositiveRevenue)
	}

	days := InclusiveDayCount(usage.Start, usage.End)
	return VacationPlan{
		totalDays:        days,
		revenueDeduction: ProportionalDeduction(pro.MonthlyRevenue, days),
	}, nil
}
