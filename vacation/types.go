/*
Package vacation provides the core vacation-tracking domain.

PURPOSE:
  This package contains the entities, date/money arithmetic, the vacation
  financial-impact computation, and the dashboard aggregation for a
  multi-tenant vacation tracker. Users own Professionals (billable
  contractors with a monthly revenue figure); Professionals own
  VacationPeriods. Every vacation carries its derived financial impact: a
  proportional deduction from the professional's monthly revenue.

KEY CONCEPTS IN THIS FILE (types.go):
  - User: identity + credential holder, owner of everything else
  - Professional: a billable contractor tracked by exactly one User
  - VacationPeriod: one taken/scheduled vacation with derived impact fields
  - Patch types: strongly-typed partial updates (pointer field = present)

DESIGN PRINCIPLES:
  1. Owner scoping: Professional/VacationPeriod reads and writes always
     carry the owning user id. Cross-tenant access is impossible by
     construction, not by convention.
  2. Precision: decimal.Decimal for all money, never float64.
  3. Derived fields are derived: TotalDays and RevenueDeduction flow only
     through VacationPlan (see compute.go) and are never taken from input.

SEE ALSO:
  - time.go: Date arithmetic and the concessive-period rule
  - compute.go: PlanVacation and VacationPlan
  - dashboard.go: Aggregation into DashboardData
  - store.go: The persistence port both backends implement
*/
package vacation

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// ENTITIES
// =============================================================================

// User is an account holder. Emails are unique and case-normalized.
// PasswordHash is opaque to this package; hashing lives in the auth package.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Professional is a billable contractor tracked under one owning user.
// Invariant: MonthlyRevenue > 0.
type Professional struct {
	ID             string          `json:"id"`
	UserID         string          `json:"userId"`
	Name           string          `json:"name"`
	ClientManager  string          `json:"clientManager"`
	MonthlyRevenue decimal.Decimal `json:"monthlyRevenue"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// VacationPeriod is one vacation instance for one Professional.
// UserID is a denormalized copy of the professional's owner so queries can
// be scoped without a join. TotalDays and RevenueDeduction are recomputed
// from the usage window at every write; they never come from client input.
type VacationPeriod struct {
	ID               string          `json:"id"`
	ProfessionalID   string          `json:"professionalId"`
	UserID           string          `json:"userId"`
	AcquisitionStart Date            `json:"acquisitionStartDate"`
	AcquisitionEnd   Date            `json:"acquisitionEndDate"`
	UsageStart       Date            `json:"usageStartDate"`
	UsageEnd         Date            `json:"usageEndDate"`
	TotalDays        int             `json:"totalDays"`
	RevenueDeduction decimal.Decimal `json:"revenueDeduction"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// =============================================================================
// CREATE INPUTS - what callers supply; ids and timestamps are assigned by
// whichever side owns them (flat-record adapter assigns, relational store
// lets the database assign)
// =============================================================================

type NewUser struct {
	Email        string
	Name         string
	PasswordHash string
}

type NewProfessional struct {
	UserID         string
	Name           string
	ClientManager  string
	MonthlyRevenue decimal.Decimal
}

// NewVacationPeriod carries the windows plus the plan computed by
// PlanVacation. There is no way to supply TotalDays or RevenueDeduction
// directly; VacationPlan's fields are unexported.
type NewVacationPeriod struct {
	UserID         string
	ProfessionalID string
	Acquisition    Period
	Usage          Period
	Plan           VacationPlan
}

// =============================================================================
// PATCH TYPES - partial updates; nil means "leave untouched"
// =============================================================================

// ProfessionalPatch lists exactly the mutable fields of a Professional.
// Identity fields (ID, UserID) and CreatedAt cannot be patched.
type ProfessionalPatch struct {
	Name           *string
	ClientManager  *string
	MonthlyRevenue *decimal.Decimal
}

// VacationPeriodPatch lists exactly the mutable fields of a VacationPeriod.
// Derived fields travel only inside Plan, so they cannot be set without
// going through PlanVacation first.
type VacationPeriodPatch struct {
	AcquisitionStart *Date
	AcquisitionEnd   *Date
	UsageStart       *Date
	UsageEnd         *Date
	Plan             *VacationPlan
}

// IsZero reports whether the patch would change nothing.
func (p ProfessionalPatch) IsZero() bool {
	return p.Name == nil && p.ClientManager == nil && p.MonthlyRevenue == nil
}

func (p VacationPeriodPatch) IsZero() bool {
	return p.AcquisitionStart == nil && p.AcquisitionEnd == nil &&
		p.UsageStart == nil && p.UsageEnd == nil && p.Plan == nil
}
