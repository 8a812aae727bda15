/*
dto.go - Request/response data structures for the HTTP API

PURPOSE:
  Defines the JSON shapes exchanged with clients. These types decouple
  the internal domain model from the external API contract: money
  travels as JSON numbers (the domain keeps exact decimals internally),
  dates as ISO yyyy-MM-dd strings, and password hashes never leave the
  server.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data
  carriers.

SEE ALSO:
  - handlers.go: Handlers that consume/produce these types
  - vacation/types.go: The domain records behind them
*/
package api

import (
	"github.com/unchain0/sistema-ferias/vacation"
)

// =============================================================================
// AUTH
// =============================================================================

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

func toUserDTO(u *vacation.User) UserDTO {
	return UserDTO{ID: u.ID, Email: u.Email, Name: u.Name}
}

// =============================================================================
// PROFESSIONALS
// =============================================================================

type CreateProfessionalRequest struct {
	Name           string  `json:"name"`
	ClientManager  string  `json:"clientManager"`
	MonthlyRevenue float64 `json:"monthlyRevenue"`
}

// UpdateProfessionalRequest carries only the fields the client wants to
// change; absent fields stay untouched.
type UpdateProfessionalRequest struct {
	Name           *string  `json:"name"`
	ClientManager  *string  `json:"clientManager"`
	MonthlyRevenue *float64 `json:"monthlyRevenue"`
}

type ProfessionalDTO struct {
	ID             string  `json:"id"`
	UserID         string  `json:"userId"`
	Name           string  `json:"name"`
	ClientManager  string  `json:"clientManager"`
	MonthlyRevenue float64 `json:"monthlyRevenue"`
	CreatedAt      string  `json:"createdAt"`
}

func toProfessionalDTO(p *vacation.Professional) ProfessionalDTO {
	return ProfessionalDTO{
		ID:             p.ID,
		UserID:         p.UserID,
		Name:           p.Name,
		ClientManager:  p.ClientManager,
		MonthlyRevenue: p.MonthlyRevenue.InexactFloat64(),
		CreatedAt:      p.CreatedAt.UTC().Format(timestampLayout),
	}
}

const timestampLayout = "2006-01-02T15:04:05Z07:00"

// =============================================================================
// VACATION PERIODS
// =============================================================================

type CreateVacationRequest struct {
	ProfessionalID       string `json:"professionalId"`
	AcquisitionStartDate string `json:"acquisitionStartDate"`
	AcquisitionEndDate   string `json:"acquisitionEndDate"`
	UsageStartDate       string `json:"usageStartDate"`
	UsageEndDate         string `json:"usageEndDate"`
}

// UpdateVacationRequest replaces all four window dates. Derived fields
// (totalDays, revenueDeduction) are never accepted from clients; the
// server recomputes them.
type UpdateVacationRequest struct {
	ProfessionalID       string `json:"professionalId"`
	AcquisitionStartDate string `json:"acquisitionStartDate"`
	AcquisitionEndDate   string `json:"acquisitionEndDate"`
	UsageStartDate       string `json:"usageStartDate"`
	UsageEndDate         string `json:"usageEndDate"`
}

type VacationPeriodDTO struct {
	ID                   string  `json:"id"`
	ProfessionalID       string  `json:"professionalId"`
	UserID               string  `json:"userId"`
	AcquisitionStartDate string  `json:"acquisitionStartDate"`
	AcquisitionEndDate   string  `json:"acquisitionEndDate"`
	UsageStartDate       string  `json:"usageStartDate"`
	UsageEndDate         string  `json:"usageEndDate"`
	TotalDays            int     `json:"totalDays"`
	RevenueDeduction     float64 `json:"revenueDeduction"`
	CreatedAt            string  `json:"createdAt"`
}

func toVacationDTO(v *vacation.VacationPeriod) VacationPeriodDTO {
	return VacationPeriodDTO{
		ID:                   v.ID,
		ProfessionalID:       v.ProfessionalID,
		UserID:               v.UserID,
		AcquisitionStartDate: v.AcquisitionStart.String(),
		AcquisitionEndDate:   v.AcquisitionEnd.String(),
		UsageStartDate:       v.UsageStart.String(),
		UsageEndDate:         v.UsageEnd.String(),
		TotalDays:            v.TotalDays,
		RevenueDeduction:     v.RevenueDeduction.InexactFloat64(),
		CreatedAt:            v.CreatedAt.UTC().Format(timestampLayout),
	}
}

// =============================================================================
// DASHBOARD
// =============================================================================

type MonthBucketDTO struct {
	Month  string  `json:"month"`
	Count  int     `json:"count"`
	Impact float64 `json:"impact"`
}

type ProfessionalImpactDTO struct {
	ProfessionalName string  `json:"professionalName"`
	TotalDays        int     `json:"totalDays"`
	RevenueImpact    float64 `json:"revenueImpact"`
}

type DashboardDTO struct {
	TotalProfessionals  int                     `json:"totalProfessionals"`
	TotalVacationDays   int                     `json:"totalVacationDays"`
	TotalRevenueImpact  float64                 `json:"totalRevenueImpact"`
	VacationsByMonth    []MonthBucketDTO        `json:"vacationsByMonth"`
	ProfessionalImpacts []ProfessionalImpactDTO `json:"professionalImpacts"`
}

func toDashboardDTO(d vacation.DashboardData) DashboardDTO {
	months := make([]MonthBucketDTO, 0, len(d.VacationsByMonth))
	for _, m := range d.VacationsByMonth {
		months = append(months, MonthBucketDTO{
			Month:  m.Month,
			Count:  m.Count,
			Impact: m.Impact.InexactFloat64(),
		})
	}
	impacts := make([]ProfessionalImpactDTO, 0, len(d.ProfessionalImpacts))
	for _, p := range d.ProfessionalImpacts {
		impacts = append(impacts, ProfessionalImpactDTO{
			ProfessionalName: p.ProfessionalName,
			TotalDays:        p.TotalDays,
			RevenueImpact:    p.RevenueImpact.InexactFloat64(),
		})
	}
	return DashboardDTO{
		TotalProfessionals:  d.TotalProfessionals,
		TotalVacationDays:   d.TotalVacationDays,
		TotalRevenueImpact:  d.TotalRevenueImpact.InexactFloat64(),
		VacationsByMonth:    months,
		ProfessionalImpacts: impacts,
	}
}

// =============================================================================
// ERRORS / MISC
// =============================================================================

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Demo    bool   `json:"demo,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// InitDemoResponse reports what the demo reseed created or refreshed.
type InitDemoResponse struct {
	Message              string `json:"message"`
	Email                string `json:"email"`
	CreatedProfessionals int    `json:"createdProfessionals"`
	CreatedVacations     int    `json:"createdVacations"`
	TotalProfessionals   int    `json:"totalProfessionals"`
	TotalVacations       int    `json:"totalVacations"`
}
