package postgres

import "github.com/google/uuid"

// =============================================================================
// FIELD-NAME TRANSLATION - the single source of truth per entity
// =============================================================================
// The domain's canonical attribute names are camelCase; the store's
// columns are snake_case. Every read and write goes through these maps so
// the translation cannot drift per call site. colmap_test.go round-trips
// each table.

var userColumns = map[string]string{
	"id":           "id",
	"email":        "email",
	"name":         "name",
	"passwordHash": "password_hash",
	"createdAt":    "created_at",
}

var professionalColumns = map[string]string{
	"id":             "id",
	"userId":         "user_id",
	"name":           "name",
	"clientManager":  "client_manager",
	"monthlyRevenue": "monthly_revenue",
	"createdAt":      "created_at",
}

var vacationPeriodColumns = map[string]string{
	"id":                   "id",
	"professionalId":       "professional_id",
	"userId":               "user_id",
	"acquisitionStartDate": "acquisition_start_date",
	"acquisitionEndDate":   "acquisition_end_date",
	"usageStartDate":       "usage_start_date",
	"usageEndDate":         "usage_end_date",
	"totalDays":            "total_days",
	"revenueDeduction":     "revenue_deduction",
	"createdAt":            "created_at",
}

// column resolves a canonical field name to its column, panicking on an
// unknown field: a miss here is a programming error, not runtime input.
func column(m map[string]string, field string) string {
	col, ok := m[field]
	if !ok {
		panic("postgres: unmapped field " + field)
	}
	return col
}

// isUUID reports whether s is a well-formed uuid. The store's id columns
// are uuid-typed, so a malformed id can never match a row; short-circuit
// to not-found instead of letting the cast blow up the query.
func isUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
