/*
store.go - The persistence port

PURPOSE:
  One uniform contract for storing Users, Professionals and
  VacationPeriods, independent of backend. Two adapters implement it:

  - store/flatfile: three ordered lists, JSON files in durable deployments,
    process memory in ephemeral ones.
  - store/postgres: remote relational store with snake_case columns.

  The backend is picked exactly once at process start (store.Open) from
  explicit configuration and injected into every consumer. Core logic is
  written against this interface only and must behave identically under
  either adapter; store/storetest holds the shared conformance suite.

OWNER SCOPING CONTRACT:
  Every operation that targets a Professional or VacationPeriod record
  takes the owning user id as a mandatory filter. There is no way to read
  or mutate a record without proving ownership.

NOT-FOUND CONTRACT:
  Single-record fetches and updates return (nil, nil) when the record is
  absent or owned by someone else. Deletes return (false, nil). A non-nil
  error always means the backend itself failed.
*/
package vacation

import "context"

// Store is the persistence port.
type Store interface {
	// Users. Emails are matched case-insensitively (stored lowercased).
	CreateUser(ctx context.Context, n NewUser) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id string) (*User, error)

	// Professionals, always scoped to the owning user.
	CreateProfessional(ctx context.Context, n NewProfessional) (*Professional, error)
	ListProfessionals(ctx context.Context, userID string) ([]Professional, error)
	GetProfessional(ctx context.Context, id, userID string) (*Professional, error)
	// UpdateProfessional applies only the fields present in the patch
	// (merge, not replace) and returns the updated record, or nil if the
	// record is absent or not owned by userID.
	UpdateProfessional(ctx context.Context, id, userID string, patch ProfessionalPatch) (*Professional, error)
	// DeleteProfessional removes the record and, cascading, all of its
	// vacation periods. Returns false when nothing was removed.
	DeleteProfessional(ctx context.Context, id, userID string) (bool, error)
	DeleteAllProfessionals(ctx context.Context, userID string) error

	// Vacation periods, always scoped to the owning user.
	CreateVacationPeriod(ctx context.Context, n NewVacationPeriod) (*VacationPeriod, error)
	ListVacationPeriods(ctx context.Context, userID string) ([]VacationPeriod, error)
	ListVacationsByProfessional(ctx context.Context, professionalID, userID string) ([]VacationPeriod, error)
	UpdateVacationPeriod(ctx context.Context, id, userID string, patch VacationPeriodPatch) (*VacationPeriod, error)
	DeleteVacationPeriod(ctx context.Context, id, userID string) (bool, error)
	DeleteAllVacationPeriods(ctx context.Context, userID string) error

	Close() error
}
