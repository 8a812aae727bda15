/*
Package storetest holds the conformance suite every persistence adapter
must pass. Running the same operation sequence against each backend and
asserting the same externally observable results (ignoring assigned ids
and timestamps) is how backend equivalence is kept honest.

Adapters run it from their own _test.go:

	storetest.Run(t, func(t *testing.T) vacation.Store { ... })
*/
package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unchain0/sistema-ferias/vacation"
)

// Run executes the full conformance suite. open must return a fresh,
// empty store for each subtest.
func Run(t *testing.T, open func(t *testing.T) vacation.Store) {
	t.Run("Users", func(t *testing.T) { runUsers(t, open(t)) })
	t.Run("Professionals", func(t *testing.T) { runProfessionals(t, open(t)) })
	t.Run("ProfessionalCascade", func(t *testing.T) { runCascade(t, open(t)) })
	t.Run("VacationPeriods", func(t *testing.T) { runVacations(t, open(t)) })
	t.Run("OwnerScoping", func(t *testing.T) { runScoping(t, open(t)) })
	t.Run("BulkDelete", func(t *testing.T) { runBulkDelete(t, open(t)) })
}

func newProfessional(userID, name, revenue string) vacation.NewProfessional {
	return vacation.NewProfessional{
		UserID:         userID,
		Name:           name,
		ClientManager:  "Gestor",
		MonthlyRevenue: vacation.MustParseDecimal(revenue),
	}
}

func plannedVacation(t *testing.T, pro *vacation.Professional, usageStart, usageEnd string) vacation.NewVacationPeriod {
	t.Helper()
	usage := vacation.Period{Start: vacation.MustDate(usageStart), End: vacation.MustDate(usageEnd)}
	acq := vacation.Period{Start: vacation.MustDate("2023-01-01"), End: vacation.MustDate("2023-12-31")}
	plan, err := vacation.PlanVacation(pro, usage, acq)
	require.NoError(t, err)
	return vacation.NewVacationPeriod{
		UserID:         pro.UserID,
		ProfessionalID: pro.ID,
		Acquisition:    acq,
		Usage:          usage,
		Plan:           plan,
	}
}

func createUser(t *testing.T, s vacation.Store, email string) *vacation.User {
	t.Helper()
	u, err := s.CreateUser(context.Background(), vacation.NewUser{
		Email:        email,
		Name:         "Test User",
		PasswordHash: "$2a$12$fakehashfakehashfakehash",
	})
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	return u
}

func runUsers(t *testing.T, s vacation.Store) {
	ctx := context.Background()
	defer s.Close()

	u := createUser(t, s, "Maria@Example.com")
	assert.Equal(t, "maria@example.com", u.Email, "emails are case-normalized")
	assert.False(t, u.CreatedAt.IsZero())

	// Lookup is case-insensitive.
	got, err := s.GetUserByEmail(ctx, "MARIA@example.COM")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, u.Name, got.Name)
	assert.Equal(t, u.PasswordHash, got.PasswordHash)

	byID, err := s.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, u.Email, byID.Email)

	// Absent records are (nil, nil), not errors.
	missing, err := s.GetUserByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
	missing, err = s.GetUserByID(ctx, "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, missing)

	// Duplicate registration is rejected.
	_, err = s.CreateUser(ctx, vacation.NewUser{Email: "maria@example.com", Name: "Dup", PasswordHash: "x"})
	assert.ErrorIs(t, err, vacation.ErrEmailTaken)
}

func runProfessionals(t *testing.T, s vacation.Store) {
	ctx := context.Background()
	defer s.Close()
	owner := createUser(t, s, "owner@example.com")

	pro, err := s.CreateProfessional(ctx, newProfessional(owner.ID, "Ana Souza", "3000"))
	require.NoError(t, err)
	assert.NotEmpty(t, pro.ID)
	assert.Equal(t, owner.ID, pro.UserID)
	assert.False(t, pro.CreatedAt.IsZero())

	// Create followed by scoped get returns the same record.
	got, err := s.GetProfessional(ctx, pro.ID, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, pro.Name, got.Name)
	assert.Equal(t, pro.ClientManager, got.ClientManager)
	assert.True(t, pro.MonthlyRevenue.Equal(got.MonthlyRevenue))

	// Non-positive revenue is rejected at the adapter.
	_, err = s.CreateProfessional(ctx, newProfessional(owner.ID, "Zero", "0"))
	assert.ErrorIs(t, err, vacation.ErrNonPositiveRevenue)

	// Partial update touches only the named fields.
	newName := "Ana Lima"
	updated, err := s.UpdateProfessional(ctx, pro.ID, owner.ID, vacation.ProfessionalPatch{Name: &newName})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Ana Lima", updated.Name)
	assert.Equal(t, pro.ClientManager, updated.ClientManager)
	assert.True(t, pro.MonthlyRevenue.Equal(updated.MonthlyRevenue))

	rev := vacation.MustParseDecimal("4500")
	updated, err = s.UpdateProfessional(ctx, pro.ID, owner.ID, vacation.ProfessionalPatch{MonthlyRevenue: &rev})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Ana Lima", updated.Name, "earlier update survives")
	assert.True(t, rev.Equal(updated.MonthlyRevenue))

	// Updating a missing record is (nil, nil).
	gone, err := s.UpdateProfessional(ctx, "no-such-id", owner.ID, vacation.ProfessionalPatch{Name: &newName})
	require.NoError(t, err)
	assert.Nil(t, gone)

	list, err := s.ListProfessionals(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	// Delete is idempotent in effect: true, then false.
	ok, err := s.DeleteProfessional(ctx, pro.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = s.DeleteProfessional(ctx, pro.ID, owner.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func runCascade(t *testing.T, s vacation.Store) {
	ctx := context.Background()
	defer s.Close()
	owner := createUser(t, s, "cascade@example.com")

	pro, err := s.CreateProfessional(ctx, newProfessional(owner.ID, "Bruno", "3000"))
	require.NoError(t, err)
	_, err = s.CreateVacationPeriod(ctx, plannedVacation(t, pro, "2024-01-01", "2024-01-10"))
	require.NoError(t, err)
	_, err = s.CreateVacationPeriod(ctx, plannedVacation(t, pro, "2024-06-01", "2024-06-05"))
	require.NoError(t, err)

	ok, err := s.DeleteProfessional(ctx, pro.ID, owner.ID)
	require.NoError(t, err)
	require.True(t, ok)

	// Deleting the professional removed its vacation periods too.
	vacs, err := s.ListVacationPeriods(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, vacs)
}

func runVacations(t *testing.T, s vacation.Store) {
	ctx := context.Background()
	defer s.Close()
	owner := createUser(t, s, "vacs@example.com")

	pro, err := s.CreateProfessional(ctx, newProfessional(owner.ID, "Carla", "3000"))
	require.NoError(t, err)

	created, err := s.CreateVacationPeriod(ctx, plannedVacation(t, pro, "2024-01-01", "2024-01-30"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 30, created.TotalDays)
	assert.True(t, created.RevenueDeduction.Equal(vacation.MustParseDecimal("3000")))
	assert.Equal(t, "2024-01-01", created.UsageStart.String())
	assert.Equal(t, "2023-01-01", created.AcquisitionStart.String())

	list, err := s.ListVacationPeriods(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	byPro, err := s.ListVacationsByProfessional(ctx, pro.ID, owner.ID)
	require.NoError(t, err)
	assert.Len(t, byPro, 1)

	// Re-plan a shorter window and patch: derived fields follow the plan,
	// acquisition window untouched.
	usage := vacation.Period{Start: vacation.MustDate("2024-02-01"), End: vacation.MustDate("2024-02-15")}
	plan, err := vacation.PlanVacation(pro, usage, vacation.Period{
		Start: created.AcquisitionStart, End: created.AcquisitionEnd,
	})
	require.NoError(t, err)

	updated, err := s.UpdateVacationPeriod(ctx, created.ID, owner.ID, vacation.VacationPeriodPatch{
		UsageStart: &usage.Start,
		UsageEnd:   &usage.End,
		Plan:       &plan,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 15, updated.TotalDays)
	assert.True(t, updated.RevenueDeduction.Equal(vacation.MustParseDecimal("1500")))
	assert.Equal(t, "2024-02-01", updated.UsageStart.String())
	assert.Equal(t, created.AcquisitionEnd.String(), updated.AcquisitionEnd.String())

	ok, err := s.DeleteVacationPeriod(ctx, created.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = s.DeleteVacationPeriod(ctx, created.ID, owner.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func runScoping(t *testing.T, s vacation.Store) {
	ctx := context.Background()
	defer s.Close()
	alice := createUser(t, s, "alice@example.com")
	bob := createUser(t, s, "bob@example.com")

	pro, err := s.CreateProfessional(ctx, newProfessional(alice.ID, "Ana", "3000"))
	require.NoError(t, err)
	created, err := s.CreateVacationPeriod(ctx, plannedVacation(t, pro, "2024-01-01", "2024-01-05"))
	require.NoError(t, err)

	// Another owner can neither see nor touch the records, regardless of
	// their existence under the true owner.
	got, err := s.GetProfessional(ctx, pro.ID, bob.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	name := "Hijack"
	upd, err := s.UpdateProfessional(ctx, pro.ID, bob.ID, vacation.ProfessionalPatch{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, upd)

	ok, err := s.DeleteVacationPeriod(ctx, created.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.DeleteProfessional(ctx, pro.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	list, err := s.ListProfessionals(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	// Alice still has everything.
	still, err := s.GetProfessional(ctx, pro.ID, alice.ID)
	require.NoError(t, err)
	require.NotNil(t, still)
	assert.Equal(t, "Ana", still.Name)
}

func runBulkDelete(t *testing.T, s vacation.Store) {
	ctx := context.Background()
	defer s.Close()
	owner := createUser(t, s, "bulk@example.com")
	other := createUser(t, s, "other@example.com")

	for _, name := range []string{"P1", "P2"} {
		pro, err := s.CreateProfessional(ctx, newProfessional(owner.ID, name, "3000"))
		require.NoError(t, err)
		_, err = s.CreateVacationPeriod(ctx, plannedVacation(t, pro, "2024-01-01", "2024-01-03"))
		require.NoError(t, err)
	}
	keep, err := s.CreateProfessional(ctx, newProfessional(other.ID, "Keep", "2000"))
	require.NoError(t, err)

	require.NoError(t, s.DeleteAllVacationPeriods(ctx, owner.ID))
	require.NoError(t, s.DeleteAllProfessionals(ctx, owner.ID))

	pros, err := s.ListProfessionals(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, pros)
	vacs, err := s.ListVacationPeriods(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, vacs)

	// Other tenants untouched.
	otherPros, err := s.ListProfessionals(ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, otherPros, 1)
	assert.Equal(t, keep.ID, otherPros[0].ID)

	// Bulk delete on an empty scope is a no-op, not an error.
	require.NoError(t, s.DeleteAllProfessionals(ctx, owner.ID))
	require.NoError(t, s.DeleteAllVacationPeriods(ctx, owner.ID))
}
