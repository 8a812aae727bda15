package flatfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unchain0/sistema-ferias/store/flatfile"
	"github.com/unchain0/sistema-ferias/store/storetest"
	"github.com/unchain0/sistema-ferias/vacation"
)

// Both modes must pass the same conformance suite: the memory-backed and
// file-backed lists are one adapter with two homes for its state.
func TestConformance_Memory(t *testing.T) {
	storetest.Run(t, func(t *testing.T) vacation.Store {
		return flatfile.NewMemory()
	})
}

func TestConformance_File(t *testing.T) {
	storetest.Run(t, func(t *testing.T) vacation.Store {
		s, err := flatfile.New(t.TempDir())
		require.NoError(t, err)
		return s
	})
}

func TestDurableMode_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := flatfile.New(dir)
	require.NoError(t, err)

	u, err := s.CreateUser(ctx, vacation.NewUser{Email: "persist@example.com", Name: "P", PasswordHash: "h"})
	require.NoError(t, err)
	pro, err := s.CreateProfessional(ctx, vacation.NewProfessional{
		UserID:         u.ID,
		Name:           "Ana",
		ClientManager:  "Gestor",
		MonthlyRevenue: vacation.MustParseDecimal("3000"),
	})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// A brand-new store over the same directory sees the same records.
	reopened, err := flatfile.New(dir)
	require.NoError(t, err)
	defer reopened.Close()

	again, err := reopened.GetUserByEmail(ctx, "persist@example.com")
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, u.ID, again.ID)

	pros, err := reopened.ListProfessionals(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, pros, 1)
	assert.Equal(t, pro.ID, pros[0].ID)
	assert.True(t, pros[0].MonthlyRevenue.Equal(vacation.MustParseDecimal("3000")))
}

func TestDurableMode_WritesCanonicalFieldNames(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := flatfile.New(dir)
	require.NoError(t, err)
	defer s.Close()

	u, err := s.CreateUser(ctx, vacation.NewUser{Email: "layout@example.com", Name: "L", PasswordHash: "h"})
	require.NoError(t, err)
	_, err = s.CreateProfessional(ctx, vacation.NewProfessional{
		UserID:         u.ID,
		Name:           "Ana",
		MonthlyRevenue: vacation.MustParseDecimal("1500"),
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, "professionals.json"))
	require.NoError(t, err)

	// The on-disk layout uses the canonical (camelCase) attribute names.
	assert.Contains(t, string(raw), `"userId"`)
	assert.Contains(t, string(raw), `"monthlyRevenue"`)
	assert.Contains(t, string(raw), `"clientManager"`)
	assert.NotContains(t, string(raw), `"user_id"`)
}

func TestSeed_ReplacesAllLists(t *testing.T) {
	ctx := context.Background()
	s := flatfile.NewMemory()

	user := vacation.User{ID: "demo-user", Email: "demo@example.com", Name: "Demo"}
	pros := []vacation.Professional{{
		ID: "demo-pro", UserID: user.ID, Name: "Ana",
		MonthlyRevenue: vacation.MustParseDecimal("3000"),
	}}
	vacs := []vacation.VacationPeriod{{
		ID: "demo-vac", ProfessionalID: "demo-pro", UserID: user.ID,
		UsageStart: vacation.MustDate("2024-01-01"), UsageEnd: vacation.MustDate("2024-01-10"),
		TotalDays: 10, RevenueDeduction: vacation.MustParseDecimal("1000"),
	}}

	require.NoError(t, s.Seed([]vacation.User{user}, pros, vacs))

	got, err := s.GetUserByID(ctx, "demo-user")
	require.NoError(t, err)
	require.NotNil(t, got)

	listed, err := s.ListVacationPeriods(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 10, listed[0].TotalDays)

	// Seeding again replaces, not appends.
	require.NoError(t, s.Seed([]vacation.User{user}, nil, nil))
	listed, err = s.ListVacationPeriods(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, listed)
}
