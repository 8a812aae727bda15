package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unchain0/sistema-ferias/store/postgres"
	"github.com/unchain0/sistema-ferias/store/storetest"
	"github.com/unchain0/sistema-ferias/vacation"
)

// TestConformance runs the shared store suite against a real database.
// Set TEST_DATABASE_URL to a disposable Postgres instance to enable it;
// the suite truncates all tables between subtests.
func TestConformance(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	storetest.Run(t, func(t *testing.T) vacation.Store {
		s, err := postgres.New(ctx, dsn, nil)
		require.NoError(t, err)
		require.NoError(t, s.TruncateAll(ctx))
		return s
	})
}
