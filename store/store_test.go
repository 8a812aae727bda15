package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unchain0/sistema-ferias/config"
	"github.com/unchain0/sistema-ferias/store"
	"github.com/unchain0/sistema-ferias/vacation"
)

func TestOpen_MemoryWhenNothingConfigured(t *testing.T) {
	s, err := store.Open(context.Background(), config.Storage{}, nil)
	require.NoError(t, err)
	defer s.Close()

	// Usable immediately, nothing touches the filesystem.
	u, err := s.CreateUser(context.Background(), vacation.NewUser{
		Email: "mem@example.com", Name: "M", PasswordHash: "h",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
}

func TestOpen_DurableFlatfileWhenDataDirConfigured(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	s, err := store.Open(context.Background(), config.Storage{DataDir: dir}, nil)
	require.NoError(t, err)
	defer s.Close()

	_, err = s.CreateUser(context.Background(), vacation.NewUser{
		Email: "file@example.com", Name: "F", PasswordHash: "h",
	})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "users.json"))
	assert.NoError(t, err, "durable mode writes the list files")
}
