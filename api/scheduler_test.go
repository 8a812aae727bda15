package api

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unchain0/sistema-ferias/auth"
	"github.com/unchain0/sistema-ferias/config"
	"github.com/unchain0/sistema-ferias/store/flatfile"
)

func newTestHandler(demoEnabled bool) *Handler {
	store := flatfile.NewMemory()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	demo := config.Demo{Enabled: demoEnabled, Email: "demo@sistema-ferias.com", Password: "demo123"}
	return NewHandler(store, auth.NewService(store), auth.NewTokenManager("test-secret", time.Hour), demo, logger)
}

func TestDemoRefreshScheduler_SeedsOnStart(t *testing.T) {
	h := newTestHandler(true)

	s := NewDemoRefreshScheduler(h)
	s.Start()
	defer s.Stop()

	// The startup seed runs asynchronously; wait for the demo user.
	require.Eventually(t, func() bool {
		user, err := h.store.GetUserByEmail(context.Background(), h.demo.Email)
		return err == nil && user != nil
	}, 2*time.Second, 10*time.Millisecond)

	pros, err := h.store.ListProfessionals(context.Background(), mustDemoUserID(t, h))
	require.NoError(t, err)
	assert.NotEmpty(t, pros)
}

func TestDemoRefreshScheduler_DisabledDoesNothing(t *testing.T) {
	h := newTestHandler(false)

	s := NewDemoRefreshScheduler(h)
	s.Start()
	s.Stop()

	user, err := h.store.GetUserByEmail(context.Background(), h.demo.Email)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func mustDemoUserID(t *testing.T, h *Handler) string {
	t.Helper()
	user, err := h.store.GetUserByEmail(context.Background(), h.demo.Email)
	require.NoError(t, err)
	require.NotNil(t, user)
	return user.ID
}
