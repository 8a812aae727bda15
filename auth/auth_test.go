package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unchain0/sistema-ferias/auth"
	"github.com/unchain0/sistema-ferias/store/flatfile"
	"github.com/unchain0/sistema-ferias/vacation"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := auth.NewService(flatfile.NewMemory())

	user, err := svc.Register(ctx, "Maria@Example.com", "s3cret", "Maria")
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", user.Email)
	assert.NotEqual(t, "s3cret", user.PasswordHash, "password is stored hashed")

	t.Run("correct credentials", func(t *testing.T) {
		got, err := svc.Authenticate(ctx, "maria@example.com", "s3cret")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		got, err := svc.Authenticate(ctx, "maria@example.com", "wrong")
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = svc.Authenticate(ctx, "nobody@example.com", "s3cret")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("duplicate registration rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, "MARIA@example.com", "other", "Other")
		assert.ErrorIs(t, err, vacation.ErrEmailTaken)
	})
}

func TestTokenRoundTrip(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	user := &vacation.User{ID: "user-1", Email: "maria@example.com"}

	token, err := tm.Issue(user)
	require.NoError(t, err)

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "maria@example.com", claims.Email)
}

func TestTokenValidation_Failures(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	other := auth.NewTokenManager("different-secret", time.Hour)

	token, err := other.Issue(&vacation.User{ID: "user-1"})
	require.NoError(t, err)

	_, err = tm.Validate(token)
	assert.Error(t, err, "token signed with another secret is rejected")

	_, err = tm.Validate("not-a-token")
	assert.Error(t, err)

	shortLived := auth.NewTokenManager("test-secret", time.Nanosecond)
	token, err = shortLived.Issue(&vacation.User{ID: "user-1"})
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	_, err = tm.Validate(token)
	assert.Error(t, err, "expired token is rejected")
}

func TestExtractToken(t *testing.T) {
	got, err := auth.ExtractToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", got)

	_, err = auth.ExtractToken("abc.def.ghi")
	assert.Error(t, err)
	_, err = auth.ExtractToken("")
	assert.Error(t, err)
}
