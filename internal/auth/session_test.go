package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/merhebia-finest/tilbud/internal/auth"
	"github.com/merhebia-finest/tilbud/internal/users"
)

func newStore(t *testing.T) (*auth.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return auth.NewStore(client, time.Hour), mr
}

func TestStoreCreateAndGet(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, auth.Session{
		UserID:   "u1",
		Username: "kari",
		Email:    "kari@merhebia.no",
		Role:     users.RoleSeller,
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sess, err := store.Get(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "u1", sess.UserID)
	require.Equal(t, "kari", sess.Username)
	require.Equal(t, users.RoleSeller, sess.Role)
	require.Equal(t, token, sess.Token)
	require.False(t, sess.IssuedAt.IsZero())
}

func TestStoreGetUnknownToken(t *testing.T) {
	store, _ := newStore(t)

	_, err := store.Get(context.Background(), "nope")
	require.ErrorIs(t, err, auth.ErrSessionNotFound)
}

func TestStoreExpiry(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, auth.Session{UserID: "u1"})
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	_, err = store.Get(ctx, token)
	require.ErrorIs(t, err, auth.ErrSessionNotFound)
}

func TestStoreDelete(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, auth.Session{UserID: "u1"})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, token))
	_, err = store.Get(ctx, token)
	require.ErrorIs(t, err, auth.ErrSessionNotFound)

	// Revoking twice is harmless.
	require.NoError(t, store.Delete(ctx, token))
}
