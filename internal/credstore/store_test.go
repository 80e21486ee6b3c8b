package credstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "voat.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestCredentialRoundtrip(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	err := store.SaveCredential(ctx, Credential{
		Host:         "api.voat.co",
		Username:     "testbot",
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		ExpiresAt:    expiresAt,
		Scope:        "account",
	})
	require.NoError(t, err)

	cred, err := store.GetCredential(ctx, "api.voat.co", "testbot")
	require.NoError(t, err)
	require.NotEmpty(t, cred.ID)
	require.Equal(t, "access-1", cred.AccessToken)
	require.Equal(t, "refresh-1", cred.RefreshToken)
	require.Equal(t, "account", cred.Scope)
	require.True(t, cred.ExpiresAt.Equal(expiresAt))
	require.False(t, cred.UpdatedAt.IsZero())
}

func TestSaveCredentialUpserts(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveCredential(ctx, Credential{
		Host:        "api.voat.co",
		Username:    "testbot",
		AccessToken: "access-1",
	}))
	first, err := store.GetCredential(ctx, "api.voat.co", "testbot")
	require.NoError(t, err)

	require.NoError(t, store.SaveCredential(ctx, Credential{
		Host:        "api.voat.co",
		Username:    "testbot",
		AccessToken: "access-2",
	}))

	second, err := store.GetCredential(ctx, "api.voat.co", "testbot")
	require.NoError(t, err)
	require.Equal(t, "access-2", second.AccessToken)

	// The upsert keeps the original row identity.
	require.Equal(t, first.ID, second.ID)
}

func TestGetCredentialNotFound(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	_, err := store.GetCredential(context.Background(), "api.voat.co", "nobody")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLatestCredential(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveCredential(ctx, Credential{
		Host: "api.voat.co", Username: "older", AccessToken: "a",
	}))
	// updated_at has second precision; make sure the rows differ.
	time.Sleep(1100 * time.Millisecond)
	require.NoError(t, store.SaveCredential(ctx, Credential{
		Host: "api.voat.co", Username: "newer", AccessToken: "b",
	}))

	cred, err := store.LatestCredential(ctx, "api.voat.co")
	require.NoError(t, err)
	require.Equal(t, "newer", cred.Username)

	// Hosts are isolated.
	_, err = store.LatestCredential(ctx, "preview-api.voat.co")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCredential(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveCredential(ctx, Credential{
		Host: "api.voat.co", Username: "testbot", AccessToken: "a",
	}))

	require.NoError(t, store.DeleteCredential(ctx, "api.voat.co", "testbot"))

	_, err := store.GetCredential(ctx, "api.voat.co", "testbot")
	require.ErrorIs(t, err, ErrNotFound)

	err = store.DeleteCredential(ctx, "api.voat.co", "testbot")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCursorRoundtrip(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.GetCursor(ctx, "api.voat.co", "comments")
	require.ErrorIs(t, err, ErrNotFound)

	first := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, store.SetCursor(ctx, "api.voat.co", "comments", first))

	got, err := store.GetCursor(ctx, "api.voat.co", "comments")
	require.NoError(t, err)
	require.True(t, got.Equal(first))

	// Advancing the cursor replaces the previous value.
	second := first.Add(time.Minute)
	require.NoError(t, store.SetCursor(ctx, "api.voat.co", "comments", second))

	got, err = store.GetCursor(ctx, "api.voat.co", "comments")
	require.NoError(t, err)
	require.True(t, got.Equal(second))
}

func TestReopenKeepsData(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "voat.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.SaveCredential(context.Background(), Credential{
		Host: "api.voat.co", Username: "testbot", AccessToken: "a",
	}))
	require.NoError(t, store.Close())

	// Reopening applies no-op migrations and sees the saved row.
	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()

	cred, err := store.GetCredential(context.Background(), "api.voat.co", "testbot")
	require.NoError(t, err)
	require.Equal(t, "a", cred.AccessToken)
}
