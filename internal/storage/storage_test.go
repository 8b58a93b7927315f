package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, KeyCouponUsed, "true"))
	v, err := s.Get(ctx, KeyCouponUsed)
	require.NoError(t, err)
	assert.Equal(t, "true", v)

	require.NoError(t, s.Set(ctx, KeyCouponUsed, "false"))
	v, err = s.Get(ctx, KeyCouponUsed)
	require.NoError(t, err)
	assert.Equal(t, "false", v)

	require.NoError(t, s.Delete(ctx, KeyCouponUsed))
	_, err = s.Get(ctx, KeyCouponUsed)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Delete(ctx, KeyCouponUsed))
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	exerciseStore(t, NewMemoryStore())
}

func TestSQLiteStore(t *testing.T) {
	t.Parallel()

	s, err := OpenSQLite(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	exerciseStore(t, s)
}

func TestMongoStore(t *testing.T) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}

	s, client, err := ConnectMongo(context.Background(), uri, "decoration_room_test_"+uuid.NewString()[:8])
	require.NoError(t, err)
	t.Cleanup(func() {
		s.Collection.Database().Drop(context.Background())
		client.Disconnect(context.Background())
	})

	exerciseStore(t, s)
}

func TestScopedIsolatesNamespaces(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := NewMemoryStore()
	a := Scoped(base, "browser-a")
	b := Scoped(base, "browser-b")

	require.NoError(t, a.Set(ctx, KeyCart, `{"items":[]}`))

	_, err := b.Get(ctx, KeyCart)
	assert.ErrorIs(t, err, ErrNotFound)

	raw, err := base.Get(ctx, "browser-a:"+KeyCart)
	require.NoError(t, err)
	assert.Equal(t, `{"items":[]}`, raw)

	exerciseStore(t, b)
}

func TestJSONHelpers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryStore()

	type payload struct {
		Name string `json:"name"`
	}

	require.NoError(t, SetJSON(ctx, s, "k", payload{Name: "Branco"}))

	var got payload
	require.NoError(t, GetJSON(ctx, s, "k", &got))
	assert.Equal(t, "Branco", got.Name)

	require.NoError(t, s.Set(ctx, "bad", "{not json"))
	assert.ErrorIs(t, GetJSON(ctx, s, "bad", &got), ErrCorrupt)
	assert.ErrorIs(t, GetJSON(ctx, s, "absent", &got), ErrNotFound)
}

func TestSessionStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	base := NewMemoryStore()
	s := &SessionStore{Store: base}

	_, found, err := s.FindCtx(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.CommitCtx(ctx, "tok", []byte("payload"), time.Now().Add(time.Hour)))

	// A second store over the same backend sees the session.
	b, found, err := (&SessionStore{Store: base}).Find("tok")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("payload"), b)

	require.NoError(t, s.Commit("old", []byte("payload"), time.Now().Add(-time.Second)))
	_, found, err = s.FindCtx(ctx, "old")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.DeleteCtx(ctx, "tok"))
	_, found, err = s.FindCtx(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, found)
}
