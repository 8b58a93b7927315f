// Package storage holds the key-value blob store the storefront persists its
// state into, with memory, SQLite and MongoDB backends.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Keys of the persisted storefront state.
const (
	KeyUsers       = "decoration_room_users"
	KeyCurrentUser = "decoration_room_current_user"
	KeyCart        = "decoration-room-cart"
	KeyCouponUsed  = "decoration-room-coupon-used"
)

var (
	ErrNotFound = errors.New("storage: key not found")
	ErrCorrupt  = errors.New("storage: malformed value")
)

// Store is a string-valued key-value store. Get returns ErrNotFound for
// absent keys; Delete of an absent key is not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// GetJSON decodes the value under key into v. A value that does not decode
// yields an error wrapping ErrCorrupt.
func GetJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	return nil
}

func SetJSON(ctx context.Context, s Store, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: encode %s: %w", key, err)
	}
	return s.Set(ctx, key, string(b))
}

type scoped struct {
	store     Store
	namespace string
}

// Scoped returns a view of s whose keys live under namespace. Each browser
// session gets its own namespace, the way each browser origin has its own
// local storage.
func Scoped(s Store, namespace string) Store {
	return &scoped{store: s, namespace: namespace}
}

func (s *scoped) key(k string) string {
	return s.namespace + ":" + k
}

func (s *scoped) Get(ctx context.Context, key string) (string, error) {
	return s.store.Get(ctx, s.key(key))
}

func (s *scoped) Set(ctx context.Context, key, value string) error {
	return s.store.Set(ctx, s.key(key), value)
}

func (s *scoped) Delete(ctx context.Context, key string) error {
	return s.store.Delete(ctx, s.key(key))
}
