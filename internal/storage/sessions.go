package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexedwards/scs/v2"
)

const sessionPrefix = "session:"

var _ scs.CtxStore = (*SessionStore)(nil)

type sessionEntry struct {
	Data   []byte    `json:"data"`
	Expiry time.Time `json:"expiry"`
}

// SessionStore keeps scs sessions in a Store, so sessions live in the same
// backend as the storefront state and survive restarts.
//
// TODO: sweep expired entries; they are only skipped on read today.
type SessionStore struct {
	Store Store
}

func (s *SessionStore) FindCtx(ctx context.Context, token string) ([]byte, bool, error) {
	raw, err := s.Store.Get(ctx, sessionPrefix+token)
	if errors.Is(err, ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var e sessionEntry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return nil, false, nil
	}
	if !time.Now().Before(e.Expiry) {
		return nil, false, nil
	}
	return e.Data, true, nil
}

func (s *SessionStore) CommitCtx(ctx context.Context, token string, b []byte, expiry time.Time) error {
	raw, err := json.Marshal(sessionEntry{Data: b, Expiry: expiry})
	if err != nil {
		return fmt.Errorf("storage: encode session: %w", err)
	}
	return s.Store.Set(ctx, sessionPrefix+token, string(raw))
}

func (s *SessionStore) DeleteCtx(ctx context.Context, token string) error {
	return s.Store.Delete(ctx, sessionPrefix+token)
}

func (s *SessionStore) Find(token string) ([]byte, bool, error) {
	return s.FindCtx(context.Background(), token)
}

func (s *SessionStore) Commit(token string, b []byte, expiry time.Time) error {
	return s.CommitCtx(context.Background(), token, b, expiry)
}

func (s *SessionStore) Delete(token string) error {
	return s.DeleteCtx(context.Background(), token)
}
