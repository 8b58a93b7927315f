package repository

import (
	"context"
	"errors"

	"decoration_room/internal/models"
	"decoration_room/internal/storage"
)

var ErrNoRecord = errors.New("repository: no matching user")

// UserRepository keeps the append-only user directory and the current
// session pointer in a storage.Store.
type UserRepository struct {
	Store storage.Store
}

// All returns the user directory. A missing or malformed directory reads
// as empty.
func (m *UserRepository) All(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := storage.GetJSON(ctx, m.Store, storage.KeyUsers, &users)
	if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrCorrupt) {
		return []models.User{}, nil
	}
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (m *UserRepository) Insert(ctx context.Context, user models.User) error {
	users, err := m.All(ctx)
	if err != nil {
		return err
	}
	return storage.SetJSON(ctx, m.Store, storage.KeyUsers, append(users, user))
}

// Remove drops the user with id from the directory.
func (m *UserRepository) Remove(ctx context.Context, id string) error {
	users, err := m.All(ctx)
	if err != nil {
		return err
	}
	kept := users[:0]
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	return storage.SetJSON(ctx, m.Store, storage.KeyUsers, kept)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return m.find(ctx, func(u models.User) bool { return u.Email == email })
}

func (m *UserRepository) FindByCPF(ctx context.Context, cpf string) (models.User, error) {
	return m.find(ctx, func(u models.User) bool { return u.CPF == cpf })
}

func (m *UserRepository) find(ctx context.Context, match func(models.User) bool) (models.User, error) {
	users, err := m.All(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if match(u) {
			return u, nil
		}
	}
	return models.User{}, ErrNoRecord
}

// Current returns the signed-in user, or nil when nobody is.
func (m *UserRepository) Current(ctx context.Context) (*models.User, error) {
	var user models.User
	err := storage.GetJSON(ctx, m.Store, storage.KeyCurrentUser, &user)
	if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrCorrupt) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, nil
	}
	return &user, nil
}

func (m *UserRepository) SetCurrent(ctx context.Context, user models.User) error {
	return storage.SetJSON(ctx, m.Store, storage.KeyCurrentUser, user)
}

func (m *UserRepository) ClearCurrent(ctx context.Context) error {
	return m.Store.Delete(ctx, storage.KeyCurrentUser)
}
