// Package auth implements the storefront's mock sign-in: e-mail
// registration and login, a simulated Google login, and logout.
//
// Passwords are accepted and thrown away. Nothing is hashed, stored or
// compared, so any password signs a registered e-mail in.
package auth

import (
	"context"
	"errors"
	"time"

	"decoration_room/internal/models"
	"decoration_room/internal/repository"
	"decoration_room/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrEmailTaken    = errors.New("auth: email already registered")
	ErrCPFTaken      = errors.New("auth: cpf already registered")
	ErrEmailNotFound = errors.New("auth: email not found")
)

// GoogleUser is the identity the simulated Google login signs in as.
var GoogleUser = models.User{
	Name:         "Usuário Google",
	Email:        "usuario@gmail.com",
	CPF:          "000.000.000-00",
	Phone:        "(00) 00000-0000",
	AuthProvider: models.ProviderGoogle,
}

type Manager struct {
	users *repository.UserRepository
	now   func() time.Time
}

func NewManager(store storage.Store) *Manager {
	return &Manager{
		users: &repository.UserRepository{Store: store},
		now:   time.Now,
	}
}

// WithClock replaces the clock used to stamp new users.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

func newID(prefix string) string {
	return prefix + primitive.NewObjectID().Hex()
}

// Register adds an e-mail user to the directory and signs them in. E-mail
// and CPF must not belong to an existing user; on failure neither the
// directory nor the session changes.
func (m *Manager) Register(ctx context.Context, name, email, password, cpf, phone string) (models.User, error) {
	if _, err := m.users.FindByEmail(ctx, email); !errors.Is(err, repository.ErrNoRecord) {
		if err == nil {
			err = ErrEmailTaken
		}
		return models.User{}, err
	}
	if _, err := m.users.FindByCPF(ctx, cpf); !errors.Is(err, repository.ErrNoRecord) {
		if err == nil {
			err = ErrCPFTaken
		}
		return models.User{}, err
	}

	user := models.User{
		ID:           newID("user-"),
		Name:         name,
		Email:        email,
		CPF:          cpf,
		Phone:        phone,
		AuthProvider: models.ProviderEmail,
		CreatedAt:    m.now().UTC(),
	}
	if err := m.signUp(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// signUp adds user to the directory and signs them in. If the sign-in
// cannot be recorded the directory entry is taken back out.
func (m *Manager) signUp(ctx context.Context, user models.User) error {
	if err := m.users.Insert(ctx, user); err != nil {
		return err
	}
	if err := m.users.SetCurrent(ctx, user); err != nil {
		if rerr := m.users.Remove(ctx, user.ID); rerr != nil {
			return errors.Join(err, rerr)
		}
		return err
	}
	return nil
}

// Login signs in the user registered under email. The password is not
// checked.
func (m *Manager) Login(ctx context.Context, email, password string) (models.User, error) {
	user, err := m.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNoRecord) {
		return models.User{}, ErrEmailNotFound
	}
	if err != nil {
		return models.User{}, err
	}

	if err := m.users.SetCurrent(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// LoginGoogle simulates a Google sign-in. The first call registers
// GoogleUser; later calls reuse the directory entry with its e-mail. The
// boolean reports whether the user was created by this call.
func (m *Manager) LoginGoogle(ctx context.Context) (models.User, bool, error) {
	user, err := m.users.FindByEmail(ctx, GoogleUser.Email)
	switch {
	case err == nil:
		if err := m.users.SetCurrent(ctx, user); err != nil {
			return models.User{}, false, err
		}
		return user, false, nil
	case !errors.Is(err, repository.ErrNoRecord):
		return models.User{}, false, err
	}

	user = GoogleUser
	user.ID = newID("user-google-")
	user.CreatedAt = m.now().UTC()
	if err := m.signUp(ctx, user); err != nil {
		return models.User{}, false, err
	}
	return user, true, nil
}

// Logout clears the session. Logging out while signed out is a no-op.
func (m *Manager) Logout(ctx context.Context) error {
	return m.users.ClearCurrent(ctx)
}

// CurrentUser returns the signed-in user, or nil.
func (m *Manager) CurrentUser(ctx context.Context) (*models.User, error) {
	return m.users.Current(ctx)
}
