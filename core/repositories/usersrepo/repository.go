// Package usersrepo owns account state: registration with the unique email
// rule, the stateless credential check, and profile updates.
package usersrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskflow/taskflow/sdk/logger"
	"github.com/taskflow/taskflow/sdk/passwords"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already exists")

	// ErrInvalidCredentials deliberately carries no hint about which of
	// email or password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Storer defines the data storage interface for users.
type Storer interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, input CreateUser) (User, error)
	Update(ctx context.Context, id string, input UpdateProfile) error
}

// Repository provides access to user storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new user repository.
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// Register creates an account. The email is checked for uniqueness before
// anything is written; the unique constraint on the column backs this up.
func (r *Repository) Register(ctx context.Context, username, email, password string) (User, error) {
	_, err := r.storer.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return User{}, ErrEmailTaken
	case !errors.Is(err, ErrUserNotFound):
		return User{}, fmt.Errorf("check email %s: %w", email, err)
	}

	hash, err := passwords.Hash(password)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := r.storer.Create(ctx, CreateUser{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}

	r.log.InfoContext(ctx, "user registered", "id", user.ID)
	return user, nil
}

// Authenticate performs the stateless credential check. No token is issued;
// the caller just gets the account identity back.
func (r *Repository) Authenticate(ctx context.Context, email, password string) (User, error) {
	user, err := r.storer.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, fmt.Errorf("get user by email: %w", err)
	}

	if !passwords.Verify(password, user.PasswordHash) {
		return User{}, ErrInvalidCredentials
	}

	return user, nil
}

// UpdateProfile replaces the username and rehashes the password only when a
// new one was supplied. An empty password leaves the stored hash untouched.
func (r *Repository) UpdateProfile(ctx context.Context, id, username, password string) error {
	input := UpdateProfile{
		Username: username,
	}

	if password != "" {
		hash, err := passwords.Hash(password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		input.PasswordHash = &hash
	}

	if err := r.storer.Update(ctx, id, input); err != nil {
		return fmt.Errorf("update profile %s: %w", id, err)
	}
	return nil
}
