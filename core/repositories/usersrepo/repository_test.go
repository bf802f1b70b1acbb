package usersrepo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/taskflow/taskflow/core/repositories/usersrepo"
	"github.com/taskflow/taskflow/sdk/logger"
	"github.com/taskflow/taskflow/sdk/passwords"
)

type stubStorer struct {
	byEmail    map[string]usersrepo.User
	lastCreate usersrepo.CreateUser
	lastID     string
	lastUpdate usersrepo.UpdateProfile
}

func (s *stubStorer) GetByEmail(ctx context.Context, email string) (usersrepo.User, error) {
	user, ok := s.byEmail[email]
	if !ok {
		return usersrepo.User{}, usersrepo.ErrUserNotFound
	}
	return user, nil
}

func (s *stubStorer) Create(ctx context.Context, input usersrepo.CreateUser) (usersrepo.User, error) {
	s.lastCreate = input
	return usersrepo.User{
		ID:           "u1",
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
	}, nil
}

func (s *stubStorer) Update(ctx context.Context, id string, input usersrepo.UpdateProfile) error {
	s.lastID = id
	s.lastUpdate = input
	return nil
}

func newRepo(storer *stubStorer) *usersrepo.Repository {
	return usersrepo.NewRepository(logger.NewDefault(), storer)
}

func TestRegisterHashesPassword(t *testing.T) {
	storer := &stubStorer{byEmail: map[string]usersrepo.User{}}
	repo := newRepo(storer)

	user, err := repo.Register(context.Background(), "claire", "claire@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if user.PasswordHash == "s3cret" {
		t.Fatal("Expected the password to be stored hashed, not plain")
	}
	if !passwords.Verify("s3cret", storer.lastCreate.PasswordHash) {
		t.Error("Expected the stored hash to verify against the original password")
	}
}

func TestRegisterTakenEmail(t *testing.T) {
	storer := &stubStorer{byEmail: map[string]usersrepo.User{
		"claire@example.com": {ID: "u1", Email: "claire@example.com"},
	}}
	repo := newRepo(storer)

	_, err := repo.Register(context.Background(), "claire", "claire@example.com", "s3cret")
	if !errors.Is(err, usersrepo.ErrEmailTaken) {
		t.Errorf("Expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	hash, err := passwords.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	storer := &stubStorer{byEmail: map[string]usersrepo.User{
		"claire@example.com": {ID: "u1", Username: "claire", Email: "claire@example.com", PasswordHash: hash},
	}}
	repo := newRepo(storer)

	user, err := repo.Authenticate(context.Background(), "claire@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if user.ID != "u1" || user.Username != "claire" {
		t.Errorf("Unexpected identity: %+v", user)
	}
}

// Both unknown email and wrong password return the same opaque error.
func TestAuthenticateFailureIsOpaque(t *testing.T) {
	hash, err := passwords.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	storer := &stubStorer{byEmail: map[string]usersrepo.User{
		"claire@example.com": {ID: "u1", Email: "claire@example.com", PasswordHash: hash},
	}}
	repo := newRepo(storer)

	_, wrongPassword := repo.Authenticate(context.Background(), "claire@example.com", "nope")
	_, unknownEmail := repo.Authenticate(context.Background(), "nobody@example.com", "s3cret")

	if !errors.Is(wrongPassword, usersrepo.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for wrong password, got %v", wrongPassword)
	}
	if !errors.Is(unknownEmail, usersrepo.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for unknown email, got %v", unknownEmail)
	}
}

func TestUpdateProfileEmptyPasswordKeepsHash(t *testing.T) {
	storer := &stubStorer{byEmail: map[string]usersrepo.User{}}
	repo := newRepo(storer)

	if err := repo.UpdateProfile(context.Background(), "u1", "claire2", ""); err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}

	if storer.lastUpdate.Username != "claire2" {
		t.Errorf("Expected username 'claire2', got '%s'", storer.lastUpdate.Username)
	}
	if storer.lastUpdate.PasswordHash != nil {
		t.Error("Expected nil password hash when no new password was supplied")
	}
}

func TestUpdateProfileRehashesNewPassword(t *testing.T) {
	storer := &stubStorer{byEmail: map[string]usersrepo.User{}}
	repo := newRepo(storer)

	if err := repo.UpdateProfile(context.Background(), "u1", "claire", "newpass"); err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}

	if storer.lastUpdate.PasswordHash == nil {
		t.Fatal("Expected a new password hash")
	}
	if !passwords.Verify("newpass", *storer.lastUpdate.PasswordHash) {
		t.Error("Expected the new hash to verify against the new password")
	}
}
