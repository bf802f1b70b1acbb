// Package userspgxstore implements the usersrepo.Storer against postgres.
package userspgxstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taskflow/taskflow/core/repositories/usersrepo"
	"github.com/taskflow/taskflow/infrastructure/postgresdb"
	"github.com/taskflow/taskflow/sdk/cryptids"
	"github.com/taskflow/taskflow/sdk/logger"
)

type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

// GetByEmail retrieves an account by its unique email.
func (s *Store) GetByEmail(ctx context.Context, email string) (usersrepo.User, error) {
	query := `SELECT id, username, email, password FROM users WHERE email = @email`

	args := pgx.NamedArgs{
		"email": email,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return usersrepo.User{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[usersrepo.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return usersrepo.User{}, usersrepo.ErrUserNotFound
		}
		return usersrepo.User{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

// Create inserts a new account. A duplicate email surfaces as ErrEmailTaken
// through the unique constraint, covering the gap between the repository's
// pre-check and the insert.
func (s *Store) Create(ctx context.Context, input usersrepo.CreateUser) (usersrepo.User, error) {
	id, err := cryptids.GenerateID()
	if err != nil {
		return usersrepo.User{}, fmt.Errorf("generate id: %w", err)
	}

	query := `INSERT INTO users (id, username, email, password)
		VALUES (@id, @username, @email, @password)
		RETURNING id, username, email, password`

	args := pgx.NamedArgs{
		"id":       id,
		"username": input.Username,
		"email":    input.Email,
		"password": input.PasswordHash,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return usersrepo.User{}, translateCreateErr(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[usersrepo.User])
	if err != nil {
		return usersrepo.User{}, translateCreateErr(err)
	}

	return record, nil
}

// Update replaces the username and, when present, the password hash.
func (s *Store) Update(ctx context.Context, id string, input usersrepo.UpdateProfile) error {
	fields := []string{"username = @username"}
	args := pgx.NamedArgs{
		"id":       id,
		"username": input.Username,
	}

	if input.PasswordHash != nil {
		fields = append(fields, "password = @password")
		args["password"] = *input.PasswordHash
	}

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = @id`, strings.Join(fields, ", "))

	if _, err := s.pool.Exec(ctx, query, args); err != nil {
		return postgresdb.HandlePgError(err)
	}

	return nil
}

func translateCreateErr(err error) error {
	err = postgresdb.HandlePgError(err)
	if errors.Is(err, postgresdb.ErrDBDuplicatedEntry) {
		return usersrepo.ErrEmailTaken
	}
	return err
}
