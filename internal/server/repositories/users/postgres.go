package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sampleapp/internal/common"
	"github.com/dmitrijs2005/sampleapp/internal/dbx"
	"github.com/dmitrijs2005/sampleapp/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation = "23505"
	// an id that is not a valid uuid cannot name any row
	pgInvalidTextRepresentation = "22P02"
)

const pgSelectUser = `SELECT id, name, email, encrypted_password, salt, admin, created_at, updated_at
		 FROM users`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (id, name, email, encrypted_password, salt, admin, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 `

	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Email, user.EncryptedPassword, user.Salt, user.Admin, now, now)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.CreatedAt, user.UpdatedAt = now, now
	return user, nil
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, pgSelectUser+`
		 WHERE lower(email) = $1
		 `, email)
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, pgSelectUser+`
		 WHERE id = $1
		 `, id)
}

func (r *PostgresRepository) FindByIDForUpdate(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, pgSelectUser+`
		 WHERE id = $1
		 FOR UPDATE
		 `, id)
}

func (r *PostgresRepository) findOne(ctx context.Context, query string, arg any) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Name, &user.Email, &user.EncryptedPassword,
		&user.Salt, &user.Admin, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// UpdateCredential replaces salt and hash in one statement so they can
// never be observed out of sync.
func (r *PostgresRepository) UpdateCredential(ctx context.Context, id, salt, encryptedPassword string) error {
	query :=
		`UPDATE users SET salt = $2, encrypted_password = $3, updated_at = $4
		 WHERE id = $1
		 `
	return r.execOne(ctx, query, id, salt, encryptedPassword, time.Now().UTC())
}

func (r *PostgresRepository) SetAdmin(ctx context.Context, id string, admin bool) error {
	query :=
		`UPDATE users SET admin = $2, updated_at = $3
		 WHERE id = $1
		 `
	return r.execOne(ctx, query, id, admin, time.Now().UTC())
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query :=
		`DELETE FROM users
		 WHERE id = $1
		 `
	return r.execOne(ctx, query, id)
}

func (r *PostgresRepository) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isInvalidID(err) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func isInvalidID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgInvalidTextRepresentation
}
