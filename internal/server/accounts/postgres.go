package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avetisov/authsvc/internal/common"
	"github.com/avetisov/authsvc/internal/dbx"
)

// PostgresRepository implements Repository over any dbx.DBTX, so the same
// code runs against *sql.DB and an open transaction.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	query :=
		`SELECT EXISTS (SELECT 1 FROM account_emails WHERE email = $1)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return exists, nil
}

func (r *PostgresRepository) CreateAccount(ctx context.Context, account *Account) (*Account, error) {
	query :=
		`INSERT INTO accounts (email_signup)
         VALUES ($1)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		account.EmailSignup).Scan(&account.ID, &account.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

func (r *PostgresRepository) CreateEmail(ctx context.Context, email *AccountEmail) (*AccountEmail, error) {
	query :=
		`INSERT INTO account_emails (account_id, email)
         VALUES ($1, $2)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		email.AccountID, email.Email).Scan(&email.ID, &email.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return email, nil
}

func (r *PostgresRepository) CreatePassword(ctx context.Context, password *AccountPassword) (*AccountPassword, error) {
	query :=
		`INSERT INTO account_passwords (account_id, hash, salt)
         VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		password.AccountID, password.Hash, password.Salt).Scan(&password.ID, &password.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return password, nil
}

func (r *PostgresRepository) CreateSalt(ctx context.Context, salt *AccountSalt) (*AccountSalt, error) {
	query :=
		`INSERT INTO account_salts (account_id, salt)
         VALUES ($1, $2)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		salt.AccountID, salt.Salt).Scan(&salt.ID, &salt.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return salt, nil
}

func (r *PostgresRepository) CreatePublicID(ctx context.Context, publicID *AccountPublicID) (*AccountPublicID, error) {
	query :=
		`INSERT INTO account_public_ids (account_id, public_id)
         VALUES ($1, $2)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		publicID.AccountID, publicID.PublicID).Scan(&publicID.ID, &publicID.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return publicID, nil
}

func (r *PostgresRepository) GetLoginDataByEmail(ctx context.Context, email string) (*LoginData, error) {
	query :=
		`SELECT a.id, e.email, p.hash, p.salt, s.salt, pid.public_id
		 FROM accounts a
		 JOIN account_emails e ON e.account_id = a.id
		 JOIN account_passwords p ON p.account_id = a.id
		 JOIN account_salts s ON s.account_id = a.id
		 JOIN account_public_ids pid ON pid.account_id = a.id
		 WHERE e.email = $1
		 `

	data := &LoginData{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&data.AccountID, &data.Email, &data.PasswordHash, &data.PasswordSalt, &data.StoredSalt, &data.PublicID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return data, nil
}

var _ Repository = (*PostgresRepository)(nil)
