package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/simaogato/savings-backend/internal/domain"
	"go.uber.org/zap"
)

const accountColumns = `id, first_name, last_name, email, password_hash, role, child_id, date_of_birth, created_at`

// uniqueViolation is the PostgreSQL error code for a unique constraint failure.
const uniqueViolation = "23505"

// accountRepository implements domain.AccountRepository and domain.AccountDirectory
type accountRepository struct {
	db     *DB
	logger *zap.Logger
}

// AccountStore is the account repository together with the directory view
// the milestone engine resolves owners through.
type AccountStore interface {
	domain.AccountRepository
	domain.AccountDirectory
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *DB, logger *zap.Logger) AccountStore {
	return &accountRepository{db: db, logger: logger}
}

// GetByID retrieves an account by its ID
func (r *accountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
		}
		return nil, storageError("get account by ID", err)
	}

	return account, nil
}

// Resolve implements domain.AccountDirectory
func (r *accountRepository) Resolve(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return r.GetByID(ctx, id)
}

// GetByEmail retrieves an account by its email address, ignoring case
func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: no account for email %q", domain.ErrAccountNotFound, email)
		}
		return nil, storageError("get account by email", err)
	}

	return account, nil
}

// Create creates a new account
func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	query := `
		INSERT INTO accounts (id, first_name, last_name, email, password_hash, role, child_id, date_of_birth)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	var childID interface{}
	if account.ChildID != nil {
		childID = *account.ChildID
	}

	err := r.db.QueryRowContext(ctx, query,
		account.ID,
		account.FirstName,
		account.LastName,
		strings.ToLower(account.Email),
		account.PasswordHash,
		string(account.Role),
		childID,
		domain.FormatDate(account.DateOfBirth),
	).Scan(&account.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("%w: email %q is already registered", domain.ErrAccountExists, account.Email)
		}
		r.logger.Error("Failed to insert account", zap.String("account_id", account.ID.String()), zap.Error(err))
		return storageError("create account", err)
	}

	return nil
}

// Delete removes an account by its ID
func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return storageError("delete account", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storageError("get rows affected", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
	}

	return nil
}

func scanAccount(row rowScanner) (*domain.Account, error) {
	var a domain.Account
	var role string
	var childID uuid.NullUUID

	if err := row.Scan(
		&a.ID,
		&a.FirstName,
		&a.LastName,
		&a.Email,
		&a.PasswordHash,
		&role,
		&childID,
		&a.DateOfBirth,
		&a.CreatedAt,
	); err != nil {
		return nil, err
	}

	a.Role = domain.AccountRole(role)
	if childID.Valid {
		id := childID.UUID
		a.ChildID = &id
	}
	a.DateOfBirth = domain.DateOf(a.DateOfBirth)

	return &a, nil
}
