package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/savings-backend/internal/domain"
	"go.uber.org/zap"
)

// customerRepository implements domain.CustomerRepository
type customerRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewCustomerRepository creates a new parent/child relationship repository
func NewCustomerRepository(db *DB, logger *zap.Logger) domain.CustomerRepository {
	return &customerRepository{db: db, logger: logger}
}

// GetByID retrieves a relationship by its ID
func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	query := `SELECT id, parent_id, child_id FROM customers WHERE id = $1`

	var c domain.Customer
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.ParentID, &c.ChildID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCustomerNotFound, id)
		}
		return nil, storageError("get customer by ID", err)
	}

	return &c, nil
}

// Create creates a new relationship
func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `
		INSERT INTO customers (id, parent_id, child_id)
		VALUES ($1, $2, $3)
	`

	if _, err := r.db.ExecContext(ctx, query, c.ID, c.ParentID, c.ChildID); err != nil {
		r.logger.Error("Failed to insert customer", zap.String("customer_id", c.ID.String()), zap.Error(err))
		return storageError("create customer", err)
	}

	return nil
}

// Delete removes a relationship by its ID
func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return storageError("delete customer", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storageError("get rows affected", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrCustomerNotFound, id)
	}

	return nil
}
