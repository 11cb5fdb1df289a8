package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/savings-backend/internal/domain"
	"go.uber.org/zap"
)

const savingsColumns = `id, owner_id, milestone_id, amount, date`

// savingsRepository implements domain.SavingsRepository
type savingsRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewSavingsRepository creates a new savings ledger repository
func NewSavingsRepository(db *DB, logger *zap.Logger) domain.SavingsRepository {
	return &savingsRepository{db: db, logger: logger}
}

// Create records a new savings entry
func (r *savingsRepository) Create(ctx context.Context, entry *domain.SavingsEntry) error {
	query := `
		INSERT INTO savings (` + savingsColumns + `)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.OwnerID,
		entry.MilestoneID,
		entry.Amount.StringFixed(domain.AmountScale),
		domain.FormatDate(entry.Date),
	)
	if err != nil {
		r.logger.Error("Failed to insert savings entry", zap.String("savings_id", entry.ID.String()), zap.Error(err))
		return storageError("create savings entry", err)
	}

	return nil
}

// GetByID retrieves a savings entry by its ID
func (r *savingsRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SavingsEntry, error) {
	query := `SELECT ` + savingsColumns + ` FROM savings WHERE id = $1`

	entry, err := scanSavings(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSavingsNotFound, id)
		}
		return nil, storageError("get savings entry by ID", err)
	}

	return entry, nil
}

// ListByDate retrieves all entries recorded on the given date
func (r *savingsRepository) ListByDate(ctx context.Context, date time.Time) ([]*domain.SavingsEntry, error) {
	return r.list(ctx, "list savings by date", `date = $1`, domain.FormatDate(date))
}

// ListByMilestoneID retrieves the entries for a milestone, oldest first
func (r *savingsRepository) ListByMilestoneID(ctx context.Context, milestoneID uuid.UUID) ([]*domain.SavingsEntry, error) {
	return r.list(ctx, "list savings by milestone", `milestone_id = $1`, milestoneID)
}

// ListByOwner retrieves all entries recorded by an account
func (r *savingsRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.SavingsEntry, error) {
	return r.list(ctx, "list savings by owner", `owner_id = $1`, ownerID)
}

func (r *savingsRepository) list(ctx context.Context, action, where string, arg any) ([]*domain.SavingsEntry, error) {
	query := `
		SELECT ` + savingsColumns + `
		FROM savings
		WHERE ` + where + `
		ORDER BY date ASC, created_at ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, storageError(action, err)
	}
	defer rows.Close()

	entries := make([]*domain.SavingsEntry, 0)
	for rows.Next() {
		entry, err := scanSavings(rows)
		if err != nil {
			return nil, storageError(action, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(action, err)
	}

	return entries, nil
}

// Delete removes an entry
func (r *savingsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM savings WHERE id = $1`, id)
	if err != nil {
		return storageError("delete savings entry", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storageError("get rows affected", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrSavingsNotFound, id)
	}

	return nil
}

func scanSavings(row rowScanner) (*domain.SavingsEntry, error) {
	var entry domain.SavingsEntry
	var amountStr string

	if err := row.Scan(
		&entry.ID,
		&entry.OwnerID,
		&entry.MilestoneID,
		&amountStr,
		&entry.Date,
	); err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount: %w", err)
	}
	entry.Amount = amount
	entry.Date = domain.DateOf(entry.Date)

	return &entry, nil
}
