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

const milestoneColumns = `id, owner_id, name, target_amount, saved_amount, start_date, completion_date, status`

// milestoneRepository implements domain.MilestoneRepository
type milestoneRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewMilestoneRepository creates a new milestone repository
func NewMilestoneRepository(db *DB, logger *zap.Logger) domain.MilestoneRepository {
	return &milestoneRepository{db: db, logger: logger}
}

// Create creates a new milestone
func (r *milestoneRepository) Create(ctx context.Context, m *domain.Milestone) error {
	query := `
		INSERT INTO milestones (` + milestoneColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.OwnerID,
		m.Name,
		m.TargetAmount.StringFixed(domain.AmountScale),
		m.SavedAmount.StringFixed(domain.AmountScale),
		domain.FormatDate(m.StartDate),
		nullableDate(m.CompletionDate),
		string(m.Status),
	)
	if err != nil {
		r.logger.Error("Failed to insert milestone", zap.String("milestone_id", m.ID.String()), zap.Error(err))
		return storageError("create milestone", err)
	}

	return nil
}

// GetByID retrieves a milestone by its ID
func (r *milestoneRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Milestone, error) {
	query := `SELECT ` + milestoneColumns + ` FROM milestones WHERE id = $1`

	m, err := scanMilestone(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrMilestoneNotFound, id)
		}
		return nil, storageError("get milestone by ID", err)
	}

	return m, nil
}

// GetByName retrieves the oldest milestone carrying the given name
func (r *milestoneRepository) GetByName(ctx context.Context, name string) (*domain.Milestone, error) {
	query := `
		SELECT ` + milestoneColumns + `
		FROM milestones
		WHERE name = $1
		ORDER BY created_at ASC, id ASC
		LIMIT 1
	`

	m, err := scanMilestone(r.db.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: no milestone named %q", domain.ErrMilestoneNotFound, name)
		}
		return nil, storageError("get milestone by name", err)
	}

	return m, nil
}

// ListByStartDate retrieves the milestones that started on date
func (r *milestoneRepository) ListByStartDate(ctx context.Context, date time.Time) ([]*domain.Milestone, error) {
	return r.list(ctx, "list milestones by start date", `start_date = $1`, domain.FormatDate(date))
}

// ListByCompletionDate retrieves the milestones completed on date
func (r *milestoneRepository) ListByCompletionDate(ctx context.Context, date time.Time) ([]*domain.Milestone, error) {
	return r.list(ctx, "list milestones by completion date", `completion_date = $1`, domain.FormatDate(date))
}

// ListByStatus retrieves the milestones in the given state
func (r *milestoneRepository) ListByStatus(ctx context.Context, status domain.MilestoneStatus) ([]*domain.Milestone, error) {
	return r.list(ctx, "list milestones by status", `status = $1`, string(status))
}

// ListByOwner retrieves the milestones of one account
func (r *milestoneRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Milestone, error) {
	return r.list(ctx, "list milestones by owner", `owner_id = $1`, ownerID)
}

func (r *milestoneRepository) list(ctx context.Context, action, where string, arg any) ([]*domain.Milestone, error) {
	query := `
		SELECT ` + milestoneColumns + `
		FROM milestones
		WHERE ` + where + `
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, storageError(action, err)
	}
	defer rows.Close()

	milestones := make([]*domain.Milestone, 0)
	for rows.Next() {
		m, err := scanMilestone(rows)
		if err != nil {
			return nil, storageError(action, err)
		}
		milestones = append(milestones, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(action, err)
	}

	return milestones, nil
}

// Update overwrites the mutable fields of an existing milestone
func (r *milestoneRepository) Update(ctx context.Context, m *domain.Milestone) error {
	return r.update(ctx, r.db, m)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *milestoneRepository) update(ctx context.Context, ex execer, m *domain.Milestone) error {
	query := `
		UPDATE milestones
		SET name = $2, target_amount = $3, saved_amount = $4, completion_date = $5, status = $6
		WHERE id = $1
	`

	result, err := ex.ExecContext(ctx, query,
		m.ID,
		m.Name,
		m.TargetAmount.StringFixed(domain.AmountScale),
		m.SavedAmount.StringFixed(domain.AmountScale),
		nullableDate(m.CompletionDate),
		string(m.Status),
	)
	if err != nil {
		return storageError("update milestone", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storageError("get rows affected", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrMilestoneNotFound, m.ID)
	}

	return nil
}

// Modify locks the milestone row for the duration of a transaction, applies
// mutate to the locked state and writes it back. A second Modify on the same
// row blocks on the lock until the first commits or rolls back.
func (r *milestoneRepository) Modify(ctx context.Context, id uuid.UUID, mutate domain.MilestoneMutation) (*domain.Milestone, error) {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storageError("begin transaction", err)
	}
	defer dbTx.Rollback()

	query := `SELECT ` + milestoneColumns + ` FROM milestones WHERE id = $1 FOR UPDATE`

	m, err := scanMilestone(dbTx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrMilestoneNotFound, id)
		}
		return nil, storageError("lock milestone", err)
	}

	if err := mutate(m); err != nil {
		return nil, err
	}

	if err := r.update(ctx, dbTx, m); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(); err != nil {
		return nil, storageError("commit transaction", err)
	}

	r.logger.Debug("Milestone modified",
		zap.String("milestone_id", m.ID.String()),
		zap.String("saved_amount", m.SavedAmount.StringFixed(domain.AmountScale)),
		zap.String("status", string(m.Status)),
	)
	return m, nil
}

// Delete removes a milestone
func (r *milestoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM milestones WHERE id = $1`, id)
	if err != nil {
		return storageError("delete milestone", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storageError("get rows affected", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrMilestoneNotFound, id)
	}

	return nil
}

func scanMilestone(row rowScanner) (*domain.Milestone, error) {
	var m domain.Milestone
	var targetStr, savedStr, status string
	var completionDate sql.NullTime

	if err := row.Scan(
		&m.ID,
		&m.OwnerID,
		&m.Name,
		&targetStr,
		&savedStr,
		&m.StartDate,
		&completionDate,
		&status,
	); err != nil {
		return nil, err
	}

	// Parse target_amount (NUMERIC)
	target, err := decimal.NewFromString(targetStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse target_amount: %w", err)
	}
	m.TargetAmount = target

	saved, err := decimal.NewFromString(savedStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse saved_amount: %w", err)
	}
	m.SavedAmount = saved

	m.StartDate = domain.DateOf(m.StartDate)
	if completionDate.Valid {
		d := domain.DateOf(completionDate.Time)
		m.CompletionDate = &d
	}
	m.Status = domain.MilestoneStatus(status)

	return &m, nil
}

func nullableDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return domain.FormatDate(*t)
}
