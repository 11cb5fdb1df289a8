package savings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/savings-backend/internal/domain"
	"github.com/simaogato/savings-backend/internal/metrics"
	"go.uber.org/zap"
)

// Service handles savings ledger operations. Recording an entry never
// touches the referenced milestone; applying the contribution is a separate
// call to the milestone engine.
type Service struct {
	SavingsRepo domain.SavingsRepository
	Accounts    domain.AccountDirectory
	Logger      *zap.Logger
	Now         func() time.Time
}

// NewService creates a new savings Service
func NewService(savingsRepo domain.SavingsRepository, accounts domain.AccountDirectory, logger *zap.Logger) *Service {
	return &Service{
		SavingsRepo: savingsRepo,
		Accounts:    accounts,
		Logger:      logger,
		Now:         time.Now,
	}
}

// CreateSavingsInput carries a candidate ledger entry.
type CreateSavingsInput struct {
	OwnerID     uuid.UUID
	MilestoneID uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
}

// CreateSavings validates and records a savings entry.
// Checks run in the order owner, amount, milestone id, date.
func (s *Service) CreateSavings(ctx context.Context, in CreateSavingsInput) (*domain.SavingsEntry, error) {
	if in.OwnerID == uuid.Nil {
		return nil, fmt.Errorf("%w: owner is required", domain.ErrInvalidOwner)
	}
	if _, err := s.Accounts.Resolve(ctx, in.OwnerID); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, fmt.Errorf("%w: account %s does not exist", domain.ErrInvalidOwner, in.OwnerID)
		}
		return nil, err
	}

	entry := &domain.SavingsEntry{
		ID:          uuid.New(),
		OwnerID:     in.OwnerID,
		MilestoneID: in.MilestoneID,
		Amount:      in.Amount,
		Date:        domain.DateOf(in.Date),
	}
	if err := entry.Validate(s.Now()); err != nil {
		return nil, err
	}

	if err := s.SavingsRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	metrics.IncrementSavingsCreated()
	s.Logger.Info("Savings entry recorded",
		zap.String("savings_id", entry.ID.String()),
		zap.String("owner_id", entry.OwnerID.String()),
		zap.String("milestone_id", entry.MilestoneID.String()),
		zap.String("amount", entry.Amount.StringFixed(domain.AmountScale)),
	)
	return entry, nil
}

// GetSavings returns the entry with the given id, or nil when absent.
func (s *Service) GetSavings(ctx context.Context, id uuid.UUID) (*domain.SavingsEntry, error) {
	entry, err := s.SavingsRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrSavingsNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *Service) ListByDate(ctx context.Context, date time.Time) ([]*domain.SavingsEntry, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", domain.ErrInvalidArgument)
	}
	return s.SavingsRepo.ListByDate(ctx, domain.DateOf(date))
}

// GetByMilestoneID returns the oldest entry recorded against the milestone,
// or nil when there is none.
func (s *Service) GetByMilestoneID(ctx context.Context, milestoneID uuid.UUID) (*domain.SavingsEntry, error) {
	entries, err := s.ListByMilestoneID(ctx, milestoneID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return entries[0], nil
}

func (s *Service) ListByMilestoneID(ctx context.Context, milestoneID uuid.UUID) ([]*domain.SavingsEntry, error) {
	if milestoneID == uuid.Nil {
		return nil, fmt.Errorf("%w: milestone id is required", domain.ErrInvalidArgument)
	}
	return s.SavingsRepo.ListByMilestoneID(ctx, milestoneID)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.SavingsEntry, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("%w: owner id is required", domain.ErrInvalidArgument)
	}
	return s.SavingsRepo.ListByOwner(ctx, ownerID)
}

// DeleteSavings removes an entry. The milestone's saved amount is not
// adjusted.
func (s *Service) DeleteSavings(ctx context.Context, id uuid.UUID) error {
	if err := s.SavingsRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.Logger.Info("Savings entry deleted", zap.String("savings_id", id.String()))
	return nil
}
