package milestone

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/savings-backend/internal/domain"
	"github.com/simaogato/savings-backend/internal/metrics"
	"go.uber.org/zap"
)

// Service validates milestone creation, applies contributions and decides
// completion transitions.
type Service struct {
	MilestoneRepo domain.MilestoneRepository
	Accounts      domain.AccountDirectory
	Logger        *zap.Logger
	Now           func() time.Time
}

// NewService creates a new milestone Service
func NewService(milestoneRepo domain.MilestoneRepository, accounts domain.AccountDirectory, logger *zap.Logger) *Service {
	return &Service{
		MilestoneRepo: milestoneRepo,
		Accounts:      accounts,
		Logger:        logger,
		Now:           time.Now,
	}
}

// CreateMilestoneInput carries a candidate milestone.
type CreateMilestoneInput struct {
	OwnerID      uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	StartDate    time.Time
	SavedAmount  decimal.NullDecimal // zero when not valid
}

// CreateMilestone validates the input and persists a new active milestone.
// Checks run in the order owner, name, target amount, start date, initial
// saved amount.
func (s *Service) CreateMilestone(ctx context.Context, in CreateMilestoneInput) (*domain.Milestone, error) {
	if err := s.resolveOwner(ctx, in.OwnerID); err != nil {
		return nil, err
	}

	saved := decimal.Zero
	if in.SavedAmount.Valid {
		saved = in.SavedAmount.Decimal
	}

	m := &domain.Milestone{
		ID:           uuid.New(),
		OwnerID:      in.OwnerID,
		Name:         strings.TrimSpace(in.Name),
		TargetAmount: in.TargetAmount,
		SavedAmount:  saved,
		StartDate:    domain.DateOf(in.StartDate),
		Status:       domain.MilestoneStatusActive,
	}
	if err := m.Validate(s.Now()); err != nil {
		return nil, err
	}

	if err := s.MilestoneRepo.Create(ctx, m); err != nil {
		return nil, err
	}

	s.Logger.Info("Milestone created",
		zap.String("milestone_id", m.ID.String()),
		zap.String("owner_id", m.OwnerID.String()),
		zap.String("target_amount", m.TargetAmount.StringFixed(domain.AmountScale)),
	)
	return m, nil
}

// AddToSavedAmount applies amount to the milestone's saved amount and
// completes it when the target is reached. The amount is checked before the
// milestone is looked up. The read-modify-write runs under the store's lock
// for the milestone, so concurrent contributions can never push the saved
// amount past the target.
func (s *Service) AddToSavedAmount(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*domain.Milestone, error) {
	if err := domain.ValidateContribution(amount); err != nil {
		metrics.IncrementContribution(metrics.ResultRejected)
		return nil, err
	}

	today := s.Now()
	var completedNow bool
	m, err := s.MilestoneRepo.Modify(ctx, id, func(m *domain.Milestone) error {
		wasCompleted := m.IsCompleted()
		if err := m.ApplyContribution(amount, today); err != nil {
			return err
		}
		completedNow = !wasCompleted && m.IsCompleted()
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrStorageFailure) {
			metrics.IncrementContribution(metrics.ResultFailed)
		} else {
			metrics.IncrementContribution(metrics.ResultRejected)
		}
		s.Logger.Info("Contribution rejected",
			zap.String("milestone_id", id.String()),
			zap.String("amount", amount.String()),
			zap.Error(err),
		)
		return nil, err
	}

	metrics.IncrementContribution(metrics.ResultAccepted)
	s.Logger.Info("Contribution applied",
		zap.String("milestone_id", m.ID.String()),
		zap.String("amount", amount.StringFixed(domain.AmountScale)),
		zap.String("saved_amount", m.SavedAmount.StringFixed(domain.AmountScale)),
		zap.String("status", string(m.Status)),
	)
	if completedNow {
		metrics.IncrementCompletion(metrics.PathContribution)
		s.Logger.Info("Milestone reached its target", zap.String("milestone_id", m.ID.String()))
	}
	return m, nil
}

// MarkCompleted forces the milestone into the completed state regardless of
// its saved amount.
func (s *Service) MarkCompleted(ctx context.Context, id uuid.UUID) (*domain.Milestone, error) {
	today := s.Now()
	m, err := s.MilestoneRepo.Modify(ctx, id, func(m *domain.Milestone) error {
		return m.Complete(today)
	})
	if err != nil {
		return nil, err
	}

	metrics.IncrementCompletion(metrics.PathManual)
	s.Logger.Info("Milestone marked completed",
		zap.String("milestone_id", m.ID.String()),
		zap.String("saved_amount", m.SavedAmount.StringFixed(domain.AmountScale)),
		zap.String("target_amount", m.TargetAmount.StringFixed(domain.AmountScale)),
	)
	return m, nil
}

// GetMilestone returns the milestone with the given id, or nil when absent.
func (s *Service) GetMilestone(ctx context.Context, id uuid.UUID) (*domain.Milestone, error) {
	return absentAsNil(s.MilestoneRepo.GetByID(ctx, id))
}

// GetMilestoneByName returns one milestone carrying name, or nil when none does.
func (s *Service) GetMilestoneByName(ctx context.Context, name string) (*domain.Milestone, error) {
	return absentAsNil(s.MilestoneRepo.GetByName(ctx, name))
}

func (s *Service) ListByStartDate(ctx context.Context, date time.Time) ([]*domain.Milestone, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: start date is required", domain.ErrInvalidArgument)
	}
	return s.MilestoneRepo.ListByStartDate(ctx, domain.DateOf(date))
}

func (s *Service) ListByCompletionDate(ctx context.Context, date time.Time) ([]*domain.Milestone, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: completion date is required", domain.ErrInvalidArgument)
	}
	return s.MilestoneRepo.ListByCompletionDate(ctx, domain.DateOf(date))
}

func (s *Service) ListByStatus(ctx context.Context, status domain.MilestoneStatus) ([]*domain.Milestone, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown milestone status %q", domain.ErrInvalidArgument, status)
	}
	return s.MilestoneRepo.ListByStatus(ctx, status)
}

// ListByOwner returns the milestones of an existing account.
func (s *Service) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Milestone, error) {
	if err := s.resolveOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.MilestoneRepo.ListByOwner(ctx, ownerID)
}

// DeleteMilestone removes a milestone. Its savings entries are kept.
func (s *Service) DeleteMilestone(ctx context.Context, id uuid.UUID) error {
	if err := s.MilestoneRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.Logger.Info("Milestone deleted", zap.String("milestone_id", id.String()))
	return nil
}

// resolveOwner maps an unknown owner to ErrInvalidOwner. Directory storage
// failures pass through unchanged.
func (s *Service) resolveOwner(ctx context.Context, ownerID uuid.UUID) error {
	if ownerID == uuid.Nil {
		return fmt.Errorf("%w: owner is required", domain.ErrInvalidOwner)
	}
	if _, err := s.Accounts.Resolve(ctx, ownerID); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return fmt.Errorf("%w: account %s does not exist", domain.ErrInvalidOwner, ownerID)
		}
		return err
	}
	return nil
}

func absentAsNil(m *domain.Milestone, err error) (*domain.Milestone, error) {
	if errors.Is(err, domain.ErrMilestoneNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}
