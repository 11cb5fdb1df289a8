package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/savings-backend/internal/domain"
)

// OwnerProgress summarises the milestones of one account
type OwnerProgress struct {
	OwnerID          uuid.UUID
	TotalTarget      decimal.Decimal
	TotalSaved       decimal.Decimal
	ActiveCount      int
	CompletedCount   int
	TotalContributed decimal.Decimal // sum of the owner's ledger entries
}

// DashboardService handles dashboard-related operations
type DashboardService struct {
	MilestoneRepo domain.MilestoneRepository
	SavingsRepo   domain.SavingsRepository
	Accounts      domain.AccountDirectory
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(
	milestoneRepo domain.MilestoneRepository,
	savingsRepo domain.SavingsRepository,
	accounts domain.AccountDirectory,
) *DashboardService {
	return &DashboardService{
		MilestoneRepo: milestoneRepo,
		SavingsRepo:   savingsRepo,
		Accounts:      accounts,
	}
}

// GetOwnerProgress aggregates an owner's milestones and ledger.
// Logic:
//   - TotalTarget / TotalSaved: sums over every milestone the owner holds
//   - ActiveCount / CompletedCount: milestones per status
//   - TotalContributed: sum of the owner's savings entries, which can differ
//     from TotalSaved because the ledger and milestones are updated separately
func (s *DashboardService) GetOwnerProgress(ctx context.Context, ownerID uuid.UUID) (*OwnerProgress, error) {
	if _, err := s.Accounts.Resolve(ctx, ownerID); err != nil {
		return nil, err
	}

	milestones, err := s.MilestoneRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list milestones: %w", err)
	}

	progress := &OwnerProgress{
		OwnerID:          ownerID,
		TotalTarget:      decimal.Zero,
		TotalSaved:       decimal.Zero,
		TotalContributed: decimal.Zero,
	}
	for _, m := range milestones {
		progress.TotalTarget = progress.TotalTarget.Add(m.TargetAmount)
		progress.TotalSaved = progress.TotalSaved.Add(m.SavedAmount)
		switch m.Status {
		case domain.MilestoneStatusActive:
			progress.ActiveCount++
		case domain.MilestoneStatusCompleted:
			progress.CompletedCount++
		}
	}

	entries, err := s.SavingsRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list savings: %w", err)
	}
	for _, e := range entries {
		progress.TotalContributed = progress.TotalContributed.Add(e.Amount)
	}

	return progress, nil
}
