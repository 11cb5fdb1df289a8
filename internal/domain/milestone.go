package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MilestoneStatus is the lifecycle state of a milestone.
type MilestoneStatus string

const (
	MilestoneStatusActive    MilestoneStatus = "active"
	MilestoneStatusCompleted MilestoneStatus = "completed"
)

// ParseMilestoneStatus maps a status label to its MilestoneStatus.
// Unknown labels fail with ErrInvalidArgument.
func ParseMilestoneStatus(s string) (MilestoneStatus, error) {
	switch MilestoneStatus(s) {
	case MilestoneStatusActive:
		return MilestoneStatusActive, nil
	case MilestoneStatusCompleted:
		return MilestoneStatusCompleted, nil
	default:
		return "", fmt.Errorf("%w: unknown milestone status %q", ErrInvalidArgument, s)
	}
}

// IsValid reports whether s is one of the declared statuses.
func (s MilestoneStatus) IsValid() bool {
	switch s {
	case MilestoneStatusActive, MilestoneStatusCompleted:
		return true
	default:
		return false
	}
}

// AmountScale is the number of fractional digits every stored amount keeps.
const AmountScale = 2

// Milestone is a savings goal owned by one account.
//
// SavedAmount only grows, through ApplyContribution, and never passes
// TargetAmount. Status moves from active to completed exactly once; the
// transition sets CompletionDate.
type Milestone struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Name           string
	TargetAmount   decimal.Decimal
	SavedAmount    decimal.Decimal
	StartDate      time.Time
	CompletionDate *time.Time // nil until completed
	Status         MilestoneStatus
}

// Validate checks a candidate milestone before it is persisted. Rules run in
// a fixed order so the reported reason is deterministic: name, target amount,
// start date, then the initial saved amount. Ownership is checked by the
// caller against the account directory before Validate runs.
func (m *Milestone) Validate(now time.Time) error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: milestone name cannot be empty", ErrInvalidName)
	}

	if !m.TargetAmount.IsPositive() {
		return fmt.Errorf("%w: target amount must be greater than zero", ErrInvalidTargetAmount)
	}
	if !hasAmountScale(m.TargetAmount) {
		return fmt.Errorf("%w: target amount must have at most %d decimal places", ErrInvalidTargetAmount, AmountScale)
	}

	if m.StartDate.IsZero() {
		return fmt.Errorf("%w: start date cannot be empty", ErrInvalidStartDate)
	}
	if isAfterToday(m.StartDate, now) {
		return fmt.Errorf("%w: start date cannot be in the future", ErrInvalidStartDate)
	}

	if m.SavedAmount.IsNegative() {
		return fmt.Errorf("%w: saved amount cannot be negative", ErrInvalidAmount)
	}
	if !hasAmountScale(m.SavedAmount) {
		return fmt.Errorf("%w: saved amount must have at most %d decimal places", ErrInvalidAmount, AmountScale)
	}
	// A new milestone starts active, so it cannot already be funded.
	if m.SavedAmount.GreaterThanOrEqual(m.TargetAmount) {
		return fmt.Errorf("%w: initial saved amount must be below the target amount", ErrInvalidAmount)
	}

	return nil
}

// ApplyContribution adds amount to the saved amount and completes the
// milestone when the target is reached. On error the milestone is left
// exactly as it was.
func (m *Milestone) ApplyContribution(amount decimal.Decimal, today time.Time) error {
	if err := ValidateContribution(amount); err != nil {
		return err
	}

	newSaved := m.SavedAmount.Add(amount)
	if newSaved.GreaterThan(m.TargetAmount) {
		return fmt.Errorf("%w: the added amount %s exceeds the target amount (saved %s of %s)",
			ErrInvalidAmount, amount.StringFixed(AmountScale), m.SavedAmount.StringFixed(AmountScale), m.TargetAmount.StringFixed(AmountScale))
	}

	m.SavedAmount = newSaved
	if !m.IsCompleted() && newSaved.GreaterThanOrEqual(m.TargetAmount) {
		m.markCompleted(today)
	}
	return nil
}

// Complete forces the milestone into the completed state regardless of the
// saved amount. A completed milestone with SavedAmount below TargetAmount is
// a legitimate outcome of this override.
func (m *Milestone) Complete(today time.Time) error {
	if m.Status == MilestoneStatusCompleted {
		return fmt.Errorf("%w: milestone %s was completed on %s", ErrAlreadyCompleted, m.ID, FormatDate(deref(m.CompletionDate)))
	}
	m.markCompleted(today)
	return nil
}

// IsCompleted reports whether the milestone reached its final state.
func (m *Milestone) IsCompleted() bool {
	return m.Status == MilestoneStatusCompleted
}

// Remaining returns how much is still needed to reach the target.
func (m *Milestone) Remaining() decimal.Decimal {
	remaining := m.TargetAmount.Sub(m.SavedAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

func (m *Milestone) markCompleted(today time.Time) {
	completed := DateOf(today)
	m.Status = MilestoneStatusCompleted
	m.CompletionDate = &completed
}

// ValidateContribution checks an amount about to be added to a milestone.
func ValidateContribution(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: the added amount must be greater than zero", ErrInvalidAmount)
	}
	if !hasAmountScale(amount) {
		return fmt.Errorf("%w: the added amount must have at most %d decimal places", ErrInvalidAmount, AmountScale)
	}
	return nil
}

func hasAmountScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(AmountScale))
}

func deref(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
