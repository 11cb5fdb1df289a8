package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsEntry is one contribution recorded in the ledger.
// It references a milestone by id only: deleting either side leaves the
// other untouched.
type SavingsEntry struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	MilestoneID uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
}

// Validate checks the entry's own fields in the order amount, milestone id,
// date. The owner is resolved by the caller beforehand.
func (s *SavingsEntry) Validate(now time.Time) error {
	if !s.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", ErrInvalidAmount)
	}
	if !hasAmountScale(s.Amount) {
		return fmt.Errorf("%w: amount must have at most %d decimal places", ErrInvalidAmount, AmountScale)
	}

	if s.MilestoneID == uuid.Nil {
		return fmt.Errorf("%w: milestone id cannot be empty", ErrInvalidMilestoneID)
	}

	if s.Date.IsZero() {
		return fmt.Errorf("%w: date cannot be empty", ErrInvalidDate)
	}
	if isAfterToday(s.Date, now) {
		return fmt.Errorf("%w: date cannot be in the future", ErrInvalidDate)
	}

	return nil
}
