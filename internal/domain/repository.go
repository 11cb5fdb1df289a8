package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AccountDirectory resolves an owner reference to its account.
// Resolve returns an error wrapping ErrAccountNotFound when no account exists.
type AccountDirectory interface {
	Resolve(ctx context.Context, id uuid.UUID) (*Account, error)
}

// AccountRepository defines the interface for account persistence operations
type AccountRepository interface {
	// GetByID retrieves an account by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)

	// GetByEmail retrieves an account by its email address
	GetByEmail(ctx context.Context, email string) (*Account, error)

	// Create creates a new account
	Create(ctx context.Context, account *Account) error

	// Delete removes an account by its ID
	Delete(ctx context.Context, id uuid.UUID) error
}

// CustomerRepository defines the interface for parent/child relationship persistence
type CustomerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	Create(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MilestoneMutation changes a milestone in place. Returning an error aborts
// the surrounding update without persisting anything.
type MilestoneMutation func(m *Milestone) error

// MilestoneRepository defines the interface for milestone persistence operations.
// Single-record lookups return an error wrapping ErrMilestoneNotFound on a miss;
// list lookups return an empty slice.
type MilestoneRepository interface {
	// Create creates a new milestone
	Create(ctx context.Context, milestone *Milestone) error

	// GetByID retrieves a milestone by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*Milestone, error)

	// GetByName retrieves the first milestone with the given name.
	// Names are not unique, so this is a best-effort lookup.
	GetByName(ctx context.Context, name string) (*Milestone, error)

	ListByStartDate(ctx context.Context, date time.Time) ([]*Milestone, error)
	ListByCompletionDate(ctx context.Context, date time.Time) ([]*Milestone, error)
	ListByStatus(ctx context.Context, status MilestoneStatus) ([]*Milestone, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Milestone, error)

	// Update overwrites the mutable fields of an existing milestone
	Update(ctx context.Context, milestone *Milestone) error

	// Modify loads the milestone, applies mutate and persists the result as
	// one atomic step. Concurrent Modify calls for the same ID are serialized,
	// so mutate always sees the latest committed state.
	Modify(ctx context.Context, id uuid.UUID, mutate MilestoneMutation) (*Milestone, error)

	// Delete removes a milestone. Savings entries that reference it are kept.
	Delete(ctx context.Context, id uuid.UUID) error
}

// SavingsRepository defines the interface for savings ledger persistence operations
type SavingsRepository interface {
	// Create records a new savings entry
	Create(ctx context.Context, entry *SavingsEntry) error

	// GetByID retrieves a savings entry by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*SavingsEntry, error)

	// ListByDate retrieves all entries recorded on the given date
	ListByDate(ctx context.Context, date time.Time) ([]*SavingsEntry, error)

	// ListByMilestoneID retrieves the entries for a milestone, oldest first
	ListByMilestoneID(ctx context.Context, milestoneID uuid.UUID) ([]*SavingsEntry, error)

	// ListByOwner retrieves all entries recorded by an account
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*SavingsEntry, error)

	// Delete removes an entry. The referenced milestone is not adjusted.
	Delete(ctx context.Context, id uuid.UUID) error
}
