package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AccountRole represents what an account may do in a family relationship
type AccountRole string

const (
	AccountRoleChild  AccountRole = "CHILD"
	AccountRoleParent AccountRole = "PARENT"
	AccountRoleAdmin  AccountRole = "ADMIN"
)

// MinPasswordLength is the shortest accepted plaintext password
const MinPasswordLength = 6

// Account represents a user of the system
type Account struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         AccountRole
	ChildID      *uuid.UUID // Set on a parent account created together with its child link
	DateOfBirth  time.Time
	CreatedAt    time.Time
}

// Validate ensures the account adheres to domain rules.
// The plaintext password is checked separately because only its hash is stored.
func (a *Account) Validate() error {
	if strings.TrimSpace(a.FirstName) == "" {
		return fmt.Errorf("%w: first name is required", ErrInvalidAccount)
	}
	if strings.TrimSpace(a.LastName) == "" {
		return fmt.Errorf("%w: last name is required", ErrInvalidAccount)
	}
	if strings.TrimSpace(a.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidAccount)
	}
	if !strings.Contains(a.Email, "@") {
		return fmt.Errorf("%w: email %q is malformed", ErrInvalidAccount, a.Email)
	}
	if a.DateOfBirth.IsZero() {
		return fmt.Errorf("%w: date of birth is required", ErrInvalidAccount)
	}

	switch a.Role {
	case AccountRoleChild, AccountRoleParent, AccountRoleAdmin:
	default:
		return fmt.Errorf("%w: role must be CHILD, PARENT, or ADMIN", ErrInvalidAccount)
	}

	return nil
}

// ValidatePassword checks a plaintext password before it is hashed
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidAccount)
	}
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidAccount, MinPasswordLength)
	}
	return nil
}

// Customer links a parent account to a child account
type Customer struct {
	ID       uuid.UUID
	ParentID uuid.UUID
	ChildID  uuid.UUID
}

// Validate ensures both sides of the relationship are present
func (c *Customer) Validate() error {
	if c.ParentID == uuid.Nil || c.ChildID == uuid.Nil {
		return fmt.Errorf("%w: both parent and child accounts must be provided", ErrInvalidCustomer)
	}
	if c.ParentID == c.ChildID {
		return fmt.Errorf("%w: an account cannot be its own child", ErrInvalidCustomer)
	}
	return nil
}
