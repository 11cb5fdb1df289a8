package seeder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/savings-backend/internal/domain"
	"github.com/simaogato/savings-backend/internal/usecase/account"
)

// Fixed UUID for the administrator account
var SYS_ADMIN = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// AdminCredentials configures the seeded administrator
type AdminCredentials struct {
	Email    string
	Password string
}

// SystemSeeder handles seeding of the required administrator account
type SystemSeeder struct {
	repo  domain.AccountRepository
	admin AdminCredentials
}

// NewSystemSeeder creates a new SystemSeeder instance
func NewSystemSeeder(repo domain.AccountRepository, admin AdminCredentials) *SystemSeeder {
	return &SystemSeeder{
		repo:  repo,
		admin: admin,
	}
}

// Seed ensures the administrator account exists in the store.
// Nothing is seeded when no admin email is configured. An existing admin
// account is left as it is, including its password.
func (s *SystemSeeder) Seed(ctx context.Context) error {
	if strings.TrimSpace(s.admin.Email) == "" {
		return nil
	}

	_, err := s.repo.GetByID(ctx, SYS_ADMIN)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrAccountNotFound) {
		return fmt.Errorf("failed to look up admin account: %w", err)
	}

	if err := domain.ValidatePassword(s.admin.Password); err != nil {
		return fmt.Errorf("admin password: %w", err)
	}

	hash, err := account.HashPassword(s.admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &domain.Account{
		ID:           SYS_ADMIN,
		FirstName:    "System",
		LastName:     "Administrator",
		Email:        strings.ToLower(strings.TrimSpace(s.admin.Email)),
		PasswordHash: hash,
		Role:         domain.AccountRoleAdmin,
		DateOfBirth:  time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	// Validate before creating
	if err := admin.Validate(); err != nil {
		return err
	}

	return s.repo.Create(ctx, admin)
}
