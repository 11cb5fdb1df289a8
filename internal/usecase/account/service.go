package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/savings-backend/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// passwordCost is the bcrypt work factor for stored password hashes.
const passwordCost = 8

// CustomerLinker creates parent/child relationships.
type CustomerLinker interface {
	CreateCustomer(ctx context.Context, parentID, childID uuid.UUID) (*domain.Customer, error)
}

// DirectoryCache drops stale account directory entries.
type DirectoryCache interface {
	Invalidate(ctx context.Context, id uuid.UUID)
}

// Service manages accounts and serves as the account directory
type Service struct {
	AccountRepo domain.AccountRepository
	Customers   CustomerLinker
	Cache       DirectoryCache // optional
	Logger      *zap.Logger
}

// NewService creates a new account Service
func NewService(accountRepo domain.AccountRepository, customers CustomerLinker, logger *zap.Logger) *Service {
	return &Service{
		AccountRepo: accountRepo,
		Customers:   customers,
		Logger:      logger,
	}
}

// CreateAccountInput carries the fields of a new account
type CreateAccountInput struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	Role        domain.AccountRole // CHILD when empty
	ChildID     *uuid.UUID
	DateOfBirth time.Time
}

// CreateAccount validates and stores a new account with a hashed password.
// When ChildID is set the parent/child relationship is created as well; a
// failure to link is logged and does not undo the account.
func (s *Service) CreateAccount(ctx context.Context, in CreateAccountInput) (*domain.Account, error) {
	role := in.Role
	if role == "" {
		role = domain.AccountRoleChild
	}

	a := &domain.Account{
		ID:          uuid.New(),
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		Email:       strings.ToLower(strings.TrimSpace(in.Email)),
		Role:        role,
		ChildID:     in.ChildID,
		DateOfBirth: domain.DateOf(in.DateOfBirth),
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := domain.ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	if _, err := s.AccountRepo.GetByEmail(ctx, a.Email); err == nil {
		return nil, fmt.Errorf("%w: email %q is already registered", domain.ErrAccountExists, a.Email)
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	a.PasswordHash = hash

	if err := s.AccountRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	s.Logger.Info("Account created",
		zap.String("account_id", a.ID.String()),
		zap.String("role", string(a.Role)),
	)

	if a.ChildID != nil && s.Customers != nil {
		if _, err := s.Customers.CreateCustomer(ctx, a.ID, *a.ChildID); err != nil {
			s.Logger.Warn("Failed to link child account",
				zap.String("account_id", a.ID.String()),
				zap.String("child_id", a.ChildID.String()),
				zap.Error(err),
			)
		}
	}

	return a, nil
}

// GetAccount returns the account with the given id, or nil when absent.
func (s *Service) GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return absentAsNil(s.AccountRepo.GetByID(ctx, id))
}

// GetAccountByEmail returns the account registered under email, or nil when absent.
func (s *Service) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return absentAsNil(s.AccountRepo.GetByEmail(ctx, strings.TrimSpace(email)))
}

// Login checks password against the account registered under email.
// An unknown email fails with ErrAccountNotFound, a wrong password with
// ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.Account, error) {
	a, err := s.GetAccountByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("%w: no account for email %q", domain.ErrAccountNotFound, strings.TrimSpace(email))
	}
	if !CheckPassword(password, a.PasswordHash) {
		s.Logger.Info("Login rejected", zap.String("account_id", a.ID.String()))
		return nil, fmt.Errorf("%w: password does not match", domain.ErrInvalidCredentials)
	}

	s.Logger.Info("Account logged in", zap.String("account_id", a.ID.String()))
	return a, nil
}

// Resolve implements domain.AccountDirectory.
func (s *Service) Resolve(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return s.AccountRepo.GetByID(ctx, id)
}

// DeleteAccount removes an account. Milestones and savings it owns are kept.
func (s *Service) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	if err := s.AccountRepo.Delete(ctx, id); err != nil {
		return err
	}
	if s.Cache != nil {
		s.Cache.Invalidate(ctx, id)
	}
	s.Logger.Info("Account deleted", zap.String("account_id", id.String()))
	return nil
}

// HashPassword turns a plaintext password into a bcrypt hash.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a plaintext password against a bcrypt hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func absentAsNil(a *domain.Account, err error) (*domain.Account, error) {
	if errors.Is(err, domain.ErrAccountNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}
