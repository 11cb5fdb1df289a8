package grpc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/simaogato/savings-backend/internal/adapter/grpc/savingsv1"
	"github.com/simaogato/savings-backend/internal/domain"
	"github.com/simaogato/savings-backend/internal/usecase/account"
	"github.com/simaogato/savings-backend/internal/usecase/customer"
	"github.com/simaogato/savings-backend/internal/usecase/dashboard"
	"github.com/simaogato/savings-backend/internal/usecase/milestone"
	"github.com/simaogato/savings-backend/internal/usecase/savings"
)

// Server implements the SavingsService gRPC server
type Server struct {
	savingsv1.UnimplementedSavingsServiceServer

	AccountService   *account.Service
	CustomerService  *customer.Service
	MilestoneService *milestone.Service
	SavingsService   *savings.Service
	DashboardService *dashboard.DashboardService
}

// NewServer creates a new gRPC server instance
func NewServer(
	accountService *account.Service,
	customerService *customer.Service,
	milestoneService *milestone.Service,
	savingsService *savings.Service,
	dashboardService *dashboard.DashboardService,
) *Server {
	return &Server{
		AccountService:   accountService,
		CustomerService:  customerService,
		MilestoneService: milestoneService,
		SavingsService:   savingsService,
		DashboardService: dashboardService,
	}
}

// CreateAccount handles the CreateAccount RPC
func (s *Server) CreateAccount(ctx context.Context, req *savingsv1.CreateAccountRequest) (*savingsv1.AccountResponse, error) {
	dob, err := parseOptionalDate("date_of_birth", req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	input := account.CreateAccountInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    req.Password,
		Role:        domain.AccountRole(strings.ToUpper(req.Role)),
		DateOfBirth: dob,
	}
	if req.ChildId != "" {
		childID, err := parseUUID("child_id", req.ChildId)
		if err != nil {
			return nil, err
		}
		input.ChildID = &childID
	}

	a, err := s.AccountService.CreateAccount(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}
	return &savingsv1.AccountResponse{Account: accountToWire(a)}, nil
}

// GetAccount handles the GetAccount RPC
func (s *Server) GetAccount(ctx context.Context, req *savingsv1.IDRequest) (*savingsv1.AccountResponse, error) {
	id, err := parseUUID("id", req.Id)
	if err != nil {
		return nil, err
	}

	a, err := s.AccountService.GetAccount(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	if a == nil {
		return nil, status.Errorf(codes.NotFound, "account %s not found", id)
	}
	return &savingsv1.AccountResponse{Account: accountToWire(a)}, nil
}

// Login handles the Login RPC
func (s *Server) Login(ctx context.Context, req *savingsv1.LoginRequest) (*savingsv1.AccountResponse, error) {
	a, err := s.AccountService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, mapError(err)
	}
	return &savingsv1.AccountResponse{Account: accountToWire(a)}, nil
}

// DeleteAccount handles the DeleteAccount RPC
func (s *Server) DeleteAccount(ctx context.Context, req *savingsv1.IDRequest) (*savingsv1.Empty, error) {
	id, err := parseUUID("id", req.Id)
	if err != nil {
		return nil, err
	}
	if err := s.AccountService.DeleteAccount(ctx, id); err != nil {
		return nil, mapError(err)
	}
	return &savingsv1.Empty{}, nil
}

// CreateCustomer handles the CreateCustomer RPC
func (s *Server) CreateCustomer(ctx context.Context, req *savingsv1.CreateCustomerRequest) (*savingsv1.CustomerResponse, error) {
	parentID, err := parseOptionalUUID("parent_id", req.ParentId)
	if err != nil {
		return nil, err
	}
	childID, err := parseOptionalUUID("child_id", req.ChildId)
	if err != nil {
		return nil, err
	}

	c, err := s.CustomerService.CreateCustomer(ctx, parentID, childID)
	if err != nil {
		return nil, mapError(err)
	}
	return &savingsv1.CustomerResponse{Customer: customerToWire(c)}, nil
}

// GetCustomer handles the GetCustomer RPC
func (s *Server) GetCustomer(ctx context.Context, req *savingsv1.IDRequest) (*savingsv1.CustomerResponse, error) {
	id, err := parseUUID("id", req.Id)
	if err != nil {
		return nil, err
	}

	c, err := s.CustomerService.GetCustomer(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	if c == nil {
		return nil, status.Errorf(codes.NotFound, "customer %s not found", id)
	}
	return &savingsv1.CustomerResponse{Customer: customerToWire(c)}, nil
}

// DeleteCustomer handles the DeleteCustomer RPC
func (s *Server) DeleteCustomer(ctx context.Context, req *savingsv1.IDRequest) (*savingsv1.Empty, error) {
	id, err := parseUUID("id", req.Id)
	if err != nil {
		return nil, err
	}
	if err := s.CustomerService.DeleteCustomer(ctx, id); err != nil {
		return nil, mapError(err)
	}
	return &savingsv1.Empty{}, nil
}

// CreateMilestone handles the CreateMilestone RPC
func (s *Server) CreateMilestone(ctx context.Context, req *savingsv1.CreateMilestoneRequest) (*savingsv1.MilestoneResponse, error) {
	ownerID, err := parseOptionalUUID("owner_id", req.OwnerId)
	if err != nil {
		return nil, err
	}
	target, err := parseOptionalAmount("target_amount", req.TargetAmount)
	if err != nil {
		return nil, err
	}
	startDate, err := parseOptionalDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}

	input := milestone.CreateMilestoneInput{
		OwnerID:      ownerID,
		Name:         req.Name,
		TargetAmount: target,
		StartDate:    startDate,
	}
	if req.SavedAmount != "" {
		saved, err := parseAmount("saved_amount", req.SavedAmount)
		if err != nil {
			return nil, err
		}
		input.SavedAmount = decimal.NewNullDecimal(saved)
	}

	m, err := s.MilestoneService.CreateMilestone(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}
	return &savingsv1.MilestoneResponse{Milestone: milestoneToWire(m)}, nil
}

// GetMilestone handles the GetMilestone RPC
func (s *Server) GetMilestone(ctx context.Context, req *savingsv1.IDRequest) (*savingsv1.MilestoneResponse, error) {
	id, err := parseUUID("id", req.Id)
	if err != nil {
		return nil, err
	}

	m, err := s.MilestoneService.GetMilestone(ctx, id)
	return milestoneResponse(m, err, "milestone "+id.String())
}

// GetMilestoneByName handles the GetMilestoneByName RPC
func (s *Server) GetMilestoneByName(ctx context.Context, req *savingsv1.GetMilestoneByNameRequest) (*savingsv1.MilestoneResponse, error) {
	m, err := s.MilestoneService.GetMilestoneByName(ctx, req.Name)
	return milestoneResponse(m, err, "milestone named "+req.Name)
}

// ListMilestonesByStartDate handles the ListMilestonesByStartDate RPC
func (s *Server) ListMilestonesByStartDate(ctx context.Context, req *savingsv1.DateRequest) (*savingsv1.MilestoneListResponse, error) {
	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	return milestoneList(s.MilestoneService.ListByStartDate(ctx, date))
}

// ListMilestonesByCompletionDate handles the ListMilestonesByCompletionDate RPC
func (s *Server) ListMilestonesByCompletionDate(ctx context.Context, req *savingsv1.DateRequest) (*savingsv1.MilestoneListResponse, error) {
	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	return milestoneList(s.MilestoneService.ListByCompletionDate(ctx, date))
}

// ListMilestonesByStatus handles the ListMilestonesByStatus RPC
func (s *Server) ListMilestonesByStatus(ctx context.Context, req *savingsv1.StatusRequest) (*savingsv1.MilestoneListResponse, error) {
	st, err := domain.ParseMilestoneStatus(strings.ToLower(req.Status))
	if err != nil {
		return nil, mapError(err)
	}
	return milestoneList(s.MilestoneService.ListByStatus(ctx, st))
}

// ListMilestonesByOwner handles the ListMilestonesByOwner RPC
func (s *Server) ListMilestonesByOwner(ctx context.Context, req *savingsv1.OwnerRequest) (*savingsv1.MilestoneListResponse, error) {
	ownerID, err := parseUUID("owner_id", req.OwnerId)
	if err != nil {
		return nil, err
	}
	return milestoneList(s.MilestoneService.ListByOwner(ctx, ownerID))
}

// DeleteMilestone handles the DeleteMilestone RPC
func (s *Server) DeleteMilestone(ctx context.Context, req *savingsv1.IDRequest) (*savingsv1.Empty, error) {
	id, err := parseUUID("id", req.Id)
	if err != nil {
		return nil, err
	}
	if err := s.MilestoneService.DeleteMilestone(ctx, id); err != nil {
		return nil, mapError(err)
	}
	return &savingsv1.Empty{}, nil
}

// CompleteMilestone handles the CompleteMilestone RPC
func (s *Server) CompleteMilestone(ctx context.Context, req *savingsv1.IDRequest) (*savingsv1.MilestoneResponse, error) {
	id, err := parseUUID("id", req.Id)
	if err != nil {
		return nil, err
	}

	m, err := s.MilestoneService.MarkCompleted(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return &savingsv1.MilestoneResponse{Milestone: milestoneToWire(m)}, nil
}

// AddToMilestone handles the AddToMilestone RPC
func (s *Server) AddToMilestone(ctx context.Context, req *savingsv1.AddToMilestoneRequest) (*savingsv1.MilestoneResponse, error) {
	id, err := parseUUID("id", req.Id)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		return nil, err
	}

	m, err := s.MilestoneService.AddToSavedAmount(ctx, id, amount)
	if err != nil {
		return nil, mapError(err)
	}
	return &savingsv1.MilestoneResponse{Milestone: milestoneToWire(m)}, nil
}

// CreateSavings handles the CreateSavings RPC
func (s *Server) CreateSavings(ctx context.Context, req *savingsv1.CreateSavingsRequest) (*savingsv1.SavingsResponse, error) {
	ownerID, err := parseOptionalUUID("owner_id", req.OwnerId)
	if err != nil {
		return nil, err
	}
	milestoneID, err := parseOptionalUUID("milestone_id", req.MilestoneId)
	if err != nil {
		return nil, err
	}
	amount, err := parseOptionalAmount("amount", req.Amount)
	if err != nil {
		return nil, err
	}
	date, err := parseOptionalDate("date", req.Date)
	if err != nil {
		return nil, err
	}

	e, err := s.SavingsService.CreateSavings(ctx, savings.CreateSavingsInput{
		OwnerID:     ownerID,
		MilestoneID: milestoneID,
		Amount:      amount,
		Date:        date,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &savingsv1.SavingsResponse{Savings: savingsToWire(e)}, nil
}

// GetSavings handles the GetSavings RPC
func (s *Server) GetSavings(ctx context.Context, req *savingsv1.IDRequest) (*savingsv1.SavingsResponse, error) {
	id, err := parseUUID("id", req.Id)
	if err != nil {
		return nil, err
	}

	e, err := s.SavingsService.GetSavings(ctx, id)
	return savingsResponse(e, err, "savings entry "+id.String())
}

// ListSavingsByDate handles the ListSavingsByDate RPC
func (s *Server) ListSavingsByDate(ctx context.Context, req *savingsv1.DateRequest) (*savingsv1.SavingsListResponse, error) {
	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	return savingsList(s.SavingsService.ListByDate(ctx, date))
}

// GetSavingsByMilestone handles the GetSavingsByMilestone RPC
func (s *Server) GetSavingsByMilestone(ctx context.Context, req *savingsv1.GetSavingsByMilestoneRequest) (*savingsv1.SavingsResponse, error) {
	milestoneID, err := parseUUID("milestone_id", req.MilestoneId)
	if err != nil {
		return nil, err
	}

	e, err := s.SavingsService.GetByMilestoneID(ctx, milestoneID)
	return savingsResponse(e, err, "savings entry for milestone "+milestoneID.String())
}

// ListSavingsByOwner handles the ListSavingsByOwner RPC
func (s *Server) ListSavingsByOwner(ctx context.Context, req *savingsv1.OwnerRequest) (*savingsv1.SavingsListResponse, error) {
	ownerID, err := parseUUID("owner_id", req.OwnerId)
	if err != nil {
		return nil, err
	}
	return savingsList(s.SavingsService.ListByOwner(ctx, ownerID))
}

// DeleteSavings handles the DeleteSavings RPC
func (s *Server) DeleteSavings(ctx context.Context, req *savingsv1.IDRequest) (*savingsv1.Empty, error) {
	id, err := parseUUID("id", req.Id)
	if err != nil {
		return nil, err
	}
	if err := s.SavingsService.DeleteSavings(ctx, id); err != nil {
		return nil, mapError(err)
	}
	return &savingsv1.Empty{}, nil
}

// GetOwnerProgress handles the GetOwnerProgress RPC
func (s *Server) GetOwnerProgress(ctx context.Context, req *savingsv1.OwnerRequest) (*savingsv1.OwnerProgressResponse, error) {
	ownerID, err := parseUUID("owner_id", req.OwnerId)
	if err != nil {
		return nil, err
	}

	p, err := s.DashboardService.GetOwnerProgress(ctx, ownerID)
	if err != nil {
		return nil, mapError(err)
	}

	return &savingsv1.OwnerProgressResponse{
		Progress: &savingsv1.OwnerProgress{
			OwnerId:          p.OwnerID.String(),
			TotalTarget:      formatAmount(p.TotalTarget),
			TotalSaved:       formatAmount(p.TotalSaved),
			TotalContributed: formatAmount(p.TotalContributed),
			ActiveCount:      int32(p.ActiveCount),
			CompletedCount:   int32(p.CompletedCount),
		},
	}, nil
}

// Helper functions

func milestoneResponse(m *domain.Milestone, err error, what string) (*savingsv1.MilestoneResponse, error) {
	if err != nil {
		return nil, mapError(err)
	}
	if m == nil {
		return nil, status.Errorf(codes.NotFound, "%s not found", what)
	}
	return &savingsv1.MilestoneResponse{Milestone: milestoneToWire(m)}, nil
}

func milestoneList(ms []*domain.Milestone, err error) (*savingsv1.MilestoneListResponse, error) {
	if err != nil {
		return nil, mapError(err)
	}
	out := make([]*savingsv1.Milestone, 0, len(ms))
	for _, m := range ms {
		out = append(out, milestoneToWire(m))
	}
	return &savingsv1.MilestoneListResponse{Milestones: out}, nil
}

func savingsResponse(e *domain.SavingsEntry, err error, what string) (*savingsv1.SavingsResponse, error) {
	if err != nil {
		return nil, mapError(err)
	}
	if e == nil {
		return nil, status.Errorf(codes.NotFound, "%s not found", what)
	}
	return &savingsv1.SavingsResponse{Savings: savingsToWire(e)}, nil
}

func savingsList(es []*domain.SavingsEntry, err error) (*savingsv1.SavingsListResponse, error) {
	if err != nil {
		return nil, mapError(err)
	}
	out := make([]*savingsv1.SavingsEntry, 0, len(es))
	for _, e := range es {
		out = append(out, savingsToWire(e))
	}
	return &savingsv1.SavingsListResponse{Savings: out}, nil
}

func parseUUID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return id, nil
}

func parseAmount(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return d, nil
}

func parseDate(field, value string) (time.Time, error) {
	d, err := domain.ParseDate(value)
	if err != nil {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "invalid %s: %v", field, err)
	}
	return d, nil
}

// parseOptionalUUID and its siblings map an empty field to the zero value so
// the use case reports a missing field in its own validation order.
func parseOptionalUUID(field, value string) (uuid.UUID, error) {
	if value == "" {
		return uuid.Nil, nil
	}
	return parseUUID(field, value)
}

func parseOptionalAmount(field, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	return parseAmount(field, value)
}

func parseOptionalDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return parseDate(field, value)
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(domain.AmountScale)
}

func accountToWire(a *domain.Account) *savingsv1.Account {
	out := &savingsv1.Account{
		Id:          a.ID.String(),
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Email:       a.Email,
		Role:        string(a.Role),
		DateOfBirth: domain.FormatDate(a.DateOfBirth),
	}
	if a.ChildID != nil {
		out.ChildId = a.ChildID.String()
	}
	if !a.CreatedAt.IsZero() {
		out.CreatedAt = a.CreatedAt.UTC().Format(time.RFC3339)
	}
	return out
}

func customerToWire(c *domain.Customer) *savingsv1.Customer {
	return &savingsv1.Customer{
		Id:       c.ID.String(),
		ParentId: c.ParentID.String(),
		ChildId:  c.ChildID.String(),
	}
}

func milestoneToWire(m *domain.Milestone) *savingsv1.Milestone {
	out := &savingsv1.Milestone{
		Id:           m.ID.String(),
		OwnerId:      m.OwnerID.String(),
		Name:         m.Name,
		TargetAmount: formatAmount(m.TargetAmount),
		SavedAmount:  formatAmount(m.SavedAmount),
		StartDate:    domain.FormatDate(m.StartDate),
		Status:       string(m.Status),
	}
	if m.CompletionDate != nil {
		out.CompletionDate = domain.FormatDate(*m.CompletionDate)
	}
	return out
}

func savingsToWire(e *domain.SavingsEntry) *savingsv1.SavingsEntry {
	return &savingsv1.SavingsEntry{
		Id:          e.ID.String(),
		OwnerId:     e.OwnerID.String(),
		MilestoneId: e.MilestoneID.String(),
		Amount:      formatAmount(e.Amount),
		Date:        domain.FormatDate(e.Date),
	}
}

// mapError maps domain errors to gRPC status codes
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, domain.ErrInvalidOwner),
		errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrInvalidTargetAmount),
		errors.Is(err, domain.ErrInvalidStartDate),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidMilestoneID),
		errors.Is(err, domain.ErrInvalidAccount),
		errors.Is(err, domain.ErrInvalidCustomer):
		return status.Error(codes.InvalidArgument, err.Error())
	case domain.IsNotFound(err):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrAlreadyCompleted):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, domain.ErrAccountExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case domain.IsRetryable(err):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
