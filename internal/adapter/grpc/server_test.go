package grpc

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/simaogato/savings-backend/internal/adapter/grpc/savingsv1"
	"github.com/simaogato/savings-backend/internal/adapter/repository/memory"
	"github.com/simaogato/savings-backend/internal/domain"
	"github.com/simaogato/savings-backend/internal/usecase/account"
	"github.com/simaogato/savings-backend/internal/usecase/customer"
	"github.com/simaogato/savings-backend/internal/usecase/dashboard"
	"github.com/simaogato/savings-backend/internal/usecase/milestone"
	"github.com/simaogato/savings-backend/internal/usecase/savings"
)

const testToken = "test-token-123"

var serverNow = time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)

// startServer runs a SavingsService backed by the in-memory stores and
// returns a client connected over bufconn.
func startServer(t *testing.T) savingsv1.SavingsServiceClient {
	t.Helper()
	logger := zap.NewNop()

	accounts := memory.NewAccountStore()
	customers := memory.NewCustomerStore()
	milestones := memory.NewMilestoneStore()
	ledger := memory.NewSavingsStore()

	customerSvc := customer.NewService(customers, accounts, logger)
	accountSvc := account.NewService(accounts, customerSvc, logger)
	milestoneSvc := milestone.NewService(milestones, accounts, logger)
	milestoneSvc.Now = func() time.Time { return serverNow }
	savingsSvc := savings.NewService(ledger, accounts, logger)
	savingsSvc.Now = func() time.Time { return serverNow }
	dashboardSvc := dashboard.NewDashboardService(milestones, ledger, accounts)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		LoggingInterceptor(logger),
		AuthInterceptor(testToken),
	))
	savingsv1.RegisterSavingsServiceServer(srv, NewServer(accountSvc, customerSvc, milestoneSvc, savingsSvc, dashboardSvc))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return savingsv1.NewSavingsServiceClient(conn)
}

func authed() context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", testToken)
}

func requireCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, want, status.Code(err), err.Error())
}

func createOwner(t *testing.T, client savingsv1.SavingsServiceClient, email string) *savingsv1.Account {
	t.Helper()
	resp, err := client.CreateAccount(authed(), &savingsv1.CreateAccountRequest{
		FirstName:   "Ana",
		LastName:    "Silva",
		Email:       email,
		Password:    "secret123",
		Role:        "parent",
		DateOfBirth: "1990-05-01",
	})
	require.NoError(t, err)
	return resp.Account
}

func TestServer_RequiresToken(t *testing.T) {
	client := startServer(t)

	_, err := client.GetMilestoneByName(context.Background(), &savingsv1.GetMilestoneByNameRequest{Name: "Bike"})
	requireCode(t, err, codes.Unauthenticated)
}

func TestServer_MilestoneLifecycle(t *testing.T) {
	client := startServer(t)
	ctx := authed()
	owner := createOwner(t, client, "ana@example.com")
	assert.Equal(t, "PARENT", owner.Role)

	created, err := client.CreateMilestone(ctx, &savingsv1.CreateMilestoneRequest{
		OwnerId:      owner.Id,
		Name:         "Bike",
		TargetAmount: "200",
		StartDate:    "2026-10-01",
	})
	require.NoError(t, err)
	m := created.Milestone
	assert.Equal(t, "200.00", m.TargetAmount)
	assert.Equal(t, "0.00", m.SavedAmount)
	assert.Equal(t, "active", m.Status)
	assert.Empty(t, m.CompletionDate)

	resp, err := client.AddToMilestone(ctx, &savingsv1.AddToMilestoneRequest{Id: m.Id, Amount: "150.00"})
	require.NoError(t, err)
	assert.Equal(t, "150.00", resp.Milestone.SavedAmount)
	assert.Equal(t, "active", resp.Milestone.Status)

	_, err = client.AddToMilestone(ctx, &savingsv1.AddToMilestoneRequest{Id: m.Id, Amount: "100.00"})
	requireCode(t, err, codes.InvalidArgument)

	resp, err = client.AddToMilestone(ctx, &savingsv1.AddToMilestoneRequest{Id: m.Id, Amount: "50.00"})
	require.NoError(t, err)
	assert.Equal(t, "200.00", resp.Milestone.SavedAmount)
	assert.Equal(t, "completed", resp.Milestone.Status)
	assert.Equal(t, "2026-10-18", resp.Milestone.CompletionDate)

	_, err = client.CompleteMilestone(ctx, &savingsv1.IDRequest{Id: m.Id})
	requireCode(t, err, codes.FailedPrecondition)

	byStatus, err := client.ListMilestonesByStatus(ctx, &savingsv1.StatusRequest{Status: "completed"})
	require.NoError(t, err)
	require.Len(t, byStatus.Milestones, 1)
	assert.Equal(t, m.Id, byStatus.Milestones[0].Id)

	byCompletion, err := client.ListMilestonesByCompletionDate(ctx, &savingsv1.DateRequest{Date: "2026-10-18"})
	require.NoError(t, err)
	assert.Len(t, byCompletion.Milestones, 1)

	_, err = client.DeleteMilestone(ctx, &savingsv1.IDRequest{Id: m.Id})
	require.NoError(t, err)

	_, err = client.GetMilestone(ctx, &savingsv1.IDRequest{Id: m.Id})
	requireCode(t, err, codes.NotFound)
}

func TestServer_CreateMilestoneValidation(t *testing.T) {
	client := startServer(t)
	ctx := authed()
	owner := createOwner(t, client, "ana@example.com")

	tests := []struct {
		name string
		req  *savingsv1.CreateMilestoneRequest
		want codes.Code
	}{
		{
			name: "Unknown owner",
			req:  &savingsv1.CreateMilestoneRequest{OwnerId: "7c1a3c55-0000-4000-8000-000000000000", Name: "Bike", TargetAmount: "10", StartDate: "2026-10-01"},
			want: codes.InvalidArgument,
		},
		{
			name: "Malformed owner id",
			req:  &savingsv1.CreateMilestoneRequest{OwnerId: "not-a-uuid", Name: "Bike", TargetAmount: "10", StartDate: "2026-10-01"},
			want: codes.InvalidArgument,
		},
		{
			name: "Malformed amount",
			req:  &savingsv1.CreateMilestoneRequest{OwnerId: owner.Id, Name: "Bike", TargetAmount: "ten", StartDate: "2026-10-01"},
			want: codes.InvalidArgument,
		},
		{
			name: "Future start date",
			req:  &savingsv1.CreateMilestoneRequest{OwnerId: owner.Id, Name: "Bike", TargetAmount: "10", StartDate: "2026-10-19"},
			want: codes.InvalidArgument,
		},
		{
			name: "Blank name",
			req:  &savingsv1.CreateMilestoneRequest{OwnerId: owner.Id, Name: " ", TargetAmount: "10", StartDate: "2026-10-01"},
			want: codes.InvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.CreateMilestone(ctx, tt.req)
			requireCode(t, err, tt.want)
		})
	}
}

func TestServer_SavingsAndProgress(t *testing.T) {
	client := startServer(t)
	ctx := authed()
	owner := createOwner(t, client, "ana@example.com")

	created, err := client.CreateMilestone(ctx, &savingsv1.CreateMilestoneRequest{
		OwnerId:      owner.Id,
		Name:         "Laptop",
		TargetAmount: "900.00",
		StartDate:    "2026-09-01",
		SavedAmount:  "100.00",
	})
	require.NoError(t, err)
	m := created.Milestone

	for i, date := range []string{"2026-10-02", "2026-09-15"} {
		_, err := client.CreateSavings(ctx, &savingsv1.CreateSavingsRequest{
			OwnerId:     owner.Id,
			MilestoneId: m.Id,
			Amount:      fmt.Sprintf("%d.50", 10*(i+1)),
			Date:        date,
		})
		require.NoError(t, err)
	}

	first, err := client.GetSavingsByMilestone(ctx, &savingsv1.GetSavingsByMilestoneRequest{MilestoneId: m.Id})
	require.NoError(t, err)
	assert.Equal(t, "2026-09-15", first.Savings.Date)
	assert.Equal(t, "20.50", first.Savings.Amount)

	listed, err := client.ListSavingsByOwner(ctx, &savingsv1.OwnerRequest{OwnerId: owner.Id})
	require.NoError(t, err)
	assert.Len(t, listed.Savings, 2)

	progress, err := client.GetOwnerProgress(ctx, &savingsv1.OwnerRequest{OwnerId: owner.Id})
	require.NoError(t, err)
	assert.Equal(t, "900.00", progress.Progress.TotalTarget)
	assert.Equal(t, "100.00", progress.Progress.TotalSaved)
	assert.Equal(t, "31.00", progress.Progress.TotalContributed)
	assert.Equal(t, int32(1), progress.Progress.ActiveCount)

	_, err = client.CreateSavings(ctx, &savingsv1.CreateSavingsRequest{
		OwnerId:     owner.Id,
		MilestoneId: m.Id,
		Amount:      "0",
		Date:        "2026-10-02",
	})
	requireCode(t, err, codes.InvalidArgument)

	_, err = client.GetSavings(ctx, &savingsv1.IDRequest{Id: m.Id})
	requireCode(t, err, codes.NotFound)
}

func TestServer_AccountsAndCustomers(t *testing.T) {
	client := startServer(t)
	ctx := authed()

	child, err := client.CreateAccount(ctx, &savingsv1.CreateAccountRequest{
		FirstName:   "Rui",
		LastName:    "Silva",
		Email:       "rui@example.com",
		Password:    "secret123",
		DateOfBirth: "2015-03-09",
	})
	require.NoError(t, err)
	assert.Equal(t, "CHILD", child.Account.Role)

	_, err = client.CreateAccount(ctx, &savingsv1.CreateAccountRequest{
		FirstName:   "Rui",
		LastName:    "Silva",
		Email:       "RUI@example.com",
		Password:    "secret123",
		DateOfBirth: "2015-03-09",
	})
	requireCode(t, err, codes.AlreadyExists)

	parent := createOwner(t, client, "ana@example.com")

	link, err := client.CreateCustomer(ctx, &savingsv1.CreateCustomerRequest{ParentId: parent.Id, ChildId: child.Account.Id})
	require.NoError(t, err)

	got, err := client.GetCustomer(ctx, &savingsv1.IDRequest{Id: link.Customer.Id})
	require.NoError(t, err)
	assert.Equal(t, parent.Id, got.Customer.ParentId)

	// Roles are swapped.
	_, err = client.CreateCustomer(ctx, &savingsv1.CreateCustomerRequest{ParentId: child.Account.Id, ChildId: parent.Id})
	requireCode(t, err, codes.InvalidArgument)

	_, err = client.DeleteAccount(ctx, &savingsv1.IDRequest{Id: child.Account.Id})
	require.NoError(t, err)

	_, err = client.GetAccount(ctx, &savingsv1.IDRequest{Id: child.Account.Id})
	requireCode(t, err, codes.NotFound)
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{name: "Invalid owner", err: fmt.Errorf("%w: owner is required", domain.ErrInvalidOwner), want: codes.InvalidArgument},
		{name: "Invalid amount", err: domain.ErrInvalidAmount, want: codes.InvalidArgument},
		{name: "Invalid argument", err: domain.ErrInvalidArgument, want: codes.InvalidArgument},
		{name: "Milestone not found", err: fmt.Errorf("%w: x", domain.ErrMilestoneNotFound), want: codes.NotFound},
		{name: "Savings not found", err: domain.ErrSavingsNotFound, want: codes.NotFound},
		{name: "Already completed", err: domain.ErrAlreadyCompleted, want: codes.FailedPrecondition},
		{name: "Account exists", err: domain.ErrAccountExists, want: codes.AlreadyExists},
		{name: "Invalid credentials", err: fmt.Errorf("%w: password does not match", domain.ErrInvalidCredentials), want: codes.PermissionDenied},
		{name: "Storage failure", err: fmt.Errorf("%w: failed to update milestone: boom", domain.ErrStorageFailure), want: codes.Unavailable},
		{name: "Status passes through", err: status.Error(codes.PermissionDenied, "no"), want: codes.PermissionDenied},
		{name: "Unknown error", err: fmt.Errorf("boom"), want: codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, status.Code(mapError(tt.err)))
		})
	}

	assert.NoError(t, mapError(nil))
}

func TestServer_Login(t *testing.T) {
	client := startServer(t)
	ctx := authed()
	owner := createOwner(t, client, "ana@example.com")

	resp, err := client.Login(ctx, &savingsv1.LoginRequest{Email: "ANA@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, owner.Id, resp.Account.Id)

	_, err = client.Login(ctx, &savingsv1.LoginRequest{Email: "ana@example.com", Password: "wrong-password"})
	requireCode(t, err, codes.PermissionDenied)

	_, err = client.Login(ctx, &savingsv1.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	requireCode(t, err, codes.NotFound)
}

func TestServer_EmptyFieldsReportInValidationOrder(t *testing.T) {
	client := startServer(t)
	ctx := authed()
	owner := createOwner(t, client, "ana@example.com")

	milestoneTests := []struct {
		name    string
		req     *savingsv1.CreateMilestoneRequest
		wantMsg string
	}{
		{name: "Everything empty reports the owner", req: &savingsv1.CreateMilestoneRequest{}, wantMsg: "owner is required"},
		{name: "Blank name before empty target", req: &savingsv1.CreateMilestoneRequest{OwnerId: owner.Id}, wantMsg: "milestone name cannot be empty"},
		{name: "Empty target before empty start date", req: &savingsv1.CreateMilestoneRequest{OwnerId: owner.Id, Name: "Bike"}, wantMsg: "target amount must be greater than zero"},
		{name: "Empty start date", req: &savingsv1.CreateMilestoneRequest{OwnerId: owner.Id, Name: "Bike", TargetAmount: "10"}, wantMsg: "start date cannot be empty"},
	}
	for _, tt := range milestoneTests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.CreateMilestone(ctx, tt.req)
			requireCode(t, err, codes.InvalidArgument)
			assert.Contains(t, status.Convert(err).Message(), tt.wantMsg)
		})
	}

	savingsTests := []struct {
		name    string
		req     *savingsv1.CreateSavingsRequest
		wantMsg string
	}{
		{name: "Everything empty reports the owner", req: &savingsv1.CreateSavingsRequest{}, wantMsg: "owner is required"},
		{name: "Empty amount before empty milestone", req: &savingsv1.CreateSavingsRequest{OwnerId: owner.Id}, wantMsg: "amount must be greater than zero"},
		{name: "Empty milestone before empty date", req: &savingsv1.CreateSavingsRequest{OwnerId: owner.Id, Amount: "5.00"}, wantMsg: "milestone id cannot be empty"},
		{name: "Empty date", req: &savingsv1.CreateSavingsRequest{OwnerId: owner.Id, Amount: "5.00", MilestoneId: owner.Id}, wantMsg: "date cannot be empty"},
	}
	for _, tt := range savingsTests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.CreateSavings(ctx, tt.req)
			requireCode(t, err, codes.InvalidArgument)
			assert.Contains(t, status.Convert(err).Message(), tt.wantMsg)
		})
	}

	// Present but malformed values are still rejected at the edge.
	_, err := client.CreateMilestone(ctx, &savingsv1.CreateMilestoneRequest{OwnerId: "not-a-uuid"})
	requireCode(t, err, codes.InvalidArgument)
	assert.Contains(t, status.Convert(err).Message(), "invalid owner_id format")
}
