package savingsv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "savings.v1.SavingsService"

// FullMethod returns the gRPC path of a method on this service.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// SavingsServiceServer is the server API for SavingsService.
// Implementations must embed UnimplementedSavingsServiceServer.
type SavingsServiceServer interface {
	CreateAccount(context.Context, *CreateAccountRequest) (*AccountResponse, error)
	GetAccount(context.Context, *IDRequest) (*AccountResponse, error)
	Login(context.Context, *LoginRequest) (*AccountResponse, error)
	DeleteAccount(context.Context, *IDRequest) (*Empty, error)
	CreateCustomer(context.Context, *CreateCustomerRequest) (*CustomerResponse, error)
	GetCustomer(context.Context, *IDRequest) (*CustomerResponse, error)
	DeleteCustomer(context.Context, *IDRequest) (*Empty, error)
	CreateMilestone(context.Context, *CreateMilestoneRequest) (*MilestoneResponse, error)
	GetMilestone(context.Context, *IDRequest) (*MilestoneResponse, error)
	GetMilestoneByName(context.Context, *GetMilestoneByNameRequest) (*MilestoneResponse, error)
	ListMilestonesByStartDate(context.Context, *DateRequest) (*MilestoneListResponse, error)
	ListMilestonesByCompletionDate(context.Context, *DateRequest) (*MilestoneListResponse, error)
	ListMilestonesByStatus(context.Context, *StatusRequest) (*MilestoneListResponse, error)
	ListMilestonesByOwner(context.Context, *OwnerRequest) (*MilestoneListResponse, error)
	DeleteMilestone(context.Context, *IDRequest) (*Empty, error)
	CompleteMilestone(context.Context, *IDRequest) (*MilestoneResponse, error)
	AddToMilestone(context.Context, *AddToMilestoneRequest) (*MilestoneResponse, error)
	CreateSavings(context.Context, *CreateSavingsRequest) (*SavingsResponse, error)
	GetSavings(context.Context, *IDRequest) (*SavingsResponse, error)
	ListSavingsByDate(context.Context, *DateRequest) (*SavingsListResponse, error)
	GetSavingsByMilestone(context.Context, *GetSavingsByMilestoneRequest) (*SavingsResponse, error)
	ListSavingsByOwner(context.Context, *OwnerRequest) (*SavingsListResponse, error)
	DeleteSavings(context.Context, *IDRequest) (*Empty, error)
	GetOwnerProgress(context.Context, *OwnerRequest) (*OwnerProgressResponse, error)
	mustEmbedUnimplementedSavingsServiceServer()
}

// UnimplementedSavingsServiceServer answers every method with codes.Unimplemented.
type UnimplementedSavingsServiceServer struct{}

func (UnimplementedSavingsServiceServer) CreateAccount(context.Context, *CreateAccountRequest) (*AccountResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateAccount not implemented")
}
func (UnimplementedSavingsServiceServer) GetAccount(context.Context, *IDRequest) (*AccountResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAccount not implemented")
}
func (UnimplementedSavingsServiceServer) Login(context.Context, *LoginRequest) (*AccountResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedSavingsServiceServer) DeleteAccount(context.Context, *IDRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteAccount not implemented")
}
func (UnimplementedSavingsServiceServer) CreateCustomer(context.Context, *CreateCustomerRequest) (*CustomerResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateCustomer not implemented")
}
func (UnimplementedSavingsServiceServer) GetCustomer(context.Context, *IDRequest) (*CustomerResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCustomer not implemented")
}
func (UnimplementedSavingsServiceServer) DeleteCustomer(context.Context, *IDRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteCustomer not implemented")
}
func (UnimplementedSavingsServiceServer) CreateMilestone(context.Context, *CreateMilestoneRequest) (*MilestoneResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateMilestone not implemented")
}
func (UnimplementedSavingsServiceServer) GetMilestone(context.Context, *IDRequest) (*MilestoneResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMilestone not implemented")
}
func (UnimplementedSavingsServiceServer) GetMilestoneByName(context.Context, *GetMilestoneByNameRequest) (*MilestoneResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMilestoneByName not implemented")
}
func (UnimplementedSavingsServiceServer) ListMilestonesByStartDate(context.Context, *DateRequest) (*MilestoneListResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMilestonesByStartDate not implemented")
}
func (UnimplementedSavingsServiceServer) ListMilestonesByCompletionDate(context.Context, *DateRequest) (*MilestoneListResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMilestonesByCompletionDate not implemented")
}
func (UnimplementedSavingsServiceServer) ListMilestonesByStatus(context.Context, *StatusRequest) (*MilestoneListResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMilestonesByStatus not implemented")
}
func (UnimplementedSavingsServiceServer) ListMilestonesByOwner(context.Context, *OwnerRequest) (*MilestoneListResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMilestonesByOwner not implemented")
}
func (UnimplementedSavingsServiceServer) DeleteMilestone(context.Context, *IDRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteMilestone not implemented")
}
func (UnimplementedSavingsServiceServer) CompleteMilestone(context.Context, *IDRequest) (*MilestoneResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CompleteMilestone not implemented")
}
func (UnimplementedSavingsServiceServer) AddToMilestone(context.Context, *AddToMilestoneRequest) (*MilestoneResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddToMilestone not implemented")
}
func (UnimplementedSavingsServiceServer) CreateSavings(context.Context, *CreateSavingsRequest) (*SavingsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateSavings not implemented")
}
func (UnimplementedSavingsServiceServer) GetSavings(context.Context, *IDRequest) (*SavingsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSavings not implemented")
}
func (UnimplementedSavingsServiceServer) ListSavingsByDate(context.Context, *DateRequest) (*SavingsListResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListSavingsByDate not implemented")
}
func (UnimplementedSavingsServiceServer) GetSavingsByMilestone(context.Context, *GetSavingsByMilestoneRequest) (*SavingsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSavingsByMilestone not implemented")
}
func (UnimplementedSavingsServiceServer) ListSavingsByOwner(context.Context, *OwnerRequest) (*SavingsListResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListSavingsByOwner not implemented")
}
func (UnimplementedSavingsServiceServer) DeleteSavings(context.Context, *IDRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteSavings not implemented")
}
func (UnimplementedSavingsServiceServer) GetOwnerProgress(context.Context, *OwnerRequest) (*OwnerProgressResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetOwnerProgress not implemented")
}
func (UnimplementedSavingsServiceServer) mustEmbedUnimplementedSavingsServiceServer() {}

// RegisterSavingsServiceServer registers srv on s.
func RegisterSavingsServiceServer(s grpc.ServiceRegistrar, srv SavingsServiceServer) {
	s.RegisterService(&SavingsService_ServiceDesc, srv)
}

// unary adapts a typed server method to grpc.MethodHandler.
func unary[Req, Resp any](method string, call func(SavingsServiceServer, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(SavingsServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(method),
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(SavingsServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// SavingsService_ServiceDesc is the grpc.ServiceDesc for SavingsService.
var SavingsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SavingsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateAccount", Handler: unary("CreateAccount", SavingsServiceServer.CreateAccount)},
		{MethodName: "GetAccount", Handler: unary("GetAccount", SavingsServiceServer.GetAccount)},
		{MethodName: "Login", Handler: unary("Login", SavingsServiceServer.Login)},
		{MethodName: "DeleteAccount", Handler: unary("DeleteAccount", SavingsServiceServer.DeleteAccount)},
		{MethodName: "CreateCustomer", Handler: unary("CreateCustomer", SavingsServiceServer.CreateCustomer)},
		{MethodName: "GetCustomer", Handler: unary("GetCustomer", SavingsServiceServer.GetCustomer)},
		{MethodName: "DeleteCustomer", Handler: unary("DeleteCustomer", SavingsServiceServer.DeleteCustomer)},
		{MethodName: "CreateMilestone", Handler: unary("CreateMilestone", SavingsServiceServer.CreateMilestone)},
		{MethodName: "GetMilestone", Handler: unary("GetMilestone", SavingsServiceServer.GetMilestone)},
		{MethodName: "GetMilestoneByName", Handler: unary("GetMilestoneByName", SavingsServiceServer.GetMilestoneByName)},
		{MethodName: "ListMilestonesByStartDate", Handler: unary("ListMilestonesByStartDate", SavingsServiceServer.ListMilestonesByStartDate)},
		{MethodName: "ListMilestonesByCompletionDate", Handler: unary("ListMilestonesByCompletionDate", SavingsServiceServer.ListMilestonesByCompletionDate)},
		{MethodName: "ListMilestonesByStatus", Handler: unary("ListMilestonesByStatus", SavingsServiceServer.ListMilestonesByStatus)},
		{MethodName: "ListMilestonesByOwner", Handler: unary("ListMilestonesByOwner", SavingsServiceServer.ListMilestonesByOwner)},
		{MethodName: "DeleteMilestone", Handler: unary("DeleteMilestone", SavingsServiceServer.DeleteMilestone)},
		{MethodName: "CompleteMilestone", Handler: unary("CompleteMilestone", SavingsServiceServer.CompleteMilestone)},
		{MethodName: "AddToMilestone", Handler: unary("AddToMilestone", SavingsServiceServer.AddToMilestone)},
		{MethodName: "CreateSavings", Handler: unary("CreateSavings", SavingsServiceServer.CreateSavings)},
		{MethodName: "GetSavings", Handler: unary("GetSavings", SavingsServiceServer.GetSavings)},
		{MethodName: "ListSavingsByDate", Handler: unary("ListSavingsByDate", SavingsServiceServer.ListSavingsByDate)},
		{MethodName: "GetSavingsByMilestone", Handler: unary("GetSavingsByMilestone", SavingsServiceServer.GetSavingsByMilestone)},
		{MethodName: "ListSavingsByOwner", Handler: unary("ListSavingsByOwner", SavingsServiceServer.ListSavingsByOwner)},
		{MethodName: "DeleteSavings", Handler: unary("DeleteSavings", SavingsServiceServer.DeleteSavings)},
		{MethodName: "GetOwnerProgress", Handler: unary("GetOwnerProgress", SavingsServiceServer.GetOwnerProgress)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "savings/v1/savings.json",
}

// SavingsServiceClient is the client API for SavingsService.
type SavingsServiceClient interface {
	CreateAccount(ctx context.Context, in *CreateAccountRequest, opts ...grpc.CallOption) (*AccountResponse, error)
	GetAccount(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*AccountResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*AccountResponse, error)
	DeleteAccount(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Empty, error)
	CreateCustomer(ctx context.Context, in *CreateCustomerRequest, opts ...grpc.CallOption) (*CustomerResponse, error)
	GetCustomer(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*CustomerResponse, error)
	DeleteCustomer(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Empty, error)
	CreateMilestone(ctx context.Context, in *CreateMilestoneRequest, opts ...grpc.CallOption) (*MilestoneResponse, error)
	GetMilestone(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*MilestoneResponse, error)
	GetMilestoneByName(ctx context.Context, in *GetMilestoneByNameRequest, opts ...grpc.CallOption) (*MilestoneResponse, error)
	ListMilestonesByStartDate(ctx context.Context, in *DateRequest, opts ...grpc.CallOption) (*MilestoneListResponse, error)
	ListMilestonesByCompletionDate(ctx context.Context, in *DateRequest, opts ...grpc.CallOption) (*MilestoneListResponse, error)
	ListMilestonesByStatus(ctx context.Context, in *StatusRequest, opts ...grpc.CallOption) (*MilestoneListResponse, error)
	ListMilestonesByOwner(ctx context.Context, in *OwnerRequest, opts ...grpc.CallOption) (*MilestoneListResponse, error)
	DeleteMilestone(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Empty, error)
	CompleteMilestone(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*MilestoneResponse, error)
	AddToMilestone(ctx context.Context, in *AddToMilestoneRequest, opts ...grpc.CallOption) (*MilestoneResponse, error)
	CreateSavings(ctx context.Context, in *CreateSavingsRequest, opts ...grpc.CallOption) (*SavingsResponse, error)
	GetSavings(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*SavingsResponse, error)
	ListSavingsByDate(ctx context.Context, in *DateRequest, opts ...grpc.CallOption) (*SavingsListResponse, error)
	GetSavingsByMilestone(ctx context.Context, in *GetSavingsByMilestoneRequest, opts ...grpc.CallOption) (*SavingsResponse, error)
	ListSavingsByOwner(ctx context.Context, in *OwnerRequest, opts ...grpc.CallOption) (*SavingsListResponse, error)
	DeleteSavings(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Empty, error)
	GetOwnerProgress(ctx context.Context, in *OwnerRequest, opts ...grpc.CallOption) (*OwnerProgressResponse, error)
}

type savingsServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewSavingsServiceClient returns a client that sends every call with the
// JSON codec.
func NewSavingsServiceClient(cc grpc.ClientConnInterface) SavingsServiceClient {
	return &savingsServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(Codec)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, callOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *savingsServiceClient) CreateAccount(ctx context.Context, in *CreateAccountRequest, opts ...grpc.CallOption) (*AccountResponse, error) {
	return invoke[AccountResponse](ctx, c.cc, "CreateAccount", in, opts)
}

func (c *savingsServiceClient) GetAccount(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*AccountResponse, error) {
	return invoke[AccountResponse](ctx, c.cc, "GetAccount", in, opts)
}

func (c *savingsServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*AccountResponse, error) {
	return invoke[AccountResponse](ctx, c.cc, "Login", in, opts)
}

func (c *savingsServiceClient) DeleteAccount(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, "DeleteAccount", in, opts)
}

func (c *savingsServiceClient) CreateCustomer(ctx context.Context, in *CreateCustomerRequest, opts ...grpc.CallOption) (*CustomerResponse, error) {
	return invoke[CustomerResponse](ctx, c.cc, "CreateCustomer", in, opts)
}

func (c *savingsServiceClient) GetCustomer(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*CustomerResponse, error) {
	return invoke[CustomerResponse](ctx, c.cc, "GetCustomer", in, opts)
}

func (c *savingsServiceClient) DeleteCustomer(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, "DeleteCustomer", in, opts)
}

func (c *savingsServiceClient) CreateMilestone(ctx context.Context, in *CreateMilestoneRequest, opts ...grpc.CallOption) (*MilestoneResponse, error) {
	return invoke[MilestoneResponse](ctx, c.cc, "CreateMilestone", in, opts)
}

func (c *savingsServiceClient) GetMilestone(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*MilestoneResponse, error) {
	return invoke[MilestoneResponse](ctx, c.cc, "GetMilestone", in, opts)
}

func (c *savingsServiceClient) GetMilestoneByName(ctx context.Context, in *GetMilestoneByNameRequest, opts ...grpc.CallOption) (*MilestoneResponse, error) {
	return invoke[MilestoneResponse](ctx, c.cc, "GetMilestoneByName", in, opts)
}

func (c *savingsServiceClient) ListMilestonesByStartDate(ctx context.Context, in *DateRequest, opts ...grpc.CallOption) (*MilestoneListResponse, error) {
	return invoke[MilestoneListResponse](ctx, c.cc, "ListMilestonesByStartDate", in, opts)
}

func (c *savingsServiceClient) ListMilestonesByCompletionDate(ctx context.Context, in *DateRequest, opts ...grpc.CallOption) (*MilestoneListResponse, error) {
	return invoke[MilestoneListResponse](ctx, c.cc, "ListMilestonesByCompletionDate", in, opts)
}

func (c *savingsServiceClient) ListMilestonesByStatus(ctx context.Context, in *StatusRequest, opts ...grpc.CallOption) (*MilestoneListResponse, error) {
	return invoke[MilestoneListResponse](ctx, c.cc, "ListMilestonesByStatus", in, opts)
}

func (c *savingsServiceClient) ListMilestonesByOwner(ctx context.Context, in *OwnerRequest, opts ...grpc.CallOption) (*MilestoneListResponse, error) {
	return invoke[MilestoneListResponse](ctx, c.cc, "ListMilestonesByOwner", in, opts)
}

func (c *savingsServiceClient) DeleteMilestone(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, "DeleteMilestone", in, opts)
}

func (c *savingsServiceClient) CompleteMilestone(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*MilestoneResponse, error) {
	return invoke[MilestoneResponse](ctx, c.cc, "CompleteMilestone", in, opts)
}

func (c *savingsServiceClient) AddToMilestone(ctx context.Context, in *AddToMilestoneRequest, opts ...grpc.CallOption) (*MilestoneResponse, error) {
	return invoke[MilestoneResponse](ctx, c.cc, "AddToMilestone", in, opts)
}

func (c *savingsServiceClient) CreateSavings(ctx context.Context, in *CreateSavingsRequest, opts ...grpc.CallOption) (*SavingsResponse, error) {
	return invoke[SavingsResponse](ctx, c.cc, "CreateSavings", in, opts)
}

func (c *savingsServiceClient) GetSavings(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*SavingsResponse, error) {
	return invoke[SavingsResponse](ctx, c.cc, "GetSavings", in, opts)
}

func (c *savingsServiceClient) ListSavingsByDate(ctx context.Context, in *DateRequest, opts ...grpc.CallOption) (*SavingsListResponse, error) {
	return invoke[SavingsListResponse](ctx, c.cc, "ListSavingsByDate", in, opts)
}

func (c *savingsServiceClient) GetSavingsByMilestone(ctx context.Context, in *GetSavingsByMilestoneRequest, opts ...grpc.CallOption) (*SavingsResponse, error) {
	return invoke[SavingsResponse](ctx, c.cc, "GetSavingsByMilestone", in, opts)
}

func (c *savingsServiceClient) ListSavingsByOwner(ctx context.Context, in *OwnerRequest, opts ...grpc.CallOption) (*SavingsListResponse, error) {
	return invoke[SavingsListResponse](ctx, c.cc, "ListSavingsByOwner", in, opts)
}

func (c *savingsServiceClient) DeleteSavings(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, "DeleteSavings", in, opts)
}

func (c *savingsServiceClient) GetOwnerProgress(ctx context.Context, in *OwnerRequest, opts ...grpc.CallOption) (*OwnerProgressResponse, error) {
	return invoke[OwnerProgressResponse](ctx, c.cc, "GetOwnerProgress", in, opts)
}
