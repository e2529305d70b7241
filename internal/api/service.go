package api

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "sampleapp.users.Users"

// Full method names, as seen by interceptors.
const (
	MethodSignup         = "/" + ServiceName + "/Signup"
	MethodLogin          = "/" + ServiceName + "/Login"
	MethodWhoami         = "/" + ServiceName + "/Whoami"
	MethodShow           = "/" + ServiceName + "/Show"
	MethodChangePassword = "/" + ServiceName + "/ChangePassword"
	MethodPing           = "/" + ServiceName + "/Ping"
)

// UsersServer is implemented by the server side of the service.
type UsersServer interface {
	Signup(context.Context, *SignupRequest) (*SignupResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	Whoami(context.Context, *WhoamiRequest) (*WhoamiResponse, error)
	Show(context.Context, *ShowRequest) (*ShowResponse, error)
	ChangePassword(context.Context, *ChangePasswordRequest) (*ChangePasswordResponse, error)
	Ping(context.Context, *PingRequest) (*PingResponse, error)
}

func RegisterUsersServer(s grpc.ServiceRegistrar, srv UsersServer) {
	s.RegisterService(&UsersServiceDesc, srv)
}

// UsersServiceDesc describes the service to grpc.Server.
var UsersServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*UsersServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Signup", Handler: unaryHandler(MethodSignup, UsersServer.Signup)},
		{MethodName: "Login", Handler: unaryHandler(MethodLogin, UsersServer.Login)},
		{MethodName: "Whoami", Handler: unaryHandler(MethodWhoami, UsersServer.Whoami)},
		{MethodName: "Show", Handler: unaryHandler(MethodShow, UsersServer.Show)},
		{MethodName: "ChangePassword", Handler: unaryHandler(MethodChangePassword, UsersServer.ChangePassword)},
		{MethodName: "Ping", Handler: unaryHandler(MethodPing, UsersServer.Ping)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "sampleapp/users",
}

func unaryHandler[Req, Resp any](fullMethod string, call func(UsersServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(UsersServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(UsersServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// UsersClient is the client side of the service.
type UsersClient struct {
	cc grpc.ClientConnInterface
}

func NewUsersClient(cc grpc.ClientConnInterface) *UsersClient {
	return &UsersClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *UsersClient) Signup(ctx context.Context, in *SignupRequest, opts ...grpc.CallOption) (*SignupResponse, error) {
	return invoke[SignupResponse](ctx, c.cc, MethodSignup, in, opts)
}

func (c *UsersClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, MethodLogin, in, opts)
}

func (c *UsersClient) Whoami(ctx context.Context, in *WhoamiRequest, opts ...grpc.CallOption) (*WhoamiResponse, error) {
	return invoke[WhoamiResponse](ctx, c.cc, MethodWhoami, in, opts)
}

func (c *UsersClient) Show(ctx context.Context, in *ShowRequest, opts ...grpc.CallOption) (*ShowResponse, error) {
	return invoke[ShowResponse](ctx, c.cc, MethodShow, in, opts)
}

func (c *UsersClient) ChangePassword(ctx context.Context, in *ChangePasswordRequest, opts ...grpc.CallOption) (*ChangePasswordResponse, error) {
	return invoke[ChangePasswordResponse](ctx, c.cc, MethodChangePassword, in, opts)
}

func (c *UsersClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, MethodPing, in, opts)
}
