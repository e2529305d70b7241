package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/sampleapp/internal/api"
	"github.com/dmitrijs2005/sampleapp/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// usersAPI is the generated-style client surface GRPCClient depends on.
type usersAPI interface {
	Signup(ctx context.Context, in *api.SignupRequest, opts ...grpc.CallOption) (*api.SignupResponse, error)
	Login(ctx context.Context, in *api.LoginRequest, opts ...grpc.CallOption) (*api.LoginResponse, error)
	Whoami(ctx context.Context, in *api.WhoamiRequest, opts ...grpc.CallOption) (*api.WhoamiResponse, error)
	Show(ctx context.Context, in *api.ShowRequest, opts ...grpc.CallOption) (*api.ShowResponse, error)
	ChangePassword(ctx context.Context, in *api.ChangePasswordRequest, opts ...grpc.CallOption) (*api.ChangePasswordResponse, error)
	Ping(ctx context.Context, in *api.PingRequest, opts ...grpc.CallOption) (*api.PingResponse, error)
}

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      usersAPI

	mu            sync.RWMutex
	rememberToken string
}

func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.rememberTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = api.NewUsersClient(conn)
	return c, nil
}

func (c *GRPCClient) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rememberToken
}

func (c *GRPCClient) setToken(t string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rememberToken = t
}

func (c *GRPCClient) rememberTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if t := c.token(); t != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, common.RememberTokenHeaderName, t)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func (c *GRPCClient) Signup(ctx context.Context, name, email string, password, confirmation []byte) (*api.User, error) {
	resp, err := c.client.Signup(ctx, &api.SignupRequest{
		Name:                 name,
		Email:                email,
		Password:             string(password),
		PasswordConfirmation: string(confirmation),
	})
	if err != nil {
		return nil, mapError(err)
	}
	c.setToken(resp.RememberToken)
	return resp.User, nil
}

func (c *GRPCClient) Login(ctx context.Context, email string, password []byte) (*api.User, error) {
	resp, err := c.client.Login(ctx, &api.LoginRequest{Email: email, Password: string(password)})
	if err != nil {
		return nil, mapError(err)
	}
	c.setToken(resp.RememberToken)
	return resp.User, nil
}

func (c *GRPCClient) Whoami(ctx context.Context) (*api.User, error) {
	if !c.SignedIn() {
		return nil, ErrNotSignedIn
	}
	resp, err := c.client.Whoami(ctx, &api.WhoamiRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.User, nil
}

func (c *GRPCClient) Show(ctx context.Context, id string) (*api.User, error) {
	resp, err := c.client.Show(ctx, &api.ShowRequest{ID: id})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.User, nil
}

// ChangePassword swaps the stored token for the one issued with the new
// credential.
func (c *GRPCClient) ChangePassword(ctx context.Context, password, confirmation []byte) error {
	if !c.SignedIn() {
		return ErrNotSignedIn
	}
	resp, err := c.client.ChangePassword(ctx, &api.ChangePasswordRequest{
		Password:             string(password),
		PasswordConfirmation: string(confirmation),
	})
	if err != nil {
		return mapError(err)
	}
	c.setToken(resp.RememberToken)
	return nil
}

func (c *GRPCClient) Ping(ctx context.Context) error {
	_, err := c.client.Ping(ctx, &api.PingRequest{})
	return mapError(err)
}

// Logout forgets the remember token.
func (c *GRPCClient) Logout() {
	c.setToken("")
}

func (c *GRPCClient) SignedIn() bool {
	return c.token() != ""
}

func (c *GRPCClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", ErrAlreadyExists, st.Message())
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
