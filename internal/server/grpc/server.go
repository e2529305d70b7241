// Package grpc exposes the account services over gRPC.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/sampleapp/internal/api"
	"github.com/dmitrijs2005/sampleapp/internal/logging"
	"github.com/dmitrijs2005/sampleapp/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type GRPCServer struct {
	address               string
	users                 *services.UserService
	auth                  *services.AuthService
	logger                logging.Logger
	secretKey             []byte
	rememberTokenValidity time.Duration
}

func NewGRPCServer(a string, l logging.Logger, us *services.UserService, as *services.AuthService, secretKey string, rememberTokenValidity time.Duration) *GRPCServer {
	return &GRPCServer{
		address:               a,
		logger:                l.With("module", "grpc_server"),
		users:                 us,
		auth:                  as,
		secretKey:             []byte(secretKey),
		rememberTokenValidity: rememberTokenValidity,
	}
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis and stops gracefully once ctx is done.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.sessionInterceptor))

	api.RegisterUsersServer(srv, s)

	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(srv, healthSrv)
	healthSrv.SetServingStatus(api.ServiceName, healthpb.HealthCheckResponse_SERVING)

	// cancelled when Serve returns, whatever the reason
	serveCtx, stop := context.WithCancel(ctx)
	defer stop()

	go func() {
		<-serveCtx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		healthSrv.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		srv.Stop()
		return err
	}

	return nil
}
