package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/sampleapp/internal/api"
	"github.com/dmitrijs2005/sampleapp/internal/common"
	"github.com/dmitrijs2005/sampleapp/internal/server/auth"
	"github.com/dmitrijs2005/sampleapp/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const userKey ctxKey = "user"

// protectedMethods need a signed-in user.
var protectedMethods = map[string]bool{
	api.MethodWhoami:         true,
	api.MethodChangePassword: true,
}

// currentUser returns the user the session interceptor resolved.
func currentUser(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(userKey).(*models.User)
	return u, ok
}

// sessionInterceptor resolves the remember token of protected calls to a
// user: the token yields (id, salt) and the salt must still be the stored one.
func (s *GRPCServer) sessionInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if !protectedMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var token string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.RememberTokenHeaderName); len(values) > 0 {
			token = values[0]
		}
	}
	if token == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	id, salt, err := auth.ParseRememberToken(token, s.secretKey)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	user, err := s.auth.AuthenticateBySessionToken(ctx, id, salt)
	if err != nil {
		if errors.Is(err, common.ErrorInternal) {
			return nil, status.Error(codes.Internal, "internal error")
		}
		return nil, status.Error(codes.Unauthenticated, "session expired, please sign in again")
	}

	return handler(context.WithValue(ctx, userKey, user), req)
}
