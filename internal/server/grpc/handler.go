package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/sampleapp/internal/api"
	"github.com/dmitrijs2005/sampleapp/internal/common"
	"github.com/dmitrijs2005/sampleapp/internal/server/auth"
	"github.com/dmitrijs2005/sampleapp/internal/server/models"
	"github.com/dmitrijs2005/sampleapp/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const invalidLoginMessage = "invalid email/password combination"

func (s *GRPCServer) Signup(ctx context.Context, req *api.SignupRequest) (*api.SignupResponse, error) {
	user, err := s.users.Signup(ctx, services.SignupInput{
		Name:                 req.Name,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		return nil, toStatus(err)
	}

	token, err := s.rememberToken(ctx, user)
	if err != nil {
		return nil, err
	}

	return &api.SignupResponse{User: toAPIUser(user), RememberToken: token}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *api.LoginRequest) (*api.LoginResponse, error) {
	user, err := s.auth.AuthenticateByPassword(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorMismatch) {
			return nil, status.Error(codes.Unauthenticated, invalidLoginMessage)
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	token, err := s.rememberToken(ctx, user)
	if err != nil {
		return nil, err
	}

	return &api.LoginResponse{User: toAPIUser(user), RememberToken: token}, nil
}

func (s *GRPCServer) Whoami(ctx context.Context, _ *api.WhoamiRequest) (*api.WhoamiResponse, error) {
	user, ok := currentUser(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "not signed in")
	}
	return &api.WhoamiResponse{User: toAPIUser(user)}, nil
}

func (s *GRPCServer) Show(ctx context.Context, req *api.ShowRequest) (*api.ShowResponse, error) {
	user, err := s.users.Show(ctx, req.ID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &api.ShowResponse{User: toAPIUser(user)}, nil
}

func (s *GRPCServer) ChangePassword(ctx context.Context, req *api.ChangePasswordRequest) (*api.ChangePasswordResponse, error) {
	current, ok := currentUser(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "not signed in")
	}

	user, err := s.users.ChangePassword(ctx, current.ID, req.Password, req.PasswordConfirmation)
	if err != nil {
		return nil, toStatus(err)
	}

	token, err := s.rememberToken(ctx, user)
	if err != nil {
		return nil, err
	}

	return &api.ChangePasswordResponse{RememberToken: token}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *api.PingRequest) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) rememberToken(ctx context.Context, user *models.User) (string, error) {
	token, err := auth.GenerateRememberToken(user.ID, user.Salt, s.secretKey, s.rememberTokenValidity)
	if err != nil {
		s.logger.Error(ctx, "signing remember token failed", "error", err)
		return "", status.Error(codes.Internal, "internal error")
	}
	return token, nil
}

func toStatus(err error) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return status.Error(codes.InvalidArgument, verr.Error())
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "email has already been taken")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "user not found")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func toAPIUser(u *models.User) *api.User {
	return &api.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Admin:     u.Admin,
		CreatedAt: u.CreatedAt,
	}
}
