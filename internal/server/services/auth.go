// Package services contains server-side business logic: authentication
// decisions (AuthService) and account management (UserService).
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/sampleapp/internal/common"
	"github.com/dmitrijs2005/sampleapp/internal/credential"
	"github.com/dmitrijs2005/sampleapp/internal/logging"
	"github.com/dmitrijs2005/sampleapp/internal/server/models"
	"github.com/dmitrijs2005/sampleapp/internal/server/repositories/users"
)

// NormalizeEmail is the canonical form used for lookups and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AuthService decides whether a presented secret identifies an account.
// Every call ends in one of three outcomes: the account, common.ErrorNotFound
// or common.ErrorMismatch. Lookup failures are reported as
// common.ErrorInternal.
type AuthService struct {
	repo     users.Repository
	verifier *credential.Verifier
	dummy    credential.Credential
	logger   logging.Logger
}

// NewAuthService binds the orchestrator to its repository. enc is only used
// to derive the dummy credential checked on lookup misses, so a missing
// account costs as much time as a wrong password.
func NewAuthService(repo users.Repository, enc *credential.Encoder, ver *credential.Verifier, logger logging.Logger) (*AuthService, error) {
	secret, err := common.MakeRandHexString(16)
	if err != nil {
		return nil, fmt.Errorf("dummy credential: %w", err)
	}
	dummy, err := enc.Encode(secret)
	if err != nil {
		return nil, fmt.Errorf("dummy credential: %w", err)
	}
	return &AuthService{
		repo:     repo,
		verifier: ver,
		dummy:    dummy,
		logger:   logger.With("module", "auth_service"),
	}, nil
}

// AuthenticateByPassword looks the account up by email and checks password
// against its stored credential.
func (s *AuthService) AuthenticateByPassword(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.verifier.VerifyPassword(s.dummy.Salt, s.dummy.Hash, password)
			s.logger.Info(ctx, "password authentication failed", "reason", "unknown email")
			return nil, common.ErrorNotFound
		}
		s.logger.Error(ctx, "user lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	if !s.verifier.VerifyPassword(user.Salt, user.EncryptedPassword, password) {
		s.logger.Warn(ctx, "password authentication failed", "user_id", user.ID, "reason", "mismatch")
		return nil, common.ErrorMismatch
	}

	s.logger.Info(ctx, "user authenticated", "user_id", user.ID, "method", "password")
	return user, nil
}

// AuthenticateBySessionToken accepts the (id, salt) pair remembered at login.
// The presented salt must equal the stored one exactly, so a password change
// invalidates every remembered session.
func (s *AuthService) AuthenticateBySessionToken(ctx context.Context, id, salt string) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Info(ctx, "session authentication failed", "user_id", id, "reason", "unknown user")
			return nil, common.ErrorNotFound
		}
		s.logger.Error(ctx, "user lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	if !s.verifier.VerifySalt(user.Salt, salt) {
		s.logger.Warn(ctx, "session authentication failed", "user_id", id, "reason", "mismatch")
		return nil, common.ErrorMismatch
	}

	s.logger.Debug(ctx, "user authenticated", "user_id", user.ID, "method", "session")
	return user, nil
}
