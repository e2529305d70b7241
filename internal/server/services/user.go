package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/dmitrijs2005/sampleapp/internal/common"
	"github.com/dmitrijs2005/sampleapp/internal/credential"
	"github.com/dmitrijs2005/sampleapp/internal/dbx"
	"github.com/dmitrijs2005/sampleapp/internal/logging"
	"github.com/dmitrijs2005/sampleapp/internal/server/models"
	"github.com/dmitrijs2005/sampleapp/internal/server/repositories/repomanager"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// UserService manages accounts: signup, lookup, password changes, the admin
// flag and deletion.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	encoder     *credential.Encoder
	validate    *validator.Validate
	logger      logging.Logger
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, enc *credential.Encoder, logger logging.Logger) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		encoder:     enc,
		validate:    newValidator(),
		logger:      logger.With("module", "user_service"),
	}
}

// Signup validates the form, encodes the password and stores the account.
func (s *UserService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = NormalizeEmail(in.Email)

	if err := validateStruct(s.validate, in); err != nil {
		return nil, err
	}

	cred, err := s.encoder.Encode(in.Password)
	if err != nil {
		s.logger.Error(ctx, "encoding password failed", "error", err)
		return nil, common.ErrorInternal
	}

	user := &models.User{
		ID:                uuid.NewString(),
		Name:              in.Name,
		Email:             in.Email,
		EncryptedPassword: cred.Hash,
		Salt:              cred.Salt,
	}

	u, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		s.logger.Error(ctx, "creating user failed", "error", err)
		return nil, common.ErrorInternal
	}

	s.logger.Info(ctx, "user signed up", "user_id", u.ID)
	return u, nil
}

// Show returns the account with the given id.
func (s *UserService) Show(ctx context.Context, id string) (*models.User, error) {
	u, err := s.repomanager.Users(s.db).FindByID(ctx, id)
	if err != nil {
		return nil, s.lookupError(ctx, err)
	}
	return u, nil
}

// ChangePassword replaces the credential of user id. The row is locked for
// the duration of the transaction, and the new credential always carries a
// fresh salt, which logs out every remembered session. The updated account
// is returned.
func (s *UserService) ChangePassword(ctx context.Context, id, password, confirmation string) (*models.User, error) {
	in := passwordInput{Password: password, PasswordConfirmation: confirmation}
	if err := validateStruct(s.validate, in); err != nil {
		return nil, err
	}

	var updated *models.User
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		u, err := repo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		next, err := s.encoder.Reencode(credential.Credential{Salt: u.Salt, Hash: u.EncryptedPassword}, password)
		if err != nil {
			return err
		}

		if err := repo.UpdateCredential(ctx, u.ID, next.Salt, next.Hash); err != nil {
			return err
		}

		u.Salt, u.EncryptedPassword = next.Salt, next.Hash
		updated = u
		return nil
	})
	if err != nil {
		return nil, s.lookupError(ctx, err)
	}

	s.logger.Info(ctx, "password changed", "user_id", id)
	return updated, nil
}

// SetAdmin toggles the admin attribute.
func (s *UserService) SetAdmin(ctx context.Context, id string, admin bool) error {
	if err := s.repomanager.Users(s.db).SetAdmin(ctx, id, admin); err != nil {
		return s.lookupError(ctx, err)
	}
	s.logger.Info(ctx, "admin flag changed", "user_id", id, "admin", admin)
	return nil
}

// Delete removes the account together with its credential.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repomanager.Users(s.db).Delete(ctx, id); err != nil {
		return s.lookupError(ctx, err)
	}
	s.logger.Info(ctx, "user deleted", "user_id", id)
	return nil
}

func (s *UserService) lookupError(ctx context.Context, err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return common.ErrorNotFound
	}
	s.logger.Error(ctx, "user repository failed", "error", err)
	return common.ErrorInternal
}
