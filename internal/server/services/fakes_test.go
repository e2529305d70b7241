package services

import (
	"context"
	"database/sql"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/sampleapp/internal/common"
	"github.com/dmitrijs2005/sampleapp/internal/credential"
	"github.com/dmitrijs2005/sampleapp/internal/dbx"
	"github.com/dmitrijs2005/sampleapp/internal/server/models"
	usersrepo "github.com/dmitrijs2005/sampleapp/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

// fakeUsersRepo keeps users in memory. A non-nil err is returned by every
// call instead.
type fakeUsersRepo struct {
	mu    sync.Mutex
	byID  map[string]*models.User
	err   error
	calls []string
}

func newFakeUsersRepo(users ...*models.User) *fakeUsersRepo {
	f := &fakeUsersRepo{byID: map[string]*models.User{}}
	for _, u := range users {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUsersRepo) record(call string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	return f.err
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if err := f.record("Create"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.byID {
		if strings.EqualFold(existing.Email, u.Email) {
			return nil, common.ErrorAlreadyExists
		}
	}
	cp := *u
	f.byID[u.ID] = &cp
	return u, nil
}

func (f *fakeUsersRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := f.record("FindByEmail"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	if err := f.record("FindByID"); err != nil {
		return nil, err
	}
	return f.get(id)
}

func (f *fakeUsersRepo) FindByIDForUpdate(ctx context.Context, id string) (*models.User, error) {
	if err := f.record("FindByIDForUpdate"); err != nil {
		return nil, err
	}
	return f.get(id)
}

func (f *fakeUsersRepo) get(id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsersRepo) UpdateCredential(ctx context.Context, id, salt, hash string) error {
	if err := f.record("UpdateCredential"); err != nil {
		return err
	}
	return f.mutate(id, func(u *models.User) { u.Salt, u.EncryptedPassword = salt, hash })
}

func (f *fakeUsersRepo) SetAdmin(ctx context.Context, id string, admin bool) error {
	if err := f.record("SetAdmin"); err != nil {
		return err
	}
	return f.mutate(id, func(u *models.User) { u.Admin = admin })
}

func (f *fakeUsersRepo) Delete(ctx context.Context, id string) error {
	if err := f.record("Delete"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeUsersRepo) mutate(id string, fn func(*models.User)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	fn(u)
	return nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
}

func (m *fakeRepoManager) SQLDriver() string                            { return "fake" }
func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }

func fastCredentials(t *testing.T) (*credential.Encoder, *credential.Verifier) {
	t.Helper()
	h, err := credential.NewArgon2id(credential.Params{
		MemoryKiB:   64,
		Iterations:  1,
		Parallelism: 1,
		KeyLength:   32,
	})
	require.NoError(t, err)
	enc, err := credential.NewEncoder(h)
	require.NoError(t, err)
	return enc, credential.NewVerifier(h)
}

// encodedUser returns a stored account whose password is password.
func encodedUser(t *testing.T, enc *credential.Encoder, id, email, password string) *models.User {
	t.Helper()
	c, err := enc.Encode(password)
	require.NoError(t, err)
	return &models.User{ID: id, Name: "Example User", Email: email, Salt: c.Salt, EncryptedPassword: c.Hash}
}
