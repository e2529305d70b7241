package client

import (
	"context"

	"github.com/dmitrijs2005/sampleapp/internal/api"
)

type Client interface {
	Close() error
	Signup(ctx context.Context, name, email string, password, confirmation []byte) (*api.User, error)
	Login(ctx context.Context, email string, password []byte) (*api.User, error)
	Whoami(ctx context.Context) (*api.User, error)
	Show(ctx context.Context, id string) (*api.User, error)
	ChangePassword(ctx context.Context, password, confirmation []byte) error
	Ping(ctx context.Context) error
	Logout()
	SignedIn() bool
}
