package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/sampleapp/internal/api"
	"github.com/dmitrijs2005/sampleapp/internal/client/config"
)

var errBoom = errors.New("boom")

type fakeClient struct {
	user     *api.User
	token    bool
	closed   bool
	err      error
	calls    []string
	lastName string
	lastPass string
	lastConf string
	lastID   string
}

func (f *fakeClient) record(name string) { f.calls = append(f.calls, name) }

func (f *fakeClient) Close() error { f.closed = true; return nil }

func (f *fakeClient) Signup(_ context.Context, name, _ string, password, confirmation []byte) (*api.User, error) {
	f.record("signup")
	f.lastName, f.lastPass, f.lastConf = name, string(password), string(confirmation)
	if f.err != nil {
		return nil, f.err
	}
	f.token = true
	return f.user, nil
}

func (f *fakeClient) Login(_ context.Context, _ string, password []byte) (*api.User, error) {
	f.record("login")
	f.lastPass = string(password)
	if f.err != nil {
		return nil, f.err
	}
	f.token = true
	return f.user, nil
}

func (f *fakeClient) Whoami(context.Context) (*api.User, error) {
	f.record("whoami")
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeClient) Show(_ context.Context, id string) (*api.User, error) {
	f.record("show")
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeClient) ChangePassword(_ context.Context, password, confirmation []byte) error {
	f.record("passwd")
	f.lastPass, f.lastConf = string(password), string(confirmation)
	return f.err
}

func (f *fakeClient) Ping(context.Context) error {
	f.record("ping")
	return f.err
}

func (f *fakeClient) Logout()        { f.record("logout"); f.token = false }
func (f *fakeClient) SignedIn() bool { return f.token }

func sampleAPIUser() *api.User {
	return &api.User{
		ID:        "u-1",
		Name:      "Example User",
		Email:     "example@example.com",
		CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}
}

func newTestApp(fc *fakeClient, in string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cfg := &config.Config{RequestTimeout: time.Second}
	return newApp(cfg, fc, strings.NewReader(in), out), out
}

// stubInputs replaces the prompt seams with scripted answers.
func stubInputs(t *testing.T, texts []string, passwords []string) {
	t.Helper()
	origText, origPass := getSimpleText, getPassword
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPass })

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		v := texts[0]
		texts = texts[1:]
		return v, nil
	}
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, io.EOF
		}
		v := passwords[0]
		passwords = passwords[1:]
		return []byte(v), nil
	}
}
