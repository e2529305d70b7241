package cli

import (
	"context"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/sampleapp/internal/client/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_Whoami(t *testing.T) {
	fc := &fakeClient{user: sampleAPIUser(), token: true}
	app, out := newTestApp(fc, "")

	require.NoError(t, app.Whoami(context.Background()))
	assert.Equal(t, "Example User <example@example.com> id=u-1 role=user since 2024-01-02\n", out.String())
}

func TestApp_Whoami_RevokedSession(t *testing.T) {
	fc := &fakeClient{user: sampleAPIUser(), token: true}
	app, out := newTestApp(fc, "")
	app.user = fc.user

	fc.err = fmt.Errorf("%w: session expired, please sign in again", client.ErrUnauthorized)
	require.Error(t, app.Whoami(context.Background()))

	assert.False(t, app.isLoggedIn())
	assert.Nil(t, app.user)
	assert.Contains(t, fc.calls, "logout")
	assert.Contains(t, out.String(), "session expired")
}

func TestApp_Show(t *testing.T) {
	u := sampleAPIUser()
	u.Admin = true
	fc := &fakeClient{user: u}
	app, out := newTestApp(fc, "")

	require.NoError(t, app.Show(context.Background(), "u-1"))
	assert.Equal(t, "u-1", fc.lastID)
	assert.Contains(t, out.String(), "role=admin")
}

func TestApp_Show_PromptsForID(t *testing.T) {
	fc := &fakeClient{user: sampleAPIUser()}
	app, _ := newTestApp(fc, "")
	stubInputs(t, []string{"u-7"}, nil)

	require.NoError(t, app.Show(context.Background(), ""))
	assert.Equal(t, "u-7", fc.lastID)
}

func TestApp_Show_NotFound(t *testing.T) {
	fc := &fakeClient{err: fmt.Errorf("%w: user not found", client.ErrNotFound)}
	app, out := newTestApp(fc, "")

	require.ErrorIs(t, app.Show(context.Background(), "nope"), client.ErrNotFound)
	assert.Contains(t, out.String(), "user not found")
}

func TestApp_Ping(t *testing.T) {
	fc := &fakeClient{}
	app, out := newTestApp(fc, "")

	require.NoError(t, app.Ping(context.Background()))
	assert.Contains(t, out.String(), "OK")

	fc.err = client.ErrUnavailable
	require.ErrorIs(t, app.Ping(context.Background()), client.ErrUnavailable)
	assert.Contains(t, out.String(), "Server unreachable")
}

func TestApp_Run_ClosesClient(t *testing.T) {
	fc := &fakeClient{}
	app, out := newTestApp(fc, "ping\nexit\n")

	origPrint := printlnFn
	t.Cleanup(func() { printlnFn = origPrint })
	printlnFn = func(a ...any) (int, error) { return 0, nil }

	app.Run(context.Background())

	assert.True(t, fc.closed)
	assert.Equal(t, []string{"ping"}, fc.calls)
	assert.Contains(t, out.String(), "Welcome to sampleapp CLI")
}
