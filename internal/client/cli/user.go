package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sampleapp/internal/client/client"
)

func (a *App) Whoami(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	user, err := a.client.Whoami(ctx)
	if err != nil {
		// the session was revoked server side
		if errors.Is(err, client.ErrUnauthorized) {
			a.client.Logout()
			a.user = nil
		}
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}
	a.printUser(user)
	return nil
}

// Show prints the account with the given id, prompting when id is empty.
func (a *App) Show(ctx context.Context, id string) error {
	if id == "" {
		var err error
		if id, err = getSimpleText(a.reader, "Enter user id", a.out); err != nil {
			return err
		}
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	user, err := a.client.Show(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}
	a.printUser(user)
	return nil
}

func (a *App) Ping(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.Ping(ctx); err != nil {
		fmt.Fprintf(a.out, "Server unreachable: %s\n", err)
		return err
	}
	fmt.Fprintln(a.out, "OK")
	return nil
}
