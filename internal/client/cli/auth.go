package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sampleapp/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for name, email and password (twice) and creates an
// account. A successful signup also signs the user in.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirmation, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirmation)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	user, err := a.client.Signup(ctx, name, email, password, confirmation)
	if err != nil {
		fmt.Fprintf(a.out, "Signup failed: %s\n", err)
		return err
	}

	a.user = user
	fmt.Fprintln(a.out, "Welcome to the Sample App!")
	return nil
}

// Login prompts for credentials and signs in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	user, err := a.client.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", err)
		return err
	}

	a.user = user
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// ChangePassword asks for the new password twice. The server rotates the
// salt, so every other remembered session of this account is signed out.
func (a *App) ChangePassword(ctx context.Context) error {
	password, err := getPassword(a.out, "New password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirmation, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirmation)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.ChangePassword(ctx, password, confirmation); err != nil {
		fmt.Fprintf(a.out, "Password change failed: %s\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Password changed")
	return nil
}

// Logout drops the remember token.
func (a *App) Logout(ctx context.Context) error {
	a.client.Logout()
	a.user = nil
	fmt.Fprintln(a.out, "Signed out")
	return nil
}
