package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/userkeeper/internal/client/adapter"
	"github.com/dmitrijs2005/userkeeper/internal/common"
)

// List prints every stored user, without passwords, in store order.
func (a *App) List(ctx context.Context) error {
	users, err := a.userService.List(ctx)
	if err != nil {
		return err
	}
	return adapter.NewUsersAdapter(users).Render(a.out)
}

// ChangePassword prompts for a username and its new password.
func (a *App) ChangePassword(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.userService.ChangePassword(ctx, userName, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Password updated")
	return nil
}

// Delete removes every account carrying the given username. Deleting the
// logged-in account ends the session.
func (a *App) Delete(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username to delete", a.out)
	if err != nil {
		return err
	}

	n, err := a.userService.Remove(ctx, userName)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Deleted %d row(s)\n", n)

	if n > 0 && a.current != nil && a.current.Username == userName {
		return a.Logout(ctx)
	}
	return nil
}

// Seed ensures the first n test users exist; n defaults to the configured
// seed count.
func (a *App) Seed(ctx context.Context, args []string) error {
	n := a.config.SeedCount
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("seed count %q: %w", args[0], common.ErrorValidation)
		}
		n = v
	}

	res, err := a.userService.SeedTestUsers(ctx, n)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Test users: inserted=%d skipped=%d\n", res.Inserted, res.Skipped)
	return nil
}
