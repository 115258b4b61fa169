package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userkeeper/internal/common"
	"github.com/google/uuid"
)

// getSimpleText and getPassword point to the interactive input helpers and
// can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and checks them against the local store.
//
// Unknown credentials are not an error: the user is told the account does
// not exist and stays logged out. Store failures are returned.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.userService.Login(ctx, userName, password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			fmt.Fprintln(a.out, "User does not exist")
			return nil
		}
		return err
	}

	a.current = &u
	a.sessionID = uuid.NewString()
	a.logger.With("session", a.sessionID).Info(ctx, "session started", "user", u.Username)

	fmt.Fprintf(a.out, "Welcome, %s\n", u.Username)
	return a.List(ctx)
}

// Logout forgets the current user.
func (a *App) Logout(ctx context.Context) error {
	if a.current == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	a.logger.With("session", a.sessionID).Info(ctx, "session ended", "user", a.current.Username)
	a.current = nil
	a.sessionID = ""
	return nil
}

// Register prompts for a username and password and creates the account.
// Taken usernames are refused.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter new username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	id, err := a.userService.Register(ctx, userName, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Created user %s with id %d\n", userName, id)
	return nil
}
