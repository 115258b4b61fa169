package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/userkeeper/internal/logging"
)

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Register(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	Delete(ctx context.Context) error
	Seed(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: login, register, exit"
	helpLoggedIn  = "Available commands: (l)ist, register, passwd, delete, seed [n], logout, exit\n" +
		"Note: passwords are stored in plain text."
)

// runREPL reads one command per line from r and dispatches it to a.
//
// The loop exits on EOF or when the user types "exit" or "quit". Commands
// that need a session (list, passwd, delete, seed) are refused until login
// succeeds. Handler errors are printed, logged, and the loop carries on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader, w io.Writer, logger logging.Logger) {
	for {
		fmt.Fprintf(w, "uk%s> ", statusFn())

		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpLoggedIn)
			} else {
				fmt.Fprintln(w, helpLoggedOut)
			}

		case "login":
			cmdErr = a.Login(ctx)

		case "register":
			cmdErr = a.Register(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "l", "list", "passwd", "delete", "seed":
			if !a.isLoggedIn() {
				fmt.Fprintln(w, "Please login first")
				continue
			}
			switch cmd {
			case "passwd":
				cmdErr = a.ChangePassword(ctx)
			case "delete":
				cmdErr = a.Delete(ctx)
			case "seed":
				cmdErr = a.Seed(ctx, args)
			default:
				cmdErr = a.List(ctx)
			}

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			logger.Error(ctx, "command failed", "cmd", cmd, "error", cmdErr)
			fmt.Fprintln(w, "Error:", cmdErr)
		}
	}
}
