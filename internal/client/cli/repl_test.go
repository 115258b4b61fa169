package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/userkeeper/internal/logging"
)

type fakeExec struct {
	loggedIn bool

	calls    []string
	seedArgs []string
	listErr  error
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) List(ctx context.Context) error {
	f.calls = append(f.calls, "list")
	return f.listErr
}
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) ChangePassword(ctx context.Context) error {
	f.calls = append(f.calls, "passwd")
	return nil
}
func (f *fakeExec) Delete(ctx context.Context) error {
	f.calls = append(f.calls, "delete")
	return nil
}
func (f *fakeExec) Seed(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "seed")
	f.seedArgs = args
	return nil
}

func run(t *testing.T, exec *fakeExec, lines ...string) string {
	t.Helper()
	out, _ := runLogged(t, exec, lines...)
	return out
}

// runLogged is run that also returns what the REPL logged.
func runLogged(t *testing.T, exec *fakeExec, lines ...string) (string, string) {
	t.Helper()
	var out, logs bytes.Buffer
	r := bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "" }, r, &out, logging.New(&logs, "debug"))
	return out.String(), logs.String()
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	exec := &fakeExec{}

	out := run(t, exec,
		"help",
		"list",
		"login",
		"help",
		"l",
		"register",
		"passwd",
		"seed 5",
		"delete",
		"foobar",
		"logout",
		"exit",
	)

	want := []string{"login", "list", "register", "passwd", "seed", "delete", "logout"}
	if strings.Join(exec.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
	if len(exec.seedArgs) != 1 || exec.seedArgs[0] != "5" {
		t.Fatalf("seed args = %v", exec.seedArgs)
	}
	for _, s := range []string{helpLoggedOut, "Please login first", "plain text", "Unknown command: foobar", "Bye!"} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in output:\n%s", s, out)
		}
	}
}

func TestRunREPL_GuardsSessionCommands(t *testing.T) {
	exec := &fakeExec{}

	run(t, exec, "list", "passwd", "delete", "seed", "quit")

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls before login: %v", exec.calls)
	}
}

func TestRunREPL_StopsAtEOF(t *testing.T) {
	exec := &fakeExec{loggedIn: true}

	out := run(t, exec, "", "   ", "list")

	if len(exec.calls) != 1 || exec.calls[0] != "list" {
		t.Fatalf("calls = %v", exec.calls)
	}
	if strings.Contains(out, "Bye!") {
		t.Fatalf("EOF must exit silently:\n%s", out)
	}
}

func TestRunREPL_PrintsHandlerErrors(t *testing.T) {
	exec := &fakeExec{loggedIn: true, listErr: errors.New("store error: disk I/O")}

	out, logs := runLogged(t, exec, "list", "exit")

	if !strings.Contains(out, "Error: store error: disk I/O") {
		t.Fatalf("expected handler error in output:\n%s", out)
	}
	for _, s := range []string{"level=ERROR", "command failed", "cmd=list", "disk I/O"} {
		if !strings.Contains(logs, s) {
			t.Fatalf("expected %q in log:\n%s", s, logs)
		}
	}
}

func TestRunREPL_SuccessLogsNothing(t *testing.T) {
	exec := &fakeExec{loggedIn: true}

	_, logs := runLogged(t, exec, "list", "exit")

	if logs != "" {
		t.Fatalf("unexpected log output:\n%s", logs)
	}
}
