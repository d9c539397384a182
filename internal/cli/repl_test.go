package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
	err   error
}

func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return f.err
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	return f.err
}
func (f *fakeExec) WhoAmI(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return f.err
}
func (f *fakeExec) Users(ctx context.Context) error {
	f.calls = append(f.calls, "users")
	return f.err
}

func capturePrint(t *testing.T) *[]string {
	t.Helper()
	lines := &[]string{}
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		*lines = append(*lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	lines := capturePrint(t)

	input := strings.Join([]string{
		"help",
		"register",
		"",
		"login",
		"whoami",
		"users",
		"foobar",
		"exit",
		"login",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "[login]" }, rdr(input))

	assert.Equal(t, []string{"register", "login", "whoami", "users"}, exec.calls)
	assert.Contains(t, *lines, "Available commands: register, login, whoami, users, exit")
	assert.Contains(t, *lines, "Unknown command: foobar")
	assert.Contains(t, *lines, "forms [login]> ")
	assert.Equal(t, "Bye!", (*lines)[len(*lines)-1])
}

func TestRunREPL_ReportsErrorsAndContinues(t *testing.T) {
	lines := capturePrint(t)

	exec := &fakeExec{err: errors.New("disk full")}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("users\nwhoami\nquit\n"))

	assert.Equal(t, []string{"users", "whoami"}, exec.calls)
	assert.Contains(t, *lines, "Error: disk full")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	capturePrint(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("whoami"))

	assert.Equal(t, []string{"whoami"}, exec.calls)
}

func TestRunREPL_StopsWhenContextDone(t *testing.T) {
	capturePrint(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, rdr("users\nusers\n"))

	assert.Equal(t, []string{"users"}, exec.calls)
}
