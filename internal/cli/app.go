package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/melusi-muna/login-register-forms/internal/forms"
	"github.com/melusi-muna/login-register-forms/internal/logging"
	"github.com/melusi-muna/login-register-forms/internal/models"
	"github.com/melusi-muna/login-register-forms/internal/services"
)

// FormService is what the terminal UI needs from the form core.
// *services.FormService satisfies it.
type FormService interface {
	Submit(ctx context.Context, mode forms.Mode, raw forms.RawFields) (*services.Outcome, error)
	ExistingSession(ctx context.Context) (*forms.Message, error)
	CurrentSession(ctx context.Context) (*models.SessionMarker, error)
	Feedback(event forms.Event, password, confirm string) (forms.FieldFeedback, error)
	Users(ctx context.Context) ([]models.UserRecord, error)
}

// sleepFn waits d or until ctx is done. Tests replace it to skip the
// redirect delay.
var sleepFn = func(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

type App struct {
	svc    FormService
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer

	view  services.View
	board forms.Board
}

func NewApp(svc FormService, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		svc:    svc,
		log:    log,
		reader: bufio.NewReader(in),
		out:    out,
		view:   services.ViewLogin,
	}
}

// Run opens the login view and serves commands until exit or EOF.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the forms CLI (type 'help' for commands)")
	a.enterView(ctx, services.ViewLogin)
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) getStatus() string {
	return fmt.Sprintf("[%s]", a.view)
}

// follow carries out an intent: wait, switch view, show the notice.
func (a *App) follow(ctx context.Context, in *services.Intent) {
	if in == nil {
		return
	}
	sleepFn(ctx, in.Delay)
	if ctx.Err() != nil {
		return
	}
	a.enterView(ctx, in.View)
	if in.Notice != "" {
		fmt.Fprintln(a.out, in.Notice)
	}
}

func (a *App) enterView(ctx context.Context, v services.View) {
	a.view = v
	a.board = forms.Board{}
	fmt.Fprintf(a.out, "--- %s ---\n", v)

	if v != services.ViewLogin {
		return
	}
	msg, err := a.svc.ExistingSession(ctx)
	if err != nil {
		a.log.Warn(ctx, "session check failed", "error", err)
		return
	}
	if msg != nil {
		a.board.Show(*msg)
		a.render()
	}
}

// render prints every message currently on the board.
func (a *App) render() {
	for _, m := range a.board.Messages() {
		prefix := ""
		if m.Field != "" {
			prefix = m.Field + ": "
		}
		fmt.Fprintf(a.out, "[%s] %s%s\n", m.Kind, prefix, m.Text)
	}
}

// applyFeedback runs a live field rule and prints the field's state.
func (a *App) applyFeedback(ev forms.Event, password, confirm string) {
	fb, err := a.svc.Feedback(ev, password, confirm)
	if err != nil {
		return
	}
	a.board.Apply(fb)
	if m, ok := a.board.Field(fb.Field); ok && fb.Action == forms.ActionShow {
		fmt.Fprintf(a.out, "  (%s) %s\n", m.Kind, m.Text)
	}
}
