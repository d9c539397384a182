package cli

import (
	"context"
	"fmt"

	"github.com/melusi-muna/login-register-forms/internal/common"
	"github.com/melusi-muna/login-register-forms/internal/forms"
	"github.com/melusi-muna/login-register-forms/internal/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the registration fields and submits them. On success
// the app waits the redirect delay and switches to the login view.
//
// Rejections are rendered on the board and return nil; only I/O and storage
// failures are returned.
func (a *App) Register(ctx context.Context) error {
	a.enterView(ctx, services.ViewRegister)

	name, err := getSimpleText(a.reader, "Full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	a.applyFeedback(forms.EventPasswordFocus, "", "")
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	a.applyFeedback(forms.EventPasswordInput, string(password), "")
	a.applyFeedback(forms.EventPasswordBlur, string(password), "")

	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)
	a.applyFeedback(forms.EventConfirmInput, string(password), string(confirm))

	return a.submit(ctx, forms.ModeRegister, forms.RawFields{
		FullName:        name,
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirm),
	})
}

// Login prompts for email and password and submits them. On success the
// session marker is written and the app moves to the dashboard after the
// redirect delay.
func (a *App) Login(ctx context.Context) error {
	if a.view != services.ViewLogin {
		a.enterView(ctx, services.ViewLogin)
	}

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	return a.submit(ctx, forms.ModeLogin, forms.RawFields{Email: email, Password: string(password)})
}

func (a *App) submit(ctx context.Context, mode forms.Mode, raw forms.RawFields) error {
	a.board.RemoveAll()

	out, err := a.svc.Submit(ctx, mode, raw)
	if err != nil {
		a.log.Error(ctx, "submission failed", "mode", mode, "error", err)
		a.board.ShowError(services.UserMessage(err), "")
		a.render()
		return err
	}

	a.board.Show(out.Message)
	a.render()
	a.follow(ctx, out.Intent)
	return nil
}

// WhoAmI prints the current session marker.
func (a *App) WhoAmI(ctx context.Context) error {
	s, err := a.svc.CurrentSession(ctx)
	if err != nil {
		return err
	}
	if s == nil {
		fmt.Fprintln(a.out, "Nobody is logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s>, logged in at %s\n", s.FullName, s.Email, s.LoggedInAt.Format("2006-01-02 15:04:05 MST"))
	return nil
}

// Users lists the registered accounts without their passwords.
func (a *App) Users(ctx context.Context) error {
	users, err := a.svc.Users(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Fprintln(a.out, "No registered users")
		return nil
	}
	for i, u := range users {
		fmt.Fprintf(a.out, "%d. %s <%s> registered %s\n", i+1, u.FullName, u.Email, u.CreatedAt.Format("2006-01-02"))
	}
	return nil
}
