package services

import (
	"errors"

	"github.com/melusi-muna/login-register-forms/internal/common"
	"github.com/melusi-muna/login-register-forms/internal/forms"
)

const (
	msgDuplicateEmail = "An account with this email already exists. Please login instead."
	msgNoSuchUser     = "No account found with this email. Please register first."
	msgWrongPassword  = "Invalid password. Please try again."
	msgInternal       = "Something went wrong. Please try again."

	msgRegistered = "✅ Account successfully created! Redirecting to login..."
)

func loginSuccessText(name string) string {
	return "✅ Login successful! Welcome back, " + name + "!"
}

func dashboardNotice(name string) string {
	return "Welcome to your dashboard, " + name + "!"
}

func alreadyLoggedInText(name string) string {
	return "You are already logged in as " + name
}

// UserMessage turns err into the text shown to the user.
func UserMessage(err error) string {
	if ve, ok := forms.AsValidationError(err); ok {
		return ve.Message
	}
	switch {
	case errors.Is(err, common.ErrDuplicateEmail):
		return msgDuplicateEmail
	case errors.Is(err, common.ErrNoSuchUser):
		return msgNoSuchUser
	case errors.Is(err, common.ErrWrongPassword):
		return msgWrongPassword
	default:
		return msgInternal
	}
}

// IsRejection reports whether err is a user-facing rejection rather than an
// infrastructure failure.
func IsRejection(err error) bool {
	if _, ok := forms.AsValidationError(err); ok {
		return true
	}
	return errors.Is(err, common.ErrDuplicateEmail) ||
		errors.Is(err, common.ErrNoSuchUser) ||
		errors.Is(err, common.ErrWrongPassword)
}
