package forms

import "strings"

// Mode tells which form was submitted.
type Mode string

const (
	ModeLogin    Mode = "login"
	ModeRegister Mode = "register"
)

// ModeFromAction derives the mode from a form action or request path. A path
// containing "/login" wins over one containing "/register".
func ModeFromAction(action string) (Mode, bool) {
	switch {
	case strings.Contains(action, "/login"):
		return ModeLogin, true
	case strings.Contains(action, "/register"):
		return ModeRegister, true
	default:
		return "", false
	}
}

// Field identifiers, matching the input ids of the form pages.
const (
	FieldFullName        = "fullnames"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
)

// RawFields are the values as typed. Empty means absent.
type RawFields struct {
	FullName        string `json:"fullnames" form:"fullnames"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

// Trimmed returns a copy with surrounding whitespace removed from the email
// and full name. Passwords are kept exactly as typed.
func (f RawFields) Trimmed() RawFields {
	f.Email = strings.TrimSpace(f.Email)
	f.FullName = strings.TrimSpace(f.FullName)
	return f
}

// LoginData is the accepted login form.
type LoginData struct {
	Email    string
	Password string
}

// RegisterData is the accepted registration form.
type RegisterData struct {
	FullName string
	Email    string
	Password string
}
