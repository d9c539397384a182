package forms

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melusi-muna/login-register-forms/internal/common"
)

func validRegister() RawFields {
	return RawFields{
		FullName:        "Jane Doe",
		Email:           "jane@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

func requireRejected(t *testing.T, err error, field, msg string) {
	t.Helper()
	require.Error(t, err)
	ve, ok := AsValidationError(err)
	require.True(t, ok, "expected *ValidationError, got %T: %v", err, err)
	assert.Equal(t, msg, ve.Message)
	assert.Equal(t, field, ve.Field)
}

func TestValidateLogin_RulesInOrder(t *testing.T) {
	tests := []struct {
		name  string
		in    RawFields
		field string
		msg   string
	}{
		{"everything empty", RawFields{}, FieldEmail, "Please enter your email address"},
		{"email empty, password bad", RawFields{Password: "x"}, FieldEmail, "Please enter your email address"},
		{"email malformed", RawFields{Email: "jane.example.com"}, FieldEmail, "Please enter a valid email address"},
		{"password empty", RawFields{Email: "jane@example.com"}, FieldPassword, "Please enter your password"},
		{"password short", RawFields{Email: "jane@example.com", Password: "12345"}, FieldPassword, "Password must be at least 6 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateLogin(tt.in)
			requireRejected(t, err, tt.field, tt.msg)
		})
	}
}

func TestValidateLogin_Accepted(t *testing.T) {
	data, err := ValidateLogin(RawFields{Email: "jane@example.com", Password: "secret1", FullName: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, LoginData{Email: "jane@example.com", Password: "secret1"}, data)
}

func TestValidateRegister_RulesInOrder(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RawFields)
		field  string
		msg    string
	}{
		{"name empty", func(f *RawFields) { *f = RawFields{} }, FieldFullName, "Please enter your full name"},
		{"name short", func(f *RawFields) { f.FullName = "J"; f.Email = "" }, FieldFullName, "Full name must be at least 2 characters long"},
		{"email empty", func(f *RawFields) { f.Email = ""; f.Password = "" }, FieldEmail, "Please enter your email address"},
		{"email malformed", func(f *RawFields) { f.Email = "jane@example" }, FieldEmail, "Please enter a valid email address"},
		{"password empty", func(f *RawFields) { f.Password = "" }, FieldPassword, "Please enter a password"},
		{"password short", func(f *RawFields) { f.Password = "abc"; f.ConfirmPassword = "" }, FieldPassword, "Password must be at least 6 characters long"},
		{"confirm empty", func(f *RawFields) { f.ConfirmPassword = "" }, FieldConfirmPassword, "Please confirm your password"},
		{"confirm differs", func(f *RawFields) { f.ConfirmPassword = "secret2" }, FieldConfirmPassword, "Passwords do not match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRegister()
			tt.mutate(&in)
			_, err := ValidateRegister(in)
			requireRejected(t, err, tt.field, tt.msg)
		})
	}
}

func TestValidateRegister_Accepted(t *testing.T) {
	data, err := ValidateRegister(validRegister())
	require.NoError(t, err)
	assert.Equal(t, RegisterData{FullName: "Jane Doe", Email: "jane@example.com", Password: "secret1"}, data)
}

func TestValidate_PasswordLengthBoundary(t *testing.T) {
	_, err := ValidateLogin(RawFields{Email: "a@b.co", Password: "123456"})
	require.NoError(t, err, "exactly 6 characters passes")

	_, err = ValidateLogin(RawFields{Email: "a@b.co", Password: "12345"})
	requireRejected(t, err, FieldPassword, "Password must be at least 6 characters long")

	in := validRegister()
	in.Password, in.ConfirmPassword = "123456", "123456"
	_, err = ValidateRegister(in)
	require.NoError(t, err)
}

func TestValidate_LengthCountsCharacters(t *testing.T) {
	in := validRegister()
	in.FullName = "Łó"
	in.Password, in.ConfirmPassword = "пароль", "пароль"

	_, err := ValidateRegister(in)
	require.NoError(t, err)
}

func TestValidate_PasswordsAreNotTrimmed(t *testing.T) {
	in := validRegister()
	in.Password = "secret1 "

	_, err := ValidateRegister(in)
	requireRejected(t, err, FieldConfirmPassword, "Passwords do not match")
}

func TestValidate_EmailRule(t *testing.T) {
	valid := []string{
		"jane@example.com",
		"a@b.c",
		"first.last+tag@sub.domain.org",
		"x_y@host.co.uk",
		"weird!#$%@d.e",
	}
	for _, email := range valid {
		_, err := ValidateLogin(RawFields{Email: email, Password: "secret1"})
		assert.NoError(t, err, email)
		assert.True(t, ValidEmail(email), email)
	}

	var invalid []string
	for _, email := range valid {
		invalid = append(invalid,
			strings.ReplaceAll(email, "@", ""),
			strings.Replace(email, "@", " @", 1),
			"\t"+email,
			email+"\n",
			strings.Replace(email, "@", "@@", 1),
		)
	}
	invalid = append(invalid, "jane@example", "@example.com", "jane@.com.", "jane@example.")
	invalid = append(invalid,
		"a\vb@x.com",
		"a\u00a0b@x.com",
		"a\u1680b@x.com",
		"a\u2003b@x.com",
		"jane@exa\u200ample.com",
		"jane@example.c\u2028om",
		"jane@example.c\u2029om",
		"ja\u202fne@example.com",
		"jane@exa\u205fmple.com",
		"jane@exa\u3000mple.com",
		"jane\ufeff@example.com",
	)

	for _, email := range invalid {
		_, err := ValidateLogin(RawFields{Email: email, Password: "secret1"})
		requireRejected(t, err, FieldEmail, "Please enter a valid email address")
	}
}

func TestValidate_ModeDispatch(t *testing.T) {
	acc, err := Validate(ModeRegister, validRegister())
	require.NoError(t, err)
	assert.Equal(t, ModeRegister, acc.Mode)
	assert.Equal(t, "Jane Doe", acc.Register.FullName)

	acc, err = Validate(ModeLogin, RawFields{Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", acc.Login.Email)

	_, err = Validate(Mode("reset"), validRegister())
	assert.True(t, errors.Is(err, common.ErrUnknownMode))
}

func TestValidate_IsDeterministic(t *testing.T) {
	in := RawFields{Email: "bad", Password: "secret1"}
	_, err1 := ValidateLogin(in)
	_, err2 := ValidateLogin(in)
	assert.Equal(t, err1, err2)
}

func TestValidate_LengthsCountRunes(t *testing.T) {
	_, err := ValidateLogin(RawFields{Email: "jane@example.com", Password: "ñññññ"})
	requireRejected(t, err, FieldPassword, "Password must be at least 6 characters long")

	_, err = ValidateLogin(RawFields{Email: "jane@example.com", Password: "😀😀😀😀😀😀"})
	require.NoError(t, err)

	in := validRegister()
	in.FullName = "Ø"
	_, err = ValidateRegister(in)
	requireRejected(t, err, FieldFullName, "Full name must be at least 2 characters long")
}
