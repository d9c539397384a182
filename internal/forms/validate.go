package forms

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/melusi-muna/login-register-forms/internal/common"
)

// notSpaceOrAt excludes '@' and every character browsers treat as
// whitespace in patterns; RE2's \s covers only the ASCII part.
const notSpaceOrAt = `[^\s\x0B\x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}@]`

var emailPattern = regexp.MustCompile(`^` + notSpaceOrAt + `+@` + notSpaceOrAt + `+\.` + notSpaceOrAt + `+$`)

// ValidEmail reports whether s looks like local@domain.tld.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidationError is the first rule a submission failed.
type ValidationError struct {
	Field   string
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AsValidationError unwraps err into a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// Struct fields are declared in rule order: validator reports fields in
// declaration order and stops at the first failing tag of each field, so the
// first reported error is the first failing rule.
type loginForm struct {
	Email    string `validate:"required,formemail"`
	Password string `validate:"required,min=6"`
}

type registerForm struct {
	FullName        string `validate:"required,min=2"`
	Email           string `validate:"required,formemail"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

type ruleKey struct {
	field string
	tag   string
}

var loginMessages = map[ruleKey]string{
	{"Email", "required"}:    "Please enter your email address",
	{"Email", "formemail"}:   "Please enter a valid email address",
	{"Password", "required"}: "Please enter your password",
	{"Password", "min"}:      fmt.Sprintf("Password must be at least %d characters long", common.MinPasswordLength),
}

var registerMessages = map[ruleKey]string{
	{"FullName", "required"}:        "Please enter your full name",
	{"FullName", "min"}:             fmt.Sprintf("Full name must be at least %d characters long", common.MinFullNameLength),
	{"Email", "required"}:           "Please enter your email address",
	{"Email", "formemail"}:          "Please enter a valid email address",
	{"Password", "required"}:        "Please enter a password",
	{"Password", "min"}:             fmt.Sprintf("Password must be at least %d characters long", common.MinPasswordLength),
	{"ConfirmPassword", "required"}: "Please confirm your password",
	{"ConfirmPassword", "eqfield"}:  "Passwords do not match",
}

var fieldNames = map[string]string{
	"FullName":        FieldFullName,
	"Email":           FieldEmail,
	"Password":        FieldPassword,
	"ConfirmPassword": FieldConfirmPassword,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("formemail", func(fl validator.FieldLevel) bool {
		return ValidEmail(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidateLogin checks a login submission.
func ValidateLogin(f RawFields) (LoginData, error) {
	form := loginForm{Email: f.Email, Password: f.Password}
	if err := check(form, loginMessages); err != nil {
		return LoginData{}, err
	}
	return LoginData{Email: f.Email, Password: f.Password}, nil
}

// ValidateRegister checks a registration submission.
func ValidateRegister(f RawFields) (RegisterData, error) {
	form := registerForm{
		FullName:        f.FullName,
		Email:           f.Email,
		Password:        f.Password,
		ConfirmPassword: f.ConfirmPassword,
	}
	if err := check(form, registerMessages); err != nil {
		return RegisterData{}, err
	}
	return RegisterData{FullName: f.FullName, Email: f.Email, Password: f.Password}, nil
}

// Accepted carries the validated data of whichever mode was checked.
type Accepted struct {
	Mode     Mode
	Login    LoginData
	Register RegisterData
}

// Validate runs the rule set of mode against f. It returns a
// *ValidationError for the first failing rule, or common.ErrUnknownMode.
func Validate(mode Mode, f RawFields) (*Accepted, error) {
	switch mode {
	case ModeLogin:
		data, err := ValidateLogin(f)
		if err != nil {
			return nil, err
		}
		return &Accepted{Mode: mode, Login: data}, nil
	case ModeRegister:
		data, err := ValidateRegister(f)
		if err != nil {
			return nil, err
		}
		return &Accepted{Mode: mode, Register: data}, nil
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownMode, mode)
	}
}

func check(form any, messages map[ruleKey]string) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	first := verrs[0]
	msg, ok := messages[ruleKey{first.StructField(), first.Tag()}]
	if !ok {
		return fmt.Errorf("unmapped rule %s/%s: %w", first.StructField(), first.Tag(), err)
	}
	return &ValidationError{Field: fieldNames[first.StructField()], Rule: first.Tag(), Message: msg}
}
