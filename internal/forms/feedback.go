package forms

import (
	"fmt"
	"unicode/utf8"

	"github.com/melusi-muna/login-register-forms/internal/common"
)

// Event is a live edit of a password field.
type Event string

const (
	EventPasswordFocus Event = "password_focus"
	EventPasswordInput Event = "password_input"
	EventPasswordBlur  Event = "password_blur"
	EventConfirmInput  Event = "confirm_input"
)

// Action says what to do with a field's message.
type Action string

const (
	ActionNone   Action = "none"
	ActionShow   Action = "show"
	ActionRemove Action = "remove"
)

// Border is the outline state of an input.
type Border string

const (
	BorderUnchanged Border = ""
	BorderReset     Border = "reset"
	BorderError     Border = "error"
	BorderSuccess   Border = "success"
)

// FieldFeedback is the decision for one live event.
type FieldFeedback struct {
	Field   string  `json:"field"`
	Action  Action  `json:"action"`
	Message Message `json:"message"`
	Border  Border  `json:"border,omitempty"`
}

var (
	passwordHint  = fmt.Sprintf("Password must be at least %d characters long", common.MinPasswordLength)
	passwordShort = fmt.Sprintf("Password must be at least %d characters", common.MinPasswordLength)
)

// PasswordFocus shows the length hint.
func PasswordFocus() FieldFeedback {
	return FieldFeedback{
		Field:   FieldPassword,
		Action:  ActionShow,
		Message: Message{Kind: KindHint, Text: passwordHint, Field: FieldPassword},
	}
}

// PasswordInput flags a password that is typed but still too short and
// clears the message once it is long enough. An empty value changes nothing.
func PasswordInput(value string) FieldFeedback {
	n := utf8.RuneCountInString(value)
	switch {
	case n > 0 && n < common.MinPasswordLength:
		return FieldFeedback{
			Field:   FieldPassword,
			Action:  ActionShow,
			Message: Message{Kind: KindError, Text: passwordShort, Field: FieldPassword},
		}
	case n >= common.MinPasswordLength:
		return FieldFeedback{Field: FieldPassword, Action: ActionRemove}
	default:
		return FieldFeedback{Field: FieldPassword, Action: ActionNone}
	}
}

// PasswordBlur clears the message of an empty password field.
func PasswordBlur(value string) FieldFeedback {
	if value == "" {
		return FieldFeedback{Field: FieldPassword, Action: ActionRemove}
	}
	return FieldFeedback{Field: FieldPassword, Action: ActionNone}
}

// ConfirmInput compares the confirmation with the password as it is typed.
func ConfirmInput(password, confirm string) FieldFeedback {
	switch {
	case confirm != "" && password != confirm:
		return FieldFeedback{
			Field:   FieldConfirmPassword,
			Action:  ActionShow,
			Message: Message{Kind: KindError, Text: "Passwords do not match", Field: FieldConfirmPassword},
			Border:  BorderError,
		}
	case confirm != "":
		return FieldFeedback{Field: FieldConfirmPassword, Action: ActionRemove, Border: BorderSuccess}
	default:
		return FieldFeedback{Field: FieldConfirmPassword, Action: ActionRemove, Border: BorderReset}
	}
}

// Feedback dispatches event to the matching rule.
func Feedback(event Event, password, confirm string) (FieldFeedback, error) {
	switch event {
	case EventPasswordFocus:
		return PasswordFocus(), nil
	case EventPasswordInput:
		return PasswordInput(password), nil
	case EventPasswordBlur:
		return PasswordBlur(password), nil
	case EventConfirmInput:
		return ConfirmInput(password, confirm), nil
	default:
		return FieldFeedback{}, fmt.Errorf("unknown field event %q", event)
	}
}
