package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordFocus_ShowsHint(t *testing.T) {
	fb := PasswordFocus()
	assert.Equal(t, ActionShow, fb.Action)
	assert.Equal(t, KindHint, fb.Message.Kind)
	assert.Equal(t, "Password must be at least 6 characters long", fb.Message.Text)
	assert.Equal(t, FieldPassword, fb.Message.Field)
}

func TestPasswordInput(t *testing.T) {
	assert.Equal(t, ActionNone, PasswordInput("").Action)

	short := PasswordInput("12345")
	assert.Equal(t, ActionShow, short.Action)
	assert.Equal(t, KindError, short.Message.Kind)
	assert.Equal(t, "Password must be at least 6 characters", short.Message.Text)

	assert.Equal(t, ActionRemove, PasswordInput("123456").Action)
}

func TestPasswordBlur(t *testing.T) {
	assert.Equal(t, ActionRemove, PasswordBlur("").Action)
	assert.Equal(t, ActionNone, PasswordBlur("123").Action)
}

func TestConfirmInput(t *testing.T) {
	mismatch := ConfirmInput("secret1", "secret")
	assert.Equal(t, ActionShow, mismatch.Action)
	assert.Equal(t, "Passwords do not match", mismatch.Message.Text)
	assert.Equal(t, FieldConfirmPassword, mismatch.Message.Field)
	assert.Equal(t, BorderError, mismatch.Border)

	match := ConfirmInput("secret1", "secret1")
	assert.Equal(t, ActionRemove, match.Action)
	assert.Equal(t, BorderSuccess, match.Border)

	empty := ConfirmInput("secret1", "")
	assert.Equal(t, ActionRemove, empty.Action)
	assert.Equal(t, BorderReset, empty.Border)
}

func TestFeedback_Dispatch(t *testing.T) {
	fb, err := Feedback(EventPasswordFocus, "", "")
	require.NoError(t, err)
	assert.Equal(t, KindHint, fb.Message.Kind)

	fb, err = Feedback(EventConfirmInput, "abcdef", "abc")
	require.NoError(t, err)
	assert.Equal(t, BorderError, fb.Border)

	_, err = Feedback(Event("paste"), "", "")
	require.Error(t, err)
}
