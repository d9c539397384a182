package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_Class(t *testing.T) {
	assert.Equal(t, "message error", Message{Kind: KindError}.Class())
	assert.Equal(t, "message success", Message{Kind: KindSuccess}.Class())
	assert.Equal(t, "message hint", Message{Kind: KindHint, Field: FieldPassword}.Class())
	assert.Equal(t, "message error field-message", Message{Kind: KindError, Field: FieldPassword}.Class())
}

func TestBoard_SingleFormLevelMessage(t *testing.T) {
	var b Board
	b.ShowError("Please enter your email address", "")
	b.ShowSuccess("done")

	top, ok := b.Top()
	require.True(t, ok)
	assert.Equal(t, KindSuccess, top.Kind)
	assert.Len(t, b.Messages(), 1)
}

func TestBoard_OneMessagePerField(t *testing.T) {
	var b Board
	b.ShowHint("hint", FieldPassword)
	b.ShowError("too short", FieldPassword)

	m, ok := b.Field(FieldPassword)
	require.True(t, ok)
	assert.Equal(t, KindError, m.Kind)
	assert.Len(t, b.Messages(), 1)
}

func TestBoard_RemoveAllKeepsFieldErrors(t *testing.T) {
	var b Board
	b.ShowError("too short", FieldPassword)
	b.ShowHint("hint", FieldConfirmPassword)
	b.ShowError("top", "")

	b.RemoveAll()

	_, ok := b.Top()
	assert.False(t, ok)
	_, ok = b.Field(FieldConfirmPassword)
	assert.False(t, ok, "hints are not field-message elements")
	_, ok = b.Field(FieldPassword)
	assert.True(t, ok)
}

func TestBoard_ApplyFeedback(t *testing.T) {
	var b Board
	b.Apply(PasswordFocus())
	m, ok := b.Field(FieldPassword)
	require.True(t, ok)
	assert.Equal(t, KindHint, m.Kind)

	b.Apply(PasswordInput("123"))
	m, _ = b.Field(FieldPassword)
	assert.Equal(t, KindError, m.Kind)

	b.Apply(PasswordInput("123456"))
	_, ok = b.Field(FieldPassword)
	assert.False(t, ok)

	b.Apply(ConfirmInput("123456", "12"))
	assert.Equal(t, BorderError, b.Border(FieldConfirmPassword))
	b.Apply(ConfirmInput("123456", "123456"))
	assert.Equal(t, BorderSuccess, b.Border(FieldConfirmPassword))
	_, ok = b.Field(FieldConfirmPassword)
	assert.False(t, ok)
}

func TestBoard_MessagesOrder(t *testing.T) {
	var b Board
	b.ShowError("pw", FieldPassword)
	b.ShowError("cpw", FieldConfirmPassword)
	b.ShowError("top", "")

	msgs := b.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "top", msgs[0].Text)
	assert.Equal(t, FieldConfirmPassword, msgs[1].Field)
	assert.Equal(t, FieldPassword, msgs[2].Field)
}
