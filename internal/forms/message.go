package forms

import "sort"

// Kind is the visual flavour of a message.
type Kind string

const (
	KindError   Kind = "error"
	KindSuccess Kind = "success"
	KindHint    Kind = "hint"
)

// Message is one line of feedback. An empty Field means the message belongs
// to the whole form.
type Message struct {
	Kind  Kind   `json:"kind"`
	Text  string `json:"text"`
	Field string `json:"field,omitempty"`
}

// Class returns the CSS class list the page uses for m. Field-scoped errors
// carry the extra "field-message" class; field hints do not.
func (m Message) Class() string {
	c := "message " + string(m.Kind)
	if m.Field != "" && m.Kind == KindError {
		c += " field-message"
	}
	return c
}

// Board holds what is currently displayed: at most one form-level message
// and at most one message per field. The zero value is ready to use.
type Board struct {
	top     *Message
	fields  map[string]Message
	borders map[string]Border
}

// ShowError replaces the form-level message, or the message of field when
// field is not empty.
func (b *Board) ShowError(text, field string) {
	if field == "" {
		b.RemoveAll()
		b.top = &Message{Kind: KindError, Text: text}
		return
	}
	b.setField(Message{Kind: KindError, Text: text, Field: field})
}

// ShowSuccess replaces the form-level message.
func (b *Board) ShowSuccess(text string) {
	b.RemoveAll()
	b.top = &Message{Kind: KindSuccess, Text: text}
}

// ShowHint replaces the message of field with a hint.
func (b *Board) ShowHint(text, field string) {
	b.setField(Message{Kind: KindHint, Text: text, Field: field})
}

// Show places m according to its kind and field.
func (b *Board) Show(m Message) {
	switch {
	case m.Kind == KindSuccess:
		b.ShowSuccess(m.Text)
	case m.Kind == KindHint:
		b.ShowHint(m.Text, m.Field)
	default:
		b.ShowError(m.Text, m.Field)
	}
}

// Remove drops the message of field.
func (b *Board) Remove(field string) {
	delete(b.fields, field)
}

// RemoveAll drops every message without the field-message class: the
// form-level message and field hints. Field errors stay.
func (b *Board) RemoveAll() {
	b.top = nil
	for name, m := range b.fields {
		if m.Kind != KindError {
			delete(b.fields, name)
		}
	}
}

// Top returns the form-level message.
func (b *Board) Top() (Message, bool) {
	if b.top == nil {
		return Message{}, false
	}
	return *b.top, true
}

// Field returns the message scoped to name.
func (b *Board) Field(name string) (Message, bool) {
	m, ok := b.fields[name]
	return m, ok
}

// Border returns the border state of a field.
func (b *Board) Border(name string) Border {
	return b.borders[name]
}

// Messages lists the form-level message first, then field messages sorted by
// field name.
func (b *Board) Messages() []Message {
	out := make([]Message, 0, len(b.fields)+1)
	if b.top != nil {
		out = append(out, *b.top)
	}
	names := make([]string, 0, len(b.fields))
	for name := range b.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		out = append(out, b.fields[name])
	}
	return out
}

// Apply executes a field feedback decision.
func (b *Board) Apply(fb FieldFeedback) {
	switch fb.Action {
	case ActionShow:
		b.Show(fb.Message)
	case ActionRemove:
		b.Remove(fb.Field)
	}
	if fb.Border != BorderUnchanged {
		if b.borders == nil {
			b.borders = make(map[string]Border)
		}
		b.borders[fb.Field] = fb.Border
	}
}

func (b *Board) setField(m Message) {
	if b.fields == nil {
		b.fields = make(map[string]Message)
	}
	b.fields[m.Field] = m
}
