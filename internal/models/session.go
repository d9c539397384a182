package models

// SessionMarker is the single "currently logged in" indicator. It is
// overwritten on every successful login and never cleared.
type SessionMarker struct {
	Email      string    `json:"email"`
	FullName   string    `json:"fullnames"`
	LoggedInAt Timestamp `json:"loggedInAt"`
}
