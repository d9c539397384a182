// Package common contains shared constants and sentinel errors used across
// the form core, the storage backends and the adapters.
package common

import "time"

// Storage keys. The names match what the browser build kept in localStorage,
// so a dumped store can be loaded by either side.
const (
	RegisteredUsersKey = "registeredUsers"
	CurrentUserKey     = "currentUser"
)

// DefaultRedirectDelay is how long a success message stays on screen before
// the adapter switches views.
const DefaultRedirectDelay = 2000 * time.Millisecond

// Minimal lengths enforced by the form rules (counted in characters).
const (
	MinFullNameLength = 2
	MinPasswordLength = 6
)
