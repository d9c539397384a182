package services

import "time"

// View names a screen an adapter can switch to.
type View string

const (
	ViewLogin     View = "login"
	ViewRegister  View = "register"
	ViewDashboard View = "dashboard"
)

// Intent asks the adapter to show View once Delay has passed. Notice, when
// set, is displayed on arrival.
type Intent struct {
	View   View          `json:"view"`
	Delay  time.Duration `json:"delay"`
	Notice string        `json:"notice,omitempty"`
}
