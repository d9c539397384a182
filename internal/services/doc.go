// Package services holds the form core: the credential store, the session
// manager and the FormService that ties validation to both.
//
// Everything here is synchronous and UI-agnostic. Where the browser build
// redirected after a timer, the services return an Intent and leave the
// waiting to the adapter.
package services
