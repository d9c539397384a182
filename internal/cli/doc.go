// Package cli provides the interactive terminal front end for the login and
// registration forms.
//
// The App plays the role the browser page played: it collects raw field
// values, shows live password feedback, renders the message board and carries
// out the intents the form service returns (waiting the redirect delay, then
// switching views).
//
// Commands:
//   - register  create an account
//   - login     sign in and start a session
//   - whoami    show the current session marker
//   - users     list registered accounts (passwords hidden)
//   - help      show available commands
//   - exit      leave the program
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
