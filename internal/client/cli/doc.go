// Package cli provides the interactive sampleapp command-line client.
//
// Commands:
//   - signup / login / logout
//   - whoami, show <id>
//   - passwd (change password)
//   - ping
//
// Passwords are read from the terminal without echo and wiped after use.
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
