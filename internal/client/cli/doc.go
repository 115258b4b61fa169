// Package cli provides the interactive userkeeper command-line client.
//
// It wires configuration, the local store and the user service into a REPL
// with two views: a credentials prompt and, once logged in, the user list.
//
// Commands:
//   - login / logout
//   - list (l), shows every stored user without passwords
//   - register, passwd, delete, seed [n]
//
// Passwords are stored in plain text. The client is a demonstration of the
// flow and is not meant to guard real credentials.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
