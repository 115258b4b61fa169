// Package users implements the users table repository on SQLite.
//
// Usernames are not unique at the schema level. Create never checks for an
// existing row, and UpdatePassword and DeleteByUsername act on every row that
// carries the given name. Callers that want one row per name must look the
// name up first (see services.UserService.Register).
package users
