// Package models defines client-side data models used by userkeeper.
package models

// NotFoundID is the ID carried by a User that does not correspond to a
// stored row: either nothing matched a lookup or the user was never saved.
const NotFoundID int64 = -1

// User is a row of the users table.
//
// Password is kept in plain text. This mirrors the data the application was
// built around and is NOT safe for real credentials.
type User struct {
	ID       int64
	Username string
	Password string
}

// NotFound returns the sentinel user handed back by lookups with no match.
func NotFound() User {
	return User{ID: NotFoundID}
}

// Exists reports whether u refers to a stored row.
func (u User) Exists() bool {
	return u.ID != NotFoundID
}

// Safe returns a copy of u without the password, for display contexts.
func (u User) Safe() User {
	return User{ID: u.ID, Username: u.Username}
}
