// Package adapter turns a snapshot of users into display rows.
//
// A UsersAdapter never touches the store: it holds the slice it was built
// with, in the order it was given, for the lifetime of one listing.
package adapter

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/userkeeper/internal/client/models"
)

// Placeholder is shown in place of a missing username.
const Placeholder = "—"

// RowView is the rendered form of one user.
type RowView struct {
	Name  string
	ID    string
	Extra string
}

type UsersAdapter struct {
	users []models.User
}

func NewUsersAdapter(users []models.User) *UsersAdapter {
	return &UsersAdapter{users: users}
}

func (a *UsersAdapter) Count() int {
	return len(a.users)
}

func (a *UsersAdapter) Item(position int) models.User {
	return a.users[position]
}

// View binds the user at position to a row. When convert is not nil it is
// rebound and returned instead of allocating a new row.
func (a *UsersAdapter) View(position int, convert *RowView) *RowView {
	row := convert
	if row == nil {
		row = &RowView{}
	}

	u := a.Item(position)

	row.Name = u.Username
	if row.Name == "" {
		row.Name = Placeholder
	}
	row.ID = strconv.FormatInt(u.ID, 10)
	row.Extra = ""

	return row
}

// Render writes one aligned line per user, in snapshot order.
func (a *UsersAdapter) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "ID\tUSERNAME\t"); err != nil {
		return err
	}

	var row *RowView
	for i := 0; i < a.Count(); i++ {
		row = a.View(i, row)
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", row.ID, row.Name, row.Extra); err != nil {
			return err
		}
	}

	return tw.Flush()
}
