package tabular

import (
	"fmt"

	"github.com/thenoetrevino/worklog/internal/models"
)

// UserColumns is the header of the users table
var UserColumns = []string{"username", "email", "contact_no", "password"}

// ReadUsers loads the users table. The password column is returned untrimmed
// in PasswordHash; it may hold a bcrypt hash or a legacy plaintext password.
func ReadUsers(path string) ([]*models.User, error) {
	records, err := readTable(path, UserColumns)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, len(records))
	for _, rec := range records {
		username := rec.get("username")
		if username == "" {
			return nil, fmt.Errorf("%w: %s line %d: empty username", ErrTableCorrupt, path, rec.line)
		}
		users = append(users, &models.User{
			Username:     username,
			Email:        rec.get("email"),
			ContactNo:    rec.get("contact_no"),
			PasswordHash: rec.raw("password"),
		})
	}
	return users, nil
}

// WriteUsers writes users with their password hashes
func WriteUsers(path string, users []*models.User) error {
	t := table{sheet: "users", header: UserColumns, rows: make([][]string, 0, len(users))}
	for _, u := range users {
		t.rows = append(t.rows, []string{u.Username, u.Email, u.ContactNo, u.PasswordHash})
	}
	return writeTable(path, t)
}
