package models

import "time"

// Session is the context of one logged-in client: who is logged in and the
// expense form they are part-way through.
type Session struct {
	Token        string
	Username     string
	ExpenseDraft ExpenseForm
	CreatedAt    time.Time
}
