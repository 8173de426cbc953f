package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dashboard is the per-user summary: totals over the whole history and the
// tasks dated inside the recent window, newest first.
type Dashboard struct {
	Username           string
	AsOf               time.Time
	WindowDays         int
	TotalTaskCount     int
	TotalExpenseAmount decimal.Decimal
	RecentTasks        []*TaskRecord
}
