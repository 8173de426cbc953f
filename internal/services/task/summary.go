package task

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thenoetrevino/worklog/internal/models"
)

// Summarize builds the dashboard for username as of the given day. Totals
// cover the whole history; RecentTasks holds tasks dated no earlier than
// windowDays before asOf, newest first. Tasks without a usable date count
// toward the totals but are never recent.
func (s *service) Summarize(ctx context.Context, username string, asOf time.Time) (*models.Dashboard, error) {
	tasks, err := s.LoadFor(ctx, username)
	if err != nil {
		return nil, err
	}

	asOfDay := models.Day(asOf)
	return summarize(username, asOfDay, s.windowDays, tasks), nil
}

func summarize(username string, asOf time.Time, windowDays int, tasks []*models.TaskRecord) *models.Dashboard {
	cutoff := asOf.AddDate(0, 0, -windowDays)

	dash := &models.Dashboard{
		Username:           username,
		AsOf:               asOf,
		WindowDays:         windowDays,
		TotalTaskCount:     len(tasks),
		TotalExpenseAmount: decimal.Zero,
		RecentTasks:        make([]*models.TaskRecord, 0),
	}

	for _, t := range tasks {
		dash.TotalExpenseAmount = dash.TotalExpenseAmount.Add(t.Amount)
		if t.HasDate() && !t.Date.Before(cutoff) {
			dash.RecentTasks = append(dash.RecentTasks, t)
		}
	}

	sort.SliceStable(dash.RecentTasks, func(i, j int) bool {
		a, b := dash.RecentTasks[i], dash.RecentTasks[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.ID > b.ID
	})

	return dash
}
