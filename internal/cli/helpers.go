package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thenoetrevino/worklog/internal/models"
	"github.com/thenoetrevino/worklog/internal/session"
)

// ParseExpenseFlag parses "travelling=50,food=20" into an expense form.
// A bare category name selects it with a zero amount.
func ParseExpenseFlag(value string) (models.ExpenseForm, error) {
	var form models.ExpenseForm
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		name, amountStr, hasAmount := strings.Cut(part, "=")
		category, err := models.ParseExpenseCategory(strings.ToLower(strings.TrimSpace(name)))
		if err != nil {
			return form, err
		}

		amount := decimal.Zero
		if hasAmount {
			amount, err = decimal.NewFromString(strings.TrimSpace(amountStr))
			if err != nil {
				return form, fmt.Errorf("invalid amount for %s: %q", category, amountStr)
			}
		}
		form.Select(category, amount)
	}
	return form, nil
}

// ParseDateFlag parses a YYYY-MM-DD flag value, defaulting to today
func ParseDateFlag(value string, now time.Time) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return models.Day(now), nil
	}
	d, err := models.ParseDate(strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", value)
	}
	return d, nil
}

// RequireSession resolves the session stored in the session file. Both a
// missing file and a token the store no longer knows count as logged out.
func (c *CLI) RequireSession(ctx context.Context) (*models.Session, error) {
	file, err := session.Load(c.Config().SessionPath())
	if err != nil {
		return nil, err
	}
	return c.App.AuthService.CurrentSession(ctx, file.Token)
}

// StdinValue returns value, or the first line of stdin when value is "-"
func StdinValue(value string) (string, error) {
	if value != "-" {
		return value, nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
