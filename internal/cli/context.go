package cli

import (
	"context"

	"github.com/thenoetrevino/worklog/internal/app"
	"github.com/thenoetrevino/worklog/internal/cli/styles"
	"github.com/thenoetrevino/worklog/internal/testutil"
)

// GetCLIFromContext returns the CLI for a command. Tests inject an app via
// testutil.TestAppKey; otherwise the real config and database are opened.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if testApp, ok := ctx.Value(testutil.TestAppKey).(*app.App); ok && testApp != nil {
		styles.Init(testApp.Config().ColorScheme)
		return &CLI{App: testApp}, nil
	}
	return NewCLI(ctx)
}
