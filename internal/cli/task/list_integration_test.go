package task

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/worklog/internal/testutil"
	"github.com/thenoetrevino/worklog/internal/testutil/cli"
)

func TestListTasks(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	defer func() {
		_ = db.Close()
	}()
	cli.LoginTestUser(t, app, "alice")

	t.Run("Empty list", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{})
		require.NoError(t, err)
		assert.Contains(t, output, "No tasks found")

		output, err = cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
		require.NoError(t, err)
		tasks := testutil.ParseJSON(t, output)["tasks"].([]interface{})
		assert.Empty(t, tasks)
	})

	for _, date := range []string{"2024-01-10", "2024-01-12", "2024-01-11"} {
		_, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{"--date", date, "--description", "work " + date, "--quiet"})
		require.NoError(t, err)
	}

	t.Run("Newest first", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
		require.NoError(t, err)

		tasks := testutil.ParseJSON(t, output)["tasks"].([]interface{})
		require.Len(t, tasks, 3)
		var dates []string
		for _, raw := range tasks {
			dates = append(dates, raw.(map[string]interface{})["date"].(string))
		}
		assert.Equal(t, []string{"2024-01-12", "2024-01-11", "2024-01-10"}, dates)
	})

	t.Run("Quiet prints IDs", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
		require.NoError(t, err)
		assert.Len(t, strings.Fields(output), 3)
	})

	t.Run("Other users do not see the tasks", func(t *testing.T) {
		cli.LoginTestUser(t, app, "bob")

		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
		require.NoError(t, err)
		tasks := testutil.ParseJSON(t, output)["tasks"].([]interface{})
		assert.Empty(t, tasks)
	})
}
