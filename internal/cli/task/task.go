// Package task holds the cli commands for submitting and listing tasks
//
// e.g., worklog task add ..., worklog task list
package task

import (
	"github.com/spf13/cobra"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Submit and list daily tasks",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}
