// summary.go implements the "interview summary" command showing the
// server-side progress of a session.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <session-id>",
	Short: "Show a session's progress",
	Long: `Fetch the server-side summary for a session: questions asked,
average score and the current topic.`,
	Args: cobra.ExactArgs(1),
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	client := serviceClient()

	s, err := client.SessionSummary(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("fetching summary: %w", err)
	}

	state := "in progress"
	if s.Finished {
		state = "finished"
	}

	fmt.Printf("Session:       %s (%s)\n", s.SessionID, state)
	fmt.Printf("Questions:     %d\n", s.NumQuestions)
	fmt.Printf("Average score: %.2f/10\n", s.AvgScore)
	fmt.Printf("Current topic: %s\n", s.CurrentTopic)

	return nil
}
