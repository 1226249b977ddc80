// export.go implements the "interview export" command which saves a
// session's full transcript as JSON.
package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <session-id>",
	Short: "Export a session transcript",
	Long: `Fetch the full server-side record of a session and write it as
indented JSON to stdout or, with --out, to a file.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var exportOutFlag string

func init() {
	exportCmd.Flags().StringVar(&exportOutFlag, "out", "", "Write the export to this file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	client := serviceClient()

	raw, err := client.ExportSession(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("fetching export: %w", err)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		return fmt.Errorf("formatting export: %w", err)
	}
	pretty.WriteByte('\n')

	if exportOutFlag == "" {
		_, err := os.Stdout.Write(pretty.Bytes())
		return err
	}

	if err := os.WriteFile(exportOutFlag, pretty.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	fmt.Printf("Exported session %s to %s\n", args[0], exportOutFlag)
	return nil
}
