// health.go implements the "interview health" command which pings the
// service's health and version endpoints.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the interview service",
	Long:  `Ping the interview service and report its status, uptime and active session count.`,
	Args:  cobra.NoArgs,
	RunE:  runHealth,
}

func runHealth(cmd *cobra.Command, args []string) error {
	client := serviceClient()

	h, err := client.Health(cmd.Context())
	if err != nil {
		return fmt.Errorf("service unreachable: %w", err)
	}

	fmt.Printf("Status:   %s\n", h.Status)
	fmt.Printf("Uptime:   %.1fs\n", h.UptimeSeconds)
	fmt.Printf("Sessions: %d\n", h.Sessions)

	// Version is informational; don't fail the health check over it.
	if v, err := client.ServerVersion(cmd.Context()); err == nil {
		fmt.Printf("Server:   %s (API %s)\n", v.Version, v.API)
	}

	return nil
}
