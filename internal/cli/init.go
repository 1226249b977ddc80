// init.go implements the "interview init" command which writes a default
// config file for the current directory.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/srinikhil9/Mock-Interview-System/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default .interview/config.yaml",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	if _, err := config.ReadConfig(cwd); err == nil {
		return fmt.Errorf(".interview/config.yaml already exists")
	}

	if err := config.WriteConfig(cwd, config.DefaultConfig()); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", filepath.Join(cwd, ".interview", "config.yaml"))
	fmt.Println("Set files.resume and files.jd, then run 'interview' to start.")
	return nil
}
