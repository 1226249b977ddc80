// Package cli defines Cobra command definitions for the interview CLI.
// This file contains the root command, which launches the chat TUI.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/srinikhil9/Mock-Interview-System/internal/api"
	"github.com/srinikhil9/Mock-Interview-System/internal/config"
	"github.com/srinikhil9/Mock-Interview-System/internal/interview"
	"github.com/srinikhil9/Mock-Interview-System/internal/log"
	"github.com/srinikhil9/Mock-Interview-System/internal/session"
	"github.com/srinikhil9/Mock-Interview-System/internal/tui"
	"github.com/srinikhil9/Mock-Interview-System/internal/tui/app"
)

var (
	serverFlag string
	resumeFlag string
	jdFlag     string
	version    = "dev" // set via ldflags at build time
)

var rootCmd = &cobra.Command{
	Use:   "interview",
	Short: "Terminal client for mock technical interviews",
	Long: `Interview runs a mock technical interview against the evaluation
service: it uploads your resume and the job description, relays the
interviewer's questions, and renders scored feedback for every answer.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The chat interface needs a terminal; show help otherwise.
		if !tui.IsTTY() {
			return cmd.Help()
		}

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		cfg := loadConfig(cwd)

		logger, err := log.NewLogger(cwd)
		if err != nil {
			return fmt.Errorf("creating event log: %w", err)
		}

		client := api.NewClient(cfg.Server.URL, time.Duration(cfg.Server.TimeoutSeconds)*time.Second)
		registry := session.NewRegistry()
		transcript := tui.NewTranscript()

		ctrl := interview.NewController(client, registry, transcript, logger)
		ctrl.SetFiles(cfg.Files.Resume, cfg.Files.JD)

		return tui.Run(app.New(ctrl, registry, transcript))
	},
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads .interview/config.yaml (defaults when absent) and folds
// the command-line flags over it.
func loadConfig(dir string) *config.Config {
	cfg, err := config.ReadConfig(dir)
	if err != nil {
		cfg = config.DefaultConfig()
	}
	if serverFlag != "" {
		cfg.Server.URL = serverFlag
	}
	if resumeFlag != "" {
		cfg.Files.Resume = resumeFlag
	}
	if jdFlag != "" {
		cfg.Files.JD = jdFlag
	}
	return cfg
}

// serviceClient builds an api.Client for subcommands that talk to the
// service outside the TUI.
func serviceClient() *api.Client {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	cfg := loadConfig(cwd)
	return api.NewClient(cfg.Server.URL, time.Duration(cfg.Server.TimeoutSeconds)*time.Second)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "", "Interview service base URL (overrides config)")
	rootCmd.Flags().StringVar(&resumeFlag, "resume", "", "Path to the resume file")
	rootCmd.Flags().StringVar(&jdFlag, "jd", "", "Path to the job description file")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(exportCmd)
}
