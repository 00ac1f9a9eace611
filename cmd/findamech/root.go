package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rgayashan/FindAMechanic/config"
	"github.com/rgayashan/FindAMechanic/internal/booking"
	"github.com/rgayashan/FindAMechanic/internal/directory"
	"github.com/rgayashan/FindAMechanic/internal/upstream"
)

var (
	cfgPath    string
	outputJSON bool

	cfg          *config.Config
	directorySvc *directory.Service
	submitter    *booking.Submitter
)

var rootCmd = &cobra.Command{
	Use:   "findamech",
	Short: "Browse the mechanic directory and submit service inquiries",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := cfgPath
		if path == "" {
			path = os.Getenv("CONFIG_PATH")
		}
		if path == "" {
			path = "./config/config.yaml"
		}

		loaded, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("load config %s: %w", path, err)
		}
		cfg = loaded

		client := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.AuthToken, cfg.Upstream.Timeout)
		directorySvc = directory.NewService(client)
		submitter = booking.NewSubmitter(client)
		return nil
	},
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() {
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(detailCmd())
	rootCmd.AddCommand(inquireCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output JSON")
}
