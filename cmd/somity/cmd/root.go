// Package cmd provides CLI commands for somity.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "somity",
	Short: "Record keeping for a cooperative savings society",
	Long: `somity tracks the members, savings/loan balances and cash
transactions of a cooperative savings society, and renders ledgers
and summary reports.

It supports:
- Serving the ledger as a JSON HTTP API
- Seeding a fresh ledger database
- Printing summary statistics
- Exporting ledger and monthly report sheets to xlsx

Example:
  somity serve
  somity export ledger --member 101 --year 2025 --out ledger.xlsx`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
}

// getConfigFile returns the config file path from flag.
func getConfigFile() string {
	return cfgFile
}

// exitOnError logs the error with a message and exits if err is not nil.
func exitOnError(err error, msg string) {
	if err != nil {
		slog.Error(msg, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(1)
	}
}
