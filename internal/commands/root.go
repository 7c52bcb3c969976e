package commands

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "comboselect [options-file]",
	Short: "Pick one or more options in the terminal",
	Long: `comboselect shows a filterable select box over a list of options and
prints the picked options on stdout.

Options are read from a TOML, YAML, JSON or plain text file, or from stdin
when no file is given.`,
	Version:           Version,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: closeLogging,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSelect(cmd, args)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command; cancelling ctx stops the UI.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// Persistent flag values
var (
	configFlag  string
	logFileFlag string
)

var logFile *os.File

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default $XDG_CONFIG_HOME/comboselect/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "comboselect.log", "log file; empty disables logging")

	registerSelectFlags(rootCmd)

	rootCmd.AddCommand(configCmd)
}

// setupLogging sends the standard logger to the log file so the TUI is
// not corrupted
func setupLogging(cmd *cobra.Command, args []string) error {
	if logFileFlag == "" {
		log.SetOutput(io.Discard)
		return nil
	}

	f, err := os.OpenFile(logFileFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		// Keep running without a log
		log.SetOutput(io.Discard)
		return nil
	}
	logFile = f
	log.SetOutput(f)
	return nil
}

func closeLogging(cmd *cobra.Command, args []string) {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
