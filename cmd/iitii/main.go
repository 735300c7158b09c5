// Package main provides the iitii command-line tool.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// logger is configured by the root command before any subcommand runs.
var logger = zap.NewNop()

func main() {
	// Flag defaults are read from viper while the commands are built, so
	// the config file and defaults must be in place first.
	if err := initConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "iitii",
		Short: "Implicit interval tree with interpolation index",
		Long: `iitii builds an in-memory interval index over half-open intervals and
answers overlap queries, optionally starting each query at a node
predicted by a learned interpolation model instead of the root.`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if verbose {
				logger, err = zap.NewDevelopment()
			} else {
				logger, err = zap.NewProduction()
			}
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newBenchCmd())
	cmd.AddCommand(newQueryCmd())
	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// initConfig loads ~/.iitii.yaml if present and installs defaults.
func initConfig() error {
	viper.SetDefault("bench.domains", 8)
	viper.SetDefault("bench.workers", 0)
	viper.SetDefault("query.domains", 8)

	home, err := os.UserHomeDir()
	if err != nil {
		return nil // no home directory, defaults only
	}
	viper.SetConfigName(".iitii")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(home)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}
