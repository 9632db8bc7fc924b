package cmd

import (
	"fmt"
	"os"

	"github.com/netra/gallery/internal/config"
	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand
type globalFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

// NewRootCommand builds the command tree. Without a subcommand it serves.
func NewRootCommand() *cobra.Command {
	flags := &globalFlags{}

	serve := newServeCommand(flags)

	root := &cobra.Command{
		Use:   "server",
		Short: "NETRA gallery API server",
		Long: `NETRA gallery API server serves the photography club's photographers,
categories, photos, exhibitions and events over a JSON REST API, with a
contact form and live updates over WebSocket.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve.RunE(cmd, args)
		},
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file path (optional, uses config.yaml and env vars by default)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error) (default: info)")
	root.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "log format (json, console) (default: json)")

	// The root command runs serve directly, so it accepts serve's flags too
	root.Flags().AddFlagSet(serve.Flags())

	root.AddCommand(serve)
	root.AddCommand(newVersionCommand())
	root.AddCommand(newRoutesCommand())
	root.AddCommand(newSeedCommand())

	return root
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads configuration and applies the global flag overrides
func loadConfig(flags *globalFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	if flags.logFormat != "" {
		cfg.LogFormat = flags.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
