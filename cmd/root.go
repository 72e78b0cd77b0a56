package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/voicethroughimage/vti/internal/config"
	"github.com/voicethroughimage/vti/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "vti",
	Short: "Voice Through Image nonprofit website",
	Long: `vti serves the Voice Through Image website: documentary stories,
a verified directory of California support services, an AI resource
assistant and the staff dashboard. Every external service is optional;
without credentials the matching feature runs in demo mode.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "vti.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `vti init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the root logger. Logs always go to stderr so the mcp
// command can keep stdout for the protocol.
func newLogger(cfg *config.Config) zerolog.Logger {
	return logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Pretty, verbose)
}
