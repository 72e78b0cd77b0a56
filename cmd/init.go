package cmd

import (
	"github.com/spf13/cobra"

	"github.com/voicethroughimage/vti/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a vti configuration with an interactive wizard",
	Long:  `Runs an interactive wizard that asks for the optional service credentials and writes the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
