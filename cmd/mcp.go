package cmd

import (
	"context"

	"github.com/spf13/cobra"

	mcpserver "github.com/voicethroughimage/vti/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the resource directory and the resource assistant to AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := newLogger(cfg)

		svc, err := openServices(context.Background(), cfg, log)
		if err != nil {
			return err
		}
		defer svc.Close()

		mcpserver.Version = Version
		log.Info().Str("version", Version).Msg("MCP server started on stdio")

		return mcpserver.NewServer(svc.library, svc.assistant).Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
