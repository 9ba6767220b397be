package commands

import (
	"fmt"
	"math/rand"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/roasbeef/claudevoice/internal/compose"
	"github.com/roasbeef/claudevoice/internal/mcp"
	"github.com/roasbeef/claudevoice/internal/speech"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server on stdio",
	Long: `Run a Model Context Protocol server exposing the voice pipeline as
tools: speak, preview_message, and voice_status. Intended to be launched
by an MCP client over stdio.`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	loggers := newLoggers(cfg)
	defer loggers.Close()
	log := loggers.Slog("MCPS")

	composer := compose.New(compose.Config{
		Personas: loadPersonas(cfg),
		Messages: cfg.Messages,
		Rand:     rand.New(rand.NewSource(rand.Int63())),
		Logger:   loggers.Slog("CMPS"),
	})

	server := mcp.NewServer(mcp.Config{
		VoiceConfig: cfg,
		Composer:    composer,
		Speaker:     speech.NewEdgeSpeaker(loggers.Slog("SPCH")),
		Logger:      log,
	})

	log.Info("Starting MCP server on stdio")

	if err := server.Run(cmd.Context(), &sdkmcp.StdioTransport{}); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}

	return nil
}
