// Package mcp exposes the voice pipeline over the Model Context
// Protocol, so agents can speak, preview resolutions, and inspect the
// voice configuration through tool calls.
package mcp

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/roasbeef/claudevoice/internal/build"
	"github.com/roasbeef/claudevoice/internal/compose"
	"github.com/roasbeef/claudevoice/internal/speech"
	"github.com/roasbeef/claudevoice/internal/voicecfg"
)

// Server wraps the MCP server with the voice pipeline dependencies.
type Server struct {
	server   *mcp.Server
	cfg      voicecfg.Config
	composer *compose.Composer
	speaker  speech.Speaker
	log      *slog.Logger
}

// Config holds configuration for the MCP server.
type Config struct {
	// VoiceConfig is the effective voice configuration.
	VoiceConfig voicecfg.Config

	// Composer resolves events to speakable messages.
	Composer *compose.Composer

	// Speaker is the TTS backend used by the speak tool.
	Speaker speech.Speaker

	// Logger receives tool call traces.
	Logger *slog.Logger
}

// NewServer creates a new MCP server with all voice tools registered.
func NewServer(cfg Config) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "claudevoice",
		Version: build.Version(),
	}, nil)

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	s := &Server{
		server:   mcpServer,
		cfg:      cfg.VoiceConfig,
		composer: cfg.Composer,
		speaker:  cfg.Speaker,
		log:      log.With("component", "mcp"),
	}

	s.registerTools()

	return s
}

// Run starts the MCP server on the given transport.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	return s.server.Run(ctx, transport)
}

// registerTools registers all voice tools.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "speak",
		Description: "Speak a short message out loud through the configured voice",
	}, s.handleSpeak)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "preview_message",
		Description: "Resolve a hook event to its spoken message without speaking it",
	}, s.handlePreview)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "voice_status",
		Description: "Report the effective voice configuration",
	}, s.handleStatus)
}
