package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ldi/todo/internal/config"
	"github.com/ldi/todo/internal/logging"
	"github.com/ldi/todo/internal/mcp"
	"github.com/ldi/todo/internal/store"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the task list over the Model Context Protocol (stdio)",
	Long: `Starts an MCP server on standard input/output. Every action of the
interactive list is exposed as a tool and every tool returns the resulting
state as JSON. The list lives in memory for the lifetime of the process.

Logs go to stderr, or to --log-file when set, so they never corrupt the
JSON-RPC stream on stdout.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	logger := logging.New(os.Stderr, cfg.Level())
	if cfg.LogFile != "" {
		fileLogger, closer, err := logging.OpenFile(cfg.LogFile, cfg.Level())
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer closer.Close()
		logger = fileLogger
	}

	session := newSession(cfg, logger)
	logger.Info("Starting Todo MCP server (stdio)", "version", version)
	if err := mcp.Serve(mcp.NewServer(session, version)); err != nil {
		return fmt.Errorf("mcp server failed: %w", err)
	}
	return nil
}

// newSession builds the shared session. There is no terminal to probe, so
// the auto theme starts light.
func newSession(cfg *config.Config, logger *log.Logger) *store.Session {
	st := store.New(store.WithLogger(logger))
	state := st.SetDarkMode(initialState(cfg), cfg.DarkMode(nil))

	session := store.NewSession(st, state)
	session.SetOnChange(func(s store.State) {
		logger.Debug("state changed", "tasks", len(s.Tasks), "mode", s.Mode, "dark", s.DarkMode)
	})
	return session
}
