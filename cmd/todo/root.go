package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ldi/todo/internal/config"
	"github.com/ldi/todo/internal/logging"
	"github.com/ldi/todo/internal/store"
	"github.com/ldi/todo/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "A single-screen to-do list for the terminal",
	Long: `todo keeps a list of tasks, newest first, each with a title, an optional
description, a due date and a status that cycles In Progress, Past Due,
Completed.

Run without arguments for the interactive list, or use 'todo mcp' to let an
agent drive the same list over the Model Context Protocol.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SilenceErrors = true
	config.RegisterFlags(rootCmd.PersistentFlags())
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("todo needs an interactive terminal (use 'todo mcp' for agents)")
	}

	logger, closer, err := logging.OpenFile(cfg.LogFile, cfg.Level())
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer closer.Close()

	st := store.New(store.WithLogger(logger))
	state := st.SetDarkMode(initialState(cfg), cfg.DarkMode(termenv.HasDarkBackground))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "version", version, "tasks", len(state.Tasks), "dark", state.DarkMode)
	final, err := ui.Run(ctx, ui.NewModel(st, state, logger))
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to run tui: %w", err)
	}
	logger.Info("stopped", "tasks", len(final.State().Tasks))
	return nil
}

// initialState seeds the list with the sample tasks when enabled.
func initialState(cfg *config.Config) store.State {
	if cfg.Samples {
		return store.NewState(store.SampleTasks()...)
	}
	return store.NewState()
}
