package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/ldi/todo/internal/config"
	"github.com/ldi/todo/internal/logging"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"mcp", "version"} {
		if !names[want] {
			t.Errorf("expected subcommand %q", want)
		}
	}

	for _, flag := range []string{
		config.FlagConfig, config.FlagTheme, config.FlagSamples, config.FlagLogFile, config.FlagLogLevel,
	} {
		if rootCmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("expected persistent flag --%s", flag)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if out != "todo version "+version+"\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestMCPRejectsArguments(t *testing.T) {
	if _, err := execute(t, "mcp", "extra"); err == nil {
		t.Fatal("expected error for unexpected argument")
	}
}

func TestInitialState(t *testing.T) {
	withSamples := initialState(&config.Config{Samples: true})
	if len(withSamples.Tasks) != 2 {
		t.Fatalf("expected 2 sample tasks, got %d", len(withSamples.Tasks))
	}
	if withSamples.Tasks[0].Title != "Linkedin" || withSamples.Tasks[1].Title != "Finding a job" {
		t.Errorf("unexpected sample order: %+v", withSamples.Tasks)
	}
	if withSamples.Mode.IsEditing() {
		t.Errorf("expected idle mode")
	}

	empty := initialState(&config.Config{Samples: false})
	if len(empty.Tasks) != 0 {
		t.Errorf("expected no tasks, got %d", len(empty.Tasks))
	}
}

func TestNewSession(t *testing.T) {
	tests := []struct {
		theme string
		dark  bool
	}{
		{config.ThemeDark, true},
		{config.ThemeLight, false},
		{config.ThemeAuto, false},
	}

	for _, tt := range tests {
		t.Run(tt.theme, func(t *testing.T) {
			session := newSession(&config.Config{Theme: tt.theme, Samples: true}, logging.NewNop())
			if got := session.Snapshot().DarkMode; got != tt.dark {
				t.Errorf("expected dark mode %v, got %v", tt.dark, got)
			}
		})
	}
}

func TestNewSessionLogsChanges(t *testing.T) {
	buf := &bytes.Buffer{}
	session := newSession(&config.Config{Theme: config.ThemeLight}, logging.New(buf, log.DebugLevel))

	session.CycleStatus("missing")
	if strings.Contains(buf.String(), "state changed") {
		t.Fatalf("expected no log for a no-op, got %q", buf.String())
	}

	session.ToggleTheme()
	if !strings.Contains(buf.String(), "state changed") {
		t.Errorf("expected change to be logged, got %q", buf.String())
	}
}
