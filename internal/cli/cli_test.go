package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/tessvane/patchboard/pkg/observability"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	if c == nil {
		t.Fatal("New() returned nil")
	}
	if c.Logger == nil {
		t.Fatal("New() should initialize a logger")
	}

	c.Logger.Info("hello")
	if buf.Len() == 0 {
		t.Error("logger should write to the given writer")
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Error("debug output should be suppressed at info level")
	}

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("visible")
	if buf.Len() == 0 {
		t.Error("debug output should appear after SetLogLevel(LogDebug)")
	}
}

func TestRootCommand(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()

	if root.Use != "patchboard" {
		t.Errorf("root.Use = %q, want %q", root.Use, "patchboard")
	}

	want := map[string]bool{
		"edit":       false,
		"render":     false,
		"docs":       false,
		"completion": false,
	}
	for _, sub := range root.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}

func TestRootCommandVerboseFlag(t *testing.T) {
	defer observability.Reset()

	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()

	flag := root.PersistentFlags().Lookup("verbose")
	if flag == nil {
		t.Fatal("root command should register a --verbose flag")
	}
	if flag.Shorthand != "v" {
		t.Errorf("verbose shorthand = %q, want %q", flag.Shorthand, "v")
	}

	if err := root.PersistentFlags().Set("verbose", "true"); err != nil {
		t.Fatalf("setting --verbose: %v", err)
	}
	root.SetContext(context.Background())
	root.PersistentPreRun(root, nil)
	if c.Logger.GetLevel() != log.DebugLevel {
		t.Errorf("logger level = %v, want %v after --verbose", c.Logger.GetLevel(), log.DebugLevel)
	}
}
