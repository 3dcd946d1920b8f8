package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"

	"github.com/tessvane/patchboard/pkg/patch"
)

// Config holds the user preferences read from config.toml in the config
// directory (~/.config/patchboard/ by default). Every field is optional;
// the zero config behaves like a fresh install.
type Config struct {
	// DataDir overrides where patch documents are stored. Empty means the
	// default location under the user data dir.
	DataDir string `toml:"data_dir"`

	Editor EditorConfig `toml:"editor"`
	Theme  ThemeConfig  `toml:"theme"`
}

// EditorConfig tunes the interactive editor.
type EditorConfig struct {
	// Autosave writes the document back on quit without asking.
	Autosave bool `toml:"autosave"`

	// Confirmations gates node deletion behind a confirm prompt.
	Confirmations bool `toml:"confirmations"`

	// CursorStep is how many cells the cursor moves per key press.
	CursorStep int `toml:"cursor_step"`

	// FastStep is the cursor speed with shift held.
	FastStep int `toml:"fast_step"`

	// UndoDepth bounds the undo history. Zero means the library default.
	UndoDepth int `toml:"undo_depth"`
}

// ThemeConfig overrides individual colors of the default theme. Colors
// are hex strings ("#2f81f7"); empty fields keep the default.
type ThemeConfig struct {
	Background string `toml:"background"`
	Frame      string `toml:"frame"`
	Header     string `toml:"header"`
	Knob       string `toml:"knob"`
	KnobLive   string `toml:"knob_live"`
	Wire       string `toml:"wire"`
	Selection  string `toml:"selection"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Editor: EditorConfig{
			Confirmations: true,
			CursorStep:    1,
			FastStep:      4,
		},
	}
}

// LoadConfig reads a TOML config file. A missing file is not an error;
// the defaults come back, matching a fresh install.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// normalize clamps nonsensical values back to usable ones.
func (c *Config) normalize() {
	if c.Editor.CursorStep <= 0 {
		c.Editor.CursorStep = 1
	}
	if c.Editor.FastStep <= 0 {
		c.Editor.FastStep = 4
	}
	if c.Editor.UndoDepth < 0 {
		c.Editor.UndoDepth = 0
	}
}

// BuildTheme returns the patch theme with the config's color overrides
// applied on top of the defaults.
func (c *Config) BuildTheme() *patch.Theme {
	th := *patch.DefaultTheme()
	overrideColor(&th.Background, c.Theme.Background)
	overrideColor(&th.Frame.Border, c.Theme.Frame)
	overrideColor(&th.Header.Fill, c.Theme.Header)
	overrideColor(&th.Knob.Fill, c.Theme.Knob)
	overrideColor(&th.Knob.Border, c.Theme.Knob)
	overrideColor(&th.KnobConnected.Fill, c.Theme.KnobLive)
	overrideColor(&th.KnobConnected.Border, c.Theme.KnobLive)
	overrideColor(&th.Wire, c.Theme.Wire)
	overrideColor(&th.Selection, c.Theme.Selection)
	return &th
}

func overrideColor(dst *lipgloss.Color, v string) {
	if v != "" {
		*dst = lipgloss.Color(v)
	}
}
