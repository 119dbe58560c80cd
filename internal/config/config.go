// Package config loads the editor's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type Editor struct {
	TabSize         int  `toml:"tab_size"`
	SoftTabs        bool `toml:"soft_tabs"`
	AutoIndent      bool `toml:"auto_indent"`
	ShowLineNumbers bool `toml:"show_line_numbers"`
	GutterWidth     int  `toml:"gutter_width"`
}

type Display struct {
	WelcomeMessage string `toml:"welcome_message"`
	ShowFileInfo   bool   `toml:"show_file_info"`
	ShowSyntaxInfo bool   `toml:"show_syntax_info"`
}

type Behavior struct {
	QuitTimes           int  `toml:"quit_times"`
	SearchCaseSensitive bool `toml:"search_case_sensitive"`
	SearchWrapAround    bool `toml:"search_wrap_around"`
}

type Syntax struct {
	EnableSyntaxHighlighting bool   `toml:"enable_syntax_highlighting"`
	DefaultFileType          string `toml:"default_file_type"`
	AutoDetectFileType       bool   `toml:"auto_detect_file_type"`
}

// Keybindings maps key specs ("ctrl+s") to command names per context.
type Keybindings struct {
	Global map[string]string `toml:"global,omitempty"`
	Editor map[string]string `toml:"editor,omitempty"`
}

type Config struct {
	Editor      Editor      `toml:"editor"`
	Display     Display     `toml:"display"`
	Behavior    Behavior    `toml:"behavior"`
	Syntax      Syntax      `toml:"syntax"`
	Keybindings Keybindings `toml:"keybindings"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Editor: Editor{
			TabSize:         4,
			SoftTabs:        true,
			AutoIndent:      true,
			ShowLineNumbers: true,
			GutterWidth:     6,
		},
		Display: Display{
			WelcomeMessage: "Ninja --- Version {}",
			ShowFileInfo:   true,
			ShowSyntaxInfo: true,
		},
		Behavior: Behavior{
			QuitTimes:           3,
			SearchCaseSensitive: false,
			SearchWrapAround:    true,
		},
		Syntax: Syntax{
			EnableSyntaxHighlighting: true,
			DefaultFileType:          "text",
			AutoDetectFileType:       true,
		},
	}
}

// Path returns the config file location: $NINJA_CONFIG, or
// ~/.config/ninja/config.toml.
func Path() (string, error) {
	if p := os.Getenv("NINJA_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ninja", "config.toml"), nil
}

// Load decodes path over the defaults. A missing file is not an error.
// Unknown keys and out-of-range values are reported in the returned error
// while the usable parts of the file still apply.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}

	var problems []error
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		problems = append(problems, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", ")))
	}
	if err := cfg.Validate(); err != nil {
		problems = append(problems, err)
	}
	if len(problems) > 0 {
		return cfg, fmt.Errorf("config %s: %w", path, errors.Join(problems...))
	}
	return cfg, nil
}

// Validate resets out-of-range values to their defaults and reports them.
func (c *Config) Validate() error {
	def := Default()
	var errs []error
	if c.Editor.TabSize < 1 {
		errs = append(errs, fmt.Errorf("editor.tab_size must be >= 1, got %d", c.Editor.TabSize))
		c.Editor.TabSize = def.Editor.TabSize
	}
	if c.Editor.GutterWidth < 1 {
		errs = append(errs, fmt.Errorf("editor.gutter_width must be >= 1, got %d", c.Editor.GutterWidth))
		c.Editor.GutterWidth = def.Editor.GutterWidth
	}
	if c.Behavior.QuitTimes < 1 {
		errs = append(errs, fmt.Errorf("behavior.quit_times must be >= 1, got %d", c.Behavior.QuitTimes))
		c.Behavior.QuitTimes = def.Behavior.QuitTimes
	}
	return errors.Join(errs...)
}

// WriteDefault creates path with the default configuration unless a file
// already exists there. It reports whether a file was written.
func WriteDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return false, err
	}
	if err := toml.NewEncoder(f).Encode(Default()); err != nil {
		f.Close()
		return false, err
	}
	return true, f.Close()
}

// Welcome returns the welcome message with version in place of "{}".
func (c *Config) Welcome(version string) string {
	return strings.ReplaceAll(c.Display.WelcomeMessage, "{}", version)
}
