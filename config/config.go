// Package config loads the gonotes YAML configuration.
package config

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ionut-t/gonotes/core"
)

var extensionPattern = regexp.MustCompile(`^\.[A-Za-z0-9]+$`)

func init() {
	// Report validation errors with the names used in the YAML file.
	validation.ErrorTag = "yaml"
}

// Config represents the application configuration.
type Config struct {
	Notes  NotesConfig  `yaml:"notes"`
	UI     UIConfig     `yaml:"ui"`
	Log    LogConfig    `yaml:"log"`
	Keymap KeymapConfig `yaml:"keymap"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Notes.Validate(); err != nil {
		return fmt.Errorf("notes: %w", err)
	}
	if err := c.UI.Validate(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return c.Keymap.Validate()
}

// NotesConfig locates the notes directory.
type NotesConfig struct {
	Dir       string `yaml:"dir"`
	Extension string `yaml:"extension"`
	Watch     bool   `yaml:"watch"`
}

// Validate validates the notes configuration.
func (c *NotesConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Dir, validation.Required),
		validation.Field(&c.Extension, validation.Required, validation.Match(extensionPattern)),
	)
}

// UIConfig holds presentation settings.
type UIConfig struct {
	FilesWidth     int           `yaml:"files_width"` // percent of the terminal width
	MessageTimeout time.Duration `yaml:"message_timeout"`
}

// Validate validates the UI configuration.
func (c *UIConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.FilesWidth, validation.Min(10), validation.Max(80)),
		validation.Field(&c.MessageTimeout, validation.Min(time.Duration(0))),
	)
}

// LogConfig controls the diagnostic log. An empty File discards it.
type LogConfig struct {
	Level slog.Level `yaml:"level"`
	File  string     `yaml:"file"`
}

// KeymapConfig rebinds commands to key chords, e.g. save: ["ctrl+s", "ctrl+w"].
type KeymapConfig struct {
	Overrides map[string][]string `yaml:"overrides"`
}

// Validate rejects unknown command names and empty chords.
func (c *KeymapConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Overrides,
			validation.By(knownCommands),
			validation.Each(validation.Required, validation.Each(validation.Required)),
		),
	)
}

func knownCommands(value any) error {
	overrides, _ := value.(map[string][]string)
	var unknown []string
	for name := range overrides {
		if _, ok := core.ParseCommand(name); !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	slices.Sort(unknown)
	return fmt.Errorf("unknown command(s) %s, valid: %s",
		strings.Join(unknown, ", "), strings.Join(core.CommandNames(), ", "))
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Notes: NotesConfig{
			Dir:       "./notes",
			Extension: core.DefaultExtension,
			Watch:     true,
		},
		UI: UIConfig{
			FilesWidth:     30,
			MessageTimeout: 3 * time.Second,
		},
		Log: LogConfig{
			Level: slog.LevelInfo,
		},
	}
}
