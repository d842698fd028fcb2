// Package config loads and queries editor settings from a JSON file.
//
// Settings are kept as the raw JSON document and queried with gjson;
// accessors return snapshot structs, so mutating a returned struct does
// not modify the underlying configuration. Unknown or missing keys fall
// back to defaults.
package config

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/caretstorm/internal/engine/linestore"
)

// Defaults.
const (
	DefaultTabWidth      = 4
	DefaultLineEnding    = "lf"
	DefaultAdvisedLines  = 1000
	DefaultOverwriteMode = false
)

// Config holds a loaded settings document.
type Config struct {
	raw []byte
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{raw: defaultJSON()}
}

// Load reads a settings file. A missing file yields the defaults; a
// malformed one is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("config: %s is not valid JSON", path)
	}
	return &Config{raw: data}, nil
}

// WriteDefault writes the built-in configuration to path, for users to
// edit.
func WriteDefault(path string) error {
	if err := os.WriteFile(path, defaultJSON(), 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

func defaultJSON() []byte {
	raw := []byte("{}")
	raw, _ = sjson.SetBytes(raw, "editor.tabWidth", DefaultTabWidth)
	raw, _ = sjson.SetBytes(raw, "editor.lineEnding", DefaultLineEnding)
	raw, _ = sjson.SetBytes(raw, "editor.overwrite", DefaultOverwriteMode)
	raw, _ = sjson.SetBytes(raw, "storage.advisedBlockLines", DefaultAdvisedLines)
	return raw
}

// EditorConfig is a snapshot of the editor section.
type EditorConfig struct {
	// TabWidth is the tab stop interval in cells.
	TabWidth int

	// LineEnding is the terminator for newly inserted lines: "cr", "lf",
	// "crlf", or "auto" to detect from the loaded document.
	LineEnding string

	// Overwrite starts the editor in overwrite mode.
	Overwrite bool
}

// Ending maps the configured line ending name onto a terminator tag.
// "auto" and unknown names yield EndingNone, meaning "detect from the
// document".
func (e EditorConfig) Ending() linestore.Ending {
	switch e.LineEnding {
	case "cr":
		return linestore.EndingCR
	case "lf":
		return linestore.EndingLF
	case "crlf":
		return linestore.EndingCRLF
	default:
		return linestore.EndingNone
	}
}

// StorageConfig is a snapshot of the storage section.
type StorageConfig struct {
	// AdvisedBlockLines caps lines per block at load time.
	AdvisedBlockLines int
}

// Editor returns the editor section.
func (c *Config) Editor() EditorConfig {
	out := EditorConfig{
		TabWidth:   DefaultTabWidth,
		LineEnding: DefaultLineEnding,
		Overwrite:  DefaultOverwriteMode,
	}
	if v := gjson.GetBytes(c.raw, "editor.tabWidth"); v.Exists() && v.Int() > 0 {
		out.TabWidth = int(v.Int())
	}
	if v := gjson.GetBytes(c.raw, "editor.lineEnding"); v.Exists() {
		out.LineEnding = v.String()
	}
	if v := gjson.GetBytes(c.raw, "editor.overwrite"); v.Exists() {
		out.Overwrite = v.Bool()
	}
	return out
}

// Storage returns the storage section.
func (c *Config) Storage() StorageConfig {
	out := StorageConfig{AdvisedBlockLines: DefaultAdvisedLines}
	if v := gjson.GetBytes(c.raw, "storage.advisedBlockLines"); v.Exists() && v.Int() > 0 {
		out.AdvisedBlockLines = int(v.Int())
	}
	return out
}
