package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for settings files that are neither TOML
// nor YAML.
var ErrUnknownFormat = errors.New("config: unknown settings format")

// Format is a settings file syntax.
type Format string

// Supported settings formats.
const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// FormatOf returns the format implied by a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Settings is the content of a poster settings file.
type Settings struct {
	Canvas      Canvas        `toml:"canvas" yaml:"canvas"`
	Arrangement string        `toml:"arrangement" yaml:"arrangement"`
	Radius      float64       `toml:"radius" yaml:"radius"`
	Overlap     float64       `toml:"overlap" yaml:"overlap"`
	Background  string        `toml:"background" yaml:"background"`
	Border      *BorderConfig `toml:"border" yaml:"border"`
	Panes       []PaneConfig  `toml:"panes" yaml:"panes"`
	Fonts       []FontConfig  `toml:"fonts" yaml:"fonts"`
	Text        []TextConfig  `toml:"text" yaml:"text"`

	// path of the file the settings were loaded from, if any.
	path string
}

// Canvas is the output size in pixels.
type Canvas struct {
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`

	// AutoOrient swaps width and height when they disagree with the
	// arrangement, so side-by-side is landscape and stacked is portrait.
	AutoOrient bool `toml:"auto_orient" yaml:"auto_orient"`
}

// BorderConfig is the ring drawn around every pane.
type BorderConfig struct {
	Width float64 `toml:"width" yaml:"width"`
	Color string  `toml:"color" yaml:"color"`
}

// PaneConfig names a pane and its image.
type PaneConfig struct {
	ID     string `toml:"id" yaml:"id"`
	Image  string `toml:"image" yaml:"image"`
	Effect string `toml:"effect" yaml:"effect"`
}

// FontConfig registers a font file under a family name.
type FontConfig struct {
	Family string `toml:"family" yaml:"family"`
	Style  string `toml:"style" yaml:"style"`
	Path   string `toml:"path" yaml:"path"`

	// Fallback makes this family the one used for unknown family names.
	Fallback bool `toml:"fallback" yaml:"fallback"`
}

// TextConfig is one caption line.
type TextConfig struct {
	Text     string  `toml:"text" yaml:"text"`
	Font     string  `toml:"font" yaml:"font"`
	Size     float64 `toml:"size" yaml:"size"`
	Color    string  `toml:"color" yaml:"color"`
	Bold     bool    `toml:"bold" yaml:"bold"`
	Italic   bool    `toml:"italic" yaml:"italic"`
	Order    int     `toml:"order" yaml:"order"`
	Anchor   string  `toml:"anchor" yaml:"anchor"`
	Position string  `toml:"position" yaml:"position"`
}

// Load reads the settings file at path. The format follows the extension.
func Load(path string) (*Settings, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("config: expand %s: %w", path, err)
	}
	data, err := os.ReadFile(filepath.Clean(expanded))
	if err != nil {
		return nil, fmt.Errorf("config: read settings: %w", err)
	}
	s, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	if abs, err := filepath.Abs(expanded); err == nil {
		expanded = abs
	}
	s.path = expanded
	return s, nil
}

// Parse decodes settings from data. Unknown keys are rejected. Relative
// paths in the result are resolved against the working directory.
func Parse(data []byte, format Format) (*Settings, error) {
	var s Settings
	switch format {
	case TOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("config: parse toml: %w", err)
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to EOF; treat it as empty settings.
		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &s, nil
}

// Path returns the absolute path the settings were loaded from, or "" for
// parsed settings.
func (s *Settings) Path() string { return s.path }

// Dir returns the directory relative paths are resolved against.
func (s *Settings) Dir() string {
	if s.path == "" {
		return "."
	}
	return filepath.Dir(s.path)
}

// ResolvePath expands a leading ~ and makes p relative to Dir. Empty
// paths stay empty.
func (s *Settings) ResolvePath(p string) (string, error) {
	if p == "" {
		return "", nil
	}
	expanded, err := homedir.Expand(p)
	if err != nil {
		return "", fmt.Errorf("config: expand %s: %w", p, err)
	}
	if filepath.IsAbs(expanded) {
		return filepath.Clean(expanded), nil
	}
	return filepath.Join(s.Dir(), expanded), nil
}
