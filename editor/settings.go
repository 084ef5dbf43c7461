package editor

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// Settings carries the per-session display parameters. New sessions start
// from the State's settings; the wrap width can be changed per session
// afterwards with SetMaxColumnCount.
type Settings struct {
	// TabColumnCount is the display width of a tab character.
	TabColumnCount int `toml:"tab_column_count"`
	// MaxColumnCount is the soft wrap width, in display columns.
	MaxColumnCount int `toml:"max_column_count"`
	// FoldedScale is the height factor applied to folded lines.
	FoldedScale float64 `toml:"folded_scale"`
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		TabColumnCount: 4,
		MaxColumnCount: 80,
		FoldedScale:    0.5,
	}
}

// LoadSettings reads TOML settings from r. Keys not present keep their
// default values.
func LoadSettings(r io.Reader) (Settings, error) {
	settings := DefaultSettings()
	if err := toml.NewDecoder(r).Decode(&settings); err != nil {
		return Settings{}, fmt.Errorf("decoding settings: %w", err)
	}
	if err := settings.validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func (s Settings) validate() error {
	if s.TabColumnCount < 1 {
		return fmt.Errorf("tab_column_count must be at least 1, got %d", s.TabColumnCount)
	}
	if s.MaxColumnCount < 1 {
		return fmt.Errorf("max_column_count must be at least 1, got %d", s.MaxColumnCount)
	}
	if s.FoldedScale <= 0 || s.FoldedScale > 1 {
		return fmt.Errorf("folded_scale must be in (0, 1], got %g", s.FoldedScale)
	}
	return nil
}
