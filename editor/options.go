package editor

import "github.com/rs/zerolog"

// Option configures a State at construction time.
type Option func(*State)

// WithLogger sets the logger the State emits structured events on. The
// default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *State) {
		s.logger = logger
	}
}

// WithSettings sets the settings new sessions start from.
func WithSettings(settings Settings) Option {
	return func(s *State) {
		s.settings = settings
	}
}
