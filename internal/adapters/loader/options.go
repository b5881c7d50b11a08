package loader

import (
	"github.com/okian/ipldash/internal/domain/model"
	"github.com/okian/ipldash/pkg/logger"
)

// Option applies a configuration option to a load.
type Option func(*loader)

// WithSeasonSource selects how match seasons are derived.
func WithSeasonSource(src model.SeasonSource) Option {
	return func(l *loader) {
		if src == model.SeasonFromField || src == model.SeasonFromDate {
			l.seasons = src
		}
	}
}

// WithLogger sets the logger used to report the load.
func WithLogger(log logger.Logger) Option {
	return func(l *loader) {
		if log != nil {
			l.logger = log
		}
	}
}
