package domain

import "fmt"

// Settings holds user-tunable configuration for the search session.
type Settings struct {
	// PageSize is the number of hits per result page.
	PageSize int

	// CapLimit bounds the hit count exposed to pagination.
	CapLimit int

	// NeighbourCount is the k for vector-clause blending.
	NeighbourCount int

	// DataDir is where the local index lives. Empty means ~/.perch/data.
	DataDir string

	// Watch enables filesystem watching of indexed roots.
	Watch bool
}

// DefaultSettings returns settings with all defaults applied.
func DefaultSettings() Settings {
	return Settings{
		PageSize:       DefaultPageSize,
		CapLimit:       DefaultCapLimit,
		NeighbourCount: DefaultNeighbourCount,
		Watch:          true,
	}
}

// Validate checks the settings are usable.
func (s Settings) Validate() error {
	if s.PageSize <= 0 {
		return fmt.Errorf("%w: page size must be positive", ErrInvalidInput)
	}
	if s.CapLimit < s.PageSize {
		return fmt.Errorf("%w: cap limit smaller than page size", ErrInvalidInput)
	}
	if s.NeighbourCount <= 0 {
		return fmt.Errorf("%w: neighbour count must be positive", ErrInvalidInput)
	}
	return nil
}

// WithDefaults fills zero values from DefaultSettings.
func (s Settings) WithDefaults() Settings {
	def := DefaultSettings()
	if s.PageSize <= 0 {
		s.PageSize = def.PageSize
	}
	if s.CapLimit <= 0 {
		s.CapLimit = def.CapLimit
	}
	if s.NeighbourCount <= 0 {
		s.NeighbourCount = def.NeighbourCount
	}
	return s
}
