package file

import (
	"github.com/perch-labs/perch-cli/internal/core/domain"
	"github.com/perch-labs/perch-cli/internal/core/ports/driven"
)

// Config keys for session settings.
const (
	keyPageSize       = "search.page_size"
	keyCapLimit       = "search.cap_limit"
	keyNeighbourCount = "search.neighbour_count"
	keyDataDir        = "storage.data_dir"
	keyWatch          = "watch.enabled"
)

// LoadSettings reads session settings from the store, filling absent
// keys with defaults. Invalid combinations fall back to defaults
// entirely rather than failing startup.
func LoadSettings(store driven.ConfigStore) domain.Settings {
	s := domain.Settings{
		PageSize:       store.GetInt(keyPageSize),
		CapLimit:       store.GetInt(keyCapLimit),
		NeighbourCount: store.GetInt(keyNeighbourCount),
		DataDir:        store.GetString(keyDataDir),
		Watch:          true,
	}
	if v, ok := store.Get(keyWatch); ok {
		if b, isBool := v.(bool); isBool {
			s.Watch = b
		}
	}

	s = s.WithDefaults()
	if err := s.Validate(); err != nil {
		def := domain.DefaultSettings()
		def.DataDir = s.DataDir
		def.Watch = s.Watch
		return def
	}
	return s
}

// SaveSettings persists session settings to the store.
func SaveSettings(store driven.ConfigStore, s domain.Settings) error {
	if err := store.Set(keyPageSize, s.PageSize); err != nil {
		return err
	}
	if err := store.Set(keyCapLimit, s.CapLimit); err != nil {
		return err
	}
	if err := store.Set(keyNeighbourCount, s.NeighbourCount); err != nil {
		return err
	}
	if err := store.Set(keyDataDir, s.DataDir); err != nil {
		return err
	}
	return store.Set(keyWatch, s.Watch)
}
