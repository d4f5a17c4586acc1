package theme

import (
	"errors"
	"fmt"

	"github.com/alexisbeaulieu97/linkpage/internal/storage"
	pkgerrors "github.com/alexisbeaulieu97/linkpage/pkg/errors"
)

// Storage keys.
const (
	SettingsKey   = "themeSettings"
	AppearanceKey = "theme"
)

// Source records where a loaded value came from.
type Source string

const (
	SourceStored  Source = "stored"
	SourceDefault Source = "default"
)

// LoadResult is the outcome of reading persisted settings. When Source is
// SourceDefault, Reason explains why the stored value was not used; a missing
// key leaves Reason wrapping storage.ErrNotFound.
type LoadResult struct {
	Settings Settings
	Source   Source
	Reason   error

	// Adjusted names fields of a stored value that were replaced by their
	// defaults because they were missing or unrecognised.
	Adjusted []string
}

// Fallback reports whether defaults were used.
func (r LoadResult) Fallback() bool {
	return r.Source == SourceDefault
}

// Load reads the persisted settings. It never fails: any problem produces
// the default settings and a reason.
func Load(kv storage.Store) LoadResult {
	if kv == nil {
		return LoadResult{
			Settings: DefaultSettings(),
			Source:   SourceDefault,
			Reason:   pkgerrors.NewPersistenceError(SettingsKey, "load", errors.New("no store configured")),
		}
	}

	data, err := kv.Get(SettingsKey)
	if err != nil {
		return LoadResult{
			Settings: DefaultSettings(),
			Source:   SourceDefault,
			Reason:   pkgerrors.NewPersistenceError(SettingsKey, "load", err),
		}
	}

	settings, adjusted, err := DecodeSettings(data)
	if err != nil {
		return LoadResult{
			Settings: DefaultSettings(),
			Source:   SourceDefault,
			Reason:   pkgerrors.NewPersistenceError(SettingsKey, "decode", fmt.Errorf("malformed settings: %w", err)),
		}
	}

	return LoadResult{Settings: settings, Source: SourceStored, Adjusted: adjusted}
}

// LoadAppearance reads the persisted light/dark switch, defaulting to light.
func LoadAppearance(kv storage.Store) (Appearance, error) {
	if kv == nil {
		return AppearanceLight, nil
	}
	data, err := kv.Get(AppearanceKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return AppearanceLight, nil
		}
		return AppearanceLight, pkgerrors.NewPersistenceError(AppearanceKey, "load", err)
	}
	a, err := ParseAppearance(string(data))
	if err != nil {
		return AppearanceLight, pkgerrors.NewPersistenceError(AppearanceKey, "decode", err)
	}
	return a, nil
}
