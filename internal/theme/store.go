package theme

import (
	"errors"
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/linkpage/internal/logger"
	"github.com/alexisbeaulieu97/linkpage/internal/storage"
	pkgerrors "github.com/alexisbeaulieu97/linkpage/pkg/errors"
)

// Observer receives the settings before and after each accepted change.
type Observer func(before, after Settings)

// StoreOption customises a Store.
type StoreOption func(*Store)

// WithLogger sets the logger used for persistence failures.
func WithLogger(l *logger.Logger) StoreOption {
	return func(s *Store) {
		s.log = l
	}
}

// WithObserver registers fn to be called after every accepted change.
func WithObserver(fn Observer) StoreOption {
	return func(s *Store) {
		s.observer = fn
	}
}

// Store owns the theme settings. Every accepted change is projected onto the
// surface and then written to the key-value store; write failures are logged
// and never returned to the caller.
type Store struct {
	mu         sync.Mutex
	kv         storage.Store
	target     Surface
	log        *logger.Logger
	observer   Observer
	settings   Settings
	appearance Appearance
	projection Projection
	lastLoad   LoadResult
	persistErr error
}

// NewStore creates a store holding the default settings. Call Initialize to
// load persisted state.
func NewStore(kv storage.Store, target Surface, opts ...StoreOption) *Store {
	s := &Store{
		kv:         kv,
		target:     target,
		settings:   DefaultSettings(),
		appearance: AppearanceLight,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.projection = Project(s.settings, s.appearance)
	return s
}

// Initialize loads persisted settings, falling back to defaults, then
// projects and persists them. When the store could not be read at all the
// defaults are only projected, so the stored value is left for a later run.
func (s *Store) Initialize() Settings {
	result := Load(s.kv)
	persist := true
	switch {
	case result.Fallback() && errors.Is(result.Reason, storage.ErrNotFound):
		s.log.Debug("no stored theme settings, using defaults")
	case result.Fallback() && readFailed(result.Reason):
		persist = false
		s.log.Warn("failed to read theme settings, using defaults without saving", "error", result.Reason)
	case result.Fallback():
		s.log.Warn("failed to load theme settings, using defaults", "error", result.Reason)
	case len(result.Adjusted) > 0:
		s.log.Warn("stored theme settings had invalid fields", "fields", result.Adjusted)
	}

	appearance, err := LoadAppearance(s.kv)
	if err != nil {
		s.log.Warn("failed to load appearance, using light", "error", err)
	}

	s.mu.Lock()
	s.lastLoad = result
	s.appearance = appearance
	s.mu.Unlock()

	s.apply(func(Settings) Settings { return result.Settings }, persist)
	return result.Settings
}

// readFailed reports whether err is a failed read, as opposed to a missing
// key or an undecodable value.
func readFailed(err error) bool {
	var perr *pkgerrors.PersistenceError
	return errors.As(err, &perr) && perr.Op == "load" && !errors.Is(err, storage.ErrNotFound)
}

// LastLoad returns the result of the most recent Initialize.
func (s *Store) LastLoad() LoadResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastLoad
}

// Settings returns the current settings value.
func (s *Store) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Appearance returns the current light/dark mode.
func (s *Store) Appearance() Appearance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appearance
}

// Projection returns the projection last applied to the surface.
func (s *Store) Projection() Projection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.projection
}

// PersistErr returns the error of the most recent failed write, or nil if
// the last write succeeded.
func (s *Store) PersistErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistErr
}

// GetThemeColors looks name up in the registry; unknown names give the
// default entry.
func (s *Store) GetThemeColors(name string) Colors {
	return GetThemeColors(name)
}

// UpdateColorTheme switches to a registry theme.
func (s *Store) UpdateColorTheme(name string) error {
	if !IsKnownTheme(name) {
		return pkgerrors.NewValidationError("colorTheme", fmt.Sprintf("Unknown color theme %q", name), nil)
	}
	key := normalizeThemeName(name)
	s.commit(func(cur Settings) Settings { return cur.WithColorTheme(key) })
	return nil
}

// UpdateGradient stores the gradient token.
func (s *Store) UpdateGradient(token string) error {
	if token == "" {
		return pkgerrors.NewValidationError("gradient", "Gradient must not be empty", nil)
	}
	s.commit(func(cur Settings) Settings { return cur.WithGradient(token) })
	return nil
}

// UpdatePattern accepts a pattern name or its class token.
func (s *Store) UpdatePattern(p Pattern) error {
	parsed, err := ParsePattern(string(p))
	if err != nil {
		return pkgerrors.NewValidationError("pattern", "Unknown background pattern", err)
	}
	s.commit(func(cur Settings) Settings { return cur.WithPattern(parsed) })
	return nil
}

// UpdateFont accepts a family name or its class token.
func (s *Store) UpdateFont(f Font) error {
	parsed, err := ParseFont(string(f))
	if err != nil {
		return pkgerrors.NewValidationError("font", "Unknown font family", err)
	}
	s.commit(func(cur Settings) Settings { return cur.WithFont(parsed) })
	return nil
}

// UpdateBorderRadius accepts a radius step or a rounded-* class.
func (s *Store) UpdateBorderRadius(r BorderRadius) error {
	parsed, err := ParseBorderRadius(string(r))
	if err != nil {
		return pkgerrors.NewValidationError("borderRadius", "Unknown border radius", err)
	}
	s.commit(func(cur Settings) Settings { return cur.WithBorderRadius(parsed) })
	return nil
}

// UpdateCardOpacity sets the card opacity. Values outside [0,1] are rejected.
func (s *Store) UpdateCardOpacity(v float64) error {
	if !validOpacity(v) {
		return pkgerrors.NewValidationError("effects.cardOpacity", "Card opacity must be between 0 and 1", nil)
	}
	s.commit(func(cur Settings) Settings { return cur.WithCardOpacity(v) })
	return nil
}

// UpdateAnimationSpeed sets the animation duration in milliseconds. It must
// be a finite positive number.
func (s *Store) UpdateAnimationSpeed(ms float64) error {
	if !validSpeed(ms) {
		return pkgerrors.NewValidationError("effects.animationSpeed", "Animation speed must be a positive number of milliseconds", nil)
	}
	s.commit(func(cur Settings) Settings { return cur.WithAnimationSpeed(ms) })
	return nil
}

// ToggleShadow turns the card shadow on or off.
func (s *Store) ToggleShadow(enabled bool) {
	s.commit(func(cur Settings) Settings { return cur.WithShadow(enabled) })
}

// ToggleGlassmorphism turns the frosted card effect on or off.
func (s *Store) ToggleGlassmorphism(enabled bool) {
	s.commit(func(cur Settings) Settings { return cur.WithGlassmorphism(enabled) })
}

// ResetToDefaults replaces the settings with the compiled-in defaults. The
// appearance is left alone.
func (s *Store) ResetToDefaults() {
	s.commit(func(Settings) Settings { return DefaultSettings() })
}

// SetAppearance switches between light and dark foregrounds and persists the
// choice under its own key.
func (s *Store) SetAppearance(a Appearance) error {
	parsed, err := ParseAppearance(string(a))
	if err != nil {
		return pkgerrors.NewValidationError("appearance", "Appearance must be light or dark", err)
	}

	s.mu.Lock()
	s.appearance = parsed
	s.projection = Project(s.settings, parsed)
	s.projection.Apply(s.target)
	s.write(AppearanceKey, []byte(parsed))
	s.mu.Unlock()
	return nil
}

// commit applies change to the current settings, projects the result and
// persists it. The observer runs after the lock is released.
func (s *Store) commit(change func(Settings) Settings) {
	s.apply(change, true)
}

func (s *Store) apply(change func(Settings) Settings, persist bool) {
	s.mu.Lock()
	before := s.settings
	after := change(before)
	s.settings = after
	s.projection = Project(after, s.appearance)
	s.projection.Apply(s.target)

	if persist {
		data, err := after.Encode()
		if err != nil {
			s.recordPersistErr(pkgerrors.NewPersistenceError(SettingsKey, "encode", err))
		} else {
			s.write(SettingsKey, data)
		}
	}
	observer := s.observer
	s.mu.Unlock()

	if observer != nil {
		observer(before, after)
	}
}

// write must be called with s.mu held.
func (s *Store) write(key string, data []byte) {
	if s.kv == nil {
		return
	}
	if err := s.kv.Set(key, data); err != nil {
		s.recordPersistErr(pkgerrors.NewPersistenceError(key, "save", err))
		return
	}
	s.persistErr = nil
}

func (s *Store) recordPersistErr(err error) {
	s.persistErr = err
	s.log.Warn("failed to persist theme state", "error", err)
}
