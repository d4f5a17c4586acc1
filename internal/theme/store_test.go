package theme

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/alexisbeaulieu97/linkpage/internal/logger"
	"github.com/alexisbeaulieu97/linkpage/internal/storage"
	"github.com/alexisbeaulieu97/linkpage/internal/surface"
	pkgerrors "github.com/alexisbeaulieu97/linkpage/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, kv storage.Store, opts ...StoreOption) (*Store, *surface.Document) {
	t.Helper()
	doc := surface.NewDocument()
	s := NewStore(kv, doc, opts...)
	s.Initialize()
	return s, doc
}

func TestInitializeWithoutStoredSettings(t *testing.T) {
	kv := storage.NewMemoryStore()
	s, doc := newTestStore(t, kv)

	assert.Equal(t, DefaultSettings(), s.Settings())
	last := s.LastLoad()
	assert.True(t, last.Fallback())
	assert.ErrorIs(t, last.Reason, storage.ErrNotFound)

	stored, err := kv.Get(SettingsKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"colorTheme":"default","gradient":"none","pattern":"none","font":"sans",
		"borderRadius":"lg","effects":{"shadow":true,"glassmorphism":false,"cardOpacity":1,"animationSpeed":100}}`,
		string(stored))

	v, ok := doc.Property(VarPrimary)
	require.True(t, ok)
	assert.Equal(t, "0 0% 9%", v)
}

func TestInitializeRestoresPersistedSettings(t *testing.T) {
	kv := storage.NewMemoryStore()
	first, _ := newTestStore(t, kv)
	require.NoError(t, first.UpdateColorTheme("purple"))
	require.NoError(t, first.UpdateFont(FontMono))
	first.ToggleGlassmorphism(true)

	second, doc := newTestStore(t, kv)
	assert.Equal(t, first.Settings(), second.Settings())
	assert.Equal(t, SourceStored, second.LastLoad().Source)
	assert.Equal(t, []string{"font-mono"}, doc.Root().Classes)
}

func TestInitializeWithCorruptedStorageUsesDefaults(t *testing.T) {
	kv := storage.NewMemoryStore()
	first, _ := newTestStore(t, kv)
	require.NoError(t, first.UpdateColorTheme("rose"))

	require.NoError(t, kv.Set(SettingsKey, []byte(`{"colorTheme": "rose", "effects": {`)))

	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Writer: &buf})
	require.NoError(t, err)

	var got Settings
	require.NotPanics(t, func() {
		s := NewStore(kv, surface.NewDocument(), WithLogger(log))
		got = s.Initialize()
		var pe *pkgerrors.PersistenceError
		assert.ErrorAs(t, s.LastLoad().Reason, &pe)
	})
	assert.Equal(t, DefaultSettings(), got)
	assert.Contains(t, buf.String(), "failed to load theme settings")
}

func TestResetToDefaultsRestoresDefaultColors(t *testing.T) {
	s, _ := newTestStore(t, storage.NewMemoryStore())
	require.NoError(t, s.UpdateColorTheme("orange"))
	require.NoError(t, s.UpdatePattern(PatternGrid))

	s.ResetToDefaults()

	assert.Equal(t, DefaultSettings(), s.Settings())
	assert.Equal(t, Colors{Primary: "0 0% 9%", Secondary: "0 0% 96.1%", Accent: "0 0% 96.1%"},
		s.GetThemeColors(s.Settings().ColorTheme))
}

func TestColorThemeRoundTripIsIdempotent(t *testing.T) {
	s, doc := newTestStore(t, storage.NewMemoryStore())
	initial := s.Projection()
	initialRoot := doc.Root()

	require.NoError(t, s.UpdateColorTheme("rose"))
	rosePrimary, _ := s.Projection().Value(VarPrimary)
	assert.Equal(t, "347 77% 50%", rosePrimary)

	require.NoError(t, s.UpdateColorTheme("default"))
	assert.Equal(t, initial, s.Projection())
	assert.Equal(t, initialRoot, doc.Root())
}

func TestUpdateCardOpacity(t *testing.T) {
	s, doc := newTestStore(t, storage.NewMemoryStore())

	require.NoError(t, s.UpdateCardOpacity(0.5))
	got, _ := s.Projection().Value(VarCardOpacity)
	assert.Equal(t, "0.5", got)
	v, _ := doc.Property(VarCardOpacity)
	assert.Equal(t, "0.5", v)

	for _, bad := range []float64{-0.1, 1.5, math.NaN(), math.Inf(1)} {
		err := s.UpdateCardOpacity(bad)
		require.Error(t, err)
		assert.True(t, pkgerrors.IsValidation(err))
		assert.Equal(t, 0.5, s.Settings().Effects.CardOpacity)
	}

	require.NoError(t, s.UpdateCardOpacity(0))
	require.NoError(t, s.UpdateCardOpacity(1))
}

func TestUpdateAnimationSpeed(t *testing.T) {
	s, _ := newTestStore(t, storage.NewMemoryStore())

	require.NoError(t, s.UpdateAnimationSpeed(300))
	got, _ := s.Projection().Value(VarAnimationSpeed)
	assert.Equal(t, "300ms", got)

	for _, bad := range []float64{0, -100, math.NaN(), math.Inf(1)} {
		err := s.UpdateAnimationSpeed(bad)
		require.Error(t, err)
		assert.True(t, pkgerrors.IsValidation(err))
	}
	assert.Equal(t, 300.0, s.Settings().Effects.AnimationSpeed)
}

func TestEnumMutatorsAcceptLegacyTokens(t *testing.T) {
	s, doc := newTestStore(t, storage.NewMemoryStore())

	require.NoError(t, s.UpdateBorderRadius("rounded-sm"))
	require.NoError(t, s.UpdateFont("font-serif"))
	require.NoError(t, s.UpdatePattern("pattern-stripes"))

	assert.Equal(t, RadiusSm, s.Settings().BorderRadius)
	v, _ := doc.Property(VarCardBorderRadius)
	assert.Equal(t, "0.125rem", v)
	assert.Equal(t, []string{"font-serif"}, doc.Root().Classes)
	assert.Equal(t, []string{"pattern-stripes"}, doc.Main().Classes)

	before := s.Settings()
	assert.Error(t, s.UpdateFont("comic"))
	assert.Error(t, s.UpdatePattern("zigzag"))
	assert.Error(t, s.UpdateBorderRadius("huge"))
	assert.Error(t, s.UpdateColorTheme("neon"))
	assert.Error(t, s.UpdateGradient(""))
	assert.Equal(t, before, s.Settings())
}

func TestMutatorsProduceNewValues(t *testing.T) {
	s, _ := newTestStore(t, storage.NewMemoryStore())

	snapshot := s.Settings()
	s.ToggleShadow(false)
	require.NoError(t, s.UpdateGradient("sunset"))

	assert.True(t, snapshot.Effects.Shadow)
	assert.Equal(t, "none", snapshot.Gradient)
	assert.False(t, s.Settings().Effects.Shadow)
	assert.Equal(t, "sunset", s.Settings().Gradient)
}

func TestPersistenceFailureDoesNotFailMutator(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Writer: &buf})
	require.NoError(t, err)

	kv := storage.NewMemoryStore(storage.WithQuota(8))
	s, doc := newTestStore(t, kv, WithLogger(log))

	require.NoError(t, s.UpdateFont(FontSerif))
	assert.Equal(t, FontSerif, s.Settings().Font)
	assert.Equal(t, []string{"font-serif"}, doc.Root().Classes)
	assert.ErrorIs(t, s.PersistErr(), storage.ErrQuotaExceeded)
	assert.Contains(t, buf.String(), "failed to persist theme state")
}

func TestObserverSeesBeforeAndAfter(t *testing.T) {
	type change struct{ before, after Settings }
	var changes []change

	s, _ := newTestStore(t, storage.NewMemoryStore(), WithObserver(func(before, after Settings) {
		changes = append(changes, change{before, after})
	}))
	changes = nil

	require.NoError(t, s.UpdateColorTheme("green"))
	require.Error(t, s.UpdateColorTheme("neon"))

	require.Len(t, changes, 1)
	assert.Equal(t, "default", changes[0].before.ColorTheme)
	assert.Equal(t, "green", changes[0].after.ColorTheme)
}

func TestAppearanceIsPersistedSeparately(t *testing.T) {
	kv := storage.NewMemoryStore()
	s, doc := newTestStore(t, kv)

	require.NoError(t, s.SetAppearance(AppearanceDark))
	v, _ := doc.Property(VarSecondaryForeground)
	assert.Equal(t, "0 0% 98%", v)

	stored, err := kv.Get(AppearanceKey)
	require.NoError(t, err)
	assert.Equal(t, "dark", string(stored))

	s.ResetToDefaults()
	assert.Equal(t, AppearanceDark, s.Appearance())

	again, _ := newTestStore(t, kv)
	assert.Equal(t, AppearanceDark, again.Appearance())

	assert.Error(t, s.SetAppearance("sepia"))
}

// unreadableStore fails every read while writes still reach the wrapped store.
type unreadableStore struct {
	storage.Store
}

func (unreadableStore) Get(string) ([]byte, error) {
	return nil, errors.New("database is locked")
}

func TestInitializeKeepsStoredSettingsWhenReadFails(t *testing.T) {
	kv := storage.NewMemoryStore()
	first, _ := newTestStore(t, kv)
	require.NoError(t, first.UpdateColorTheme("rose"))
	saved, err := kv.Get(SettingsKey)
	require.NoError(t, err)

	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Writer: &buf})
	require.NoError(t, err)

	s, doc := newTestStore(t, unreadableStore{Store: kv}, WithLogger(log))
	assert.Equal(t, DefaultSettings(), s.Settings())
	assert.True(t, s.LastLoad().Fallback())
	assert.Contains(t, buf.String(), "failed to read theme settings")
	v, ok := doc.Property(VarPrimary)
	require.True(t, ok)
	assert.Equal(t, "0 0% 9%", v)

	stored, err := kv.Get(SettingsKey)
	require.NoError(t, err)
	assert.Equal(t, saved, stored)

	again, _ := newTestStore(t, kv)
	assert.Equal(t, "rose", again.Settings().ColorTheme)

	// A later explicit change is still saved.
	require.NoError(t, s.UpdateFont(FontMono))
	stored, err = kv.Get(SettingsKey)
	require.NoError(t, err)
	assert.Contains(t, string(stored), `"font":"mono"`)
}
