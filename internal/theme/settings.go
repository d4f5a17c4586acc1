package theme

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

// Pattern is the background pattern of the main region.
type Pattern string

const (
	PatternNone     Pattern = "none"
	PatternDots     Pattern = "dots"
	PatternGrid     Pattern = "grid"
	PatternStripes  Pattern = "stripes"
	PatternWaves    Pattern = "waves"
	PatternHexagons Pattern = "hexagons"
)

var patterns = []Pattern{PatternNone, PatternDots, PatternGrid, PatternStripes, PatternWaves, PatternHexagons}

// Patterns lists every pattern in display order.
func Patterns() []Pattern { return append([]Pattern(nil), patterns...) }

// ParsePattern accepts a pattern name or its class token ("pattern-dots").
func ParsePattern(raw string) (Pattern, error) {
	v := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(raw)), "pattern-")
	for _, p := range patterns {
		if string(p) == v {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown pattern %q", raw)
}

// Class returns the class token for the pattern, empty for none.
func (p Pattern) Class() string {
	if p == PatternNone || p == "" {
		return ""
	}
	return "pattern-" + string(p)
}

// PatternClasses is the mutually exclusive class family for patterns.
func PatternClasses() []string {
	classes := make([]string, len(patterns))
	for i, p := range patterns {
		classes[i] = "pattern-" + string(p)
	}
	return classes
}

// Font is the page font family.
type Font string

const (
	FontSans  Font = "sans"
	FontSerif Font = "serif"
	FontMono  Font = "mono"
)

var fonts = []Font{FontSans, FontSerif, FontMono}

// Fonts lists every font family in display order.
func Fonts() []Font { return append([]Font(nil), fonts...) }

// ParseFont accepts a family name or its class token ("font-serif").
func ParseFont(raw string) (Font, error) {
	v := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(raw)), "font-")
	for _, f := range fonts {
		if string(f) == v {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown font %q", raw)
}

// Class returns the class token for the font.
func (f Font) Class() string { return "font-" + string(f) }

// FontClasses is the mutually exclusive class family for fonts.
func FontClasses() []string {
	classes := make([]string, len(fonts))
	for i, f := range fonts {
		classes[i] = f.Class()
	}
	return classes
}

// BorderRadius is the card corner radius step.
type BorderRadius string

const (
	RadiusNone BorderRadius = "none"
	RadiusSm   BorderRadius = "sm"
	RadiusMd   BorderRadius = "md"
	RadiusLg   BorderRadius = "lg"
)

var radii = []BorderRadius{RadiusNone, RadiusSm, RadiusMd, RadiusLg}

var radiusLengths = map[BorderRadius]string{
	RadiusNone: "0px",
	RadiusSm:   "0.125rem",
	RadiusMd:   "0.25rem",
	RadiusLg:   "0.5rem",
}

// legacyRadii maps utility-class spellings onto radius steps.
var legacyRadii = map[string]BorderRadius{
	"rounded-none": RadiusNone,
	"rounded-sm":   RadiusSm,
	"rounded":      RadiusMd,
	"rounded-md":   RadiusMd,
	"rounded-lg":   RadiusLg,
}

// BorderRadii lists every radius step in display order.
func BorderRadii() []BorderRadius { return append([]BorderRadius(nil), radii...) }

// ParseBorderRadius accepts a step name or a utility class ("rounded-lg").
func ParseBorderRadius(raw string) (BorderRadius, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if r, ok := legacyRadii[v]; ok {
		return r, nil
	}
	for _, r := range radii {
		if string(r) == v {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown border radius %q", raw)
}

// Length returns the CSS length for the step; unknown steps use lg.
func (r BorderRadius) Length() string {
	if l, ok := radiusLengths[r]; ok {
		return l
	}
	return radiusLengths[RadiusLg]
}

// Appearance is the light/dark switch.
type Appearance string

const (
	AppearanceLight Appearance = "light"
	AppearanceDark  Appearance = "dark"
)

// ParseAppearance accepts "light" or "dark".
func ParseAppearance(raw string) (Appearance, error) {
	switch Appearance(strings.ToLower(strings.TrimSpace(raw))) {
	case AppearanceLight:
		return AppearanceLight, nil
	case AppearanceDark:
		return AppearanceDark, nil
	}
	return "", fmt.Errorf("unknown appearance %q", raw)
}

// Effects groups the card effect toggles.
type Effects struct {
	Shadow         bool    `json:"shadow"`
	Glassmorphism  bool    `json:"glassmorphism"`
	CardOpacity    float64 `json:"cardOpacity"`
	AnimationSpeed float64 `json:"animationSpeed"`
}

// Settings is the full visual configuration. It is a plain value: copies
// never share state, and the With methods return modified copies.
type Settings struct {
	ColorTheme   string       `json:"colorTheme"`
	Gradient     string       `json:"gradient"`
	Pattern      Pattern      `json:"pattern"`
	Font         Font         `json:"font"`
	BorderRadius BorderRadius `json:"borderRadius"`
	Effects      Effects      `json:"effects"`
}

// DefaultSettings returns the compiled-in configuration.
func DefaultSettings() Settings {
	return Settings{
		ColorTheme:   DefaultThemeName,
		Gradient:     "none",
		Pattern:      PatternNone,
		Font:         FontSans,
		BorderRadius: RadiusLg,
		Effects: Effects{
			Shadow:         true,
			Glassmorphism:  false,
			CardOpacity:    1,
			AnimationSpeed: 100,
		},
	}
}

// WithColorTheme returns a copy of s using the named registry theme.
func (s Settings) WithColorTheme(name string) Settings {
	s.ColorTheme = name
	return s
}

// WithGradient returns a copy of s with the gradient token replaced.
func (s Settings) WithGradient(token string) Settings {
	s.Gradient = token
	return s
}

// WithPattern returns a copy of s with the background pattern p.
func (s Settings) WithPattern(p Pattern) Settings {
	s.Pattern = p
	return s
}

// WithFont returns a copy of s with the font family f.
func (s Settings) WithFont(f Font) Settings {
	s.Font = f
	return s
}

// WithBorderRadius returns a copy of s with the card radius r.
func (s Settings) WithBorderRadius(r BorderRadius) Settings {
	s.BorderRadius = r
	return s
}

// WithCardOpacity returns a copy of s with the card opacity v.
func (s Settings) WithCardOpacity(v float64) Settings {
	s.Effects.CardOpacity = v
	return s
}

// WithAnimationSpeed returns a copy of s with the animation duration in milliseconds.
func (s Settings) WithAnimationSpeed(ms float64) Settings {
	s.Effects.AnimationSpeed = ms
	return s
}

// WithShadow returns a copy of s with the card shadow switched on or off.
func (s Settings) WithShadow(enabled bool) Settings {
	s.Effects.Shadow = enabled
	return s
}

// WithGlassmorphism returns a copy of s with the frosted card effect switched on or off.
func (s Settings) WithGlassmorphism(enabled bool) Settings {
	s.Effects.Glassmorphism = enabled
	return s
}

// Colors resolves the colour theme through the registry.
func (s Settings) Colors() Colors {
	return GetThemeColors(s.ColorTheme)
}

// Encode serialises the settings as the persisted JSON blob.
func (s Settings) Encode() ([]byte, error) {
	return json.Marshal(s)
}

func validOpacity(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}

func validSpeed(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// storedSettings mirrors the persisted layout with loose types so that one
// bad field does not discard the rest.
type storedSettings struct {
	ColorTheme   *string `json:"colorTheme"`
	Gradient     *string `json:"gradient"`
	Pattern      *string `json:"pattern"`
	Font         *string `json:"font"`
	BorderRadius *string `json:"borderRadius"`
	Effects      *struct {
		Shadow         *bool    `json:"shadow"`
		Glassmorphism  *bool    `json:"glassmorphism"`
		CardOpacity    *float64 `json:"cardOpacity"`
		AnimationSpeed *float64 `json:"animationSpeed"`
	} `json:"effects"`
}

var errEmptySettings = errors.New("settings blob is empty")

// DecodeSettings parses a persisted blob. Malformed JSON is an error; a
// missing or unrecognised field falls back to its default and is named in
// the returned adjusted list.
func DecodeSettings(data []byte) (Settings, []string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Settings{}, nil, errEmptySettings
	}

	var raw storedSettings
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return Settings{}, nil, err
	}

	out := DefaultSettings()
	var adjusted []string

	if raw.ColorTheme != nil && IsKnownTheme(*raw.ColorTheme) {
		out.ColorTheme = normalizeThemeName(*raw.ColorTheme)
	} else {
		adjusted = append(adjusted, "colorTheme")
	}

	if raw.Gradient != nil && strings.TrimSpace(*raw.Gradient) != "" {
		out.Gradient = *raw.Gradient
	} else {
		adjusted = append(adjusted, "gradient")
	}

	if p, err := parseOptional(raw.Pattern, ParsePattern); err == nil {
		out.Pattern = p
	} else {
		adjusted = append(adjusted, "pattern")
	}

	if f, err := parseOptional(raw.Font, ParseFont); err == nil {
		out.Font = f
	} else {
		adjusted = append(adjusted, "font")
	}

	if r, err := parseOptional(raw.BorderRadius, ParseBorderRadius); err == nil {
		out.BorderRadius = r
	} else {
		adjusted = append(adjusted, "borderRadius")
	}

	if raw.Effects == nil {
		adjusted = append(adjusted, "effects")
		return out, adjusted, nil
	}

	e := raw.Effects
	if e.Shadow != nil {
		out.Effects.Shadow = *e.Shadow
	} else {
		adjusted = append(adjusted, "effects.shadow")
	}
	if e.Glassmorphism != nil {
		out.Effects.Glassmorphism = *e.Glassmorphism
	} else {
		adjusted = append(adjusted, "effects.glassmorphism")
	}
	if e.CardOpacity != nil && validOpacity(*e.CardOpacity) {
		out.Effects.CardOpacity = *e.CardOpacity
	} else {
		adjusted = append(adjusted, "effects.cardOpacity")
	}
	if e.AnimationSpeed != nil && validSpeed(*e.AnimationSpeed) {
		out.Effects.AnimationSpeed = *e.AnimationSpeed
	} else {
		adjusted = append(adjusted, "effects.animationSpeed")
	}

	return out, adjusted, nil
}

func parseOptional[T any](raw *string, parse func(string) (T, error)) (T, error) {
	if raw == nil {
		var zero T
		return zero, errors.New("missing")
	}
	return parse(*raw)
}
