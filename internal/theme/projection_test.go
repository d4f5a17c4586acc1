package theme

import (
	"testing"

	"github.com/alexisbeaulieu97/linkpage/internal/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectDefaults(t *testing.T) {
	t.Parallel()

	p := Project(DefaultSettings(), AppearanceLight)

	assert.Equal(t, []Variable{
		{VarPrimary, "0 0% 9%"},
		{VarPrimaryForeground, "0 0% 98%"},
		{VarIconTextColor, "255, 255, 255"},
		{VarSecondary, "0 0% 96.1%"},
		{VarSecondaryForeground, "0 0% 9%"},
		{VarAccent, "0 0% 96.1%"},
		{VarAccentForeground, "0 0% 9%"},
		{VarAnimationSpeed, "100ms"},
		{VarCardOpacity, "1"},
		{VarCardBorderRadius, "0.5rem"},
	}, p.Variables)
	assert.Equal(t, "font-sans", p.RootClass)
	assert.Empty(t, p.MainClass)
	assert.True(t, p.Shadow)
	assert.False(t, p.Glassmorphism)
}

func TestProjectDarkForegrounds(t *testing.T) {
	t.Parallel()

	p := Project(DefaultSettings(), AppearanceDark)

	fg, ok := p.Value(VarSecondaryForeground)
	require.True(t, ok)
	assert.Equal(t, "0 0% 98%", fg)
	fg, _ = p.Value(VarAccentForeground)
	assert.Equal(t, "0 0% 98%", fg)

	_, ok = p.Value("--missing")
	assert.False(t, ok)
}

func TestProjectBorderRadiusTable(t *testing.T) {
	t.Parallel()

	want := map[BorderRadius]string{
		RadiusNone: "0px",
		RadiusSm:   "0.125rem",
		RadiusMd:   "0.25rem",
		RadiusLg:   "0.5rem",
	}
	for r, length := range want {
		p := Project(DefaultSettings().WithBorderRadius(r), AppearanceLight)
		got, _ := p.Value(VarCardBorderRadius)
		assert.Equal(t, length, got, r)
	}
}

func TestProjectNumbersUseShortestForm(t *testing.T) {
	t.Parallel()

	p := Project(DefaultSettings().WithCardOpacity(0.5).WithAnimationSpeed(150.5), AppearanceLight)

	opacity, _ := p.Value(VarCardOpacity)
	speed, _ := p.Value(VarAnimationSpeed)
	assert.Equal(t, "0.5", opacity)
	assert.Equal(t, "150.5ms", speed)
}

func TestApplySwapsClassFamilies(t *testing.T) {
	t.Parallel()

	doc := surface.NewDocument("min-h-screen")

	Project(DefaultSettings().WithFont(FontSerif).WithPattern(PatternDots), AppearanceLight).Apply(doc)
	assert.Equal(t, []string{"font-serif"}, doc.Root().Classes)
	assert.Equal(t, []string{"min-h-screen", "pattern-dots"}, doc.Main().Classes)

	Project(DefaultSettings().WithFont(FontMono).WithPattern(PatternNone), AppearanceLight).Apply(doc)
	assert.Equal(t, []string{"font-mono"}, doc.Root().Classes)
	assert.Equal(t, []string{"min-h-screen"}, doc.Main().Classes)

	v, ok := doc.Property(VarCardBorderRadius)
	require.True(t, ok)
	assert.Equal(t, "0.5rem", v)
}

func TestApplyNilSurface(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { Project(DefaultSettings(), AppearanceLight).Apply(nil) })
}
