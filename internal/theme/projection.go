package theme

// Custom property names written onto the document root.
const (
	VarPrimary             = "--primary"
	VarPrimaryForeground   = "--primary-foreground"
	VarIconTextColor       = "--icon-text-color"
	VarSecondary           = "--secondary"
	VarSecondaryForeground = "--secondary-foreground"
	VarAccent              = "--accent"
	VarAccentForeground    = "--accent-foreground"
	VarAnimationSpeed      = "--animation-speed"
	VarCardOpacity         = "--card-opacity"
	VarCardBorderRadius    = "--card-border-radius"
)

const (
	foregroundOnPrimary = "0 0% 98%"
	foregroundLight     = "0 0% 9%"
	foregroundDark      = "0 0% 98%"
	iconTextColor       = "255, 255, 255"
)

// Surface is the rendering context a projection is applied to.
type Surface interface {
	SetProperty(name, value string)
	SwapRootClass(family []string, token string)
	SwapMainClass(family []string, token string)
}

// Variable is one custom property assignment.
type Variable struct {
	Name  string
	Value string
}

// Projection is everything derived from a Settings value that the page
// needs to render it.
type Projection struct {
	Variables []Variable
	RootClass string
	MainClass string

	// Shadow and Glassmorphism are read by the card renderer directly; they
	// have no custom property.
	Shadow        bool
	Glassmorphism bool
}

// Project derives the projection for s under the given appearance. It has no
// side effects.
func Project(s Settings, appearance Appearance) Projection {
	colors := s.Colors()

	fg := foregroundLight
	if appearance == AppearanceDark {
		fg = foregroundDark
	}

	return Projection{
		Variables: []Variable{
			{VarPrimary, colors.Primary},
			{VarPrimaryForeground, foregroundOnPrimary},
			{VarIconTextColor, iconTextColor},
			{VarSecondary, colors.Secondary},
			{VarSecondaryForeground, fg},
			{VarAccent, colors.Accent},
			{VarAccentForeground, fg},
			{VarAnimationSpeed, formatNumber(s.Effects.AnimationSpeed) + "ms"},
			{VarCardOpacity, formatNumber(s.Effects.CardOpacity)},
			{VarCardBorderRadius, s.BorderRadius.Length()},
		},
		RootClass:     s.Font.Class(),
		MainClass:     s.Pattern.Class(),
		Shadow:        s.Effects.Shadow,
		Glassmorphism: s.Effects.Glassmorphism,
	}
}

// Value returns the value of the named variable.
func (p Projection) Value(name string) (string, bool) {
	for _, v := range p.Variables {
		if v.Name == name {
			return v.Value, true
		}
	}
	return "", false
}

// Apply writes the projection onto target.
func (p Projection) Apply(target Surface) {
	if target == nil {
		return
	}
	for _, v := range p.Variables {
		target.SetProperty(v.Name, v.Value)
	}
	target.SwapRootClass(FontClasses(), p.RootClass)
	target.SwapMainClass(PatternClasses(), p.MainClass)
}
