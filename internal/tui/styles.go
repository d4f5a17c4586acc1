package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/linkpage/internal/theme"
)

const cardWidth = 52

var (
	mutedColor  = lipgloss.Color("245")
	errorColor  = lipgloss.Color("196")
	shadowColor = lipgloss.Color("240")

	headerStyle   = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	mutedStyle    = lipgloss.NewStyle().Foreground(mutedColor)
	errorStyle    = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(mutedColor).MarginTop(1)
)

// palette is the lipgloss rendering of the current theme projection.
type palette struct {
	primary   lipgloss.Color
	secondary lipgloss.Color
	accent    lipgloss.Color
	border    lipgloss.Border
	faint     bool
	shadow    bool
}

func paletteFor(s theme.Settings) palette {
	colors := s.Colors()
	border := lipgloss.RoundedBorder()
	switch s.BorderRadius {
	case theme.RadiusNone, theme.RadiusSm:
		border = lipgloss.NormalBorder()
	}
	return palette{
		primary:   lipgloss.Color(theme.HexOf(colors.Primary)),
		secondary: lipgloss.Color(theme.HexOf(colors.Secondary)),
		accent:    lipgloss.Color(theme.HexOf(colors.Accent)),
		border:    border,
		faint:     s.Effects.Glassmorphism || s.Effects.CardOpacity < 0.5,
		shadow:    s.Effects.Shadow,
	}
}

func (p palette) card() lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(p.border).
		BorderForeground(p.primary).
		Padding(1, 2).
		Width(cardWidth)
	if p.shadow {
		style = style.
			BorderBottomForeground(shadowColor).
			BorderRightForeground(shadowColor)
	}
	if p.faint {
		style = style.Faint(true)
	}
	return style
}

func (p palette) title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(p.primary)
}

func (p palette) link() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(p.accent).
		Width(cardWidth - 6)
}

func (p palette) tab(active bool) lipgloss.Style {
	style := lipgloss.NewStyle().Padding(0, 1)
	if active {
		return style.Bold(true).Foreground(p.primary).Underline(true)
	}
	return style.Foreground(mutedColor)
}
