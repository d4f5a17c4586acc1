package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/linkpage/internal/links"
	"github.com/alexisbeaulieu97/linkpage/internal/notice"
	"github.com/alexisbeaulieu97/linkpage/internal/profile"
	"github.com/alexisbeaulieu97/linkpage/internal/theme"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	settings := m.page.Theme.Settings()
	pal := paletteFor(settings)

	mode := "View"
	if m.page.Editing() {
		mode = "Edit"
	}
	sections := []string{headerStyle.Render(fmt.Sprintf("linkpage • %s", mode))}

	var body string
	switch {
	case m.flipping:
		body = m.renderFlip()
	case m.page.Editing():
		body = m.renderEdit(pal)
	default:
		body = m.renderFront(pal)
	}
	sections = append(sections, pal.card().Render(body))

	if status := m.renderStatus(); status != "" {
		sections = append(sections, status)
	}
	sections = append(sections, helpStyle.Render(m.help()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderFlip() string {
	return mutedStyle.Render(strings.Repeat("─", cardWidth-6))
}

func (m Model) renderFront(pal palette) string {
	p := m.page.Profile.Profile()

	name := pal.title().Render(p.Name)
	if p.Verified {
		name += " " + lipgloss.NewStyle().Foreground(pal.primary).Render("✓")
	}
	lines := []string{name}
	if p.Bio != "" {
		lines = append(lines, lipgloss.NewStyle().Width(cardWidth-6).Render(p.Bio))
	}
	lines = append(lines, "")

	for _, l := range m.page.Links.Links() {
		lines = append(lines, pal.link().Render(renderLink(l)))
	}
	return strings.Join(lines, "\n")
}

func renderLink(l links.Link) string {
	if l.URL == "" {
		return fmt.Sprintf("%s %s %s", KindIcon(links.KindGeneric), l.Title, mutedStyle.Render("(no url)"))
	}
	return fmt.Sprintf("%s %s %s", KindIcon(links.KindOf(l.URL)), l.Title, mutedStyle.Render(l.URL))
}

// KindIcon returns the glyph shown next to a link of the given kind.
func KindIcon(kind links.Kind) string {
	switch kind {
	case links.KindTwitter:
		return "𝕏"
	case links.KindGitHub:
		return "⌥"
	case links.KindLinkedIn:
		return "in"
	default:
		return "↗"
	}
}

func (m Model) renderEdit(pal palette) string {
	tabs := make([]string, len(sectionNames))
	for i, name := range sectionNames {
		tabs[i] = pal.tab(Section(i) == m.section).Render(name)
	}
	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top, tabs...), ""}

	var items []string
	switch m.section {
	case SectionProfile:
		items = m.profileItems()
	case SectionLinks:
		items = m.linkItems()
	case SectionTheme:
		items = m.themeItems()
	}
	for i, item := range items {
		if i == m.cursor {
			lines = append(lines, selectedStyle.Render("> "+item))
		} else {
			lines = append(lines, "  "+item)
		}
	}

	if m.target != inputNone {
		lines = append(lines, "", m.input.View())
	}
	return strings.Join(lines, "\n")
}

func (m Model) profileItems() []string {
	p := m.page.Profile.Profile()
	verified := "no"
	if p.Verified {
		verified = "yes"
	}
	bg := p.SecondaryBg
	for _, opt := range profile.BackgroundOptions() {
		if opt.Token == p.SecondaryBg {
			bg = fmt.Sprintf("%s (%s)", opt.Label, opt.Token)
		}
	}
	return []string{
		"Name: " + p.Name,
		"Bio: " + truncate(p.Bio, 36),
		"Avatar: " + truncate(p.AvatarURL, 36),
		"Background: " + bg,
		"Verified: " + verified,
	}
}

func (m Model) linkItems() []string {
	all := m.page.Links.Links()
	items := make([]string, 0, len(all)+1)
	for _, l := range all {
		url := l.URL
		if url == "" {
			url = "(no url)"
		}
		items = append(items, fmt.Sprintf("%s %s %s", KindIcon(links.KindOf(l.URL)), l.Title, mutedStyle.Render(truncate(url, 28))))
	}
	return append(items, "+ Add link")
}

func (m Model) themeItems() []string {
	store := m.page.Theme
	s := store.Settings()
	onOff := func(v bool) string {
		if v {
			return "on"
		}
		return "off"
	}
	return []string{
		fmt.Sprintf("Color: %s %s", theme.DisplayName(s.ColorTheme), swatch(s.Colors())),
		"Pattern: " + string(s.Pattern),
		"Font: " + string(s.Font),
		"Border radius: " + string(s.BorderRadius),
		"Shadow: " + onOff(s.Effects.Shadow),
		"Glassmorphism: " + onOff(s.Effects.Glassmorphism),
		fmt.Sprintf("Card opacity: %g", s.Effects.CardOpacity),
		fmt.Sprintf("Animation speed: %gms", s.Effects.AnimationSpeed),
		"Appearance: " + string(store.Appearance()),
		"Reset to defaults",
	}
}

func swatch(c theme.Colors) string {
	var b strings.Builder
	for _, component := range []string{c.Primary, c.Secondary, c.Accent} {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.HexOf(component))).Render("■"))
	}
	return b.String()
}

func (m Model) renderStatus() string {
	last, ok := m.notices.Last()
	if !ok {
		return ""
	}
	text := last.Title
	if last.Description != "" {
		text += ": " + last.Description
	}
	if last.Variant == notice.VariantDestructive {
		return errorStyle.Render(text)
	}
	return mutedStyle.Render(text)
}

func (m Model) help() string {
	switch {
	case m.target != inputNone:
		return "enter save • esc cancel"
	case m.page.Editing():
		return "tab section • ↑/↓ move • enter edit • ←/→ change • a add • d delete • e done"
	default:
		return "e edit • q quit"
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
