package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/linkpage/internal/links"
	"github.com/alexisbeaulieu97/linkpage/internal/notice"
	"github.com/alexisbeaulieu97/linkpage/internal/profile"
	"github.com/alexisbeaulieu97/linkpage/internal/theme"
	pkgerrors "github.com/alexisbeaulieu97/linkpage/pkg/errors"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case flipMidMsg:
		m.page.ToggleEditMode()
		m.section = SectionProfile
		m.cursor = 0
		return m, tea.Tick(flipHalf, func(time.Time) tea.Msg { return flipDoneMsg{} })
	case flipDoneMsg:
		m.flipping = false
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.flipping {
			return m, nil
		}
		if m.target != inputNone {
			return m.handleInputKeys(msg)
		}
		if m.page.Editing() {
			return m.handleEditKeys(msg)
		}
		return m.handleViewKeys(msg)
	}
	return m, nil
}

func (m Model) startFlip() (tea.Model, tea.Cmd) {
	m.flipping = true
	return m, tea.Tick(flipHalf, func(time.Time) tea.Msg { return flipMidMsg{} })
}

func (m Model) handleViewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "e", "enter", " ":
		return m.startFlip()
	}
	return m, nil
}

func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "e":
		return m.startFlip()
	case "tab":
		m.section = (m.section + 1) % Section(len(sectionNames))
		m.cursor = 0
	case "shift+tab":
		m.section = (m.section + Section(len(sectionNames)) - 1) % Section(len(sectionNames))
		m.cursor = 0
	case "up", "k":
		m.cursor--
		m.clampCursor()
	case "down", "j":
		m.cursor++
		m.clampCursor()
	case "enter", " ":
		return m.activate(1)
	case "right", "l":
		return m.adjust(1)
	case "left", "h":
		return m.adjust(-1)
	case "a":
		if m.section == SectionLinks {
			return m.beginInput(inputNewTitle, m.page.Links.Draft().Title)
		}
	case "d", "delete":
		if m.section == SectionLinks {
			all := m.page.Links.Links()
			if m.cursor < len(all) {
				m.page.Links.DeleteLink(all[m.cursor].ID)
				m.clampCursor()
			}
		}
	}
	return m, nil
}

func (m Model) activate(dir int) (tea.Model, tea.Cmd) {
	switch m.section {
	case SectionProfile:
		field := profile.Fields()[m.cursor]
		current := m.page.Profile.Profile()
		switch field {
		case profile.FieldVerified:
			m.page.Profile.ToggleVerified()
		case profile.FieldSecondaryBg:
			m.page.Profile.UpdateSecondaryBg(nextBackground(current.SecondaryBg, dir))
		default:
			m.field = field
			return m.beginInput(inputProfileField, profileValue(current, field))
		}
	case SectionLinks:
		all := m.page.Links.Links()
		if m.cursor >= len(all) {
			return m.beginInput(inputNewTitle, m.page.Links.Draft().Title)
		}
		m.pending = all[m.cursor]
		return m.beginInput(inputLinkTitle, m.pending.Title)
	case SectionTheme:
		m.applyTheme(themeItem(m.cursor), dir)
	}
	return m, nil
}

func (m Model) adjust(dir int) (tea.Model, tea.Cmd) {
	switch m.section {
	case SectionProfile:
		if profile.Fields()[m.cursor] == profile.FieldSecondaryBg {
			current := m.page.Profile.Profile().SecondaryBg
			m.page.Profile.UpdateSecondaryBg(nextBackground(current, dir))
		}
	case SectionTheme:
		if themeItem(m.cursor) != themeReset {
			m.applyTheme(themeItem(m.cursor), dir)
		}
	}
	return m, nil
}

func (m *Model) applyTheme(item themeItem, dir int) {
	store := m.page.Theme
	cur := store.Settings()

	var err error
	switch item {
	case themeColor:
		err = store.UpdateColorTheme(cycle(theme.ThemeNames(), cur.ColorTheme, dir))
	case themePattern:
		err = store.UpdatePattern(cycle(theme.Patterns(), cur.Pattern, dir))
	case themeFont:
		err = store.UpdateFont(cycle(theme.Fonts(), cur.Font, dir))
	case themeRadius:
		err = store.UpdateBorderRadius(cycle(theme.BorderRadii(), cur.BorderRadius, dir))
	case themeShadow:
		store.ToggleShadow(!cur.Effects.Shadow)
	case themeGlass:
		store.ToggleGlassmorphism(!cur.Effects.Glassmorphism)
	case themeOpacity:
		next := math.Round((cur.Effects.CardOpacity+0.1*float64(dir))*10) / 10
		err = store.UpdateCardOpacity(math.Max(0, math.Min(1, next)))
	case themeSpeed:
		err = store.UpdateAnimationSpeed(math.Max(50, cur.Effects.AnimationSpeed+50*float64(dir)))
	case themeAppearance:
		next := theme.AppearanceDark
		if store.Appearance() == theme.AppearanceDark {
			next = theme.AppearanceLight
		}
		err = store.SetAppearance(next)
	case themeReset:
		store.ResetToDefaults()
		m.notices.Notify(notice.Info("Theme reset", "Theme settings were restored to their defaults"))
	}
	if err != nil {
		m.notices.Notify(notice.Error("Error", pkgerrors.UserMessage(err)))
	}
}

func (m Model) beginInput(target inputTarget, value string) (tea.Model, tea.Cmd) {
	m.target = target
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Placeholder = placeholderFor(target, m.field)
	cmd := m.input.Focus()
	return m, cmd
}

func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.endInput()
		return m, nil
	case tea.KeyEnter:
		return m.submitInput(m.input.Value())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submitInput(value string) (tea.Model, tea.Cmd) {
	target := m.target
	m.endInput()

	switch target {
	case inputProfileField:
		if err := m.page.Profile.UpdateField(m.field, value); err != nil {
			m.notices.Notify(notice.Error("Error", pkgerrors.UserMessage(err)))
		}
	case inputNewTitle:
		m.page.Links.HandleDraftChange(links.DraftTitle, value)
		return m.beginInput(inputNewURL, m.page.Links.Draft().URL)
	case inputNewURL:
		m.page.Links.HandleDraftChange(links.DraftURL, value)
		if _, err := m.page.Links.SubmitDraft(); err == nil {
			m.cursor = m.page.Links.Len() - 1
		}
	case inputLinkTitle:
		m.pending.Title = value
		return m.beginInput(inputLinkURL, m.pending.URL)
	case inputLinkURL:
		m.pending.URL = value
		_ = m.page.Links.UpdateLink(m.pending)
		m.pending = links.Link{}
	}
	return m, nil
}

func (m *Model) endInput() {
	m.target = inputNone
	m.input.Blur()
	m.input.SetValue("")
}

func nextBackground(current string, dir int) string {
	opts := profile.BackgroundOptions()
	tokens := make([]string, len(opts))
	for i, o := range opts {
		tokens[i] = o.Token
	}
	return cycle(tokens, current, dir)
}

func profileValue(p profile.Profile, field profile.Field) string {
	switch field {
	case profile.FieldName:
		return p.Name
	case profile.FieldBio:
		return p.Bio
	case profile.FieldAvatarURL:
		return p.AvatarURL
	}
	return ""
}

func placeholderFor(target inputTarget, field profile.Field) string {
	switch target {
	case inputProfileField:
		return string(field)
	case inputNewTitle, inputLinkTitle:
		return "Link title"
	case inputNewURL, inputLinkURL:
		return "https://example.com"
	}
	return ""
}
