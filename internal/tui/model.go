package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/linkpage/internal/links"
	"github.com/alexisbeaulieu97/linkpage/internal/notice"
	"github.com/alexisbeaulieu97/linkpage/internal/page"
	"github.com/alexisbeaulieu97/linkpage/internal/profile"
)

// flipHalf is the time from the start of a flip to the mode change; the
// flip finishes after the same again.
const flipHalf = 200 * time.Millisecond

// Section is a tab on the back of the card.
type Section int

const (
	SectionProfile Section = iota
	SectionLinks
	SectionTheme
)

var sectionNames = []string{"Profile", "Links", "Theme"}

func (s Section) String() string {
	if int(s) < len(sectionNames) {
		return sectionNames[s]
	}
	return "?"
}

type themeItem int

const (
	themeColor themeItem = iota
	themePattern
	themeFont
	themeRadius
	themeShadow
	themeGlass
	themeOpacity
	themeSpeed
	themeAppearance
	themeReset
	themeItemCount
)

type inputTarget int

const (
	inputNone inputTarget = iota
	inputProfileField
	inputNewTitle
	inputNewURL
	inputLinkTitle
	inputLinkURL
)

type flipMidMsg struct{}

type flipDoneMsg struct{}

// Model is the bubbletea model for the page: the card front in View mode and
// the tabbed editor in Edit mode.
type Model struct {
	page    *page.Page
	notices *notice.Recorder

	section  Section
	cursor   int
	flipping bool

	input   textinput.Model
	target  inputTarget
	field   profile.Field
	pending links.Link

	width    int
	quitting bool
}

// NewModel builds a model over p. notices must be the recorder the page's
// managers notify, so the status line can show the latest message.
func NewModel(p *page.Page, notices *notice.Recorder) Model {
	ti := textinput.New()
	ti.CharLimit = 512
	ti.Width = 40
	ti.Prompt = "› "

	if notices == nil {
		notices = &notice.Recorder{}
	}

	return Model{
		page:    p,
		notices: notices,
		input:   ti,
	}
}

// Init starts the program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Mode returns the page mode.
func (m Model) Mode() page.Mode {
	return m.page.Mode()
}

// Flipping reports whether a flip animation is in progress.
func (m Model) Flipping() bool {
	return m.flipping
}

// Section returns the active editor tab.
func (m Model) Section() Section {
	return m.section
}

// Inputting reports whether a text field has focus.
func (m Model) Inputting() bool {
	return m.target != inputNone
}

func (m Model) itemCount() int {
	switch m.section {
	case SectionProfile:
		return len(profile.Fields())
	case SectionLinks:
		return m.page.Links.Len() + 1
	case SectionTheme:
		return int(themeItemCount)
	}
	return 0
}

func (m *Model) clampCursor() {
	if n := m.itemCount(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func cycle[T comparable](items []T, current T, dir int) T {
	idx := 0
	for i, v := range items {
		if v == current {
			idx = i
			break
		}
	}
	n := len(items)
	return items[((idx+dir)%n+n)%n]
}
