// Package page composes the profile, links and theme state behind the
// two-mode page: View shows the card, Edit shows its back side.
package page

import (
	"sync"

	"github.com/alexisbeaulieu97/linkpage/internal/links"
	"github.com/alexisbeaulieu97/linkpage/internal/logger"
	"github.com/alexisbeaulieu97/linkpage/internal/notice"
	"github.com/alexisbeaulieu97/linkpage/internal/profile"
	"github.com/alexisbeaulieu97/linkpage/internal/theme"
)

// Mode is the page mode.
type Mode int

const (
	ModeView Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "view"
}

// Page holds the managers and the current mode.
type Page struct {
	Profile *profile.Manager
	Links   *links.Manager
	Theme   *theme.Store

	mu       sync.Mutex
	mode     Mode
	notifier notice.Notifier
	log      *logger.Logger
}

// Option customises a Page.
type Option func(*Page)

// WithNotifier routes page-level notices to n.
func WithNotifier(n notice.Notifier) Option {
	return func(p *Page) {
		if n != nil {
			p.notifier = n
		}
	}
}

// WithLogger sets the page logger.
func WithLogger(l *logger.Logger) Option {
	return func(p *Page) {
		p.log = l
	}
}

// New returns a page in View mode.
func New(prof *profile.Manager, ls *links.Manager, th *theme.Store, opts ...Option) *Page {
	p := &Page{
		Profile:  prof,
		Links:    ls,
		Theme:    th,
		mode:     ModeView,
		notifier: notice.Discard,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Mode returns the active mode.
func (p *Page) Mode() Mode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode
}

// Editing reports whether the page is in Edit mode.
func (p *Page) Editing() bool {
	return p.Mode() == ModeEdit
}

// ToggleEditMode flips between View and Edit. Leaving Edit commits the
// profile and announces the save.
func (p *Page) ToggleEditMode() Mode {
	p.mu.Lock()
	leaving := p.mode == ModeEdit
	if leaving {
		p.mode = ModeView
	} else {
		p.mode = ModeEdit
	}
	next := p.mode
	p.mu.Unlock()

	if leaving {
		if p.Profile != nil {
			p.Profile.CommitChanges()
		}
		p.notifier.Notify(notice.Info("Changes saved", "Your profile has been updated"))
	}
	p.log.Debug("page mode changed", "mode", next.String())
	return next
}
