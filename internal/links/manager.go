package links

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/alexisbeaulieu97/linkpage/internal/logger"
	"github.com/alexisbeaulieu97/linkpage/internal/notice"
	"github.com/alexisbeaulieu97/linkpage/internal/validation"
	pkgerrors "github.com/alexisbeaulieu97/linkpage/pkg/errors"
)

// User-facing validation messages.
const (
	MsgMissingFields = "Please enter both a title and URL"
	MsgInvalidURL    = "Please enter a valid URL including http:// or https://"
	MsgMissingTitle  = "Please enter a title"
)

// IDGenerator produces link identifiers.
type IDGenerator func() string

// Option customises a Manager.
type Option func(*Manager)

// WithNotifier routes user notices to n.
func WithNotifier(n notice.Notifier) Option {
	return func(m *Manager) {
		if n != nil {
			m.notifier = n
		}
	}
}

// WithLogger sets the manager's logger.
func WithLogger(l *logger.Logger) Option {
	return func(m *Manager) {
		m.log = l
	}
}

// WithIDGenerator replaces the ULID generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(m *Manager) {
		if gen != nil {
			m.newID = gen
		}
	}
}

// NewULIDGenerator returns a generator of time-ordered ULIDs. IDs from one
// generator are strictly increasing even within the same millisecond.
func NewULIDGenerator(entropy io.Reader) IDGenerator {
	if entropy == nil {
		entropy = rand.Reader
	}
	mono := ulid.Monotonic(entropy, 0)
	var mu sync.Mutex
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		return ulid.MustNew(ulid.Timestamp(time.Now()), mono).String()
	}
}

// Manager owns the ordered link collection and the pending draft.
type Manager struct {
	mu       sync.RWMutex
	links    []Link
	draft    Draft
	newID    IDGenerator
	notifier notice.Notifier
	log      *logger.Logger

	// placeholders holds seed ids that started without a URL. Only these
	// may have their URL cleared by UpdateLink.
	placeholders map[string]struct{}
}

// NewManager seeds the collection with initial. Seed IDs must be unique and
// non-empty.
func NewManager(initial []Link, opts ...Option) (*Manager, error) {
	m := &Manager{
		notifier:     notice.Discard,
		placeholders: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.newID == nil {
		m.newID = NewULIDGenerator(nil)
	}

	seen := make(map[string]struct{}, len(initial))
	for i, link := range initial {
		if link.ID == "" {
			return nil, pkgerrors.NewValidationError(fmt.Sprintf("links[%d].id", i), "link id must not be empty", nil)
		}
		if _, dup := seen[link.ID]; dup {
			return nil, pkgerrors.NewValidationError(fmt.Sprintf("links[%d].id", i), fmt.Sprintf("duplicate link id %q", link.ID), nil)
		}
		seen[link.ID] = struct{}{}
		if strings.TrimSpace(link.URL) == "" {
			m.placeholders[link.ID] = struct{}{}
		}
	}
	m.links = append([]Link(nil), initial...)
	return m, nil
}

// Links returns a copy of the collection in insertion order.
func (m *Manager) Links() []Link {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Link(nil), m.links...)
}

// Len returns the number of links.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.links)
}

// Get returns the link with the given id.
func (m *Manager) Get(id string) (Link, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i := m.indexOf(id); i >= 0 {
		return m.links[i], true
	}
	return Link{}, false
}

// Draft returns the pending new-link input.
func (m *Manager) Draft() Draft {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.draft
}

// HandleDraftChange assigns one draft field. Nothing is validated until the
// draft is submitted.
func (m *Manager) HandleDraftChange(field DraftField, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch field {
	case DraftTitle:
		m.draft.Title = value
	case DraftURL:
		m.draft.URL = value
	}
}

// SubmitDraft adds the pending draft.
func (m *Manager) SubmitDraft() (Link, error) {
	return m.AddLink(m.Draft())
}

// AddLink validates draft and appends it under a fresh id. On success the
// pending draft is cleared.
func (m *Manager) AddLink(draft Draft) (Link, error) {
	draft = draft.trimmed()
	if err := validateDraft(draft); err != nil {
		m.reject(err)
		return Link{}, err
	}

	m.mu.Lock()
	link := Link{ID: m.uniqueID(), Title: draft.Title, URL: draft.URL}
	m.links = append(m.links, link)
	m.draft = Draft{}
	m.mu.Unlock()

	m.log.Debug("link added", "id", link.ID, "url", link.URL)
	m.notifier.Notify(notice.Info("Link added", "Your new link has been added successfully"))
	return link, nil
}

// DeleteLink removes the link with id. Unknown ids are ignored.
func (m *Manager) DeleteLink(id string) {
	m.mu.Lock()
	if i := m.indexOf(id); i >= 0 {
		m.links = append(m.links[:i:i], m.links[i+1:]...)
		delete(m.placeholders, id)
	}
	m.mu.Unlock()

	m.notifier.Notify(notice.Info("Link deleted", "The link has been removed"))
}

// UpdateLink replaces the link whose id matches link.ID in place. Unknown ids
// are ignored. Only seeded placeholders may be left without a URL.
func (m *Manager) UpdateLink(link Link) error {
	link = link.trimmed()

	m.mu.Lock()
	i := m.indexOf(link.ID)
	if i < 0 {
		m.mu.Unlock()
		m.log.Debug("update for unknown link ignored", "id", link.ID)
		m.notifier.Notify(notice.Info("Link updated", "Your link has been updated successfully"))
		return nil
	}
	_, placeholder := m.placeholders[link.ID]
	if err := validateLink(link, placeholder); err != nil {
		m.mu.Unlock()
		m.reject(err)
		return err
	}
	m.links[i] = link
	m.mu.Unlock()

	m.notifier.Notify(notice.Info("Link updated", "Your link has been updated successfully"))
	return nil
}

// indexOf must be called with m.mu held.
func (m *Manager) indexOf(id string) int {
	for i, l := range m.links {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// uniqueID must be called with m.mu held.
func (m *Manager) uniqueID() string {
	base := m.newID()
	if base == "" {
		base = "link"
	}
	id := base
	for n := 2; m.indexOf(id) >= 0; n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	return id
}

func (m *Manager) reject(err error) {
	title := "Error"
	if pkgerrors.UserMessage(err) == MsgInvalidURL {
		title = "Invalid URL"
	}
	m.notifier.Notify(notice.Error(title, pkgerrors.UserMessage(err)))
}

func validateDraft(d Draft) error {
	err := validation.Struct(d)
	if err == nil {
		return nil
	}
	field := "title"
	if d.Title != "" {
		field = "url"
	}
	switch validation.FailedTag(err) {
	case "absurl":
		return pkgerrors.NewValidationError("url", MsgInvalidURL, err)
	default:
		return pkgerrors.NewValidationError(field, MsgMissingFields, err)
	}
}

func validateLink(l Link, placeholder bool) error {
	var err error
	if placeholder {
		err = validation.Struct(l)
	} else {
		err = validation.Struct(Draft{Title: l.Title, URL: l.URL})
	}
	if err == nil {
		return nil
	}
	if l.Title == "" {
		return pkgerrors.NewValidationError("title", MsgMissingTitle, err)
	}
	return pkgerrors.NewValidationError("url", MsgInvalidURL, err)
}
