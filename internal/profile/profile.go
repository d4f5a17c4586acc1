// Package profile owns the single profile record shown at the top of the
// page.
package profile

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/linkpage/internal/logger"
	"github.com/alexisbeaulieu97/linkpage/internal/notice"
	pkgerrors "github.com/alexisbeaulieu97/linkpage/pkg/errors"
)

// BackgroundPrefix marks the class family the background token belongs to.
const BackgroundPrefix = "bg-"

// Profile is the user's identity card.
type Profile struct {
	Name        string `json:"name" yaml:"name"`
	Bio         string `json:"bio" yaml:"bio"`
	AvatarURL   string `json:"avatarUrl" yaml:"avatarUrl"`
	SecondaryBg string `json:"secondaryBg" yaml:"secondaryBg"`
	Verified    bool   `json:"verified" yaml:"verified"`
}

// Field names a Profile field.
type Field string

const (
	FieldName        Field = "name"
	FieldBio         Field = "bio"
	FieldAvatarURL   Field = "avatarUrl"
	FieldSecondaryBg Field = "secondaryBg"
	FieldVerified    Field = "verified"
)

// Fields lists the editable fields in form order.
func Fields() []Field {
	return []Field{FieldName, FieldBio, FieldAvatarURL, FieldSecondaryBg, FieldVerified}
}

// BackgroundOption is one selectable background colour.
type BackgroundOption struct {
	Token string
	Label string
}

var backgroundOptions = []BackgroundOption{
	{"bg-secondary", "Default"},
	{"bg-slate-100", "Slate"},
	{"bg-pink-50", "Pink"},
	{"bg-green-50", "Green"},
	{"bg-purple-50", "Purple"},
	{"bg-orange-50", "Orange"},
	{"bg-blue-50", "Blue"},
	{"bg-yellow-50", "Yellow"},
}

// BackgroundOptions lists the background colours offered to the user.
func BackgroundOptions() []BackgroundOption {
	return append([]BackgroundOption(nil), backgroundOptions...)
}

// Surface is the region the background class is applied to.
type Surface interface {
	SwapMainClassPrefix(prefix, token string)
}

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

// Manager owns the profile record.
type Manager struct {
	mu       sync.RWMutex
	profile  Profile
	target   Surface
	notifier notice.Notifier
	log      *logger.Logger
}

// NewManager starts from initial and applies its background class to target.
func NewManager(initial Profile, target Surface, opts ...Option) *Manager {
	m := &Manager{
		profile:  initial,
		target:   target,
		notifier: notice.Discard,
	}
	for _, opt := range opts {
		opt(m)
	}
	if initial.SecondaryBg != "" {
		m.applyBackground(initial.SecondaryBg)
	}
	return m
}

// Profile returns a copy of the current record.
func (m *Manager) Profile() Profile {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.profile
}

// UpdateField assigns one field. Text fields are taken as is; verified must
// parse as a boolean.
func (m *Manager) UpdateField(field Field, value string) error {
	switch field {
	case FieldName:
		m.set(func(p *Profile) { p.Name = value })
	case FieldBio:
		m.set(func(p *Profile) { p.Bio = value })
	case FieldAvatarURL:
		m.set(func(p *Profile) { p.AvatarURL = value })
	case FieldSecondaryBg:
		m.UpdateSecondaryBg(value)
	case FieldVerified:
		verified, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return pkgerrors.NewValidationError(string(field), "verified must be true or false", err)
		}
		m.set(func(p *Profile) { p.Verified = verified })
	default:
		return pkgerrors.NewValidationError(string(field), fmt.Sprintf("unknown profile field %q", field), nil)
	}
	return nil
}

// ToggleVerified flips the verified badge.
func (m *Manager) ToggleVerified() {
	m.set(func(p *Profile) { p.Verified = !p.Verified })
}

// UpdateSecondaryBg stores token and swaps the background class on the
// surface. An empty token clears the background class.
func (m *Manager) UpdateSecondaryBg(token string) {
	m.set(func(p *Profile) { p.SecondaryBg = token })
	m.applyBackground(token)
}

// CommitChanges signals that the edit session was saved. Nothing is
// persisted.
func (m *Manager) CommitChanges() Profile {
	p := m.Profile()
	m.log.Debug("profile committed", "name", p.Name)
	m.notifier.Notify(notice.Info("Profile updated", "Your profile has been updated successfully"))
	return p
}

func (m *Manager) set(change func(*Profile)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	change(&m.profile)
}

func (m *Manager) applyBackground(token string) {
	if m.target == nil {
		return
	}
	m.target.SwapMainClassPrefix(BackgroundPrefix, token)
}
