// Package links owns the ordered collection of outbound links shown on the
// page.
package links

import "strings"

// Link is one outbound link. Seeded placeholder links may leave URL empty;
// links added by the user always carry an absolute URL.
type Link struct {
	ID    string `json:"id" yaml:"id" validate:"required"`
	Title string `json:"title" yaml:"title" validate:"notblank"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty" validate:"omitempty,absurl"`
}

// Draft is the pending input for a new link.
type Draft struct {
	Title string `json:"title" validate:"notblank"`
	URL   string `json:"url" validate:"notblank,absurl"`
}

// DraftField names a Draft field for HandleDraftChange.
type DraftField string

const (
	DraftTitle DraftField = "title"
	DraftURL   DraftField = "url"
)

func (d Draft) trimmed() Draft {
	return Draft{Title: strings.TrimSpace(d.Title), URL: strings.TrimSpace(d.URL)}
}

func (l Link) trimmed() Link {
	l.Title = strings.TrimSpace(l.Title)
	l.URL = strings.TrimSpace(l.URL)
	return l
}
