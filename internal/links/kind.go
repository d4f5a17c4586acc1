package links

import (
	"net/url"
	"strings"
)

// Kind classifies a link by its destination, for choosing an icon.
type Kind string

const (
	KindTwitter  Kind = "twitter"
	KindGitHub   Kind = "github"
	KindLinkedIn Kind = "linkedin"
	KindGeneric  Kind = "generic"
)

var kindDomains = []struct {
	kind    Kind
	domains []string
}{
	{KindTwitter, []string{"twitter.com", "x.com"}},
	{KindGitHub, []string{"github.com"}},
	{KindLinkedIn, []string{"linkedin.com"}},
}

// KindOf returns the kind of raw, matching the host and its parent domains.
// Anything unparseable is generic.
func KindOf(raw string) Kind {
	host := hostOf(raw)
	if host == "" {
		return KindGeneric
	}
	for _, entry := range kindDomains {
		for _, domain := range entry.domains {
			if host == domain || strings.HasSuffix(host, "."+domain) {
				return entry.kind
			}
		}
	}
	return KindGeneric
}

func hostOf(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return strings.TrimSuffix(strings.ToLower(u.Hostname()), ".")
}
