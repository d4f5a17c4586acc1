package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/linkpage/internal/links"
	"github.com/alexisbeaulieu97/linkpage/internal/profile"
	"github.com/alexisbeaulieu97/linkpage/internal/validation"
	pkgerrors "github.com/alexisbeaulieu97/linkpage/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Seed is the initial page content.
type Seed struct {
	Profile profile.Profile `yaml:"profile" json:"profile"`
	Links   []links.Link    `yaml:"links" json:"links" validate:"dive"`
}

// DefaultSeed returns the built-in page content. The GitHub entry is a
// placeholder without a URL.
func DefaultSeed() Seed {
	return Seed{
		Profile: profile.Profile{
			Name:        "Your Name",
			Bio:         "Designer and engineer. I like building small tools that feel good to use.",
			AvatarURL:   "https://github.com/identicons/linkpage.png",
			SecondaryBg: "bg-secondary",
			Verified:    true,
		},
		Links: []links.Link{
			{ID: "1", Title: "Personal Website", URL: "https://www.example.com/"},
			{ID: "2", Title: "X / Twitter", URL: "https://x.com/"},
			{ID: "3", Title: "GitHub"},
			{ID: "4", Title: "LinkedIn", URL: "https://www.linkedin.com/"},
		},
	}
}

// ParseSeed loads a seed file from disk and validates it.
func ParseSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.NewParseError(path, 0, err)
	}
	return DecodeSeed(path, data)
}

// DecodeSeed parses YAML seed content. source names the input in errors.
func DecodeSeed(source string, data []byte) (*Seed, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var seed Seed
	if err := dec.Decode(&seed); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, pkgerrors.NewParseError(source, 0, errors.New("seed is empty"))
		}
		return nil, pkgerrors.NewParseError(source, extractLine(err), err)
	}

	if err := ValidateSeed(&seed); err != nil {
		return nil, err
	}
	return &seed, nil
}

// ValidateSeed checks link fields and id uniqueness.
func ValidateSeed(seed *Seed) error {
	if err := validation.Struct(seed); err != nil {
		return err
	}

	seen := make(map[string]int, len(seed.Links))
	for i, link := range seed.Links {
		if first, dup := seen[link.ID]; dup {
			return pkgerrors.NewValidationError(
				fmt.Sprintf("links[%d].id", i),
				fmt.Sprintf("duplicate link id %q (first used by links[%d])", link.ID, first),
				nil,
			)
		}
		seen[link.ID] = i
	}
	return nil
}

// MarshalSeed renders seed as YAML.
func MarshalSeed(seed Seed) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(seed); err != nil {
		return nil, fmt.Errorf("encode seed: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode seed: %w", err)
	}
	return buf.Bytes(), nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
