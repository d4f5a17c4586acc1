package theme

import "strings"

// DefaultThemeName is the registry key every unknown name resolves to.
const DefaultThemeName = "default"

// Colors is a registry entry: HSL component strings ("H S% L%") ready to be
// wrapped in hsl(...) by the presentation layer.
type Colors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

type registryEntry struct {
	name    string
	display string
	colors  Colors
}

// registry is ordered for display; lookups go through registryIndex.
var registry = []registryEntry{
	{"default", "Default", Colors{Primary: "0 0% 9%", Secondary: "0 0% 96.1%", Accent: "0 0% 96.1%"}},
	{"rose", "Rose", Colors{Primary: "347 77% 50%", Secondary: "355 100% 97%", Accent: "347 77% 92%"}},
	{"green", "Green", Colors{Primary: "160 84% 39%", Secondary: "150 100% 96%", Accent: "160 84% 92%"}},
	{"purple", "Purple", Colors{Primary: "259 94% 51%", Secondary: "270 100% 98%", Accent: "259 94% 93%"}},
	{"orange", "Orange", Colors{Primary: "24 94% 53%", Secondary: "30 100% 97%", Accent: "24 94% 93%"}},
	{"blue", "Blue", Colors{Primary: "217 91% 60%", Secondary: "213 100% 97%", Accent: "217 91% 93%"}},
	{"teal", "Teal", Colors{Primary: "173 80% 40%", Secondary: "180 100% 97%", Accent: "173 80% 93%"}},
	{"pink", "Pink", Colors{Primary: "330 81% 60%", Secondary: "327 100% 97%", Accent: "330 81% 93%"}},
}

var registryIndex = func() map[string]int {
	idx := make(map[string]int, len(registry))
	for i, e := range registry {
		idx[e.name] = i
	}
	return idx
}()

func normalizeThemeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// LookupColors returns the entry for name and whether it exists.
func LookupColors(name string) (Colors, bool) {
	i, ok := registryIndex[normalizeThemeName(name)]
	if !ok {
		return Colors{}, false
	}
	return registry[i].colors, true
}

// GetThemeColors returns the entry for name, or the default entry when the
// name is unknown.
func GetThemeColors(name string) Colors {
	if c, ok := LookupColors(name); ok {
		return c
	}
	return registry[registryIndex[DefaultThemeName]].colors
}

// IsKnownTheme reports whether name is a registry key.
func IsKnownTheme(name string) bool {
	_, ok := LookupColors(name)
	return ok
}

// ThemeNames lists registry keys in display order.
func ThemeNames() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	return names
}

// DisplayName returns the human label for a registry key.
func DisplayName(name string) string {
	i, ok := registryIndex[normalizeThemeName(name)]
	if !ok {
		return registry[registryIndex[DefaultThemeName]].display
	}
	return registry[i].display
}
