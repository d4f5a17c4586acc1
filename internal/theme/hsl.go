package theme

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// HSL is a parsed colour. Hue is in degrees, saturation and lightness are
// fractions in [0,1].
type HSL struct {
	H float64
	S float64
	L float64
}

// ParseHSL accepts "H S% L%" component strings, optionally wrapped in
// hsl(...) and optionally comma separated.
func ParseHSL(raw string) (HSL, error) {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(strings.ToLower(s), "hsl(") && strings.HasSuffix(s, ")") {
		s = s[4 : len(s)-1]
	}
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(fields) != 3 {
		return HSL{}, fmt.Errorf("hsl %q: want 3 components, got %d", raw, len(fields))
	}

	h, err := strconv.ParseFloat(strings.TrimSuffix(fields[0], "deg"), 64)
	if err != nil {
		return HSL{}, fmt.Errorf("hsl %q: hue: %w", raw, err)
	}
	sat, err := parsePercent(fields[1])
	if err != nil {
		return HSL{}, fmt.Errorf("hsl %q: saturation: %w", raw, err)
	}
	light, err := parsePercent(fields[2])
	if err != nil {
		return HSL{}, fmt.Errorf("hsl %q: lightness: %w", raw, err)
	}

	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return HSL{H: h, S: sat, L: light}, nil
}

func parsePercent(field string) (float64, error) {
	if !strings.HasSuffix(field, "%") {
		return 0, fmt.Errorf("%q is not a percentage", field)
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(field, "%"), 64)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 100 {
		return 0, fmt.Errorf("%q out of range", field)
	}
	return v / 100, nil
}

func (c HSL) color() colorful.Color {
	return colorful.Hsl(c.H, c.S, c.L)
}

// RGB returns 8-bit channel values.
func (c HSL) RGB() (r, g, b uint8) {
	return c.color().Clamped().RGB255()
}

// Hex returns the colour as #rrggbb.
func (c HSL) Hex() string {
	return c.color().Clamped().Hex()
}

// Components formats the colour back into "H S% L%" form.
func (c HSL) Components() string {
	return fmt.Sprintf("%s %s%% %s%%", formatNumber(c.H), formatNumber(c.S*100), formatNumber(c.L*100))
}

// HexOf converts an HSL component string to #rrggbb, returning "" when the
// input does not parse.
func HexOf(components string) string {
	c, err := ParseHSL(components)
	if err != nil {
		return ""
	}
	return c.Hex()
}

// FromHex converts a #rrggbb colour into HSL.
func FromHex(hex string) (HSL, error) {
	col, err := colorful.Hex(hex)
	if err != nil {
		return HSL{}, err
	}
	h, s, l := col.Hsl()
	return HSL{H: h, S: s, L: l}, nil
}

// formatNumber prints the shortest decimal form, so 1 renders as "1" and
// 0.5 as "0.5".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
