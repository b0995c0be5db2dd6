package models

import (
	"fmt"
	"strings"

	dErrors "cmbridge/pkg/domain-errors"
)

// Color is the platform-neutral color representation handed to the native
// render layer. Callers supply colors as CSS-style names or hex strings;
// resolution happens at the normalization boundary so unresolvable values
// fail before anything crosses the bridge.
type Color struct {
	Raw string // as supplied by the caller

	R, G, B, A uint8
	resolved   bool
}

// namedColors covers the names the native SDKs accept for layer backgrounds.
var namedColors = map[string][3]uint8{
	"black": {0x00, 0x00, 0x00},
	"white": {0xff, 0xff, 0xff},
	"gray":  {0x80, 0x80, 0x80},
	"red":   {0xff, 0x00, 0x00},
	"green": {0x00, 0xff, 0x00},
	"blue":  {0x00, 0x00, 0xff},
	"clear": {0x00, 0x00, 0x00},
}

// NamedColor builds an unresolved color from a name or hex string. Resolution
// is deferred to the normalizer.
func NamedColor(raw string) *Color {
	return &Color{Raw: raw}
}

// Black is the default dimmed-background color.
func Black() Color {
	return Color{Raw: "black", A: 0xff, resolved: true}
}

// Resolved reports whether the color has been mapped to channel values.
func (c Color) Resolved() bool {
	return c.resolved
}

// Resolve maps the raw value to RGBA channels. Accepted forms: a known color
// name, #RGB, #RRGGBB, or #RRGGBBAA. Anything else is a caller error.
func (c Color) Resolve() (Color, error) {
	raw := strings.TrimSpace(strings.ToLower(c.Raw))
	if raw == "" {
		return Color{}, dErrors.New(dErrors.CodeValidation, "empty color value")
	}

	if ch, ok := namedColors[raw]; ok {
		alpha := uint8(0xff)
		if raw == "clear" {
			alpha = 0
		}
		return Color{Raw: c.Raw, R: ch[0], G: ch[1], B: ch[2], A: alpha, resolved: true}, nil
	}

	if strings.HasPrefix(raw, "#") {
		return parseHexColor(c.Raw, raw[1:])
	}

	return Color{}, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unresolvable color: %q", c.Raw))
}

func parseHexColor(raw, hex string) (Color, error) {
	var r, g, b, a uint8
	a = 0xff
	switch len(hex) {
	case 3:
		digits, err := hexDigits(raw, hex)
		if err != nil {
			return Color{}, err
		}
		r = digits[0]*16 + digits[0]
		g = digits[1]*16 + digits[1]
		b = digits[2]*16 + digits[2]
	case 6, 8:
		digits, err := hexDigits(raw, hex)
		if err != nil {
			return Color{}, err
		}
		r = digits[0]*16 + digits[1]
		g = digits[2]*16 + digits[3]
		b = digits[4]*16 + digits[5]
		if len(hex) == 8 {
			a = digits[6]*16 + digits[7]
		}
	default:
		return Color{}, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unresolvable color: %q", raw))
	}
	return Color{Raw: raw, R: r, G: g, B: b, A: a, resolved: true}, nil
}

func hexDigits(raw, hex string) ([]uint8, error) {
	digits := make([]uint8, len(hex))
	for i := 0; i < len(hex); i++ {
		switch ch := hex[i]; {
		case ch >= '0' && ch <= '9':
			digits[i] = ch - '0'
		case ch >= 'a' && ch <= 'f':
			digits[i] = ch - 'a' + 10
		default:
			return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unresolvable color: %q", raw))
		}
	}
	return digits, nil
}

// String returns the caller-supplied form for logging.
func (c Color) String() string {
	return c.Raw
}

// MarshalYAML and UnmarshalYAML keep colors as plain strings in config files.
func (c Color) MarshalYAML() (any, error) {
	return c.Raw, nil
}

func (c *Color) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	c.Raw = raw
	c.resolved = false
	return nil
}

// MarshalJSON and UnmarshalJSON mirror the YAML representation.
func (c Color) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", c.Raw)), nil
}

func (c *Color) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	c.Raw = raw
	c.resolved = false
	return nil
}
