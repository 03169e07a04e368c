package palette

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrInvalidColorFormat is returned for '#'-prefixed tokens that are not 6 or 8 hex digits.
	ErrInvalidColorFormat = errors.New("invalid color format")

	// ErrUnknownColorName is returned for names missing from the catalog.
	ErrUnknownColorName = errors.New("unknown color name")
)

// Transparent is the token ResolveUnit maps to "no color".
const Transparent = "transparent"

// Color is an 8-bit RGBA value.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// NRGBA converts c to the standard library's non-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Hex renders c as "#RRGGBB", or "#RRGGBBAA" when not fully opaque.
func (c Color) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// Unit scales the RGB components of c to [0,1]. Alpha is dropped.
func (c Color) Unit() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// catalog holds the named colors. Alpha is always opaque.
var catalog = map[string]Color{
	"white":      {255, 255, 255, 255},
	"black":      {0, 0, 0, 255},
	"red":        {255, 0, 0, 255},
	"dark-red":   {139, 0, 0, 255},
	"green":      {0, 128, 0, 255},
	"dark-green": {0, 100, 0, 255},
	"blue":       {0, 0, 255, 255},
	"dark-blue":  {0, 0, 139, 255},
	"navy":       {0, 0, 128, 255},
	"yellow":     {255, 255, 0, 255},
	"orange":     {255, 165, 0, 255},
	"purple":     {128, 0, 128, 255},
	"pink":       {255, 192, 203, 255},
	"gray":       {128, 128, 128, 255},
	"grey":       {128, 128, 128, 255},
	"light-gray": {211, 211, 211, 255},
	"light-grey": {211, 211, 211, 255},
	"dark-gray":  {169, 169, 169, 255},
	"dark-grey":  {169, 169, 169, 255},
	"brown":      {165, 42, 42, 255},
	"beige":      {245, 245, 220, 255},
	"cream":      {255, 253, 208, 255},
}

// Names returns the catalog names in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve maps a hex string or catalog name to an 8-bit color.
func Resolve(token string) (Color, error) {
	if strings.HasPrefix(token, "#") {
		return parseHex(token)
	}

	if c, ok := catalog[strings.ToLower(token)]; ok {
		return c, nil
	}

	return Color{}, fmt.Errorf("%w %q: available colors are %s, or hex #RRGGBB / #RRGGBBAA",
		ErrUnknownColorName, token, strings.Join(Names(), ", "))
}

// ResolveUnit is the unit-interval variant of Resolve used for 3D material
// and world colors. The "transparent" token (any case) yields a nil color.
func ResolveUnit(token string) (*colorful.Color, error) {
	if strings.EqualFold(token, Transparent) {
		return nil, nil
	}

	c, err := Resolve(token)
	if err != nil {
		return nil, err
	}

	unit := c.Unit()
	return &unit, nil
}

func parseHex(token string) (Color, error) {
	hex := strings.TrimPrefix(token, "#")

	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("%w %q: expected #RRGGBB or #RRGGBBAA", ErrInvalidColorFormat, token)
	}

	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w %q: expected #RRGGBB or #RRGGBBAA", ErrInvalidColorFormat, token)
	}

	if len(hex) == 6 {
		return Color{R: uint8(val >> 16), G: uint8(val >> 8), B: uint8(val), A: 255}, nil
	}
	return Color{R: uint8(val >> 24), G: uint8(val >> 16), B: uint8(val >> 8), A: uint8(val)}, nil
}
