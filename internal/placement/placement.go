// Package placement maps a position and size, or a named preset, to the
// geometry the compositor needs: which panel, how much margin, how large,
// and how far down the printable area the design is centered.
package placement

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ironsheep/tshirt-compose/internal/layout"
)

// ErrUnknownPlacement is returned for unrecognized positions, sizes and presets.
var ErrUnknownPlacement = errors.New("unknown placement")

// Margin is the inset applied to every side of the target panel.
const Margin = 0.10

// Config is a fully resolved placement.
type Config struct {
	// Panel is the target surface, front or back.
	Panel layout.PanelName `json:"panel"`
	// Margin is the fraction of panel width/height trimmed from each side, in [0,1).
	Margin float64 `json:"margin"`
	// Scale is the design width as a fraction of printable width, in (0,1].
	Scale float64 `json:"scale_factor"`
	// VerticalOffset places the design center this fraction down the printable height.
	VerticalOffset float64 `json:"vertical_offset"`
}

type position struct {
	panel          layout.PanelName
	verticalOffset float64
}

// Positions in display order.
var positionOrder = []string{"chest", "dead-center", "back"}

var positions = map[string]position{
	"chest":       {panel: layout.Front, verticalOffset: 0.25},
	"dead-center": {panel: layout.Front, verticalOffset: 0.45},
	"back":        {panel: layout.Back, verticalOffset: 0.45},
}

// Sizes in display order.
var sizeOrder = []string{"small", "medium", "large"}

var sizes = map[string]float64{
	"small":  0.45,
	"medium": 0.55,
	"large":  0.65,
}

// DefaultSize is used when a position is given without a size.
const DefaultSize = "large"

// presets are written out literally; TestPresetsMatchPositionSize keeps
// them in step with FromPositionSize.
var presets = map[string]Config{
	"chest-small":        {Panel: layout.Front, Margin: 0.10, Scale: 0.45, VerticalOffset: 0.25},
	"chest-medium":       {Panel: layout.Front, Margin: 0.10, Scale: 0.55, VerticalOffset: 0.25},
	"chest-large":        {Panel: layout.Front, Margin: 0.10, Scale: 0.65, VerticalOffset: 0.25},
	"dead-center-small":  {Panel: layout.Front, Margin: 0.10, Scale: 0.45, VerticalOffset: 0.45},
	"dead-center-medium": {Panel: layout.Front, Margin: 0.10, Scale: 0.55, VerticalOffset: 0.45},
	"dead-center-large":  {Panel: layout.Front, Margin: 0.10, Scale: 0.65, VerticalOffset: 0.45},
	"back-small":         {Panel: layout.Back, Margin: 0.10, Scale: 0.45, VerticalOffset: 0.45},
	"back-medium":        {Panel: layout.Back, Margin: 0.10, Scale: 0.55, VerticalOffset: 0.45},
	"back-large":         {Panel: layout.Back, Margin: 0.10, Scale: 0.65, VerticalOffset: 0.45},
}

// Positions returns the valid position names.
func Positions() []string { return append([]string(nil), positionOrder...) }

// Sizes returns the valid size names.
func Sizes() []string { return append([]string(nil), sizeOrder...) }

// Presets returns the valid preset names, sorted.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetName joins a position and size into the matching preset name.
func PresetName(position, size string) string {
	return position + "-" + size
}

// FromPositionSize builds a Config from its two independent parts.
func FromPositionSize(pos, size string) (Config, error) {
	p, ok := positions[pos]
	if !ok {
		return Config{}, fmt.Errorf("%w: position %q, available positions: %s",
			ErrUnknownPlacement, pos, strings.Join(positionOrder, ", "))
	}

	scale, ok := sizes[size]
	if !ok {
		return Config{}, fmt.Errorf("%w: size %q, available sizes: %s",
			ErrUnknownPlacement, size, strings.Join(sizeOrder, ", "))
	}

	return Config{
		Panel:          p.panel,
		Margin:         Margin,
		Scale:          scale,
		VerticalOffset: p.verticalOffset,
	}, nil
}

// FromPreset looks up a precomputed Config by name, e.g. "chest-large".
func FromPreset(name string) (Config, error) {
	c, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: preset %q, available presets: %s",
			ErrUnknownPlacement, name, strings.Join(Presets(), ", "))
	}
	return c, nil
}
