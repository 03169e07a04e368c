// Package layout derives garment panel rectangles from template dimensions.
//
// Templates are flat PNG sheets showing every printable surface of a shirt.
// How those surfaces are arranged is described by a Layout; the compositor
// only ever sees the resulting Panels. Quad2x2 is the built-in layout and
// encodes a hard assumption about the template artwork:
//
//	+--------------+---------------+
//	| left sleeve  | right sleeve  |
//	+--------------+---------------+
//	| front panel  | back panel    |
//	+--------------+---------------+
//
// The split is at the exact integer midpoints (floor division for odd
// sizes). A template drawn any other way yields silently wrong placement
// under Quad2x2; register a different Layout for such templates.
package layout

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownLayout is returned by Lookup for unregistered layout names.
var ErrUnknownLayout = errors.New("unknown layout")

// Rect is a panel region in template pixel space. Start bounds are
// inclusive, end bounds exclusive.
type Rect struct {
	XStart int `json:"x_start"`
	XEnd   int `json:"x_end"`
	YStart int `json:"y_start"`
	YEnd   int `json:"y_end"`
}

// Width returns XEnd - XStart.
func (r Rect) Width() int { return r.XEnd - r.XStart }

// Height returns YEnd - YStart.
func (r Rect) Height() int { return r.YEnd - r.YStart }

// Empty reports whether the rect covers no pixels.
func (r Rect) Empty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// Contains reports whether pixel (x, y) falls inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.XStart && x < r.XEnd && y >= r.YStart && y < r.YEnd
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.XStart, r.YStart, r.XEnd, r.YEnd)
}

// PanelName identifies a garment surface.
type PanelName string

const (
	Front       PanelName = "front"
	Back        PanelName = "back"
	LeftSleeve  PanelName = "left_sleeve"
	RightSleeve PanelName = "right_sleeve"
)

// Panels holds the four surfaces of one template. Values are computed once
// per template and never mutated.
type Panels struct {
	TemplateWidth  int  `json:"template_width"`
	TemplateHeight int  `json:"template_height"`
	Front          Rect `json:"front_panel"`
	Back           Rect `json:"back_panel"`
	LeftSleeve     Rect `json:"left_sleeve"`
	RightSleeve    Rect `json:"right_sleeve"`
}

// Panel returns the rect for name.
func (p Panels) Panel(name PanelName) (Rect, error) {
	switch name {
	case Front:
		return p.Front, nil
	case Back:
		return p.Back, nil
	case LeftSleeve:
		return p.LeftSleeve, nil
	case RightSleeve:
		return p.RightSleeve, nil
	default:
		return Rect{}, fmt.Errorf("unknown panel %q", name)
	}
}

// Layout turns template dimensions into panel rectangles.
type Layout interface {
	Name() string
	Analyze(width, height int) Panels
}

// Quad2x2 splits the template into a 2x2 grid: sleeves on top, front
// bottom-left, back bottom-right.
type Quad2x2 struct{}

// Name implements Layout.
func (Quad2x2) Name() string { return "quad-2x2" }

// Analyze implements Layout.
func (Quad2x2) Analyze(width, height int) Panels {
	halfW := width / 2
	halfH := height / 2

	return Panels{
		TemplateWidth:  width,
		TemplateHeight: height,
		Front:          Rect{XStart: 0, XEnd: halfW, YStart: halfH, YEnd: height},
		Back:           Rect{XStart: halfW, XEnd: width, YStart: halfH, YEnd: height},
		LeftSleeve:     Rect{XStart: 0, XEnd: halfW, YStart: 0, YEnd: halfH},
		RightSleeve:    Rect{XStart: halfW, XEnd: width, YStart: 0, YEnd: halfH},
	}
}

// Default is the layout used when none is configured.
var Default Layout = Quad2x2{}

var registry = map[string]Layout{
	Default.Name(): Default,
}

// Register adds l to the set of layouts Lookup can find, replacing any
// layout with the same name.
func Register(l Layout) {
	registry[l.Name()] = l
}

// Names returns the registered layout names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup finds a registered layout by name. An empty name selects Default.
func Lookup(name string) (Layout, error) {
	if name == "" {
		return Default, nil
	}
	if l, ok := registry[name]; ok {
		return l, nil
	}
	return nil, fmt.Errorf("%w %q: available layouts are %s", ErrUnknownLayout, name, strings.Join(Names(), ", "))
}

// Analyze applies the default layout.
func Analyze(width, height int) Panels {
	return Default.Analyze(width, height)
}
