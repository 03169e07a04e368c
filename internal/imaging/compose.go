package imaging

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/tshirt-compose/internal/layout"
	"github.com/ironsheep/tshirt-compose/internal/placement"
)

// ErrDegenerateDesign is returned when a design has no area, or scales
// down to less than one pixel.
var ErrDegenerateDesign = errors.New("degenerate design")

// MaxHeightFraction caps the scaled design height relative to the printable height.
const MaxHeightFraction = 0.8

// Area is a rectangle with fractional bounds, used for the printable area
// before any rounding happens.
type Area struct {
	XStart float64 `json:"x_start"`
	XEnd   float64 `json:"x_end"`
	YStart float64 `json:"y_start"`
	YEnd   float64 `json:"y_end"`
}

// Width returns XEnd - XStart.
func (a Area) Width() float64 { return a.XEnd - a.XStart }

// Height returns YEnd - YStart.
func (a Area) Height() float64 { return a.YEnd - a.YStart }

// Plan describes where and how large a design lands on a template.
type Plan struct {
	Panel     layout.PanelName `json:"panel"`
	PanelRect layout.Rect      `json:"panel_rect"`
	Printable Area             `json:"printable"`

	// TargetWidth and TargetHeight are the unrounded design dimensions.
	TargetWidth  float64 `json:"target_width"`
	TargetHeight float64 `json:"target_height"`

	// Clamped is true when the height cap overrode width-first sizing.
	Clamped bool `json:"clamped"`

	// Width and Height are the resampled design size in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`

	// PasteX and PasteY are the design's top-left corner in template pixels.
	PasteX int `json:"paste_x"`
	PasteY int `json:"paste_y"`
}

// PlanPlacement computes the compositing geometry for a design of the given
// size without touching any pixels.
func PlanPlacement(designWidth, designHeight int, panels layout.Panels, cfg placement.Config) (*Plan, error) {
	if designWidth <= 0 || designHeight <= 0 {
		return nil, fmt.Errorf("%w: design is %dx%d", ErrDegenerateDesign, designWidth, designHeight)
	}

	panel, err := panels.Panel(cfg.Panel)
	if err != nil {
		return nil, err
	}

	panelW := float64(panel.Width())
	panelH := float64(panel.Height())

	printable := Area{
		XStart: float64(panel.XStart) + panelW*cfg.Margin,
		XEnd:   float64(panel.XEnd) - panelW*cfg.Margin,
		YStart: float64(panel.YStart) + panelH*cfg.Margin,
		YEnd:   float64(panel.YEnd) - panelH*cfg.Margin,
	}
	printableW := printable.Width()
	printableH := printable.Height()

	aspect := float64(designHeight) / float64(designWidth)

	targetW := printableW * cfg.Scale
	targetH := targetW * aspect

	clamped := false
	if targetH > printableH*MaxHeightFraction {
		targetH = printableH * MaxHeightFraction
		targetW = targetH / aspect
		clamped = true
	}

	width, height := int(targetW), int(targetH)
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d design scales to %dx%d on %s panel %s",
			ErrDegenerateDesign, designWidth, designHeight, width, height, cfg.Panel, panel)
	}

	centerX := printable.XStart + printableW/2
	centerY := printable.YStart + printableH*cfg.VerticalOffset

	return &Plan{
		Panel:        cfg.Panel,
		PanelRect:    panel,
		Printable:    printable,
		TargetWidth:  targetW,
		TargetHeight: targetH,
		Clamped:      clamped,
		Width:        width,
		Height:       height,
		CenterX:      centerX,
		CenterY:      centerY,
		PasteX:       int(centerX - targetW/2),
		PasteY:       int(centerY - targetH/2),
	}, nil
}

// Composite scales design and blends it onto a copy of template using the
// design's own alpha channel. Neither input is modified.
//
// Panels must describe template; they are interpreted relative to the
// template's top-left corner.
func Composite(template, design image.Image, panels layout.Panels, cfg placement.Config) (*image.NRGBA, *Plan, error) {
	db := design.Bounds()

	plan, err := PlanPlacement(db.Dx(), db.Dy(), panels, cfg)
	if err != nil {
		return nil, nil, err
	}

	scaled := imaging.Resize(design, plan.Width, plan.Height, imaging.Lanczos)

	pos := template.Bounds().Min.Add(image.Pt(plan.PasteX, plan.PasteY))
	out := imaging.Overlay(template, scaled, pos, 1.0)

	return out, plan, nil
}
