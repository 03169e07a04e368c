package imaging

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/ironsheep/tshirt-compose/internal/layout"
	"github.com/ironsheep/tshirt-compose/internal/placement"
)

// PanelOverlay returns a copy of img with every panel outlined in
// panelColor and, for each given placement, the printable area outlined in
// areaColor. It is a debugging aid for checking that a template matches
// the layout it is analyzed with.
func PanelOverlay(img image.Image, panels layout.Panels, placements []placement.Config, panelColor, areaColor color.Color) *image.NRGBA {
	bounds := img.Bounds()
	result := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(result, result.Bounds(), img, bounds.Min, draw.Src)

	for _, r := range []layout.Rect{panels.Front, panels.Back, panels.LeftSleeve, panels.RightSleeve} {
		drawRect(result, r.XStart, r.YStart, r.XEnd-1, r.YEnd-1, panelColor)
	}

	for _, cfg := range placements {
		panel, err := panels.Panel(cfg.Panel)
		if err != nil {
			continue
		}
		w := float64(panel.Width())
		h := float64(panel.Height())
		x1 := int(math.Ceil(float64(panel.XStart) + w*cfg.Margin))
		y1 := int(math.Ceil(float64(panel.YStart) + h*cfg.Margin))
		x2 := int(float64(panel.XEnd) - w*cfg.Margin)
		y2 := int(float64(panel.YEnd) - h*cfg.Margin)
		drawRect(result, x1, y1, x2-1, y2-1, areaColor)
	}

	return result
}

// drawRect draws a one-pixel outline with inclusive corners, clipped to img.
func drawRect(img *image.NRGBA, x1, y1, x2, y2 int, c color.Color) {
	if x2 < x1 || y2 < y1 {
		return
	}
	b := img.Bounds()
	set := func(x, y int) {
		if image.Pt(x, y).In(b) {
			img.Set(x, y, c)
		}
	}

	for x := x1; x <= x2; x++ {
		set(x, y1)
		set(x, y2)
	}
	for y := y1; y <= y2; y++ {
		set(x1, y)
		set(x2, y)
	}
}
