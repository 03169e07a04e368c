package imaging

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/tshirt-compose/internal/palette"
)

// DefaultFabricThreshold is the per-channel lower bound (exclusive) used to
// classify template pixels as fabric.
const DefaultFabricThreshold = 200

// IsFabric reports whether a pixel counts as fabric: red, green, blue and
// alpha all strictly above threshold.
func IsFabric(r, g, b, a, threshold uint8) bool {
	return r > threshold && g > threshold && b > threshold && a > threshold
}

// RecolorFabric returns a copy of img in which every fabric pixel has its
// RGB replaced by fabric's RGB. Alpha is preserved, and pixels that fail the
// threshold test (shading, outlines, background) are copied unchanged.
//
// This is a per-pixel classifier, not segmentation: off-white shadow detail
// just under the threshold keeps its original color.
func RecolorFabric(img image.Image, fabric palette.Color, threshold uint8) *image.NRGBA {
	dst := imaging.Clone(img)

	for i := 0; i+3 < len(dst.Pix); i += 4 {
		px := dst.Pix[i : i+4 : i+4]
		if IsFabric(px[0], px[1], px[2], px[3], threshold) {
			px[0] = fabric.R
			px[1] = fabric.G
			px[2] = fabric.B
		}
	}

	return dst
}

// LoadTemplate loads the template at path and, when fabric is non-nil,
// recolors its fabric area before returning it.
func LoadTemplate(path string, fabric *palette.Color, threshold uint8) (*image.NRGBA, error) {
	tmpl, err := Load("template", path)
	if err != nil {
		return nil, err
	}

	if fabric == nil {
		return tmpl, nil
	}

	return RecolorFabric(tmpl, *fabric, threshold), nil
}
