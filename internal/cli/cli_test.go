package cli

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/tshirt-compose/internal/imaging"
	"github.com/ironsheep/tshirt-compose/internal/palette"
	"github.com/ironsheep/tshirt-compose/internal/placement"
)

var (
	white = color.NRGBA{255, 255, 255, 255}
	red   = color.NRGBA{255, 0, 0, 255}
	blue  = color.NRGBA{0, 0, 255, 255}
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd(BuildInfo{Version: "1.2.3", BuildTime: "today", GitCommit: "abc123"}, &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writePNG(t *testing.T, dir, name string, width, height int, c color.NRGBA) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return savePNG(t, filepath.Join(dir, name), img)
}

func savePNG(t *testing.T, path string, img image.Image) string {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func loadPNG(t *testing.T, path string) *image.NRGBA {
	t.Helper()
	img, err := imaging.Load("output", path)
	require.NoError(t, err)
	return img
}

func TestCompose_Preset(t *testing.T) {
	dir := t.TempDir()
	tmpl := writePNG(t, dir, "template.png", 1000, 1000, white)
	design := writePNG(t, dir, "design.png", 400, 200, red)
	output := filepath.Join(dir, "out", "nested", "result.png")

	stdout, err := execute(t, "--template", tmpl, "--design", design, "--preset", "chest-large", "--output", output)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Info: Design composited and saved to "+output)
	assert.NotContains(t, stdout, "Loading template")

	img := loadPNG(t, output)
	assert.Equal(t, 1000, img.Bounds().Dx())
	assert.Equal(t, red, img.NRGBAAt(250, 650))
	assert.Equal(t, red, img.NRGBAAt(120, 585))
	assert.Equal(t, white, img.NRGBAAt(119, 650))
	assert.Equal(t, white, img.NRGBAAt(250, 584))
	assert.Equal(t, white, img.NRGBAAt(750, 650))
}

func TestCompose_PositionDefaultsToLarge(t *testing.T) {
	dir := t.TempDir()
	tmpl := writePNG(t, dir, "template.png", 1000, 1000, white)
	design := writePNG(t, dir, "design.png", 400, 200, red)

	viaPosition := filepath.Join(dir, "position.png")
	stdout, err := execute(t, "--template", tmpl, "--design", design, "--position", "chest", "--output", viaPosition)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Info: No size specified, defaulting to 'large'")

	viaPreset := filepath.Join(dir, "preset.png")
	_, err = execute(t, "--template", tmpl, "--design", design, "--preset", "chest-large", "--output", viaPreset)
	require.NoError(t, err)

	assert.Equal(t, loadPNG(t, viaPreset).Pix, loadPNG(t, viaPosition).Pix)
}

func TestCompose_Verbose(t *testing.T) {
	dir := t.TempDir()
	tmpl := writePNG(t, dir, "template.png", 200, 200, white)
	design := writePNG(t, dir, "design.png", 20, 20, blue)

	stdout, err := execute(t, "--verbose", "--template", tmpl, "--design", design,
		"--position", "back", "--size", "small", "--output", filepath.Join(dir, "out.png"))
	require.NoError(t, err)

	for _, line := range []string{
		"Using position: back, size: small",
		"Loading template: " + tmpl,
		"Loading design: " + design,
		"Template size: 200x200",
		"Compositing design onto template",
		"Placed design",
		"panel=back",
	} {
		assert.Contains(t, stdout, line)
	}
	assert.NotContains(t, stdout, "No size specified")
}

func TestCompose_FabricColor(t *testing.T) {
	dir := t.TempDir()

	img := image.NewNRGBA(image.Rect(0, 0, 200, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			img.SetNRGBA(x, y, white)
		}
	}
	img.SetNRGBA(5, 5, color.NRGBA{200, 200, 200, 255})
	img.SetNRGBA(6, 5, color.NRGBA{250, 250, 250, 120})
	tmpl := savePNG(t, filepath.Join(dir, "template.png"), img)

	design := writePNG(t, dir, "design.png", 10, 10, blue)
	output := filepath.Join(dir, "out.png")

	_, err := execute(t, "--template", tmpl, "--design", design, "--preset", "chest-small",
		"-f", "red", "--output", output)
	require.NoError(t, err)

	out := loadPNG(t, output)
	assert.Equal(t, red, out.NRGBAAt(150, 50))
	assert.Equal(t, color.NRGBA{200, 200, 200, 255}, out.NRGBAAt(5, 5))
	assert.Equal(t, color.NRGBA{250, 250, 250, 120}, out.NRGBAAt(6, 5))
	assert.Equal(t, blue, out.NRGBAAt(50, 125))
}

func TestCompose_ArgumentConflicts(t *testing.T) {
	dir := t.TempDir()
	tmpl := writePNG(t, dir, "template.png", 10, 10, white)
	design := writePNG(t, dir, "design.png", 4, 4, red)
	base := []string{"--template", tmpl, "--design", design, "--output", filepath.Join(dir, "out.png")}

	tests := []struct {
		name string
		args []string
	}{
		{"preset with position", []string{"--preset", "chest-large", "--position", "chest"}},
		{"preset with size", []string{"--preset", "chest-large", "--size", "small"}},
		{"neither", nil},
		{"size only", []string{"--size", "small"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, err := execute(t, append(append([]string{}, base...), tt.args...)...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrArgumentConflict), "got %v", err)
			assert.Contains(t, stdout, "Usage:")
			assert.NoFileExists(t, filepath.Join(dir, "out.png"))
		})
	}
}

func TestCompose_InvalidInputs(t *testing.T) {
	dir := t.TempDir()
	tmpl := writePNG(t, dir, "template.png", 10, 10, white)
	design := writePNG(t, dir, "design.png", 4, 4, red)
	output := filepath.Join(dir, "out.png")

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown preset", []string{"--template", tmpl, "--design", design, "--preset", "hip-large"}, placement.ErrUnknownPlacement},
		{"unknown position", []string{"--template", tmpl, "--design", design, "--position", "sleeve"}, placement.ErrUnknownPlacement},
		{"unknown size", []string{"--template", tmpl, "--design", design, "--position", "back", "--size", "xl"}, placement.ErrUnknownPlacement},
		{"bad hex", []string{"--template", tmpl, "--design", design, "--preset", "back-large", "-f", "#FFF"}, palette.ErrInvalidColorFormat},
		{"unknown color", []string{"--template", tmpl, "--design", design, "--preset", "back-large", "-f", "teal"}, palette.ErrUnknownColorName},
		{"missing template", []string{"--template", filepath.Join(dir, "nope.png"), "--design", design, "--preset", "back-large"}, imaging.ErrInputNotFound},
		{"missing design", []string{"--template", tmpl, "--design", filepath.Join(dir, "nope.png"), "--preset", "back-large"}, imaging.ErrInputNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, append(tt.args, "--output", output)...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.NoFileExists(t, output)
		})
	}
}

func TestCompose_UndecodableDesign(t *testing.T) {
	dir := t.TempDir()
	tmpl := writePNG(t, dir, "template.png", 10, 10, white)
	design := filepath.Join(dir, "design.png")
	require.NoError(t, os.WriteFile(design, []byte("GIF89a nonsense"), 0o644))

	_, err := execute(t, "--template", tmpl, "--design", design, "--preset", "back-large", "--output", filepath.Join(dir, "out.png"))
	assert.True(t, errors.Is(err, imaging.ErrDecode), "got %v", err)
}

func TestCompose_MissingRequiredFlag(t *testing.T) {
	_, err := execute(t, "--preset", "chest-large")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestPresetsCmd(t *testing.T) {
	stdout, err := execute(t, "presets")
	require.NoError(t, err)

	for _, name := range placement.Presets() {
		assert.Contains(t, stdout, name)
	}
	assert.Contains(t, stdout, "Positions: chest, dead-center, back")
	assert.Contains(t, stdout, "Sizes:     small, medium, large (default large)")
}

func TestColorsCmd(t *testing.T) {
	stdout, err := execute(t, "colors")
	require.NoError(t, err)
	assert.Contains(t, stdout, "navy")
	assert.Contains(t, stdout, "#000080")
	assert.NotContains(t, stdout, "transparent")

	stdout, err = execute(t, "colors", "Orange")
	require.NoError(t, err)
	assert.Contains(t, stdout, "rgba: 255, 165, 0, 255")
	assert.Contains(t, stdout, "unit: 1.000, 0.647, 0.000")

	stdout, err = execute(t, "colors", "transparent")
	require.NoError(t, err)
	assert.Contains(t, stdout, "no color")

	_, err = execute(t, "colors", "#12345")
	assert.True(t, errors.Is(err, palette.ErrInvalidColorFormat))
}

func TestPanelsCmd(t *testing.T) {
	dir := t.TempDir()
	tmpl := writePNG(t, dir, "template.png", 101, 99, white)

	stdout, err := execute(t, "panels", "--template", tmpl)
	require.NoError(t, err)

	assert.Contains(t, stdout, "size:   101x99")
	assert.Contains(t, stdout, "layout: quad-2x2")
	lines := strings.Split(stdout, "\n")
	var front string
	for _, l := range lines {
		if strings.HasPrefix(l, "front") {
			front = l
		}
	}
	assert.Contains(t, front, "0-50")
	assert.Contains(t, front, "49-99")
	assert.Contains(t, front, "50x50")

	overlay := filepath.Join(dir, "overlay.png")
	stdout, err = execute(t, "panels", "--template", tmpl, "--overlay", overlay)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Panel overlay saved to "+overlay)
	assert.Equal(t, overlayPanelColor, loadPNG(t, overlay).NRGBAAt(0, 0))

	_, err = execute(t, "panels", "--template", filepath.Join(dir, "absent.png"))
	assert.True(t, errors.Is(err, imaging.ErrInputNotFound))
}

func TestRecolorCmd(t *testing.T) {
	dir := t.TempDir()
	tmpl := writePNG(t, dir, "template.png", 8, 8, white)
	output := filepath.Join(dir, "tinted.png")

	stdout, err := execute(t, "recolor", "--template", tmpl, "-f", "#00800080", "--output", output)
	require.NoError(t, err)
	assert.Contains(t, stdout, "saved to "+output)

	assert.Equal(t, color.NRGBA{0, 128, 0, 255}, loadPNG(t, output).NRGBAAt(3, 3))
}

func TestConfigThreshold(t *testing.T) {
	dir := t.TempDir()
	tmpl := writePNG(t, dir, "template.png", 8, 8, color.NRGBA{190, 190, 190, 255})
	output := filepath.Join(dir, "tinted.png")

	cfgPath := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("recolor_threshold: 150\n"), 0o644))

	_, err := execute(t, "--config", cfgPath, "recolor", "--template", tmpl, "-f", "black", "--output", output)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, loadPNG(t, output).NRGBAAt(0, 0))

	_, err = execute(t, "--config", filepath.Join(dir, "missing.yaml"), "presets")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	stdout, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "tshirt-compose 1.2.3")
	assert.Contains(t, stdout, "Git commit: abc123")
}
