package cli

import (
	"fmt"
	"image/color"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ironsheep/tshirt-compose/internal/imaging"
	"github.com/ironsheep/tshirt-compose/internal/layout"
	"github.com/ironsheep/tshirt-compose/internal/placement"
)

func newPanelsCmd(a *app) *cobra.Command {
	var template, overlay string

	cmd := &cobra.Command{
		Use:   "panels",
		Short: "Show a template's dimensions and panel rectangles",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.showPanels(template); err != nil {
				return err
			}
			if overlay == "" {
				return nil
			}
			return a.writeOverlay(template, overlay)
		},
	}
	cmd.Flags().StringVar(&template, "template", "", "path to template image")
	cmd.Flags().StringVar(&overlay, "overlay", "", "also write a PNG with panel and printable-area outlines")
	_ = cmd.MarkFlagRequired("template")

	return cmd
}

func (a *app) showPanels(path string) error {
	lay, err := layout.Lookup(a.cfg.Layout)
	if err != nil {
		return err
	}

	info, err := imaging.Inspect(path)
	if err != nil {
		return err
	}

	p := lay.Analyze(info.Width, info.Height)

	fmt.Fprintf(a.out, "Template: %s\n", path)
	fmt.Fprintf(a.out, "  size:   %dx%d\n", info.Width, info.Height)
	fmt.Fprintf(a.out, "  format: %s (alpha: %t, %d bytes)\n", info.Format, info.HasAlpha, info.FileSizeBytes)
	fmt.Fprintf(a.out, "  layout: %s\n\n", lay.Name())

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PANEL\tX\tY\tSIZE")
	rows := []struct {
		name layout.PanelName
		rect layout.Rect
	}{
		{layout.Front, p.Front},
		{layout.Back, p.Back},
		{layout.LeftSleeve, p.LeftSleeve},
		{layout.RightSleeve, p.RightSleeve},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d-%d\t%d-%d\t%dx%d\n", r.name,
			r.rect.XStart, r.rect.XEnd, r.rect.YStart, r.rect.YEnd, r.rect.Width(), r.rect.Height())
	}
	return tw.Flush()
}

var (
	overlayPanelColor = color.NRGBA{255, 0, 0, 255}
	overlayAreaColor  = color.NRGBA{0, 160, 255, 255}
)

func (a *app) writeOverlay(templatePath, out string) error {
	lay, err := layout.Lookup(a.cfg.Layout)
	if err != nil {
		return err
	}

	tmpl, err := imaging.Load("template", templatePath)
	if err != nil {
		return err
	}

	var configs []placement.Config
	for _, name := range placement.Presets() {
		c, err := placement.FromPreset(name)
		if err != nil {
			return err
		}
		configs = append(configs, c)
	}

	b := tmpl.Bounds()
	img := imaging.PanelOverlay(tmpl, lay.Analyze(b.Dx(), b.Dy()), configs, overlayPanelColor, overlayAreaColor)
	if err := imaging.Save(img, out); err != nil {
		return err
	}

	a.log.Infof("Panel overlay saved to %s", out)
	return nil
}
