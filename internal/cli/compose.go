package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ironsheep/tshirt-compose/internal/imaging"
	"github.com/ironsheep/tshirt-compose/internal/layout"
	"github.com/ironsheep/tshirt-compose/internal/palette"
	"github.com/ironsheep/tshirt-compose/internal/placement"
)

type composeOptions struct {
	template    string
	design      string
	output      string
	preset      string
	position    string
	size        string
	fabricColor string
}

func (o *composeOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.template, "template", "", "path to template PNG file")
	f.StringVar(&o.design, "design", "", "path to input design image")
	f.StringVar(&o.output, "output", "", "path for output PNG file")
	f.StringVar(&o.preset, "preset", "", "preset placement, e.g. chest-large (cannot be used with --position or --size)")
	f.StringVar(&o.position, "position", "", "design position: chest, dead-center or back (cannot be used with --preset)")
	f.StringVar(&o.size, "size", "", "design size: small, medium or large (cannot be used with --preset)")
	f.StringVarP(&o.fabricColor, "fabric-color", "f", "", "recolor the shirt fabric first (name or #RRGGBB / #RRGGBBAA)")

	_ = cmd.MarkFlagRequired("template")
	_ = cmd.MarkFlagRequired("design")
	_ = cmd.MarkFlagRequired("output")
}

// resolvePlacement validates the preset/position/size combination and
// returns the placement it selects. sizeSet reports whether --size was
// given explicitly.
func (a *app) resolvePlacement(o *composeOptions, sizeSet bool) (placement.Config, error) {
	if o.preset != "" && (o.position != "" || sizeSet) {
		return placement.Config{}, fmt.Errorf("%w: --preset cannot be used with --position or --size; use either --preset alone, or --position with optional --size",
			ErrArgumentConflict)
	}

	if o.preset == "" && o.position == "" {
		return placement.Config{}, fmt.Errorf("%w: either --preset or --position must be specified", ErrArgumentConflict)
	}

	if o.preset != "" {
		a.log.Debugf("Using preset: %s", o.preset)
		return placement.FromPreset(o.preset)
	}

	size := o.size
	if !sizeSet {
		size = a.cfg.DefaultSize
		a.log.Infof("No size specified, defaulting to '%s'", size)
	}
	a.log.Debugf("Using position: %s, size: %s", o.position, size)

	return placement.FromPositionSize(o.position, size)
}

// resolveFabric returns nil when no fabric color was requested.
func (a *app) resolveFabric(token string) (*palette.Color, error) {
	if token == "" {
		return nil, nil
	}

	c, err := palette.Resolve(token)
	if err != nil {
		return nil, err
	}
	a.log.Debugf("Using fabric color: %s (%s)", token, c.Hex())
	return &c, nil
}

func (a *app) runCompose(o *composeOptions, sizeSet bool) error {
	cfg, err := a.resolvePlacement(o, sizeSet)
	if err != nil {
		return err
	}

	fabric, err := a.resolveFabric(o.fabricColor)
	if err != nil {
		return err
	}

	lay, err := layout.Lookup(a.cfg.Layout)
	if err != nil {
		return err
	}

	a.log.Debugf("Loading template: %s", o.template)
	tmpl, err := imaging.LoadTemplate(o.template, fabric, a.cfg.Threshold())
	if err != nil {
		return err
	}
	if fabric != nil {
		a.log.Debugf("Recolored fabric (threshold > %d)", a.cfg.RecolorThreshold)
	}

	a.log.Debugf("Loading design: %s", o.design)
	design, err := imaging.Load("design", o.design)
	if err != nil {
		return err
	}

	a.log.Debugf("Analyzing template dimensions and panel layout (%s)", lay.Name())
	b := tmpl.Bounds()
	panels := lay.Analyze(b.Dx(), b.Dy())
	a.log.Debugf("Template size: %dx%d", panels.TemplateWidth, panels.TemplateHeight)

	a.log.Debug("Compositing design onto template")
	out, plan, err := imaging.Composite(tmpl, design, panels, cfg)
	if err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"panel":   plan.Panel,
		"size":    fmt.Sprintf("%dx%d", plan.Width, plan.Height),
		"paste":   fmt.Sprintf("%d,%d", plan.PasteX, plan.PasteY),
		"clamped": plan.Clamped,
	}).Debug("Placed design")

	if err := imaging.Save(out, o.output); err != nil {
		return err
	}

	a.log.Infof("Design composited and saved to %s", o.output)
	return nil
}
