package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/tshirt-compose/internal/imaging"
)

type recolorOptions struct {
	template    string
	output      string
	fabricColor string
}

func newRecolorCmd(a *app) *cobra.Command {
	o := &recolorOptions{}

	cmd := &cobra.Command{
		Use:   "recolor",
		Short: "Recolor a template's fabric area without compositing a design",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runRecolor(o)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.template, "template", "", "path to template PNG file")
	f.StringVar(&o.output, "output", "", "path for output PNG file")
	f.StringVarP(&o.fabricColor, "fabric-color", "f", "", "fabric color (name or #RRGGBB / #RRGGBBAA)")
	_ = cmd.MarkFlagRequired("template")
	_ = cmd.MarkFlagRequired("output")
	_ = cmd.MarkFlagRequired("fabric-color")

	return cmd
}

func (a *app) runRecolor(o *recolorOptions) error {
	fabric, err := a.resolveFabric(o.fabricColor)
	if err != nil {
		return err
	}
	if fabric == nil {
		return fmt.Errorf("%w: --fabric-color must not be empty", ErrArgumentConflict)
	}

	a.log.Debugf("Loading template: %s", o.template)
	tmpl, err := imaging.LoadTemplate(o.template, fabric, a.cfg.Threshold())
	if err != nil {
		return err
	}

	if err := imaging.Save(tmpl, o.output); err != nil {
		return err
	}

	a.log.Infof("Template recolored to %s and saved to %s", fabric.Hex(), o.output)
	return nil
}
