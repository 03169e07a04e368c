package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ironsheep/tshirt-compose/internal/placement"
)

func newPresetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List placement presets, positions and sizes",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.listPresets()
		},
	}
}

func (a *app) listPresets() error {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PRESET\tPANEL\tMARGIN\tSCALE\tVERTICAL OFFSET")
	for _, name := range placement.Presets() {
		c, err := placement.FromPreset(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.2f\t%.2f\n", name, c.Panel, c.Margin, c.Scale, c.VerticalOffset)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Positions: %s\n", strings.Join(placement.Positions(), ", "))
	fmt.Fprintf(a.out, "Sizes:     %s (default %s)\n", strings.Join(placement.Sizes(), ", "), a.cfg.DefaultSize)
	return nil
}
