package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ironsheep/tshirt-compose/internal/palette"
)

func newColorsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "colors [token]",
		Short: "List fabric colors, or resolve a single color token",
		Long: `Without arguments, colors prints the named color catalog.

With a token (a catalog name, #RRGGBB or #RRGGBBAA) it prints the resolved
8-bit RGBA value and the unit-interval RGB used for 3D materials. The token
"transparent" is only meaningful for render backgrounds and has no RGBA value.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.listColors()
			}
			return a.resolveColor(args[0])
		},
	}
}

func (a *app) listColors() error {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tHEX\tRGB")
	for _, name := range palette.Names() {
		c, err := palette.Resolve(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\t%d,%d,%d\n", name, c.Hex(), c.R, c.G, c.B)
	}
	return tw.Flush()
}

func (a *app) resolveColor(token string) error {
	unit, err := palette.ResolveUnit(token)
	if err != nil {
		return err
	}
	if unit == nil {
		fmt.Fprintf(a.out, "%s: no color (transparent background)\n", token)
		return nil
	}

	c, err := palette.Resolve(token)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s\n", token)
	fmt.Fprintf(a.out, "  hex:  %s\n", c.Hex())
	fmt.Fprintf(a.out, "  rgba: %d, %d, %d, %d\n", c.R, c.G, c.B, c.A)
	fmt.Fprintf(a.out, "  unit: %.3f, %.3f, %.3f\n", unit.R, unit.G, unit.B)
	return nil
}
