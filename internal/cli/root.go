package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ironsheep/tshirt-compose/internal/config"
)

// ErrArgumentConflict is returned for invalid flag combinations, such as
// --preset together with --position, or neither of them.
var ErrArgumentConflict = errors.New("argument conflict")

// BuildInfo carries version details injected by ldflags.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// app holds state shared by every command of one invocation.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	verbose    bool

	cfg *config.Config
	log *logrus.Logger
}

// NewRootCmd builds the command tree. Normal output goes to out and
// cobra's own error/usage text to errOut.
func NewRootCmd(info BuildInfo, out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}
	opts := &composeOptions{}

	cmd := &cobra.Command{
		Use:   "tshirt-compose",
		Short: "Composite a design onto a T-shirt template",
		Long: `tshirt-compose places a design image onto a flat T-shirt template.

Placement is chosen either with a preset (--preset chest-large) or with a
position and optional size (--position back --size small). The fabric of the
template can be recolored first with --fabric-color.`,
		Example: `  tshirt-compose --template shirt.png --design logo.png --preset chest-large --output result.png
  tshirt-compose --template shirt.png --design logo.png --position chest --size large --output result.png
  tshirt-compose --template shirt.png --design logo.png --position back -f navy --output result.png`,
		Version:           info.Version,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := a.runCompose(opts, cmd.Flags().Changed("size"))
			if errors.Is(err, ErrArgumentConflict) {
				_ = cmd.Usage()
			}
			return err
		},
	}

	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetVersionTemplate(fmt.Sprintf("tshirt-compose %s\n  Build time: %s\n  Git commit: %s\n",
		info.Version, info.BuildTime, info.GitCommit))
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		_ = c.Usage()
		return err
	})

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default: ./config/tshirt-compose.yaml or ./tshirt-compose.yaml)")
	pf.BoolVar(&a.verbose, "verbose", false, "print step-by-step progress")

	opts.bind(cmd)

	cmd.AddCommand(
		newPresetsCmd(a),
		newColorsCmd(a),
		newPanelsCmd(a),
		newRecolorCmd(a),
	)

	return cmd
}

func (a *app) setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.New(a.configPath), a.configPath != "")
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = newLogger(a.out, a.verbose)

	if cfg.File != "" {
		a.log.Debugf("Using config file: %s", cfg.File)
	}
	return nil
}
