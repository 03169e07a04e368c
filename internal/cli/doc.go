// Package cli implements the tshirt-compose command tree.
//
// The root command composites a design onto a garment template:
//
//	tshirt-compose --template shirt.png --design logo.png --preset chest-large --output out.png
//	tshirt-compose --template shirt.png --design logo.png --position back --size small -f navy --output out.png
//
// Subcommands expose the individual steps:
//
//   - presets: list placement presets, positions and sizes
//   - colors:  list the fabric color catalog or resolve one token
//   - panels:  print a template's dimensions and panel rectangles
//   - recolor: write a template with its fabric area recolored
//
// Progress lines go to standard output through a logrus logger; step detail
// is logged at debug level and shown only with --verbose. Errors are
// returned to the caller rather than logged, so main decides the exit
// status. ErrArgumentConflict and flag parsing errors also print usage.
package cli
