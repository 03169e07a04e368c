// Package palette resolves user-supplied color tokens into concrete colors.
//
// A token is either a hex string prefixed with '#' or a case-insensitive
// name from a fixed catalog. Two resolvers share one catalog:
//
//   - Resolve returns 8-bit RGBA components (0-255), used for fabric
//     recoloring of template images.
//   - ResolveUnit returns a go-colorful Color with components in [0,1], the
//     form 3D material nodes expect. It additionally understands the
//     "transparent" token, which resolves to nil (no background color).
//
// For every token other than "transparent" the two resolvers agree exactly:
// each unit component is the byte component divided by 255.
//
// # Hex Formats
//
//   - #RRGGBB: alpha defaults to 255
//   - #RRGGBBAA: alpha taken from the last byte
//
// Any other length, or a non-hex digit, fails with ErrInvalidColorFormat.
// Unknown names fail with ErrUnknownColorName and the message lists the
// whole catalog.
package palette
