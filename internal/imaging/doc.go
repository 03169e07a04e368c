// Package imaging implements the raster side of design compositing: loading
// template and design images, optional fabric recoloring of the template,
// placing a scaled design onto a garment panel, and writing the PNG result.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner of the
// template. X increases rightward and Y increases downward. Loaded images
// are normalized to *image.NRGBA with bounds starting at (0,0), so panel
// rectangles from the layout package can be used directly.
//
// # Ownership
//
// No function in this package mutates an image passed to it. RecolorFabric
// and Composite both return new buffers; the caller's template and design
// are left untouched.
//
// # Compositing Geometry
//
// Composite follows a fixed sequence:
//
//  1. Pick the target panel named by the placement.
//  2. Shrink it by the margin fraction on every side (printable area).
//  3. Size the design to Scale x printable width, keeping its aspect ratio.
//  4. If that height exceeds 80% of the printable height, size by height
//     instead (height cap overrides width-first sizing).
//  5. Resample with a Lanczos filter to the truncated integer size.
//  6. Center horizontally in the printable area, and vertically at
//     VerticalOffset of the printable height; truncate the top-left corner.
//  7. Alpha-blend the design onto a copy of the template.
//
// # Error Handling
//
// Loader and writer errors wrap ErrInputNotFound, ErrDecode or ErrWrite so
// callers can classify them with errors.Is.
package imaging
