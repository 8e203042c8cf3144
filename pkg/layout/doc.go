// Package layout implements the pure calculations behind collage generation:
// grid geometry, image-list sampling, and aspect-ratio analysis.
//
// Nothing in this package performs I/O. The layout engine takes an image
// count, a representative aspect ratio, and a set of user constraints, and
// derives canvas dimensions, grid shape, and per-cell geometry. The sampler
// deterministically reduces an oversized image list to a grid's capacity.
// Aspect-ratio helpers pick the modal ratio from a set of measurements and
// snap it to a canonical pair (16:9, 4:3, ...) when close enough.
//
// All returned values are plain value objects and are never mutated after
// construction.
package layout
