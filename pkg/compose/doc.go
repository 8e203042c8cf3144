// Package compose turns a computed grid layout into pixels.
//
// It allocates the canvas, fits each input image into its cell while
// preserving the source aspect ratio (letterboxing or pillarboxing against
// the background color), and pastes the cells in row-major order. The
// per-image decode and resize work runs on a bounded worker pool since each
// cell is independent; pasting stays sequential so output is deterministic.
package compose
