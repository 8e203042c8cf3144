// Package pkg provides the core libraries for building photo collages.
//
// # Overview
//
// Collage arranges a folder of images onto a uniform grid and writes the
// result as a single JPEG. The pkg directory is organized into focused
// areas:
//
//  1. [source] - Input handling (folder scanning, aspect ratio probing)
//  2. [layout] - Pure geometry (grid calculation, sampling, aspect ratios)
//  3. [compose] - Pixel work (fitting, pasting, encoding)
//  4. [text] - Title and label overlays (font resolution, stroked text)
//  5. [pipeline] - Orchestration (scan → estimate → layout → compose → encode)
//
// # Architecture
//
// The typical data flow:
//
//	Image folder
//	     ↓
//	[source] package (list files, estimate aspect ratio)
//	     ↓
//	[layout] package (grid shape + canvas geometry)
//	     ↓
//	[compose] package (fit images, paste cells, encode JPEG)
//	     ↓
//	Collage JPEG
//
// # Quick Start
//
// Run the whole pipeline through a Runner:
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Folder: "/photos/holiday",
//	    Title:  "Holiday 2025",
//	})
//
// Supporting packages [errors], [observability] and [buildinfo] carry the
// error taxonomy, instrumentation hooks and build metadata.
package pkg
