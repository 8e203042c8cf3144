// Package pipeline wires the collage stages into a single run.
//
// The pipeline consists of five stages:
//
//  1. Scan: list the image files in the input folder
//  2. Estimate: probe a sample of files for the dominant aspect ratio
//  3. Layout: compute the grid and canvas geometry
//  4. Compose: load, fit and paste every image onto the canvas
//  5. Encode: write the finished collage as a JPEG
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Folder: "/photos/holiday",
//	    Title:  "Holiday 2025",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.OutputPath)
package pipeline
