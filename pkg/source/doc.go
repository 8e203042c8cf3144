// Package source discovers input images and analyzes their dimensions.
//
// It lists image files from a folder in sorted-filename order, resolves the
// output path for the finished collage, and estimates a representative
// aspect ratio by probing a random sample of the inputs. Probing reads only
// the image header (image.DecodeConfig), so estimation stays cheap even for
// large folders.
package source
