package source

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/collage/pkg/errors"
)

// imageExtensions is the set of supported input formats, matched
// case-insensitively against file extensions.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
}

// ListImages returns the image files in folder, sorted by filename.
// Subdirectories are not traversed. It fails when the folder does not
// exist, is not a directory, or contains no image files.
func ListImages(folder string) ([]string, error) {
	info, err := os.Stat(folder)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFolderNotFound, "folder %q does not exist", folder)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "cannot access %q", folder)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidPath, "%q is not a directory", folder)
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "cannot read %q", folder)
	}

	// os.ReadDir returns entries sorted by filename, which is exactly the
	// placement order we want.
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			files = append(files, filepath.Join(folder, e.Name()))
		}
	}

	if len(files) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no image files found in %q", folder)
	}
	return files, nil
}

// OutputPath resolves the output file path for the finished collage.
// When arg is empty the collage is named after the input folder and placed
// in the current working directory. Bare filenames are resolved against the
// working directory, and a missing extension defaults to .jpg.
func OutputPath(arg, folder string) (string, error) {
	if arg == "" {
		abs, err := filepath.Abs(folder)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "cannot resolve %q", folder)
		}
		cwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "cannot determine working directory")
		}
		return filepath.Join(cwd, filepath.Base(abs)+".jpg"), nil
	}

	out := arg
	if filepath.Dir(out) == "." {
		cwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "cannot determine working directory")
		}
		out = filepath.Join(cwd, filepath.Base(out))
	}
	if filepath.Ext(out) == "" {
		out += ".jpg"
	}
	return out, nil
}
