package organizer

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"exifsort/internal/services"
)

// validateDirs resolves both directories to absolute paths and rejects runs
// whose output directory is the input directory or nested inside it; moving
// files into a directory that is also being scanned would make the run feed
// on its own output.
func validateDirs(inDir, outDir string) (string, string, error) {
	inAbs, err := filepath.Abs(inDir)
	if err != nil {
		return "", "", services.Wrap(services.ErrValidation, "organize", "resolve input dir", "", err)
	}
	outAbs, err := filepath.Abs(outDir)
	if err != nil {
		return "", "", services.Wrap(services.ErrValidation, "organize", "resolve output dir", "", err)
	}

	info, err := os.Stat(inAbs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", "", services.Wrap(services.ErrValidation, "organize", "validate input dir", "input directory does not exist: "+inAbs, nil)
	case err != nil:
		return "", "", services.Wrap(services.ErrValidation, "organize", "validate input dir", "", err)
	case !info.IsDir():
		return "", "", services.Wrap(services.ErrValidation, "organize", "validate input dir", "not a directory: "+inAbs, nil)
	}

	if isWithin(inAbs, outAbs) {
		return "", "", services.Wrap(services.ErrValidation, "organize", "validate output dir",
			"output directory must not be the input directory or nested inside it", nil)
	}
	return inAbs, outAbs, nil
}

// isWithin reports whether path equals base or lives underneath it.
func isWithin(base, path string) bool {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
