package organizer

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"exifsort/internal/services"
)

// collectCandidates enumerates JPEG files under dir recursively. Extension
// matching is case-insensitive. The result is sorted so suffix allocation is
// reproducible run to run.
func collectCandidates(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.Type().IsRegular() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".jpg", ".jpeg":
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, services.Wrap(services.ErrIO, "scan", "enumerate files", "cannot read input directory", err)
	}
	sort.Strings(files)
	return files, nil
}
