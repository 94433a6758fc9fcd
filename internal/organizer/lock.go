package organizer

import (
	"path/filepath"

	"github.com/gofrs/flock"

	"exifsort/internal/services"
)

const lockFileName = ".exifsort.lock"

// acquireRunLock takes an advisory lock inside the output directory so two
// concurrent invocations cannot race each other's collision resolution.
func acquireRunLock(outDir string) (*flock.Flock, error) {
	lock := flock.New(filepath.Join(outDir, lockFileName))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrIO, "organize", "acquire run lock", "", err)
	}
	if !ok {
		return nil, services.Wrap(services.ErrValidation, "organize", "acquire run lock",
			"another run is already organizing into "+outDir, nil)
	}
	return lock, nil
}
