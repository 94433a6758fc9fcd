package mover

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"syscall"

	"github.com/google/uuid"

	"exifsort/internal/fileutil"
	"exifsort/internal/logging"
	"exifsort/internal/services"
)

// Move relocates source to destination with rename semantics. Destinations
// that already exist are refused rather than overwritten. Cross-device moves
// fall back to a verified copy followed by source deletion; the source is
// only removed after the copy has fully landed at the destination.
func Move(logger *slog.Logger, source, destination string) error {
	if logger == nil {
		logger = logging.NewNop()
	}

	if _, err := os.Lstat(destination); err == nil {
		return services.Wrap(services.ErrIO, "move", "rename file", "destination already exists: "+destination, nil)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return services.Wrap(services.ErrIO, "move", "probe destination", "", err)
	}

	renameErr := os.Rename(source, destination)
	if renameErr == nil {
		return nil
	}

	var linkErr *os.LinkError
	if errors.As(renameErr, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
		return copyAcrossDevices(logger, source, destination)
	}

	return services.Wrap(services.ErrIO, "move", "rename file", "failed to move file", renameErr)
}

// copyAcrossDevices lands the content next to the destination under a partial
// name, renames it into place, and only then deletes the source. Any failed
// half leaves the source file intact.
func copyAcrossDevices(logger *slog.Logger, source, destination string) error {
	partial := fmt.Sprintf("%s.partial-%.8s", destination, uuid.NewString())
	logger.Debug("cross-device move, falling back to copy",
		logging.String("source", source),
		logging.String("partial", partial),
	)

	if err := fileutil.CopyFileVerified(source, partial); err != nil {
		_ = os.Remove(partial)
		return services.Wrap(services.ErrIO, "move", "copy file", "cross-device copy failed", err)
	}
	if err := os.Rename(partial, destination); err != nil {
		_ = os.Remove(partial)
		return services.Wrap(services.ErrIO, "move", "finalize copy", "failed to move copied file into place", err)
	}
	if err := os.Remove(source); err != nil {
		return services.Wrap(services.ErrIO, "move", "remove source", "copy succeeded but source removal failed; duplicate remains at "+destination, err)
	}
	return nil
}
