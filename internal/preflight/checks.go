package preflight

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// Result captures the outcome of a single environment check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Run evaluates environment checks for an organize pass. Checks are
// advisory: the CLI prints them and only the fatal directory conditions
// abort the run.
func Run(inDir, outDir string) []Result {
	results := []Result{
		checkReadableDir("input directory", inDir),
		checkWritableDir("output directory", outDir),
	}
	if r, applicable := checkFreeSpace(inDir, outDir); applicable {
		results = append(results, r)
	}
	return results
}

func checkReadableDir(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read ok)", path)}
}

func checkWritableDir(name, path string) Result {
	target := nearestExisting(path)
	if err := unix.Access(target, unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions on %s: %v)", path, target, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (write ok)", path)}
}

// checkFreeSpace only applies when input and output live on different
// devices, where moves degrade to copies and need room on the target
// filesystem.
func checkFreeSpace(inDir, outDir string) (Result, bool) {
	const name = "output free space"

	var inStat, outStat unix.Stat_t
	if err := unix.Stat(inDir, &inStat); err != nil {
		return Result{}, false
	}
	outTarget := nearestExisting(outDir)
	if err := unix.Stat(outTarget, &outStat); err != nil {
		return Result{}, false
	}
	if inStat.Dev == outStat.Dev {
		return Result{}, false
	}

	needed := candidateBytes(inDir)

	var statfs unix.Statfs_t
	if err := unix.Statfs(outTarget, &statfs); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", outTarget, err)}, true
	}
	available := statfs.Bavail * uint64(statfs.Bsize)
	if available < uint64(needed) {
		return Result{
			Name:   name,
			Detail: fmt.Sprintf("%d bytes available, %d bytes of candidates (cross-device copies may fail)", available, needed),
		}, true
	}
	return Result{
		Name:   name,
		Passed: true,
		Detail: fmt.Sprintf("%d bytes available for %d bytes of candidates", available, needed),
	}, true
}

// candidateBytes sums the sizes of JPEG files under dir. Walk errors are
// ignored here; enumeration proper reports them.
func candidateBytes(dir string) int64 {
	var total int64
	_ = filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil || entry.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".jpg", ".jpeg":
			if info, infoErr := entry.Info(); infoErr == nil {
				total += info.Size()
			}
		}
		return nil
	})
	return total
}

func nearestExisting(path string) string {
	for {
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(path)
		if parent == path {
			return path
		}
		path = parent
	}
}
