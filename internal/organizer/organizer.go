package organizer

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"exifsort/internal/config"
	"exifsort/internal/exifmeta"
	"exifsort/internal/logging"
	"exifsort/internal/mover"
	"exifsort/internal/naming"
	"exifsort/internal/services"
)

// Outcome classifies the terminal state of one file's trip through the
// pipeline.
type Outcome int

const (
	OutcomeMoved Outcome = iota
	OutcomeSkipped
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result describes what happened to a single source file.
type Result struct {
	Source      string
	Destination string
	Taken       time.Time
	Outcome     Outcome
	Bytes       int64
	Err         error
}

// Summary aggregates per-file results for one run.
type Summary struct {
	Total      int
	Moved      int
	Skipped    int
	Failed     int
	BytesMoved int64
	Problems   []Result
}

// ProgressFunc observes task completion; done is the number of completed
// tasks so far. Invoked from the aggregation goroutine, never concurrently.
type ProgressFunc func(res Result, done, total int)

// Organizer drives candidate files through the scan, resolve, and move
// stages on a fixed-size worker pool.
type Organizer struct {
	cfg      *config.Config
	logger   *slog.Logger
	inDir    string
	outDir   string
	progress ProgressFunc
}

// New constructs an organizer for one input/output directory pair.
func New(cfg *config.Config, logger *slog.Logger, inDir, outDir string) *Organizer {
	return &Organizer{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "organizer"),
		inDir:  inDir,
		outDir: outDir,
	}
}

// SetProgress installs a completion observer. Presentation stays out of the
// pool; the observer only sees finished results.
func (o *Organizer) SetProgress(fn ProgressFunc) {
	o.progress = fn
}

// Run enumerates candidates and processes each through the full pipeline.
// The returned error covers directory-level failures only; per-file skips
// and failures are reported through the summary.
func (o *Organizer) Run(ctx context.Context) (Summary, error) {
	logger := logging.WithContext(ctx, o.logger)

	inDir, outDir, err := validateDirs(o.inDir, o.outDir)
	if err != nil {
		return Summary{}, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Summary{}, services.Wrap(services.ErrConfiguration, "organize", "create output dir", "", err)
	}

	lock, err := acquireRunLock(outDir)
	if err != nil {
		return Summary{}, err
	}
	defer func() {
		_ = lock.Unlock()
	}()

	files, err := collectCandidates(inDir)
	if err != nil {
		return Summary{}, err
	}
	total := len(files)

	workers := o.cfg.WorkerCount()
	if workers > total && total > 0 {
		workers = total
	}
	logger.Info("scan complete",
		logging.Int("candidates", total),
		logging.Int("workers", workers),
		logging.Bool("full_scan", o.cfg.WindowBytes() == 0),
	)

	jobs := make(chan string)
	results := make(chan Result)
	claims := naming.NewClaimSet()

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				results <- o.processOne(ctx, claims, outDir, path)
			}
		}()
	}
	go func() {
		for _, path := range files {
			jobs <- path
		}
		close(jobs)
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	summary := Summary{Total: total}
	done := 0
	for res := range results {
		done++
		switch res.Outcome {
		case OutcomeMoved:
			summary.Moved++
			summary.BytesMoved += res.Bytes
			logger.Debug("file moved",
				logging.String("source", res.Source),
				logging.String("destination", res.Destination),
			)
		case OutcomeSkipped:
			summary.Skipped++
			summary.Problems = append(summary.Problems, res)
			logger.Debug("file skipped",
				logging.String("source", res.Source),
				logging.Error(res.Err),
			)
		case OutcomeFailed:
			summary.Failed++
			summary.Problems = append(summary.Problems, res)
			logger.Warn("file failed",
				logging.String("source", res.Source),
				logging.Error(res.Err),
			)
		}
		if o.progress != nil {
			o.progress(res, done, total)
		}
	}

	logger.Info("run complete",
		logging.Int("moved", summary.Moved),
		logging.Int("skipped", summary.Skipped),
		logging.Int("failed", summary.Failed),
		logging.Int64("bytes_moved", summary.BytesMoved),
	)
	return summary, nil
}

// processOne runs the full pipeline for a single file on the calling worker.
func (o *Organizer) processOne(ctx context.Context, claims *naming.ClaimSet, outDir, path string) Result {
	res := Result{Source: path}

	taken, err := exifmeta.ReadCaptureTime(path, o.cfg.WindowBytes())
	if err != nil {
		res.Err = err
		res.Outcome = OutcomeFailed
		if services.Recoverable(err) {
			res.Outcome = OutcomeSkipped
		}
		return res
	}
	res.Taken = taken

	dest, err := claims.Resolve(outDir, taken)
	if err != nil {
		res.Err = err
		res.Outcome = OutcomeFailed
		return res
	}
	res.Destination = dest

	if info, err := os.Stat(path); err == nil {
		res.Bytes = info.Size()
	}

	logger := logging.WithContext(services.WithStage(ctx, "move"), o.logger)
	if err := mover.Move(logger, path, dest); err != nil {
		res.Err = err
		res.Outcome = OutcomeFailed
		res.Bytes = 0
		return res
	}
	res.Outcome = OutcomeMoved
	return res
}
