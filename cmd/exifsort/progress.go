package main

import (
	"io"
	"log/slog"

	"github.com/schollz/progressbar/v3"

	"exifsort/internal/logging"
	"exifsort/internal/organizer"
)

// progressReporter renders completion progress: an interactive bar on a TTY,
// periodic log lines otherwise. It is driven by the organizer's observer
// callback, which is never invoked concurrently.
type progressReporter struct {
	writer      io.Writer
	logger      *slog.Logger
	interactive bool
	bar         *progressbar.ProgressBar
}

const progressLogInterval = 50

func newProgressReporter(w io.Writer, logger *slog.Logger) *progressReporter {
	return &progressReporter{
		writer:      w,
		logger:      logging.NewComponentLogger(logger, "progress"),
		interactive: shouldColorize(w),
	}
}

func (p *progressReporter) observe(res organizer.Result, done, total int) {
	if p.interactive {
		if p.bar == nil {
			p.bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(p.writer),
				progressbar.OptionSetDescription("organizing"),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(30),
				progressbar.OptionClearOnFinish(),
			)
		}
		_ = p.bar.Add(1)
		return
	}
	if done == total || done%progressLogInterval == 0 {
		p.logger.Info("progress",
			logging.Int("done", done),
			logging.Int("total", total),
			logging.String("last_outcome", res.Outcome.String()),
		)
	}
}

func (p *progressReporter) finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}
