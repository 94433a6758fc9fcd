package config

import "runtime"

const (
	defaultWindowKiB = 64
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
	maxWorkers       = 32
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Scan: Scan{
			Workers:   0,
			WindowKiB: defaultWindowKiB,
		},
		Log: Log{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// WorkerCount resolves the configured pool size; zero means one worker per CPU.
func (c *Config) WorkerCount() int {
	workers := c.Scan.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > maxWorkers {
		workers = maxWorkers
	}
	return workers
}

// WindowBytes returns the bounded-read window in bytes, or zero when the
// configuration requests full-file scanning.
func (c *Config) WindowBytes() int64 {
	if c.Scan.FullScan {
		return 0
	}
	return int64(c.Scan.WindowKiB) * 1024
}
