package testsupport

import (
	"testing"

	"exifsort/internal/config"
)

// NewConfig returns a validated config suitable for tests: two workers and
// the default bounded window.
func NewConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Scan.Workers = 2
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	return &cfg
}
