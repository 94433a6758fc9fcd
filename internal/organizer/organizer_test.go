package organizer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"exifsort/internal/logging"
	"exifsort/internal/services"
	"exifsort/internal/testsupport"
)

func listJPEGs(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == ".jpg" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names
}

func TestRunMovesDistinctTimestamps(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	base := time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		testsupport.WriteJPEG(t, filepath.Join(in, string(rune('a'+i))+".jpg"), base.Add(time.Duration(i)*time.Second))
	}

	org := New(testsupport.NewConfig(t), logging.NewNop(), in, out)
	summary, err := org.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if summary.Total != 5 || summary.Moved != 5 || summary.Skipped != 0 || summary.Failed != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	if got := listJPEGs(t, out); len(got) != 5 {
		t.Fatalf("expected 5 outputs, got %v", got)
	}
	if got := listJPEGs(t, in); len(got) != 0 {
		t.Fatalf("input should be drained, got %v", got)
	}
	want := filepath.Join(out, "2023-01-01_10-00-03.jpg")
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("expected canonical name %s: %v", want, err)
	}
}

func TestRunResolvesIdenticalTimestamps(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	taken := time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC)
	for _, name := range []string{"a.jpg", "b.jpg", "c.jpeg"} {
		testsupport.WriteJPEG(t, filepath.Join(in, name), taken)
	}

	org := New(testsupport.NewConfig(t), logging.NewNop(), in, out)
	summary, err := org.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if summary.Moved != 3 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	got := listJPEGs(t, out)
	want := []string{
		"2023-01-01_10-00-00.jpg",
		"2023-01-01_10-00-00_1.jpg",
		"2023-01-01_10-00-00_2.jpg",
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestRunSkipsFilesWithoutMetadata(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	testsupport.WriteJPEGWithoutEXIF(t, filepath.Join(in, "plain.jpg"))
	testsupport.WriteJPEGDateString(t, filepath.Join(in, "garbled.jpg"), "definitely-not-a-date", 0)
	testsupport.WriteJPEG(t, filepath.Join(in, "good.jpg"), time.Date(2023, 3, 3, 3, 3, 3, 0, time.UTC))

	org := New(testsupport.NewConfig(t), logging.NewNop(), in, out)
	summary, err := org.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if summary.Moved != 1 || summary.Skipped != 2 || summary.Failed != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	// Skipped files stay where they were.
	got := listJPEGs(t, in)
	if len(got) != 2 {
		t.Fatalf("skipped files must remain in input, got %v", got)
	}
	if len(summary.Problems) != 2 {
		t.Fatalf("expected 2 problem records, got %+v", summary.Problems)
	}
	for _, p := range summary.Problems {
		if !services.Recoverable(p.Err) {
			t.Fatalf("skip should carry a recoverable error, got %v", p.Err)
		}
	}
}

func TestRunAgainstPrepopulatedOutput(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	taken := time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC)
	if err := os.WriteFile(filepath.Join(out, "2023-01-01_10-00-00.jpg"), []byte("existing"), 0o644); err != nil {
		t.Fatal(err)
	}
	testsupport.WriteJPEG(t, filepath.Join(in, "new.jpg"), taken)

	org := New(testsupport.NewConfig(t), logging.NewNop(), in, out)
	if _, err := org.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(out, "2023-01-01_10-00-00_1.jpg")); err != nil {
		t.Fatalf("expected _1 suffix for pre-existing name: %v", err)
	}
	content, err := os.ReadFile(filepath.Join(out, "2023-01-01_10-00-00.jpg"))
	if err != nil || string(content) != "existing" {
		t.Fatalf("pre-existing file was disturbed: %q (%v)", content, err)
	}
}

func TestRunFullScanFindsLateMetadata(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	taken := time.Date(2023, 5, 5, 5, 5, 5, 0, time.UTC)
	// EXIF sits behind 8 KiB of padding, beyond the configured window.
	testsupport.WriteJPEGDateString(t, filepath.Join(in, "late.jpg"), taken.Format("2006:01:02 15:04:05"), 8*1024)

	cfg := testsupport.NewConfig(t)
	cfg.Scan.WindowKiB = 1
	org := New(cfg, logging.NewNop(), in, out)
	summary, err := org.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if summary.Skipped != 1 || summary.Moved != 0 {
		t.Fatalf("bounded scan should skip late metadata: %+v", summary)
	}

	cfg.Scan.FullScan = true
	org = New(cfg, logging.NewNop(), in, out)
	summary, err = org.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if summary.Moved != 1 {
		t.Fatalf("full scan should move the file: %+v", summary)
	}
	if _, err := os.Stat(filepath.Join(out, "2023-05-05_05-05-05.jpg")); err != nil {
		t.Fatal(err)
	}
}

func TestRunReportsProgress(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	base := time.Date(2023, 2, 2, 2, 2, 2, 0, time.UTC)
	for i := 0; i < 4; i++ {
		testsupport.WriteJPEG(t, filepath.Join(in, string(rune('a'+i))+".jpg"), base.Add(time.Duration(i)*time.Minute))
	}

	var dones []int
	org := New(testsupport.NewConfig(t), logging.NewNop(), in, out)
	org.SetProgress(func(res Result, done, total int) {
		if total != 4 {
			t.Errorf("total = %d, want 4", total)
		}
		dones = append(dones, done)
	})
	if _, err := org.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(dones) != 4 || dones[len(dones)-1] != 4 {
		t.Fatalf("unexpected progress sequence: %v", dones)
	}
}

func TestRunRejectsNestedOutputDir(t *testing.T) {
	in := t.TempDir()
	cases := []string{in, filepath.Join(in, "sorted")}
	for _, out := range cases {
		org := New(testsupport.NewConfig(t), logging.NewNop(), in, out)
		_, err := org.Run(context.Background())
		if !errors.Is(err, services.ErrValidation) {
			t.Fatalf("out=%s: expected ErrValidation, got %v", out, err)
		}
	}
}

func TestRunRejectsMissingInputDir(t *testing.T) {
	org := New(testsupport.NewConfig(t), logging.NewNop(), filepath.Join(t.TempDir(), "absent"), t.TempDir())
	_, err := org.Run(context.Background())
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestRunCreatesOutputDir(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "fresh", "nested")
	testsupport.WriteJPEG(t, filepath.Join(in, "a.jpg"), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	org := New(testsupport.NewConfig(t), logging.NewNop(), in, out)
	summary, err := org.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if summary.Moved != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestRunHeldLockRejected(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()

	lock, err := acquireRunLock(out)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = lock.Unlock() }()

	org := New(testsupport.NewConfig(t), logging.NewNop(), in, out)
	if _, err := org.Run(context.Background()); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected ErrValidation for held lock, got %v", err)
	}
}

func TestRunEmptyInput(t *testing.T) {
	org := New(testsupport.NewConfig(t), logging.NewNop(), t.TempDir(), t.TempDir())
	summary, err := org.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if summary.Total != 0 || summary.Moved != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}
