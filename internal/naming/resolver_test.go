package naming

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

var testTime = time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC)

func TestResolveBaseName(t *testing.T) {
	dir := t.TempDir()
	claims := NewClaimSet()

	got, err := claims.Resolve(dir, testTime)
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "2023-01-01_10-00-00.jpg")
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResolveSuffixesOnRepeatedClaims(t *testing.T) {
	dir := t.TempDir()
	claims := NewClaimSet()

	want := []string{
		"2023-01-01_10-00-00.jpg",
		"2023-01-01_10-00-00_1.jpg",
		"2023-01-01_10-00-00_2.jpg",
	}
	for i, name := range want {
		got, err := claims.Resolve(dir, testTime)
		if err != nil {
			t.Fatal(err)
		}
		if filepath.Base(got) != name {
			t.Fatalf("claim %d: got %q, want %q", i, filepath.Base(got), name)
		}
	}
	if claims.Len() != len(want) {
		t.Fatalf("claim set size %d, want %d", claims.Len(), len(want))
	}
}

func TestResolveSkipsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"2023-01-01_10-00-00.jpg", "2023-01-01_10-00-00_1.jpg"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	claims := NewClaimSet()
	got, err := claims.Resolve(dir, testTime)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(got) != "2023-01-01_10-00-00_2.jpg" {
		t.Fatalf("got %q", filepath.Base(got))
	}
}

func TestResolveConcurrentUniqueness(t *testing.T) {
	dir := t.TempDir()
	claims := NewClaimSet()

	const n = 64
	results := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			path, err := claims.Resolve(dir, testTime)
			if err != nil {
				t.Error(err)
				return
			}
			results <- path
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]struct{}, n)
	for path := range results {
		if _, dup := seen[path]; dup {
			t.Fatalf("duplicate destination %q", path)
		}
		seen[path] = struct{}{}
	}
	if len(seen) != n {
		t.Fatalf("resolved %d unique names, want %d", len(seen), n)
	}
}

func TestResolveDistinctTimestampsDoNotCollide(t *testing.T) {
	dir := t.TempDir()
	claims := NewClaimSet()

	for i := 0; i < 5; i++ {
		got, err := claims.Resolve(dir, testTime.Add(time.Duration(i)*time.Second))
		if err != nil {
			t.Fatal(err)
		}
		want := fmt.Sprintf("2023-01-01_10-00-0%d.jpg", i)
		if filepath.Base(got) != want {
			t.Fatalf("got %q, want %q", filepath.Base(got), want)
		}
	}
}
