package fileutil

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestEnsureDirIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := EnsureDir(dir); err != nil {
		t.Fatal(err)
	}
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("second EnsureDir failed: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory at %s: %v", dir, err)
	}
}

func TestEnsureDirConcurrent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "group")
	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = EnsureDir(dir)
		}(i)
	}
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			t.Fatalf("goroutine %d: %v", i, err)
		}
	}
}

func TestWriteFileCreatesParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "id_en.txt")
	if err := WriteFile(path, []byte("hello")); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello" {
		t.Fatalf("content mismatch: %q", got)
	}
}

func TestSanitizeSegment(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"en", "en"},
		{"EN-us", "EN-us"},
		{"user name", "user_name"},
		{"../../etc", "etc"},
		{"a/b\\c", "a_b_c"},
		{"", "unknown"},
		{"///", "unknown"},
		{"7298361089145061890", "7298361089145061890"},
	}
	for _, tc := range cases {
		if got := SanitizeSegment(tc.in); got != tc.want {
			t.Fatalf("SanitizeSegment(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
