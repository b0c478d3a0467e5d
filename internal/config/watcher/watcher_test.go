package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func waitFor(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestWatcherDetectsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	writeFile(t, path, "gestures: []\n")

	changed := make(chan struct{}, 1)
	w, err := New(path, 20*time.Millisecond, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()

	writeFile(t, path, "gestures: [Mouse Up]\n")
	waitFor(t, changed, "write event")
}

func TestWatcherDetectsReplace(t *testing.T) {
	// Editors save by writing a temp file and renaming it over the target.
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	writeFile(t, path, "gestures: []\n")

	changed := make(chan struct{}, 1)
	w, err := New(path, 20*time.Millisecond, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()

	tmp := filepath.Join(dir, "rules.yaml.tmp")
	writeFile(t, tmp, "gestures: [Mouse Down]\n")
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("renaming: %v", err)
	}
	waitFor(t, changed, "replace event")
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	writeFile(t, path, "gestures: []\n")

	changed := make(chan struct{}, 8)
	w, err := New(path, 10*time.Millisecond, func() {
		changed <- struct{}{}
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()

	writeFile(t, filepath.Join(dir, "unrelated.txt"), "noise")

	select {
	case <-changed:
		t.Error("handler called for an unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherCloseIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	writeFile(t, path, "gestures: []\n")

	w, err := New(path, 0, func() {})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestWatcherMissingDir(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing", "rules.yaml"), 0, func() {}); err == nil {
		t.Error("New() error = nil for a missing directory, want error")
	}
}
