package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsYamlEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "world.yaml")
	if err := os.WriteFile(path, []byte("sheets: {}\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case got := <-w.Events:
		if got != path {
			t.Fatalf("event path = %q, want %q", got, path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event for yaml write")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case got := <-w.Events:
		t.Fatalf("unexpected event for non-yaml file: %q", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseWithFullEventBuffer(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	// More distinct files than the Events buffer holds, with no reader, so
	// the run loop ends up blocked on a send.
	for i := 0; i < 24; i++ {
		path := filepath.Join(dir, fmt.Sprintf("cfg%02d.yaml", i))
		if err := os.WriteFile(path, []byte("sheets: {}\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	time.Sleep(300 * time.Millisecond)

	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// The run loop must drop the blocked send, exit, and close Events.
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-w.Events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("Events not closed after Close")
		}
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}
