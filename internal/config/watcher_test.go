package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestWatcherReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charon.toml")
	if err := os.WriteFile(path, []byte("one"), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := func(p string) (string, error) {
		data, err := os.ReadFile(p)
		return strings.TrimSpace(string(data)), err
	}

	w := NewWatcher(path, loader, WithDebounce[string](50*time.Millisecond))
	reloaded := make(chan string, 1)
	w.OnReload(func(s string) { reloaded <- s })

	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("two"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-reloaded:
		if got != "two" {
			t.Errorf("reloaded %q, want %q", got, "two")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherLoaderError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charon.toml")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	wantErr := errors.New("broken")
	loader := func(string) (string, error) { return "", wantErr }

	failed := make(chan error, 1)
	w := NewWatcher(path, loader,
		WithDebounce[string](50*time.Millisecond),
		WithErrorHandler[string](func(err error) { failed <- err }))
	w.OnReload(func(string) { t.Error("handler must not run on loader error") })

	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("y"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-failed:
		if !errors.Is(err, wantErr) {
			t.Errorf("got error %v, want %v", err, wantErr)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for error callback")
	}
}
