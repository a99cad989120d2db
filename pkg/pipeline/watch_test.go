package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchRerunsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mesh.obj")
	if err := os.WriteFile(path, []byte(squareOBJ), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, []string{path}, nil, func(context.Context) error {
			calls <- struct{}{}
			return errors.New("logged, not fatal")
		})
	}()

	wait := func(what string) {
		t.Helper()
		select {
		case <-calls:
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for %s", what)
		}
	}
	wait("initial run")

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(filepath.Dir(path), "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(squareOBJ+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	wait("re-run after write")

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
}

func TestWatchMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone", "mesh.obj")
	err := Watch(context.Background(), []string{path}, nil, func(context.Context) error { return nil })
	if err == nil {
		t.Error("expected an error watching a missing directory")
	}
}
