//go:build (linux || darwin) && !noplugin
// +build linux darwin
// +build !noplugin

// Package loader tests for the plugin-backed Load path.
package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mwade/greetlink/internal/apperr"
)

// TestLoadMissingArtifact verifies a missing artifact is reported as a
// coded error before any plugin machinery runs.
func TestLoadMissingArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), ArtifactName)

	g, err := Load(path)
	if err == nil {
		t.Fatal("Load() with missing artifact should fail")
	}
	if g != nil {
		t.Errorf("Load() returned greeter %v alongside error", g)
	}
	if !apperr.Is(err, apperr.ErrArtifactMissing) {
		t.Errorf("Load() error = %v, want code %s", err, apperr.ErrArtifactMissing)
	}
}

// TestLoadNotAPlugin verifies a present but invalid artifact surfaces
// as a plugin open failure.
func TestLoadNotAPlugin(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ArtifactName)
	if err := os.WriteFile(path, []byte("not a shared object"), 0o644); err != nil {
		t.Fatalf("Failed to write fake artifact: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() with invalid artifact should fail")
	}
	if !apperr.Is(err, apperr.ErrPluginOpen) {
		t.Errorf("Load() error = %v, want code %s", err, apperr.ErrPluginOpen)
	}
}
