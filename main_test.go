package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/log"
)

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "cornell.png")
	ppm := filepath.Join(dir, "cornell.ppm")

	tests := []struct {
		name        string
		args        []string
		expectError bool
	}{
		{"tiny cornell", []string{"render", "--scene", "cornell", "--width", "8", "--spp", "1", "--depth", "3", "--workers", "2", "--out", out, "--ppm", ppm, "--thumbnail", "4"}, false},
		{"unknown scene", []string{"render", "--scene", "nonexistent", "--out", out}, true},
		{"non-square spp", []string{"render", "--scene", "cornell", "--width", "4", "--spp", "3", "--out", out}, true},
		{"stray argument", []string{"render", "cornell"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newApp().Run(append([]string{"pathtracer"}, tt.args...))
			if tt.expectError && err == nil {
				t.Errorf("Expected an error for %v", tt.args)
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error for %v: %v", tt.args, err)
			}
		})
	}

	for _, path := range []string{out, ppm, filepath.Join(dir, "cornell_thumb.png")} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("Expected %s to be written: %v", path, err)
		}
	}

	data, err := os.ReadFile(ppm)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "P3\n8 8\n255\n") {
		t.Errorf("Unexpected PPM header: %q", string(data[:min(len(data), 16)]))
	}
}

func TestScenesCommand(t *testing.T) {
	app := newApp()
	var buf bytes.Buffer
	app.Writer = &buf

	if err := app.Run([]string{"pathtracer", "scenes"}); err != nil {
		t.Fatalf("scenes failed: %v", err)
	}

	for _, name := range []string{"default", "cornell", "cornell-smoke", "final"} {
		if !strings.Contains(buf.String(), name) {
			t.Errorf("Expected scene %q in listing:\n%s", name, buf.String())
		}
	}
}

func TestRunReportsErrors(t *testing.T) {
	var logs bytes.Buffer
	log.SetSink(&logs)
	defer log.SetSink(os.Stderr)

	out := filepath.Join(t.TempDir(), "x.png")
	code := run([]string{"pathtracer", "render", "--scene", "nonexistent", "--out", out})
	if code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.Contains(logs.String(), `unknown scene "nonexistent"`) {
		t.Errorf("Expected the error to be logged, got %q", logs.String())
	}
}

func TestVersionFlagDoesNotClaimVerbose(t *testing.T) {
	app := newApp()
	var buf bytes.Buffer
	app.Writer = &buf

	if err := app.Run([]string{"pathtracer", "-v", "scenes"}); err != nil {
		t.Fatalf("-v scenes failed: %v", err)
	}
	if !strings.Contains(buf.String(), "cornell") {
		t.Errorf("Expected the scene listing with -v, got:\n%s", buf.String())
	}

	app = newApp()
	buf.Reset()
	app.Writer = &buf
	if err := app.Run([]string{"pathtracer", "--version"}); err != nil {
		t.Fatalf("--version failed: %v", err)
	}
	if !strings.Contains(buf.String(), "0.1.0") {
		t.Errorf("Expected the version, got %q", buf.String())
	}
}
