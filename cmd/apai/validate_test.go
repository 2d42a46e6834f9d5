package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/FabioGuin/open-apia/pkg/apai/validator"
)

func TestResultPasses(t *testing.T) {
	tests := []struct {
		name   string
		result *validator.Result
		strict bool
		want   bool
	}{
		{"clean", &validator.Result{Valid: true}, false, true},
		{"errors", &validator.Result{Valid: false, Errors: []string{"Missing required section: info"}}, false, false},
		{"warnings pass", &validator.Result{Valid: true, Warnings: []string{"Version 0.2.0 may not be supported"}}, false, true},
		{"warnings fail strict", &validator.Result{Valid: true, Warnings: []string{"Version 0.2.0 may not be supported"}}, true, false},
		{"clean strict", &validator.Result{Valid: true}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := validateFlags.strict
			validateFlags.strict = tt.strict
			defer func() { validateFlags.strict = prev }()

			if got := resultPasses(tt.result); got != tt.want {
				t.Errorf("resultPasses() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPrintTextResult_StrictWarnings(t *testing.T) {
	result := &validator.Result{
		File:     "spec.yaml",
		Valid:    true,
		Warnings: []string{"Version 0.2.0 may not be supported"},
	}

	render := func(strict bool) string {
		prev := validateFlags.strict
		validateFlags.strict = strict
		defer func() { validateFlags.strict = prev }()

		var buf bytes.Buffer
		printTextResult(&buf, result)
		return buf.String()
	}

	strict := render(true)
	if !strings.Contains(strict, "✗ Validation failed: warnings treated as errors") {
		t.Errorf("strict output = %q, want a failure line", strict)
	}
	if strings.Contains(strict, "✓") {
		t.Errorf("strict output = %q, must not claim the run passed", strict)
	}

	lenient := render(false)
	if !strings.Contains(lenient, "✓ Validation passed with warnings") {
		t.Errorf("output = %q, want pass-with-warnings line", lenient)
	}
}

func TestWatchDirs_CoversAncestorDirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "teams"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "organization.yaml"), []byte("openapia: 0.1.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	child := filepath.Join(dir, "teams", "support.yaml")
	if err := os.WriteFile(child, []byte("inherits:\n  - ../organization.yaml\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	dirs := watchDirs(child)

	want := map[string]bool{
		filepath.Join(dir, "teams"): false,
		dir:                         false,
	}
	for _, d := range dirs {
		if _, ok := want[d]; !ok {
			t.Errorf("unexpected watch dir %q", d)
			continue
		}
		want[d] = true
	}
	for d, covered := range want {
		if !covered {
			t.Errorf("watchDirs() = %v, missing %q", dirs, d)
		}
	}
}

func TestWatchDirs_RootUnreadable(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "teams", "absent.yaml")

	dirs := watchDirs(missing)
	if len(dirs) != 1 || dirs[0] != filepath.Dir(missing) {
		t.Errorf("watchDirs() = %v, want just the root's directory", dirs)
	}
}
