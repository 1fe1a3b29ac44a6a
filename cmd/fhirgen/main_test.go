package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FORMAT", "json")
	var logs bytes.Buffer
	logger := zerolog.Nop()
	cmd := newRootCmd(&logger, &logs)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return logs.String(), err
}

const miniSchema = `
types:
  - name: Extension
    kind: datatype
    fields:
      - url uri noext
  - name: Widget
    kind: datatype
    doc: A test widget.
    fields:
      - label string
      - size code(WidgetSize)
valueSets:
  WidgetSize: [small, large]
`

func writeSchema(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "mini.yaml"), []byte(miniSchema), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestGenerateThenCheck(t *testing.T) {
	schema := writeSchema(t)
	out := t.TempDir()

	logs, err := run(t, "generate", "--schema", schema, "--out", out)
	if err != nil {
		t.Fatalf("generate failed: %v\n%s", err, logs)
	}
	if !strings.Contains(logs, "generation complete") {
		t.Errorf("logs = %s", logs)
	}
	src, err := os.ReadFile(filepath.Join(out, "widget.go"))
	if err != nil {
		t.Fatalf("widget.go not written: %v", err)
	}
	if !bytes.Contains(src, []byte("type Widget struct")) {
		t.Errorf("widget.go lacks the Widget type:\n%s", src)
	}

	if logs, err := run(t, "check", "--schema", schema, "--out", out); err != nil {
		t.Fatalf("check after generate failed: %v\n%s", err, logs)
	}

	if err := os.WriteFile(filepath.Join(out, "widget.go"), []byte("// Code generated by fhirgen. DO NOT EDIT.\n\npackage fhirmodels\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	logs, err = run(t, "check", "--schema", schema, "--out", out)
	if !errors.Is(err, errStale) {
		t.Fatalf("expected errStale, got %v", err)
	}
	if !strings.Contains(logs, "widget.go") {
		t.Errorf("logs should name the stale file: %s", logs)
	}
}

func TestGenerateInvalidSchema(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("types:\n  - name: Widget\n    kind: gizmo\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := run(t, "generate", "--schema", dir, "--out", t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "unknown kind") {
		t.Fatalf("expected schema error, got %v", err)
	}
}
