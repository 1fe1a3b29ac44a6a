package fhirgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generated(body string) []byte {
	return []byte(Header + "\n\npackage " + PackageName + "\n" + body)
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	files := map[string][]byte{
		"a.go": generated("type A struct{}\n"),
		"b.go": generated("type B struct{}\n"),
	}

	res, err := Write(dir, files, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.go", "b.go"}, res.Written)
	assert.Zero(t, res.Unchanged)

	files["b.go"] = generated("type B struct{ N int }\n")
	res, err = Write(dir, files, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.go"}, res.Written)
	assert.Equal(t, 1, res.Unchanged)

	got, err := os.ReadFile(filepath.Join(dir, "b.go"))
	require.NoError(t, err)
	assert.Equal(t, files["b.go"], got)
}

func TestWriteRefusesHandWrittenFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "codec.go"), []byte("package fhirmodels\n"), 0o644))

	_, err := Write(dir, map[string][]byte{"codec.go": generated("")}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to overwrite hand-written")
}

func TestWriteCleanRemovesStaleGeneratedFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "old.go"), generated("type Old struct{}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "codec.go"), []byte("package fhirmodels\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), generated(""), 0o644))

	res, err := Write(dir, map[string][]byte{"new.go": generated("")}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"new.go"}, res.Written)
	assert.Equal(t, []string{"old.go"}, res.Removed)

	assert.NoFileExists(t, filepath.Join(dir, "old.go"))
	assert.FileExists(t, filepath.Join(dir, "codec.go"))
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestDiff(t *testing.T) {
	dir := t.TempDir()
	files := map[string][]byte{
		"same.go":    generated("type Same struct{}\n"),
		"changed.go": generated("type Changed struct{ N int }\n"),
		"missing.go": generated("type Missing struct{}\n"),
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "same.go"), files["same.go"], 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "changed.go"), generated("type Changed struct{}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stale.go"), generated(""), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "codec.go"), []byte("package fhirmodels\n"), 0o644))

	diff, err := Diff(dir, files)
	require.NoError(t, err)
	assert.Equal(t, []string{"changed.go", "missing.go", "stale.go"}, diff)

	_, err = Write(dir, files, true)
	require.NoError(t, err)
	diff, err = Diff(dir, files)
	require.NoError(t, err)
	assert.Empty(t, diff)
}
