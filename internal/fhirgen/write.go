package fhirgen

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Result summarizes a Write.
type Result struct {
	Written   []string
	Unchanged int
	Removed   []string
}

// Write stores files in dir, skipping files whose content is already up to
// date. With clean set, generated files in dir that are no longer produced
// are removed; hand-written files are never touched.
func Write(dir string, files map[string][]byte, clean bool) (*Result, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	res := &Result{}
	for _, name := range sortedNames(files) {
		path := filepath.Join(dir, name)
		old, err := os.ReadFile(path)
		switch {
		case err == nil && bytes.Equal(old, files[name]):
			res.Unchanged++
			continue
		case err == nil && !isGenerated(old):
			return nil, fmt.Errorf("refusing to overwrite hand-written %s", path)
		case err != nil && !errors.Is(err, os.ErrNotExist):
			return nil, err
		}
		if err := os.WriteFile(path, files[name], 0o644); err != nil {
			return nil, err
		}
		res.Written = append(res.Written, name)
	}
	if !clean {
		return res, nil
	}
	stale, err := staleFiles(dir, files)
	if err != nil {
		return nil, err
	}
	for _, name := range stale {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return nil, err
		}
		res.Removed = append(res.Removed, name)
	}
	return res, nil
}

// Diff lists the files of dir that differ from files: missing, changed, or
// generated but no longer produced.
func Diff(dir string, files map[string][]byte) ([]string, error) {
	var out []string
	for _, name := range sortedNames(files) {
		old, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if !bytes.Equal(old, files[name]) {
			out = append(out, name)
		}
	}
	stale, err := staleFiles(dir, files)
	if err != nil {
		return nil, err
	}
	return append(out, stale...), nil
}

func staleFiles(dir string, files map[string][]byte) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var stale []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") {
			continue
		}
		if _, ok := files[name]; ok {
			continue
		}
		generated, err := fileIsGenerated(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		if generated {
			stale = append(stale, name)
		}
	}
	return stale, nil
}

func fileIsGenerated(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()
	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}
	return isGenerated([]byte(line)), nil
}

func isGenerated(src []byte) bool {
	return bytes.HasPrefix(src, []byte(Header))
}

func sortedNames(files map[string][]byte) []string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
