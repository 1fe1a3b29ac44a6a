package blobstore

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func readString(t *testing.T, src Source, location string) string {
	t.Helper()
	rc, err := src.Open(context.Background(), location)
	if err != nil {
		t.Fatalf("Open(%q): %v", location, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("reading %q: %v", location, err)
	}
	return string(data)
}

// ---------------------------------------------------------------------------
// FileSource
// ---------------------------------------------------------------------------

func TestFileSource_Open(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patient.json")
	if err := os.WriteFile(path, []byte(`{"resourceType":"Patient"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	src := FileSource{}
	if got := readString(t, src, path); got != `{"resourceType":"Patient"}` {
		t.Errorf("content = %q", got)
	}
	if got := readString(t, src, "file://"+path); got != `{"resourceType":"Patient"}` {
		t.Errorf("file:// content = %q", got)
	}
}

func TestFileSource_Stdin(t *testing.T) {
	src := FileSource{Stdin: strings.NewReader("from stdin")}
	if got := readString(t, src, Stdin); got != "from stdin" {
		t.Errorf("content = %q, want %q", got, "from stdin")
	}
}

func TestFileSource_NotFound(t *testing.T) {
	_, err := FileSource{}.Open(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFileSource_EmptyPath(t *testing.T) {
	_, err := FileSource{}.Open(context.Background(), "file://")
	if !errors.Is(err, ErrInvalidLocation) {
		t.Errorf("expected ErrInvalidLocation, got %v", err)
	}
}

func TestFileSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := FileSource{}.Open(ctx, Stdin)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// MemorySource
// ---------------------------------------------------------------------------

func TestMemorySource_PutAndOpen(t *testing.T) {
	src := NewMemorySource()
	data := []byte(`{"resourceType":"Basic"}`)
	src.Put("mem://basic", data)
	data[0] = 'X'

	if got := readString(t, src, "mem://basic"); got != `{"resourceType":"Basic"}` {
		t.Errorf("content = %q, stored document must not alias the caller's slice", got)
	}

	_, err := src.Open(context.Background(), "mem://other")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemorySource_Locations(t *testing.T) {
	src := NewMemorySource()
	src.Put("b", nil)
	src.Put("a", nil)
	src.Put("c", nil)

	got := strings.Join(src.Locations(), ",")
	if got != "a,b,c" {
		t.Errorf("Locations() = %s, want a,b,c", got)
	}
}

func TestMemorySource_ConcurrentAccess(t *testing.T) {
	src := NewMemorySource()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			src.Put("doc", []byte("x"))
		}()
		go func() {
			defer wg.Done()
			if rc, err := src.Open(context.Background(), "doc"); err == nil {
				rc.Close()
			}
		}()
	}
	wg.Wait()
}

// ---------------------------------------------------------------------------
// ReadAll
// ---------------------------------------------------------------------------

func TestReadAll(t *testing.T) {
	src := NewMemorySource()
	src.Put("small", []byte("12345"))

	data, err := ReadAll(context.Background(), src, "small", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "12345" {
		t.Errorf("data = %q", data)
	}

	_, err = ReadAll(context.Background(), src, "small", 4)
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("expected ErrTooLarge, got %v", err)
	}

	_, err = ReadAll(context.Background(), src, "missing", 0)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Router
// ---------------------------------------------------------------------------

func TestRouter_Dispatch(t *testing.T) {
	local := NewMemorySource()
	local.Put("bundle.json", []byte("local"))
	remote := NewMemorySource()
	remote.Put("s3://fhir/bundle.json", []byte("remote"))

	r := NewRouter(local)
	r.Handle("S3", remote)

	if got := readString(t, r, "bundle.json"); got != "local" {
		t.Errorf("scheme-less location = %q, want local", got)
	}
	if got := readString(t, r, "s3://fhir/bundle.json"); got != "remote" {
		t.Errorf("s3 location = %q, want remote", got)
	}

	_, err := r.Open(context.Background(), "gs://fhir/bundle.json")
	if !errors.Is(err, ErrUnsupportedScheme) {
		t.Errorf("expected ErrUnsupportedScheme, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// ObjectSource
// ---------------------------------------------------------------------------

func TestParseObjectLocation(t *testing.T) {
	tests := []struct {
		location string
		bucket   string
		key      string
		wantErr  bool
	}{
		{"s3://exports/2024/Patient.ndjson", "exports", "2024/Patient.ndjson", false},
		{"s3://exports/a", "exports", "a", false},
		{"s3://exports", "", "", true},
		{"s3://exports/", "", "", true},
		{"s3:///key", "", "", true},
		{"/tmp/file.json", "", "", true},
	}
	for _, tt := range tests {
		bucket, key, err := ParseObjectLocation(tt.location)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidLocation) {
				t.Errorf("ParseObjectLocation(%q): expected ErrInvalidLocation, got %v", tt.location, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseObjectLocation(%q): unexpected error: %v", tt.location, err)
			continue
		}
		if bucket != tt.bucket || key != tt.key {
			t.Errorf("ParseObjectLocation(%q) = %q, %q, want %q, %q", tt.location, bucket, key, tt.bucket, tt.key)
		}
	}
}

func TestNewObjectSource_RequiresEndpoint(t *testing.T) {
	if _, err := NewObjectSource(ObjectConfig{}); err == nil {
		t.Fatal("expected error for missing endpoint")
	}
}

func newTestObjectSource(t *testing.T, handler http.HandlerFunc) *ObjectSource {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	src, err := NewObjectSource(ObjectConfig{
		Endpoint:  strings.TrimPrefix(srv.URL, "http://"),
		AccessKey: "test",
		SecretKey: "test-secret",
		Region:    "us-east-1",
	})
	if err != nil {
		t.Fatalf("NewObjectSource: %v", err)
	}
	return src
}

func TestObjectSource_Open(t *testing.T) {
	body := `{"resourceType":"Patient","id":"p1"}`
	src := newTestObjectSource(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/exports/Patient.json" {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`)
			return
		}
		w.Header().Set("Content-Type", "application/fhir+json")
		w.Header().Set("Content-Length", "36")
		w.Header().Set("ETag", `"abc123"`)
		w.Header().Set("Last-Modified", "Mon, 02 Jan 2006 15:04:05 GMT")
		io.WriteString(w, body)
	})

	if got := readString(t, src, "s3://exports/Patient.json"); got != body {
		t.Errorf("content = %q, want %q", got, body)
	}

	_, err := src.Open(context.Background(), "s3://exports/Missing.json")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestObjectSource_InvalidLocation(t *testing.T) {
	src := newTestObjectSource(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL.Path)
	})
	_, err := src.Open(context.Background(), "s3://only-bucket")
	if !errors.Is(err, ErrInvalidLocation) {
		t.Errorf("expected ErrInvalidLocation, got %v", err)
	}
}
