package fhir

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/ehr/fhirmodels/pkg/fhirmodels"
)

func readAllLines(t *testing.T, r *NDJSONReader) []Line {
	t.Helper()
	var lines []Line
	for {
		line, err := r.Next()
		if errors.Is(err, io.EOF) {
			return lines
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		lines = append(lines, line)
	}
}

func TestNDJSONReader_Lines(t *testing.T) {
	input := `{"resourceType":"Patient","id":"p1"}

{"resourceType":"Observation","id":"o1"}
   
{"resourceType":"Patient","id":"p2"}`

	lines := readAllLines(t, NewNDJSONReader(strings.NewReader(input), 0))
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}

	wantNumbers := []int{1, 3, 5}
	wantIDs := []string{"p1", "o1", "p2"}
	for i, line := range lines {
		if line.Number != wantNumbers[i] {
			t.Errorf("line %d: Number = %d, want %d", i, line.Number, wantNumbers[i])
		}
		if line.Raw.ID() != wantIDs[i] {
			t.Errorf("line %d: ID = %q, want %q", i, line.Raw.ID(), wantIDs[i])
		}
	}
	if lines[1].Raw.ResourceType() != "Observation" {
		t.Errorf("expected Observation, got %q", lines[1].Raw.ResourceType())
	}
}

func TestNDJSONReader_CRLF(t *testing.T) {
	input := "{\"resourceType\":\"Basic\"}\r\n{\"resourceType\":\"Basic\"}\r\n"
	lines := readAllLines(t, NewNDJSONReader(strings.NewReader(input), 0))
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if err := lines[0].Raw.Validate(); err != nil {
		t.Errorf("expected trimmed line to validate: %v", err)
	}
}

func TestNDJSONReader_Empty(t *testing.T) {
	_, err := NewNDJSONReader(strings.NewReader(""), 0).Next()
	if !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestNDJSONReader_LineTooLong(t *testing.T) {
	input := `{"resourceType":"Basic"}` + "\n" + `{"resourceType":"Basic","id":"` + strings.Repeat("x", 100) + `"}`
	r := NewNDJSONReader(strings.NewReader(input), 64)

	if _, err := r.Next(); err != nil {
		t.Fatalf("first line: %v", err)
	}
	_, err := r.Next()
	if !errors.Is(err, ErrLineTooLong) {
		t.Fatalf("expected ErrLineTooLong, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q should name line 2", err)
	}
}

// endless yields an unterminated line forever and counts what was read.
type endless struct{ n int }

func (e *endless) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 'x'
	}
	e.n += len(p)
	return len(p), nil
}

func TestNDJSONReader_LineTooLongStopsReading(t *testing.T) {
	src := &endless{}
	r := NewNDJSONReader(src, 10_000)

	_, err := r.Next()
	if !errors.Is(err, ErrLineTooLong) {
		t.Fatalf("expected ErrLineTooLong, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 1") {
		t.Errorf("error %q should name line 1", err)
	}
	if src.n > 10_000+2*4096 {
		t.Errorf("read %d bytes, want the reader to stop near the 10000 byte limit", src.n)
	}

	consumed := src.n
	if _, err := r.Next(); !errors.Is(err, ErrLineTooLong) {
		t.Errorf("second Next: expected ErrLineTooLong, got %v", err)
	}
	if src.n != consumed {
		t.Errorf("second Next read %d more bytes", src.n-consumed)
	}
}

func TestNDJSONReader_LongLineWithinLimit(t *testing.T) {
	id := strings.Repeat("a", 20_000)
	input := `{"resourceType":"Basic","id":"` + id + `"}` + "\n  \n" + `{"resourceType":"Basic","id":"b"}`
	lines := readAllLines(t, NewNDJSONReader(strings.NewReader(input), 32_000))
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Raw.ID() != id {
		t.Errorf("first line ID has %d bytes, want %d", len(lines[0].Raw.ID()), len(id))
	}
	if lines[1].Number != 3 {
		t.Errorf("second resource Number = %d, want 3", lines[1].Number)
	}
}

func TestNDJSONWriter_Resources(t *testing.T) {
	var buf bytes.Buffer
	w := NewNDJSONWriter(&buf)

	patients := []*fhirmodels.Patient{
		{ID: fhirmodels.Ptr("p1"), Active: fhirmodels.Ptr(true)},
		{ID: fhirmodels.Ptr("p2")},
	}
	for _, p := range patients {
		if err := w.WriteResource(p); err != nil {
			t.Fatalf("WriteResource failed: %v", err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	want := `{"resourceType":"Patient","id":"p1","active":true}` + "\n" +
		`{"resourceType":"Patient","id":"p2"}` + "\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestNDJSONWriter_Raw(t *testing.T) {
	var buf bytes.Buffer
	w := NewNDJSONWriter(&buf)
	raw := fhirmodels.RawResource("{\n  \"resourceType\": \"Basic\",\n  \"id\": \"b1\"\n}")
	if err := w.WriteRaw(raw); err != nil {
		t.Fatalf("WriteRaw failed: %v", err)
	}
	if err := w.WriteRaw(fhirmodels.RawResource("{oops")); err == nil {
		t.Error("expected error for malformed raw resource")
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if buf.String() != `{"resourceType":"Basic","id":"b1"}`+"\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestNDJSON_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewNDJSONWriter(&buf)
	for _, id := range []string{"a", "b", "c"} {
		if err := w.WriteResource(&fhirmodels.Basic{ID: fhirmodels.Ptr(id)}); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	lines := readAllLines(t, NewNDJSONReader(&buf, 0))
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	r, err := lines[2].Raw.Decode()
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if r.ResourceType() != "Basic" || r.ResourceID() != "c" {
		t.Errorf("decoded %s/%s, want Basic/c", r.ResourceType(), r.ResourceID())
	}
}
