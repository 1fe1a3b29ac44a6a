package fhir

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/ehr/fhirmodels/pkg/fhirmodels"
)

// ErrLineTooLong is returned by NDJSONReader.Next for a line longer than the
// reader's limit.
var ErrLineTooLong = errors.New("ndjson line too long")

// Line is one non-blank line of an NDJSON stream.
type Line struct {
	// Number is the 1-based line number in the stream.
	Number int
	Raw    fhirmodels.RawResource
}

// NDJSONReader reads resources in NDJSON (Newline Delimited JSON) format,
// the format of FHIR Bulk Data exports. Blank lines are skipped.
type NDJSONReader struct {
	r       *bufio.Reader
	line    int
	maxLine int
	err     error
}

// NewNDJSONReader creates a reader over r. Lines longer than maxLine bytes
// fail with ErrLineTooLong; maxLine <= 0 disables the limit.
func NewNDJSONReader(r io.Reader, maxLine int) *NDJSONReader {
	return &NDJSONReader{r: bufio.NewReader(r), maxLine: maxLine}
}

// Next returns the next non-blank line, or io.EOF at the end of the stream.
// The returned RawResource is not checked; call Validate or Decode on it.
// A line over the limit is not buffered past it: Next stops reading and
// keeps returning ErrLineTooLong.
func (n *NDJSONReader) Next() (Line, error) {
	if n.err != nil {
		return Line{}, n.err
	}
	for {
		data, err := n.readLine()
		if err != nil {
			n.err = err
			return Line{}, err
		}
		data = bytes.TrimSpace(data)
		if len(data) == 0 {
			continue
		}
		return Line{Number: n.line, Raw: fhirmodels.RawResource(data)}, nil
	}
}

// readLine reads one line in buffer-sized chunks.
func (n *NDJSONReader) readLine() ([]byte, error) {
	var line []byte
	read := 0
	for {
		chunk, err := n.r.ReadSlice('\n')
		read += len(chunk)
		line = append(line, chunk...)
		if n.maxLine > 0 && len(line) > n.maxLine && len(bytes.TrimSpace(line)) > n.maxLine {
			return nil, fmt.Errorf("%w: line %d exceeds %d bytes", ErrLineTooLong, n.line+1, n.maxLine)
		}
		switch {
		case err == nil:
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if read == 0 {
				return nil, io.EOF
			}
		default:
			return nil, err
		}
		n.line++
		return line, nil
	}
}

// NDJSONWriter writes resources in NDJSON format. Each resource is
// serialised as a single JSON line followed by a newline character.
type NDJSONWriter struct {
	w *bufio.Writer
}

// NewNDJSONWriter creates a new NDJSONWriter that writes to w.
func NewNDJSONWriter(w io.Writer) *NDJSONWriter {
	return &NDJSONWriter{
		w: bufio.NewWriter(w),
	}
}

// WriteResource encodes resource as FHIR JSON on a single line.
func (n *NDJSONWriter) WriteResource(resource fhirmodels.Resource) error {
	data, err := fhirmodels.Marshal(resource)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", resource.ResourceType(), err)
	}
	return n.writeLine(data)
}

// WriteRaw writes an already encoded resource, compacting it onto one line.
func (n *NDJSONWriter) WriteRaw(raw fhirmodels.RawResource) error {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return fmt.Errorf("compacting resource: %w", err)
	}
	return n.writeLine(buf.Bytes())
}

func (n *NDJSONWriter) writeLine(data []byte) error {
	if _, err := n.w.Write(data); err != nil {
		return err
	}
	return n.w.WriteByte('\n')
}

// Flush flushes any buffered data to the underlying writer.
func (n *NDJSONWriter) Flush() error {
	return n.w.Flush()
}
