package fhirmodels

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrorKind classifies a decoding failure.
type ErrorKind int

const (
	// MalformedJSON means the input is not a JSON document.
	MalformedJSON ErrorKind = iota + 1
	// TypeMismatch means a member's JSON shape does not match its field.
	TypeMismatch
	// UnknownEnumValue means a coded member is outside its closed value set.
	UnknownEnumValue
	// MissingRequiredField means a mandatory member is absent. The base model
	// treats every field as optional; only the resourceType discriminator of a
	// polymorphic resource slot is required.
	MissingRequiredField
)

// Sentinel errors matched by DecodeError.Is, so callers can write
// errors.Is(err, fhirmodels.ErrUnknownEnumValue).
var (
	ErrMalformedJSON        = errors.New("malformed json")
	ErrTypeMismatch         = errors.New("type mismatch")
	ErrUnknownEnumValue     = errors.New("unknown enum value")
	ErrMissingRequiredField = errors.New("missing required field")
)

func (k ErrorKind) String() string {
	if err := k.sentinel(); err != nil {
		return err.Error()
	}
	return "unknown error kind"
}

func (k ErrorKind) sentinel() error {
	switch k {
	case MalformedJSON:
		return ErrMalformedJSON
	case TypeMismatch:
		return ErrTypeMismatch
	case UnknownEnumValue:
		return ErrUnknownEnumValue
	case MissingRequiredField:
		return ErrMissingRequiredField
	}
	return nil
}

// DecodeError reports why a FHIR JSON document could not be decoded. Path
// locates the offending member in FHIRPath-like form, e.g.
// "entry[0].resource.name[1].use". Value holds the offending code for
// UnknownEnumValue and a (possibly truncated) raw JSON snippet otherwise.
type DecodeError struct {
	Kind  ErrorKind
	Path  string
	Value string
	Err   error
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString("fhir: ")
	b.WriteString(e.Kind.String())
	if e.Path != "" {
		b.WriteString(" at ")
		b.WriteString(e.Path)
	}
	if e.Value != "" {
		b.WriteString(": ")
		b.WriteString(e.Value)
	}
	if e.Err != nil {
		b.WriteString(" (")
		b.WriteString(e.Err.Error())
		b.WriteString(")")
	}
	return b.String()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel error of e's kind.
func (e *DecodeError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// under prefixes the error path with the member segment it occurred in.
func (e *DecodeError) under(segment string) *DecodeError {
	switch {
	case e.Path == "":
		e.Path = segment
	case strings.HasPrefix(e.Path, "["):
		e.Path = segment + e.Path
	default:
		e.Path = segment + "." + e.Path
	}
	return e
}

const maxSnippet = 64

func snippet(raw []byte) string {
	if len(raw) > maxSnippet {
		return string(raw[:maxSnippet]) + "..."
	}
	return string(raw)
}

// classify converts an error returned by encoding/json while decoding raw
// into a *DecodeError.
func classify(err error, raw []byte) error {
	switch e := err.(type) {
	case *DecodeError:
		return e
	case *json.InvalidUnmarshalError:
		return e
	case *json.SyntaxError:
		return &DecodeError{Kind: MalformedJSON, Err: err}
	case *json.UnmarshalTypeError:
		return &DecodeError{Kind: TypeMismatch, Path: e.Field, Value: snippet(raw), Err: err}
	}
	return &DecodeError{Kind: TypeMismatch, Value: snippet(raw), Err: err}
}

// withPath classifies err and prefixes its path with segment.
func withPath(err error, segment string, raw []byte) error {
	de, ok := classify(err, raw).(*DecodeError)
	if !ok {
		return err
	}
	return de.under(segment)
}
