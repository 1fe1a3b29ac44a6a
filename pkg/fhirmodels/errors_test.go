package fhirmodels

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeErrorMessage(t *testing.T) {
	tests := []struct {
		err  *DecodeError
		want string
	}{
		{&DecodeError{Kind: MalformedJSON}, "fhir: malformed json"},
		{&DecodeError{Kind: MissingRequiredField, Path: "resourceType"}, "fhir: missing required field at resourceType"},
		{&DecodeError{Kind: UnknownEnumValue, Path: "status", Value: "done"}, "fhir: unknown enum value at status: done"},
		{&DecodeError{Kind: TypeMismatch, Path: "total", Err: errors.New("boom")}, "fhir: type mismatch at total (boom)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}

func TestDecodeErrorIs(t *testing.T) {
	inner := errors.New("inner")
	err := fmt.Errorf("decode patient: %w", &DecodeError{Kind: TypeMismatch, Err: inner})

	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.ErrorIs(t, err, inner)
	assert.NotErrorIs(t, err, ErrMalformedJSON)
}

func TestDecodeErrorUnder(t *testing.T) {
	e := &DecodeError{Kind: UnknownEnumValue, Path: "use"}
	e.under("[2]").under("address")
	assert.Equal(t, "address[2].use", e.Path)

	e = &DecodeError{Kind: MalformedJSON}
	assert.Equal(t, "entry", e.under("entry").Path)
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "missing required field", MissingRequiredField.String())
	assert.Equal(t, "unknown error kind", ErrorKind(0).String())
}

func TestSnippetTruncates(t *testing.T) {
	long := make([]byte, maxSnippet+10)
	for i := range long {
		long[i] = 'x'
	}
	s := snippet(long)
	assert.Len(t, s, maxSnippet+3)
	assert.Equal(t, "abc", snippet([]byte("abc")))
}
