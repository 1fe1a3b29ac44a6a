package fhirmodels

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Decimal is a FHIR decimal. It keeps the exact digits it was decoded from,
// so 1.50 is written back as 1.50 and not as 1.5.
type Decimal struct {
	decimal.Decimal
}

// NewDecimal parses s as a decimal number.
func NewDecimal(s string) (Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{d}, nil
}

// MustDecimal is like NewDecimal but panics on a malformed number.
func MustDecimal(s string) *Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return &d
}

// String renders the number keeping trailing fractional zeros ("1.50").
// A positive exponent is expanded: 1e2 renders as "100".
func (d Decimal) String() string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.Decimal.String()
}

// Equal compares numeric value, ignoring scale.
func (d Decimal) Equal(o Decimal) bool {
	return d.Decimal.Equal(o.Decimal)
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalJSON accepts only JSON numbers; a quoted decimal is a
// TypeMismatch.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return classify(err, data)
	}
	n, ok := v.(json.Number)
	if !ok {
		return &DecodeError{Kind: TypeMismatch, Value: snippet(data)}
	}
	parsed, err := decimal.NewFromString(n.String())
	if err != nil {
		return &DecodeError{Kind: TypeMismatch, Value: snippet(data), Err: err}
	}
	d.Decimal = parsed
	return nil
}
