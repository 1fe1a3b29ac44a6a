package fhirmodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.50", "1.50"},
		{"0.001", "0.001"},
		{"100", "100"},
		{"-3.0", "-3.0"},
		{"1e2", "100"},
	}
	for _, tt := range tests {
		d, err := NewDecimal(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, d.String(), tt.in)
	}
}

func TestDecimalEqualIgnoresScale(t *testing.T) {
	assert.True(t, MustDecimal("1.5").Equal(*MustDecimal("1.50")))
	assert.False(t, MustDecimal("1.5").Equal(*MustDecimal("1.51")))
}

func TestDecimalJSON(t *testing.T) {
	var d Decimal
	require.NoError(t, Unmarshal([]byte(`72.40`), &d))
	assert.Equal(t, "72.40", d.String())

	out, err := Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "72.40", string(out))

	err = Unmarshal([]byte(`true`), &d)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestDecimalPositiveExponentIsExpanded(t *testing.T) {
	q, err := Decode[Quantity]([]byte(`{"value":1e2}`))
	require.NoError(t, err)
	out, err := Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":100}`, string(out))
	assert.True(t, q.Value.Equal(*MustDecimal("100")))
}

func TestNewDecimalRejectsGarbage(t *testing.T) {
	_, err := NewDecimal("twelve")
	assert.Error(t, err)
	assert.Panics(t, func() { MustDecimal("twelve") })
}
