package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericFloat(t *testing.T) {
	tests := []struct {
		name    string
		n       Numeric
		want    float64
		wantErr bool
	}{
		{"Absent", Numeric{}, 0, false},
		{"Int", NumericOf("125"), 125, false},
		{"Fraction", NumericOf("109.00"), 109, false},
		{"Spaces", NumericOf(" 3.5 "), 3.5, false},
		{"FromFloat", NumericFromFloat(2.25), 2.25, false},
		{"Text", NumericOf("fast"), 0, true},
		{"Empty", NumericOf(""), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.n.Float()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedCatalogField)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumericInt(t *testing.T) {
	tests := []struct {
		name    string
		n       Numeric
		want    int64
		wantErr bool
	}{
		{"Absent", Numeric{}, 0, false},
		{"Int", NumericOf("24"), 24, false},
		{"Truncates", NumericOf("36.9"), 36, false},
		{"FromInt", NumericFromInt(-3), -3, false},
		{"Text", NumericOf("many"), 0, true},
		{"NaN", NumericOf("NaN"), 0, true},
		{"Inf", NumericOf("+Inf"), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.n.Int()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedCatalogField)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumericMarshalJSON(t *testing.T) {
	v := struct {
		A Numeric `json:"a"`
		B Numeric `json:"b"`
		C Numeric `json:"c"`
		D Numeric `json:"d,omitzero"`
	}{
		A: NumericOf("189.0"),
		B: NumericOf("n/a"),
	}

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":189,"b":"n/a","c":null}`, string(data))
}

func TestNumericUnmarshalJSON(t *testing.T) {
	var v struct {
		A Numeric `json:"a"`
		B Numeric `json:"b"`
		C Numeric `json:"c"`
		D Numeric `json:"d"`
	}
	v.C = NumericOf("1")

	err := json.Unmarshal([]byte(`{"a":189.5,"b":"n/a","c":null}`), &v)
	require.NoError(t, err)

	f, err := v.A.Float()
	require.NoError(t, err)
	assert.Equal(t, 189.5, f)
	assert.Equal(t, "n/a", v.B.Raw())
	assert.True(t, v.C.IsZero())
	assert.True(t, v.D.IsZero())

	t.Run("RoundTrip", func(t *testing.T) {
		in := NumericOf("109.00")
		data, err := json.Marshal(in)
		require.NoError(t, err)

		var out Numeric
		require.NoError(t, json.Unmarshal(data, &out))
		got, err := out.Float()
		require.NoError(t, err)
		assert.Equal(t, 109.0, got)
	})

	t.Run("RejectsBool", func(t *testing.T) {
		var n Numeric
		err := json.Unmarshal([]byte(`true`), &n)
		assert.ErrorIs(t, err, ErrMalformedCatalogField)
	})
}
