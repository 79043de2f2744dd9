package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// A Numeric is a catalog number kept in its seed form.
//
// Coercion happens on use, so one malformed value only affects
// the record carrying it. The zero value is an absent field.
type Numeric struct {
	raw string
	set bool
}

func NumericOf(raw string) Numeric {
	return Numeric{raw: raw, set: true}
}

func NumericFromFloat(f float64) Numeric {
	return NumericOf(strconv.FormatFloat(f, 'f', -1, 64))
}

func NumericFromInt(i int64) Numeric {
	return NumericOf(strconv.FormatInt(i, 10))
}

func (n Numeric) IsZero() bool {
	return !n.set
}

func (n Numeric) Raw() string {
	return n.raw
}

// Float returns the value as float64. Absent values are 0.
func (n Numeric) Float() (float64, error) {
	if !n.set {
		return 0, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(n.raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrMalformedCatalogField, n.raw)
	}
	return f, nil
}

// Int returns the value as int64, truncating a fractional seed value.
// Absent values are 0.
func (n Numeric) Int() (int64, error) {
	if !n.set {
		return 0, nil
	}
	s := strings.TrimSpace(n.raw)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformedCatalogField, n.raw)
	}
	return int64(f), nil
}

// MarshalJSON writes a JSON number when the raw value parses,
// the raw string otherwise and null when absent.
func (n Numeric) MarshalJSON() ([]byte, error) {
	if !n.set {
		return []byte("null"), nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(n.raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return json.Marshal(n.raw)
	}
	return []byte(strconv.FormatFloat(f, 'f', -1, 64)), nil
}

// UnmarshalJSON reads what MarshalJSON writes: a number or a string
// keeps its text as the raw value, null leaves the value absent.
func (n *Numeric) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*n = Numeric{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %s", ErrMalformedCatalogField, err)
		}
		*n = NumericOf(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("%w: %s is not a number", ErrMalformedCatalogField, data)
	}
	*n = NumericOf(num.String())
	return nil
}
