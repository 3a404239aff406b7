package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// maxWholeNumber is the largest integer a float64 holds exactly.
const maxWholeNumber = 1 << 53

// number accepts a JSON number or a numeric string. Empty strings and null decode to 0.
// NaN and infinities are rejected since they cannot be encoded back to JSON.
type number float64

func (n *number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*n = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("invalid number %q", s)
		}
		*n = number(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = number(f)
	return nil
}

// wholeNumber converts n to an int, failing on fractions and values a float64
// cannot represent exactly.
func wholeNumber(n number) (int, error) {
	f := float64(n)
	if f != math.Trunc(f) || math.Abs(f) > maxWholeNumber {
		return 0, fmt.Errorf("invalid whole number %v", f)
	}
	return int(f), nil
}
