package ledger

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Amount is a non-negative monetary value that tolerates malformed input.
// Anything that is not a usable number (missing cells, free text, negative or
// non-finite values) decodes to 0 instead of failing, so one bad cell never
// invalidates a whole table.
type Amount float64

// UnmarshalJSON never returns an error; coercion failures degrade to zero.
func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = Amount(coerceFloat(data))
	return nil
}

func coerceFloat(data []byte) float64 {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return 0
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return ClampAmount(f)
	}
	var s string
	if err := json.Unmarshal([]byte(trimmed), &s); err == nil {
		s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
		s = strings.TrimPrefix(s, "$")
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return ClampAmount(f)
		}
	}
	return 0
}

// ClampAmount coerces a float to the non-negative finite range every ledger
// amount lives in.
func ClampAmount(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

// Text is a free-form cell that tolerates non-string input: numbers and bools
// decode to their literal form, null and structured values decode to "".
type Text string

// UnmarshalJSON never returns an error.
func (t *Text) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Text(s)
		return nil
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || trimmed[0] == '{' || trimmed[0] == '[' {
		*t = ""
		return nil
	}
	*t = Text(trimmed)
	return nil
}

// Flag is a boolean that tolerates the usual JSON spellings of truthiness:
// bools, numbers (non-zero is true), and strings accepted by strconv.ParseBool.
type Flag bool

// UnmarshalJSON never returns an error; unrecognized input decodes to false.
func (f *Flag) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if b, err := strconv.ParseBool(trimmed); err == nil {
		*f = Flag(b)
		return nil
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		*f = n != 0
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if b, parseErr := strconv.ParseBool(strings.TrimSpace(s)); parseErr == nil {
			*f = Flag(b)
			return nil
		}
	}
	*f = false
	return nil
}
