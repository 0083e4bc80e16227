// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"bytes"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Number is a numeric form value. It is produced by Coerce and may hold
// NaN or ±Inf when the input text was not a number; those values are
// forwarded unchanged and encode as JSON null.
type Number float64

var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// Coerce converts form text to a Number using the same rules as a
// browser's unary plus: surrounding whitespace is ignored, empty text is
// zero, 0x/0o/0b prefixes are accepted, and anything else that is not a
// decimal literal or Infinity is NaN.
func Coerce(s string) Number {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return Number(math.Inf(1))
	case "-Infinity":
		return Number(math.Inf(-1))
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			digits := s[2:]
			if strings.Contains(digits, "_") {
				return Number(math.NaN())
			}
			n, err := strconv.ParseUint(digits, base, 64)
			if err != nil {
				return Number(math.NaN())
			}
			return Number(n)
		}
	}

	if !decimalLiteral.MatchString(s) {
		return Number(math.NaN())
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Number(math.NaN())
	}
	return Number(f)
}

// CoerceList splits comma separated text and coerces each element.
// Empty text is an empty list.
func CoerceList(s string) []Number {
	out := []Number{}
	if strings.TrimSpace(s) == "" {
		return out
	}
	for _, part := range strings.Split(s, ",") {
		out = append(out, Coerce(part))
	}
	return out
}

func (n Number) IsNaN() bool {
	return math.IsNaN(float64(n))
}

// Finite reports whether n is neither NaN nor infinite.
func (n Number) Finite() bool {
	f := float64(n)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// String renders n the way it appears when interpolated into a URL.
func (n Number) String() string {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return formatFinite(f)
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Finite() {
		return []byte("null"), nil
	}
	return []byte(formatFinite(float64(n))), nil
}

func (n *Number) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*n = Number(math.NaN())
		return nil
	}
	f, err := strconv.ParseFloat(string(bytes.TrimSpace(b)), 64)
	if err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

func formatFinite(f float64) string {
	if f == 0 {
		return "0"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
