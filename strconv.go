// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/avdva/softfloat/parts"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeFloat
)

const (
	// JSONModeFloat marshals values as numbers, like `0.1`.
	JSONModeFloat = iota
	// JSONModeBits marshals values as hex bit patterns, like `"0x3fb999999999999a"`.
	JSONModeBits
	// JSONModeParts marshals values as fields, like `{"s":0,"e":1019,"m":2702159776422298}`.
	JSONModeParts
)

const (
	bitsPrefix = "0x"
	bitsDigits = 16
)

type jsonParts struct {
	S uint64 `json:"s"`
	E uint64 `json:"e"`
	M uint64 `json:"m"`
}

// FromString parses a string into a value.
// Accepts everything strconv.ParseFloat does, or a bit pattern of 16 hex digits
// prefixed with 0x, like "0x3fb999999999999a".
func FromString(s string) (Float, error) {
	s = strings.TrimFunc(s, unicode.IsSpace)
	if len(s) == 0 {
		return zero, fmt.Errorf("empty input")
	}
	if isBitsString(s) {
		bits, err := strconv.ParseUint(s[len(bitsPrefix):], 16, 64)
		if err != nil {
			return zero, fmt.Errorf("parsing failed: %w", err)
		}
		return FromBits(bits), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return zero, fmt.Errorf("parsing failed: %w", err)
	}
	return New(f), nil
}

// MustFromString parses a string into a value. Panics on error.
func MustFromString(s string) Float {
	f, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return f
}

// hex floats, like 0x1p-2, are left to strconv.
func isBitsString(s string) bool {
	if len(s) != len(bitsPrefix)+bitsDigits || !strings.HasPrefix(strings.ToLower(s), bitsPrefix) {
		return false
	}
	return !strings.ContainsAny(s, "pP.")
}

// MarshalJSON marshals value according to current JSONMode.
// See JSONMode and JSONMode* constants.
func (f Float) MarshalJSON() ([]byte, error) {
	return f.toJSON(JSONMode)
}

func (f Float) toJSON(mode int) ([]byte, error) {
	switch mode {
	case JSONModeBits:
		return []byte(`"` + bitsPrefix + fmt.Sprintf("%016x", f.bits) + `"`), nil
	case JSONModeParts:
		return json.Marshal(jsonParts{S: f.p.Sign, E: f.p.Exp, M: f.p.Mant})
	default:
		if f.IsZero() || f.p.Exp < 1<<parts.ExpBits-1 {
			return []byte(strconv.FormatFloat(f.f, 'g', -1, 64)), nil
		}
		return nil, fmt.Errorf("unsupported value %v", f.f)
	}
}

// UnmarshalJSON unmarshals a number, a string, or an object into a value.
func (f *Float) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	switch data[0] {
	case '{':
		var d jsonParts
		if err := json.Unmarshal(data, &d); err != nil {
			return err
		}
		*f = FromBits(parts.New(d.S, d.E, d.M).Bits())
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		value, err := FromString(s)
		if err != nil {
			return err
		}
		*f = value
	default:
		value, err := FromString(string(data))
		if err != nil {
			return err
		}
		*f = value
	}
	return nil
}
