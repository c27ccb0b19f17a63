// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package softfloat implements IEEE-754 binary64 arithmetic in software.
// A Float keeps a native float64 together with its bit pattern and its
// sign/exponent/mantissa fields. Addition and subtraction work on the fields
// only, see Float.Add for the algorithm and its precision limits.
//
// Only normalized finite numbers and zeros are supported.
// Subnormals, infinities and NaNs can be stored, but arithmetic on them
// produces meaningless results.
package softfloat

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/avdva/softfloat/parts"
)

var (
	zero = New(0)
)

// Float is a binary64 number with its bit pattern and decomposed fields.
// The three representations are built together and can not be changed separately.
type Float struct {
	f    float64
	bits uint64
	p    parts.Parts
}

// New returns a Float for given native value.
func New(f float64) Float {
	bits := math.Float64bits(f)
	return Float{f: f, bits: bits, p: parts.FromBits(bits)}
}

// FromBits returns a Float for given bit pattern.
func FromBits(bits uint64) Float {
	return New(math.Float64frombits(bits))
}

// FromParts reassembles fields into a Float.
// The value is decoded from the fields, see parts.Parts.Decode.
func FromParts(p parts.Parts) Float {
	p = parts.New(p.Sign, p.Exp, p.Mant)
	return Float{f: p.Decode(), bits: p.Bits(), p: p}
}

// Float64 returns the native value.
func (f Float) Float64() float64 {
	return f.f
}

// Bits returns the bit pattern.
func (f Float) Bits() uint64 {
	return f.bits
}

// Parts returns sign, exponent, and mantissa fields.
func (f Float) Parts() parts.Parts {
	return f.p
}

// IsZero returns true for +0 and -0.
func (f Float) IsZero() bool {
	return f.p.IsZero()
}

// Sign returns -1 if f < 0, 0 if f is ±0, 1 if f > 0.
func (f Float) Sign() int {
	if f.IsZero() {
		return 0
	}
	return 1 - 2*int(f.p.Sign)
}

// Neg returns -f.
// The sign bit of the pattern is flipped directly, the value and the fields are negated on their own.
func (f Float) Neg() Float {
	return Float{
		f:    -f.f,
		bits: f.bits ^ 1<<63,
		p:    f.p.Neg(),
	}
}

// Eq returns true if both values have the same bit pattern.
// Notice that +0 and -0 are not equal.
func (f Float) Eq(other Float) bool {
	return f.bits == other.bits
}

// EqFloat64 returns true if f has the same bit pattern as v.
func (f Float) EqFloat64(v float64) bool {
	return f.bits == math.Float64bits(v)
}

// Cmp compares two values.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
// Unlike Eq, +0 and -0 are equal here.
func (f Float) Cmp(other Float) int {
	s1, s2 := f.Sign(), other.Sign()
	if s1 > s2 {
		return 1
	} else if s1 < s2 {
		return -1
	}
	return f.p.CmpAbs(other.p) * s1
}

// Decimal returns the value as a decimal number.
func (f Float) Decimal() decimal.Decimal {
	return decimal.NewFromFloat(f.f)
}

// String returns the shortest decimal representation of the value.
func (f Float) String() string {
	return strconv.FormatFloat(f.f, 'g', -1, 64)
}

// GoString returns debug string representation.
func (f Float) GoString() string {
	return f.String() + " " + f.p.String()
}

// Format implements fmt.Formatter.
// %v and %s print the value as String does, %b prints the bit pattern
// with fields separated by spaces, %x and %X print the bit pattern in hex.
// Other verbs format the native value.
func (f Float) Format(fs fmt.State, c rune) {
	switch c {
	case 'v':
		if fs.Flag('#') {
			fs.Write([]byte(f.GoString()))
			return
		}
		fallthrough
	case 's':
		fs.Write([]byte(f.String()))
	case 'b':
		fs.Write([]byte(f.binaryString()))
	case 'x':
		fmt.Fprintf(fs, "%016x", f.bits)
	case 'X':
		fmt.Fprintf(fs, "%016X", f.bits)
	default:
		fmt.Fprintf(fs, fmt.FormatString(fs, c), f.f)
	}
}

func (f Float) binaryString() string {
	var builder strings.Builder
	builder.WriteString(strconv.FormatUint(f.p.Sign, 2))
	builder.WriteRune(' ')
	writePadded(&builder, strconv.FormatUint(f.p.Exp, 2), parts.ExpBits)
	builder.WriteRune(' ')
	writePadded(&builder, strconv.FormatUint(f.p.Mant, 2), parts.MantBits)
	return builder.String()
}

func writePadded(builder *strings.Builder, s string, width int) {
	if diff := width - len(s); diff > 0 {
		builder.WriteString(strings.Repeat("0", diff))
	}
	builder.WriteString(s)
}
