// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package parts splits IEEE-754 binary64 bit patterns into sign, exponent and
// mantissa fields, and builds them back.
//
//   63  62        52 51                                                  0
//   _|__|__________|_|___________________________________________________|
//   s  eeeeeeeeeee  mmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmm
//
// Every pattern is treated as a normalized number: zeros, subnormals,
// infinities and NaNs are not special-cased, so decoding them gives
// a meaningless, but finite, result.
package parts

import (
	"fmt"
	"math"

	mu "github.com/avdva/softfloat/internal/mathutil"
)

const (
	// SignBits is the width of the sign field.
	SignBits = 1
	// ExpBits is the width of the exponent field.
	ExpBits = 11
	// MantBits is the width of the mantissa field.
	MantBits = 52
	// Bias is subtracted from the exponent field to get the real exponent.
	Bias = 1<<(ExpBits-1) - 1

	signShift = ExpBits + MantBits
	expShift  = MantBits

	signMask = 1<<SignBits - 1
	expMask  = 1<<ExpBits - 1
	mantMask = 1<<MantBits - 1

	// ImplicitBit is the leading significand bit, which is not stored in the mantissa field.
	ImplicitBit = 1 << MantBits
)

// Parts holds the three fields of a binary64 pattern.
// Exp is the biased exponent, Mant is the fraction without the implicit bit.
type Parts struct {
	Sign uint64
	Exp  uint64
	Mant uint64
}

// New returns Parts for given fields. Every field is masked to its width.
func New(sign, exp, mant uint64) Parts {
	return Parts{
		Sign: sign & signMask,
		Exp:  exp & expMask,
		Mant: mant & mantMask,
	}
}

// FromBits decomposes a bit pattern.
func FromBits(bits uint64) Parts {
	return Parts{
		Sign: bits >> signShift & signMask,
		Exp:  bits >> expShift & expMask,
		Mant: bits & mantMask,
	}
}

// Bits reassembles the bit pattern.
func (p Parts) Bits() uint64 {
	return p.Sign<<signShift | p.Exp<<expShift | p.Mant
}

// Decode returns (-1)^sign * 2^(exp-Bias) * 1.mant.
// The mantissa factor is summed bit by bit, so every step is visible;
// for normalized values each step is exact and the result matches
// the native encoding bit for bit.
func (p Parts) Decode() float64 {
	s := 1.0
	if p.Sign == 1 {
		s = -1
	}
	e := math.Ldexp(1, int(p.Exp)-Bias)
	m := 1.0
	for i := 0; i < MantBits; i++ {
		if p.Mant&(1<<i) == 0 {
			continue
		}
		m += math.Ldexp(1, i-MantBits)
	}
	return s * e * m
}

// Neg returns p with the sign bit flipped.
func (p Parts) Neg() Parts {
	p.Sign ^= signMask
	return p
}

// Significand returns the mantissa with the implicit leading bit.
func (p Parts) Significand() uint64 {
	return p.Mant | ImplicitBit
}

// IsZero returns true for both +0 and -0 encodings.
func (p Parts) IsZero() bool {
	return p.Exp == 0 && p.Mant == 0
}

// CmpAbs compares absolute values of two normalized numbers.
// Returns -1 if |a| < |b|, 0 if |a| == |b|, 1 if |a| > |b|
func (p Parts) CmpAbs(other Parts) int {
	if c := mu.Uint64Cmp(p.Exp, other.Exp); c != 0 {
		return c
	}
	return mu.Uint64Cmp(p.Mant, other.Mant)
}

// String returns fields as {sign, exp, mant}.
func (p Parts) String() string {
	return fmt.Sprintf("{%d, %d, %d}", p.Sign, p.Exp, p.Mant)
}

// GoString returns debug string representation.
func (p Parts) GoString() string {
	return fmt.Sprintf("parts.Parts{Sign: %d, Exp: %d, Mant: %#x}", p.Sign, p.Exp, p.Mant)
}
