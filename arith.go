// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"errors"

	"github.com/zeebo/errs/v2"

	mu "github.com/avdva/softfloat/internal/mathutil"
	"github.com/avdva/softfloat/parts"
)

const (
	// significandBits is the width of a significand with the implicit bit.
	significandBits = parts.MantBits + 1
	// maxAlignShift is the widest alignment shift, which can leave any bits of a significand.
	maxAlignShift = significandBits + 1

	minExp = 1
	maxExp = 1<<parts.ExpBits - 2
)

var (
	// ErrInvariant is returned, if the combined significands are about to underflow.
	// It signals a bug in operands ordering and should never happen.
	ErrInvariant = errors.New("internal invariant violated")
	// ErrRange is returned, if the result exponent leaves the range of normalized numbers.
	ErrRange = errors.New("value out of range")
)

// Add returns f + other.
//
// The operands are aligned to the larger exponent by shifting the smaller significand right.
// Shifted out bits are dropped, without guard or sticky bits, and the same happens
// when a carry is normalized. Because of this the result can differ from the native sum
// in a few least significant bits, the error grows with the exponent difference.
//
// If the result exponent is out of range, the fields wrap around, use AddChecked to detect this.
// Add panics, if the internal invariant of the algorithm is broken.
func (f Float) Add(other Float) Float {
	res, err := f.add(other)
	if errors.Is(err, ErrInvariant) {
		panic(err)
	}
	return res
}

// AddChecked returns f + other, or an error, if the result can not be represented
// as a normalized number.
func (f Float) AddChecked(other Float) (Float, error) {
	res, err := f.add(other)
	if err != nil {
		return zero, err
	}
	return res, nil
}

// Sub returns f - other, which is f + (-other).
func (f Float) Sub(other Float) Float {
	return f.Add(other.Neg())
}

// SubChecked returns f - other, see AddChecked.
func (f Float) SubChecked(other Float) (Float, error) {
	return f.AddChecked(other.Neg())
}

func (f Float) add(other Float) (Float, error) {
	// zeros are the only non-normalized values known here.
	switch {
	case f.IsZero() && other.IsZero():
		// -0 + -0 = -0, any other combination is +0.
		if f.p.Sign == 0 {
			return f, nil
		}
		return other, nil
	case f.IsZero():
		return other, nil
	case other.IsZero():
		return f, nil
	}
	p, err := addParts(f.p, other.p)
	switch {
	case err == nil && p == (parts.Parts{}):
		return zero, nil
	case err != nil && !errors.Is(err, ErrRange):
		return zero, err
	}
	return FromParts(p), err
}

// addParts sums two normalized numbers.
// An exact cancellation gives zero parts.
func addParts(x, y parts.Parts) (parts.Parts, error) {
	l, r := x, y
	if l.CmpAbs(r) < 0 {
		l, r = r, l
	}

	sigL, sigR := l.Significand(), alignSignificand(r.Significand(), l.Exp-r.Exp)

	sum, err := combine(sigL, sigR, l.Sign == r.Sign)
	if err != nil || sum == 0 {
		return parts.Parts{}, err
	}

	sum, exp := normalize(sum, int(l.Exp))
	result := parts.New(l.Sign, uint64(exp), sum-parts.ImplicitBit)
	if exp < minExp || exp > maxExp {
		return result, errs.Errorf("%w: exponent %d", ErrRange, exp)
	}
	return result, nil
}

// alignSignificand shifts sig right by delta bits, dropping the bits shifted out.
func alignSignificand(sig, delta uint64) uint64 {
	if delta > maxAlignShift {
		return 0
	}
	return mu.ShiftRight(sig, delta)
}

// combine adds or subtracts aligned significands.
// sigL must not be less than sigR, when subtracting.
func combine(sigL, sigR uint64, sameSign bool) (uint64, error) {
	if sameSign {
		return sigL + sigR, nil
	}
	if sigL < sigR {
		return 0, errs.Errorf("%w: significand %#x is less than %#x", ErrInvariant, sigL, sigR)
	}
	return sigL - sigR, nil
}

// normalize moves the leading bit of a non-zero sum to the implicit bit position,
// adjusting the exponent. The bit dropped by a right shift is lost.
func normalize(sum uint64, exp int) (uint64, int) {
	switch diff := mu.BinaryDigits(sum) - significandBits; {
	case diff > 0:
		sum = mu.ShiftRight(sum, uint64(diff))
		exp += diff
	case diff < 0:
		sum = mu.ShiftLeft(sum, uint64(-diff))
		exp += diff
	}
	return sum, exp
}
