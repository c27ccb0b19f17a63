package mathutil

import (
	"fmt"
	"math"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinaryDigits(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v      uint64
		digits int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{1 << 52, 53},
		{1<<53 - 1, 53},
		{1 << 53, 54},
		{math.MaxUint64, 64},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.digits, BinaryDigits(test.v))
			a.Equal(bits.Len64(test.v), BinaryDigits(test.v))
		})
	}
}

func TestShift(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v, n        uint64
		right, left uint64
	}{
		{1 << 52, 0, 1 << 52, 1 << 52},
		{1 << 52, 1, 1 << 51, 1 << 53},
		{1 << 52, 52, 1, 0},
		{1 << 52, 53, 0, 0},
		{math.MaxUint64, 63, 1, 1 << 63},
		{math.MaxUint64, 64, 0, 0},
		{math.MaxUint64, 2046, 0, 0},
		{math.MaxUint64, math.MaxUint64, 0, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.right, ShiftRight(test.v, test.n))
			a.Equal(test.left, ShiftLeft(test.v, test.n))
		})
	}
}

func TestUint64Cmp(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b uint64
		cmp  int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{math.MaxUint64, math.MaxUint64 - 1, 1},
		{1 << 52, 1 << 52, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.cmp, Uint64Cmp(test.a, test.b))
			a.Equal(-test.cmp, Uint64Cmp(test.b, test.a))
		})
	}
}

func BenchmarkBinaryDigits(b *testing.B) {
	var dummy int
	for i := 0; i < b.N; i++ {
		dummy += BinaryDigits(uint64(i) << 20)
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(float64(dummy), "dummy_metric")
}
