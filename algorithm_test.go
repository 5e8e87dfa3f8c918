package crcgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlgorithmMask(t *testing.T) {
	assert.Equal(t, uint32(0xFFFFFFFF), (&Algorithm{Width: 32}).Mask())
	assert.Equal(t, uint32(0xFFFF), (&Algorithm{Width: 16}).Mask())
	assert.Equal(t, uint32(0x1), (&Algorithm{Width: 1}).Mask())
}

func TestAlgorithmHexDigits(t *testing.T) {
	assert.Equal(t, 8, (&Algorithm{Width: 32}).HexDigits())
	assert.Equal(t, 6, (&Algorithm{Width: 24}).HexDigits())
	assert.Equal(t, 4, (&Algorithm{Width: 15}).HexDigits())
	assert.Equal(t, 1, (&Algorithm{Width: 3}).HexDigits())
}

func TestAlgorithmValidate(t *testing.T) {
	for _, alg := range testAlgorithms() {
		assert.NoError(t, alg.Validate(), alg.Name)
	}

	t.Run("InvalidWidth", func(t *testing.T) {
		for _, w := range []uint8{0, 33, 64} {
			err := (&Algorithm{Width: w, Poly: 1}).Validate()
			var iw *ErrInvalidWidth
			require.ErrorAs(t, err, &iw)
			assert.Equal(t, w, iw.Width)
		}
	})

	t.Run("Overflow", func(t *testing.T) {
		tests := []struct {
			alg   Algorithm
			field string
		}{
			{Algorithm{Width: 16, Poly: 0x18005}, "poly"},
			{Algorithm{Width: 16, Poly: 0x8005, Init: 0x10000}, "init"},
			{Algorithm{Width: 8, Poly: 0x07, XorOut: 0x100}, "xorout"},
			{Algorithm{Width: 8, Poly: 0x07, Check: 0x1F4}, "check"},
		}
		for _, tt := range tests {
			err := tt.alg.Validate()
			var ov *ErrValueOverflow
			require.ErrorAs(t, err, &ov)
			assert.Equal(t, tt.field, ov.Field)
			assert.Contains(t, err.Error(), tt.field)
		}
	})
}
