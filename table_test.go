package crcgo

import (
	"hash/crc32"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTableKnownEntries(t *testing.T) {
	t.Run("Reflected", func(t *testing.T) {
		tab := BuildTable(32, 0x04C11DB7, true)
		assert.Equal(t, uint32(0x00000000), tab[0])
		assert.Equal(t, uint32(0x77073096), tab[1])
		assert.Equal(t, uint32(0xEDB88320), tab[128])
		assert.Equal(t, uint32(0x2D02EF8D), tab[255])
	})

	t.Run("Normal", func(t *testing.T) {
		tab := BuildTable(32, 0x04C11DB7, false)
		assert.Equal(t, uint32(0x00000000), tab[0])
		assert.Equal(t, uint32(0x04C11DB7), tab[1])
		assert.Equal(t, uint32(0x09823B6E), tab[2])
	})
}

func TestBuildTableMatchesStdlib(t *testing.T) {
	for _, poly := range []uint32{0x04C11DB7, 0x1EDC6F41, 0x741B8CD7} {
		got := BuildTable(32, poly, true)
		want := crc32.MakeTable(bits.Reverse32(poly))
		assert.Equal(t, [256]uint32(*want), [256]uint32(*got), "poly=0x%08x", poly)
	}
}

func TestBuildTableDeterministic(t *testing.T) {
	for _, alg := range testAlgorithms() {
		assert.Equal(t, *BuildTable(alg.Width, alg.Poly, alg.RefIn), *BuildTable(alg.Width, alg.Poly, alg.RefIn), alg.Name)
	}
}

// The reflected table is the bit-mirror of the normal table: entry i of one
// is the reversed entry for the reversed byte in the other.
func TestBuildTableReflectionSymmetry(t *testing.T) {
	for _, alg := range testAlgorithms() {
		t.Run(alg.Name, func(t *testing.T) {
			normal := BuildTable(alg.Width, alg.Poly, false)
			reflected := BuildTable(alg.Width, alg.Poly, true)

			for i := range 256 {
				assert.Equal(t, reflected[i], bits.Reverse32(normal[bits.Reverse8(uint8(i))]), "i=%d", i)
			}
		})
	}
}

func TestBuildTableAlignment(t *testing.T) {
	for _, alg := range testAlgorithms() {
		mask := alg.Mask()
		shift := 32 - alg.Width

		for _, e := range BuildTable(alg.Width, alg.Poly, true) {
			assert.Zero(t, e&^mask, alg.Name)
		}
		for _, e := range BuildTable(alg.Width, alg.Poly, false) {
			assert.Zero(t, e&^(mask<<shift), alg.Name)
		}
	}
}

func TestBuildTableAnyPoly(t *testing.T) {
	// Oversized polys are not rejected; the result is still a full table.
	assert.NotPanics(t, func() {
		tab := BuildTable(8, 0xFFFFFFFF, false)
		assert.Len(t, *tab, 256)
	})
}

func BenchmarkBuildTable(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = BuildTable(32, 0x04C11DB7, i&1 == 0)
	}
}
