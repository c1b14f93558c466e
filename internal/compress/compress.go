// Package compress implements the 64 round compression function that folds a
// message schedule into the hash state.
package compress

import (
	"math/bits"

	"github.com/zeebo/sha256bits/internal/consts"
)

// Sum0 is rotr(2) ^ rotr(13) ^ rotr(22).
func Sum0(x uint32) uint32 {
	return bits.RotateLeft32(x, -2) ^ bits.RotateLeft32(x, -13) ^ bits.RotateLeft32(x, -22)
}

// Sum1 is rotr(6) ^ rotr(11) ^ rotr(25).
func Sum1(x uint32) uint32 {
	return bits.RotateLeft32(x, -6) ^ bits.RotateLeft32(x, -11) ^ bits.RotateLeft32(x, -25)
}

// Ch picks bits of y where x is set and bits of z where it is not.
func Ch(x, y, z uint32) uint32 {
	return (x & y) ^ (^x & z)
}

// Maj returns the majority of each bit position.
func Maj(x, y, z uint32) uint32 {
	return (x & y) ^ (x & z) ^ (y & z)
}

func round(a, b, c, d, e, f, g, h, k, w uint32) (uint32, uint32, uint32, uint32, uint32, uint32, uint32, uint32) {
	t1 := h + Sum1(e) + Ch(e, f, g) + k + w
	t2 := Sum0(a) + Maj(a, b, c)
	return t1 + t2, a, b, c, d + t1, e, f, g
}

// Compress runs the rounds over the schedule w starting from chain and
// returns the next chain value. chain is not modified.
func Compress(chain *[consts.StateWords]uint32, w *[consts.Rounds]uint32) [consts.StateWords]uint32 {
	a, b, c, d := chain[0], chain[1], chain[2], chain[3]
	e, f, g, h := chain[4], chain[5], chain[6], chain[7]

	for i := 0; i < consts.Rounds; i++ {
		a, b, c, d, e, f, g, h = round(a, b, c, d, e, f, g, h, consts.K[i], w[i])
	}

	return [consts.StateWords]uint32{
		chain[0] + a, chain[1] + b, chain[2] + c, chain[3] + d,
		chain[4] + e, chain[5] + f, chain[6] + g, chain[7] + h,
	}
}

// Chain folds each schedule into state in order, starting from iv.
func Chain(iv [consts.StateWords]uint32, schedules [][consts.Rounds]uint32) [consts.StateWords]uint32 {
	state := iv
	for i := range schedules {
		state = Compress(&state, &schedules[i])
	}
	return state
}
