// Package schedule expands a 512 bit message block into the 64 word message
// schedule.
package schedule

import (
	"encoding/binary"
	"math/bits"

	"github.com/pkg/errors"

	"github.com/zeebo/sha256bits/internal/bitstr"
	"github.com/zeebo/sha256bits/internal/consts"
	"github.com/zeebo/sha256bits/internal/frame"
)

// Sigma0 is rotr(7) ^ rotr(18) ^ shr(3).
func Sigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ x>>3
}

// Sigma1 is rotr(17) ^ rotr(19) ^ shr(10).
func Sigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ x>>10
}

// Expand computes w[16:64] from w[0:16]. Addition wraps modulo 2^32.
func Expand(w *[consts.Rounds]uint32) {
	for i := consts.BlockWords; i < consts.Rounds; i++ {
		w[i] = Sigma1(w[i-2]) + w[i-7] + Sigma0(w[i-15]) + w[i-16]
	}
}

// FromBits builds the schedule for a block given as 512 characters of binary
// text.
func FromBits(block string, w *[consts.Rounds]uint32) error {
	if len(block) != consts.BlockBits {
		return errors.Errorf("block needs %d bits, got %d", consts.BlockBits, len(block))
	}

	for i, word := range frame.Split(block, consts.WordBits) {
		v, err := bitstr.Word(word)
		if err != nil {
			return errors.Wrapf(err, "word %d", i)
		}
		w[i] = v
	}

	Expand(w)
	return nil
}

// FromBytes builds the schedule for a 64 byte block, reading big endian
// words.
func FromBytes(block *[consts.BlockLen]byte, w *[consts.Rounds]uint32) {
	for i := 0; i < consts.BlockWords; i++ {
		w[i] = binary.BigEndian.Uint32(block[4*i:])
	}

	Expand(w)
}
