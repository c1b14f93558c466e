// Package frame pads messages to a whole number of blocks and cuts them into
// blocks.
package frame

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/pkg/errors"

	"github.com/zeebo/sha256bits/internal/bitstr"
	"github.com/zeebo/sha256bits/internal/consts"
)

// ErrMessageTooLarge is returned when the message length in bits does not fit
// in the 64 bit length field.
var ErrMessageTooLarge = errors.New("message too large")

// maxBits is the largest message length in bits that can be encoded.
var maxBits uint64 = math.MaxUint64

// zeros is the longest run of zero padding Pad ever needs.
var zeros = strings.Repeat("0", consts.BlockBits)

// Pad appends a set bit, the fewest zero bits that leave the message 64 bits
// short of a block boundary, and the 64 bit big endian bit length of the
// original message.
func Pad(bits string) (string, error) {
	l := uint64(len(bits))
	if l > maxBits {
		return "", errors.Wrapf(ErrMessageTooLarge, "%d bits", l)
	}

	k := zeroBits(l)

	var sb strings.Builder
	sb.Grow(len(bits) + 1 + k + consts.LengthBits)
	sb.WriteString(bits)
	sb.WriteByte('1')
	sb.WriteString(zeros[:k])
	sb.WriteString(bitstr.Uint(l, consts.LengthBits))
	return sb.String(), nil
}

// zeroBits returns the smallest k such that (l + 1 + k) mod 512 == 448.
func zeroBits(l uint64) int {
	const block = consts.BlockBits
	used := int((l + 1) % block)
	return (consts.PadTarget - used + block) % block
}

// Split cuts bits into consecutive size bit chunks. Padded messages always
// split evenly; any trailing partial chunk is returned as the last element.
func Split(bits string, size int) []string {
	if size <= 0 {
		panic("must specify positive block size")
	}

	out := make([]string, 0, (len(bits)+size-1)/size)
	for len(bits) > size {
		out = append(out, bits[:size])
		bits = bits[size:]
	}
	if len(bits) > 0 {
		out = append(out, bits)
	}
	return out
}

// PadBytes is Pad for byte aligned messages. It returns a copy of data with
// the padding appended, so its length is a multiple of 64 bytes.
func PadBytes(data []byte) ([]byte, error) {
	n := uint64(len(data))
	if n > maxBits/8 {
		return nil, errors.Wrapf(ErrMessageTooLarge, "%d bytes", n)
	}

	l := n * 8
	k := zeroBits(l) // always 7 mod 8 for whole bytes
	total := len(data) + (1+k+consts.LengthBits)/8

	out := make([]byte, total)
	copy(out, data)
	out[len(data)] = 0x80
	binary.BigEndian.PutUint64(out[total-8:], l)
	return out, nil
}
