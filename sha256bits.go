// Package sha256bits computes SHA-256 digests as defined in FIPS 180-4 using
// only explicit 32 bit word arithmetic.
package sha256bits

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"

	"github.com/zeebo/sha256bits/internal/bitstr"
	"github.com/zeebo/sha256bits/internal/compress"
	"github.com/zeebo/sha256bits/internal/consts"
	"github.com/zeebo/sha256bits/internal/frame"
	"github.com/zeebo/sha256bits/internal/schedule"
)

// Size is the size of a digest in bytes.
const Size = consts.Size

// BlockSize is the block size of the hash in bytes.
const BlockSize = consts.BlockLen

var (
	// ErrMalformedInput is returned when hex input has an odd number of
	// digits, a non hex digit, or is too short to hold the marker.
	ErrMalformedInput = bitstr.ErrMalformedInput

	// ErrMessageTooLarge is returned when the input is too long for its bit
	// length to be encoded in 64 bits.
	ErrMessageTooLarge = frame.ErrMessageTooLarge

	// ErrUnknownEncoding is returned for encodings other than ASCII and Hex.
	ErrUnknownEncoding = errors.New("unknown encoding")
)

// Encoding describes how the text passed to Hash maps to bytes.
type Encoding string

const (
	// ASCII hashes the bytes of the text as is.
	ASCII Encoding = bitstr.ASCIIEncoding

	// Hex hashes the bytes described by a hex string after a two character
	// marker such as 0x.
	Hex Encoding = bitstr.HexEncoding
)

// ParseEncoding returns the Encoding with the given name.
func ParseEncoding(name string) (Encoding, error) {
	switch enc := Encoding(name); enc {
	case ASCII, Hex:
		return enc, nil
	default:
		return "", errors.Wrapf(ErrUnknownEncoding, "%q", name)
	}
}

// Hash returns the SHA-256 digest of input as 64 lowercase hex digits. The
// message is carried through framing as binary text, one character per bit.
func Hash(input string, enc Encoding) (string, error) {
	if _, err := ParseEncoding(string(enc)); err != nil {
		return "", err
	}

	data, err := bitstr.Decode(input, string(enc))
	if err != nil {
		return "", err
	}

	padded, err := frame.Pad(bitstr.FromBytes(data))
	if err != nil {
		return "", err
	}

	blocks := frame.Split(padded, consts.BlockBits)
	schedules := make([][consts.Rounds]uint32, len(blocks))
	for i, block := range blocks {
		if err := schedule.FromBits(block, &schedules[i]); err != nil {
			return "", errors.Wrapf(err, "block %d", i)
		}
	}

	state := compress.Chain(consts.IV, schedules)
	return formatState(&state), nil
}

// HashBytes returns the SHA-256 digest of data as 64 lowercase hex digits.
func HashBytes(data []byte) string {
	sum := Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Sum256 returns the SHA-256 digest of data.
func Sum256(data []byte) (out [Size]byte) {
	padded, err := frame.PadBytes(data)
	if err != nil {
		panic(err)
	}

	var block [consts.BlockLen]byte
	schedules := make([][consts.Rounds]uint32, len(padded)/consts.BlockLen)
	for i := range schedules {
		copy(block[:], padded[i*consts.BlockLen:])
		schedule.FromBytes(&block, &schedules[i])
	}

	state := compress.Chain(consts.IV, schedules)

	for i, v := range state {
		out[4*i+0] = byte(v >> 24)
		out[4*i+1] = byte(v >> 16)
		out[4*i+2] = byte(v >> 8)
		out[4*i+3] = byte(v)
	}
	return out
}

func formatState(state *[consts.StateWords]uint32) string {
	var sb strings.Builder
	sb.Grow(consts.HexDigitLen)
	for _, v := range state {
		sb.WriteString(bitstr.Hex(v))
	}
	return sb.String()
}
