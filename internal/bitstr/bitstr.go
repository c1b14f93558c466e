// Package bitstr converts between bytes, unsigned words and their binary or
// hexadecimal text forms.
package bitstr

import (
	"encoding/binary"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"

	"github.com/zeebo/sha256bits/internal/consts"
)

// ErrMalformedInput is returned when hex encoded input cannot be decoded.
var ErrMalformedInput = errors.New("malformed input")

// Encoding names understood by Decode.
const (
	ASCIIEncoding = "ascii"
	HexEncoding   = "hex"
)

// Uint renders the low width bits of x as binary text, most significant bit
// first. Each bit is extracted individually so the result is never a signed
// or sign extended form.
func Uint(x uint64, width int) string {
	if width <= 0 {
		return ""
	}

	buf := make([]byte, width)
	for i := range buf {
		shift := uint(width - 1 - i)
		if shift < 64 && (x>>shift)&1 == 1 {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// FromBytes concatenates the 8 bit rendering of every byte in b.
func FromBytes(b []byte) string {
	var sb strings.Builder
	sb.Grow(8 * len(b))
	for _, v := range b {
		sb.WriteString(Uint(uint64(v), 8))
	}
	return sb.String()
}

// Word parses exactly 32 characters of binary text into a word.
func Word(bits string) (uint32, error) {
	if len(bits) != consts.WordBits {
		return 0, errors.Errorf("word needs %d bits, got %d", consts.WordBits, len(bits))
	}

	var w uint32
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			w <<= 1
		case '1':
			w = w<<1 | 1
		default:
			return 0, errors.Errorf("invalid bit %q at offset %d", bits[i], i)
		}
	}
	return w, nil
}

// Hex renders w as 8 lowercase, zero padded hex digits.
func Hex(w uint32) string {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], w)
	return hex.EncodeToString(buf[:])
}

// Decode returns the bytes to hash for text. ASCIIEncoding returns the
// underlying bytes of text. HexEncoding drops a two character marker such as
// 0x and decodes the remaining pairs of hex digits.
func Decode(text, encoding string) ([]byte, error) {
	switch encoding {
	case ASCIIEncoding:
		return []byte(text), nil

	case HexEncoding:
		if len(text) < 2 {
			return nil, errors.Wrapf(ErrMalformedInput, "hex input %q: missing prefix", text)
		}
		digits := text[2:]
		if len(digits)%2 != 0 {
			return nil, errors.Wrapf(ErrMalformedInput, "hex input has odd length %d", len(digits))
		}
		out, err := hex.DecodeString(digits)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedInput, "hex input: %v", err)
		}
		return out, nil

	default:
		return nil, errors.Errorf("unknown encoding %q", encoding)
	}
}
