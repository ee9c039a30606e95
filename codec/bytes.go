// Package codec implements the low-level byte-shuffling shared by the
// extended-key codec and the derivation engine: fixed-width integers,
// Base58Check, hex normalization, and fingerprinting. It has no notion of
// curves or derivation paths.
package codec

import (
	"encoding/binary"
	"strings"

	"github.com/ModChain/hdkey/hderr"
)

// U32BE encodes x as 4 big-endian bytes (network byte order), per §4.2.
func U32BE(x uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, x)
	return b
}

// ParseU32BE decodes 4 big-endian bytes into a uint32.
func ParseU32BE(b []byte) (uint32, error) {
	if len(b) != 4 {
		return 0, hderr.New(hderr.InvalidExtendedKey, "expected 4 bytes for a uint32 field")
	}
	return binary.BigEndian.Uint32(b), nil
}

// DecodeHex parses a hex string with an optional "0x" prefix, requiring
// even length, and returns the decoded bytes. It does not require the
// input to already be lowercase.
func DecodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	if len(s)%2 != 0 {
		return nil, hderr.New(hderr.InvalidExtendedKey, "hex string has odd length")
	}
	out := make([]byte, len(s)/2)
	for i := 0; i < len(out); i++ {
		hi, ok1 := hexDigit(s[2*i])
		lo, ok2 := hexDigit(s[2*i+1])
		if !ok1 || !ok2 {
			return nil, hderr.New(hderr.InvalidExtendedKey, "invalid hex digit")
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}

// EncodeHex renders b as unprefixed, lowercase hex, per the §6 JSON record
// convention.
func EncodeHex(b []byte) string {
	const digits = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[2*i] = digits[c>>4]
		out[2*i+1] = digits[c&0x0f]
	}
	return string(out)
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// IsAllZero reports whether b consists entirely of zero bytes (used to
// reject an all-zero chain code or key payload).
func IsAllZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
