package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ModChain/hdkey/codec"
)

func TestBase58CheckRoundTrip(t *testing.T) {
	payload := make([]byte, 78)
	for i := range payload {
		payload[i] = byte(i)
	}
	encoded := codec.Base58CheckEncode(payload)
	decoded, err := codec.Base58CheckDecode(encoded)
	require.NoError(t, err)
	require.Equal(t, payload, decoded)
}

func TestBase58CheckDecodeBadChecksum(t *testing.T) {
	payload := []byte("hello world")
	encoded := codec.Base58CheckEncode(payload)
	// Flip the last character, which lives inside the checksum's encoding.
	tampered := encoded[:len(encoded)-1] + flipLastBase58Char(encoded)
	_, err := codec.Base58CheckDecode(tampered)
	require.Error(t, err)
}

func flipLastBase58Char(s string) string {
	const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	last := s[len(s)-1]
	for _, c := range alphabet {
		if byte(c) != last {
			return string(c)
		}
	}
	return s[len(s)-1:]
}

func TestBase58CheckDecodeTooShort(t *testing.T) {
	_, err := codec.Base58CheckDecode("1")
	require.Error(t, err)
}
