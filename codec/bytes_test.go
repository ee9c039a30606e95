package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ModChain/hdkey/codec"
)

func TestU32BERoundTrip(t *testing.T) {
	b := codec.U32BE(0x80000000)
	require.Equal(t, []byte{0x80, 0x00, 0x00, 0x00}, b)

	n, err := codec.ParseU32BE(b)
	require.NoError(t, err)
	require.Equal(t, uint32(0x80000000), n)
}

func TestParseU32BEWrongLength(t *testing.T) {
	_, err := codec.ParseU32BE([]byte{0x01, 0x02, 0x03})
	require.Error(t, err)
}

func TestDecodeHexWithAndWithoutPrefix(t *testing.T) {
	a, err := codec.DecodeHex("0xdeadbeef")
	require.NoError(t, err)
	b, err := codec.DecodeHex("deadbeef")
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Equal(t, "deadbeef", codec.EncodeHex(a))
}

func TestDecodeHexOddLength(t *testing.T) {
	_, err := codec.DecodeHex("abc")
	require.Error(t, err)
}

func TestDecodeHexInvalidDigit(t *testing.T) {
	_, err := codec.DecodeHex("zz")
	require.Error(t, err)
}

func TestIsAllZero(t *testing.T) {
	require.True(t, codec.IsAllZero(make([]byte, 32)))
	require.False(t, codec.IsAllZero([]byte{0, 0, 1}))
}
