package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ModChain/hdkey/codec"
)

func TestFingerprintIsDeterministic(t *testing.T) {
	pub := make([]byte, 33)
	pub[0] = 0x02
	for i := 1; i < 33; i++ {
		pub[i] = byte(i)
	}
	a := codec.Fingerprint(pub)
	b := codec.Fingerprint(pub)
	require.Equal(t, a, b)
}

func TestFingerprintDiffersOnInput(t *testing.T) {
	a := make([]byte, 33)
	a[0] = 0x02
	b := make([]byte, 33)
	b[0] = 0x03
	require.NotEqual(t, codec.Fingerprint(a), codec.Fingerprint(b))
}
