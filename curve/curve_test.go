package curve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ModChain/hdkey/curve"
)

func TestGetKnownCurves(t *testing.T) {
	secp, err := curve.Get(curve.Secp256k1)
	require.NoError(t, err)
	require.Equal(t, curve.Secp256k1, secp.Name())

	ed, err := curve.Get(curve.Ed25519)
	require.NoError(t, err)
	require.Equal(t, curve.Ed25519, ed.Name())
}

func TestGetUnknownCurve(t *testing.T) {
	_, err := curve.Get(curve.Name("bn254"))
	require.Error(t, err)
}

func TestRegistryIsolated(t *testing.T) {
	r := &curve.Registry{}
	_, err := r.Get(curve.Secp256k1)
	require.Error(t, err, "a fresh registry should not inherit the package-level defaults")

	secp, err := curve.Get(curve.Secp256k1)
	require.NoError(t, err)
	r.Register(curve.Secp256k1, secp)
	got, err := r.Get(curve.Secp256k1)
	require.NoError(t, err)
	require.Equal(t, secp, got)
}

func TestSecp256k1ScalarToPublicKeyRejectsZero(t *testing.T) {
	secp, err := curve.Get(curve.Secp256k1)
	require.NoError(t, err)

	zero := make([]byte, 32)
	_, err = secp.ScalarToPublicKey(zero, false)
	require.Error(t, err)
}

func TestSecp256k1ScalarToPublicKeyCompressedAndUncompressed(t *testing.T) {
	secp, err := curve.Get(curve.Secp256k1)
	require.NoError(t, err)

	scalar := make([]byte, 32)
	scalar[31] = 0x01
	uncompressed, err := secp.ScalarToPublicKey(scalar, false)
	require.NoError(t, err)
	require.Len(t, uncompressed, secp.PublicKeyLength())

	compressed, err := secp.Compress(uncompressed)
	require.NoError(t, err)
	require.Len(t, compressed, secp.CompressedPublicKeyLength())

	decompressed, err := secp.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, uncompressed, decompressed)
}

func TestSecp256k1PrivateAddRejectsOutOfRangeTweak(t *testing.T) {
	secp, err := curve.Get(curve.Secp256k1)
	require.NoError(t, err)

	scalar := make([]byte, 32)
	scalar[31] = 0x01
	tweak := secp.OrderN().Bytes() // == n, out of range

	_, err = secp.PrivateAdd(scalar, tweak)
	require.Error(t, err)
}

func TestEd25519DoesNotSupportUnhardenedDerivation(t *testing.T) {
	ed, err := curve.Get(curve.Ed25519)
	require.NoError(t, err)
	require.False(t, ed.SupportsUnhardenedDerivation())
}

func TestEd25519CombineChildPrivateKeyReturnsILUnchanged(t *testing.T) {
	ed, err := curve.Get(curve.Ed25519)
	require.NoError(t, err)

	il := make([]byte, 32)
	il[0] = 0xAB
	child, err := ed.CombineChildPrivateKey(make([]byte, 32), il)
	require.NoError(t, err)
	require.Equal(t, il, child)
}

func TestEd25519PublicKeyAddUnsupported(t *testing.T) {
	ed, err := curve.Get(curve.Ed25519)
	require.NoError(t, err)

	_, err = ed.PublicKeyAdd(make([]byte, 32), make([]byte, 32))
	require.Error(t, err)
}
