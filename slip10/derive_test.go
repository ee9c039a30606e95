package slip10_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ModChain/hdkey/curve"
	"github.com/ModChain/hdkey/slip10"
)

// forceInvalidOnce wraps a real curve.Curve and makes exactly one
// IsValidScalar call (the skip+1'th) report false, regardless of the
// underlying scalar, then reverts to delegating truthfully. This is the
// only way to force the BIP-32/SLIP-10 retry machinery down its recovery
// path on demand, since a real invalid intermediate key cannot be
// arranged by choice of seed/index alone.
type forceInvalidOnce struct {
	curve.Curve
	skip   int
	calls  int
	forced bool
}

func (f *forceInvalidOnce) IsValidScalar(b []byte) bool {
	f.calls++
	if f.calls == f.skip+1 && !f.forced {
		f.forced = true
		return false
	}
	return f.Curve.IsValidScalar(b)
}

// TestBIP32AndSLIP10DivergeOnRetryRecordedIndex exercises the divergence
// the specification calls "THE CORE" (§9 Open Question, §8 "Specification
// divergence"): forcing isValidScalar false on the first try for m/0' from
// the BIP-32 test-vector-1 master, the BIP-32 engine advances and records
// index = 2^31+1, while the SLIP-10 engine re-HMACs and records the
// unchanged index = 2^31 but a different chain code, per spec.md scenario
// 5.
func TestBIP32AndSLIP10DivergeOnRetryRecordedIndex(t *testing.T) {
	secp, err := curve.Get(curve.Secp256k1)
	require.NoError(t, err)

	bip32Forced := &forceInvalidOnce{Curve: secp, skip: 1}
	bip32Master, err := slip10.FromSeed(vector1Seed(t), bip32Forced, slip10.BIP32)
	require.NoError(t, err)
	bip32Child, err := bip32Master.DeriveOne(0, true)
	require.NoError(t, err)
	require.Equal(t, uint32(1)<<31+1, bip32Child.Index())

	slip10Forced := &forceInvalidOnce{Curve: secp, skip: 1}
	slip10Master, err := slip10.FromSeed(vector1Seed(t), slip10Forced, slip10.SLIP10)
	require.NoError(t, err)
	slip10Child, err := slip10Master.DeriveOne(0, true)
	require.NoError(t, err)
	require.Equal(t, uint32(1)<<31, slip10Child.Index())

	// The forced retry must have actually produced a different chain code
	// than an unforced derivation of the same m/0' step.
	plainSLIP10Master, err := slip10.FromSeed(vector1Seed(t), secp, slip10.SLIP10)
	require.NoError(t, err)
	plainSLIP10Child, err := plainSLIP10Master.DeriveOne(0, true)
	require.NoError(t, err)
	require.NotEqual(t, plainSLIP10Child.ChainCodeHex(), slip10Child.ChainCodeHex())
}

// TestDeriveVector1HardenedChildMatchesBIP32Vector exercises spec.md
// scenario 2: deriving m/0' from the BIP-32 test-vector-1 master (no
// forcing) must match the well-known BIP-32 test vector 1 chain
// code/private key prefixes for that child.
func TestDeriveVector1HardenedChildMatchesBIP32Vector(t *testing.T) {
	secp, err := curve.Get(curve.Secp256k1)
	require.NoError(t, err)
	master, err := slip10.FromSeed(vector1Seed(t), secp, slip10.BIP32)
	require.NoError(t, err)

	child, err := master.DeriveOne(0, true)
	require.NoError(t, err)
	require.Equal(t, uint32(1)<<31, child.Index())

	require.True(t, strings.HasPrefix(child.ChainCodeHex(), "47fdacbd"))
	priv, ok := child.PrivateKeyHex()
	require.True(t, ok)
	require.True(t, strings.HasPrefix(priv, "edb2e14f"))
}

func TestDeriveRejectsUnhardenedIndexAboveHalfSpace(t *testing.T) {
	secp, err := curve.Get(curve.Secp256k1)
	require.NoError(t, err)
	master, err := slip10.FromSeed(testSeed(), secp, slip10.BIP32)
	require.NoError(t, err)

	_, err = master.DeriveOne(1<<31, false)
	require.Error(t, err)
}

func TestDeriveSLIP10Ed25519AlwaysHardened(t *testing.T) {
	ed, err := curve.Get(curve.Ed25519)
	require.NoError(t, err)
	master, err := slip10.FromSeed(testSeed(), ed, slip10.SLIP10)
	require.NoError(t, err)

	_, err = master.DeriveOne(0, false)
	require.Error(t, err, "ed25519 only supports hardened derivation")

	child, err := master.DeriveOne(0, true)
	require.NoError(t, err)
	require.True(t, child.HasPrivateKey())
}

func TestDeriveChainOfDepthFive(t *testing.T) {
	secp, err := curve.Get(curve.Secp256k1)
	require.NoError(t, err)
	node, err := slip10.FromSeed(testSeed(), secp, slip10.BIP32)
	require.NoError(t, err)

	indices := []struct {
		index    uint32
		hardened bool
	}{
		{44, true}, {60, true}, {0, true}, {0, false}, {0, false},
	}
	for i, step := range indices {
		node, err = node.DeriveOne(step.index, step.hardened)
		require.NoError(t, err)
		require.Equal(t, uint8(i+1), node.Depth())
	}
}
