package slip10_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ModChain/hdkey/curve"
	"github.com/ModChain/hdkey/slip10"
	"github.com/ModChain/hdkey/xkey"
)

func TestToJSONIncludesMasterFingerprintAtRoot(t *testing.T) {
	secp, err := curve.Get(curve.Secp256k1)
	require.NoError(t, err)
	master, err := slip10.FromSeed(testSeed(), secp, slip10.BIP32)
	require.NoError(t, err)

	rec, err := master.ToJSON(xkey.Mainnet)
	require.NoError(t, err)
	require.NotNil(t, rec.MasterFingerprint)
	require.NotNil(t, rec.PrivateKey)
	require.Equal(t, xkey.Mainnet, rec.Network)
}

func TestToJSONOmitsMasterFingerprintAfterReconstruction(t *testing.T) {
	secp, err := curve.Get(curve.Secp256k1)
	require.NoError(t, err)
	master, err := slip10.FromSeed(testSeed(), secp, slip10.BIP32)
	require.NoError(t, err)
	child, err := master.DeriveOne(0, true)
	require.NoError(t, err)

	s := child.String()
	reconstructed, err := slip10.FromExtendedKeyString(s, secp, slip10.BIP32)
	require.NoError(t, err)

	rec, err := reconstructed.ToJSON(xkey.Mainnet)
	require.NoError(t, err)
	require.Nil(t, rec.MasterFingerprint)
}

func TestMarshalJSONProducesValidDocument(t *testing.T) {
	secp, err := curve.Get(curve.Secp256k1)
	require.NoError(t, err)
	master, err := slip10.FromSeed(testSeed(), secp, slip10.BIP32)
	require.NoError(t, err)

	out, err := json.Marshal(master)
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(out, &generic))
	require.Contains(t, generic, "publicKey")
	require.Contains(t, generic, "chainCode")
}
