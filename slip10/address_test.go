package slip10_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ModChain/hdkey/curve"
	"github.com/ModChain/hdkey/slip10"
)

func TestEthereumAddressShapeAndDeterminism(t *testing.T) {
	secp, err := curve.Get(curve.Secp256k1)
	require.NoError(t, err)
	node, err := slip10.FromSeed(testSeed(), secp, slip10.BIP32)
	require.NoError(t, err)

	addr, err := node.EthereumAddress()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(addr, "0x"))
	require.Len(t, addr, 42)

	again, err := node.EthereumAddress()
	require.NoError(t, err)
	require.Equal(t, addr, again)
}

func TestEthereumAddressUnsupportedOnEd25519(t *testing.T) {
	ed, err := curve.Get(curve.Ed25519)
	require.NoError(t, err)
	node, err := slip10.FromSeed(testSeed(), ed, slip10.SLIP10)
	require.NoError(t, err)

	_, err = node.EthereumAddress()
	require.Error(t, err)
}
