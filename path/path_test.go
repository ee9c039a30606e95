package path_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ModChain/hdkey/path"
)

func TestParseTokenMnemonic(t *testing.T) {
	words := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	tok, err := path.ParseToken("bip39:" + words)
	require.NoError(t, err)
	require.Equal(t, path.KindMnemonic, tok.Kind)
	require.Equal(t, words, tok.Mnemonic)
}

func TestParseTokenMnemonicRejectsTooFewWords(t *testing.T) {
	_, err := path.ParseToken("bip39:only three words")
	require.Error(t, err)
}

func TestParseTokenBip32HardenedAndUnhardened(t *testing.T) {
	hardened, err := path.ParseToken("bip32:44'")
	require.NoError(t, err)
	require.True(t, hardened.Hardened)
	require.Equal(t, uint32(44), hardened.Index)
	require.Equal(t, uint32(44)+1<<31, hardened.ActualIndex())

	unhardened, err := path.ParseToken("bip32:0")
	require.NoError(t, err)
	require.False(t, unhardened.Hardened)
	require.Equal(t, uint32(0), unhardened.ActualIndex())
}

func TestParseTokenBip32RejectsLeadingZero(t *testing.T) {
	_, err := path.ParseToken("bip32:007")
	require.Error(t, err)
}

func TestParseTokenRejectsUnknownPrefix(t *testing.T) {
	_, err := path.ParseToken("bip33:1")
	require.Error(t, err)
}

func TestParsePathAndString(t *testing.T) {
	p, err := path.Parse("bip32:44'/bip32:60'/bip32:0'/bip32:0/bip32:0")
	require.NoError(t, err)
	require.Len(t, p, 5)
	require.True(t, p.IsPartial())
	require.False(t, p.IsRooted())
	require.Equal(t, "bip32:44'/bip32:60'/bip32:0'/bip32:0/bip32:0", p.String())
}

func TestIsRootedWithMnemonicPrefix(t *testing.T) {
	words := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	p, err := path.Parse("bip39:" + words + "/bip32:44'")
	require.NoError(t, err)
	require.True(t, p.IsRooted())
	require.False(t, p.IsPartial())
	require.Error(t, p.ValidatePartial())
}

func TestValidatePartialAcceptsIndexOnly(t *testing.T) {
	p, err := path.Parse("bip32:0/bip32:1")
	require.NoError(t, err)
	require.NoError(t, p.ValidatePartial())
}
