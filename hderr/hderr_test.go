package hderr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ModChain/hdkey/hderr"
)

func TestNewAndError(t *testing.T) {
	err := hderr.New(hderr.InvalidMnemonic, "bad phrase")
	require.EqualError(t, err, "invalid-mnemonic: bad phrase")
}

func TestErrorWithoutMsg(t *testing.T) {
	err := hderr.New(hderr.InvalidScalar, "")
	require.EqualError(t, err, "invalid-scalar")
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("boom")
	err := hderr.Wrap(hderr.InvalidBase58, "decode failed", cause)
	require.ErrorIs(t, err, cause)
}

func TestIsMatchesKind(t *testing.T) {
	err := hderr.New(hderr.DerivationExhausted, "")
	require.True(t, hderr.Is(err, hderr.DerivationExhausted))
	require.False(t, hderr.Is(err, hderr.InvalidScalar))
}

func TestIsWalksWrappedChain(t *testing.T) {
	base := hderr.New(hderr.InvalidChainCode, "zero chain code")
	wrapped := fmt.Errorf("reconstructing node: %w", base)
	require.True(t, hderr.Is(wrapped, hderr.InvalidChainCode))
}

func TestIsFalseForPlainError(t *testing.T) {
	require.False(t, hderr.Is(errors.New("plain"), hderr.InvalidScalar))
	require.False(t, hderr.Is(nil, hderr.InvalidScalar))
}
