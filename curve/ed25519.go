package curve

import (
	"math/big"

	"github.com/ModChain/hdkey/hderr"
	"github.com/decred/dcrd/dcrec/edwards/v2"
)

// ed25519Curve wraps github.com/decred/dcrd/dcrec/edwards/v2, pulled in
// from the pack the way github.com/bnb-chain/tss-lib's tss package does
// for its own ed25519 curve registration. SLIP-10 restricts ed25519 to
// hardened derivation only, so the public-key-arithmetic methods below
// (PublicKeyAdd, PrivateAdd) are never reached by the engine — they exist
// to satisfy the Curve interface and fail loudly if ever misused.
type ed25519Curve struct{}

func (ed25519Curve) Name() Name { return Ed25519 }

func (ed25519Curve) PublicKeyLength() int             { return 32 }
func (ed25519Curve) CompressedPublicKeyLength() int   { return 32 }
func (ed25519Curve) SupportsUnhardenedDerivation() bool { return false }

func (ed25519Curve) OrderN() *big.Int {
	return edwards.Edwards().Params().N
}

// IsValidScalar reports true for any 32-byte input: per SLIP-10 §4.4, an
// ed25519 derivation step is always valid, so there is no retry path to
// gate. Inputs of any other length are rejected.
func (ed25519Curve) IsValidScalar(b []byte) bool {
	return len(b) == 32
}

func (ed25519Curve) ScalarToPublicKey(scalar []byte, _ bool) ([]byte, error) {
	if len(scalar) != 32 {
		return nil, hderr.New(hderr.InvalidScalar, "ed25519 scalar must be 32 bytes")
	}
	_, pub := edwards.PrivKeyFromSecret(scalar)
	return pub.Serialize(), nil
}

func (ed25519Curve) PublicKeyAdd(a, b []byte) ([]byte, error) {
	return nil, hderr.New(hderr.UnsupportedCurveOperation, "ed25519 does not support unhardened public derivation")
}

func (ed25519Curve) Compress(uncompressed []byte) ([]byte, error) {
	return uncompressed, nil
}

func (ed25519Curve) Decompress(compressed []byte) ([]byte, error) {
	return compressed, nil
}

func (ed25519Curve) PrivateAdd(scalar, tweak []byte) ([]byte, error) {
	return nil, hderr.New(hderr.UnsupportedCurveOperation, "ed25519 has no modular tweak-add; SLIP-10 takes IL directly")
}

// CombineChildPrivateKey has no modular-addition rule for ed25519: the
// child private key is IL unchanged, and this step never fails.
func (ed25519Curve) CombineChildPrivateKey(parentKey, il []byte) ([]byte, error) {
	out := make([]byte, len(il))
	copy(out, il)
	return out, nil
}
