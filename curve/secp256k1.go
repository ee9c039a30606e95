package curve

import (
	"math/big"

	"github.com/ModChain/hdkey/hderr"
	"github.com/ModChain/secp256k1"
)

// secp256k1Curve wraps github.com/ModChain/secp256k1, the real curve-math
// dependency this module treats as the external collaborator the spec
// assumes is available. It follows the same big.Int-based arithmetic the
// teacher's ecckd.ExtendedKey.ChildWithIL uses rather than reaching into
// ModNScalar internals directly.
type secp256k1Curve struct{}

func (secp256k1Curve) Name() Name { return Secp256k1 }

func (secp256k1Curve) PublicKeyLength() int           { return 65 }
func (secp256k1Curve) CompressedPublicKeyLength() int { return 33 }
func (secp256k1Curve) OrderN() *big.Int               { return secp256k1.S256().N }
func (secp256k1Curve) SupportsUnhardenedDerivation() bool { return true }

func (c secp256k1Curve) IsValidScalar(b []byte) bool {
	if len(b) == 0 || len(b) > 32 {
		return false
	}
	k := new(big.Int).SetBytes(b)
	if k.Sign() == 0 {
		return false
	}
	return k.Cmp(c.OrderN()) < 0
}

func (c secp256k1Curve) ScalarToPublicKey(scalar []byte, compressed bool) ([]byte, error) {
	if !c.IsValidScalar(scalar) {
		return nil, hderr.New(hderr.InvalidScalar, "secp256k1 scalar out of range")
	}
	priv := secp256k1.PrivKeyFromBytes(scalar)
	pub := priv.PubKey()
	if compressed {
		return pub.SerializeCompressed(), nil
	}
	return pub.SerializeUncompressed(), nil
}

func (c secp256k1Curve) PublicKeyAdd(a, b []byte) ([]byte, error) {
	pa, err := secp256k1.ParsePubKey(a)
	if err != nil {
		return nil, hderr.Wrap(hderr.InvalidPublicKey, "parse first point", err)
	}
	pb, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, hderr.Wrap(hderr.InvalidPublicKey, "parse second point", err)
	}
	curve := secp256k1.S256()
	x, y := curve.Add(pa.X(), pa.Y(), pb.X(), pb.Y())
	if x.Sign() == 0 && y.Sign() == 0 {
		return nil, hderr.New(hderr.InvalidDerivedKey, "point addition yielded point at infinity")
	}
	sum := secp256k1.NewPublicKey(asFieldVal(x), asFieldVal(y))
	return sum.SerializeUncompressed(), nil
}

func (secp256k1Curve) Compress(uncompressed []byte) ([]byte, error) {
	pub, err := secp256k1.ParsePubKey(uncompressed)
	if err != nil {
		return nil, hderr.Wrap(hderr.InvalidPublicKey, "parse uncompressed point", err)
	}
	return pub.SerializeCompressed(), nil
}

func (secp256k1Curve) Decompress(compressed []byte) ([]byte, error) {
	pub, err := secp256k1.ParsePubKey(compressed)
	if err != nil {
		return nil, hderr.Wrap(hderr.InvalidPublicKey, "parse compressed point", err)
	}
	return pub.SerializeUncompressed(), nil
}

func (c secp256k1Curve) PrivateAdd(scalar, tweak []byte) ([]byte, error) {
	if len(tweak) != 32 {
		return nil, hderr.New(hderr.InvalidTweak, "tweak must be 32 bytes")
	}
	tweakInt := new(big.Int).SetBytes(tweak)
	if tweakInt.Sign() == 0 {
		return nil, hderr.New(hderr.InvalidTweak, "tweak must be non-zero")
	}
	n := c.OrderN()
	if tweakInt.Cmp(n) >= 0 {
		return nil, hderr.New(hderr.InvalidTweak, "tweak >= curve order")
	}

	sum := new(big.Int).SetBytes(scalar)
	sum.Add(sum, tweakInt)
	sum.Mod(sum, n)
	if sum.Sign() == 0 {
		return nil, hderr.New(hderr.InvalidDerivedKey, "derived scalar is zero")
	}

	out := sum.Bytes()
	if len(out) < 32 {
		padded := make([]byte, 32)
		copy(padded[32-len(out):], out)
		out = padded
	}
	return out, nil
}

func (c secp256k1Curve) CombineChildPrivateKey(parentKey, il []byte) ([]byte, error) {
	return c.PrivateAdd(parentKey, il)
}

func asFieldVal(v *big.Int) *secp256k1.FieldVal {
	fv := new(secp256k1.FieldVal)
	fv.SetByteSlice(v.Bytes())
	return fv
}
