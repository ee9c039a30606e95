package slip10

import (
	"github.com/ModChain/hdkey/codec"
	"github.com/ModChain/hdkey/hderr"
	"github.com/ModChain/hdkey/internal/secret"
)

const hardenedBit = uint32(1) << 31

// maxRetries bounds the SLIP-10 re-HMAC loop (§4.4: "in practice <= 2
// suffice cryptographically"); this is a generous ceiling against a
// pathological chain code, not an expected iteration count.
const maxRetries = 1024

// deriveChild performs a single BIP-32/SLIP-10 derivation step from n,
// producing the child at (index, hardened), per §4.4.
func (n *Node) deriveChild(index uint32, hardened bool) (*Node, error) {
	if n.depth == 0xff {
		return nil, hderr.New(hderr.InvalidBIP32Index, "maximum derivation depth exceeded")
	}
	if hardened && n.privateKey == nil {
		return nil, hderr.New(hderr.HardenedRequiresPrivate, "hardened derivation requires a private parent key")
	}
	if !hardened && !n.curveImpl.SupportsUnhardenedDerivation() {
		return nil, hderr.New(hderr.UnsupportedCurveOperation, "curve does not support unhardened derivation")
	}

	parentFP, err := n.Fingerprint()
	if err != nil {
		return nil, err
	}

	switch n.specification {
	case BIP32:
		return n.deriveBIP32(index, hardened, parentFP)
	case SLIP10:
		return n.deriveSLIP10(index, hardened, parentFP)
	default:
		return nil, hderr.New(hderr.InvalidSpecification, "unknown specification")
	}
}

// buildExtension constructs the 37-byte HMAC input for index i, per §4.4
// step 2.
func (n *Node) buildExtension(actualIndex uint32, hardened bool) ([]byte, error) {
	ext := make([]byte, 0, 37)
	if hardened {
		priv := n.privateKey.Bytes()
		ext = append(ext, 0x00)
		ext = append(ext, priv...)
	} else {
		cp, err := n.compressedPublicKey()
		if err != nil {
			return nil, err
		}
		ext = append(ext, cp...)
	}
	ext = append(ext, codec.U32BE(actualIndex)...)
	return ext, nil
}

// childFromIL builds the child Node's private/public material from a
// validated I_L, I_R pair. The caller is responsible for having already
// confirmed I_L is an acceptable intermediate value for this curve.
func (n *Node) childFromIL(il, ir []byte, actualIndex uint32, parentFP uint32) (*Node, error) {
	child := &Node{
		depth:             n.depth + 1,
		index:             actualIndex,
		parentFingerprint: parentFP,
		curveImpl:         n.curveImpl,
		specification:     n.specification,
		masterFingerprint: n.masterFingerprint,
		hasMaster:         n.hasMaster,
	}
	copy(child.chainCode[:], ir)

	if n.privateKey != nil {
		childPriv, err := n.curveImpl.CombineChildPrivateKey(n.privateKey.Bytes(), il)
		if err != nil {
			return nil, err
		}
		childSecret := secret.New(childPriv)
		pub, err := n.curveImpl.ScalarToPublicKey(childPriv, false)
		if err != nil {
			childSecret.Wipe()
			return nil, err
		}
		child.privateKey = childSecret
		child.publicKey = pub
	} else {
		ilPoint, err := n.curveImpl.ScalarToPublicKey(il, false)
		if err != nil {
			return nil, err
		}
		sum, err := n.curveImpl.PublicKeyAdd(ilPoint, n.publicKey)
		if err != nil {
			return nil, err
		}
		child.publicKey = sum
	}
	return child, nil
}

// deriveBIP32 implements the BIP-32 retry rule: on an invalid intermediate
// key, advance the child index by 1 (keeping the hardened flag) and retry.
// The index actually recorded on the child is the advanced index, per the
// Open Question resolution in §9.
func (n *Node) deriveBIP32(index uint32, hardened bool, parentFP uint32) (*Node, error) {
	if hardened && index > 0x7fffffff {
		return nil, hderr.New(hderr.InvalidBIP32Index, "hardened index must be < 2^31")
	}
	if !hardened && index >= hardenedBit {
		return nil, hderr.New(hderr.InvalidBIP32Index, "unhardened index must be < 2^31")
	}

	for attempt := 0; attempt < maxRetries; attempt++ {
		var actualIndex uint32
		if hardened {
			if index > 0x7fffffff {
				return nil, hderr.New(hderr.DerivationExhausted, "hardened index exhausted the 2^31 half-space")
			}
			actualIndex = index + hardenedBit
		} else {
			if index >= hardenedBit {
				return nil, hderr.New(hderr.DerivationExhausted, "unhardened index exhausted its half-space")
			}
			actualIndex = index
		}

		ext, err := n.buildExtension(actualIndex, hardened)
		if err != nil {
			return nil, err
		}
		il, ir, err := hmacSHA512(n.chainCode[:], ext)
		if err != nil {
			return nil, err
		}

		if !n.isValidIntermediate(il) {
			index++
			continue
		}
		child, err := n.childFromIL(il, ir, actualIndex, parentFP)
		if err != nil {
			if hderr.Is(err, hderr.InvalidDerivedKey) {
				index++
				continue
			}
			return nil, err
		}
		return child, nil
	}
	return nil, hderr.New(hderr.DerivationExhausted, "exceeded retry bound without finding a valid child key")
}

// deriveSLIP10 implements the SLIP-10 retry rule: on an invalid
// intermediate key, re-HMAC with 0x01 || previous I_R || ser32(index)
// without changing the recorded index; the chain code advances between
// tries.
func (n *Node) deriveSLIP10(index uint32, hardened bool, parentFP uint32) (*Node, error) {
	actualIndex := index
	if hardened {
		actualIndex = index + hardenedBit
	} else if index >= hardenedBit {
		return nil, hderr.New(hderr.InvalidBIP32Index, "unhardened index must be < 2^31")
	}

	ext, err := n.buildExtension(actualIndex, hardened)
	if err != nil {
		return nil, err
	}
	chainCode := append([]byte(nil), n.chainCode[:]...)
	il, ir, err := hmacSHA512(chainCode, ext)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxRetries; attempt++ {
		if n.isValidIntermediate(il) {
			child, err := n.childFromIL(il, ir, actualIndex, parentFP)
			if err == nil {
				return child, nil
			}
			if !hderr.Is(err, hderr.InvalidDerivedKey) {
				return nil, err
			}
		}
		// Retry: I = HMAC-SHA512(key=chainCode, data = 0x01 || I_R || ser32(actualIndex))
		retryData := make([]byte, 0, 1+32+4)
		retryData = append(retryData, 0x01)
		retryData = append(retryData, ir...)
		retryData = append(retryData, codec.U32BE(actualIndex)...)
		il, ir, err = hmacSHA512(chainCode, retryData)
		if err != nil {
			return nil, err
		}
	}
	return nil, hderr.New(hderr.DerivationExhausted, "exceeded retry bound without finding a valid child key")
}

// isValidIntermediate reports whether I_L is usable per §4.4: I_L < n for
// the curve (and, for ed25519, always true).
func (n *Node) isValidIntermediate(il []byte) bool {
	return n.curveImpl.IsValidScalar(il)
}
