// Package slip10 implements the canonical internal node model (§3, §4.5)
// and the BIP-32/SLIP-10 derivation engine (§4.4) that produces it. A Node
// is immutable once constructed; every derivation or neuter call returns a
// fresh Node.
package slip10

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"

	"github.com/ModChain/hdkey/codec"
	"github.com/ModChain/hdkey/curve"
	"github.com/ModChain/hdkey/hderr"
	"github.com/ModChain/hdkey/internal/secret"
	"github.com/ModChain/hdkey/path"
	"github.com/ModChain/hdkey/xkey"
)

// Node is the canonical SLIP-10 node described in §3.
type Node struct {
	depth             uint8
	index             uint32
	parentFingerprint uint32
	masterFingerprint uint32
	hasMaster         bool // false when reconstructed from an extended key at non-zero depth

	chainCode  [32]byte
	privateKey *secret.Bytes // nil for public-only nodes
	publicKey  []byte        // uncompressed, curve-specific length

	curveImpl     curve.Curve
	specification Specification
}

// Depth returns the node's derivation depth (0 at the root).
func (n *Node) Depth() uint8 { return n.depth }

// Index returns the node's child index, with the hardened bit (if any)
// already folded in.
func (n *Node) Index() uint32 { return n.index }

// IsHardened reports whether this node was derived with a hardened index.
func (n *Node) IsHardened() bool { return n.index >= hardenedBit }

// ParentFingerprint returns the fingerprint of this node's direct parent,
// or 0 at depth 0.
func (n *Node) ParentFingerprint() uint32 { return n.parentFingerprint }

// MasterFingerprint returns the fingerprint of the depth-0 ancestor and
// true, or (0, false) if this node (or an ancestor it was derived from) was
// reconstructed from an extended key at non-zero depth.
func (n *Node) MasterFingerprint() (uint32, bool) { return n.masterFingerprint, n.hasMaster }

// ChainCodeHex returns the 32-byte chain code as lowercase hex.
func (n *Node) ChainCodeHex() string { return codec.EncodeHex(n.chainCode[:]) }

// Curve returns the curve this node derives on.
func (n *Node) Curve() curve.Name { return n.curveImpl.Name() }

// Specification returns which derivation algorithm produced this node.
func (n *Node) Specification() Specification { return n.specification }

// HasPrivateKey reports whether this node carries a private key.
func (n *Node) HasPrivateKey() bool { return n.privateKey != nil }

// PrivateKeyHex returns the private key as lowercase hex, and false if this
// node is public-only.
func (n *Node) PrivateKeyHex() (string, bool) {
	if n.privateKey == nil {
		return "", false
	}
	return codec.EncodeHex(n.privateKey.Bytes()), true
}

// PublicKeyHex returns the uncompressed public key as lowercase hex.
func (n *Node) PublicKeyHex() string { return codec.EncodeHex(n.publicKey) }

// CompressedPublicKeyHex returns the compressed public key as lowercase
// hex.
func (n *Node) CompressedPublicKeyHex() (string, error) {
	cp, err := n.compressedPublicKey()
	if err != nil {
		return "", err
	}
	return codec.EncodeHex(cp), nil
}

func (n *Node) compressedPublicKey() ([]byte, error) {
	return n.curveImpl.Compress(n.publicKey)
}

// Fingerprint returns the first 4 bytes of RIPEMD-160(SHA-256(compressed
// public key)), per §4.2.
func (n *Node) Fingerprint() (uint32, error) {
	cp, err := n.compressedPublicKey()
	if err != nil {
		return 0, err
	}
	return codec.Fingerprint(cp), nil
}

// Neuter returns a new public-only node excluding the private key. It does
// not mutate n.
func (n *Node) Neuter() *Node {
	clone := *n
	clone.privateKey = nil
	return &clone
}

// ExtendedKey serializes the node to its xkey.ExtendedKey representation,
// chain-aware via network.
func (n *Node) ExtendedKey(network xkey.Network) (*xkey.ExtendedKey, error) {
	if n.curveImpl.Name() != curve.Secp256k1 {
		return nil, hderr.New(hderr.InvalidSpecification, "extended-key serialization is only defined for secp256k1")
	}
	ek := &xkey.ExtendedKey{
		Depth:             n.depth,
		ParentFingerprint: n.parentFingerprint,
		ChildNumber:       n.index,
	}
	copy(ek.ChainCode[:], n.chainCode[:])

	if n.privateKey != nil {
		ek.Version = xkey.VersionFor(network, true, n.curveImpl.Name())
		ek.KeyData[0] = 0x00
		copy(ek.KeyData[1:], n.privateKey.Bytes())
	} else {
		ek.Version = xkey.VersionFor(network, false, n.curveImpl.Name())
		cp, err := n.compressedPublicKey()
		if err != nil {
			return nil, err
		}
		copy(ek.KeyData[:], cp)
	}
	return ek, nil
}

// String renders the node as a Base58Check-encoded xprv/xpub, mainnet by
// default.
func (n *Node) String() string {
	ek, err := n.ExtendedKey(xkey.Mainnet)
	if err != nil {
		return ""
	}
	s, err := ek.Encode()
	if err != nil {
		return ""
	}
	return s
}

// FromSeed builds a depth-0 master node from a raw seed byte string, per
// §4.5.
func FromSeed(seed []byte, c curve.Curve, spec Specification) (*Node, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	if c.Name() == curve.Ed25519 && spec != SLIP10 {
		return nil, hderr.New(hderr.InvalidSpecification, "ed25519 requires the slip10 specification")
	}
	if len(seed) < 16 || len(seed) > 64 {
		return nil, hderr.New(hderr.InvalidSeedLength, "seed must be between 16 and 64 bytes")
	}

	il, ir, err := hmacSHA512(masterSecret(c), seed)
	if err != nil {
		return nil, err
	}
	if !c.IsValidScalar(il) {
		return nil, hderr.New(hderr.InvalidScalar, "master key derivation produced an invalid scalar")
	}

	priv := secret.New(il)
	node := &Node{
		depth:             0,
		index:             0,
		parentFingerprint: 0,
		curveImpl:         c,
		specification:     spec,
		privateKey:        priv,
	}
	copy(node.chainCode[:], ir)

	pub, err := c.ScalarToPublicKey(il, false)
	if err != nil {
		priv.Wipe()
		return nil, err
	}
	node.publicKey = pub

	fp, err := node.Fingerprint()
	if err != nil {
		priv.Wipe()
		return nil, err
	}
	node.masterFingerprint = fp
	node.hasMaster = true
	return node, nil
}

// FromMnemonic builds a depth-0 master node from a BIP-39 mnemonic and
// optional passphrase, per §4.5. ctx is honored for cancellation around
// the PBKDF2 seed expansion, per §5.
func FromMnemonic(ctx context.Context, mnemonic, passphrase string, c curve.Curve, spec Specification) (*Node, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	seed, err := seedFromMnemonic(mnemonic, passphrase)
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return FromSeed(seed, c, spec)
}

// FromExtendedKey reconstructs a Node from a decoded xkey.ExtendedKey.
// At non-zero depth the resulting node has no known master fingerprint; at
// depth 0 the node is its own master and its fingerprint is recorded.
func FromExtendedKey(ek *xkey.ExtendedKey, c curve.Curve, spec Specification) (*Node, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}

	node := &Node{
		depth:             ek.Depth,
		index:             ek.ChildNumber,
		parentFingerprint: ek.ParentFingerprint,
		curveImpl:         c,
		specification:     spec,
	}
	copy(node.chainCode[:], ek.ChainCode[:])
	if codec.IsAllZero(node.chainCode[:]) {
		return nil, hderr.New(hderr.InvalidChainCode, "chain code must not be all-zero")
	}

	if ek.IsPrivate() {
		priv := ek.PrivateKey()
		if !c.IsValidScalar(priv) {
			return nil, hderr.New(hderr.InvalidExtendedKey, "private key payload is not a valid scalar for this curve")
		}
		sec := secret.New(priv)
		pub, err := c.ScalarToPublicKey(priv, false)
		if err != nil {
			sec.Wipe()
			return nil, hderr.Wrap(hderr.InvalidExtendedKey, "private key payload failed to derive a public key", err)
		}
		node.privateKey = sec
		node.publicKey = pub
	} else {
		pub, err := c.Decompress(ek.CompressedPublicKey())
		if err != nil {
			return nil, hderr.Wrap(hderr.InvalidExtendedKey, "public key does not decompress", err)
		}
		node.publicKey = pub
	}

	if node.depth == 0 {
		fp, err := node.Fingerprint()
		if err != nil {
			return nil, err
		}
		node.masterFingerprint = fp
		node.hasMaster = true
	}
	return node, nil
}

// FromExtendedKeyString decodes and reconstructs a Node from a Base58Check
// xprv/xpub string.
func FromExtendedKeyString(s string, c curve.Curve, spec Specification) (*Node, error) {
	ek, err := xkey.Decode(s)
	if err != nil {
		return nil, err
	}
	return FromExtendedKey(ek, c, spec)
}

// Derive applies a partial path (bip32: tokens only) to n, one step per
// token, via the derivation engine in derive.go.
func (n *Node) Derive(p path.Path) (*Node, error) {
	if err := p.ValidatePartial(); err != nil {
		return nil, err
	}
	cur := n
	for _, tok := range p {
		next, err := cur.deriveChild(tok.Index, tok.Hardened)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// DeriveOne derives a single child at the given raw index and hardened
// flag.
func (n *Node) DeriveOne(index uint32, hardened bool) (*Node, error) {
	return n.deriveChild(index, hardened)
}

func hmacSHA512(key, data []byte) (il, ir []byte, err error) {
	mac := hmac.New(sha512.New, key)
	if _, err = mac.Write(data); err != nil {
		return nil, nil, err
	}
	sum := mac.Sum(nil)
	return sum[:32], sum[32:], nil
}
