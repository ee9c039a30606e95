package xkey

import (
	"encoding/binary"

	"github.com/ModChain/hdkey/codec"
	"github.com/ModChain/hdkey/hderr"
)

const serializedKeyLen = 78 // version(4) depth(1) parentFP(4) childNum(4) chainCode(32) keyData(33)

// ExtendedKey is the 78-byte xprv/xpub record described in §4.3. Unlike the
// teacher's ecckd.ExtendedKey, it does not derive children itself — it is a
// pure codec type; derivation lives in package slip10 and is generalized
// over curve and specification.
type ExtendedKey struct {
	Version           Version
	Depth             uint8
	ParentFingerprint uint32
	ChildNumber       uint32
	ChainCode         [32]byte
	// KeyData is the 33-byte payload: 0x00||privateKey for private keys,
	// or the compressed public key for public keys.
	KeyData [33]byte
}

// IsPrivate reports whether KeyData encodes a private key.
func (k *ExtendedKey) IsPrivate() bool {
	return k.Version.IsPrivate()
}

// PrivateKey returns the 32-byte scalar (KeyData[1:]). It does not check
// the version: for a public-only key it returns the last 32 bytes of the
// compressed public key. Callers should check IsPrivate first.
func (k *ExtendedKey) PrivateKey() []byte {
	out := make([]byte, 32)
	copy(out, k.KeyData[1:])
	return out
}

// CompressedPublicKey returns the 33-byte compressed public key payload.
// For a private extended key this is only meaningful after the caller has
// derived the public key separately; ExtendedKey itself does not compute
// it (that requires curve math, which lives in package slip10/curve).
func (k *ExtendedKey) CompressedPublicKey() []byte {
	out := make([]byte, 33)
	copy(out, k.KeyData[:])
	return out
}

// MarshalBinary encodes the 78-byte payload (no checksum), per §4.3.
func (k *ExtendedKey) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, serializedKeyLen)
	out = append(out, k.Version[:]...)
	out = append(out, k.Depth)
	var parentFP, childNum [4]byte
	binary.BigEndian.PutUint32(parentFP[:], k.ParentFingerprint)
	binary.BigEndian.PutUint32(childNum[:], k.ChildNumber)
	out = append(out, parentFP[:]...)
	out = append(out, childNum[:]...)
	out = append(out, k.ChainCode[:]...)
	out = append(out, k.KeyData[:]...)
	return out, nil
}

// UnmarshalBinary decodes a 78-byte payload (no checksum), validating
// field shape per §4.3: chain code must be 32 bytes non-zero, key payload
// must be 33 bytes non-zero, and the private/public flag byte must match
// the Version field.
func (k *ExtendedKey) UnmarshalBinary(data []byte) error {
	if len(data) != serializedKeyLen {
		return hderr.New(hderr.InvalidExtendedKey, "serialized extended key must be 78 bytes")
	}

	var version Version
	copy(version[:], data[0:4])
	depth := data[4]
	parentFP, err := codec.ParseU32BE(data[5:9])
	if err != nil {
		return hderr.Wrap(hderr.InvalidExtendedKey, "parent fingerprint", err)
	}
	childNum, err := codec.ParseU32BE(data[9:13])
	if err != nil {
		return hderr.Wrap(hderr.InvalidExtendedKey, "child number", err)
	}
	chainCode := data[13:45]
	keyData := data[45:78]

	if codec.IsAllZero(chainCode) {
		return hderr.New(hderr.InvalidChainCode, "chain code must not be all-zero")
	}
	if codec.IsAllZero(keyData) {
		return hderr.New(hderr.InvalidExtendedKey, "key payload must not be all-zero")
	}

	isPrivate := keyData[0] == 0x00
	if isPrivate != version.IsPrivate() {
		return hderr.New(hderr.InvalidExtendedKey, "private/public flag byte does not match version")
	}
	if !isPrivate && keyData[0] != 0x02 && keyData[0] != 0x03 {
		return hderr.New(hderr.InvalidExtendedKey, "public key payload must start with 0x02 or 0x03")
	}

	k.Version = version
	k.Depth = depth
	k.ParentFingerprint = parentFP
	k.ChildNumber = childNum
	copy(k.ChainCode[:], chainCode)
	copy(k.KeyData[:], keyData)
	return nil
}

// Encode Base58Check-encodes the extended key into its xprv/xpub string
// form.
func (k *ExtendedKey) Encode() (string, error) {
	payload, err := k.MarshalBinary()
	if err != nil {
		return "", err
	}
	return codec.Base58CheckEncode(payload), nil
}

// Decode parses a Base58Check-encoded xprv/xpub string.
func Decode(s string) (*ExtendedKey, error) {
	payload, err := codec.Base58CheckDecode(s)
	if err != nil {
		return nil, err
	}
	k := &ExtendedKey{}
	if err := k.UnmarshalBinary(payload); err != nil {
		return nil, err
	}
	return k, nil
}
