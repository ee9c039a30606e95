// Package xkey implements the 78-byte extended-key binary codec (§4.3):
// version discrimination, field layout, and Base58Check framing. It knows
// nothing about derivation — that lives in package slip10 — only about
// encoding and decoding a fixed-shape record.
package xkey

import "github.com/ModChain/hdkey/curve"

// Version is one of the four BIP-32 magic prefixes in §4.3, generalized
// from the teacher's ecckd.KeyVersion (which only carried the two Bitcoin
// mainnet magics) to the full mainnet/testnet x public/private table.
type Version [4]byte

// Network identifies which chain a Version belongs to.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

var (
	MainnetPublic  = Version{0x04, 0x88, 0xb2, 0x1e}
	MainnetPrivate = Version{0x04, 0x88, 0xad, 0xe4}
	TestnetPublic  = Version{0x04, 0x35, 0x87, 0xcf}
	TestnetPrivate = Version{0x04, 0x35, 0x83, 0x94}
)

// IsPrivate reports whether the version marks a private (xprv-family) key.
func (v Version) IsPrivate() bool {
	switch v {
	case MainnetPrivate, TestnetPrivate:
		return true
	}
	return false
}

// ToPublic returns the public-key counterpart version for the same
// network, or v unchanged if it is already public or unrecognized.
func (v Version) ToPublic() Version {
	switch v {
	case MainnetPrivate:
		return MainnetPublic
	case TestnetPrivate:
		return TestnetPublic
	}
	return v
}

// Network reports which chain the version belongs to.
func (v Version) Network() Network {
	switch v {
	case TestnetPublic, TestnetPrivate:
		return Testnet
	default:
		return Mainnet
	}
}

// VersionFor returns the version magic for the given network, privacy, and
// curve. The curve argument is ignored: every curve gets the same magics.
// Only secp256k1 has a standardized xprv/xpub encoding, and
// slip10.Node.ExtendedKey refuses to serialize nodes on any other curve.
func VersionFor(network Network, private bool, _ curve.Name) Version {
	switch {
	case network == Testnet && private:
		return TestnetPrivate
	case network == Testnet && !private:
		return TestnetPublic
	case private:
		return MainnetPrivate
	default:
		return MainnetPublic
	}
}
