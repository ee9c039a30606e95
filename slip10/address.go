package slip10

import (
	"github.com/ModChain/hdkey/codec"
	"github.com/ModChain/hdkey/curve"
	"github.com/ModChain/hdkey/hderr"
	"golang.org/x/crypto/sha3"
)

// EthereumAddress returns the lowercase-hex, 0x-prefixed, 20-byte Ethereum
// address for this node: the last 20 bytes of Keccak-256 of the
// uncompressed public key with its 0x04 prefix stripped, per §4.5. Only
// defined for secp256k1, adapted from not-for-prod-crypto's TRON address
// recipe (tron.go) with the TRON-specific prefix byte and Base58Check
// checksum framing dropped in favor of Ethereum's bare hex framing.
func (n *Node) EthereumAddress() (string, error) {
	if n.curveImpl.Name() != curve.Secp256k1 {
		return "", hderr.New(hderr.UnsupportedCurveOperation, "ethereum addresses are only defined for secp256k1")
	}
	if len(n.publicKey) != 65 || n.publicKey[0] != 0x04 {
		return "", hderr.New(hderr.InvalidPublicKey, "expected an uncompressed secp256k1 public key")
	}

	hash := sha3.NewLegacyKeccak256()
	hash.Write(n.publicKey[1:])
	digest := hash.Sum(nil)

	return "0x" + codec.EncodeHex(digest[len(digest)-20:]), nil
}
