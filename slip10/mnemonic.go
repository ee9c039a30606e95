package slip10

import (
	"github.com/ModChain/hdkey/curve"
	"github.com/ModChain/hdkey/hderr"
	"github.com/tyler-smith/go-bip39"
)

// seedFromMnemonic validates mnemonic against the BIP-39 word list and
// checksum, then expands it to a 64-byte seed via PBKDF2-HMAC-SHA512 with
// 2048 iterations and salt "mnemonic"+passphrase — delegated entirely to
// go-bip39, the external collaborator §1 assumes is available.
func seedFromMnemonic(mnemonic, passphrase string) ([]byte, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, hderr.New(hderr.InvalidMnemonic, "mnemonic failed BIP-39 word list or checksum validation")
	}
	return bip39.NewSeed(mnemonic, passphrase), nil
}

// masterSecret returns the HMAC key used to derive the master node, per
// §4.5: "Bitcoin seed" for secp256k1, "ed25519 seed" for ed25519.
func masterSecret(c curve.Curve) []byte {
	if c.Name() == curve.Ed25519 {
		return []byte("ed25519 seed")
	}
	return []byte("Bitcoin seed")
}
