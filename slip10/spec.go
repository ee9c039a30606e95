package slip10

import "github.com/ModChain/hdkey/hderr"

// Specification selects which invalid-intermediate-key retry rule the
// derivation engine uses (§4.4): BIP-32's index-advance, or SLIP-10's
// re-HMAC. Ed25519 requires SLIP10, since BIP-32 is only defined for
// secp256k1.
type Specification string

const (
	BIP32  Specification = "bip32"
	SLIP10 Specification = "slip10"
)

func (s Specification) validate() error {
	switch s {
	case BIP32, SLIP10:
		return nil
	default:
		return hderr.New(hderr.InvalidSpecification, "specification must be bip32 or slip10")
	}
}
