package slip10

import (
	"encoding/json"

	"github.com/ModChain/hdkey/codec"
	"github.com/ModChain/hdkey/xkey"
)

// NodeJSON is the JSON-compatible plain record described in §6 item 4:
// every byte field as unprefixed lowercase hex, fingerprints as
// non-negative integers, network as "mainnet"/"testnet".
type NodeJSON struct {
	Depth             uint8        `json:"depth"`
	MasterFingerprint *uint32      `json:"masterFingerprint,omitempty"`
	ParentFingerprint uint32       `json:"parentFingerprint"`
	Index             uint32       `json:"index"`
	Network           xkey.Network `json:"network,omitempty"`
	PrivateKey        *string      `json:"privateKey,omitempty"`
	PublicKey         string       `json:"publicKey"`
	ChainCode         string       `json:"chainCode"`
}

// ToJSON renders n as a NodeJSON record under the given network label.
func (n *Node) ToJSON(network xkey.Network) (*NodeJSON, error) {
	rec := &NodeJSON{
		Depth:             n.depth,
		ParentFingerprint: n.parentFingerprint,
		Index:             n.index,
		Network:           network,
		PublicKey:         codec.EncodeHex(n.publicKey),
		ChainCode:         n.ChainCodeHex(),
	}
	if n.hasMaster {
		mfp := n.masterFingerprint
		rec.MasterFingerprint = &mfp
	}
	if n.privateKey != nil {
		hex := codec.EncodeHex(n.privateKey.Bytes())
		rec.PrivateKey = &hex
	}
	return rec, nil
}

// MarshalJSON implements json.Marshaler, defaulting to mainnet.
func (n *Node) MarshalJSON() ([]byte, error) {
	rec, err := n.ToJSON(xkey.Mainnet)
	if err != nil {
		return nil, err
	}
	return json.Marshal(rec)
}

