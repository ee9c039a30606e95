package bip44

import (
	"strconv"

	"github.com/ModChain/hdkey/hderr"
	"github.com/ModChain/hdkey/path"
	"github.com/ModChain/hdkey/slip10"
)

// Well-known SLIP-44 coin types exercised by this module's tests and CLI,
// generalized from not-for-prod-crypto's single-constant cointype package
// (which only carried Tron = 159) into the small set this module's
// scenarios need.
const (
	CoinTypeBitcoin  uint32 = 0
	CoinTypeTestnet  uint32 = 1
	CoinTypeEthereum uint32 = 60
)

const cointypeHardenedBit = uint32(1) << 31

// CoinTypeNode is a Node pinned to depth 2 (m/44'/coin_type') with a
// cached coin type, per §4.6.
type CoinTypeNode struct {
	*Node
	coinType uint32
}

// NewCoinTypeNode derives m/44'/coinType' from a depth-0 secp256k1 root.
func NewCoinTypeNode(root *slip10.Node, coinType uint32) (*CoinTypeNode, error) {
	node, err := New(root)
	if err != nil {
		return nil, err
	}
	node, err = node.DeriveOne(purpose, true)
	if err != nil {
		return nil, err
	}
	node, err = node.DeriveOne(coinType, true)
	if err != nil {
		return nil, err
	}
	return &CoinTypeNode{Node: node, coinType: coinType}, nil
}

// WrapCoinTypeNode adapts an already-derived depth-2 Node into a
// CoinTypeNode, caching the coin type parsed from its index.
func WrapCoinTypeNode(node *Node) (*CoinTypeNode, error) {
	if node.Depth() != 2 {
		return nil, hderr.New(hderr.InvalidBIP44Depth, "coin type node must be at depth 2")
	}
	coinType := node.Index()
	if node.IsHardened() {
		coinType -= cointypeHardenedBit
	}
	return &CoinTypeNode{Node: node, coinType: coinType}, nil
}

// CoinType returns the cached coin_type value (without the hardened bit).
func (c *CoinTypeNode) CoinType() uint32 { return c.coinType }

// AddressKeyParams selects the account/change/address_index suffix
// appended by DeriveAddressKey, per §4.6.
type AddressKeyParams struct {
	Account      uint32
	Change       uint32
	AddressIndex uint32
	Hardened     bool // applies to AddressIndex only; account/change are always hardened/unhardened respectively
}

// DeriveAddressKey appends account'/change/address_index['] to a coin
// type node, per §4.6.
func (c *CoinTypeNode) DeriveAddressKey(p AddressKeyParams) (*Node, error) {
	return c.Node.Derive(path.Path{
		{Kind: path.KindIndex, Index: p.Account, Hardened: true},
		{Kind: path.KindIndex, Index: p.Change, Hardened: false},
		{Kind: path.KindIndex, Index: p.AddressIndex, Hardened: p.Hardened},
	})
}

// AddressKeyDeriver is the closure returned by GetAddressKeyDeriver: it
// only needs an address_index, having memoised the account/change prefix.
type AddressKeyDeriver struct {
	prefix   *Node
	pathBase string
}

// PathString returns the human-readable m/44'/.../change path this
// deriver is rooted at.
func (d *AddressKeyDeriver) PathString() string { return d.pathBase }

// Derive appends address_index['] and returns the resulting address key.
func (d *AddressKeyDeriver) Derive(addressIndex uint32, hardened bool) (*Node, error) {
	return d.prefix.DeriveOne(addressIndex, hardened)
}

// GetAddressKeyDeriver derives and memoises the account'/change prefix
// once, returning a closure-like AddressKeyDeriver that only needs an
// address_index per call, per §4.6.
func GetAddressKeyDeriver(c *CoinTypeNode, account, change uint32) (*AddressKeyDeriver, error) {
	withAccount, err := c.Node.DeriveOne(account, true)
	if err != nil {
		return nil, err
	}
	withChange, err := withAccount.DeriveOne(change, false)
	if err != nil {
		return nil, err
	}
	return &AddressKeyDeriver{
		prefix:   withChange,
		pathBase: pathString(c.coinType, account, change),
	}, nil
}

func pathString(coinType, account, change uint32) string {
	return "m/" + strconv.FormatUint(uint64(purpose), 10) + "'" +
		"/" + strconv.FormatUint(uint64(coinType), 10) + "'" +
		"/" + strconv.FormatUint(uint64(account), 10) + "'" +
		"/" + strconv.FormatUint(uint64(change), 10)
}
