// Package bip44 implements the typed BIP-44 node wrappers (§4.6): thin
// shape-enforcing layers over slip10.Node restricting depth to [0,5] and
// validating each path segment against the table in §3.
package bip44

import (
	"github.com/ModChain/hdkey/curve"
	"github.com/ModChain/hdkey/hderr"
	"github.com/ModChain/hdkey/path"
	"github.com/ModChain/hdkey/slip10"
)

const purpose uint32 = 44

// Node wraps a slip10.Node, asserting curve == secp256k1 and depth in
// [0,5].
type Node struct {
	*slip10.Node
}

// New wraps a depth-0 secp256k1 slip10.Node as the root of a BIP-44 tree.
func New(root *slip10.Node) (*Node, error) {
	if root.Curve() != curve.Secp256k1 {
		return nil, hderr.New(hderr.InvalidBIP44Path, "BIP-44 requires the secp256k1 curve")
	}
	if root.Depth() != 0 {
		return nil, hderr.New(hderr.InvalidBIP44Depth, "BIP-44 root must be at depth 0")
	}
	return &Node{Node: root}, nil
}

// validateSegment checks (index, hardened) against the shape table in §3
// for the node being constructed at depth `depth`.
func validateSegment(depth uint8, index uint32, hardened bool) error {
	switch depth {
	case 1:
		if index != purpose || !hardened {
			return hderr.New(hderr.InvalidBIP44Path, "depth 1 must be the hardened literal 44'")
		}
	case 2, 3:
		if !hardened {
			return hderr.New(hderr.InvalidBIP44Path, "coin_type and account must be hardened")
		}
	case 4:
		if hardened {
			return hderr.New(hderr.InvalidBIP44Path, "change must not be hardened")
		}
	case 5:
		// address_index may be either hardened or unhardened.
	default:
		return hderr.New(hderr.InvalidBIP44Depth, "BIP-44 paths are at most 5 levels deep")
	}
	return nil
}

// Derive applies a partial path of bip32: tokens, validating each new
// segment against the shape table and failing with leaf-node-already if
// the node is already at depth 5.
func (n *Node) Derive(p path.Path) (*Node, error) {
	if err := p.ValidatePartial(); err != nil {
		return nil, err
	}
	cur := n
	for _, tok := range p {
		if cur.Depth() >= 5 {
			return nil, hderr.New(hderr.LeafNodeAlready, "cannot derive past depth 5 in a BIP-44 tree")
		}
		nextDepth := cur.Depth() + 1
		if err := validateSegment(nextDepth, tok.Index, tok.Hardened); err != nil {
			return nil, err
		}
		child, err := cur.Node.DeriveOne(tok.Index, tok.Hardened)
		if err != nil {
			return nil, err
		}
		cur = &Node{Node: child}
	}
	return cur, nil
}

// DeriveOne derives a single BIP-44 segment.
func (n *Node) DeriveOne(index uint32, hardened bool) (*Node, error) {
	return n.Derive(path.Path{{Kind: path.KindIndex, Index: index, Hardened: hardened}})
}
