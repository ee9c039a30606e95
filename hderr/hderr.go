// Package hderr defines the typed error taxonomy shared by every package in
// this module. Every validation failure raised at an API boundary is an
// *Error carrying one Kind from this list; internal helpers propagate it
// unchanged via %w so callers can match a Kind with hderr.Is or extract the
// *Error with errors.As.
package hderr

import "fmt"

// Kind identifies the category of a derivation/codec failure. Kinds are
// stable across releases; new ones may be added but existing ones are never
// renumbered since callers match on the string value.
type Kind string

const (
	InvalidMnemonic           Kind = "invalid-mnemonic"
	InvalidSeedLength         Kind = "invalid-seed-length"
	InvalidScalar             Kind = "invalid-scalar"
	InvalidTweak              Kind = "invalid-tweak"
	InvalidDerivedKey         Kind = "invalid-derived-key"
	InvalidChainCode          Kind = "invalid-chain-code"
	InvalidPublicKey          Kind = "invalid-public-key"
	InvalidExtendedKey        Kind = "invalid-extended-key"
	InvalidBase58             Kind = "invalid-base58"
	InvalidChecksum           Kind = "invalid-checksum"
	InvalidBIP32Index         Kind = "invalid-bip32-index"
	InvalidBIP44Depth         Kind = "invalid-bip44-depth"
	InvalidBIP44Path          Kind = "invalid-bip44-path"
	HardenedRequiresPrivate   Kind = "hardened-requires-private"
	LeafNodeAlready           Kind = "leaf-node-already"
	UnsupportedCurveOperation Kind = "unsupported-curve-operation"
	InvalidSpecification      Kind = "invalid-specification"
	DerivationExhausted       Kind = "derivation-exhausted"
)

// Error is the concrete type returned by every exported constructor, derive,
// decode, and parse function in this module, except that slip10.FromMnemonic
// returns ctx.Err() unchanged when its context is done. Msg never contains secret
// material (mnemonics, seeds, private keys, chain codes) — only the shape of
// the failure.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an *Error with no wrapped cause.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap builds an *Error that wraps a lower-level cause (e.g. a base58 or hex
// decode failure), keeping the original error reachable via errors.Unwrap.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// Is reports whether err is an *Error of the given kind, so callers can
// write `if hderr.Is(err, hderr.InvalidMnemonic)` instead of type-asserting.
func Is(err error, kind Kind) bool {
	var e *Error
	for err != nil {
		if ce, ok := err.(*Error); ok {
			e = ce
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return e != nil && e.Kind == kind
}
