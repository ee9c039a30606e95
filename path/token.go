// Package path parses and validates the path-token strings described in
// §6 item 2: "bip39:<mnemonic>", "bip32:<n>", and "bip32:<n>'".
package path

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ModChain/hdkey/hderr"
)

const hardenedBit = uint32(1) << 31

// Kind distinguishes the two token shapes a Path can contain.
type Kind string

const (
	KindMnemonic Kind = "bip39"
	KindIndex    Kind = "bip32"
)

// Token is one segment of a derivation path.
type Token struct {
	Kind     Kind
	Mnemonic string // set when Kind == KindMnemonic
	Index    uint32 // set when Kind == KindIndex; raw index, no hardened bit
	Hardened bool   // set when Kind == KindIndex
}

// ActualIndex returns the on-the-wire BIP-32 index: Index, or Index +
// 2^31 when hardened.
func (t Token) ActualIndex() uint32 {
	if t.Hardened {
		return t.Index + hardenedBit
	}
	return t.Index
}

var (
	// 12-24 lowercase alphabetic words, single-space separated.
	mnemonicRe = regexp.MustCompile(`^[a-z]+(?: [a-z]+){11,23}$`)
	// non-negative decimal integer, no leading zeros (except "0" itself),
	// optionally hardened with a trailing apostrophe.
	bip32Re = regexp.MustCompile(`^(0|[1-9][0-9]*)(')?$`)
)

// ParseToken parses a single "bip39:..." or "bip32:..." token string.
func ParseToken(s string) (Token, error) {
	switch {
	case strings.HasPrefix(s, "bip39:"):
		words := strings.TrimPrefix(s, "bip39:")
		if !mnemonicRe.MatchString(words) {
			return Token{}, hderr.New(hderr.InvalidMnemonic, "mnemonic token must be 12-24 lowercase words")
		}
		return Token{Kind: KindMnemonic, Mnemonic: words}, nil
	case strings.HasPrefix(s, "bip32:"):
		rest := strings.TrimPrefix(s, "bip32:")
		m := bip32Re.FindStringSubmatch(rest)
		if m == nil {
			return Token{}, hderr.New(hderr.InvalidBIP32Index, "bip32 token must be a decimal index, optionally hardened with '")
		}
		n, err := strconv.ParseUint(m[1], 10, 32)
		if err != nil {
			return Token{}, hderr.Wrap(hderr.InvalidBIP32Index, "index out of uint32 range", err)
		}
		hardened := m[2] == "'"
		if !hardened && n >= uint64(hardenedBit) {
			return Token{}, hderr.New(hderr.InvalidBIP32Index, "unhardened index must be < 2^31")
		}
		return Token{Kind: KindIndex, Index: uint32(n), Hardened: hardened}, nil
	default:
		return Token{}, hderr.New(hderr.InvalidBIP44Path, "token must start with bip39: or bip32:")
	}
}

// String renders a Token back to its canonical string form.
func (t Token) String() string {
	if t.Kind == KindMnemonic {
		return "bip39:" + t.Mnemonic
	}
	s := "bip32:" + strconv.FormatUint(uint64(t.Index), 10)
	if t.Hardened {
		s += "'"
	}
	return s
}
