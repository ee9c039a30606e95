package path

import (
	"strings"

	"github.com/ModChain/hdkey/hderr"
)

// Path is an ordered sequence of tokens, per §3 "structured derivation-path
// tuple". A rooted path begins with a bip39 token; a partial path contains
// only bip32 tokens.
type Path []Token

// Parse splits a "/"-separated path string (e.g.
// "bip39:...words.../bip32:44'/bip32:60'") into a Path.
func Parse(s string) (Path, error) {
	parts := strings.Split(s, "/")
	out := make(Path, 0, len(parts))
	for _, p := range parts {
		tok, err := ParseToken(p)
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
	}
	return out, nil
}

// IsRooted reports whether the path begins with a bip39 mnemonic token.
func (p Path) IsRooted() bool {
	return len(p) > 0 && p[0].Kind == KindMnemonic
}

// IsPartial reports whether the path consists solely of bip32 index
// tokens (no mnemonic).
func (p Path) IsPartial() bool {
	for _, t := range p {
		if t.Kind != KindIndex {
			return false
		}
	}
	return true
}

// ValidatePartial fails with hderr.InvalidBIP44Path unless every token is a
// bip32 index token, i.e. this path can be applied to an existing node via
// Derive rather than used to construct a root.
func (p Path) ValidatePartial() error {
	if !p.IsPartial() {
		return hderr.New(hderr.InvalidBIP44Path, "partial derivation path must contain only bip32: tokens")
	}
	return nil
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, t := range p {
		parts[i] = t.String()
	}
	return strings.Join(parts, "/")
}
