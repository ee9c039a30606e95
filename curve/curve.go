// Package curve provides a uniform capability interface over the elliptic
// curves this module derives keys on. It never branches on strings outside
// of the Name type; callers select behavior through the Curve interface,
// the way github.com/bnb-chain/tss-lib's tss package dispatches through a
// CurveName-keyed registry instead of type switches.
package curve

import (
	"math/big"
	"sync"

	"github.com/ModChain/hdkey/hderr"
)

// Name tags the two curve families this module supports. It is a closed set:
// new curves are added by registering an implementation under a new Name,
// never by branching on an open string elsewhere in the engine.
type Name string

const (
	Secp256k1 Name = "secp256k1"
	Ed25519   Name = "ed25519"
)

// Curve is the capability surface the derivation engine and node model
// depend on. Every method is a pure function of its inputs.
type Curve interface {
	Name() Name

	// PublicKeyLength is the length in bytes of an uncompressed public key.
	PublicKeyLength() int
	// CompressedPublicKeyLength is the length in bytes of a compressed
	// public key.
	CompressedPublicKeyLength() int
	// OrderN is the curve order n.
	OrderN() *big.Int
	// SupportsUnhardenedDerivation reports whether this curve permits
	// deriving unhardened (public-only) children. False for ed25519.
	SupportsUnhardenedDerivation() bool

	// IsValidScalar reports whether b is a valid private scalar: 0 < k < n.
	IsValidScalar(b []byte) bool

	// ScalarToPublicKey computes the public key for a private scalar.
	// compressed selects the compressed or uncompressed encoding.
	ScalarToPublicKey(scalar []byte, compressed bool) ([]byte, error)

	// PublicKeyAdd adds two uncompressed points and returns the
	// uncompressed sum. Returns hderr.InvalidDerivedKey if the result is
	// the point at infinity.
	PublicKeyAdd(a, b []byte) ([]byte, error)

	// Compress converts an uncompressed public key to compressed form.
	Compress(uncompressed []byte) ([]byte, error)
	// Decompress converts a compressed public key to uncompressed form.
	Decompress(compressed []byte) ([]byte, error)

	// PrivateAdd computes (scalar + tweak) mod n. tweak must be 32 bytes
	// and non-zero; fails with InvalidTweak if tweak >= n, or
	// InvalidDerivedKey if the sum is zero or >= n.
	PrivateAdd(scalar, tweak []byte) ([]byte, error)

	// CombineChildPrivateKey folds the HMAC left-half IL into the parent
	// private key to produce the child private key, per the
	// specification-specific rule in §4.4 step 4: secp256k1 adds mod n
	// (and can fail); ed25519 has no such rule and the child key is IL
	// unchanged (and cannot fail).
	CombineChildPrivateKey(parentKey, il []byte) ([]byte, error)
}

// Registry resolves a Name to its Curve implementation. The zero value is
// ready to use; mutation is safe for concurrent use once the package-level
// curves have been registered at init time (see secp256k1.go/ed25519.go),
// mirroring tss.RegisterCurve/GetCurveByName.
type Registry struct {
	mu    sync.RWMutex
	byKey map[Name]Curve
}

func (r *Registry) Register(name Name, c Curve) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byKey == nil {
		r.byKey = make(map[Name]Curve)
	}
	r.byKey[name] = c
}

func (r *Registry) Get(name Name) (Curve, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byKey[name]
	if !ok {
		return nil, hderr.New(hderr.InvalidSpecification, "unknown curve: "+string(name))
	}
	return c, nil
}

// Default is the process-wide registry pre-populated with Secp256k1 and
// Ed25519. Tests and callers may build their own Registry instead.
var Default = &Registry{}

func init() {
	Default.Register(Secp256k1, secp256k1Curve{})
	Default.Register(Ed25519, ed25519Curve{})
}

// Get resolves name against the Default registry.
func Get(name Name) (Curve, error) {
	return Default.Get(name)
}
