package codec

import (
	"crypto/sha256"
	"encoding/binary"

	"golang.org/x/crypto/ripemd160"
)

// Fingerprint returns the first 4 bytes of RIPEMD-160(SHA-256(compressed
// public key)), interpreted big-endian, per §4.2. Adapted from the
// teacher's ecckd/utils.go:rmd160sha256.
func Fingerprint(compressedPublicKey []byte) uint32 {
	sum := sha256.Sum256(compressedPublicKey)
	rmd := ripemd160.New()
	rmd.Write(sum[:])
	digest := rmd.Sum(nil)
	return binary.BigEndian.Uint32(digest[:4])
}
