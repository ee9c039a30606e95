package codec

import (
	"bytes"
	"crypto/sha256"

	"github.com/ModChain/base58"
	"github.com/ModChain/hdkey/hderr"
)

// doubleSHA256 is the checksum hash BIP-32/Base58Check uses, adapted from
// the teacher's ecckd/utils.go:doubleSha256.
func doubleSHA256(in []byte) []byte {
	a := sha256.Sum256(in)
	a = sha256.Sum256(a[:])
	return a[:]
}

// Base58CheckEncode appends the first 4 bytes of SHA-256(SHA-256(payload))
// to payload and Base58-encodes the result, per §4.2.
func Base58CheckEncode(payload []byte) string {
	checksum := doubleSHA256(payload)[:4]
	full := make([]byte, 0, len(payload)+4)
	full = append(full, payload...)
	full = append(full, checksum...)
	return base58.Bitcoin.Encode(full)
}

// Base58CheckDecode reverses Base58CheckEncode, failing with
// hderr.InvalidBase58 on an alphabet mismatch and hderr.InvalidChecksum on
// a checksum mismatch.
func Base58CheckDecode(s string) ([]byte, error) {
	full, err := base58.Bitcoin.Decode(s)
	if err != nil {
		return nil, hderr.Wrap(hderr.InvalidBase58, "invalid base58 encoding", err)
	}
	if len(full) < 4 {
		return nil, hderr.New(hderr.InvalidChecksum, "encoded value too short to contain a checksum")
	}
	payload := full[:len(full)-4]
	checksum := full[len(full)-4:]
	expected := doubleSHA256(payload)[:4]
	if !bytes.Equal(checksum, expected) {
		return nil, hderr.New(hderr.InvalidChecksum, "checksum does not match payload")
	}
	return payload, nil
}
