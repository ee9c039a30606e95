// Package secret wraps byte buffers that must never be copied into log
// lines or error messages and should be wiped once no longer needed,
// per §5 and the "secret handling" design note in §9.
package secret

// Bytes holds secret material (a private key or chain code derivation
// input). Its zero value is not usable; construct with New.
type Bytes struct {
	b []byte
}

// New copies b into a new Bytes, owning its own backing array so the
// caller's slice can be wiped independently.
func New(b []byte) *Bytes {
	cp := make([]byte, len(b))
	copy(cp, b)
	return &Bytes{b: cp}
}

// Bytes returns a copy of the wrapped secret. Callers must not retain it
// longer than necessary.
func (s *Bytes) Bytes() []byte {
	if s == nil {
		return nil
	}
	out := make([]byte, len(s.b))
	copy(out, s.b)
	return out
}

// Wipe overwrites the wrapped buffer with zeroes. After Wipe, Bytes
// returns a zeroed slice of the original length.
func (s *Bytes) Wipe() {
	if s == nil {
		return
	}
	for i := range s.b {
		s.b[i] = 0
	}
}

// String never reveals the wrapped material, matching the "format as
// redacted" design note in §9.
func (s *Bytes) String() string {
	return "...redacted..."
}

// GoString satisfies fmt's %#v verb with the same redaction as String.
func (s *Bytes) GoString() string {
	return "secret.Bytes{...redacted...}"
}
