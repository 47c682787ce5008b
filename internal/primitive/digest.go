package primitive

import (
	"crypto"
	"fmt"

	// Registers the SHA-3 hash functions with crypto.RegisterHash.
	_ "golang.org/x/crypto/sha3"
)

// digests maps the digest names used in composed algorithm identifiers to
// hash functions. SHA-2 names appear hyphen-free here; SHA-3 names keep
// their hyphen because signature identifiers keep it too (e.g.
// "SHA3-256WITHECDSA").
var digests = map[string]crypto.Hash{
	"SHA1":     crypto.SHA1,
	"SHA224":   crypto.SHA224,
	"SHA256":   crypto.SHA256,
	"SHA384":   crypto.SHA384,
	"SHA512":   crypto.SHA512,
	"SHA3-224": crypto.SHA3_224,
	"SHA3-256": crypto.SHA3_256,
	"SHA3-384": crypto.SHA3_384,
	"SHA3-512": crypto.SHA3_512,
}

// digestByName returns the hash function for a digest name as it appears in
// a composed signature identifier.
func digestByName(name string) (crypto.Hash, error) {
	h, ok := digests[name]
	if !ok {
		return 0, fmt.Errorf("digest %q: %w", name, ErrUnsupportedAlgorithm)
	}
	if !h.Available() {
		return 0, fmt.Errorf("digest %q not linked into binary: %w", name, ErrUnsupportedAlgorithm)
	}
	return h, nil
}

// DigestNames returns the digest names usable in composed identifiers.
func DigestNames() []string {
	names := make([]string, 0, len(digests))
	for name := range digests {
		names = append(names, name)
	}
	return names
}
