// Package primitive provides the signature primitives driven by the
// conformance harness. A primitive is resolved by a composed algorithm name
// (e.g. "SHA256WITHECDSA"), initialized with a key, fed message bytes, and
// asked to verify or produce a signature. Classical algorithms are backed by
// the standard library; Ed448 comes from cloudflare/circl.
package primitive

import (
	"crypto"
	"fmt"
	"strings"
)

// Encoding selects how an ECDSA or DSA signature is serialized.
type Encoding int

const (
	// EncodingASN1 is the DER SEQUENCE of two INTEGERs, the native encoding.
	EncodingASN1 Encoding = iota

	// EncodingP1363 is the IEEE P1363 fixed-length concatenation of r and s.
	EncodingP1363
)

// Primitive is a single-use signature engine. It mirrors an init/update/
// final flow: call InitVerify or InitSign, stream the message through
// Update, then call Verify or Sign. A Primitive is owned by one caller and
// must not be shared.
type Primitive interface {
	// Name returns the composed algorithm name this primitive resolved as.
	Name() string

	// InitVerify prepares the primitive to verify with the given public key.
	// Returns ErrInvalidKey if the key type does not match the algorithm.
	InitVerify(pub crypto.PublicKey) error

	// InitSign prepares the primitive to sign with the given private key.
	InitSign(priv crypto.PrivateKey) error

	// Update streams message bytes into the primitive.
	Update(p []byte)

	// Verify checks the signature against the streamed message. A decoding
	// failure of the signature bytes returns (false, err) with err wrapping
	// ErrMalformedSignature; any other non-nil error is a defect in the
	// primitive or its use, not a property of the signature.
	Verify(sig []byte) (bool, error)

	// Sign produces a signature over the streamed message.
	Sign() ([]byte, error)
}

// builder constructs a fresh primitive for a registered name.
type builder func(name string) (Primitive, error)

var builders = map[string]builder{}

func register(name string, b builder) {
	builders[strings.ToUpper(name)] = b
}

// Resolve returns a fresh primitive for a composed algorithm name, or
// ErrUnsupportedAlgorithm if the name is not registered. Matching is
// case-insensitive. Each call returns a new instance; primitives carry
// per-use state and are never shared.
func Resolve(name string) (Primitive, error) {
	b, ok := builders[strings.ToUpper(name)]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnsupportedAlgorithm)
	}
	return b(strings.ToUpper(name))
}

// Supported reports whether a composed algorithm name resolves.
func Supported(name string) bool {
	_, ok := builders[strings.ToUpper(name)]
	return ok
}

func init() {
	for name := range digests {
		digest := name
		register(digest+"WITHECDSA", func(n string) (Primitive, error) {
			return newECDSA(n, digest, EncodingASN1)
		})
		// JDK-style name for the P1363 variant.
		register(digest+"WITHECDSAINP1363FORMAT", func(n string) (Primitive, error) {
			return newECDSA(n, digest, EncodingP1363)
		})
		register(digest+"WITHRSA", func(n string) (Primitive, error) {
			return newRSA(n, digest)
		})
		register(digest+"WITHDSA", func(n string) (Primitive, error) {
			return newDSA(n, digest, EncodingASN1)
		})
		// BouncyCastle-style name for the P1363 variant.
		register(digest+"WITHPLAIN-DSA", func(n string) (Primitive, error) {
			return newDSA(n, digest, EncodingP1363)
		})
	}

	// EdDSA defines its own hashing; the curve is picked by the key.
	for _, name := range []string{"EDDSA", "ED25519", "ED448"} {
		register(name, func(n string) (Primitive, error) {
			return newEdDSA(n), nil
		})
	}
}
