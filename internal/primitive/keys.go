package primitive

import (
	"crypto"
	"crypto/dsa" //nolint:staticcheck // required to exercise DSA test vectors
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"fmt"
	"strings"

	"github.com/cloudflare/circl/sign/ed448"
)

// KeyFactory turns encoded key material into the key type a primitive
// expects: SubjectPublicKeyInfo for public keys, PKCS#8 for private keys.
type KeyFactory struct {
	alg string
}

// ForAlgorithm returns the key factory for a signature algorithm name.
// ECDSA resolves to the generic EC factory: key encodings name the curve,
// not the signature scheme, so the factory namespace differs from the
// signature-algorithm namespace.
func ForAlgorithm(name string) (*KeyFactory, error) {
	switch strings.ToUpper(name) {
	case "EC", "ECDSA":
		return &KeyFactory{alg: "EC"}, nil
	case "RSA":
		return &KeyFactory{alg: "RSA"}, nil
	case "DSA":
		return &KeyFactory{alg: "DSA"}, nil
	case "EDDSA", "ED25519", "ED448":
		return &KeyFactory{alg: "EDDSA"}, nil
	}
	return nil, fmt.Errorf("no key factory for %q: %w", name, ErrUnsupportedAlgorithm)
}

// Algorithm returns the factory's key-algorithm name.
func (f *KeyFactory) Algorithm() string { return f.alg }

var oidEd448 = asn1.ObjectIdentifier{1, 3, 101, 113}

type subjectPublicKeyInfo struct {
	Algorithm pkix.AlgorithmIdentifier
	PublicKey asn1.BitString
}

type pkcs8 struct {
	Version    int
	Algo       pkix.AlgorithmIdentifier
	PrivateKey []byte
}

// PublicKey parses a SubjectPublicKeyInfo encoding. Unsupported parameter
// sets (e.g. curves the platform does not implement) wrap ErrUnsupportedKey
// so callers can treat them as a skip rather than a failure.
func (f *KeyFactory) PublicKey(der []byte) (crypto.PublicKey, error) {
	pub, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		if f.alg == "EDDSA" {
			if key, e448 := parseEd448PublicKey(der); e448 == nil {
				return key, nil
			}
		}
		return nil, fmt.Errorf("%v: %w", err, ErrUnsupportedKey)
	}
	if err := f.checkPublicKeyType(pub); err != nil {
		return nil, err
	}
	return pub, nil
}

// PrivateKey parses a PKCS#8 encoding.
func (f *KeyFactory) PrivateKey(der []byte) (crypto.PrivateKey, error) {
	priv, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		if f.alg == "EDDSA" {
			if key, e448 := parseEd448PrivateKey(der); e448 == nil {
				return key, nil
			}
		}
		return nil, fmt.Errorf("%v: %w", err, ErrUnsupportedKey)
	}
	if err := f.checkPrivateKeyType(priv); err != nil {
		return nil, err
	}
	return priv, nil
}

func (f *KeyFactory) checkPublicKeyType(pub crypto.PublicKey) error {
	ok := false
	switch pub.(type) {
	case *ecdsa.PublicKey:
		ok = f.alg == "EC"
	case *rsa.PublicKey:
		ok = f.alg == "RSA"
	case *dsa.PublicKey:
		ok = f.alg == "DSA"
	case ed25519.PublicKey:
		ok = f.alg == "EDDSA"
	}
	if !ok {
		return fmt.Errorf("%T is not a %s public key: %w", pub, f.alg, ErrUnsupportedKey)
	}
	return nil
}

func (f *KeyFactory) checkPrivateKeyType(priv crypto.PrivateKey) error {
	ok := false
	switch priv.(type) {
	case *ecdsa.PrivateKey:
		ok = f.alg == "EC"
	case *rsa.PrivateKey:
		ok = f.alg == "RSA"
	case ed25519.PrivateKey:
		ok = f.alg == "EDDSA"
	}
	if !ok {
		return fmt.Errorf("%T is not a %s private key: %w", priv, f.alg, ErrUnsupportedKey)
	}
	return nil
}

// parseEd448PublicKey handles the Ed448 SPKI form (OID 1.3.101.113), which
// crypto/x509 does not implement.
func parseEd448PublicKey(der []byte) (ed448.PublicKey, error) {
	var spki subjectPublicKeyInfo
	rest, err := asn1.Unmarshal(der, &spki)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrUnsupportedKey)
	}
	if len(rest) != 0 || !spki.Algorithm.Algorithm.Equal(oidEd448) {
		return nil, fmt.Errorf("not an Ed448 key: %w", ErrUnsupportedKey)
	}
	key := spki.PublicKey.RightAlign()
	if len(key) != ed448.PublicKeySize {
		return nil, fmt.Errorf("bad Ed448 key size %d: %w", len(key), ErrUnsupportedKey)
	}
	return ed448.PublicKey(key), nil
}

// parseEd448PrivateKey handles the Ed448 PKCS#8 form, whose key material is
// an OCTET STRING wrapping the seed.
func parseEd448PrivateKey(der []byte) (ed448.PrivateKey, error) {
	var p8 pkcs8
	rest, err := asn1.Unmarshal(der, &p8)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrUnsupportedKey)
	}
	if len(rest) != 0 || !p8.Algo.Algorithm.Equal(oidEd448) {
		return nil, fmt.Errorf("not an Ed448 key: %w", ErrUnsupportedKey)
	}
	var seed []byte
	if _, err := asn1.Unmarshal(p8.PrivateKey, &seed); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrUnsupportedKey)
	}
	if len(seed) != ed448.SeedSize {
		return nil, fmt.Errorf("bad Ed448 seed size %d: %w", len(seed), ErrUnsupportedKey)
	}
	return ed448.NewKeyFromSeed(seed), nil
}
