package primitive

import (
	"crypto"
	"crypto/rsa"
	"errors"
	"fmt"
	"hash"
)

// rsaPrimitive implements RSASSA-PKCS1 v1.5 over a streamed message. The
// scheme is deterministic, so signing is supported and produced signatures
// can be compared byte for byte against expected values.
type rsaPrimitive struct {
	name   string
	digest crypto.Hash
	h      hash.Hash
	pub    *rsa.PublicKey
	priv   *rsa.PrivateKey
}

func newRSA(name, digest string) (Primitive, error) {
	h, err := digestByName(digest)
	if err != nil {
		return nil, err
	}
	return &rsaPrimitive{name: name, digest: h}, nil
}

func (p *rsaPrimitive) Name() string { return p.name }

func (p *rsaPrimitive) InitVerify(pub crypto.PublicKey) error {
	key, ok := pub.(*rsa.PublicKey)
	if !ok {
		return fmt.Errorf("%s: got %T: %w", p.name, pub, ErrInvalidKey)
	}
	p.pub = key
	p.priv = nil
	p.h = p.digest.New()
	return nil
}

func (p *rsaPrimitive) InitSign(priv crypto.PrivateKey) error {
	key, ok := priv.(*rsa.PrivateKey)
	if !ok {
		return fmt.Errorf("%s: got %T: %w", p.name, priv, ErrInvalidKey)
	}
	p.priv = key
	p.pub = nil
	p.h = p.digest.New()
	return nil
}

func (p *rsaPrimitive) Update(b []byte) {
	if p.h != nil {
		p.h.Write(b)
	}
}

func (p *rsaPrimitive) Verify(sig []byte) (bool, error) {
	if p.pub == nil || p.h == nil {
		return false, fmt.Errorf("%s: %w", p.name, ErrNotInitialized)
	}
	err := rsa.VerifyPKCS1v15(p.pub, p.digest, p.h.Sum(nil), sig)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, rsa.ErrVerification) {
		// PKCS1 v1.5 verification folds malformed and mismatching
		// signatures into the same rejection.
		return false, nil
	}
	return false, fmt.Errorf("%s: %w", p.name, err)
}

func (p *rsaPrimitive) Sign() ([]byte, error) {
	if p.priv == nil || p.h == nil {
		return nil, fmt.Errorf("%s: %w", p.name, ErrNotInitialized)
	}
	// PKCS1 v1.5 signing is deterministic; the random source is unused.
	sig, err := rsa.SignPKCS1v15(nil, p.priv, p.digest, p.h.Sum(nil))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.name, err)
	}
	return sig, nil
}
