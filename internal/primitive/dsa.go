package primitive

import (
	"crypto"
	"crypto/dsa" //nolint:staticcheck // required to exercise DSA test vectors
	"fmt"
	"hash"
	"math/big"
)

// dsaPrimitive implements DSA verification over a streamed message, with
// either ASN.1 or P1363 signature encoding. Signing is not provided: DSA is
// randomized, so there is no canonical signature to generate.
type dsaPrimitive struct {
	name     string
	digest   crypto.Hash
	encoding Encoding
	h        hash.Hash
	pub      *dsa.PublicKey
}

func newDSA(name, digest string, enc Encoding) (Primitive, error) {
	h, err := digestByName(digest)
	if err != nil {
		return nil, err
	}
	return &dsaPrimitive{name: name, digest: h, encoding: enc}, nil
}

func (p *dsaPrimitive) Name() string { return p.name }

func (p *dsaPrimitive) InitVerify(pub crypto.PublicKey) error {
	key, ok := pub.(*dsa.PublicKey)
	if !ok {
		return fmt.Errorf("%s: got %T: %w", p.name, pub, ErrInvalidKey)
	}
	p.pub = key
	p.h = p.digest.New()
	return nil
}

func (p *dsaPrimitive) InitSign(priv crypto.PrivateKey) error {
	return fmt.Errorf("%s: signing a randomized scheme: %w", p.name, ErrUnsupportedAlgorithm)
}

func (p *dsaPrimitive) Update(b []byte) {
	if p.h != nil {
		p.h.Write(b)
	}
}

func (p *dsaPrimitive) Verify(sig []byte) (bool, error) {
	if p.pub == nil || p.h == nil {
		return false, fmt.Errorf("%s: %w", p.name, ErrNotInitialized)
	}
	var r, s *big.Int
	var err error
	switch p.encoding {
	case EncodingP1363:
		r, s, err = splitP1363(sig, orderByteLen(p.pub.Q))
	default:
		r, s, err = parseASN1Signature(sig)
	}
	if err != nil {
		return false, err
	}
	return dsa.Verify(p.pub, p.h.Sum(nil), r, s), nil
}

func (p *dsaPrimitive) Sign() ([]byte, error) {
	return nil, fmt.Errorf("%s: %w", p.name, ErrNotInitialized)
}
