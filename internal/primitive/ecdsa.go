package primitive

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/rand"
	"fmt"
	"hash"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// ecdsaPrimitive implements ECDSA verification and signing over a streamed
// message, with either ASN.1 or P1363 signature encoding.
type ecdsaPrimitive struct {
	name     string
	digest   crypto.Hash
	encoding Encoding
	h        hash.Hash
	pub      *ecdsa.PublicKey
	priv     *ecdsa.PrivateKey
}

func newECDSA(name, digest string, enc Encoding) (Primitive, error) {
	h, err := digestByName(digest)
	if err != nil {
		return nil, err
	}
	return &ecdsaPrimitive{name: name, digest: h, encoding: enc}, nil
}

func (p *ecdsaPrimitive) Name() string { return p.name }

func (p *ecdsaPrimitive) InitVerify(pub crypto.PublicKey) error {
	key, ok := pub.(*ecdsa.PublicKey)
	if !ok {
		return fmt.Errorf("%s: got %T: %w", p.name, pub, ErrInvalidKey)
	}
	p.pub = key
	p.priv = nil
	p.h = p.digest.New()
	return nil
}

func (p *ecdsaPrimitive) InitSign(priv crypto.PrivateKey) error {
	key, ok := priv.(*ecdsa.PrivateKey)
	if !ok {
		return fmt.Errorf("%s: got %T: %w", p.name, priv, ErrInvalidKey)
	}
	p.priv = key
	p.pub = nil
	p.h = p.digest.New()
	return nil
}

func (p *ecdsaPrimitive) Update(b []byte) {
	if p.h != nil {
		p.h.Write(b)
	}
}

func (p *ecdsaPrimitive) Verify(sig []byte) (bool, error) {
	if p.pub == nil || p.h == nil {
		return false, fmt.Errorf("%s: %w", p.name, ErrNotInitialized)
	}
	var r, s *big.Int
	var err error
	switch p.encoding {
	case EncodingP1363:
		r, s, err = splitP1363(sig, orderByteLen(p.pub.Curve.Params().N))
	default:
		r, s, err = parseASN1Signature(sig)
	}
	if err != nil {
		return false, err
	}
	return ecdsa.Verify(p.pub, p.h.Sum(nil), r, s), nil
}

func (p *ecdsaPrimitive) Sign() ([]byte, error) {
	if p.priv == nil || p.h == nil {
		return nil, fmt.Errorf("%s: %w", p.name, ErrNotInitialized)
	}
	digest := p.h.Sum(nil)
	if p.encoding == EncodingP1363 {
		r, s, err := ecdsa.Sign(rand.Reader, p.priv, digest)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.name, err)
		}
		return joinP1363(r, s, orderByteLen(p.priv.Curve.Params().N)), nil
	}
	sig, err := ecdsa.SignASN1(rand.Reader, p.priv, digest)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.name, err)
	}
	return sig, nil
}

// orderByteLen returns the byte length of a (sub)group order, which fixes
// the size of each P1363 signature half.
func orderByteLen(n *big.Int) int {
	return (n.BitLen() + 7) / 8
}

// parseASN1Signature decodes a DER SEQUENCE of two INTEGERs. Any deviation,
// including trailing bytes, is a malformed signature.
func parseASN1Signature(sig []byte) (r, s *big.Int, err error) {
	r, s = new(big.Int), new(big.Int)
	input := cryptobyte.String(sig)
	var inner cryptobyte.String
	if !input.ReadASN1(&inner, cbasn1.SEQUENCE) ||
		!input.Empty() ||
		!inner.ReadASN1Integer(r) ||
		!inner.ReadASN1Integer(s) ||
		!inner.Empty() {
		return nil, nil, ErrMalformedSignature
	}
	return r, s, nil
}

// splitP1363 splits a fixed-length signature into its r and s halves.
// A length other than exactly two order-sized halves is malformed.
func splitP1363(sig []byte, size int) (r, s *big.Int, err error) {
	if len(sig) != 2*size {
		return nil, nil, fmt.Errorf("got %d bytes, want %d: %w", len(sig), 2*size, ErrMalformedSignature)
	}
	r = new(big.Int).SetBytes(sig[:size])
	s = new(big.Int).SetBytes(sig[size:])
	return r, s, nil
}

// joinP1363 serializes r and s as two fixed-length big-endian halves.
func joinP1363(r, s *big.Int, size int) []byte {
	sig := make([]byte, 2*size)
	r.FillBytes(sig[:size])
	s.FillBytes(sig[size:])
	return sig
}
