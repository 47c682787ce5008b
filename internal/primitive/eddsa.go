package primitive

import (
	"crypto"
	"crypto/ed25519"
	"fmt"

	"github.com/cloudflare/circl/sign/ed448"
)

// eddsaPrimitive implements EdDSA. The scheme hashes internally, so the
// message is buffered rather than streamed into a digest. The curve is
// selected by the key type: Ed25519 from the standard library, Ed448 from
// cloudflare/circl.
type eddsaPrimitive struct {
	name string
	msg  []byte

	pub25519  ed25519.PublicKey
	priv25519 ed25519.PrivateKey
	pub448    ed448.PublicKey
	priv448   ed448.PrivateKey

	initialized bool
}

func newEdDSA(name string) Primitive {
	return &eddsaPrimitive{name: name}
}

func (p *eddsaPrimitive) Name() string { return p.name }

func (p *eddsaPrimitive) reset() {
	p.msg = nil
	p.pub25519 = nil
	p.priv25519 = nil
	p.pub448 = nil
	p.priv448 = nil
	p.initialized = false
}

func (p *eddsaPrimitive) InitVerify(pub crypto.PublicKey) error {
	p.reset()
	switch key := pub.(type) {
	case ed25519.PublicKey:
		p.pub25519 = key
	case ed448.PublicKey:
		p.pub448 = key
	default:
		return fmt.Errorf("%s: got %T: %w", p.name, pub, ErrInvalidKey)
	}
	p.initialized = true
	return nil
}

func (p *eddsaPrimitive) InitSign(priv crypto.PrivateKey) error {
	p.reset()
	switch key := priv.(type) {
	case ed25519.PrivateKey:
		p.priv25519 = key
	case ed448.PrivateKey:
		p.priv448 = key
	default:
		return fmt.Errorf("%s: got %T: %w", p.name, priv, ErrInvalidKey)
	}
	p.initialized = true
	return nil
}

func (p *eddsaPrimitive) Update(b []byte) {
	if p.initialized {
		p.msg = append(p.msg, b...)
	}
}

func (p *eddsaPrimitive) Verify(sig []byte) (bool, error) {
	switch {
	case p.pub25519 != nil:
		if len(sig) != ed25519.SignatureSize {
			return false, fmt.Errorf("got %d bytes, want %d: %w", len(sig), ed25519.SignatureSize, ErrMalformedSignature)
		}
		return ed25519.Verify(p.pub25519, p.msg, sig), nil
	case p.pub448 != nil:
		if len(sig) != ed448.SignatureSize {
			return false, fmt.Errorf("got %d bytes, want %d: %w", len(sig), ed448.SignatureSize, ErrMalformedSignature)
		}
		return ed448.Verify(p.pub448, p.msg, sig, ""), nil
	default:
		return false, fmt.Errorf("%s: %w", p.name, ErrNotInitialized)
	}
}

func (p *eddsaPrimitive) Sign() ([]byte, error) {
	switch {
	case p.priv25519 != nil:
		return ed25519.Sign(p.priv25519, p.msg), nil
	case p.priv448 != nil:
		return ed448.Sign(p.priv448, p.msg, ""), nil
	default:
		return nil, fmt.Errorf("%s: %w", p.name, ErrNotInitialized)
	}
}
