package harness

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"errors"
	"testing"

	"github.com/sigvet/sigvet/internal/vector"
)

// newECDSAGroup generates a P-256 key and returns the key plus an empty
// group carrying its SubjectPublicKeyInfo encoding.
func newECDSAGroup(t *testing.T) (*ecdsa.PrivateKey, *vector.Group) {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("failed to marshal key: %v", err)
	}
	return key, &vector.Group{
		Key:    &vector.KeyInfo{Curve: "secp256r1", KeySize: 256, Type: "EcPublicKey"},
		KeyDER: der,
		SHA:    "SHA-256",
	}
}

// signP256 produces an ASN.1 ECDSA signature over msg.
func signP256(t *testing.T, key *ecdsa.PrivateKey, msg []byte) []byte {
	t.Helper()
	digest := sha256.Sum256(msg)
	sig, err := ecdsa.SignASN1(rand.Reader, key, digest[:])
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}
	return sig
}

func addCase(g *vector.Group, id int, msg, sig []byte, result vector.Result, comment string) {
	g.Tests = append(g.Tests, &vector.Case{
		TCID:    id,
		Comment: comment,
		Msg:     msg,
		Sig:     sig,
		Result:  result,
	})
}

// unsupportedKeyGroup mimics a group for a curve the platform cannot parse.
func unsupportedKeyGroup(curve string, cases int) *vector.Group {
	g := &vector.Group{
		Key:    &vector.KeyInfo{Curve: curve, Type: "EcPublicKey"},
		KeyDER: vector.HexBytes{0xca, 0xfe},
		SHA:    "SHA-256",
	}
	for i := 0; i < cases; i++ {
		addCase(g, 1000+i, []byte("msg"), []byte{0x30, 0x00}, vector.ResultValid, "unsupported curve")
	}
	return g
}

func TestVerify_AllValid(t *testing.T) {
	key, group := newECDSAGroup(t)
	msg1, msg2 := []byte("first message"), []byte("second message")
	addCase(group, 1, msg1, signP256(t, key, msg1), vector.ResultValid, "random signature")
	addCase(group, 2, msg2, signP256(t, key, msg2), vector.ResultValid, "random signature")

	doc := &vector.Document{Algorithm: "ECDSA", NumberOfTests: 2, TestGroups: []*vector.Group{group}}

	tally, err := NewRunner().Verify(doc, "ECDSA", FormatASN1, Options{File: "t.json"})
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if tally.Executed != 2 || tally.Errors != 0 || tally.SkippedKeys != 0 {
		t.Errorf("tally = %+v", tally)
	}
}

func TestVerify_ValidCaseRejected(t *testing.T) {
	key, group := newECDSAGroup(t)
	// Well-formed signature over a different message: decodes fine, does
	// not verify.
	addCase(group, 1, []byte("message"), signP256(t, key, []byte("other")), vector.ResultValid, "wrong message")

	doc := &vector.Document{Algorithm: "ECDSA", NumberOfTests: 1, TestGroups: []*vector.Group{group}}

	tally, err := NewRunner().Verify(doc, "ECDSA", FormatASN1, Options{})
	if !errors.Is(err, ErrCaseFailures) {
		t.Errorf("got %v, want ErrCaseFailures", err)
	}
	if tally.Errors != 1 {
		t.Errorf("Errors = %d, want 1", tally.Errors)
	}
}

func TestVerify_InvalidCaseAccepted(t *testing.T) {
	key, group := newECDSAGroup(t)
	msg := []byte("message")
	// A correct signature on a case declared invalid must be flagged.
	addCase(group, 1, msg, signP256(t, key, msg), vector.ResultInvalid, "should not verify")

	doc := &vector.Document{Algorithm: "ECDSA", NumberOfTests: 1, TestGroups: []*vector.Group{group}}

	tally, err := NewRunner().Verify(doc, "ECDSA", FormatASN1, Options{})
	if !errors.Is(err, ErrCaseFailures) {
		t.Errorf("got %v, want ErrCaseFailures", err)
	}
	if tally.Errors != 1 {
		t.Errorf("Errors = %d, want 1", tally.Errors)
	}
}

func TestVerify_MalformedSignatureIsNotAnError(t *testing.T) {
	_, group := newECDSAGroup(t)
	addCase(group, 1, []byte("message"), []byte{0xde, 0xad}, vector.ResultInvalid, "garbage signature")
	addCase(group, 2, []byte("message"), nil, vector.ResultInvalid, "empty signature")

	doc := &vector.Document{Algorithm: "ECDSA", NumberOfTests: 2, TestGroups: []*vector.Group{group}}

	tally, err := NewRunner().Verify(doc, "ECDSA", FormatASN1, Options{})
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if tally.Errors != 0 {
		t.Errorf("malformed signatures on invalid cases must not count as errors, got %d", tally.Errors)
	}
	if tally.Executed != 2 {
		t.Errorf("Executed = %d, want 2", tally.Executed)
	}
}

func TestVerify_AcceptableNeverFails(t *testing.T) {
	key, group := newECDSAGroup(t)
	msg := []byte("message")
	addCase(group, 1, msg, signP256(t, key, msg), vector.ResultAcceptable, "verifies")
	addCase(group, 2, msg, []byte{0xde, 0xad}, vector.ResultAcceptable, "does not verify")

	doc := &vector.Document{Algorithm: "ECDSA", NumberOfTests: 2, TestGroups: []*vector.Group{group}}

	tally, err := NewRunner().Verify(doc, "ECDSA", FormatASN1, Options{})
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if tally.Errors != 0 {
		t.Errorf("acceptable cases must never fail, got %d errors", tally.Errors)
	}
}

func TestVerify_SkippedKeyGroup(t *testing.T) {
	key, group := newECDSAGroup(t)
	msg := []byte("message")
	addCase(group, 1, msg, signP256(t, key, msg), vector.ResultValid, "supported group")

	skipped := unsupportedKeyGroup("secp256k1", 2)

	doc := &vector.Document{Algorithm: "ECDSA", NumberOfTests: 3, TestGroups: []*vector.Group{group, skipped}}

	tally, err := NewRunner().Verify(doc, "ECDSA", FormatASN1, Options{AllowSkippingKeys: true})
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if tally.Executed != 1 {
		t.Errorf("Executed = %d, want 1 (skipped group cases are not attempted)", tally.Executed)
	}
	if tally.SkippedKeys != 1 {
		t.Errorf("SkippedKeys = %d, want 1", tally.SkippedKeys)
	}
	reasons := tally.SkipReasons()
	if len(reasons) != 1 || reasons[0] != "curve = secp256k1" {
		t.Errorf("SkipReasons = %v", reasons)
	}

	// The same document fails when skipping is not allowed.
	_, err = NewRunner().Verify(doc, "ECDSA", FormatASN1, Options{})
	if !errors.Is(err, ErrSkipsNotAllowed) {
		t.Errorf("got %v, want ErrSkipsNotAllowed", err)
	}
}

func TestVerify_SkipScenario(t *testing.T) {
	// numberOfTests == 10, two skipped groups covering 3 cases,
	// allowSkippingKeys == true: passes with executed == 7.
	key, group := newECDSAGroup(t)
	for i := 1; i <= 7; i++ {
		msg := []byte{byte(i)}
		addCase(group, i, msg, signP256(t, key, msg), vector.ResultValid, "supported")
	}
	doc := &vector.Document{
		Algorithm:     "ECDSA",
		NumberOfTests: 10,
		TestGroups: []*vector.Group{
			group,
			unsupportedKeyGroup("secp256k1", 2),
			unsupportedKeyGroup("brainpoolP256r1", 1),
		},
	}

	tally, err := NewRunner().Verify(doc, "ECDSA", FormatASN1, Options{AllowSkippingKeys: true})
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if tally.Executed != 7 {
		t.Errorf("Executed = %d, want 7", tally.Executed)
	}
	if tally.SkippedKeys != 2 {
		t.Errorf("SkippedKeys = %d, want 2", tally.SkippedKeys)
	}
}

func TestVerify_CountMismatch(t *testing.T) {
	key, group := newECDSAGroup(t)
	msg := []byte("message")
	addCase(group, 1, msg, signP256(t, key, msg), vector.ResultValid, "only case")

	doc := &vector.Document{Algorithm: "ECDSA", NumberOfTests: 5, TestGroups: []*vector.Group{group}}

	_, err := NewRunner().Verify(doc, "ECDSA", FormatASN1, Options{})
	if !errors.Is(err, ErrCountMismatch) {
		t.Errorf("got %v, want ErrCountMismatch", err)
	}
}

func TestVerify_UnsupportedDigestSkipsGroup(t *testing.T) {
	_, group := newECDSAGroup(t)
	group.SHA = "MD5"
	addCase(group, 1, []byte("msg"), []byte{0x30, 0x00}, vector.ResultValid, "unsupported digest")

	doc := &vector.Document{Algorithm: "ECDSA", NumberOfTests: 1, TestGroups: []*vector.Group{group}}

	tally, err := NewRunner().Verify(doc, "ECDSA", FormatASN1, Options{AllowSkippingKeys: true})
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if tally.SkippedKeys != 1 || tally.Executed != 0 {
		t.Errorf("tally = %+v, want one skipped group and nothing executed", tally)
	}
}

func TestVerify_Idempotent(t *testing.T) {
	key, group := newECDSAGroup(t)
	msg := []byte("message")
	addCase(group, 1, msg, signP256(t, key, msg), vector.ResultValid, "ok")
	addCase(group, 2, msg, []byte{0xde, 0xad}, vector.ResultInvalid, "garbage")

	doc := &vector.Document{Algorithm: "ECDSA", NumberOfTests: 2, TestGroups: []*vector.Group{group}}
	runner := NewRunner()

	first, err1 := runner.Verify(doc, "ECDSA", FormatASN1, Options{})
	second, err2 := runner.Verify(doc, "ECDSA", FormatASN1, Options{})
	if err1 != nil || err2 != nil {
		t.Fatalf("Verify failed: %v, %v", err1, err2)
	}
	if first.Executed != second.Executed || first.Errors != second.Errors ||
		first.SkippedKeys != second.SkippedKeys {
		t.Errorf("re-running must yield identical tallies: %+v vs %+v", first, second)
	}
}

func TestVerify_Ed25519Document(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		t.Fatalf("failed to marshal key: %v", err)
	}
	msg := []byte("eddsa message")
	group := &vector.Group{
		Key:    &vector.KeyInfo{Curve: "edwards25519", Type: "EDDSAPublicKey"},
		KeyDER: der,
	}
	addCase(group, 1, msg, ed25519.Sign(priv, msg), vector.ResultValid, "random signature")
	badSig := ed25519.Sign(priv, []byte("other"))
	addCase(group, 2, msg, badSig, vector.ResultInvalid, "signature of other message")

	doc := &vector.Document{Algorithm: "EDDSA", NumberOfTests: 2, TestGroups: []*vector.Group{group}}

	tally, err := NewRunner().Verify(doc, "EDDSA", FormatRaw, Options{})
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if tally.Executed != 2 || tally.Errors != 0 {
		t.Errorf("tally = %+v", tally)
	}
}
