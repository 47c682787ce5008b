// Package harness executes signature test-vector documents against the
// primitive layer and classifies the outcomes. One document is processed
// start to finish by one runner; tallies are fresh per document and never
// shared.
package harness

import (
	"fmt"
	"strings"
)

// Format identifies how the signatures in a document are encoded.
type Format int

const (
	// FormatRaw means the scheme's own encoding is used as-is. This is the
	// format for schemes like RSA PKCS#1 and EdDSA that define one encoding.
	FormatRaw Format = iota

	// FormatASN1 is the DER SEQUENCE encoding used by ECDSA and DSA.
	FormatASN1

	// FormatP1363 is the IEEE P1363 fixed-length encoding of ECDSA and DSA
	// signatures.
	FormatP1363
)

var formatNames = [...]string{"RAW", "ASN1", "P1363"}

// String returns the canonical format name.
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat parses a format name. "ASN" is accepted as an alias for
// "ASN1".
func ParseFormat(s string) (Format, error) {
	switch strings.ToUpper(s) {
	case "RAW":
		return FormatRaw, nil
	case "ASN", "ASN1":
		return FormatASN1, nil
	case "P1363":
		return FormatP1363, nil
	}
	return 0, fmt.Errorf("unknown signature format: %q", s)
}

// Operation distinguishes verification documents from signing documents.
type Operation int

const (
	// OpVerify checks signatures against expected outcomes.
	OpVerify Operation = iota

	// OpSign generates signatures and compares them byte for byte. Only
	// deterministic schemes have signing documents.
	OpSign
)

// String returns the operation name.
func (o Operation) String() string {
	if o == OpSign {
		return "sign"
	}
	return "verify"
}

// ParseOperation parses an operation name. The empty string defaults to
// verification.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(s) {
	case "", "verify":
		return OpVerify, nil
	case "sign":
		return OpSign, nil
	}
	return 0, fmt.Errorf("unknown operation: %q", s)
}
