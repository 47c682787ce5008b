// Package vector holds the in-memory model for JSON signature test-vector
// documents. A document is parsed once from a fixture file and is immutable
// afterwards; groups and cases are read-only views into it.
package vector

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
)

// HexBytes is a byte sequence that is hex-encoded at rest in the fixture
// and decoded during parsing. Diagnostics re-encode it with Hex().
type HexBytes []byte

// UnmarshalJSON decodes a hex string into raw bytes.
func (h *HexBytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("invalid hex field: %w", err)
	}
	*h = b
	return nil
}

// MarshalJSON re-encodes the bytes as a hex string.
func (h HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(h))
}

// Hex returns the hex encoding of the bytes, for diagnostics.
func (h HexBytes) Hex() string {
	return hex.EncodeToString(h)
}

// Result is the expected outcome of a test case.
type Result string

const (
	// ResultValid means a correct implementation must accept the signature.
	ResultValid Result = "valid"

	// ResultInvalid means a correct implementation must reject the signature.
	ResultInvalid Result = "invalid"

	// ResultAcceptable marks a case the suite does not grade strictly.
	// Neither acceptance nor rejection is counted as an error.
	ResultAcceptable Result = "acceptable"
)

// IsValid reports whether the result is one of the three known values.
func (r Result) IsValid() bool {
	switch r {
	case ResultValid, ResultInvalid, ResultAcceptable:
		return true
	}
	return false
}

// UnmarshalJSON parses and validates a result value.
func (r *Result) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	res := Result(s)
	if !res.IsValid() {
		return fmt.Errorf("unknown test result %q", s)
	}
	*r = res
	return nil
}

// KeyInfo describes the structured form of a test group's key. Only the
// fields the harness inspects are modeled; the DER encoding is what gets
// parsed into an actual key.
type KeyInfo struct {
	Curve   string `json:"curve,omitempty"`
	KeySize int    `json:"keySize,omitempty"`
	Type    string `json:"type,omitempty"`
}

// Case is a single test case: one message, one signature, one expected
// outcome.
type Case struct {
	TCID    int      `json:"tcId"`
	Comment string   `json:"comment"`
	Msg     HexBytes `json:"msg"`
	Sig     HexBytes `json:"sig"`
	Result  Result   `json:"result"`
	Flags   []string `json:"flags,omitempty"`
}

// String renders the case for log output.
func (c *Case) String() string {
	return fmt.Sprintf("tcId:%d (%q) %s", c.TCID, c.Comment, c.Result)
}

// Group is a batch of cases sharing one key and one digest. The group is
// the unit of key and primitive reuse: both are resolved once per group.
type Group struct {
	Key             *KeyInfo `json:"key,omitempty"`
	KeyDER          HexBytes `json:"keyDer,omitempty"`
	KeyPEM          string   `json:"keyPem,omitempty"`
	PrivateKeyPKCS8 HexBytes `json:"privateKeyPkcs8,omitempty"`
	SHA             string   `json:"sha"`
	Type            string   `json:"type,omitempty"`
	Tests           []*Case  `json:"tests"`
}

// Curve returns the curve or parameter-set name declared in the structured
// key, or "" if none is present. Used for skip reporting.
func (g *Group) Curve() string {
	if g.Key == nil {
		return ""
	}
	return g.Key.Curve
}

// Document is a parsed test-vector file.
type Document struct {
	Algorithm     string   `json:"algorithm"`
	Schema        string   `json:"schema"`
	NumberOfTests int      `json:"numberOfTests"`
	Header        []string `json:"header,omitempty"`
	TestGroups    []*Group `json:"testGroups"`
}

// Parse decodes a test-vector document from JSON bytes.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse test vectors: %w", err)
	}
	return &doc, nil
}

// Load reads and parses a test-vector document from a file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test vectors: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// CaseCount returns the total number of cases across all groups.
func (d *Document) CaseCount() int {
	n := 0
	for _, g := range d.TestGroups {
		n += len(g.Tests)
	}
	return n
}
