package harness

import (
	"fmt"
	"strings"

	"github.com/sigvet/sigvet/internal/primitive"
)

// NormalizeDigest rewrites a digest name into the form used when composing
// signature-algorithm identifiers. SHA-2 digests drop the hyphen ("SHA-256"
// becomes "SHA256"); SHA-3 digests already carry the hyphen-and-number form
// in signature identifiers and pass through unchanged.
func NormalizeDigest(md string) string {
	switch strings.ToUpper(md) {
	case "SHA-1":
		return "SHA1"
	case "SHA-224":
		return "SHA224"
	case "SHA-256":
		return "SHA256"
	case "SHA-384":
		return "SHA384"
	case "SHA-512":
		return "SHA512"
	}
	return strings.ToUpper(md)
}

// Candidates returns the composed algorithm identifiers to try, in order,
// for a (digest, algorithm, format) triple. RAW and ASN1 compose a single
// identifier: ASN.1 is the native encoding of the algorithms that use it,
// so RAW just means "the algorithm's own encoding". P1363 applies only to
// ECDSA and DSA and has two competing naming conventions, so both are
// returned. An empty slice means the combination is undefined.
func Candidates(md, algorithm string, format Format) []string {
	md = NormalizeDigest(md)
	algorithm = strings.ToUpper(algorithm)
	switch format {
	case FormatRaw, FormatASN1:
		if md == "" {
			// EdDSA documents declare no digest; the identifier is the
			// algorithm name alone.
			return []string{algorithm}
		}
		return []string{md + "WITH" + algorithm}
	case FormatP1363:
		if algorithm == "ECDSA" || algorithm == "DSA" {
			return []string{
				md + "WITH" + algorithm + "INP1363FORMAT",
				md + "WITHPLAIN-" + algorithm,
			}
		}
	}
	return nil
}

// ResolvePrimitive maps a (digest, algorithm, format) triple to a usable
// primitive, trying each candidate identifier until one constructs.
// Failure wraps primitive.ErrUnsupportedAlgorithm; this is an expected
// outcome used to skip groups the environment cannot test.
func ResolvePrimitive(md, algorithm string, format Format) (primitive.Primitive, error) {
	candidates := Candidates(md, algorithm, format)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("algorithm %s with format %s: %w",
			algorithm, format, primitive.ErrUnsupportedAlgorithm)
	}
	for _, name := range candidates {
		p, err := primitive.Resolve(name)
		if err == nil {
			return p, nil
		}
	}
	return nil, fmt.Errorf("algorithm %s with format %s (tried %s): %w",
		algorithm, format, strings.Join(candidates, ", "), primitive.ErrUnsupportedAlgorithm)
}
