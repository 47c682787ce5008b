package primitive

import "errors"

// Sentinel errors for primitive resolution and use.
// Use errors.Is() to check for these errors through the error chain.
var (
	// ErrUnsupportedAlgorithm indicates the requested algorithm name is not
	// registered. This is an expected outcome for capability probing, not a
	// defect: callers skip the affected work.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrUnsupportedKey indicates key material could not be turned into a
	// usable key, typically because it encodes an unsupported parameter set
	// such as an uncommon curve. Also expected; callers skip.
	ErrUnsupportedKey = errors.New("unsupported key")

	// ErrMalformedSignature indicates the signature bytes could not be
	// decoded. During verification this maps to "not verified", never to a
	// harness error.
	ErrMalformedSignature = errors.New("malformed signature")

	// ErrInvalidKey indicates a key of the wrong type was supplied to a
	// primitive, or no key was supplied at all.
	ErrInvalidKey = errors.New("invalid key for primitive")

	// ErrNotInitialized indicates Verify or Sign was called before the
	// corresponding Init.
	ErrNotInitialized = errors.New("primitive not initialized")
)
