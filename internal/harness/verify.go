package harness

import (
	"crypto"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sigvet/sigvet/internal/primitive"
	"github.com/sigvet/sigvet/internal/vector"
)

// Runner executes test-vector documents. A runner is stateless between
// documents; it only carries the logger.
type Runner struct {
	log zerolog.Logger
}

// NewRunner returns a runner that logs nothing.
func NewRunner() *Runner {
	return &Runner{log: zerolog.Nop()}
}

// NewRunnerWithLogger returns a runner using the given logger for per-case
// diagnostics, skip summaries and schema warnings.
func NewRunnerWithLogger(log zerolog.Logger) *Runner {
	return &Runner{log: log}
}

// Options configures one document execution.
type Options struct {
	// File names the document for diagnostics. It is not read.
	File string

	// AllowSkippingKeys tolerates groups whose key or primitive cannot be
	// constructed, e.g. vectors for curves the platform does not support.
	AllowSkippingKeys bool
}

// Verify runs a verification document: per group it materializes the public
// key and resolves the primitive once, then verifies every case and
// classifies the outcome against the expected result. The returned tally is
// complete even when the verdict error is non-nil.
func (r *Runner) Verify(doc *vector.Document, algorithm string, format Format, opts Options) (*Tally, error) {
	r.checkSchema(doc, algorithm, format, OpVerify, opts.File)

	tally := NewTally()
	for _, group := range doc.TestGroups {
		key, err := materializePublicKey(group, algorithm)
		if err != nil {
			r.logSkip(opts.File, group.Curve(), err)
			tally.SkipKey(skipReason(group))
			continue
		}
		prim, err := ResolvePrimitive(group.SHA, algorithm, format)
		if err != nil {
			r.logSkip(opts.File, group.Curve(), err)
			tally.SkipKey("")
			continue
		}
		for _, tc := range group.Tests {
			tally.Executed++
			verified, err := r.verifyCase(prim, key, tc)
			if err != nil {
				// A defect in the primitive, not a property of the
				// signature. Counted in addition to any misclassification.
				tally.Errors++
				r.log.Error().
					Str("file", opts.File).
					Str("algorithm", algorithm).
					Int("tcId", tc.TCID).
					Str("sig", tc.Sig.Hex()).
					Err(err).
					Msg("verification raised an unexpected failure")
			}
			if !conforms(verified, tc.Result) {
				tally.Errors++
				r.logMismatch(opts.File, algorithm, tc, verified)
			}
		}
	}
	r.logSkipSummary(opts.File, tally)

	if err := tally.Verdict(doc.NumberOfTests, opts.AllowSkippingKeys); err != nil {
		return tally, &DocumentError{File: opts.File, Algorithm: algorithm, Format: format, Err: err}
	}
	return tally, nil
}

// verifyCase runs a single verification. A malformed signature is folded
// into verified=false; the returned error is reserved for defect-class
// failures.
func (r *Runner) verifyCase(prim primitive.Primitive, key crypto.PublicKey, tc *vector.Case) (bool, error) {
	if err := prim.InitVerify(key); err != nil {
		return false, err
	}
	prim.Update(tc.Msg)
	verified, err := prim.Verify(tc.Sig)
	if err != nil {
		if errors.Is(err, primitive.ErrMalformedSignature) {
			// Crafted-invalid vectors routinely fail to decode. That is a
			// rejection, not an error.
			return false, nil
		}
		return false, err
	}
	return verified, nil
}

// materializePublicKey turns a group's key descriptor into a public key.
// Any failure wraps primitive.ErrUnsupportedKey so the group can be
// skipped.
func materializePublicKey(group *vector.Group, algorithm string) (crypto.PublicKey, error) {
	kf, err := primitive.ForAlgorithm(algorithm)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, primitive.ErrUnsupportedKey)
	}
	return kf.PublicKey(group.KeyDER)
}

// materializePrivateKey turns a group's PKCS#8 descriptor into a private
// key for the signing path.
func materializePrivateKey(group *vector.Group, algorithm string) (crypto.PrivateKey, error) {
	kf, err := primitive.ForAlgorithm(algorithm)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, primitive.ErrUnsupportedKey)
	}
	return kf.PrivateKey(group.PrivateKeyPKCS8)
}

// skipReason renders the de-duplicated reason recorded for a skipped group.
func skipReason(group *vector.Group) string {
	if curve := group.Curve(); curve != "" {
		return "curve = " + curve
	}
	return ""
}

func (r *Runner) checkSchema(doc *vector.Document, algorithm string, format Format, op Operation, file string) {
	want := ExpectedSchema(algorithm, format, op)
	if want != "" && want != doc.Schema {
		r.log.Warn().
			Str("file", file).
			Str("algorithm", algorithm).
			Str("expected", want).
			Str("actual", doc.Schema).
			Msg("unexpected schema, vectors may not match the test setup")
	}
}

func (r *Runner) logSkip(file, curve string, err error) {
	ev := r.log.Debug().Str("file", file).Err(err)
	if curve != "" {
		ev = ev.Str("curve", curve)
	}
	ev.Msg("skipping group")
}

func (r *Runner) logMismatch(file, algorithm string, tc *vector.Case, verified bool) {
	msg := "valid signature not verified"
	if verified {
		msg = "invalid signature verified"
	}
	r.log.Error().
		Str("file", file).
		Str("algorithm", algorithm).
		Int("tcId", tc.TCID).
		Str("comment", tc.Comment).
		Str("sig", tc.Sig.Hex()).
		Msg(msg)
}

func (r *Runner) logSkipSummary(file string, tally *Tally) {
	if tally.SkippedKeys == 0 {
		return
	}
	r.log.Info().
		Str("file", file).
		Int("skippedKeys", tally.SkippedKeys).
		Strs("reasons", tally.SkipReasons()).
		Msg("groups were skipped")
}
