package harness

import (
	"bytes"
	"encoding/hex"

	"github.com/sigvet/sigvet/internal/vector"
)

// Sign runs a signing document for a deterministic scheme: per group it
// materializes the private key and resolves the primitive once, then signs
// every case's message and compares the produced signature byte for byte
// against the expected one. A failure to sign is an error only when the
// case expected a valid outcome.
func (r *Runner) Sign(doc *vector.Document, algorithm string, format Format, opts Options) (*Tally, error) {
	r.checkSchema(doc, algorithm, format, OpSign, opts.File)

	tally := NewTally()
	for _, group := range doc.TestGroups {
		key, err := materializePrivateKey(group, algorithm)
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
			if err := prim.InitSign(key); err != nil {
				r.logSignFailure(opts.File, algorithm, tc, err, &tally.Errors)
				continue
			}
			prim.Update(tc.Msg)
			sig, err := prim.Sign()
			if err != nil {
				r.logSignFailure(opts.File, algorithm, tc, err, &tally.Errors)
				continue
			}
			if !bytes.Equal(sig, tc.Sig) {
				tally.Errors++
				r.log.Error().
					Str("file", opts.File).
					Str("algorithm", algorithm).
					Int("tcId", tc.TCID).
					Str("expected", tc.Sig.Hex()).
					Str("produced", hex.EncodeToString(sig)).
					Msg("incorrect signature generated")
			}
		}
	}
	r.logSkipSummary(opts.File, tally)

	if err := tally.SigningVerdict(opts.AllowSkippingKeys); err != nil {
		return tally, &DocumentError{File: opts.File, Algorithm: algorithm, Format: format, Err: err}
	}
	return tally, nil
}

// logSignFailure records a signing failure. Cases expecting an invalid or
// acceptable outcome are allowed to fail to sign.
func (r *Runner) logSignFailure(file, algorithm string, tc *vector.Case, err error, errCount *int) {
	if tc.Result != vector.ResultValid {
		r.log.Debug().
			Str("file", file).
			Int("tcId", tc.TCID).
			Err(err).
			Msg("signing refused, as the case expected")
		return
	}
	*errCount++
	r.log.Error().
		Str("file", file).
		Str("algorithm", algorithm).
		Int("tcId", tc.TCID).
		Err(err).
		Msg("failed to sign")
}
