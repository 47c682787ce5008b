package harness

import (
	"fmt"
	"sort"

	"github.com/sigvet/sigvet/internal/vector"
)

// Tally accumulates the outcome of one document. Counts only increase; a
// fresh tally is used per document and never shared between documents.
type Tally struct {
	// Executed is the number of cases attempted. Cases in skipped groups
	// are not attempted and not counted.
	Executed int

	// Errors is the number of misclassifications and harness defects.
	Errors int

	// SkippedKeys is the number of groups skipped because the key or the
	// primitive could not be constructed.
	SkippedKeys int

	skipReasons map[string]struct{}
}

// NewTally returns an empty tally.
func NewTally() *Tally {
	return &Tally{skipReasons: make(map[string]struct{})}
}

// SkipKey records a skipped group. A non-empty reason (typically
// "curve = <name>") is added to the de-duplicated reason set.
func (t *Tally) SkipKey(reason string) {
	t.SkippedKeys++
	if reason != "" {
		t.skipReasons[reason] = struct{}{}
	}
}

// SkipReasons returns the distinct skip reasons, sorted.
func (t *Tally) SkipReasons() []string {
	reasons := make([]string, 0, len(t.skipReasons))
	for r := range t.skipReasons {
		reasons = append(reasons, r)
	}
	sort.Strings(reasons)
	return reasons
}

// Verdict renders the pass/fail decision for a verification document.
// It fails on any case error. With no skipped keys the executed count must
// equal the document's declared count; with skipped keys the caller must
// have allowed skipping.
func (t *Tally) Verdict(declaredTests int, allowSkippingKeys bool) error {
	if t.Errors > 0 {
		return fmt.Errorf("%d of %d cases: %w", t.Errors, t.Executed, ErrCaseFailures)
	}
	if t.SkippedKeys == 0 {
		if t.Executed != declaredTests {
			return fmt.Errorf("executed %d, declared %d: %w", t.Executed, declaredTests, ErrCountMismatch)
		}
		return nil
	}
	if !allowSkippingKeys {
		return fmt.Errorf("%d skipped: %w", t.SkippedKeys, ErrSkipsNotAllowed)
	}
	return nil
}

// SigningVerdict renders the pass/fail decision for a signing document.
// Signing documents carry no strict executed-count requirement; only case
// errors and the skip policy decide.
func (t *Tally) SigningVerdict(allowSkippingKeys bool) error {
	if t.Errors > 0 {
		return fmt.Errorf("%d of %d cases: %w", t.Errors, t.Executed, ErrCaseFailures)
	}
	if t.SkippedKeys > 0 && !allowSkippingKeys {
		return fmt.Errorf("%d skipped: %w", t.SkippedKeys, ErrSkipsNotAllowed)
	}
	return nil
}

// conforms is the single classification rule: it reports whether an
// observed verification outcome is compatible with the expected result.
// Acceptable cases are never graded.
func conforms(verified bool, expected vector.Result) bool {
	switch expected {
	case vector.ResultValid:
		return verified
	case vector.ResultInvalid:
		return !verified
	default:
		return true
	}
}
