// SPDX-License-Identifier: MIT

// Package matrix: one-indexed span selection.
//
// A Span selects indices the way the rest of the package addresses them:
// one-indexed, with an INCLUSIVE closing bound and a positive step. A closing
// bound beyond the dimension is forgiven (clamped to the last valid index);
// a start, stop or step below 1 is an error, as is a start beyond the
// dimension or beyond the stop.
//
// Internally spans are normalized once into zero-based half-open form
// (adjustedSpan) so every consumer shares one arithmetic model. Composition
// of spans (slicing a slice) is resolved against the matrix's absolute
// indices, never against the view-local ones.

package matrix

// Span selects one-indexed positions Start, Start+Step, ... up to and
// including Stop. A zero Step is normalized to 1 for convenience.
type Span struct {
	Start int // first selected index, one-indexed, must be ≥ 1
	Stop  int // last selected index, inclusive; clamped to the dimension
	Step  int // stride between selected indices, must be ≥ 1 (0 ⇒ 1)
}

// NewSpan returns a step-1 span covering [start, stop].
func NewSpan(start, stop int) Span {
	return Span{Start: start, Stop: stop, Step: 1}
}

// WithStep returns a copy of s with the given step.
func (s Span) WithStep(step int) Span {
	s.Step = step

	return s
}

// adjustedSpan is a validated, zero-based, half-open selection:
// indices start, start+step, ... strictly below stop.
type adjustedSpan struct {
	start int // zero-based first index
	stop  int // zero-based EXCLUSIVE upper bound
	step  int // stride, ≥ 1
}

// adjustSpan validates s against a dimension of the given length and
// normalizes it to zero-based half-open form.
// Rules (in order):
//   - Step 0 normalizes to 1; Start, Stop or Step below 1 → ErrIndexOutOfRange.
//   - Start beyond the dimension, or beyond Stop → ErrIndexOutOfRange.
//   - Stop beyond the dimension is clamped (forgiven) to the last index.
//
// Complexity: O(1).
func adjustSpan(s Span, length int) (adjustedSpan, error) {
	// Normalize the zero-value step before validating.
	if s.Step == 0 {
		s.Step = 1
	}
	// All bounds are one-indexed; anything below 1 is out of range.
	if s.Start < 1 || s.Stop < 1 || s.Step < 1 {
		return adjustedSpan{}, validatorErrorf("adjustSpan", ErrIndexOutOfRange)
	}
	// The opening index must address an existing position.
	if s.Start > length {
		return adjustedSpan{}, validatorErrorf("adjustSpan", ErrIndexOutOfRange)
	}
	// A reversed span selects nothing and is rejected rather than forgiven.
	if s.Start > s.Stop {
		return adjustedSpan{}, validatorErrorf("adjustSpan", ErrIndexOutOfRange)
	}
	// Forgive a closing index beyond the dimension by clamping.
	if s.Stop > length {
		s.Stop = length
	}

	// One-indexed inclusive [Start, Stop] ⇒ zero-based half-open [Start-1, Stop).
	return adjustedSpan{start: s.Start - 1, stop: s.Stop, step: s.Step}, nil
}

// length returns the number of indices the adjusted span selects:
// ceil((stop-start)/step). Complexity: O(1).
func (s adjustedSpan) length() int {
	return (s.stop - s.start + s.step - 1) / s.step
}

// index maps a zero-based position within the span's selection to the
// zero-based index of the underlying sequence. Complexity: O(1).
func (s adjustedSpan) index(i int) int {
	return s.start + i*s.step
}

// compose resolves inner (an adjusted span over OUTER's selection) into an
// adjusted span over the original sequence, so that re-slicing a slice
// always addresses the matrix's absolute indices.
// Complexity: O(1).
func (outer adjustedSpan) compose(inner adjustedSpan) adjustedSpan {
	return adjustedSpan{
		start: outer.index(inner.start),
		// Map the last selected inner index, then restore the exclusive bound.
		stop: outer.index(inner.stop-1) + 1,
		step: outer.step * inner.step,
	}
}
