package seq

import "iter"

// DefaultLimit bounds the number of comparisons performed by the cycle
// detectors when the caller passes a non-positive limit. It guarantees
// termination on acyclic infinite sequences.
const DefaultLimit = 1_000_000

// Cycle describes a repetition found in a sequence: Start is the zero-based
// index of the first element that is part of the repeating segment (mu) and
// Length is the number of elements in one repetition (lambda, at least 1).
type Cycle struct {
	Start  int
	Length int
}

// firstMatch advances two memoizing cursors in lockstep and returns the
// zero-based step index at which their current values first compare equal.
// It reports false when limit steps pass without a match or either source
// drains first.
func firstMatch[T comparable](a, b *Keep[T], limit int) (int, bool) {
	for n := 0; n < limit; n++ {
		if a.Current() == b.Current() {
			return n, true
		}
		if a.Advance() != nil || b.Advance() != nil {
			return 0, false
		}
	}
	return 0, false
}

// Floyd detects a cycle in a sequence using the tortoise and hare algorithm.
// The sequence may be finite or infinite; limit bounds the comparisons per
// phase (DefaultLimit when non-positive). It reports false when no cycle is
// found within the limit or the sequence drains without repeating.
func Floyd[T comparable](s iter.Seq[T], limit int) (Cycle, bool) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	cursors := Tee(s, 3)
	replay, slow, fast := cursors[0], cursors[1], cursors[2]

	// Detection phase: tortoise walks elements 0,1,2,... while the hare
	// walks 1,3,5,... A value match proves a repetition exists.
	tortoise, err := NewKeep(slow)
	if err != nil {
		return Cycle{}, false
	}
	hare, err := NewKeep[T](newStrided(fast, 1, 2))
	if err != nil {
		return Cycle{}, false
	}
	if _, ok := firstMatch(tortoise, hare, limit); !ok {
		return Cycle{}, false
	}
	fast.Stop()

	// Start-of-cycle phase: restart the tortoise from the beginning and walk
	// both one step at a time. The hare takes over the detection tortoise,
	// one step past the meeting point.
	hare = tortoise
	if hare.Advance() != nil {
		return Cycle{}, false
	}
	tortoise, err = NewKeep(replay)
	if err != nil {
		return Cycle{}, false
	}
	start, ok := firstMatch(tortoise, hare, limit)
	if !ok {
		return Cycle{}, false
	}

	// Length phase: step forward from the cycle start until its value
	// reappears.
	v := tortoise.Current()
	length := 0
	for {
		if tortoise.Advance() != nil {
			return Cycle{}, false
		}
		length++
		if tortoise.Current() == v {
			return Cycle{Start: start, Length: length}, true
		}
		if length >= limit {
			return Cycle{}, false
		}
	}
}

// Brent detects a cycle using Brent's power-of-two trial doubling, which
// needs fewer comparisons than Floyd for the same result. Semantics match
// Floyd: false means no cycle within limit or the sequence drained first.
func Brent[T comparable](s iter.Seq[T], limit int) (Cycle, bool) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	cursors := Tee(s, 2)
	replay, work := cursors[0], cursors[1]

	// Main phase: the tortoise value stays pinned at the start of each
	// power-of-two block while the hare advances one step at a time.
	hare, err := NewKeep(work)
	if err != nil {
		return Cycle{}, false
	}
	anchor := hare.Current()
	if hare.Advance() != nil {
		return Cycle{}, false
	}
	power, lam := 1, 1
	for n := 0; hare.Current() != anchor; n++ {
		if n >= limit {
			return Cycle{}, false
		}
		if power == lam {
			anchor = hare.Current()
			power *= 2
			lam = 0
		}
		if hare.Advance() != nil {
			return Cycle{}, false
		}
		lam++
	}
	work.Stop()

	// Start-of-cycle phase: from the beginning, walk a second hare exactly
	// lam elements ahead of the tortoise; their first value match is mu.
	ahead := replay.Clone()
	tortoise, err := NewKeep(replay)
	if err != nil {
		return Cycle{}, false
	}
	hare, err = NewKeep(ahead)
	if err != nil {
		return Cycle{}, false
	}
	for i := 0; i < lam; i++ {
		if hare.Advance() != nil {
			return Cycle{}, false
		}
	}
	mu, ok := firstMatch(tortoise, hare, limit)
	if !ok {
		return Cycle{}, false
	}
	return Cycle{Start: mu, Length: lam}, true
}

// Detect is the public cycle detection entry point. It runs Brent's
// algorithm over the sequence and reports false when no cycle was found
// within the limit, whether the limit was exhausted or a finite sequence
// drained without repeating.
func Detect[T comparable](s iter.Seq[T], limit int) (Cycle, bool) {
	return Brent(s, limit)
}
