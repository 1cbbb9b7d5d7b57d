// Package seq provides generic sequence tools over iter.Seq: lazily
// evaluated building blocks (counters, ranges, repetition), consumers
// (first, last, nth), transformations (accumulate, pairwise, chunk), and
// cycle detection over possibly infinite sequences.
package seq

import (
	"iter"

	"github.com/elliotchance/orderedmap/v2"
)

// Real is the numeric constraint used by the range builders.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Take yields the first n elements of s.
func Take[T any](s iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		i := 0
		for v := range s {
			if i >= n || !yield(v) {
				return
			}
			i++
		}
	}
}

// Drop skips the first n elements of s and yields the rest.
func Drop[T any](s iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		i := 0
		for v := range s {
			if i >= n && !yield(v) {
				return
			}
			i++
		}
	}
}

// TakeEvery yields every n-th element of s, starting at index start.
func TakeEvery[T any](s iter.Seq[T], n, start int) iter.Seq[T] {
	return func(yield func(T) bool) {
		i := 0
		for v := range s {
			if i >= start && (i-start)%n == 0 && !yield(v) {
				return
			}
			i++
		}
	}
}

// Count yields start, start+step, start+2*step, ... without end.
func Count[T Real](start, step T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := start; ; v += step {
			if !yield(v) {
				return
			}
		}
	}
}

// Range yields the integers from start to end, both included.
func Range(start, end int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for v := start; v <= end; v++ {
			if !yield(v) {
				return
			}
		}
	}
}

// Arange yields values from start towards stop (excluded) spaced by step,
// counting down when stop < start.
func Arange(start, stop, step float64) iter.Seq[float64] {
	if step < 0 {
		step = -step
	}
	return func(yield func(float64) bool) {
		if stop < start {
			for v := start; v > stop; v -= step {
				if !yield(v) {
					return
				}
			}
			return
		}
		for v := start; v < stop; v += step {
			if !yield(v) {
				return
			}
		}
	}
}

// Linspace yields n values linearly interpolated between start and end,
// both included. When start equals end the value is repeated n times.
func Linspace(start, end float64, n int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if n == 1 || start == end {
			for i := 0; i < n; i++ {
				if !yield(start) {
					return
				}
			}
			return
		}
		step := (end - start) / float64(n-1)
		for i := 0; i < n; i++ {
			if !yield(start + float64(i)*step) {
				return
			}
		}
	}
}

// Repeat yields v n times, or forever when n is negative.
func Repeat[T any](v T, n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; n < 0 || i < n; i++ {
			if !yield(v) {
				return
			}
		}
	}
}

// CyclePrefix yields the prefix once and then repeats the cycle forever.
// It is the canonical generator for sequences with a known cycle structure:
// CyclePrefix([1,2,3], [4,5,6,7]) has cycle start 3 and length 4.
func CyclePrefix[T any](prefix, cycle []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range prefix {
			if !yield(v) {
				return
			}
		}
		if len(cycle) == 0 {
			return
		}
		for {
			for _, v := range cycle {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Iterate yields x0, f(x0), f(f(x0)), ... without end.
func Iterate[T any](f func(T) T, x0 T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := x0; ; v = f(v) {
			if !yield(v) {
				return
			}
		}
	}
}

// Map yields f applied to each element of s.
func Map[T, U any](s iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range s {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// Filter yields the elements of s for which pred is true.
func Filter[T any](s iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if pred(v) && !yield(v) {
				return
			}
		}
	}
}

// Accumulate yields the running reduction of s by f: the first element
// unchanged, then f(total, next) for each subsequent element.
func Accumulate[T any](s iter.Seq[T], f func(a, b T) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		first := true
		var total T
		for v := range s {
			if first {
				total, first = v, false
			} else {
				total = f(total, v)
			}
			if !yield(total) {
				return
			}
		}
	}
}

// Pairwise yields consecutive pairs (s0,s1), (s1,s2), ...
func Pairwise[T any](s iter.Seq[T]) iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		first := true
		var prev T
		for v := range s {
			if !first && !yield(prev, v) {
				return
			}
			prev, first = v, false
		}
	}
}

// Chunk yields successive slices of at most n elements. The final chunk may
// be shorter. Each yielded slice is freshly allocated.
func Chunk[T any](s iter.Seq[T], n int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		chunk := make([]T, 0, n)
		for v := range s {
			chunk = append(chunk, v)
			if len(chunk) == n {
				if !yield(chunk) {
					return
				}
				chunk = make([]T, 0, n)
			}
		}
		if len(chunk) > 0 {
			yield(chunk)
		}
	}
}

// Compress run-length encodes s, yielding each value together with the
// number of consecutive occurrences.
func Compress[T comparable](s iter.Seq[T]) iter.Seq2[T, int] {
	return func(yield func(T, int) bool) {
		count := 0
		var prev T
		for v := range s {
			if count > 0 && v == prev {
				count++
				continue
			}
			if count > 0 && !yield(prev, count) {
				return
			}
			prev, count = v, 1
		}
		if count > 0 {
			yield(prev, count)
		}
	}
}

// Unique collapses runs of consecutive equal elements to a single element:
// Unique of A A A B B C A A is A B C A.
func Unique[T comparable](s iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range Compress(s) {
			if !yield(v) {
				return
			}
		}
	}
}

// Occurrences counts how often each value appears in a finite sequence,
// preserving first-seen order.
func Occurrences[T comparable](s iter.Seq[T]) *orderedmap.OrderedMap[T, int] {
	m := orderedmap.NewOrderedMap[T, int]()
	for v := range s {
		n, _ := m.Get(v)
		m.Set(v, n+1)
	}
	return m
}

// First returns the first element of s, reporting false if s is empty.
func First[T any](s iter.Seq[T]) (T, bool) {
	for v := range s {
		return v, true
	}
	var zero T
	return zero, false
}

// Last returns the last element of a finite sequence.
func Last[T any](s iter.Seq[T]) (T, bool) {
	var last T
	found := false
	for v := range s {
		last, found = v, true
	}
	return last, found
}

// Nth returns the element at index n.
func Nth[T any](s iter.Seq[T], n int) (T, bool) {
	i := 0
	for v := range s {
		if i == n {
			return v, true
		}
		i++
	}
	var zero T
	return zero, false
}

// Len exhausts a finite sequence and returns its length.
func Len[T any](s iter.Seq[T]) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// Index returns the index of the first element equal to v.
func Index[T comparable](s iter.Seq[T], v T) (int, bool) {
	i := 0
	for x := range s {
		if x == v {
			return i, true
		}
		i++
	}
	return 0, false
}

// Filter2 partitions a finite sequence into the elements that satisfy pred
// and those that do not.
func Filter2[T any](s iter.Seq[T], pred func(T) bool) (yes, no []T) {
	for v := range s {
		if pred(v) {
			yes = append(yes, v)
		} else {
			no = append(no, v)
		}
	}
	return yes, no
}

// Quantify counts how many elements of a finite sequence satisfy pred.
func Quantify[T any](s iter.Seq[T], pred func(T) bool) int {
	n := 0
	for v := range s {
		if pred(v) {
			n++
		}
	}
	return n
}
