package seq

import "errors"

// ErrExhausted is returned when a Keep cursor is advanced past the end of
// its source.
var ErrExhausted = errors.New("sequence exhausted")

// Keep is a cursor that remembers the most recently produced value.
// Immediately after construction the current value is the first element of
// the source (eager one-element prefetch).
type Keep[T any] struct {
	src       Puller[T]
	cur       T
	exhausted bool
}

// NewKeep wraps a puller with one element of memory. It returns ErrExhausted
// if the source is empty.
func NewKeep[T any](src Puller[T]) (*Keep[T], error) {
	v, ok := src.Next()
	if !ok {
		return nil, ErrExhausted
	}
	return &Keep[T]{src: src, cur: v}, nil
}

// Current returns the most recently produced value without advancing.
func (k *Keep[T]) Current() T {
	return k.cur
}

// Advance pulls the next value from the source and makes it current.
// Once the source is drained every subsequent call returns ErrExhausted and
// Current keeps its last value.
func (k *Keep[T]) Advance() error {
	if k.exhausted {
		return ErrExhausted
	}
	v, ok := k.src.Next()
	if !ok {
		k.exhausted = true
		return ErrExhausted
	}
	k.cur = v
	return nil
}

// Exhausted reports whether the underlying source has been drained.
func (k *Keep[T]) Exhausted() bool {
	return k.exhausted
}

// strided skips over elements of a cursor: the first Next call discards skip
// elements, every call after that discards stride-1. A skip of 1 with a
// stride of 2 yields elements 1, 3, 5, ... of the underlying sequence.
type strided[T any] struct {
	src     Puller[T]
	stride  int
	pending int
}

func newStrided[T any](src Puller[T], skip, stride int) *strided[T] {
	return &strided[T]{src: src, stride: stride, pending: skip}
}

func (s *strided[T]) Next() (T, bool) {
	for ; s.pending > 0; s.pending-- {
		if _, ok := s.src.Next(); !ok {
			var zero T
			return zero, false
		}
	}
	s.pending = s.stride - 1
	return s.src.Next()
}
