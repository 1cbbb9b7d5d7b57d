package seq

import "iter"

// Puller is the pull side of a sequence: repeated calls to Next produce
// consecutive values until the sequence is drained.
type Puller[T any] interface {
	Next() (T, bool)
}

// Cursor is an independently advanceable read position over a sequence
// shared with sibling cursors created by Tee or Clone. Advancing one cursor
// never affects its siblings: elements pulled by a faster cursor are buffered
// until the slowest outstanding cursor has consumed them.
//
// Cursors are not safe for concurrent use; callers sharing a fan-out across
// goroutines must synchronize externally.
type Cursor[T any] struct {
	f   *fanout[T]
	pos int // absolute index of the next element this cursor will read
}

// fanout owns the single shared buffer behind a group of cursors.
// buf holds the elements [base, base+len(buf)) of the logical sequence.
type fanout[T any] struct {
	next    func() (T, bool)
	stop    func()
	buf     []T
	base    int
	cursors []*Cursor[T]
	done    bool
}

// Tee splits a drain-once sequence into n independent cursors that each
// observe the full sequence from the current point forward. The source is
// pulled at most once per element; memory grows only with the gap between
// the fastest and the slowest cursor.
func Tee[T any](s iter.Seq[T], n int) []*Cursor[T] {
	if n < 1 {
		n = 1
	}
	next, stop := iter.Pull(s)
	f := &fanout[T]{next: next, stop: stop}
	cursors := make([]*Cursor[T], n)
	for i := range cursors {
		cursors[i] = &Cursor[T]{f: f}
	}
	f.cursors = append(f.cursors, cursors...)
	return cursors
}

// Next returns the next element of the sequence as seen from this cursor.
// It reports false once the underlying source is drained.
func (c *Cursor[T]) Next() (T, bool) {
	f := c.f
	if c.pos < f.base+len(f.buf) {
		v := f.buf[c.pos-f.base]
		c.pos++
		f.release()
		return v, true
	}
	if f.done {
		var zero T
		return zero, false
	}
	v, ok := f.next()
	if !ok {
		f.done = true
		f.stop()
		var zero T
		return zero, false
	}
	f.buf = append(f.buf, v)
	c.pos++
	f.release()
	return v, true
}

// Clone derives a sibling cursor positioned exactly where c is now.
// Both cursors observe the same subsequent values in the same order.
func (c *Cursor[T]) Clone() *Cursor[T] {
	nc := &Cursor[T]{f: c.f, pos: c.pos}
	c.f.cursors = append(c.f.cursors, nc)
	return nc
}

// Stop detaches the cursor from its fan-out so that it no longer pins
// buffered elements. Reading a stopped cursor reports false.
func (c *Cursor[T]) Stop() {
	f := c.f
	for i, other := range f.cursors {
		if other == c {
			f.cursors = append(f.cursors[:i], f.cursors[i+1:]...)
			break
		}
	}
	c.f = &fanout[T]{done: true}
	f.release()
}

// Buffered returns the number of elements currently retained by the shared
// buffer behind this cursor's fan-out.
func (c *Cursor[T]) Buffered() int {
	return len(c.f.buf)
}

// release drops every buffered element already consumed by all cursors.
func (f *fanout[T]) release() {
	if len(f.cursors) == 0 {
		f.buf = f.buf[:0]
		return
	}
	min := f.cursors[0].pos
	for _, c := range f.cursors[1:] {
		if c.pos < min {
			min = c.pos
		}
	}
	if min > f.base {
		n := min - f.base
		f.buf = append(f.buf[:0], f.buf[n:]...)
		f.base = min
	}
}
