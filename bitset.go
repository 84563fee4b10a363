// Package bitset implements an immutable sorted set that stores
// its membership as packed bits rather than as boxed elements.
//
// A Set[T] can hold any element type that a [Builder] can map to the
// non-negative integers; the storage cost is proportional to the
// largest encoded value, and a membership test is a single word
// operation. Every structural operation returns a new Set and leaves
// the receiver untouched, so sets can be shared freely between
// goroutines without locking.
package bitset

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

const (
	addressBits = 6
	bitsPerWord = 1 << addressBits
)

// words is the storage capability shared by the three set layouts.
// Reads beyond the stored range return zero; expand never aliases
// the receiver's storage.
type words interface {
	// count returns the number of stored words.
	count() int
	// word returns the i'th 64-bit word, or zero if i >= count().
	word(i int) uint64
	// expand returns a fresh word slice of at least n words
	// holding the stored words as a prefix, zero-padded beyond.
	expand(n int) []uint64
}

// oneWord holds sets whose encoded values all fall in [0, 64).
// The empty set is oneWord(0).
type oneWord uint64

func (w oneWord) count() int { return 1 }

func (w oneWord) word(i int) uint64 {
	if i == 0 {
		return uint64(w)
	}
	return 0
}

func (w oneWord) expand(n int) []uint64 {
	ws := make([]uint64, max(n, 1))
	ws[0] = uint64(w)
	return ws
}

// twoWords holds sets whose encoded values all fall in [0, 128)
// with at least one value in [64, 128).
type twoWords struct {
	w0, w1 uint64
}

func (w twoWords) count() int { return 2 }

func (w twoWords) word(i int) uint64 {
	switch i {
	case 0:
		return w.w0
	case 1:
		return w.w1
	}
	return 0
}

func (w twoWords) expand(n int) []uint64 {
	ws := make([]uint64, max(n, 2))
	ws[0] = w.w0
	ws[1] = w.w1
	return ws
}

// manyWords holds all larger sets. It is always at least three
// words long and its last word is never zero.
type manyWords []uint64

func (w manyWords) count() int { return len(w) }

func (w manyWords) word(i int) uint64 {
	if i < len(w) {
		return w[i]
	}
	return 0
}

func (w manyWords) expand(n int) []uint64 {
	ws := make([]uint64, max(n, len(w)))
	copy(ws, w)
	return ws
}

// Set is an immutable sorted set of elements of type T, ordered by
// their encoded integer values. The zero value of Set is not valid;
// sets are created through a [Builder].
type Set[T any] struct {
	builder Builder[T]
	words   words
}

// fromWords wraps ws in the smallest layout that can hold it and is
// the only constructor used after a mutation. ws must be freshly
// allocated and, when a bit has been cleared, already shrunk.
func fromWords[T any](b Builder[T], ws []uint64) Set[T] {
	switch len(ws) {
	case 0:
		return Set[T]{builder: b, words: oneWord(0)}
	case 1:
		return Set[T]{builder: b, words: oneWord(ws[0])}
	case 2:
		return Set[T]{builder: b, words: twoWords{ws[0], ws[1]}}
	}
	return Set[T]{builder: b, words: manyWords(ws)}
}

// shrink drops trailing all-zero words so that the minimal
// layout can be re-derived.
func shrink(ws []uint64) []uint64 {
	n := len(ws)
	for n > 0 && ws[n-1] == 0 {
		n--
	}
	return ws[:n]
}

func setBit(ws []uint64, e int)   { ws[e>>addressBits] |= 1 << (uint(e) & (bitsPerWord - 1)) }
func clearBit(ws []uint64, e int) { ws[e>>addressBits] &^= 1 << (uint(e) & (bitsPerWord - 1)) }

// Contains reports whether x is a member of s.
// It panics if x encodes to a negative value.
func (s Set[T]) Contains(x T) bool {
	e := s.builder.toInt(x)
	if e < 0 {
		panic("bitset: element encodes to a negative value")
	}
	return s.words.word(e>>addressBits)&(1<<(uint(e)&(bitsPerWord-1))) != 0
}

// Add returns s with x added. If x is already a member,
// s itself is returned. It panics if x encodes to a
// negative value.
func (s Set[T]) Add(x T) Set[T] {
	if s.Contains(x) {
		return s
	}
	e := s.builder.toInt(x)
	ws := s.words.expand(1 + e>>addressBits)
	setBit(ws, e)
	return fromWords(s.builder, ws)
}

// AddSeq returns s with every element of xs added.
// It panics if any element encodes to a negative value,
// before any result is built.
func (s Set[T]) AddSeq(xs iter.Seq[T]) Set[T] {
	if xs == nil {
		panic("bitset: AddSeq called with nil sequence")
	}
	var elems []int
	maxElem := 0
	for x := range xs {
		e := s.builder.toInt(x)
		if e < 0 {
			panic("bitset: element encodes to a negative value")
		}
		elems = append(elems, e)
		maxElem = max(maxElem, e)
	}
	if len(elems) == 0 {
		return s
	}
	// Size the copy once from the largest element rather than
	// growing it again on every insert.
	ws := s.words.expand(1 + maxElem>>addressBits)
	for _, e := range elems {
		setBit(ws, e)
	}
	return fromWords(s.builder, ws)
}

// Remove returns s with x removed. If x is not a member,
// s itself is returned.
func (s Set[T]) Remove(x T) Set[T] {
	if !s.Contains(x) {
		return s
	}
	e := s.builder.toInt(x)
	ws := s.words.expand(s.words.count())
	clearBit(ws, e)
	return fromWords(s.builder, shrink(ws))
}

// RemoveSeq returns s with every element of xs removed.
// Unlike AddSeq, elements that encode to a value outside the
// stored range, negative ones included, were never members
// and are silently skipped.
func (s Set[T]) RemoveSeq(xs iter.Seq[T]) Set[T] {
	if xs == nil {
		panic("bitset: RemoveSeq called with nil sequence")
	}
	ws := s.words.expand(s.words.count())
	n := len(ws) << addressBits
	for x := range xs {
		if e := s.builder.toInt(x); 0 <= e && e < n {
			clearBit(ws, e)
		}
	}
	return fromWords(s.builder, shrink(ws))
}

// Len returns the number of members in s.
func (s Set[T]) Len() int {
	n := 0
	for i := range s.words.count() {
		n += bits.OnesCount64(s.words.word(i))
	}
	return n
}

// IsEmpty reports whether s has no members.
func (s Set[T]) IsEmpty() bool {
	// Canonical form: only the one-word layout can be all zero.
	return s.words.count() == 1 && s.words.word(0) == 0
}

// Min returns the member with the smallest encoded value.
// It panics if s is empty.
func (s Set[T]) Min() T {
	for i, n := 0, s.words.count(); i < n; i++ {
		if w := s.words.word(i); w != 0 {
			return s.builder.fromInt(i<<addressBits + bits.TrailingZeros64(w))
		}
	}
	panic("bitset: Min called on empty set")
}

// Max returns the member with the largest encoded value.
// It panics if s is empty.
func (s Set[T]) Max() T {
	n := s.words.count()
	if w := s.words.word(n - 1); w != 0 {
		return s.builder.fromInt(n<<addressBits - 1 - bits.LeadingZeros64(w))
	}
	panic("bitset: Max called on empty set")
}

// RemoveMin returns s without its smallest member.
// It panics if s is empty.
func (s Set[T]) RemoveMin() Set[T] {
	if s.IsEmpty() {
		panic("bitset: RemoveMin called on empty set")
	}
	return s.Remove(s.Min())
}

// RemoveMax returns s without its largest member.
// It panics if s is empty.
func (s Set[T]) RemoveMax() Set[T] {
	if s.IsEmpty() {
		panic("bitset: RemoveMax called on empty set")
	}
	return s.Remove(s.Max())
}

// All returns an iterator over the members of s in ascending order
// of their encoded values. The sequence may be ranged over any
// number of times; each range scans from the smallest member again.
func (s Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i, n := 0, s.words.count(); i < n; i++ {
			for w := s.words.word(i); w != 0; w &= w - 1 {
				if !yield(s.builder.fromInt(i<<addressBits + bits.TrailingZeros64(w))) {
					return
				}
			}
		}
	}
}

// Builder returns the builder that created s, so that callers can
// rebuild a set of the same element type from any sequence.
func (s Set[T]) Builder() Builder[T] {
	return s.builder
}

// Equal reports whether s and t contain the same members.
// Canonical form guarantees that equal sets have identical word
// sequences, so no element decoding is needed.
func (s Set[T]) Equal(t Set[T]) bool {
	n := s.words.count()
	if n != t.words.count() {
		return false
	}
	for i := range n {
		if s.words.word(i) != t.words.word(i) {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer, listing the members in
// ascending order.
func (s Set[T]) String() string {
	var buf strings.Builder
	buf.WriteString("BitSet(")
	first := true
	for x := range s.All() {
		if !first {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%v", x)
		first = false
	}
	buf.WriteString(")")
	return buf.String()
}
