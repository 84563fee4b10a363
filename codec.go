package bitset

import (
	"cmp"
	"iter"
)

// A Builder binds an element type T to the non-negative integers
// that index bits in a [Set], and carries every factory operation
// that creates sets of that type. The two functions must be mutually
// inverse over the elements the caller will ever insert; an element
// that encodes to a negative value is rejected when it is inserted,
// not when the builder is made.
//
// A Builder is a pure value: it is created once per element type and
// shared by every set built from it.
type Builder[T any] struct {
	toInt   func(T) int
	fromInt func(int) T
}

// New returns a builder using the given encoding pair.
// It panics if either function is nil.
func New[T any](toInt func(T) int, fromInt func(int) T) Builder[T] {
	if toInt == nil {
		panic("bitset: New called with nil toInt function")
	}
	if fromInt == nil {
		panic("bitset: New called with nil fromInt function")
	}
	return Builder[T]{toInt: toInt, fromInt: fromInt}
}

// Ints returns the identity builder for int elements.
func Ints() Builder[int] {
	return New(
		func(i int) int { return i },
		func(i int) int { return i },
	)
}

// Int64s returns a builder for int64 elements.
func Int64s() Builder[int64] {
	return New(
		func(i int64) int { return int(i) },
		func(i int) int64 { return int64(i) },
	)
}

// Int16s returns a builder for int16 elements.
func Int16s() Builder[int16] {
	return New(
		func(i int16) int { return int(i) },
		func(i int) int16 { return int16(i) },
	)
}

// Bytes returns a builder for byte elements.
func Bytes() Builder[byte] {
	return New(
		func(b byte) int { return int(b) },
		func(i int) byte { return byte(i) },
	)
}

// Runes returns a builder for rune elements.
func Runes() Builder[rune] {
	return New(
		func(r rune) int { return int(r) },
		func(i int) rune { return rune(i) },
	)
}

// Enum returns a builder for a closed list of constants, encoding
// each value as its position in values. A value outside the list
// encodes to -1 and is therefore rejected at insertion time.
func Enum[T comparable](values ...T) Builder[T] {
	table := make([]T, len(values))
	copy(table, values)
	ordinal := make(map[T]int, len(values))
	for i, v := range table {
		if _, ok := ordinal[v]; !ok {
			ordinal[v] = i
		}
	}
	return New(
		func(v T) int {
			i, ok := ordinal[v]
			if !ok {
				return -1
			}
			return i
		},
		func(i int) T { return table[i] },
	)
}

// ToInt returns the encoded value of x. The result is negative
// exactly when x cannot be a member of a set built by b.
func (b Builder[T]) ToInt(x T) int {
	return b.toInt(x)
}

// FromInt returns the element encoded by i.
func (b Builder[T]) FromInt(i int) T {
	return b.fromInt(i)
}

// Compare orders two elements by their encoded values. This is the
// order in which [Set.All] yields members.
func (b Builder[T]) Compare(x, y T) int {
	return cmp.Compare(b.toInt(x), b.toInt(y))
}

// Empty returns the empty set.
func (b Builder[T]) Empty() Set[T] {
	return Set[T]{builder: b, words: oneWord(0)}
}

// Of returns the set of the given elements.
func (b Builder[T]) Of(xs ...T) Set[T] {
	switch len(xs) {
	case 0:
		return b.Empty()
	case 1:
		return b.of1(xs[0])
	}
	var elems []int
	maxElem := 0
	for _, x := range xs {
		e := b.toInt(x)
		if e < 0 {
			panic("bitset: element encodes to a negative value")
		}
		elems = append(elems, e)
		maxElem = max(maxElem, e)
	}
	ws := make([]uint64, 1+maxElem>>addressBits)
	for _, e := range elems {
		setBit(ws, e)
	}
	return fromWords(b, ws)
}

// of1 builds a single-element set directly in its final layout
// when the encoded value is small.
func (b Builder[T]) of1(x T) Set[T] {
	switch e := b.toInt(x); {
	case e < 0:
		panic("bitset: element encodes to a negative value")
	case e < bitsPerWord:
		return Set[T]{builder: b, words: oneWord(1 << uint(e))}
	case e < 2*bitsPerWord:
		return Set[T]{builder: b, words: twoWords{0, 1 << (uint(e) - bitsPerWord)}}
	default:
		return b.Empty().Add(x)
	}
}

// OfSeq returns the set of the elements of xs.
func (b Builder[T]) OfSeq(xs iter.Seq[T]) Set[T] {
	if xs == nil {
		panic("bitset: OfSeq called with nil sequence")
	}
	return b.Empty().AddSeq(xs)
}

// Tabulate returns the set of f(0), f(1), ..., f(n-1).
// Duplicates collapse, as with any set.
func (b Builder[T]) Tabulate(n int, f func(int) T) Set[T] {
	if f == nil {
		panic("bitset: Tabulate called with nil function")
	}
	return b.OfSeq(func(yield func(T) bool) {
		for i := range n {
			if !yield(f(i)) {
				return
			}
		}
	})
}

// Fill returns the set of n values sampled from f.
func (b Builder[T]) Fill(n int, f func() T) Set[T] {
	if f == nil {
		panic("bitset: Fill called with nil function")
	}
	return b.Tabulate(n, func(int) T { return f() })
}
