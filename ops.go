package bitset

import "iter"

// The operations in this file never touch the packed words: they are
// built entirely on the ascending iterator and the builder's rebuild
// factories, so they would work unchanged for any sorted-set
// representation.

// Union returns the set of members of either s or t.
func (s Set[T]) Union(t Set[T]) Set[T] {
	if t.IsEmpty() {
		return s
	}
	return s.AddSeq(t.All())
}

// Intersect returns the set of members of both s and t.
func (s Set[T]) Intersect(t Set[T]) Set[T] {
	if s.IsEmpty() || t.IsEmpty() {
		return s.builder.Empty()
	}
	return s.Filter(t.Contains)
}

// Diff returns the set of members of s that are not members of t.
func (s Set[T]) Diff(t Set[T]) Set[T] {
	if t.IsEmpty() {
		return s
	}
	return s.RemoveSeq(t.All())
}

// Filter returns the set of members for which pred is true.
// If every member passes, s itself is returned.
func (s Set[T]) Filter(pred func(T) bool) Set[T] {
	if pred == nil {
		panic("bitset: Filter called with nil predicate")
	}
	r := s.builder.OfSeq(filterSeq(s.All(), pred))
	if r.Len() == s.Len() {
		return s
	}
	return r
}

// Partition splits s into the members for which pred is true
// and the members for which it is false.
func (s Set[T]) Partition(pred func(T) bool) (pass, fail Set[T]) {
	if pred == nil {
		panic("bitset: Partition called with nil predicate")
	}
	var yes, no []T
	for x := range s.All() {
		if pred(x) {
			yes = append(yes, x)
		} else {
			no = append(no, x)
		}
	}
	return s.builder.Of(yes...), s.builder.Of(no...)
}

// Take returns the set of the n smallest members of s.
func (s Set[T]) Take(n int) Set[T] {
	if n <= 0 {
		return s.builder.Empty()
	}
	if n >= s.Len() {
		return s
	}
	var xs []T
	for x := range s.All() {
		xs = append(xs, x)
		if len(xs) == n {
			break
		}
	}
	return s.builder.Of(xs...)
}

// Drop returns s without its n smallest members.
func (s Set[T]) Drop(n int) Set[T] {
	if n <= 0 {
		return s
	}
	if n >= s.Len() {
		return s.builder.Empty()
	}
	var xs []T
	i := 0
	for x := range s.All() {
		if i >= n {
			xs = append(xs, x)
		}
		i++
	}
	return s.builder.Of(xs...)
}

// TakeWhile returns the longest ascending prefix of members for
// which pred is true. If that is all of s, s itself is returned.
func (s Set[T]) TakeWhile(pred func(T) bool) Set[T] {
	if pred == nil {
		panic("bitset: TakeWhile called with nil predicate")
	}
	var xs []T
	for x := range s.All() {
		if !pred(x) {
			break
		}
		xs = append(xs, x)
	}
	if len(xs) == s.Len() {
		return s
	}
	return s.builder.Of(xs...)
}

// DropWhile returns s without the longest ascending prefix of
// members for which pred is true.
func (s Set[T]) DropWhile(pred func(T) bool) Set[T] {
	if pred == nil {
		panic("bitset: DropWhile called with nil predicate")
	}
	var xs []T
	dropping := true
	for x := range s.All() {
		if dropping && pred(x) {
			continue
		}
		dropping = false
		xs = append(xs, x)
	}
	if len(xs) == s.Len() {
		return s
	}
	return s.builder.Of(xs...)
}

// Replace returns s with from replaced by to. A set holds at most
// one occurrence, so this is remove-then-add when from is present;
// otherwise s itself is returned.
func (s Set[T]) Replace(from, to T) Set[T] {
	if !s.Contains(from) {
		return s
	}
	return s.Remove(from).Add(to)
}

func filterSeq[T any](xs iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := range xs {
			if pred(x) && !yield(x) {
				return
			}
		}
	}
}
