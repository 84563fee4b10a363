package bitset

import (
	"slices"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestRoundTripInts(t *testing.T) {
	c := qt.New(t)
	b := Ints()
	for _, x := range []int{0, 1, 63, 64, 1000} {
		c.Assert(b.FromInt(b.ToInt(x)), qt.Equals, x)
	}
}

func TestRoundTripRunes(t *testing.T) {
	c := qt.New(t)
	b := Runes()
	for _, r := range "aζ9é" {
		c.Assert(b.FromInt(b.ToInt(r)), qt.Equals, r)
	}
	c.Assert(slices.Collect(b.Of('c', 'a', 'b').All()), qt.DeepEquals, []rune{'a', 'b', 'c'})
}

func TestRoundTripBytes(t *testing.T) {
	c := qt.New(t)
	b := Bytes()
	for i := 0; i < 256; i++ {
		c.Assert(b.ToInt(b.FromInt(i)), qt.Equals, i)
	}
	s := b.Of(255, 0)
	c.Assert(s.Min(), qt.Equals, byte(0))
	c.Assert(s.Max(), qt.Equals, byte(255))
}

func TestRoundTripInt16s(t *testing.T) {
	c := qt.New(t)
	b := Int16s()
	for _, x := range []int16{0, 7, 32767} {
		c.Assert(b.FromInt(b.ToInt(x)), qt.Equals, x)
	}
	c.Assert(func() { b.Of(-1) }, qt.PanicMatches, `bitset: element encodes to a negative value`)
}

func TestRoundTripInt64s(t *testing.T) {
	c := qt.New(t)
	b := Int64s()
	c.Assert(slices.Collect(b.Of(300, 2).All()), qt.DeepEquals, []int64{2, 300})
}

func TestEnumBuilder(t *testing.T) {
	c := qt.New(t)
	days := Enum("mon", "tue", "wed", "thu", "fri", "sat", "sun")

	c.Assert(days.ToInt("mon"), qt.Equals, 0)
	c.Assert(days.ToInt("sun"), qt.Equals, 6)
	c.Assert(days.FromInt(2), qt.Equals, "wed")

	// Iteration follows declaration order, not string order.
	s := days.Of("fri", "mon", "wed")
	c.Assert(slices.Collect(s.All()), qt.DeepEquals, []string{"mon", "wed", "fri"})
	c.Assert(s.Min(), qt.Equals, "mon")
	c.Assert(s.Max(), qt.Equals, "fri")

	// A value outside the constant list encodes to -1 and is
	// rejected at insertion time.
	c.Assert(days.ToInt("noday"), qt.Equals, -1)
	c.Assert(func() { s.Add("noday") }, qt.PanicMatches, `bitset: element encodes to a negative value`)
}

func TestCompare(t *testing.T) {
	c := qt.New(t)
	days := Enum("mon", "tue", "wed")
	c.Assert(days.Compare("mon", "wed") < 0, qt.IsTrue)
	c.Assert(days.Compare("wed", "mon") > 0, qt.IsTrue)
	c.Assert(days.Compare("tue", "tue"), qt.Equals, 0)
}

func TestCustomBuilder(t *testing.T) {
	c := qt.New(t)
	// Even numbers only, packed densely.
	evens := New(
		func(i int) int { return i / 2 },
		func(i int) int { return i * 2 },
	)
	s := evens.Of(8, 2, 4)
	c.Assert(slices.Collect(s.All()), qt.DeepEquals, []int{2, 4, 8})
	c.Assert(s.Max(), qt.Equals, 8)
	c.Assert(s.words.(oneWord), qt.Equals, oneWord(1<<1|1<<2|1<<4))
}

func TestOfFastPaths(t *testing.T) {
	c := qt.New(t)
	b := Ints()
	c.Assert(b.Of(5).words.(oneWord), qt.Equals, oneWord(1<<5))
	c.Assert(b.Of(100).words.(twoWords), qt.Equals, twoWords{0, 1 << 36})
	c.Assert(b.Of(300).words.count(), qt.Equals, 5)
	c.Assert(b.Of().IsEmpty(), qt.IsTrue)
}

func TestOfCollapsesDuplicates(t *testing.T) {
	c := qt.New(t)
	s := Ints().Of(3, 3, 3, 7)
	c.Assert(s.Len(), qt.Equals, 2)
}

func TestOfSeq(t *testing.T) {
	c := qt.New(t)
	s := Ints().OfSeq(slices.Values([]int{3, 65, 3, 200}))
	c.Assert(s.Len(), qt.Equals, 3)
	c.Assert(func() { Ints().OfSeq(nil) }, qt.PanicMatches, `bitset: OfSeq called with nil sequence`)
}

func TestTabulate(t *testing.T) {
	c := qt.New(t)
	s := Ints().Tabulate(5, func(i int) int { return i * i })
	c.Assert(slices.Collect(s.All()), qt.DeepEquals, []int{0, 1, 4, 9, 16})

	// Duplicates collapse, as with any set.
	s = Ints().Tabulate(10, func(i int) int { return i / 2 })
	c.Assert(s.Len(), qt.Equals, 5)

	c.Assert(Ints().Tabulate(0, func(i int) int { return i }).IsEmpty(), qt.IsTrue)
	c.Assert(func() { Ints().Tabulate(3, nil) }, qt.PanicMatches, `bitset: Tabulate called with nil function`)
}

func TestFill(t *testing.T) {
	c := qt.New(t)
	n := 0
	s := Ints().Fill(4, func() int {
		n += 10
		return n
	})
	c.Assert(slices.Collect(s.All()), qt.DeepEquals, []int{10, 20, 30, 40})
	c.Assert(func() { Ints().Fill(3, nil) }, qt.PanicMatches, `bitset: Fill called with nil function`)
}

func TestNewNilPanics(t *testing.T) {
	c := qt.New(t)
	id := func(i int) int { return i }
	c.Assert(func() { New[int](nil, id) }, qt.PanicMatches, `bitset: New called with nil toInt function`)
	c.Assert(func() { New[int](id, nil) }, qt.PanicMatches, `bitset: New called with nil fromInt function`)
}
