// Package anylistcontract provides a reusable behavioural suite for anylist.List.
//
// The suite is parametric in the element type, which lets the container
// semantics be verified against any type a host application stores in it.
package anylistcontract

import (
	"fmt"
	"testing"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"go.llib.dev/anylist"
)

// List covers the behaviour of anylist.List for the element type T:
// ordering, length bookkeeping, type checked retrieval, replacement and clearing.
//
// mk is expected to return an empty list that the suite may freely write.
func List[T any](mk contract.Make[*anylist.List], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	s.Test("smoke", func(t *testcase.T) {
		subject := mk(t)
		assert.Equal(t, 0, subject.Len())
		assert.True(t, subject.IsEmpty())

		v := c.makeElem(t)
		anylist.Append(subject, v)
		assert.Equal(t, 1, subject.Len())
		assert.False(t, subject.IsEmpty())

		got, ok := anylist.Lookup[T](subject, 0)
		assert.True(t, ok)
		assert.Equal(t, v, got)
	})

	s.Test("append affects length", func(t *testcase.T) {
		subject := mk(t)

		var exp int
		t.Random.Repeat(3, 7, func() {
			anylist.Append(subject, c.makeElem(t))
			exp++
			assert.Equal(t, exp, subject.Len())
		})
	})

	s.Test("append keeps insertion order", func(t *testcase.T) {
		var (
			subject  = mk(t)
			expected = c.makeElems(t)
		)
		anylist.Append(subject, expected...)
		assert.Equal(t, len(expected), subject.Len())
		for i, exp := range expected {
			got, ok := anylist.Lookup[T](subject, i)
			assert.True(t, ok)
			assert.Equal(t, exp, got)
		}
	})

	s.Test("prepend places the group at the beginning, in argument order", func(t *testcase.T) {
		var (
			subject  = mk(t)
			existing = c.makeElems(t)
			group    = c.makeElems(t)
		)
		anylist.Append(subject, existing...)

		anylist.Prepend(subject, group...)

		expected := append(append([]T{}, group...), existing...)
		assert.Equal(t, len(expected), subject.Len())
		for i, exp := range expected {
			got, ok := anylist.Lookup[T](subject, i)
			assert.True(t, ok)
			assert.Equal(t, exp, got)
		}
	})

	s.Test("lookup with the stored element type finds the element", func(t *testcase.T) {
		var (
			subject = mk(t)
			v       = c.makeElem(t)
		)
		anylist.Append(subject, v)

		got, ok := anylist.Lookup[T](subject, 0)
		assert.True(t, ok)
		assert.Equal(t, v, got)
	})

	s.Test("lookup with a different type reports a miss", func(t *testcase.T) {
		var (
			subject = mk(t)
			v       = c.makeElem(t)
		)
		anylist.Append(subject, v)

		_, ok := anylist.Lookup[typeProbe](subject, 0)
		assert.False(t, ok)

		_, ok = anylist.LookupPtr[typeProbe](subject, 0)
		assert.False(t, ok)

		got, ok := anylist.Lookup[T](subject, 0)
		assert.True(t, ok, "a failed lookup must not affect the element")
		assert.Equal(t, v, got)
	})

	s.Test("lookup out of range reports a miss", func(t *testcase.T) {
		subject := mk(t)
		t.Random.Repeat(1, 3, func() {
			anylist.Append(subject, c.makeElem(t))
		})

		_, ok := anylist.Lookup[T](subject, subject.Len())
		assert.False(t, ok)

		_, ok = anylist.Lookup[T](subject, subject.Len()+t.Random.IntBetween(1, 42))
		assert.False(t, ok)

		_, ok = anylist.Lookup[T](subject, t.Random.IntBetween(-42, -1))
		assert.False(t, ok)
	})

	s.Test("replace swaps the element at the index", func(t *testcase.T) {
		var (
			subject  = mk(t)
			elements = c.makeElems(t)
		)
		anylist.Append(subject, elements...)
		var (
			index       = t.Random.IntN(len(elements))
			replacement = random.Unique(func() T { return c.makeElem(t) }, elements[index])
		)

		assert.NoError(t, anylist.Replace(subject, index, replacement))

		assert.Equal(t, len(elements), subject.Len())
		got, ok := anylist.Lookup[T](subject, index)
		assert.True(t, ok)
		assert.Equal(t, replacement, got)
		for i, exp := range elements {
			if i == index {
				continue
			}
			got, ok := anylist.Lookup[T](subject, i)
			assert.True(t, ok, "other elements are expected to be unaffected")
			assert.Equal(t, exp, got)
		}
	})

	s.Test("replace accepts an element of a different type", func(t *testcase.T) {
		var (
			subject = mk(t)
			v       = c.makeElem(t)
		)
		anylist.Append(subject, v)

		probe := typeProbe{V: t.Random.String()}
		assert.NoError(t, anylist.Replace(subject, 0, probe))

		_, ok := anylist.Lookup[T](subject, 0)
		assert.False(t, ok, "the previous type is expected to be forgotten")
		got, ok := anylist.Lookup[typeProbe](subject, 0)
		assert.True(t, ok)
		assert.Equal(t, probe, got)
	})

	s.Test("replace with an invalid index fails without mutating", func(t *testcase.T) {
		subject := mk(t)
		t.Random.Repeat(1, 3, func() {
			anylist.Append(subject, c.makeElem(t))
		})
		before := subject.ToSlice()

		err := anylist.Replace(subject, subject.Len(), c.makeElem(t))
		assert.ErrorIs(t, err, anylist.ErrIndexOutOfRange)

		err = anylist.Replace(subject, t.Random.IntBetween(-42, -1), c.makeElem(t))
		assert.ErrorIs(t, err, anylist.ErrIndexOutOfRange)

		assert.Equal(t, before, subject.ToSlice())
	})

	s.Test("pointer lookup allows updating the element in place", func(t *testcase.T) {
		var (
			subject = mk(t)
			v       = c.makeElem(t)
		)
		anylist.Append(subject, v)
		upd := random.Unique(func() T { return c.makeElem(t) }, v)

		ptr, ok := anylist.LookupPtr[T](subject, 0)
		assert.True(t, ok)
		assert.Equal(t, v, *ptr)

		*ptr = upd

		got, ok := anylist.Lookup[T](subject, 0)
		assert.True(t, ok)
		assert.Equal(t, upd, got)
	})

	s.Test("clear empties the list", func(t *testcase.T) {
		subject := mk(t)
		t.Random.Repeat(1, 5, func() {
			anylist.Append(subject, c.makeElem(t))
		})

		subject.Clear()

		assert.Equal(t, 0, subject.Len())
		assert.True(t, subject.IsEmpty())
		_, ok := anylist.Lookup[T](subject, 0)
		assert.False(t, ok)

		subject.Clear()
		assert.Equal(t, 0, subject.Len(), "clearing is expected to be idempotent")
	})

	s.Test("iteration is ordered and restartable", func(t *testcase.T) {
		subject := mk(t)
		t.Random.Repeat(3, 7, func() {
			anylist.Append(subject, c.makeElem(t))
		})

		i := subject.Iter()
		fst := iterkit.Collect2KV(i)
		snd := iterkit.Collect2KV(i)

		assert.NotEmpty(t, fst)
		assert.Equal(t, fst, snd, "a second pass is expected to see the same elements")
		for n, kv := range fst {
			assert.Equal(t, n, kv.K)
		}
		assert.Equal(t, subject.Len(), len(fst))
	})

	return s.AsSuite(fmt.Sprintf("List[%s]", reflectkit.TypeOf[T]().String()))
}

// typeProbe is the guaranteed-mismatching element type of the suite.
// Being unexported, it can never be the caller-chosen T.
type typeProbe struct {
	V string
}

type Option[T any] interface {
	option.Option[Config[T]]
}

type Config[T any] struct {
	// MakeElem creates an element value for the suite.
	// Values should differ between calls, or the ordering expectations turn vacuous.
	MakeElem func(testing.TB) T
}

var _ Option[any] = Config[any]{}

func (c Config[T]) Configure(o *Config[T]) {
	o.MakeElem = zerokit.Coalesce(c.MakeElem, o.MakeElem)
}

func (c Config[T]) makeElem(tb testing.TB) T {
	return zerokit.Coalesce(c.MakeElem, defaultMakeElem[T])(tb)
}

func (c Config[T]) makeElems(tb testing.TB) []T {
	t := testcase.ToT(&tb)
	return random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeElem(t) }, random.UniqueValues)
}

func defaultMakeElem[T any](tb testing.TB) T {
	t := testcase.ToT(&tb)
	return t.Random.Make(reflectkit.TypeOf[T]()).(T)
}
