// Package anylist provides an ordered container for values of mixed concrete types.
//
// A List stores each value behind a pointer box whose dynamic type records
// the value's own type. Positional access is type-checked: Lookup and
// LookupPtr succeed only when the requested type is identical to the type
// the value was stored with. There is no numeric widening and no
// interface-satisfaction based matching: a value stored as int32 is not
// visible as int64 or as float64.
//
// The zero value of List is an empty list, ready to use.
//
// List is not safe for concurrent use. Concurrent readers are fine as long
// as no write runs, where a write is Append, Prepend, Replace, Clear, or
// mutation through a LookupPtr result. Callers who share a List across
// goroutines must serialise writes themselves.
package anylist

import (
	"iter"
	"reflect"
	"slices"

	"go.llib.dev/frameless/pkg/errorkit"
)

// ErrIndexOutOfRange is returned by Replace when the index doesn't point to an existing element.
const ErrIndexOutOfRange errorkit.Error = "index out of range"

// List is an ordered sequence of independently typed values.
// Indexes are dense, from zero to Len()-1.
type List struct {
	slots []slot
}

// slot owns a single stored value through its box.
// The box is an *T stored as any, with T being the type the value was inserted as.
// A nil box marks a value that was inserted as an untyped nil.
type slot struct {
	box any
}

func (s slot) value() any {
	if s.box == nil {
		return nil
	}
	return reflect.ValueOf(s.box).Elem().Interface()
}

func (s slot) typeOf() reflect.Type {
	if s.box == nil {
		return nil
	}
	return reflect.TypeOf(s.box).Elem()
}

// New returns an empty List.
func New() *List {
	return &List{}
}

// Of creates a List from the given values.
//
// Each value is stored under its dynamic type. If a stricter static type is
// required, for example storing a value as an interface type, use Append,
// which records the type of its call site.
func Of(vs ...any) *List {
	var l List
	l.slots = make([]slot, 0, len(vs))
	for _, v := range vs {
		l.slots = append(l.slots, boxDynamic(v))
	}
	return &l
}

func boxDynamic(v any) slot {
	if v == nil {
		return slot{}
	}
	box := reflect.New(reflect.TypeOf(v))
	box.Elem().Set(reflect.ValueOf(v))
	return slot{box: box.Interface()}
}

// Append adds values to the end of the list, in argument order.
// The values are stored as type T, and only Lookup[T] / LookupPtr[T] will see them.
// Indexes of elements already in the list are unaffected.
func Append[T any](l *List, vs ...T) {
	for _, v := range vs {
		l.slots = append(l.slots, slot{box: &v})
	}
}

// Prepend adds values to the beginning of the list.
// The group keeps its argument order, so Prepend(l, x, y) on [a] yields [x, y, a],
// and every element already in the list shifts up by len(vs).
func Prepend[T any](l *List, vs ...T) {
	if len(vs) == 0 {
		return
	}
	group := make([]slot, 0, len(vs))
	for _, v := range vs {
		group = append(group, slot{box: &v})
	}
	l.slots = slices.Insert(l.slots, 0, group...)
}

// Replace swaps the element at the given index for a new value,
// which may have a different type than the old one.
// When the index doesn't point to an existing element,
// Replace returns an error with ErrIndexOutOfRange and leaves the list untouched.
func Replace[T any](l *List, index int, v T) error {
	if index < 0 || l.Len() <= index {
		return ErrIndexOutOfRange.F("index: %d, length: %d", index, l.Len())
	}
	l.slots[index] = slot{box: &v}
	return nil
}

// Lookup returns a copy of the element at the given index.
//
// The boolean reports whether the element was found: it is false both when
// the index is out of range and when the element's stored type is not
// exactly T. The two cases are not distinguished; callers who need to tell
// them apart can check Len first.
func Lookup[T any](l *List, index int) (T, bool) {
	ptr, ok := LookupPtr[T](l, index)
	if !ok {
		var zero T
		return zero, false
	}
	return *ptr, true
}

// LookupPtr returns a pointer to the element at the given index,
// through which the element can be updated in place.
// Found reporting follows Lookup: out of range and type mismatch are both a miss.
//
// The pointer stays valid after further list operations,
// but writing through it counts as a write on the list for concurrency purposes.
func LookupPtr[T any](l *List, index int) (*T, bool) {
	if index < 0 || l.Len() <= index {
		return nil, false
	}
	ptr, ok := l.slots[index].box.(*T)
	return ptr, ok
}

// LookupType returns the type the element at the given index was stored with.
// It reports false when the index is out of range,
// or when the element holds an untyped nil.
func (l *List) LookupType(index int) (reflect.Type, bool) {
	if index < 0 || l.Len() <= index {
		return nil, false
	}
	typ := l.slots[index].typeOf()
	return typ, typ != nil
}

// Len returns the number of elements in the list.
func (l *List) Len() int {
	return len(l.slots)
}

// IsEmpty checks if the list has no elements.
func (l *List) IsEmpty() bool {
	return l.Len() == 0
}

// Clear removes every element from the list.
func (l *List) Clear() {
	l.slots = nil
}

// Iter ranges over the elements of the list in index order.
// The sequence is lazy and restartable; each range call is a fresh pass.
// Yielded values carry their stored dynamic type, so they print through fmt
// without the caller knowing the concrete types.
// Mutating the list during a pass is undefined behaviour.
func (l *List) Iter() iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		if l == nil {
			return
		}
		for i, s := range l.slots {
			if !yield(i, s.value()) {
				return
			}
		}
	}
}

// ToSlice returns the elements of the list as a new []any.
func (l *List) ToSlice() []any {
	var vs []any
	for _, v := range l.Iter() {
		vs = append(vs, v)
	}
	return vs
}
