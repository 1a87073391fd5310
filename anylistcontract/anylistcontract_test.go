package anylistcontract_test

import (
	"testing"

	"go.llib.dev/frameless/pkg/pointer"
	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/random"

	"go.llib.dev/anylist"
	"go.llib.dev/anylist/anylistcontract"
)

func TestList(t *testing.T) {
	s := testcase.NewSpec(t)

	mkList := func(tb testing.TB) *anylist.List {
		return anylist.New()
	}

	s.Context("int", anylistcontract.List[int](mkList, anylistcontract.Config[int]{
		MakeElem: MakeUniqElem[int](),
	}).Spec)

	s.Context("string", anylistcontract.List[string](mkList, anylistcontract.Config[string]{
		MakeElem: MakeUniqElem[string](),
	}).Spec)

	s.Context("float64", anylistcontract.List[float64](mkList, anylistcontract.Config[float64]{
		MakeElem: MakeUniqElem[float64](),
	}).Spec)

	s.Context("struct", anylistcontract.List[coordinate](mkList, anylistcontract.Config[coordinate]{
		MakeElem: MakeUniqElem[coordinate](),
	}).Spec)

	s.Context("pointer", anylistcontract.List[*coordinate](mkList, anylistcontract.Config[*coordinate]{
		MakeElem: func(tb testing.TB) *coordinate {
			t := testcase.ToT(&tb)
			return pointer.Of(coordinate{X: t.Random.Int(), Y: t.Random.Int()})
		},
	}).Spec)
}

func TestList_defaultElementMaker(t *testing.T) {
	mkList := func(tb testing.TB) *anylist.List {
		return anylist.New()
	}
	testcase.RunSuite(t, anylistcontract.List[string](mkList))
}

type coordinate struct {
	X, Y int
}

func MakeUniqElem[T any]() func(testing.TB) T {
	vs := make([]T, 0)
	return func(tb testing.TB) T {
		t := testcase.ToT(&tb)
		mk := func() T { return t.Random.Make(reflectkit.TypeOf[T]()).(T) }
		v := random.Unique(mk, vs...)
		vs = append(vs, v)
		return v
	}
}
