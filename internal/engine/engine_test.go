package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/structcmp/internal/config"
	"github.com/vk/structcmp/internal/diff"
	"github.com/vk/structcmp/internal/engine"
	"github.com/vk/structcmp/internal/testutil"
)

func mustCompare(t *testing.T, actual, expected any, cfg *config.Comparison) *diff.List {
	t.Helper()
	list, err := engine.Compare(context.Background(), actual, expected, cfg)
	require.NoError(t, err)
	return list
}

func TestCompare_EqualGraphs(t *testing.T) {
	actual := testutil.NewPerson("John")
	expected := testutil.NewPerson("John")

	testutil.RequireEqual(t, mustCompare(t, actual, expected, config.New()))
}

func TestCompare_SingleLeafMismatchDeepInGraph(t *testing.T) {
	actual := testutil.NewPerson("John")
	actual.Home.Address.Number = 1
	expected := testutil.NewPerson("John")
	expected.Home.Address.Number = 2

	list := mustCompare(t, actual, expected, config.New())

	d := testutil.RequireOnlyDifference(t, list, "Home.Address.Number", diff.ValueMismatch)
	assert.Equal(t, 1, d.Actual)
	assert.Equal(t, 2, d.Expected)
}

func TestCompare_NilComparedToNilIsEqual(t *testing.T) {
	testutil.RequireEqual(t, mustCompare(t, nil, nil, config.New()))
}

func TestCompare_NilAgainstValueAtRoot(t *testing.T) {
	list := mustCompare(t, nil, testutil.NewPerson("John"), config.New())
	testutil.RequireOnlyDifference(t, list, "", diff.NullnessMismatch)
}

func TestCompare_NilFieldAgainstPresentField(t *testing.T) {
	actual := testutil.NewPerson("John")
	expected := testutil.NewPerson("John")
	expected.Neighbour = testutil.NewPerson("Jack")

	list := mustCompare(t, actual, expected, config.New())

	d := testutil.RequireOnlyDifference(t, list, "Neighbour", diff.NullnessMismatch)
	assert.Nil(t, d.Actual.(*testutil.Person))
}

func TestCompare_CollectsAllDifferencesInTraversalOrder(t *testing.T) {
	actual := testutil.NewPerson("John")
	actual.Friends = []*testutil.Person{testutil.NewPerson("Sherlock")}
	expected := testutil.NewPerson("Jack")
	expected.Home.Address.Number = 2
	expected.Friends = []*testutil.Person{testutil.NewPerson("Watson")}

	list := mustCompare(t, actual, expected, config.New())

	require.Equal(t, 3, list.Len())
	var paths []string
	for _, d := range list.All() {
		paths = append(paths, d.Path.String())
	}
	assert.Equal(t, []string{"Name", "Home.Address.Number", "Friends[0].Name"}, paths)
}

func TestCompare_SequenceLengthMismatchIsSingleDifference(t *testing.T) {
	actual := testutil.NewPerson("John")
	actual.Friends = []*testutil.Person{testutil.NewPerson("Sherlock")}
	expected := testutil.NewPerson("John")
	expected.Friends = []*testutil.Person{testutil.NewPerson("Sherlock"), testutil.NewPerson("Watson")}

	list := mustCompare(t, actual, expected, config.New())

	d := testutil.RequireOnlyDifference(t, list, "Friends", diff.ShapeMismatch)
	assert.Contains(t, d.Explanation, "length 1 vs 2")
}

type environment struct {
	Vars map[string]string
}

func TestCompare_MapSharedKeysRecurse(t *testing.T) {
	actual := environment{Vars: map[string]string{"PATH": "/bin", "HOME": "/root"}}
	expected := environment{Vars: map[string]string{"PATH": "/usr/bin", "HOME": "/root"}}

	list := mustCompare(t, actual, expected, config.New())

	d := testutil.RequireOnlyDifference(t, list, "Vars[PATH]", diff.ValueMismatch)
	assert.Equal(t, "/bin", d.Actual)
}

func TestCompare_MapKeySetMismatchIsSingleDifferenceAtMap(t *testing.T) {
	actual := environment{Vars: map[string]string{"PATH": "/bin", "SHELL": "/bin/sh"}}
	expected := environment{Vars: map[string]string{"PATH": "/bin", "TERM": "xterm"}}

	list := mustCompare(t, actual, expected, config.New())

	d := testutil.RequireOnlyDifference(t, list, "Vars", diff.ShapeMismatch)
	assert.Contains(t, d.Explanation, "keys only in actual: SHELL")
	assert.Contains(t, d.Explanation, "keys only in expected: TERM")
}

func TestCompare_IncompatibleLeafTypesAtRoot(t *testing.T) {
	list := mustCompare(t, 1, "1", config.New())

	require.Equal(t, 1, list.Len())
	d := list.All()[0]
	assert.Equal(t, diff.ShapeMismatch, d.Kind)
	assert.True(t, d.Path.IsRoot())
	assert.Contains(t, d.Explanation, "incompatible types")
}

type renamedAddress struct {
	Number int
	Street string
	City   string
}

func TestCompare_DifferentStructTypesCompareByActualFieldSet(t *testing.T) {
	actual := renamedAddress{Number: 1, Street: "Baker Street", City: "London"}
	expected := testutil.Address{Number: 2, Street: "Baker Street"}

	list := mustCompare(t, actual, expected, config.New())

	require.Equal(t, 2, list.Len())
	testutil.RequireDifference(t, list, "Number", diff.ValueMismatch)
	d := testutil.RequireDifference(t, list, "", diff.ShapeMismatch)
	assert.Contains(t, d.Explanation, "City")
}

func TestCompare_SameSliceIdentityIsEqual(t *testing.T) {
	friends := []*testutil.Person{testutil.NewPerson("Sherlock")}
	actual := testutil.NewPerson("John")
	actual.Friends = friends
	expected := testutil.NewPerson("John")
	expected.Friends = friends

	testutil.RequireEqual(t, mustCompare(t, actual, expected, config.New()))
}

func TestCompare_Determinism(t *testing.T) {
	build := func() (any, any) {
		actual := testutil.NewPerson("John")
		actual.Friends = []*testutil.Person{testutil.NewPerson("Sherlock"), testutil.NewPerson("Watson")}
		expected := testutil.NewPerson("Jack")
		expected.Home.Address.Street = "Fleet Street"
		expected.Friends = []*testutil.Person{testutil.NewPerson("Mycroft"), testutil.NewPerson("Watson")}
		return actual, expected
	}

	render := func() []string {
		actual, expected := build()
		cfg := config.New()
		var lines []string
		for _, d := range mustCompare(t, actual, expected, cfg).All() {
			lines = append(lines, d.String())
		}
		return lines
	}

	first := render()
	for i := 0; i < 5; i++ {
		if d := cmp.Diff(first, render()); d != "" {
			t.Fatalf("difference sequence not deterministic (-first +repeat):\n%s", d)
		}
	}
}

func TestCompare_MapDeterminismUnderRandomIteration(t *testing.T) {
	build := func() (environment, environment) {
		actual := environment{Vars: map[string]string{}}
		expected := environment{Vars: map[string]string{}}
		for _, k := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
			actual.Vars[k] = "actual"
			expected.Vars[k] = "expected"
		}
		return actual, expected
	}

	render := func() []string {
		actual, expected := build()
		var paths []string
		for _, d := range mustCompare(t, actual, expected, config.New()).All() {
			paths = append(paths, d.Path.String())
		}
		return paths
	}

	expectedOrder := []string{
		"Vars[A]", "Vars[B]", "Vars[C]", "Vars[D]",
		"Vars[E]", "Vars[F]", "Vars[G]", "Vars[H]",
	}
	for i := 0; i < 5; i++ {
		assert.Equal(t, expectedOrder, render())
	}
}

// sealed has no exported fields; from the outside it is a leaf.
type sealed struct {
	state int
}

type vault struct {
	Name   string
	Sealed sealed
}

func TestCompare_OpaqueStructComparesByNaturalEquality(t *testing.T) {
	list := mustCompare(t, sealed{state: 1}, sealed{state: 2}, config.New())

	d := testutil.RequireOnlyDifference(t, list, "", diff.ValueMismatch)
	assert.Equal(t, sealed{state: 1}, d.Actual)
	assert.Equal(t, sealed{state: 2}, d.Expected)

	testutil.RequireEqual(t, mustCompare(t, sealed{state: 7}, sealed{state: 7}, config.New()))
}

func TestCompare_OpaqueStructFieldReportsAtFieldPath(t *testing.T) {
	actual := vault{Name: "v", Sealed: sealed{state: 1}}
	expected := vault{Name: "v", Sealed: sealed{state: 2}}

	list := mustCompare(t, actual, expected, config.New())

	testutil.RequireOnlyDifference(t, list, "Sealed", diff.ValueMismatch)
}

func TestCompare_DistinctTimeInstantsAreUnequalWithoutComparator(t *testing.T) {
	list := mustCompare(t, time.Unix(1, 0), time.Unix(999999, 0), config.New())

	testutil.RequireOnlyDifference(t, list, "", diff.ValueMismatch)

	born := time.Unix(123, 0)
	later := time.Unix(456, 0)
	actual := testutil.NewPerson("John")
	actual.DateOfBirth = &born
	expected := testutil.NewPerson("John")
	expected.DateOfBirth = &later

	list = mustCompare(t, actual, expected, config.New())
	testutil.RequireOnlyDifference(t, list, "DateOfBirth", diff.ValueMismatch)
}
