package engine_test

import (
	"testing"

	"github.com/vk/structcmp/internal/config"
	"github.com/vk/structcmp/internal/diff"
	"github.com/vk/structcmp/internal/testutil"
)

func TestCompare_SelfReferentialGraphAgainstItself(t *testing.T) {
	g := testutil.NewPerson("John")
	g.Neighbour = g

	testutil.RequireEqual(t, mustCompare(t, g, g, config.New()))
}

func TestCompare_MutuallyReferencingGraphsTerminate(t *testing.T) {
	actual := testutil.NewPerson("John")
	expected := testutil.NewPerson("John")
	actual.Neighbour = expected
	expected.Neighbour = actual

	testutil.RequireEqual(t, mustCompare(t, actual, expected, config.New()))
}

func TestCompare_CyclicFriendLists(t *testing.T) {
	actual := testutil.NewPerson("John")
	other := testutil.NewPerson("John")

	actual.Neighbour = other
	other.Neighbour = actual

	sherlock := testutil.NewPerson("Sherlock")
	sherlock.Home.Address.Number = 221
	actual.Friends = append(actual.Friends, sherlock, other)
	other.Friends = append(other.Friends, sherlock, actual)

	testutil.RequireEqual(t, mustCompare(t, actual, other, config.New()))
}

func TestCompare_CyclicGraphsWithDivergentDataStillReportDifferences(t *testing.T) {
	actual := testutil.NewPerson("John")
	expected := testutil.NewPerson("John")
	actual.Neighbour = actual
	expected.Neighbour = expected
	expected.Home.Address.Number = 2

	list := mustCompare(t, actual, expected, config.New())

	testutil.RequireOnlyDifference(t, list, "Home.Address.Number", diff.ValueMismatch)
}

func TestCompare_SiblingBranchesMaySharePairs(t *testing.T) {
	// The tracker records ancestors, not every pair ever compared: the same
	// pair reached on two sibling branches is compared both times.
	shared := testutil.NewPerson("Sherlock")
	sharedOther := testutil.NewPerson("Sherlock")

	actual := testutil.NewPerson("John")
	actual.Friends = []*testutil.Person{shared, shared}
	expected := testutil.NewPerson("John")
	expected.Friends = []*testutil.Person{sharedOther, sharedOther}

	testutil.RequireEqual(t, mustCompare(t, actual, expected, config.New()))
}
