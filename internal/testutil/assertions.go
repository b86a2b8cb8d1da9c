package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/structcmp/internal/diff"
)

// RequireEqual asserts that a comparison found no differences, listing any
// recorded ones in the failure message.
func RequireEqual(t *testing.T, list *diff.List) {
	t.Helper()
	require.True(t, list.IsEmpty(), "expected recursively equal, got %d difference(s): %v", list.Len(), list.All())
}

// RequireDifference asserts that exactly one difference of the given kind
// was recorded at the given path, and returns it.
func RequireDifference(t *testing.T, list *diff.List, path string, kind diff.Kind) diff.Difference {
	t.Helper()
	d, ok := list.At(path)
	require.True(t, ok, "no difference recorded at %q; got: %v", path, list.All())
	require.Equal(t, kind, d.Kind, "difference at %q has kind %s, want %s", path, d.Kind, kind)
	return d
}

// RequireOnlyDifference asserts the list holds exactly one difference, of
// the given kind at the given path.
func RequireOnlyDifference(t *testing.T, list *diff.List, path string, kind diff.Kind) diff.Difference {
	t.Helper()
	require.Equal(t, 1, list.Len(), "expected exactly one difference, got: %v", list.All())
	return RequireDifference(t, list, path, kind)
}
