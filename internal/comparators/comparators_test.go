package comparators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zclconf/go-cty/cty"
)

func TestTolerance(t *testing.T) {
	testCases := []struct {
		name          string
		delta         float64
		actual        any
		expected      any
		expectedEqual bool
	}{
		{"within delta", 0.2, 3.0, 3.1, true},
		{"outside delta", 0.05, 3.0, 3.1, false},
		{"exact", 0, 3.0, 3.0, true},
		{"bridges int and float", 0.5, 3, 3.4, true},
		{"bridges uint and float", 0.5, uint8(3), 3.4, true},
		{"non-numeric actual", 1, "3", 3.0, false},
		{"non-numeric expected", 1, 3.0, "3", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := Tolerance(tc.delta)
			assert.Equal(t, tc.expectedEqual, c.Equal(tc.actual, tc.expected))
			assert.Equal(t, tc.expectedEqual, c.Equal(tc.expected, tc.actual), "tolerance is symmetric")
		})
	}
}

func TestFoldCase(t *testing.T) {
	c := FoldCase()
	assert.True(t, c.Equal("John", "JoHN"))
	assert.False(t, c.Equal("straße", "STRASSE"), "simple fold, not full normalization")
	assert.False(t, c.Equal("John", "Jack"))
	assert.False(t, c.Equal("John", 42))
}

func TestTimeInstant(t *testing.T) {
	utc := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	shifted := utc.In(time.FixedZone("UTC+2", 2*3600))

	c := TimeInstant()
	assert.True(t, c.Equal(utc, shifted), "same instant in different locations")
	assert.False(t, c.Equal(utc, utc.Add(time.Nanosecond)))
	assert.False(t, c.Equal(utc, "2024-06-01T12:00:00Z"))
}

func TestCtyValue(t *testing.T) {
	c := CtyValue()
	assert.True(t, c.Equal(cty.StringVal("x"), cty.StringVal("x")))
	assert.False(t, c.Equal(cty.StringVal("x"), cty.StringVal("y")))
	assert.False(t, c.Equal(cty.StringVal("x"), cty.NumberIntVal(1)))
	assert.False(t, c.Equal(cty.StringVal("x"), "x"))
}

func TestAlwaysAndNeverEqual(t *testing.T) {
	assert.True(t, AlwaysEqual().Equal(1, "anything"))
	assert.False(t, NeverEqual().Equal(1, 1))
}
