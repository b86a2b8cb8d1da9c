package comparators

import (
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/structcmp/internal/registry"
)

// Tolerance returns a comparator accepting two numeric values whose
// difference is at most delta. Any integer or float representation
// qualifies, so it also serves as a symmetric bridge between, say, int and
// float64 nodes.
func Tolerance(delta float64) registry.Comparator {
	return &tolerance{delta: delta}
}

type tolerance struct {
	delta float64
}

func (c *tolerance) Equal(actual, expected any) bool {
	af, aOK := toFloat(actual)
	ef, eOK := toFloat(expected)
	return aOK && eOK && math.Abs(af-ef) <= c.delta
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// FoldCase returns a comparator treating strings as equal under Unicode
// case-folding.
func FoldCase() registry.Comparator {
	return foldCase{}
}

type foldCase struct{}

func (foldCase) Equal(actual, expected any) bool {
	as, aOK := actual.(string)
	es, eOK := expected.(string)
	return aOK && eOK && strings.EqualFold(as, es)
}

// TimeInstant returns a comparator for time.Time that considers two values
// equal when they represent the same instant, regardless of location or
// monotonic-clock reading.
func TimeInstant() registry.Comparator {
	return timeInstant{}
}

type timeInstant struct{}

func (timeInstant) Equal(actual, expected any) bool {
	at, aOK := actual.(time.Time)
	et, eOK := expected.(time.Time)
	return aOK && eOK && at.Equal(et)
}

// CtyValue returns a comparator for cty.Value using its raw equality.
func CtyValue() registry.Comparator {
	return ctyValue{}
}

type ctyValue struct{}

func (ctyValue) Equal(actual, expected any) bool {
	av, aOK := actual.(cty.Value)
	ev, eOK := expected.(cty.Value)
	return aOK && eOK && av.RawEquals(ev)
}

// AlwaysEqual returns a comparator that accepts any pair, marking a type as
// equal-by-fiat so its subtree is never examined.
func AlwaysEqual() registry.Comparator {
	return alwaysEqual{}
}

type alwaysEqual struct{}

func (alwaysEqual) Equal(actual, expected any) bool { return true }

// NeverEqual returns a comparator that rejects any pair.
func NeverEqual() registry.Comparator {
	return neverEqual{}
}

type neverEqual struct{}

func (neverEqual) Equal(actual, expected any) bool { return false }
