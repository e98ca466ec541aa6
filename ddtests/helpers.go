package ddtests

import (
	"math"
	"time"

	"github.com/launchdarkly/go-datadriven/datadriven"
)

const asyncDelay = time.Millisecond * 50

type point struct {
	x, y int
}

func (p point) isAbove(other point) bool { return p.y > other.y }

func (p point) isBelow(other point) bool { return p.y < other.y }

// isEmpty reports whether x is a blank value: nil, zero or negative numbers, empty strings
// and collections, false, or NaN.
func isEmpty(x interface{}) bool {
	switch v := x.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case int:
		return v <= 0
	case float64:
		return math.IsNaN(v) || v <= 0
	case []interface{}:
		return len(v) == 0 || (len(v) == 1 && isEmpty(v[0]))
	case map[string]interface{}:
		return len(v) == 0
	default:
		return false
	}
}

// later calls fn on another goroutine after asyncDelay, then signals done.
func later(done datadriven.Done, fn func()) {
	time.AfterFunc(asyncDelay, func() {
		fn()
		done()
	})
}
