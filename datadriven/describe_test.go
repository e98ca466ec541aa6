package datadriven

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariantDescription(t *testing.T) {
	for _, p := range []struct {
		args     []interface{}
		index    int
		expected string
	}{
		{[]interface{}{""}, 0, `D (Variant #0 <"">)`},
		{[]interface{}{label("")}, 0, `D (Variant #0 <"">)`},
		{[]interface{}{label("x")}, 0, `D (Variant #0 <x>)`},
		{[]interface{}{1}, 3, `D (Variant #3 <1>)`},
		{[]interface{}{1, "x", true}, 1, `D (Variant #1 <1, x, true>)`},
		{[]interface{}{[]interface{}{}}, 5, `D (Variant #5 <[]>)`},
		{[]interface{}{[]int{1, 2}}, 0, `D (Variant #0 <[1 2]>)`},
		{[]interface{}{nil}, 1, `D (Variant #1 <<nil>>)`},
		{[]interface{}{1.5, " "}, 2, `D (Variant #2 <1.5,  >)`},
		{[]interface{}{}, 0, `D (Variant #0 <>)`},
	} {
		assert.Equal(t, p.expected, VariantDescription("D", p.index, p.args))
	}
}
