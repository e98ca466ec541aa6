package datadriven

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarNormalizesToOneValue(t *testing.T) {
	s := Scalar("x")
	assert.False(t, s.IsSequence())
	assert.Equal(t, 1, s.Arity())
	assert.Equal(t, []interface{}{"x"}, s.Values())

	var zero Source
	assert.Equal(t, []interface{}{nil}, zero.Values())
	assert.Equal(t, 1, zero.Arity())
}

func TestSequenceIsUsedAsIs(t *testing.T) {
	s := Sequence(1, "a", nil)
	assert.True(t, s.IsSequence())
	assert.Equal(t, 3, s.Arity())
	assert.Equal(t, []interface{}{1, "a", nil}, s.Values())

	assert.Equal(t, 0, Sequence().Arity())
}

func TestSourceValuesAreCopies(t *testing.T) {
	s := Sequence(1, 2)
	s.Values()[0] = 99
	assert.Equal(t, []interface{}{1, 2}, s.Values())
}

func TestFromValues(t *testing.T) {
	ds, err := FromValues("d", []interface{}{
		1,
		[]interface{}{2, 3},
		[]int{4},
		[2]string{"a", "b"},
		[]byte("raw"),
		nil,
	})
	require.NoError(t, err)
	require.Len(t, ds, 6)

	assert.Equal(t, Scalar(1), ds[0])
	assert.Equal(t, []interface{}{2, 3}, ds[1].Values())
	assert.True(t, ds[2].IsSequence())
	assert.Equal(t, []interface{}{4}, ds[2].Values())
	assert.Equal(t, []interface{}{"a", "b"}, ds[3].Values())
	assert.False(t, ds[4].IsSequence())
	assert.Equal(t, []interface{}{nil}, ds[5].Values())
}

func TestFromValuesRejectsNonSequences(t *testing.T) {
	for _, raw := range []interface{}{nil, map[string]interface{}{}, struct{}{}, 3, []interface{}{}, "abc"} {
		_, err := FromValues("bad dataset", raw)
		assert.Equal(t, ArgumentsMissingError{Description: "bad dataset"}, err, "for %#v", raw)
	}
}
