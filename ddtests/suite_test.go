package ddtests

import (
	"testing"
	"time"

	"github.com/launchdarkly/go-datadriven/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractSuitePasses(t *testing.T) {
	results := RunTestSuite(framework.Config{AsyncTimeout: time.Second}, nil)
	for _, f := range results.Failures {
		for _, err := range f.Errors {
			t.Errorf("%s", framework.TestFailure{ID: f.TestID, Err: err})
		}
	}
	require.True(t, results.OK())

	_, failed, skipped := results.Counts()
	assert.Equal(t, 0, failed)
	assert.Equal(t, 8, skipped, "xall and xusing variants should be skipped")
}

func TestContractSuiteRegistersEveryVariant(t *testing.T) {
	s := NewTestSuite()
	var all *framework.Group
	for _, g := range s.Root().Groups() {
		if g.Name() == "all" {
			all = g
		}
	}
	require.NotNil(t, all)

	counts := make(map[string]int)
	for _, g := range all.Groups() {
		counts[g.Name()] = len(g.Cases())
	}
	assert.Equal(t, 8, counts["Blank values are empty, for example"])
	assert.Equal(t, 7, counts["Asynchronous specs are supported"])
	assert.Equal(t, 3, counts["Multiple arguments are supported"])
	assert.Equal(t, 4, counts["These are pending"])
}

func TestContractSuiteCanBeFiltered(t *testing.T) {
	var filters framework.RegexFilters
	require.NoError(t, filters.MustMatch.Set("^error handling/"))

	results := RunTestSuite(framework.Config{Filter: filters.AsFilter}, nil)
	assert.True(t, results.OK())
	for _, r := range results.Tests {
		if !r.Skipped {
			assert.Regexp(t, "^error handling/", r.TestID.String())
		}
	}
}
