package ddtests

import (
	"github.com/launchdarkly/go-datadriven/framework"
)

// RunTestSuite registers and runs the whole contract suite.
func RunTestSuite(config framework.Config, testLogger framework.TestLogger) framework.Results {
	return framework.Run(NewTestSuite(), config, testLogger)
}

// NewTestSuite registers the contract suite without running it.
func NewTestSuite() *framework.Suite {
	s := framework.NewSuite("")
	s.Describe("all", func() { DoAllTests(s) })
	s.Describe("using", func() { DoUsingTests(s) })
	s.Describe("error handling", func() { DoErrorHandlingTests(s) })
	s.Describe("variant descriptions", func() { DoDescriptionTests(s) })
	return s
}
