package ddtests

import (
	"github.com/launchdarkly/go-datadriven/datadriven"
	"github.com/launchdarkly/go-datadriven/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoDescriptionTests(s *framework.Suite) {
	datadriven.MustAll(s, "variant names",
		datadriven.Dataset{
			datadriven.Sequence(datadriven.Scalar(""), `D (Variant #0 <"">)`),
			datadriven.Sequence(datadriven.Sequence(1, 2), `D (Variant #0 <1, 2>)`),
			datadriven.Sequence(datadriven.Scalar([]int{1, 2}), `D (Variant #0 <[1 2]>)`),
			datadriven.Sequence(datadriven.Sequence("a", "", true), `D (Variant #0 <a, "", true>)`),
		},
		datadriven.Func(func(t datadriven.T, source datadriven.Source, expected string) {
			scratch := framework.NewSuite("")
			suite, err := datadriven.All(scratch, "D", datadriven.Dataset{source}, datadriven.WithArity(source.Arity(),
				func(datadriven.T, ...interface{}) {}))
			require.NoError(t, err)
			cases := suite.(*framework.Group).Cases()
			require.Len(t, cases, 1)
			assert.Equal(t, expected, cases[0].Name())
		}))

	s.It("indexes are zero-based positions in the dataset", framework.Sync(func(t *framework.T) {
		scratch := framework.NewSuite("")
		suite, err := datadriven.XAll(scratch, "D", datadriven.Scalars("a", "b", "c"), datadriven.Func(func(string) {}))
		require.NoError(t, err)
		var names []string
		for _, c := range suite.(*framework.Group).Cases() {
			names = append(names, c.Name())
		}
		assert.Equal(t, []string{"D (Variant #0 <a>)", "D (Variant #1 <b>)", "D (Variant #2 <c>)"}, names)
	}))
}
