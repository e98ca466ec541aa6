package ddtests

import (
	"errors"

	"github.com/launchdarkly/go-datadriven/datadriven"
	"github.com/launchdarkly/go-datadriven/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var entryPoints = map[string]func(datadriven.Registry, string, datadriven.Dataset, datadriven.Callback) (datadriven.Suite, error){
	"all":    datadriven.All,
	"xall":   datadriven.XAll,
	"using":  datadriven.Using,
	"xusing": datadriven.XUsing,
}

func DoErrorHandlingTests(s *framework.Suite) {
	s.Describe("datasets", func() {
		s.It("must contain the same number of arguments", framework.Sync(func(t *framework.T) {
			scratch := framework.NewSuite("")
			_, err := datadriven.All(scratch, "bad dataset",
				datadriven.Dataset{datadriven.Sequence(1, 2), datadriven.Sequence(1)},
				datadriven.Func(func(t datadriven.T, a, b int) {
					t.Errorf("This shouldn't execute")
				}))
			assert.EqualError(t, err, "Expected 2 argument(s). Found 1 at index 1 (bad dataset)")
			assert.IsType(t, datadriven.ArgumentCountMismatchError{}, err)
			assert.Equal(t, 0, scratch.Root().CountCases())
		}))

		s.It("must be a sequence", framework.Sync(func(t *framework.T) {
			_, err := datadriven.FromValues("bad dataset", map[string]interface{}{})
			assert.EqualError(t, err, "No arguments for a data-driven test were provided (bad dataset)")
			assert.IsType(t, datadriven.ArgumentsMissingError{}, err)
		}))

		datadriven.MustAll(s, "must not be empty",
			datadriven.Scalars("all", "xall", "using", "xusing"),
			datadriven.Func(func(t datadriven.T, entryPoint string) {
				scratch := framework.NewSuite("")
				_, err := entryPoints[entryPoint](scratch, "bad dataset", datadriven.Dataset{}, datadriven.Func(func() {}))
				assert.Equal(t, datadriven.ArgumentsMissingError{Description: "bad dataset"}, err)
				assert.Empty(t, scratch.Root().Groups())
			}))
	})

	s.Describe("callback functions", func() {
		s.It("must not contain more than n + 1 arguments", framework.Sync(func(t *framework.T) {
			scratch := framework.NewSuite("")
			_, err := datadriven.All(scratch, "bad dataset",
				datadriven.Dataset{datadriven.Sequence(1, 2), datadriven.Sequence(3, 6)},
				datadriven.Func(func(a, b, c, d int) {}))
			assert.EqualError(t, err, "Expecting data driven spec to accept 2 arguments, but 4 arguments are specified in the callback function (bad dataset)")
		}))

		s.It("must not contain more than n arguments when grouped", framework.Sync(func(t *framework.T) {
			scratch := framework.NewSuite("")
			_, err := datadriven.Using(scratch, "bad dataset",
				datadriven.Dataset{datadriven.Sequence(1, 2), datadriven.Sequence(3, 6)},
				datadriven.Func(func(a, b, c int) {}))
			assert.EqualError(t, err, "Expecting data driven spec to accept 2 arguments, but 3 arguments are specified in the callback function (bad dataset)")

			var mismatch datadriven.ArgumentCountMismatchError
			require.True(t, errors.As(err, &mismatch))
			assert.True(t, mismatch.AsyncNotAllowed)
		}))

		s.It("must accept the variant's argument types", framework.Sync(func(t *framework.T) {
			scratch := framework.NewSuite("")
			_, err := datadriven.All(scratch, "bad dataset", datadriven.Scalars(1, "x"), datadriven.Func(func(n int) {}))
			var mismatch datadriven.ArgumentTypeMismatchError
			require.True(t, errors.As(err, &mismatch))
			assert.Equal(t, 1, mismatch.Index)
		}))

		s.It("registration panics with the error in Must form", framework.Sync(func(t *framework.T) {
			scratch := framework.NewSuite("")
			assert.PanicsWithValue(t, datadriven.ArgumentsMissingError{Description: "bad dataset"}, func() {
				datadriven.MustAll(scratch, "bad dataset", nil, datadriven.Func(func(x int) {}))
			})
		}))
	})
}
