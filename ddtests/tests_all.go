package ddtests

import (
	"math"
	"strings"

	"github.com/launchdarkly/go-datadriven/datadriven"
	"github.com/launchdarkly/go-datadriven/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type named struct {
	Name string
}

func DoAllTests(s *framework.Suite) {
	s.It("returns a suite", framework.Sync(func(t *framework.T) {
		scratch := framework.NewSuite("")
		suite, err := datadriven.All(scratch, "just testing", datadriven.Scalars(1, 2), datadriven.Func(func(x int) {}))
		require.NoError(t, err)

		g, ok := suite.(*framework.Group)
		require.True(t, ok, "expected a *framework.Group, got %T", suite)
		assert.Equal(t, "just testing", g.Name())
		assert.Len(t, g.Cases(), 2)
	}))

	datadriven.MustAll(s, "Blank values are empty, for example",
		datadriven.Scalars("", nil, 0, -1, []interface{}{[]interface{}{}}, math.NaN(), map[string]interface{}{}, false),
		datadriven.Func(func(t datadriven.T, x interface{}) {
			assert.True(t, isEmpty(x), "%#v should be empty", x)
		}))

	datadriven.MustAll(s, "Complex arguments are supported",
		datadriven.Scalars(named{"Aaa"}, named{"Zab"}, named{"Koala"}),
		datadriven.Func(func(t datadriven.T, a named) {
			assert.False(t, len(a.Name) > 10)
		}))

	datadriven.MustAll(s, "Asynchronous specs are supported",
		datadriven.Scalars(1, 2, 3, 4, 5, 6, 7),
		datadriven.Func(func(t datadriven.T, x int, done datadriven.Done) {
			later(done, func() {
				assert.False(t, x > 10)
			})
		}))

	datadriven.MustAll(s, "Multiple arguments are supported",
		datadriven.Dataset{
			datadriven.Sequence(2, 4),
			datadriven.Sequence(1, 8),
			datadriven.Sequence(4, 4),
		},
		datadriven.Func(func(t datadriven.T, x, y int) {
			assert.False(t, x+y > 10)
		}))

	datadriven.MustAll(s, "Asynchronous, multiple arguments are supported",
		datadriven.Dataset{
			datadriven.Sequence(2, 4),
			datadriven.Sequence(1, 8),
			datadriven.Sequence(4, 4),
		},
		datadriven.Func(func(t datadriven.T, x, y int, done datadriven.Done) {
			later(done, func() {
				assert.False(t, x+y > 10)
			})
		}))

	datadriven.MustAll(s, "Explicit arity is supported",
		datadriven.Dataset{
			datadriven.Sequence("a", "b"),
			datadriven.Sequence("c", "d"),
		},
		datadriven.WithArity(2, func(t datadriven.T, args ...interface{}) {
			require.Len(t, args, 2)
			assert.Equal(t, 2, len(args[0].(string)+args[1].(string)))
		}))

	datadriven.MustAll(s, "Framework context is available",
		datadriven.Scalars("first", "second"),
		datadriven.Func(func(t datadriven.T, word string) {
			ft := t.(*framework.T)
			ft.Debug("checking %q", word)
			assert.True(t, strings.HasSuffix(ft.ID().String(), "<"+word+">)"))
		}))

	datadriven.MustXAll(s, "These are pending",
		datadriven.Scalars(1, 2, 3, 4),
		datadriven.Func(func(t datadriven.T, x int) {
			assert.True(t, x > 10)
		}))
}
