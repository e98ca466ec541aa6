package ddtests

import (
	"strings"

	"github.com/launchdarkly/go-datadriven/datadriven"
	"github.com/launchdarkly/go-datadriven/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoUsingTests(s *framework.Suite) {
	s.It("returns a suite", framework.Sync(func(t *framework.T) {
		scratch := framework.NewSuite("")
		suite, err := datadriven.Using(scratch, "just testing", datadriven.Scalars(1, 2), datadriven.Func(func(x int) {}))
		require.NoError(t, err)

		g, ok := suite.(*framework.Group)
		require.True(t, ok, "expected a *framework.Group, got %T", suite)
		assert.Equal(t, "just testing", g.Name())
		assert.Len(t, g.Groups(), 2)
	}))

	datadriven.MustUsing(s, "Complex arguments",
		datadriven.Scalars(named{"Aaa"}, named{"Zab"}, named{"Koala"}),
		datadriven.Func(func(data named) {
			s.It("are supported", framework.Sync(func(t *framework.T) {
				assert.NotEqual(t, data.Name, strings.ToLower(data.Name))
			}))
		}))

	datadriven.MustUsing(s, "Arrays as arguments",
		datadriven.Dataset{
			datadriven.Sequence(1, 2, 4, 5),
			datadriven.Sequence(6, 7, 8, 9),
		},
		datadriven.Func(func(x1, y1, x2, y2 int) {
			p1, p2 := point{x1, y1}, point{x2, y2}

			s.It("p2 is above p1", framework.Sync(func(t *framework.T) {
				assert.True(t, p2.isAbove(p1))
			}))

			s.It("p1 is below p2", framework.Sync(func(t *framework.T) {
				assert.True(t, p1.isBelow(p2))
			}))
		}))

	datadriven.MustUsing(s, "using supported",
		datadriven.Scalars(1, 2, 3, 4),
		datadriven.Func(func(value int) {
			s.It("Should be true", framework.Sync(func(t *framework.T) {
				assert.True(t, value < 10)
			}))
		}))

	datadriven.MustUsing(s, "using, it and all can be intermingled",
		datadriven.Dataset{
			datadriven.Sequence(1, 2),
			datadriven.Sequence(3, 4),
		},
		datadriven.Func(func(x1, y1 int) {
			p1 := point{x1, y1}

			s.It("is not above itself", framework.Sync(func(t *framework.T) {
				assert.False(t, p1.isAbove(p1))
			}))

			s.It("is not below itself (asynchronously)", framework.Async(func(t *framework.T, done datadriven.Done) {
				later(done, func() {
					assert.False(t, p1.isBelow(p1))
				})
			}))

			datadriven.MustAll(s, "p2 points are above p1 points",
				datadriven.Dataset{
					datadriven.Sequence(5, 6),
					datadriven.Sequence(7, 8),
				},
				datadriven.Func(func(t datadriven.T, x2, y2 int) {
					assert.True(t, point{x2, y2}.isAbove(p1))
				}))

			datadriven.MustAll(s, "p2 points are above p1 points (asynchronously)",
				datadriven.Dataset{
					datadriven.Sequence(5, 6),
					datadriven.Sequence(7, 8),
				},
				datadriven.Func(func(t datadriven.T, x2, y2 int, done datadriven.Done) {
					later(done, func() {
						assert.True(t, point{x2, y2}.isAbove(p1))
					})
				}))
		}))

	datadriven.MustXUsing(s, "xusing supported",
		datadriven.Scalars(1, 2, 3, 4),
		datadriven.Func(func(value int) {
			s.It("Should not be called", framework.Sync(func(t *framework.T) {
				assert.False(t, value < 10)
			}))
		}))
}
