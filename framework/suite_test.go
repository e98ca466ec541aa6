package framework

import (
	"testing"

	"github.com/launchdarkly/go-datadriven/datadriven"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeRunsBodyImmediately(t *testing.T) {
	s := NewSuite("")
	ran := false
	g := s.Describe("group", func() {
		ran = true
		s.It("a", Sync(func(t *T) {}))
		s.XIt("b", Sync(func(t *T) {}))
	})
	assert.True(t, ran)

	group, ok := g.(*Group)
	require.True(t, ok)
	assert.Equal(t, "group", group.Name())
	require.Len(t, group.Cases(), 2)
	assert.Equal(t, "a", group.Cases()[0].Name())
	assert.False(t, group.Cases()[0].Skipped())
	assert.True(t, group.Cases()[1].Skipped())
	assert.Equal(t, []*Group{group}, s.Root().Groups())
}

func TestNestedGroups(t *testing.T) {
	s := NewSuite("root")
	s.Describe("outer", func() {
		s.It("first", Sync(func(t *T) {}))
		s.XDescribe("inner", func() {
			s.It("second", Async(func(t *T, done datadriven.Done) { done() }))
		})
		s.It("third", Sync(func(t *T) {}))
	})
	s.It("top-level", Sync(func(t *T) {}))

	root := s.Root()
	assert.Equal(t, 4, root.CountCases())
	outer := root.Groups()[0]
	assert.Len(t, outer.Cases(), 2)
	inner := outer.Groups()[0]
	assert.True(t, inner.Skipped())
	assert.True(t, inner.Cases()[0].Async())
	assert.False(t, outer.Cases()[0].Async())
}

func TestRegistrationRecoversFromPanickingBody(t *testing.T) {
	s := NewSuite("")
	assert.Panics(t, func() {
		s.Describe("bad", func() { panic("oops") })
	})
	s.It("after", Sync(func(t *T) {}))
	assert.Len(t, s.Root().Cases(), 1)
}
