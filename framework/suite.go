package framework

import (
	"github.com/launchdarkly/go-datadriven/datadriven"
)

// Group is a named collection of cases and nested groups.
type Group struct {
	name    string
	skipped bool
	entries []entry
}

type entry struct {
	group *Group
	test  *Case
}

// Case is one registered test.
type Case struct {
	name    string
	skipped bool
	fn      datadriven.TestFn
}

func (g *Group) Name() string { return g.name }

func (g *Group) Skipped() bool { return g.skipped }

func (g *Group) Groups() []*Group {
	var ret []*Group
	for _, e := range g.entries {
		if e.group != nil {
			ret = append(ret, e.group)
		}
	}
	return ret
}

// Cases returns the cases directly inside this group in registration order.
func (g *Group) Cases() []*Case {
	var ret []*Case
	for _, e := range g.entries {
		if e.test != nil {
			ret = append(ret, e.test)
		}
	}
	return ret
}

// CountCases returns the number of cases in this group and all nested groups.
func (g *Group) CountCases() int {
	n := 0
	for _, e := range g.entries {
		if e.group != nil {
			n += e.group.CountCases()
		} else {
			n++
		}
	}
	return n
}

func (c *Case) Name() string { return c.name }

// Skipped reflects XIt only, not whether an enclosing group is skipped. The same is true
// of Group.Skipped.
func (c *Case) Skipped() bool { return c.skipped }

// Async is true if the case finishes by calling done rather than by returning.
func (c *Case) Async() bool {
	_, ok := c.fn.(datadriven.AsyncFn)
	return ok
}

// Suite is the root of a registration tree. It implements datadriven.Registry.
//
// Registration is not safe for concurrent use; it is expected to happen from a single
// goroutine before Run.
type Suite struct {
	root  *Group
	stack []*Group
}

var _ datadriven.Registry = (*Suite)(nil)

// NewSuite creates an empty suite. If name is empty, case IDs start with the top-level
// group names.
func NewSuite(name string) *Suite {
	root := &Group{name: name}
	return &Suite{root: root, stack: []*Group{root}}
}

func (s *Suite) Root() *Group { return s.root }

func (s *Suite) current() *Group {
	return s.stack[len(s.stack)-1]
}

func (s *Suite) group(name string, skipped bool, body func()) *Group {
	g := &Group{name: name, skipped: skipped}
	parent := s.current()
	parent.entries = append(parent.entries, entry{group: g})
	s.stack = append(s.stack, g)
	defer func() { s.stack = s.stack[:len(s.stack)-1] }()
	if body != nil {
		body()
	}
	return g
}

// Describe registers a group and runs body immediately so that it can register the group's
// contents. The returned value is the new *Group.
func (s *Suite) Describe(name string, body func()) datadriven.Suite {
	return s.group(name, false, body)
}

func (s *Suite) XDescribe(name string, body func()) {
	s.group(name, true, body)
}

func (s *Suite) It(name string, fn datadriven.TestFn) {
	s.addCase(name, false, fn)
}

// XIt registers a case that is reported as skipped and never run.
func (s *Suite) XIt(name string, fn datadriven.TestFn) {
	s.addCase(name, true, fn)
}

func (s *Suite) addCase(name string, skipped bool, fn datadriven.TestFn) {
	g := s.current()
	g.entries = append(g.entries, entry{test: &Case{name: name, skipped: skipped, fn: fn}})
}

// Sync adapts a function that wants the framework's own *T into a datadriven.TestFn.
func Sync(fn func(t *T)) datadriven.TestFn {
	return datadriven.SyncFn(func(t datadriven.T) { fn(t.(*T)) })
}

// Async is like Sync, for a case that finishes by calling done.
func Async(fn func(t *T, done datadriven.Done)) datadriven.TestFn {
	return datadriven.AsyncFn(func(t datadriven.T, done datadriven.Done) { fn(t.(*T), done) })
}
