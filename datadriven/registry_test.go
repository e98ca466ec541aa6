package datadriven

import (
	"fmt"
	"strings"
)

// recordingRegistry is a minimal host that records what gets registered and can run it.
type recordingRegistry struct {
	groups []*recordedGroup
	stack  []*recordedGroup
}

type recordedGroup struct {
	name     string
	skipped  bool
	children []*recordedGroup
	cases    []recordedCase
}

type recordedCase struct {
	name    string
	skipped bool
	fn      TestFn
}

type fakeT struct {
	errors []string
	failed bool
}

func (f *fakeT) Errorf(format string, args ...interface{}) {
	f.failed = true
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}

func (f *fakeT) FailNow() {
	f.failed = true
}

func (r *recordingRegistry) push(name string, skipped bool, body func()) *recordedGroup {
	g := &recordedGroup{name: name, skipped: skipped}
	if len(r.stack) == 0 {
		r.groups = append(r.groups, g)
	} else {
		parent := r.stack[len(r.stack)-1]
		parent.children = append(parent.children, g)
	}
	r.stack = append(r.stack, g)
	body()
	r.stack = r.stack[:len(r.stack)-1]
	return g
}

func (r *recordingRegistry) Describe(name string, body func()) Suite {
	return r.push(name, false, body)
}

func (r *recordingRegistry) XDescribe(name string, body func()) {
	r.push(name, true, body)
}

func (r *recordingRegistry) addCase(name string, skipped bool, fn TestFn) {
	if len(r.stack) == 0 {
		panic("case registered outside of a group: " + name)
	}
	g := r.stack[len(r.stack)-1]
	g.cases = append(g.cases, recordedCase{name: name, skipped: skipped, fn: fn})
}

func (r *recordingRegistry) It(name string, fn TestFn) {
	r.addCase(name, false, fn)
}

func (r *recordingRegistry) XIt(name string, fn TestFn) {
	r.addCase(name, true, fn)
}

// runCase invokes a recorded case, giving async cases a done signal that counts calls.
func runCase(c recordedCase, t T) (doneCalls int) {
	switch fn := c.fn.(type) {
	case SyncFn:
		fn(t)
	case AsyncFn:
		fn(t, func() { doneCalls++ })
	}
	return doneCalls
}

func (g *recordedGroup) caseNames() []string {
	var ret []string
	for _, c := range g.cases {
		ret = append(ret, c.name)
	}
	return ret
}

func (g *recordedGroup) String() string {
	var b strings.Builder
	g.dump(&b, "")
	return b.String()
}

func (g *recordedGroup) dump(b *strings.Builder, indent string) {
	fmt.Fprintf(b, "%s%s (skipped=%t)\n", indent, g.name, g.skipped)
	for _, c := range g.cases {
		fmt.Fprintf(b, "%s  - %s (skipped=%t)\n", indent, c.name, c.skipped)
	}
	for _, child := range g.children {
		child.dump(b, indent+"  ")
	}
}
