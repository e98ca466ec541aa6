package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/launchdarkly/go-datadriven/datadriven"
)

// DefaultAsyncTimeout is used when Config.AsyncTimeout is zero.
const DefaultAsyncTimeout = time.Second * 5

const filteredOutReason = "excluded by filter parameters"

// Config controls a suite run.
type Config struct {
	// Filter selects the cases to run. Nil runs everything.
	Filter Filter

	// AsyncTimeout is how long an asynchronous case may take to call done.
	AsyncTimeout time.Duration
}

// TestLogger receives progress notifications while a suite runs. Only cases are reported,
// not the groups containing them.
type TestLogger interface {
	TestStarted(id TestID)
	TestError(id TestID, err error)
	TestFinished(id TestID, failed bool, debugOutput CapturedOutput)
	TestSkipped(id TestID, reason string)
}

type nullTestLogger struct{}

func (nullTestLogger) TestStarted(TestID)                        {}
func (nullTestLogger) TestError(TestID, error)                   {}
func (nullTestLogger) TestFinished(TestID, bool, CapturedOutput) {}
func (nullTestLogger) TestSkipped(TestID, string)                {}

type environment struct {
	results      Results
	testLogger   TestLogger
	filter       Filter
	asyncTimeout time.Duration
}

// T is the test context given to every case. It implements datadriven.T and testify's
// require.TestingT, so the assert and require packages can be used with it.
//
// As with *testing.T, FailNow and Skip stop the case by unwinding its goroutine, so they
// must be called from the goroutine running the case.
type T struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
	finished    bool
	lock        sync.Mutex
}

// Run executes every case in the suite and returns the results.
func Run(suite *Suite, config Config, testLogger TestLogger) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:       config.Filter,
		testLogger:   testLogger,
		asyncTimeout: config.AsyncTimeout,
	}
	if env.asyncTimeout <= 0 {
		env.asyncTimeout = DefaultAsyncTimeout
	}
	var rootID TestID
	if suite.root.name != "" {
		rootID = TestID{Path: []string{suite.root.name}}
	}
	env.runGroup(suite.root, rootID, false)
	return env.results
}

func (env *environment) runGroup(g *Group, id TestID, skipped bool) {
	skipped = skipped || g.skipped
	for _, e := range g.entries {
		if e.group != nil {
			env.runGroup(e.group, id.Plus(e.group.name), skipped)
			continue
		}
		env.runCase(e.test, id.Plus(e.test.name), skipped || e.test.skipped)
	}
}

func (env *environment) runCase(c *Case, id TestID, skipped bool) {
	env.testLogger.TestStarted(id)
	if skipped {
		env.recordSkipped(id, "")
		return
	}
	if env.filter != nil && !env.filter(id) {
		env.recordSkipped(id, filteredOutReason)
		return
	}

	t := &T{env: env, id: id}
	t.run(c.fn)

	t.lock.Lock()
	t.finished = true
	result := TestResult{TestID: id, Errors: append([]error(nil), t.errors...), Skipped: t.skipped, SkipReason: t.skipReason}
	failed := t.failed && !t.skipped
	t.lock.Unlock()

	env.results.Tests = append(env.results.Tests, result)
	if result.Skipped {
		env.testLogger.TestSkipped(id, result.SkipReason)
		return
	}
	if failed {
		env.results.Failures = append(env.results.Failures, result)
	}
	env.testLogger.TestFinished(id, failed, t.debugLogger.Output())
}

func (env *environment) recordSkipped(id TestID, reason string) {
	env.results.Tests = append(env.results.Tests, TestResult{TestID: id, Skipped: true, SkipReason: reason})
	env.testLogger.TestSkipped(id, reason)
}

func (t *T) run(fn datadriven.TestFn) {
	defer func() {
		if r := recover(); r != nil {
			t.recovered(r, debug.Stack())
		}
	}()

	switch f := fn.(type) {
	case datadriven.SyncFn:
		f(t)
	case datadriven.AsyncFn:
		t.runAsync(f)
	case nil:
		t.Errorf("test has no function")
	default:
		t.Errorf("unsupported test function type %T", fn)
	}
}

func (t *T) recovered(r interface{}, stack []byte) {
	if r == t {
		t.lock.Lock()
		noMessage := !t.skipped && len(t.errors) == 0
		t.lock.Unlock()
		if noMessage {
			t.addError(errors.New("test failed with no failure message"))
		}
		return
	}
	t.addError(fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(stack)))
}

// runAsync calls fn on its own goroutine and waits until done is called, fn panics, or the
// timeout expires. A panic is re-raised on the calling goroutine so that run handles it.
func (t *T) runAsync(fn datadriven.AsyncFn) {
	finished := make(chan struct{})
	var once sync.Once
	done := func() { once.Do(func() { close(finished) }) }

	type panicInfo struct {
		value interface{}
		stack []byte
	}
	panicked := make(chan panicInfo, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				panicked <- panicInfo{value: r, stack: debug.Stack()}
			}
		}()
		fn(t, done)
	}()

	deadline := time.NewTimer(t.env.asyncTimeout)
	defer deadline.Stop()
	select {
	case <-finished:
	case p := <-panicked:
		if p.value == t {
			panic(t)
		}
		t.addError(fmt.Errorf("unexpected panic in test: %+v\n%s", p.value, string(p.stack)))
	case <-deadline.C:
		t.addError(fmt.Errorf("timed out after %s waiting for asynchronous test to call done", t.env.asyncTimeout))
	}
}

func (t *T) ID() TestID {
	return t.id
}

func (t *T) Errorf(format string, args ...interface{}) {
	t.addError(fmt.Errorf(format, args...))
}

// addError drops errors from a case that has already been reported, such as an
// asynchronous case still running after its timeout.
func (t *T) addError(err error) {
	t.lock.Lock()
	defer t.lock.Unlock()
	if t.finished {
		return
	}
	t.failed = true
	t.errors = append(t.errors, err)
	t.env.testLogger.TestError(t.id, err)
}

func (t *T) Failed() bool {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.failed
}

func (t *T) FailNow() {
	t.lock.Lock()
	t.failed = true
	t.lock.Unlock()
	panic(t)
}

// Skip stops the case and reports it as skipped, even if failures were recorded.
func (t *T) Skip() {
	t.lock.Lock()
	t.skipped = true
	t.lock.Unlock()
	panic(t)
}

// SkipWithReason is like Skip, with an explanation for the report.
func (t *T) SkipWithReason(reason string) {
	t.lock.Lock()
	t.skipReason = reason
	t.lock.Unlock()
	t.Skip()
}

// Debug adds a message to the case's captured debug output.
func (t *T) Debug(message string, args ...interface{}) {
	t.debugLogger.Printf(message, args...)
}

func (t *T) DebugLogger() Logger {
	return &t.debugLogger
}
