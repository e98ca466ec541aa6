package datadriven

// T is the test context that a host framework passes to each case function. It is the same
// shape as testify's require.TestingT, so assertions can be made against it directly.
type T interface {
	Errorf(format string, args ...interface{})
	FailNow()
}

// Done is the completion signal given to an asynchronous case. The case is finished when
// Done is called.
type Done func()

// TestFn is what a flat case registrar receives. It is either a SyncFn or an AsyncFn.
type TestFn interface {
	testFn()
}

// SyncFn is a case that is finished when it returns.
type SyncFn func(t T)

// AsyncFn is a case that is finished when it calls done.
type AsyncFn func(t T, done Done)

func (SyncFn) testFn()  {}
func (AsyncFn) testFn() {}

// Suite is whatever the host framework returns from group registration. This package never
// inspects it.
type Suite interface{}

// Registry is the registration surface of a host test framework.
//
// Describe serves both as the outer group registrar and as the active grouping registrar
// used by Using. A host is expected to call a group body at registration time.
type Registry interface {
	Describe(name string, body func()) Suite
	XDescribe(name string, body func())
	It(name string, fn TestFn)
	XIt(name string, fn TestFn)
}
