// Package framework is a small host test framework that runs outside of the Go test runner.
//
// The general model is:
//
// 1. Test code builds a Suite by registering named groups and cases. Group bodies run
// immediately, at registration time, so a group's contents are known as soon as Describe
// returns. Suite implements datadriven.Registry, so the datadriven entry points can register
// their variants into it directly.
//
// 2. Run walks the suite depth first and executes every case that is not skipped or excluded
// by the filter. Each case gets a *T, which is similar to Go's *testing.T: it accumulates
// failures, can skip, and captures debug output that is only shown when wanted.
//
// 3. Asynchronous cases are finished when they call their done function. The framework
// waits for that up to Config.AsyncTimeout and fails the case if it never happens.
//
// Reporting is done through the TestLogger interface and the returned Results.
package framework
