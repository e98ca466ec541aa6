// Package ddtests is the built-in contract suite for the datadriven package.
//
// The suite is itself written with datadriven, registered into a framework.Suite, and run
// by the framework package, so a passing run shows that every entry point registers,
// names, adapts, and runs its variants as documented.
package ddtests
