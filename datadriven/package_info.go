// Package datadriven expands a dataset of input variants into individually named test cases.
//
// A test author supplies a description, a Dataset, and one Callback holding the assertions
// for a single variant. The package validates the dataset, decides for each variant whether
// the callback is synchronous or asynchronous based on its declared arity, and registers one
// case per variant with a host test framework through the Registry interface.
//
// There are four entry points, matching the two axes of "active or skipped" and "flat or
// grouped":
//
//	All    registers each variant as an active case (async callbacks allowed)
//	XAll   registers each variant as a skipped case (async callbacks allowed)
//	Using  registers each variant as an active group; the callback registers nested cases
//	XUsing registers each variant as a skipped group
//
// All errors are returned before anything is registered. Execution, scheduling, timeouts,
// and reporting are the host framework's business; this package only wires callbacks into it.
package datadriven
