// Package datasets reads datadriven datasets from JSON or YAML documents, either from local
// files or from an HTTP endpoint.
//
// A dataset document is a top-level array. Each element that is itself an array becomes a
// multi-argument variant; any other element becomes a single-argument variant. Numbers come
// out as float64 from JSON and as whatever integer or float type the YAML decoder picks, so
// callbacks should declare the numeric types they want and let datadriven convert them.
package datasets
