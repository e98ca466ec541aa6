package datadriven

import (
	"fmt"
	"reflect"
)

// ArgumentsMissingError means the dataset was absent, was not a sequence, or was empty.
type ArgumentsMissingError struct {
	Description string
}

func (e ArgumentsMissingError) Error() string {
	return fmt.Sprintf("No arguments for a data-driven test were provided (%s)", e.Description)
}

// ArgumentCountMismatchError means either that a dataset element's arity disagrees with the
// arity established by the first element, or that the callback's declared parameter count
// cannot be reconciled with the dataset's arity.
//
// For a dataset inconsistency, Index is the offending element and Found its arity. For a
// callback mismatch, Index is -1 and Declared is the callback's parameter count;
// AsyncNotAllowed is true if the declared count would have been accepted as an
// asynchronous callback by an entry point that allows those.
type ArgumentCountMismatchError struct {
	Description     string
	Expected        int
	Found           int
	Index           int
	Declared        int
	AsyncNotAllowed bool
}

func (e ArgumentCountMismatchError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("Expected %d argument(s). Found %d at index %d (%s)",
			e.Expected, e.Found, e.Index, e.Description)
	}
	return fmt.Sprintf("Expecting data driven spec to accept %d %s, but %d %s specified in the callback function (%s)",
		e.Expected, plural(e.Expected, "argument", "arguments"),
		e.Declared, plural(e.Declared, "argument is", "arguments are"),
		e.Description)
}

// ArgumentTypeMismatchError means a variant value cannot be passed to the callback parameter
// at the same position.
type ArgumentTypeMismatchError struct {
	Description string
	Index       int
	Position    int
	Value       interface{}
	ParamType   reflect.Type
}

func (e ArgumentTypeMismatchError) Error() string {
	return fmt.Sprintf("Argument %d of variant #%d has type %T, which cannot be used as %s (%s)",
		e.Position, e.Index, e.Value, e.ParamType, e.Description)
}

// InvalidCallbackError means the value given to Func is not a usable callback function.
type InvalidCallbackError struct {
	Reason string
}

func (e InvalidCallbackError) Error() string {
	return "invalid data-driven callback: " + e.Reason
}

func plural(n int, singular, multiple string) string {
	if n == 1 {
		return singular
	}
	return multiple
}
