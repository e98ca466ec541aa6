package datadriven

import (
	"fmt"
	"reflect"
)

var (
	testingTType = reflect.TypeOf((*T)(nil)).Elem()
	doneType     = reflect.TypeOf(Done(nil))
)

// Callback is the assertion body applied to every variant of a dataset, together with its
// declared arity.
//
// The declared arity decides how a variant is adapted: a callback declaring exactly as many
// parameters as the variant has arguments is synchronous, and one declaring one more than
// that is asynchronous, its last parameter receiving the Done signal.
type Callback struct {
	declared int
	fn       reflect.Value
	withT    bool
	explicit func(t T, args ...interface{})
	err      error
}

// WithArity creates a Callback with an explicitly declared arity. When the callback is
// adapted asynchronously, the last element of args is the Done signal.
//
// During the group bodies registered by Using and XUsing there is no test context yet, so
// t is nil there.
func WithArity(arity int, fn func(t T, args ...interface{})) Callback {
	if fn == nil {
		return Callback{err: InvalidCallbackError{Reason: "callback function is nil"}}
	}
	if arity < 0 {
		return Callback{err: InvalidCallbackError{Reason: fmt.Sprintf("negative arity %d", arity)}}
	}
	return Callback{declared: arity, explicit: fn}
}

// Func creates a Callback from an ordinary function, inspecting its parameter list to find
// the declared arity.
//
// If the first parameter is a non-empty interface that T satisfies, such as T itself or
// testify's require.TestingT, it receives the test context and does not count toward the
// arity. Every other parameter receives one variant argument in order, and for an
// asynchronous callback the final parameter receives the Done signal. Variadic functions
// are not accepted.
//
// An invalid fn does not panic here; the error is reported by the entry point that uses
// the Callback.
func Func(fn interface{}) Callback {
	rv := reflect.ValueOf(fn)
	if !rv.IsValid() || rv.Kind() != reflect.Func || rv.IsNil() {
		return Callback{err: InvalidCallbackError{Reason: fmt.Sprintf("expected a function, got %T", fn)}}
	}
	ft := rv.Type()
	if ft.IsVariadic() {
		return Callback{err: InvalidCallbackError{Reason: "variadic functions have no fixed arity"}}
	}
	c := Callback{fn: rv, declared: ft.NumIn()}
	if ft.NumIn() > 0 && takesTestContext(ft.In(0)) {
		c.withT = true
		c.declared--
	}
	return c
}

// Arity returns the declared parameter count, not counting a test context parameter.
func (c Callback) Arity() int {
	return c.declared
}

func takesTestContext(p reflect.Type) bool {
	return p.Kind() == reflect.Interface && p.NumMethod() > 0 && testingTType.Implements(p)
}

type invoker func(t T, done Done)

// bind checks one variant's arguments against the callback's parameters and returns a
// function that applies the callback to them.
func (c Callback) bind(description string, index int, args []interface{}, async bool) (invoker, error) {
	if c.explicit != nil {
		fixed := append([]interface{}(nil), args...)
		return func(t T, done Done) {
			callArgs := fixed
			if async {
				callArgs = append(append(make([]interface{}, 0, len(fixed)+1), fixed...), done)
			}
			c.explicit(t, callArgs...)
		}, nil
	}

	ft := c.fn.Type()
	offset := 0
	if c.withT {
		offset = 1
	}
	prepared := make([]reflect.Value, 0, ft.NumIn())
	if c.withT {
		prepared = append(prepared, reflect.Value{}) // filled in at call time
	}
	for i, arg := range args {
		pt := ft.In(offset + i)
		v, ok := convertArg(arg, pt)
		if !ok {
			return nil, ArgumentTypeMismatchError{
				Description: description,
				Index:       index,
				Position:    i,
				Value:       arg,
				ParamType:   pt,
			}
		}
		prepared = append(prepared, v)
	}
	var donePT reflect.Type
	if async {
		donePT = ft.In(offset + len(args))
		if !doneType.ConvertibleTo(donePT) {
			return nil, InvalidCallbackError{
				Reason: fmt.Sprintf("last parameter must accept the completion signal (func()), but it is %s", donePT),
			}
		}
	}

	return func(t T, done Done) {
		in := append(make([]reflect.Value, 0, ft.NumIn()), prepared...)
		if c.withT {
			if t == nil {
				in[0] = reflect.Zero(ft.In(0))
			} else {
				in[0] = reflect.ValueOf(t)
			}
		}
		if async {
			in = append(in, reflect.ValueOf(done).Convert(donePT))
		}
		c.fn.Call(in)
	}, nil
}

// convertArg returns a value of type pt for arg. Assignable values pass through; values of
// the same kind under a different named type, lossless numeric conversions, and slices
// whose elements all convert are also accepted.
func convertArg(arg interface{}, pt reflect.Type) (reflect.Value, bool) {
	if arg == nil {
		switch pt.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
			return reflect.Zero(pt), true
		default:
			return reflect.Value{}, false
		}
	}
	return convertValue(reflect.ValueOf(arg), pt)
}

func convertValue(v reflect.Value, pt reflect.Type) (reflect.Value, bool) {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return convertArg(nil, pt)
		}
		v = v.Elem()
	}
	vt := v.Type()
	switch {
	case vt.AssignableTo(pt):
		return v, true
	case vt.Kind() == pt.Kind() && vt.ConvertibleTo(pt) && vt.Kind() != reflect.Slice:
		return v.Convert(pt), true
	case isNumeric(vt.Kind()) && isNumeric(pt.Kind()):
		converted := v.Convert(pt)
		if converted.Convert(vt).Interface() != v.Interface() || isNegative(converted) != isNegative(v) {
			return reflect.Value{}, false
		}
		return converted, true
	case (vt.Kind() == reflect.Slice || vt.Kind() == reflect.Array) && pt.Kind() == reflect.Slice:
		out := reflect.MakeSlice(pt, v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			elem, ok := convertValue(v.Index(i), pt.Elem())
			if !ok {
				return reflect.Value{}, false
			}
			out.Index(i).Set(elem)
		}
		return out, true
	default:
		return reflect.Value{}, false
	}
}

func isNegative(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() < 0
	case reflect.Float32, reflect.Float64:
		return v.Float() < 0
	default:
		return false
	}
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
