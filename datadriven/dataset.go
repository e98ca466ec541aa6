package datadriven

import (
	"reflect"
)

// Source is one element of a Dataset: either a single value or an ordered sequence of values.
//
// Construct it with Scalar or Sequence. The zero value is a scalar nil.
type Source struct {
	values   []interface{}
	sequence bool
}

// Scalar returns a Source for an arity-1 variant.
func Scalar(value interface{}) Source {
	return Source{values: []interface{}{value}}
}

// Sequence returns a Source for an arity-N variant, where N is the number of values.
func Sequence(values ...interface{}) Source {
	return Source{values: append([]interface{}(nil), values...), sequence: true}
}

// IsSequence is true if the Source was created with Sequence.
func (s Source) IsSequence() bool {
	return s.sequence
}

// Values returns the normalized argument list for this source. A scalar becomes a
// one-element list.
func (s Source) Values() []interface{} {
	if !s.sequence && s.values == nil {
		return []interface{}{nil}
	}
	return append([]interface{}(nil), s.values...)
}

// Arity is the number of positional arguments this source produces.
func (s Source) Arity() int {
	if !s.sequence {
		return 1
	}
	return len(s.values)
}

// Dataset is an ordered list of variant sources driving repeated test generation.
type Dataset []Source

// Scalars is a shortcut for a dataset whose every element is a Scalar.
func Scalars(values ...interface{}) Dataset {
	ret := make(Dataset, 0, len(values))
	for _, v := range values {
		ret = append(ret, Scalar(v))
	}
	return ret
}

// FromValues builds a Dataset from a plain Go slice or array, such as one decoded from a
// JSON or YAML document.
//
// Each element that is itself a slice or array becomes a Sequence; anything else becomes
// a Scalar. Byte slices are treated as scalars. If raw is not a slice or array, or is
// empty, the error is an ArgumentsMissingError carrying the description.
func FromValues(description string, raw interface{}) (Dataset, error) {
	rv := reflect.ValueOf(raw)
	if !rv.IsValid() || !isSequenceKind(rv) || rv.Len() == 0 {
		return nil, ArgumentsMissingError{Description: description}
	}
	ret := make(Dataset, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		ret = append(ret, sourceFromValue(rv.Index(i)))
	}
	return ret, nil
}

func sourceFromValue(v reflect.Value) Source {
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	if v.Kind() == reflect.Interface { // nil interface element
		return Scalar(nil)
	}
	if !isSequenceKind(v) {
		return Scalar(v.Interface())
	}
	values := make([]interface{}, v.Len())
	for i := range values {
		values[i] = v.Index(i).Interface()
	}
	return Source{values: values, sequence: true}
}

func isSequenceKind(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice:
		return v.Type().Elem().Kind() != reflect.Uint8
	case reflect.Array:
		return true
	default:
		return false
	}
}
