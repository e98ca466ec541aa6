package datadriven

import (
	"fmt"
	"reflect"
	"strings"
)

// VariantDescription returns the case name used for the variant at index:
//
//	<description> (Variant #<index> <<arg>, <arg>, ...>)
//
// An empty string-kinded argument is shown as "", nested sequences in their %v form, and
// everything else as fmt.Sprint would show it.
func VariantDescription(description string, index int, args []interface{}) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (Variant #%d <", description, index)
	for i, arg := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(renderArg(arg))
	}
	b.WriteString(">)")
	return b.String()
}

func renderArg(arg interface{}) string {
	if v := reflect.ValueOf(arg); v.Kind() == reflect.String && v.Len() == 0 {
		return `""`
	}
	return fmt.Sprint(arg) // nested slices come out as [a b c]
}
