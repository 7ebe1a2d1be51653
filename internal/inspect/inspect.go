// Package inspect renders log arguments into text.
//
// Strings are used verbatim and scalars use their natural fmt form. Errors
// and fmt.Stringers use their own text. Everything else (structs, maps,
// slices, pointers, channels, funcs) is dumped with go-spew so nested
// structure and types are visible in the log line.
package inspect

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// dumper is shared and read-only after init; spew.ConfigState is safe for
// concurrent use.
var dumper = spew.ConfigState{
	Indent:                  " ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Value renders a single argument.
func Value(v any) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return x
	case error, fmt.Stringer:
		// fmt recovers from panicking Error/String methods on nil receivers.
		return fmt.Sprint(x)
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String:
		return fmt.Sprint(v)
	}

	return Dump(v)
}

// Dump returns the single-line, type-annotated structural form of v.
func Dump(v any) string {
	return dumper.Sprintf("%#v", v)
}

// Join renders args in order, each preceded by a single space.
func Join(args []any) string {
	var b strings.Builder
	for _, arg := range args {
		b.WriteByte(' ')
		b.WriteString(Value(arg))
	}
	return b.String()
}
