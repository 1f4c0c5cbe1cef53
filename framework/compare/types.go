package compare

import (
	"reflect"

	"github.com/resultassert/resultassert/framework/helpers"
)

// CheckType is the pure form of Type: it reports through the returned Outcome only.
func CheckType[T any](label string, value interface{}, because ...interface{}) (T, Outcome) {
	var zero T
	if isNil(value) {
		return zero, fail(label, value, zero, templateNoValue,
			label, typeName[T](), Reason(because...))
	}
	if narrowed, ok := value.(T); ok {
		return narrowed, pass(label, value, zero)
	}
	return zero, fail(label, value, zero, templateType,
		label, typeName[T](), Reason(because...), reflect.TypeOf(value).String())
}

// Type asserts that value is non-nil and assignable to T, and returns it narrowed to T. If the
// assertion fails, it returns the zero value of T and false.
func Type[T any](t helpers.TestContext, label string, value interface{}, because ...interface{}) (T, bool) {
	t.Helper()
	narrowed, o := CheckType[T](label, value, because...)
	return narrowed, Require(t, o)
}

// NotNil asserts that value is not nil, using the same message as Type with the given type name.
func NotNil(t helpers.TestContext, label string, value interface{}, typeDesc string, because ...interface{}) bool {
	t.Helper()
	if !isNil(value) {
		return true
	}
	return Require(t, fail(label, value, nil, templateNoValue, label, typeDesc, Reason(because...)))
}

// CheckTypeName is the pure form of TypeName: it reports through the returned Outcome only.
func CheckTypeName(label, expected, actual string, because ...interface{}) Outcome {
	if expected == actual {
		return pass(label, actual, expected)
	}
	return fail(label, actual, expected, templateType, label, expected, Reason(because...), actual)
}

// TypeName is like Type for values whose types are identified by name rather than by Go type,
// such as the kinds of a closed set of variants.
func TypeName(t helpers.TestContext, label, expected, actual string, because ...interface{}) bool {
	t.Helper()
	return Require(t, CheckTypeName(label, expected, actual, because...))
}
