package compare

import (
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/resultassert/resultassert/framework/helpers"
	"github.com/resultassert/resultassert/framework/opt"
)

// RoundTripLayout is the textual form timestamps pass through on their way in and out of
// result values, for instance in authentication properties or Last-Modified headers. It only
// has second precision.
const RoundTripLayout = http.TimeFormat

var cmpOptions = []cmp.Option{ //nolint:gochecknoglobals
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmpopts.EquateEmpty(),
	cmp.Comparer(func(a, b time.Time) bool { return RoundTrip(a).Equal(RoundTrip(b)) }),
	numericOption(),
}

// RoundTrip formats t with RoundTripLayout in UTC and parses it back, discarding whatever
// precision the textual form cannot carry.
func RoundTrip(t time.Time) time.Time {
	parsed, err := time.Parse(RoundTripLayout, t.UTC().Format(RoundTripLayout))
	if err != nil {
		return t
	}
	return parsed
}

// ValuesEqual is the natural equality used by Equal: times are compared after RoundTrip,
// numbers of different Go types are compared by value at any depth without rounding through
// float64, and everything else is compared structurally, including unexported fields. Types with
// an Equal method are compared with it. Nil and empty slices or maps are considered equal.
func ValuesEqual(actual, expected interface{}) bool {
	if isNil(actual) || isNil(expected) {
		return (isNil(actual) && isNil(expected)) || cmp.Equal(actual, expected, cmpOptions...)
	}
	return cmp.Equal(actual, expected, cmpOptions...)
}

// CheckEqual is the pure form of Equal: it reports through the returned Outcome only.
func CheckEqual(label string, actual, expected interface{}, because ...interface{}) Outcome {
	if ValuesEqual(actual, expected) {
		return pass(label, actual, expected)
	}
	o := fail(label, actual, expected, templateValue,
		label, Describe(expected), Reason(because...), Describe(actual))
	if diffable(actual) && diffable(expected) {
		if diff := cmp.Diff(expected, actual, cmpOptions...); diff != "" {
			o.Message += "\nDifference (-expected +actual):\n" + diff
		}
	}
	return o
}

// Equal asserts that actual equals expected according to ValuesEqual.
func Equal(t helpers.TestContext, label string, actual, expected interface{}, because ...interface{}) bool {
	t.Helper()
	return Require(t, CheckEqual(label, actual, expected, because...))
}

// CheckEqualFold is the pure form of EqualFold: it reports through the returned Outcome only.
func CheckEqualFold(label string, actual, expected string, because ...interface{}) Outcome {
	// strings.EqualFold uses Unicode simple case folding with no locale rules, which is what
	// makes this an ordinal comparison.
	if strings.EqualFold(actual, expected) {
		return pass(label, actual, expected)
	}
	return fail(label, actual, expected, templateValue,
		label, Describe(expected), Reason(because...), Describe(actual))
}

// EqualFold asserts that two strings are equal ignoring case.
func EqualFold(t helpers.TestContext, label string, actual, expected string, because ...interface{}) bool {
	t.Helper()
	return Require(t, CheckEqualFold(label, actual, expected, because...))
}

// CheckSame is the pure form of Same: it reports through the returned Outcome only.
func CheckSame(label string, actual, expected interface{}, because ...interface{}) Outcome {
	if sameReference(actual, expected) {
		return pass(label, actual, expected)
	}
	return fail(label, actual, expected, templateSame,
		label, describeReference(expected), Reason(because...), describeReference(actual))
}

// Same asserts that actual and expected are the same reference: the same pointer, map, slice,
// channel or function value. Two nil values are the same.
func Same(t helpers.TestContext, label string, actual, expected interface{}, because ...interface{}) bool {
	t.Helper()
	return Require(t, CheckSame(label, actual, expected, because...))
}

// CheckTime is the pure form of Time: it reports through the returned Outcome only.
func CheckTime(label string, actual, expected opt.Maybe[time.Time], because ...interface{}) Outcome {
	switch {
	case !actual.IsDefined() && !expected.IsDefined():
		return pass(label, nil, nil)
	case actual.IsDefined() && expected.IsDefined() &&
		RoundTrip(actual.Value()).Equal(RoundTrip(expected.Value())):
		return pass(label, actual.Value(), expected.Value())
	}
	return fail(label, actual.Interface(), expected.Interface(), templateValue,
		label, Describe(expected.Interface()), Reason(because...), Describe(actual.Interface()))
}

// Time asserts that two optional timestamps are equal after RoundTrip normalization. Two absent
// timestamps are equal; an absent one never equals a present one.
func Time(t helpers.TestContext, label string, actual, expected opt.Maybe[time.Time], because ...interface{}) bool {
	t.Helper()
	return Require(t, CheckTime(label, actual, expected, because...))
}

func sameReference(a, b interface{}) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	}
	return a == b
}

func describeReference(value interface{}) string {
	if isNil(value) {
		return "<null>"
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return Describe(value) + " (" + rv.Type().String() + " at " + formatPointer(rv.Pointer()) + ")"
	}
	return Describe(value)
}

func diffable(value interface{}) bool {
	if isNil(value) {
		return false
	}
	t := reflect.TypeOf(value)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == reflect.TypeOf(time.Time{}) {
		return false
	}
	switch t.Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
		return true
	}
	return false
}
