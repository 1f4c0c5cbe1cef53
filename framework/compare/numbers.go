package compare

import (
	"math"
	"reflect"

	"github.com/google/go-cmp/cmp"
)

type numberClass int

const (
	notNumber numberClass = iota
	signedNumber
	unsignedNumber
	floatNumber
)

// Bounds of the integer ranges as float64 values. Both are exact powers of two.
const (
	minInt64AsFloat    = -9223372036854775808.0
	int64LimitAsFloat  = 9223372036854775808.0
	uint64LimitAsFloat = 18446744073709551616.0
)

type number struct {
	class numberClass
	i     int64
	u     uint64
	f     float64
}

func numberOf(value interface{}) number {
	if value == nil {
		return number{}
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{class: signedNumber, i: rv.Int()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{class: unsignedNumber, u: rv.Uint()}
	case reflect.Float32, reflect.Float64:
		return number{class: floatNumber, f: rv.Float()}
	}
	return number{}
}

// numbersOfDifferentTypes selects the pairs that numericOption compares: both values are numbers
// but their Go types differ, as when a decoded JSON float64 meets an int literal. Pairs of the same
// type are left to the usual comparison, which is exact.
func numbersOfDifferentTypes(x, y interface{}) bool {
	if numberOf(x).class == notNumber || numberOf(y).class == notNumber {
		return false
	}
	return reflect.TypeOf(x) != reflect.TypeOf(y)
}

// numbersEqual compares two numbers by value without losing precision: integers are never
// converted to float64, and a float only equals an integer if it is a whole number in range.
func numbersEqual(x, y interface{}) bool {
	a, b := numberOf(x), numberOf(y)
	if a.class > b.class {
		a, b = b, a
	}
	switch {
	case a.class == signedNumber && b.class == signedNumber:
		return a.i == b.i
	case a.class == unsignedNumber && b.class == unsignedNumber:
		return a.u == b.u
	case a.class == floatNumber && b.class == floatNumber:
		return a.f == b.f
	case a.class == signedNumber && b.class == unsignedNumber:
		return a.i >= 0 && uint64(a.i) == b.u
	case a.class == signedNumber && b.class == floatNumber:
		return floatEqualsSigned(b.f, a.i)
	case a.class == unsignedNumber && b.class == floatNumber:
		return floatEqualsUnsigned(b.f, a.u)
	}
	return false
}

func floatEqualsSigned(f float64, i int64) bool {
	if f != math.Trunc(f) || f < minInt64AsFloat || f >= int64LimitAsFloat {
		return false
	}
	return int64(f) == i
}

func floatEqualsUnsigned(f float64, u uint64) bool {
	if f != math.Trunc(f) || f < 0 || f >= uint64LimitAsFloat {
		return false
	}
	return uint64(f) == u
}

// numericOption applies numbersEqual wherever cmp meets a pair of numbers of different types, at
// the top level or nested in slices, maps and struct fields.
func numericOption() cmp.Option {
	return cmp.FilterValues(numbersOfDifferentTypes, cmp.Comparer(numbersEqual))
}
