package compare

import (
	"github.com/resultassert/resultassert/framework/helpers"
)

// CheckSet is the pure form of Set: it reports through the returned Outcome only.
func CheckSet[T comparable](label string, actual, expected []T, because ...interface{}) Outcome {
	missing := difference(expected, actual)
	unexpected := difference(actual, expected)
	if len(missing) == 0 && len(unexpected) == 0 {
		return pass(label, actual, expected)
	}
	return fail(label, actual, expected, templateSet,
		label, Describe(expected), Reason(because...), Describe(actual), Describe(missing), Describe(unexpected))
}

// Set asserts that actual and expected contain the same distinct items, ignoring order and
// duplicates.
func Set[T comparable](t helpers.TestContext, label string, actual, expected []T, because ...interface{}) bool {
	t.Helper()
	return Require(t, CheckSet(label, actual, expected, because...))
}

// CheckContains is the pure form of Contains: it reports through the returned Outcome only.
func CheckContains[T comparable](label string, actual []T, item T, because ...interface{}) Outcome {
	if helpers.SliceContains(item, actual) {
		return pass(label, actual, item)
	}
	return fail(label, actual, item, templateContains,
		label, Describe(item), Reason(because...), Describe(actual))
}

// Contains asserts that item is one of the elements of actual.
func Contains[T comparable](t helpers.TestContext, label string, actual []T, item T, because ...interface{}) bool {
	t.Helper()
	return Require(t, CheckContains(label, actual, item, because...))
}

// CheckKeyValue is the pure form of KeyValue: it reports through the returned Outcome only.
func CheckKeyValue[K comparable, V any](label string, values map[K]V, key K, expected V, because ...interface{}) Outcome {
	actual, found := values[key]
	if !found {
		return fail(label, nil, expected, templateKeyNotFound,
			label, Describe(key), Reason(because...))
	}
	if ValuesEqual(actual, expected) {
		return pass(label, actual, expected)
	}
	return fail(label, actual, expected, templateKeyValue,
		label, Describe(expected), Describe(key), Reason(because...), Describe(actual))
}

// KeyValue asserts that values has an entry for key whose value equals expected according to
// ValuesEqual. A missing key and a different value produce different messages.
func KeyValue[K comparable, V any](t helpers.TestContext, label string, values map[K]V, key K, expected V,
	because ...interface{}) bool {
	t.Helper()
	return Require(t, CheckKeyValue(label, values, key, expected, because...))
}

// difference returns the distinct items of a that are not in b, in the order they first appear.
func difference[T comparable](a, b []T) []T {
	present := make(map[T]struct{}, len(b))
	for _, item := range b {
		present[item] = struct{}{}
	}
	ret := []T{}
	for _, item := range a {
		if _, ok := present[item]; ok {
			continue
		}
		present[item] = struct{}{}
		ret = append(ret, item)
	}
	return ret
}
