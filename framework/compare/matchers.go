package compare

import (
	"strings"

	m "github.com/launchdarkly/go-test-helpers/v2/matchers"

	"github.com/resultassert/resultassert/framework/helpers"
)

// CheckMatches is the pure form of Matches: it reports through the returned Outcome only.
func CheckMatches(label string, actual interface{}, matcher m.Matcher, because ...interface{}) Outcome {
	recorder := &helpers.TestRecorder{}
	if m.In(recorder).For(label).Assert(actual, matcher) {
		return pass(label, actual, matcher)
	}
	return fail(label, actual, matcher, templateMatcher,
		label, Reason(because...), strings.Join(recorder.Errors, "\n"))
}

// Matches asserts that actual satisfies a matcher from go-test-helpers, for conditions that are
// easier to state as a matcher than as a single expected value.
func Matches(t helpers.TestContext, label string, actual interface{}, matcher m.Matcher, because ...interface{}) bool {
	t.Helper()
	return Require(t, CheckMatches(label, actual, matcher, because...))
}
