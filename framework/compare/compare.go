// Package compare is the property-comparison primitive that every result assertion is built on.
//
// Each assertion function reads like "Expected <label> to be <expected>, but found <actual>."
// when it fails. The label names the property being checked, conventionally
// "<KindName>.<Field>", for instance "CreatedAtRouteResult.RouteName".
//
// Every function comes in two forms. CheckX is pure: it returns an Outcome and has no other
// effect. X takes a helpers.TestContext, reports a failed Outcome through Errorf, and then calls
// FailNow so that the rest of a fluent chain does not run. X returns false only if FailNow
// returned, which real test contexts never do.
//
// The optional trailing because arguments follow the testify msgAndArgs convention: the first
// element is a format string and the rest are its arguments. The formatted reason is inserted
// into the message, prefixed with "because" unless it already starts with it.
package compare

import (
	"fmt"
	"strings"

	"github.com/resultassert/resultassert/framework/helpers"
)

// Failure message templates. Each one takes the label first and the formatted reason right before
// the ", but" clause.
const (
	templateValue        = "Expected %s to be %s%s, but found %s."
	templateSame         = "Expected %s to refer to %s%s, but found %s."
	templateKeyNotFound  = "Expected %s to contain key %s%s, but the key was not found."
	templateKeyValue     = "Expected %s to contain value %s at key %s%s, but found %s."
	templateType         = "Expected %s to be of type %s%s, but found %s."
	templateNoValue      = "Expected %s to be of type %s%s, but no value was supplied."
	templateSet          = "Expected %s to contain exactly %s in any order%s, but found %s (missing %s, unexpected %s)."
	templateContains     = "Expected %s to contain %s%s, but found %s."
	templatePathNotFound = "Expected %s to have a value at path %q%s, but nothing was found there."
	templatePathValue    = "Expected %s at path %q to be %s%s, but found %s."
	templateSchema       = "Expected %s to match the JSON schema%s, but found %s: %s."
	templateMatcher      = "Expected %s to satisfy a condition%s, but it did not:\n%s"
)

// Outcome is the result of comparing one property against an expectation.
type Outcome struct {
	Label    string
	Expected interface{}
	Actual   interface{}
	Passed   bool

	// Message is empty if Passed is true.
	Message string
}

func pass(label string, actual, expected interface{}) Outcome {
	return Outcome{Label: label, Expected: expected, Actual: actual, Passed: true}
}

func fail(label string, actual, expected interface{}, template string, args ...interface{}) Outcome {
	return Outcome{
		Label:    label,
		Expected: expected,
		Actual:   actual,
		Message:  fmt.Sprintf(template, args...),
	}
}

// Require reports a failed Outcome to t and terminates the test. It returns o.Passed.
func Require(t helpers.TestContext, o Outcome) bool {
	t.Helper()
	if o.Passed {
		return true
	}
	t.Errorf("%s", o.Message)
	t.FailNow()
	return false
}

// Reason formats the because arguments for insertion into a failure message. It returns "" if
// there is nothing to say, or the reason with a leading space otherwise.
func Reason(because ...interface{}) string {
	if len(because) == 0 {
		return ""
	}
	var s string
	switch format := because[0].(type) {
	case string:
		if len(because) > 1 {
			s = fmt.Sprintf(format, because[1:]...)
		} else {
			s = format
		}
	default:
		parts := make([]string, 0, len(because))
		for _, b := range because {
			parts = append(parts, fmt.Sprintf("%+v", b))
		}
		s = strings.Join(parts, " ")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if !strings.HasPrefix(strings.ToLower(s), "because") {
		s = "because " + s
	}
	return " " + s
}
