package compare

import (
	"strings"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"

	"github.com/resultassert/resultassert/framework/helpers"
)

// CheckJSONEqual is the pure form of JSONEqual: it reports through the returned Outcome only.
func CheckJSONEqual(label string, actual, expected interface{}, because ...interface{}) Outcome {
	actualValue, expectedValue := helpers.AsJSONValue(actual), helpers.AsJSONValue(expected)
	if actualValue.Equal(expectedValue) {
		return pass(label, actual, expected)
	}
	return fail(label, actual, expected, templateValue,
		label, expectedValue.JSONString(), Reason(because...), actualValue.JSONString())
}

// JSONEqual asserts that two values have the same JSON representation, ignoring property order
// and whitespace. Pass a json.RawMessage to compare against literal JSON text.
func JSONEqual(t helpers.TestContext, label string, actual, expected interface{}, because ...interface{}) bool {
	t.Helper()
	return Require(t, CheckJSONEqual(label, actual, expected, because...))
}

// CheckJSONPath is the pure form of JSONPath: it reports through the returned Outcome only.
func CheckJSONPath(label string, actual interface{}, path string, expected interface{},
	because ...interface{}) Outcome {
	result := gjson.Get(helpers.AsJSONString(actual), path)
	if !result.Exists() {
		return fail(label, nil, expected, templatePathNotFound, label, path, Reason(because...))
	}
	found := ldvalue.Parse([]byte(result.Raw))
	want := helpers.AsJSONValue(expected)
	if found.Equal(want) || ValuesEqual(result.Value(), expected) {
		return pass(label, result.Value(), expected)
	}
	return fail(label, result.Value(), expected, templatePathValue,
		label, path, want.JSONString(), Reason(because...), found.JSONString())
}

// JSONPath asserts that the JSON representation of actual has a value at the given gjson path,
// and that the value is JSON-equal to expected.
func JSONPath(t helpers.TestContext, label string, actual interface{}, path string, expected interface{},
	because ...interface{}) bool {
	t.Helper()
	return Require(t, CheckJSONPath(label, actual, path, expected, because...))
}

// CheckJSONSchema is the pure form of JSONSchema: it reports through the returned Outcome only.
func CheckJSONSchema(label string, actual interface{}, schema string, because ...interface{}) Outcome {
	document := helpers.AsJSONString(actual)
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewStringLoader(document),
	)
	if err != nil {
		return fail(label, actual, schema, templateSchema,
			label, Reason(because...), document, "invalid schema or document: "+err.Error())
	}
	if result.Valid() {
		return pass(label, actual, schema)
	}
	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	return fail(label, actual, schema, templateSchema,
		label, Reason(because...), document, strings.Join(problems, "; "))
}

// JSONSchema asserts that the JSON representation of actual is valid against a JSON schema.
func JSONSchema(t helpers.TestContext, label string, actual interface{}, schema string, because ...interface{}) bool {
	t.Helper()
	return Require(t, CheckJSONSchema(label, actual, schema, because...))
}
