package helpers

import (
	"encoding/json"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	"github.com/launchdarkly/go-test-helpers/v2/jsonhelpers"
)

// AsJSON is just a shortcut for calling json.Marshal and taking only the first result.
func AsJSON(value interface{}) []byte {
	ret, _ := json.Marshal(value)
	return ret
}

// AsJSONString calls json.Marshal and returns the result as a string.
func AsJSONString(value interface{}) string { return string(AsJSON(value)) }

// AsJSONValue calls json.Marshal and returns the result as an ldvalue.Value, which is
// convenient for comparing arbitrary JSON-shaped payloads structurally.
func AsJSONValue(value interface{}) ldvalue.Value {
	if raw, ok := value.(json.RawMessage); ok {
		return ldvalue.Parse(raw)
	}
	return ldvalue.Parse(AsJSON(value))
}

// CanonicalizedJSONString reformats a value as JSON with object properties alphabetized, making
// failure output stable and easier to read.
func CanonicalizedJSONString(value interface{}) string {
	return string(jsonhelpers.CanonicalizeJSON(AsJSON(value)))
}
