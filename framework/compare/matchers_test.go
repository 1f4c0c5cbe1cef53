package compare

import (
	"testing"

	m "github.com/launchdarkly/go-test-helpers/v2/matchers"
	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	assert.True(t, CheckMatches("ContentResult.Content", "hello world", m.StringContains("world")).Passed)

	o := CheckMatches("ContentResult.Content", "hello", m.StringContains("world"), "greetings are global")
	assert.False(t, o.Passed)
	assert.Contains(t, o.Message, "Expected ContentResult.Content to satisfy a condition because greetings are global, but it did not:")
	assert.Contains(t, o.Message, "ContentResult.Content")
}
