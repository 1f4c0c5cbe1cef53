package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	t.Run("same items in another order", func(t *testing.T) {
		assert.True(t, CheckSet("ChallengeResult.AuthenticationSchemes",
			[]string{"Cookies", "Bearer"}, []string{"Bearer", "Cookies"}).Passed)
	})

	t.Run("both empty", func(t *testing.T) {
		assert.True(t, CheckSet[string]("X", nil, []string{}).Passed)
	})

	t.Run("missing and unexpected items are listed", func(t *testing.T) {
		o := CheckSet("ChallengeResult.AuthenticationSchemes", []string{"Cookies", "Basic"}, []string{"Bearer", "Cookies"})
		assert.Equal(t,
			`Expected ChallengeResult.AuthenticationSchemes to contain exactly ["Bearer", "Cookies"] in any order, `+
				`but found ["Cookies", "Basic"] (missing ["Bearer"], unexpected ["Basic"]).`,
			o.Message)
	})
}

func TestContains(t *testing.T) {
	assert.True(t, CheckContains("X", []string{"a", "b"}, "b").Passed)
	o := CheckContains("ForbidResult.AuthenticationSchemes", []string{"a"}, "b", "only b may forbid")
	assert.Equal(t,
		`Expected ForbidResult.AuthenticationSchemes to contain "b" because only b may forbid, but found ["a"].`,
		o.Message)
}

func TestKeyValue(t *testing.T) {
	values := map[string]interface{}{"id": 1, "name": "x"}

	t.Run("match", func(t *testing.T) {
		assert.True(t, CheckKeyValue("CreatedAtRouteResult.RouteValues", values, "id", interface{}(1)).Passed)
	})

	t.Run("key not found", func(t *testing.T) {
		o := CheckKeyValue("CreatedAtRouteResult.RouteValues", values, "other", interface{}(1))
		assert.Equal(t,
			`Expected CreatedAtRouteResult.RouteValues to contain key "other", but the key was not found.`,
			o.Message)
	})

	t.Run("value mismatch", func(t *testing.T) {
		o := CheckKeyValue("CreatedAtRouteResult.RouteValues", values, "id", interface{}(2))
		assert.Equal(t,
			`Expected CreatedAtRouteResult.RouteValues to contain value 2 at key "id", but found 1.`,
			o.Message)
	})
}
