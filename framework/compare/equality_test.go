package compare

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/resultassert/resultassert/framework/helpers"
	"github.com/resultassert/resultassert/framework/opt"
)

type point struct {
	x, y   int
	labels []string
}

type holder struct {
	Name    string
	Created time.Time
}

func TestEqualMessage(t *testing.T) {
	r := &helpers.TestRecorder{}
	Equal(r, "CreatedAtRouteResult.RouteName", "expectedRoute", "wrongRoute")
	assert.Equal(t, []string{
		`Expected CreatedAtRouteResult.RouteName to be "wrongRoute", but found "expectedRoute".`,
	}, r.Errors)
	assert.True(t, r.Terminated)
}

func TestEqualMessageWithReason(t *testing.T) {
	o := CheckEqual("StatusCodeResult.StatusCode", 404, 200, "the item %s exists", "abc")
	assert.Equal(t,
		"Expected StatusCodeResult.StatusCode to be 200 because the item abc exists, but found 404.", o.Message)
}

func TestEqualNullIsDescribed(t *testing.T) {
	o := CheckEqual("ObjectResult.Value", nil, "x")
	assert.Equal(t, `Expected ObjectResult.Value to be "x", but found <null>.`, o.Message)
}

func TestEqualPasses(t *testing.T) {
	for _, p := range []struct{ actual, expected interface{} }{
		{"a", "a"},
		{nil, nil},
		{(*point)(nil), nil},
		{3, int64(3)},
		{float64(2), 2},
		{point{1, 2, nil}, point{1, 2, []string{}}},
		{&point{1, 2, []string{"a"}}, &point{1, 2, []string{"a"}}},
		{map[string]interface{}{"id": 1}, map[string]interface{}{"id": 1}},
	} {
		assert.True(t, CheckEqual("X", p.actual, p.expected).Passed, "%+v vs %+v", p.actual, p.expected)
	}
}

func TestEqualFails(t *testing.T) {
	for _, p := range []struct{ actual, expected interface{} }{
		{"a", "A"},
		{nil, "a"},
		{3, 4},
		{3, "3"},
		{point{1, 2, nil}, point{1, 3, nil}},
	} {
		assert.False(t, CheckEqual("X", p.actual, p.expected).Passed, "%+v vs %+v", p.actual, p.expected)
	}
}

func TestEqualLargeIntegersKeepPrecision(t *testing.T) {
	for _, p := range []struct{ actual, expected interface{} }{
		{int64(9007199254740993), int64(9007199254740992)},
		{uint64(math.MaxUint64), uint64(math.MaxUint64 - 1)},
		{int64(9007199254740993), uint64(9007199254740992)},
		{int64(-1), uint64(math.MaxUint64)},
		{int64(9007199254740993), float64(9007199254740992)},
		{uint64(math.MaxUint64), float64(math.MaxUint64)},
		{3, 3.5},
	} {
		assert.False(t, CheckEqual("ObjectResult.Value", p.actual, p.expected).Passed,
			"%v (%T) vs %v (%T)", p.actual, p.actual, p.expected, p.expected)
	}
	assert.True(t, CheckEqual("ObjectResult.Value", int64(9007199254740993), uint64(9007199254740993)).Passed)
	assert.True(t, CheckEqual("ObjectResult.Value", int64(9007199254740992), float64(9007199254740992)).Passed)
}

func TestEqualNestedNumbersOfDifferentTypes(t *testing.T) {
	assert.True(t, CheckEqual("X", []interface{}{1}, []interface{}{1.0}).Passed)
	assert.True(t, CheckEqual("X",
		map[string]interface{}{"id": float64(7), "tags": []interface{}{int32(1)}},
		map[string]interface{}{"id": 7, "tags": []interface{}{uint8(1)}}).Passed)
	assert.False(t, CheckEqual("X", []interface{}{1}, []interface{}{1.5}).Passed)
	assert.False(t, CheckEqual("X",
		map[string]interface{}{"id": int64(9007199254740993)},
		map[string]interface{}{"id": int64(9007199254740992)}).Passed)
}

func TestEqualAppendsDiffForStructs(t *testing.T) {
	o := CheckEqual("ObjectResult.Value", holder{Name: "a"}, holder{Name: "b"})
	assert.Contains(t, o.Message, "Expected ObjectResult.Value to be")
	assert.Contains(t, o.Message, "Difference (-expected +actual):")
}

func TestEqualNormalizesNestedTimes(t *testing.T) {
	base := time.Date(2024, time.March, 1, 12, 30, 0, 0, time.UTC)
	assert.True(t, CheckEqual("X", holder{Created: base.Add(time.Nanosecond)}, holder{Created: base}).Passed)
	assert.False(t, CheckEqual("X", holder{Created: base.Add(2 * time.Second)}, holder{Created: base}).Passed)
}

func TestEqualFold(t *testing.T) {
	assert.True(t, CheckEqualFold("X", "application/JSON", "Application/json").Passed)
	assert.False(t, CheckEqualFold("X", "text/plain", "text/html").Passed)
	// Turkish dotless i does not fold to I outside of Turkish locale rules.
	assert.False(t, CheckEqualFold("X", "ı", "I").Passed)
	assert.False(t, CheckEqualFold("X", "İ", "i").Passed)
}

func TestSame(t *testing.T) {
	p1 := &point{x: 1}
	p2 := &point{x: 1}
	assert.True(t, CheckSame("SignInResult.Principal", p1, p1).Passed)
	assert.False(t, CheckSame("SignInResult.Principal", p1, p2).Passed)
	assert.True(t, CheckSame("SignInResult.Principal", nil, (*point)(nil)).Passed)
	assert.False(t, CheckSame("SignInResult.Principal", nil, p1).Passed)

	o := CheckSame("SignInResult.Principal", p2, p1)
	assert.Contains(t, o.Message, "Expected SignInResult.Principal to refer to ")
}

func TestRoundTrip(t *testing.T) {
	local := time.FixedZone("X", 3600)
	value := time.Date(2024, time.March, 1, 13, 30, 15, 123456789, local)
	assert.Equal(t, time.Date(2024, time.March, 1, 12, 30, 15, 0, time.UTC), RoundTrip(value))
}

func TestTime(t *testing.T) {
	base := time.Date(2024, time.March, 1, 12, 30, 0, 0, time.UTC)

	t.Run("equal within the same second", func(t *testing.T) {
		assert.True(t, CheckTime("P.IssuedUtc", opt.Some(base.Add(time.Nanosecond)), opt.Some(base)).Passed)
	})

	t.Run("equal across time zones", func(t *testing.T) {
		assert.True(t, CheckTime("P.IssuedUtc", opt.Some(base.In(time.FixedZone("Y", -7200))), opt.Some(base)).Passed)
	})

	t.Run("two seconds apart", func(t *testing.T) {
		o := CheckTime("P.IssuedUtc", opt.Some(base.Add(2*time.Second)), opt.Some(base))
		assert.False(t, o.Passed)
		assert.Equal(t, "Expected P.IssuedUtc to be 2024-03-01T12:30:00Z, but found 2024-03-01T12:30:02Z.", o.Message)
	})

	t.Run("both absent", func(t *testing.T) {
		assert.True(t, CheckTime("P.IssuedUtc", opt.None[time.Time](), opt.None[time.Time]()).Passed)
	})

	t.Run("absent versus present", func(t *testing.T) {
		o := CheckTime("P.IssuedUtc", opt.None[time.Time](), opt.Some(base))
		assert.Equal(t, "Expected P.IssuedUtc to be 2024-03-01T12:30:00Z, but found <null>.", o.Message)
	})
}
