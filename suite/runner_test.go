package suite

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resultassert/resultassert/actionresult"
	"github.com/resultassert/resultassert/framework/harness"
	"github.com/resultassert/resultassert/framework/opt"
	"github.com/resultassert/resultassert/framework/scope"
)

const ordersSuite = `---
name: orders
constants:
  ID: 2
checks:
  - name: get
    request: { path: /orders/1 }
    expect:
      kind: Json
      statusCode: 200
      valueAt: { name: widget, id: 1 }
      schema: { type: object, required: [id, name] }
  - name: create
    request: { method: POST, path: /orders, body: { name: gadget } }
    expect: { kind: Created, location: "/orders/<ID>", value: { id: "<ID>" } }
  - name: redirect
    request: { path: /old }
    expect: { kind: Redirect, url: /new, permanent: true, statusCode: 301 }
  - name: challenge
    request: { path: /secret }
    expect: { kind: Challenge, authenticationSchemes: [Bearer] }
  - name: missing
    request: { path: /missing }
    expect: { kind: StatusCode, statusCode: 404 }
  - name: wrong
    request: { path: /missing }
    expect: { kind: StatusCode, statusCode: 200 }
`

func ordersHandler() http.Handler {
	env := actionresult.Environment{}
	mux := http.NewServeMux()
	mux.Handle("/orders/1", actionresult.Handle(env, func(*http.Request) actionresult.Result {
		return actionresult.JSON(map[string]interface{}{"id": 1, "name": "widget"})
	}))
	mux.Handle("/orders", actionresult.Handle(env, func(*http.Request) actionresult.Result {
		return actionresult.Created("/orders/2", map[string]interface{}{"id": 2})
	}))
	mux.Handle("/old", actionresult.Handle(env, func(*http.Request) actionresult.Result {
		return actionresult.RedirectPermanent("/new")
	}))
	mux.Handle("/secret", actionresult.Handle(env, func(*http.Request) actionresult.Result {
		return actionresult.Challenge("Bearer")
	}))
	mux.Handle("/", actionresult.Handle(env, func(*http.Request) actionresult.Result {
		return actionresult.NotFound()
	}))
	return mux
}

func TestRunSuites(t *testing.T) {
	sources, err := ExpandSubstitutions([]byte(ordersSuite))
	require.NoError(t, err)
	require.Len(t, sources, 1)
	s, err := Parse(sources[0])
	require.NoError(t, err)

	httphelpers.WithServer(ordersHandler(), func(server *httptest.Server) {
		target, err := harness.NewTarget(server.URL, time.Second*5, nil, nil)
		require.NoError(t, err)

		results := RunSuites(target, []Suite{s}, scope.Configuration{})

		assert.False(t, results.OK())
		require.Len(t, results.Failures, 1, "failures: %+v", results.Failures)
		failure := results.Failures[0]
		assert.Equal(t, scope.ID{"orders", "wrong"}, failure.ID)
		require.Len(t, failure.Errors, 1)
		assert.Contains(t, failure.Errors[0].Error(), "StatusCodeResult.StatusCode")
		assert.Contains(t, failure.Errors[0].Error(), "404")
		assert.Len(t, results.Checks, 8) // six checks, the suite, and the root
	})
}

func TestRunSuitesFilter(t *testing.T) {
	s := Suite{Name: "s", Checks: []Check{
		{Name: "kept", Request: RequestSpec{Path: "/missing"}, Expect: Expectation{Kind: "StatusCode"}},
		{Name: "skipped", Request: RequestSpec{Path: "/missing"}, Expect: Expectation{Kind: "Json"}},
	}}
	var filters scope.RegexFilters
	require.NoError(t, filters.MustNotMatch.Set("s/skipped"))

	httphelpers.WithServer(ordersHandler(), func(server *httptest.Server) {
		target, err := harness.NewTarget(server.URL, time.Second*5, nil, nil)
		require.NoError(t, err)
		results := RunSuites(target, []Suite{s}, scope.Configuration{Filter: filters})
		assert.True(t, results.OK())
	})
}

func TestRunCheckReportsRequestFailure(t *testing.T) {
	var target *harness.Target
	httphelpers.WithServer(httphelpers.HandlerWithStatus(200), func(server *httptest.Server) {
		var err error
		target, err = harness.NewTarget(server.URL, time.Second*5, nil, nil)
		require.NoError(t, err)
	})
	// the server is closed now
	results := RunSuites(target, []Suite{{Name: "s", Checks: []Check{{Name: "c"}}}}, scope.Configuration{})
	require.Len(t, results.Failures, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "request failed: ")
}

func verifyErrors(result actionresult.Result, e Expectation) []error {
	results := scope.Run(scope.Configuration{}, func(t *scope.T) {
		t.Run("verify", func(t *scope.T) {
			Verify(t, result, e)
		})
	})
	if len(results.Failures) == 0 {
		return nil
	}
	return results.Failures[0].Errors
}

func TestVerify(t *testing.T) {
	created := &actionresult.CreatedResult{Location: "/orders/1", Value: map[string]interface{}{"id": 1.0}}

	t.Run("passes", func(t *testing.T) {
		assert.Len(t, verifyErrors(created, Expectation{
			Kind:       "CreatedResult",
			StatusCode: opt.Some(201),
			Location:   opt.Some("/orders/1"),
			Value:      []byte(`{"id":1}`),
			Schema:     []byte(`{"type":"object"}`),
		}), 0)
	})

	t.Run("wrong location", func(t *testing.T) {
		errs := verifyErrors(created, Expectation{Location: opt.Some("/orders/2")})
		require.Len(t, errs, 1)
		assert.Equal(t, `Expected CreatedResult.Location to be "/orders/2", but found "/orders/1".`, errs[0].Error())
	})

	t.Run("wrong kind", func(t *testing.T) {
		errs := verifyErrors(created, Expectation{Kind: "Accepted"})
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0].Error(), "AcceptedResult")
		assert.Contains(t, errs[0].Error(), "CreatedResult")
	})

	t.Run("unknown kind", func(t *testing.T) {
		errs := verifyErrors(created, Expectation{Kind: "Sideways"})
		require.Len(t, errs, 1)
		assert.Equal(t, `unknown result kind "Sideways" in expectation`, errs[0].Error())
	})

	t.Run("property that does not apply", func(t *testing.T) {
		errs := verifyErrors(created, Expectation{Content: opt.Some("x")})
		require.Len(t, errs, 1)
		assert.Equal(t, `expectation property "content" does not apply to CreatedResult`, errs[0].Error())
	})

	t.Run("value at path", func(t *testing.T) {
		json := &actionresult.JSONResult{Value: map[string]interface{}{"items": []interface{}{"a", "b"}}}
		assert.Len(t, verifyErrors(json, Expectation{}), 0)
		errs := verifyErrors(json, Expectation{Kind: "json", Value: []byte(`{"items":["a"]}`)})
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0].Error(), "Expected JsonResult.Value to be")
	})

	t.Run("no result", func(t *testing.T) {
		errs := verifyErrors(nil, Expectation{})
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0].Error(), "no value was supplied")
	})
}
