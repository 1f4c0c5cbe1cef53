package suite

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/resultassert/resultassert/actionresult"
	"github.com/resultassert/resultassert/framework/compare"
	"github.com/resultassert/resultassert/framework/harness"
	"github.com/resultassert/resultassert/framework/helpers"
	"github.com/resultassert/resultassert/framework/scope"
	"github.com/resultassert/resultassert/should"
)

// RunSuites runs every check of every suite against the target, with one scope per suite and one
// child scope per check.
func RunSuites(target *harness.Target, suites []Suite, config scope.Configuration) scope.Results {
	return scope.Run(config, func(t *scope.T) {
		for _, s := range suites {
			s := s
			t.Run(s.Name, func(t *scope.T) {
				for _, c := range s.Checks {
					c := c
					t.Run(c.Name, func(t *scope.T) {
						RunCheck(t, target, c)
					})
				}
			})
		}
	})
}

// RunCheck sends the check's request and verifies the result. It stops at the first failure.
func RunCheck(t *scope.T, target *harness.Target, c Check) {
	req := c.Request.HarnessRequest()
	result, err := target.WithLogger(t.DebugLogger()).Do(context.Background(), req)
	if err != nil {
		t.Errorf("request failed: %s", err)
		t.FailNow()
	}
	Verify(t, result, c.Expect)
}

// Verify checks a result against an expectation. An expectation property that does not apply to
// the kind of result is reported as a failure.
func Verify(t helpers.TestContext, result actionresult.Result, e Expectation) {
	t.Helper()
	a := should.Result(t, result)
	if e.Kind != "" {
		kind, ok := actionresult.ParseKind(e.Kind)
		if !ok {
			t.Errorf("unknown result kind %q in expectation", e.Kind)
			t.FailNow()
			return
		}
		a.BeKind(kind)
	} else {
		compare.NotNil(t, "result", result, "a result")
	}
	if result == nil {
		return
	}

	kind := result.Kind()
	supported := supportedProperties[kind]
	for _, p := range e.definedProperties() {
		if !helpers.SliceContains(p, supported) {
			t.Errorf("expectation property %q does not apply to %s", p, kind)
			t.FailNow()
			return
		}
	}
	var schema string
	if e.Schema != nil {
		s, err := e.schemaText()
		if err != nil {
			t.Errorf("invalid expectation: %s", err)
			t.FailNow()
			return
		}
		schema = s
	}

	switch r := result.(type) {
	case *actionresult.EmptyResult:
		if e.StatusCode.IsDefined() {
			compare.Equal(t, statusLabel(kind), http.StatusOK, e.StatusCode.Value())
		}

	case *actionresult.StatusCodeResult:
		s := a.BeStatusCode()
		if e.StatusCode.IsDefined() {
			s.WithStatusCode(e.StatusCode.Value())
		}

	case *actionresult.ObjectResult:
		o := a.BeObject()
		if e.StatusCode.IsDefined() {
			o.WithStatusCode(e.StatusCode.Value())
		}
		if e.ContentType.IsDefined() {
			o.WithContentTypes([]string{e.ContentType.Value()})
		}
		verifyValue(t, kind, r.Value, e, schema)

	case *actionresult.JSONResult:
		j := a.BeJSON()
		if e.StatusCode.IsDefined() {
			j.WithStatusCode(e.StatusCode.Value())
		}
		if e.ContentType.IsDefined() {
			j.WithContentType(e.ContentType.Value())
		}
		verifyValue(t, kind, r.Value, e, schema)

	case *actionresult.ContentResult:
		c := a.BeContent()
		if e.StatusCode.IsDefined() {
			c.WithStatusCode(e.StatusCode.Value())
		}
		if e.Content.IsDefined() {
			c.WithContent(e.Content.Value())
		}
		if e.ContentType.IsDefined() {
			c.WithContentType(e.ContentType.Value())
		}

	case *actionresult.CreatedResult:
		if e.StatusCode.IsDefined() {
			compare.Equal(t, statusLabel(kind), http.StatusCreated, e.StatusCode.Value())
		}
		if e.Location.IsDefined() {
			a.BeCreated().WithLocation(e.Location.Value())
		}
		verifyValue(t, kind, r.Value, e, schema)

	case *actionresult.AcceptedResult:
		if e.StatusCode.IsDefined() {
			compare.Equal(t, statusLabel(kind), http.StatusAccepted, e.StatusCode.Value())
		}
		if e.Location.IsDefined() {
			a.BeAccepted().WithLocation(e.Location.Value())
		}
		verifyValue(t, kind, r.Value, e, schema)

	case *actionresult.RedirectResult:
		if e.StatusCode.IsDefined() {
			compare.Equal(t, statusLabel(kind),
				actionresult.RedirectStatusCode(r.Permanent, r.PreserveMethod), e.StatusCode.Value())
		}
		ra := a.BeRedirect()
		if e.URL.IsDefined() {
			ra.WithURL(e.URL.Value())
		}
		if e.Permanent.IsDefined() {
			ra.WithPermanent(e.Permanent.Value())
		}
		if e.PreserveMethod.IsDefined() {
			ra.WithPreserveMethod(e.PreserveMethod.Value())
		}

	case *actionresult.LocalRedirectResult:
		if e.StatusCode.IsDefined() {
			compare.Equal(t, statusLabel(kind),
				actionresult.RedirectStatusCode(r.Permanent, r.PreserveMethod), e.StatusCode.Value())
		}
		la := a.BeLocalRedirect()
		if e.URL.IsDefined() {
			la.WithLocalURL(e.URL.Value())
		}
		if e.Permanent.IsDefined() {
			la.WithPermanent(e.Permanent.Value())
		}
		if e.PreserveMethod.IsDefined() {
			la.WithPreserveMethod(e.PreserveMethod.Value())
		}

	case *actionresult.FileContentResult:
		if e.StatusCode.IsDefined() {
			compare.Equal(t, statusLabel(kind), http.StatusOK, e.StatusCode.Value())
		}
		f := a.BeFileContent()
		if e.ContentType.IsDefined() {
			f.WithContentType(e.ContentType.Value())
		}
		if e.FileDownloadName.IsDefined() {
			f.WithFileDownloadName(e.FileDownloadName.Value())
		}

	case *actionresult.ChallengeResult:
		if e.StatusCode.IsDefined() {
			compare.Equal(t, statusLabel(kind), http.StatusUnauthorized, e.StatusCode.Value())
		}
		if e.AuthenticationSchemes != nil {
			a.BeChallenge().WithAuthenticationSchemes(e.AuthenticationSchemes)
		}

	case *actionresult.ForbidResult:
		if e.StatusCode.IsDefined() {
			compare.Equal(t, statusLabel(kind), http.StatusForbidden, e.StatusCode.Value())
		}
		if e.AuthenticationSchemes != nil {
			a.BeForbid().WithAuthenticationSchemes(e.AuthenticationSchemes)
		}
	}
}

func verifyValue(t helpers.TestContext, kind actionresult.Kind, value interface{}, e Expectation, schema string) {
	t.Helper()
	label := kind.String() + ".Value"
	if e.Value != nil {
		compare.JSONEqual(t, label, value, json.RawMessage(e.Value))
	}
	for _, path := range helpers.SortedKeys(e.ValueAt) {
		compare.JSONPath(t, label, value, path, e.ValueAt[path])
	}
	if e.Schema != nil {
		compare.JSONSchema(t, label, value, schema)
	}
}

func statusLabel(kind actionresult.Kind) string {
	return kind.String() + ".StatusCode"
}

// supportedProperties lists the expectation properties that apply to each kind of result that a
// response can be decoded as.
var supportedProperties = map[actionresult.Kind][]string{ //nolint:gochecknoglobals
	actionresult.KindEmpty:         {propStatusCode},
	actionresult.KindStatusCode:    {propStatusCode},
	actionresult.KindObject:        {propStatusCode, propContentType, propValue, propValueAt, propSchema},
	actionresult.KindJSON:          {propStatusCode, propContentType, propValue, propValueAt, propSchema},
	actionresult.KindContent:       {propStatusCode, propContent, propContentType},
	actionresult.KindCreated:       {propStatusCode, propLocation, propValue, propValueAt, propSchema},
	actionresult.KindAccepted:      {propStatusCode, propLocation, propValue, propValueAt, propSchema},
	actionresult.KindRedirect:      {propStatusCode, propURL, propPermanent, propPreserveMethod},
	actionresult.KindLocalRedirect: {propStatusCode, propURL, propPermanent, propPreserveMethod},
	actionresult.KindFileContent:   {propStatusCode, propContentType, propFileDownloadName},
	actionresult.KindChallenge:     {propStatusCode, propAuthenticationSchemes},
	actionresult.KindForbid:        {propStatusCode, propAuthenticationSchemes},
}
