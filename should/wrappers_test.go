package should

import (
	"errors"
	"strings"
	"testing"
	"time"

	m "github.com/launchdarkly/go-test-helpers/v2/matchers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resultassert/resultassert/actionresult"
	"github.com/resultassert/resultassert/framework/helpers"
	"github.com/resultassert/resultassert/framework/opt"
)

type product struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Tags  []string `json:"tags,omitempty"`
	price int
}

type validationError struct {
	Field string
}

func (e *validationError) Error() string { return e.Field + " is invalid" }

const productSchema = `{"type":"object","required":["id","name"],"properties":{"id":{"type":"integer"}}}`

func TestObjectAssertions(t *testing.T) {
	result := actionresult.OkObject(product{ID: 1, Name: "lamp", Tags: []string{"home"}},
		actionresult.WithContentType("application/json"), actionresult.WithContentType("text/json"))

	assert.Len(t, record(func(t helpers.TestContext) {
		Result(t, result).BeOKObject().
			WithContentTypes([]string{"text/json", "application/json"}).
			WithValue(product{ID: 1, Name: "lamp", Tags: []string{"home"}}).
			WithValueJSON(`{"name":"lamp","id":1,"tags":["home"]}`).
			WithValueAt("tags.0", "home").
			WithValueMatchingSchema(productSchema).
			WithValueMatching(m.Not(m.BeNil()))
	}), 0)

	errs := record(func(t helpers.TestContext) {
		Result(t, result).BeObject().WithValueAt("name", "desk")
	})
	assert.Equal(t, []string{`Expected ObjectResult.Value at path "name" to be "desk", but found "lamp".`}, errs)
}

func TestObjectValueComparesUnexportedFields(t *testing.T) {
	errs := record(func(t helpers.TestContext) {
		Result(t, actionresult.OkObject(product{ID: 1, price: 5})).BeOKObject().WithValue(product{ID: 1, price: 6})
	})
	require.Len(t, errs, 1)
	assert.True(t, strings.HasPrefix(errs[0], "Expected OkObjectResult.Value to be "))
}

func TestValueAsAndErrorAs(t *testing.T) {
	var p product
	assert.Len(t, record(func(t helpers.TestContext) {
		p = ValueAs[product](Result(t, actionresult.OkObject(product{ID: 7})).BeOKObject())
	}), 0)
	assert.Equal(t, 7, p.ID)

	var verr *validationError
	assert.Len(t, record(func(t helpers.TestContext) {
		verr = ErrorAs[*validationError](Result(t, actionresult.BadRequestObject(&validationError{Field: "name"})).BeBadRequestObject())
	}), 0)
	assert.Equal(t, "name", verr.Field)

	var err error
	assert.Len(t, record(func(t helpers.TestContext) {
		err = ErrorAs[error](Result(t, actionresult.BadRequestObject(errors.New("bad"))).BeBadRequestObject())
	}), 0)
	assert.EqualError(t, err, "bad")

	assert.Equal(t, []string{
		"Expected BadRequestObjectResult.Error to be of type error, but found string.",
	}, record(func(t helpers.TestContext) {
		ErrorAs[error](Result(t, actionresult.BadRequestObject("bad")).BeBadRequestObject())
	}))

	assert.Equal(t, []string{
		"Expected JsonResult.Value to be of type should.product, but found int.",
	}, record(func(t helpers.TestContext) {
		ValueAs[product](Result(t, actionresult.JSON(3)).BeJSON())
	}))
}

func TestContentAssertions(t *testing.T) {
	result := actionresult.Content("<p>hi</p>", "text/HTML", actionresult.WithStatusCode(201))
	assert.Len(t, record(func(t helpers.TestContext) {
		Result(t, result).BeContent().WithContent("<p>hi</p>").WithContentType("text/html").WithStatusCode(201)
	}), 0)

	assert.Equal(t, []string{`Expected ContentResult.Content to be "bye", but found "<p>hi</p>".`},
		record(func(t helpers.TestContext) { Result(t, result).BeContent().WithContent("bye") }))
}

func TestJSONAssertions(t *testing.T) {
	result := actionresult.JSON(map[string]interface{}{"count": 2}, actionresult.WithStatusCode(200))
	assert.Len(t, record(func(t helpers.TestContext) {
		Result(t, result).BeJSON().
			WithStatusCode(200).
			WithValue(map[string]interface{}{"count": 2}).
			WithValueJSON(`{"count":2}`).
			WithValueAt("count", 2).
			WithValueMatchingSchema(`{"type":"object"}`).
			WithValueMatching(m.JSONProperty("count").Should(m.Equal(2)))
	}), 0)

	assert.Equal(t, []string{`Expected JsonResult.ContentType to be "application/json", but found "".`},
		record(func(t helpers.TestContext) { Result(t, result).BeJSON().WithContentType("application/json") }))
}

func TestCreatedAndAcceptedAssertions(t *testing.T) {
	assert.Len(t, record(func(t helpers.TestContext) {
		Result(t, actionresult.Created("/p/1", product{ID: 1})).BeCreated().
			WithLocation("/p/1").WithValue(product{ID: 1}).WithValueAt("id", 1)
		Result(t, actionresult.Accepted("/jobs/1", nil)).BeAccepted().WithLocation("/jobs/1").WithValue(nil)
		Result(t, actionresult.CreatedAtAction("Get", "Products", actionresult.RouteValues{"id": 1}, "v")).
			BeCreatedAtAction().WithActionName("Get").WithControllerName("Products").WithRouteValue("id", 1).WithValue("v")
		Result(t, actionresult.AcceptedAtAction("Status", "Jobs", actionresult.RouteValues{"id": "j"}, nil)).
			BeAcceptedAtAction().WithActionName("Status").WithControllerName("Jobs").WithRouteValue("id", "j")
		Result(t, actionresult.AcceptedAtRoute("job", actionresult.RouteValues{"id": 3}, `{}`)).
			BeAcceptedAtRoute().WithRouteName("job").WithRouteValue("id", 3).WithValueJSON(`"{}"`)
	}), 0)

	assert.Equal(t, []string{`Expected CreatedAtActionResult.RouteValues to contain key "slug", but the key was not found.`},
		record(func(t helpers.TestContext) {
			Result(t, actionresult.CreatedAtAction("Get", "Products", actionresult.RouteValues{"id": 1}, nil)).
				BeCreatedAtAction().WithRouteValue("slug", "x")
		}))

	assert.Equal(t, []string{`Expected CreatedAtRouteResult.RouteValues to contain value 2 at key "id", but found 1.`},
		record(func(t helpers.TestContext) {
			Result(t, actionresult.CreatedAtRoute("p", actionresult.RouteValues{"id": 1}, nil)).
				BeCreatedAtRoute().WithRouteValue("id", 2)
		}))
}

func TestRedirectAssertions(t *testing.T) {
	assert.Len(t, record(func(t helpers.TestContext) {
		Result(t, actionresult.Redirect("https://x", actionresult.WithPreserveMethod())).BeRedirect().
			WithURL("https://x").WithPermanent(false).WithPreserveMethod(true)
		Result(t, actionresult.LocalRedirect("/home", actionresult.WithPermanent())).BeLocalRedirect().
			WithLocalURL("/home").WithPermanent(true).WithPreserveMethod(false)
		Result(t, actionresult.RedirectToAction("Index", "Home", actionresult.RouteValues{"page": 2},
			actionresult.WithFragment("top"))).BeRedirectToAction().
			WithActionName("Index").WithControllerName("Home").WithFragment("top").WithRouteValue("page", 2).
			WithPermanent(false).WithPreserveMethod(false)
		Result(t, actionresult.RedirectToRoute("home", nil)).BeRedirectToRoute().
			WithRouteName("home").WithFragment("").WithPermanent(false).WithPreserveMethod(false)
	}), 0)

	assert.Equal(t, []string{`Expected LocalRedirectResult.LocalURL to be "/b", but found "/a".`},
		record(func(t helpers.TestContext) { Result(t, actionresult.LocalRedirect("/a")).BeLocalRedirect().WithLocalURL("/b") }))
}

func TestFileAssertions(t *testing.T) {
	modified := time.Date(2024, time.February, 3, 4, 5, 6, 0, time.UTC)
	file := actionresult.File([]byte{1, 2, 3}, "application/pdf", actionresult.WithDownloadName("a.pdf"),
		actionresult.WithEntityTag(`"x"`), actionresult.WithLastModified(modified.Add(300*time.Millisecond)),
		actionresult.WithRangeProcessing())
	stream := strings.NewReader("s")

	assert.Len(t, record(func(t helpers.TestContext) {
		Result(t, file).BeFileContent().
			WithFileContents([]byte{1, 2, 3}).WithContentType("Application/PDF").WithFileDownloadName("a.pdf").
			WithEntityTag(`"x"`).WithLastModified(modified).WithEnableRangeProcessing(true)
		Result(t, actionresult.FileStream(stream, "text/plain")).BeFileStream().
			WithFileStream(stream).WithLastModified(time.Time{}).WithEnableRangeProcessing(false)
		Result(t, actionresult.PhysicalFile("/tmp/a.txt", "text/plain")).BePhysicalFile().
			WithFileName("/tmp/a.txt").WithContentType("text/plain").WithFileDownloadName("")
	}), 0)

	assert.Equal(t, []string{"Expected FileContentResult.LastModified to be 2024-02-03T04:05:08Z, but found 2024-02-03T04:05:06.3Z."},
		record(func(t helpers.TestContext) {
			Result(t, file).BeFileContent().WithLastModified(modified.Add(2 * time.Second))
		}))

	assert.Len(t, record(func(t helpers.TestContext) {
		Result(t, actionresult.FileStream(strings.NewReader("s"), "text/plain")).BeFileStream().WithFileStream(stream)
	}), 1)
}

func TestViewAssertions(t *testing.T) {
	view := actionresult.View("Index", &product{ID: 3}, actionresult.WithViewData("Title", "Home"),
		actionresult.WithTempData("Flash", "Saved"))

	var model *product
	assert.Len(t, record(func(t helpers.TestContext) {
		a := Result(t, view).BeView().WithViewName("Index").WithViewData("Title", "Home").WithTempData("Flash", "Saved")
		model = ModelAs[*product](a)
	}), 0)
	assert.Equal(t, 3, model.ID)

	var partialModel int
	assert.Len(t, record(func(t helpers.TestContext) {
		a := Result(t, actionresult.PartialView("Row", 5, actionresult.WithStatusCode(200),
			actionresult.WithContentType("text/html"))).BePartialView().
			WithViewName("Row").WithStatusCode(200).WithContentType("TEXT/HTML")
		partialModel = ModelAs[int](a)
	}), 0)
	assert.Equal(t, 5, partialModel)

	assert.Equal(t, []string{`Expected ViewResult.ViewData to contain key "Missing", but the key was not found.`},
		record(func(t helpers.TestContext) { Result(t, view).BeView().WithViewData("Missing", 1) }))

	assert.Equal(t, []string{"Expected ViewResult.Model to be of type string, but found *should.product."},
		record(func(t helpers.TestContext) { ModelAs[string](Result(t, view).BeView()) }))

	assert.Equal(t, []string{"Expected ViewResult.StatusCode to be 200, but found <null>."},
		record(func(t helpers.TestContext) { Result(t, view).BeView().WithStatusCode(200) }))
}

func TestAuthenticationAssertions(t *testing.T) {
	issued := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	props := actionresult.NewAuthenticationProperties(map[string]string{"provider": "github"})
	props.RedirectURI = "/dashboard"
	props.IsPersistent = true
	props.AllowRefresh = opt.Some(false)
	props.SetIssuedUTC(opt.Some(issued))
	principal := &actionresult.Principal{Name: "alice"}

	assert.Len(t, record(func(t helpers.TestContext) {
		Result(t, actionresult.ChallengeWithProperties(props, "Bearer", "Cookies")).BeChallenge().
			WithAuthenticationSchemes([]string{"Cookies", "Bearer"}).
			ContainAuthenticationScheme("Bearer").
			WithRedirectURI("/dashboard").
			WithIsPersistent(true).
			WithIssuedUTC(issued.Add(999 * time.Millisecond)).
			WithExpiresUTC(time.Time{}).
			WithAllowRefresh(false).
			WithItem("provider", "github")
		Result(t, actionresult.Forbid()).BeForbid().WithAuthenticationSchemes(nil).WithRedirectURI("")
		Result(t, actionresult.SignOutWithProperties(props, "Cookies")).BeSignOut().
			ContainAuthenticationScheme("Cookies").WithItem("provider", "github")
		Result(t, actionresult.SignIn(principal, "Cookies", actionresult.WithProperties(props))).BeSignIn().
			WithAuthenticationScheme("Cookies").WithPrincipal(principal).WithIsPersistent(true)
	}), 0)

	assert.Equal(t, []string{
		`Expected ChallengeResult.AuthenticationSchemes to contain exactly ["Bearer"] in any order, ` +
			`but found ["Bearer", "Cookies"] (missing [], unexpected ["Cookies"]).`,
	}, record(func(t helpers.TestContext) {
		Result(t, actionresult.Challenge("Bearer", "Cookies")).BeChallenge().WithAuthenticationSchemes([]string{"Bearer"})
	}))

	assert.Equal(t, []string{"Expected ForbidResult.Properties.IssuedUTC to be 2024-06-01T12:00:00Z, but found <null>."},
		record(func(t helpers.TestContext) { Result(t, actionresult.Forbid()).BeForbid().WithIssuedUTC(issued) }))

	assert.Equal(t, []string{"Expected SignOutResult.Properties.AllowRefresh to be true, but found <null>."},
		record(func(t helpers.TestContext) { Result(t, actionresult.SignOut()).BeSignOut().WithAllowRefresh(true) }))

	errs := record(func(t helpers.TestContext) {
		Result(t, actionresult.SignIn(&actionresult.Principal{Name: "alice"}, "Cookies")).BeSignIn().WithPrincipal(principal)
	})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Expected SignInResult.Principal to refer to ")
}
