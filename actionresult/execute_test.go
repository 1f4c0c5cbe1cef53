package actionresult

import (
	"errors"
	"html/template"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resultassert/resultassert/framework"
	"github.com/resultassert/resultassert/framework/opt"
)

type item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func makeRouter() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/items/{id}", nil).Name("item")
	router.HandleFunc("/items/{id}", nil).Name("Items.Get")
	router.HandleFunc("/home", nil).Name("Index")
	return router
}

func makeEnvironment() Environment {
	return Environment{URLs: MuxURLs{Router: makeRouter()}}
}

// execute runs a result through Handle and returns the recorded response.
func execute(t *testing.T, env Environment, result Result) *http.Response {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	Handle(env, func(*http.Request) Result { return result }).ServeHTTP(rec, req)
	return rec.Result()
}

// roundTrip executes a result and decodes the response.
func roundTrip(t *testing.T, env Environment, result Result) Result {
	t.Helper()
	decoded, err := Decode(execute(t, env, result))
	require.NoError(t, err)
	return decoded
}

func TestExecuteStatusCode(t *testing.T) {
	resp := execute(t, Environment{}, NotFound())
	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, &StatusCodeResult{StatusCode: 404}, roundTrip(t, Environment{}, NotFound()))
}

func TestExecuteNilResultIsEmpty(t *testing.T) {
	resp := execute(t, Environment{}, nil)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestExecuteJSON(t *testing.T) {
	resp := execute(t, Environment{}, JSON(item{ID: 1, Name: "a"}))
	assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))

	decoded := roundTrip(t, Environment{}, JSON(item{ID: 1, Name: "a"}))
	require.IsType(t, &JSONResult{}, decoded)
	assert.Equal(t, map[string]interface{}{"id": float64(1), "name": "a"}, decoded.(*JSONResult).Value)
	assert.Equal(t, 200, decoded.(*JSONResult).StatusCode.Value())
}

func TestExecuteObjectWithErrorStatus(t *testing.T) {
	decoded := roundTrip(t, Environment{}, BadRequestObject(errors.New("name is required")))
	require.IsType(t, &ObjectResult{}, decoded)
	o := decoded.(*ObjectResult)
	assert.Equal(t, opt.Some(400), o.StatusCode)
	assert.Equal(t, map[string]interface{}{"error": "name is required"}, o.Value)
}

func TestExecuteContent(t *testing.T) {
	decoded := roundTrip(t, Environment{}, Content("hello", "text/plain", WithStatusCode(409)))
	assert.Equal(t, &ContentResult{Content: "hello", ContentType: "text/plain", StatusCode: opt.Some(409)}, decoded)
}

func TestExecuteCreated(t *testing.T) {
	decoded := roundTrip(t, Environment{}, Created("/items/1", item{ID: 1}))
	require.IsType(t, &CreatedResult{}, decoded)
	assert.Equal(t, "/items/1", decoded.(*CreatedResult).Location)
}

func TestExecuteCreatedAtRouteUsesMuxRoute(t *testing.T) {
	resp := execute(t, makeEnvironment(), CreatedAtRoute("item", RouteValues{"id": 42, "expand": "all"}, item{ID: 42}))
	assert.Equal(t, 201, resp.StatusCode)
	assert.Equal(t, "/items/42?expand=all", resp.Header.Get("Location"))
}

func TestExecuteAcceptedAtAction(t *testing.T) {
	resp := execute(t, makeEnvironment(), AcceptedAtAction("Get", "Items", RouteValues{"id": 7}, nil))
	assert.Equal(t, 202, resp.StatusCode)
	assert.Equal(t, "/items/7", resp.Header.Get("Location"))
}

func TestExecuteRouteErrors(t *testing.T) {
	logger := &framework.CapturingLogger{}
	env := Environment{URLs: MuxURLs{Router: makeRouter()}, Logger: logger}

	resp := execute(t, env, CreatedAtRoute("nope", nil, nil))
	assert.Equal(t, 500, resp.StatusCode)
	assert.Contains(t, logger.Output().ToString(""), `no route named "nope"`)

	resp = execute(t, env, CreatedAtRoute("item", RouteValues{}, nil))
	assert.Equal(t, 500, resp.StatusCode)

	resp = execute(t, Environment{}, CreatedAtRoute("item", nil, nil))
	assert.Equal(t, 500, resp.StatusCode)
}

func TestExecuteRedirects(t *testing.T) {
	for _, p := range []struct {
		result   Result
		status   int
		location string
	}{
		{Redirect("https://example.com/"), 302, "https://example.com/"},
		{RedirectPermanent("https://example.com/"), 301, "https://example.com/"},
		{Redirect("/a", WithPreserveMethod()), 307, "/a"},
		{Redirect("/a", WithPermanent(), WithPreserveMethod()), 308, "/a"},
		{LocalRedirect("~/home"), 302, "/home"},
		{RedirectToAction("Index", "", nil, WithFragment("top")), 302, "/home#top"},
		{RedirectToRoute("item", RouteValues{"id": "x"}, WithPermanent()), 301, "/items/x"},
	} {
		resp := execute(t, makeEnvironment(), p.result)
		assert.Equal(t, p.status, resp.StatusCode, p.result.Kind().String())
		assert.Equal(t, p.location, resp.Header.Get("Location"), p.result.Kind().String())
	}
}

func TestRedirectRoundTrip(t *testing.T) {
	decoded := roundTrip(t, Environment{}, Redirect("/a", WithPermanent(), WithPreserveMethod()))
	assert.Equal(t, &RedirectResult{URL: "/a", Permanent: true, PreserveMethod: true}, decoded)
}

func TestLocalRedirectRejectsOtherHosts(t *testing.T) {
	for _, url := range []string{"https://evil.example", "//evil.example", `/\evil.example`, ""} {
		assert.False(t, IsLocalURL(url), url)
		assert.Equal(t, 500, execute(t, Environment{}, LocalRedirect(url)).StatusCode, url)
	}
	assert.True(t, IsLocalURL("/"))
	assert.True(t, IsLocalURL("/a/b?c=d"))
}

func TestExecuteFileContentRoundTrip(t *testing.T) {
	modified := time.Date(2024, time.January, 5, 8, 0, 0, 0, time.UTC)
	result := File([]byte("a,b\n"), "text/csv",
		WithDownloadName("report.csv"), WithEntityTag(`"v1"`), WithLastModified(modified), WithRangeProcessing())

	decoded := roundTrip(t, Environment{}, result)
	require.IsType(t, &FileContentResult{}, decoded)
	f := decoded.(*FileContentResult)
	assert.Equal(t, []byte("a,b\n"), f.FileContents)
	assert.Equal(t, "text/csv", f.ContentType)
	assert.Equal(t, "report.csv", f.FileDownloadName)
	assert.Equal(t, `"v1"`, f.EntityTag)
	assert.Equal(t, opt.Some(modified), f.LastModified)
	assert.True(t, f.EnableRangeProcessing)
}

func TestExecuteFileStreamWithoutRanges(t *testing.T) {
	resp := execute(t, Environment{}, FileStream(strings.NewReader("data"), "", WithDownloadName("d.bin")))
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "data", string(body))
	assert.Equal(t, "application/octet-stream", resp.Header.Get("Content-Type"))
	assert.Empty(t, resp.Header.Get("Accept-Ranges"))
}

func TestExecuteFileStreamHonorsRange(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Range", "bytes=1-2")
	result := FileStream(strings.NewReader("abcdef"), "text/plain", WithRangeProcessing())
	Handle(Environment{}, func(*http.Request) Result { return result }).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusPartialContent, rec.Code)
	assert.Equal(t, "bc", rec.Body.String())
}

func TestExecutePhysicalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("notes"), 0o600))

	resp := execute(t, Environment{}, PhysicalFile(path, "text/plain", WithDownloadName("notes.txt")))
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "notes", string(body))
	assert.NotEmpty(t, resp.Header.Get("Last-Modified"))

	assert.Equal(t, 500, execute(t, Environment{}, PhysicalFile(path+".missing", "text/plain")).StatusCode)
}

func TestExecuteViews(t *testing.T) {
	templates := template.Must(template.New("Index").Parse(`<h1>{{.ViewData.Title}}</h1><p>{{.Model}}</p>`))
	template.Must(templates.New("Row").Parse(`<tr>{{.Model}}</tr>`))
	env := Environment{Views: TemplateViews{Templates: templates}}

	decoded := roundTrip(t, env, View("Index", "<b>", WithViewData("Title", "Home")))
	require.IsType(t, &ContentResult{}, decoded)
	assert.Equal(t, "<h1>Home</h1><p>&lt;b&gt;</p>", decoded.(*ContentResult).Content)
	assert.Equal(t, "text/html; charset=utf-8", decoded.(*ContentResult).ContentType)

	decoded = roundTrip(t, env, PartialView("Row", 3))
	assert.Equal(t, "<tr>3</tr>", decoded.(*ContentResult).Content)

	assert.Equal(t, 500, execute(t, env, View("Missing", nil)).StatusCode)
	assert.Equal(t, 500, execute(t, Environment{}, View("Index", nil)).StatusCode)
}

func TestExecuteChallengeAndForbidWithoutService(t *testing.T) {
	decoded := roundTrip(t, Environment{}, Challenge("Bearer", "Basic"))
	assert.Equal(t, &ChallengeResult{AuthenticationSchemes: []string{"Bearer", "Basic"}}, decoded)

	decoded = roundTrip(t, Environment{}, Forbid())
	assert.Equal(t, &ForbidResult{}, decoded)
}

type fakeAuth struct {
	calls []string
}

func (f *fakeAuth) Challenge(ctx *ActionContext, scheme string, props *AuthenticationProperties) error {
	f.calls = append(f.calls, "challenge "+scheme)
	ctx.Writer.Header().Add("WWW-Authenticate", scheme+` realm="test"`)
	ctx.Writer.WriteHeader(http.StatusUnauthorized)
	return nil
}

func (f *fakeAuth) Forbid(ctx *ActionContext, scheme string, props *AuthenticationProperties) error {
	f.calls = append(f.calls, "forbid "+scheme)
	ctx.Writer.WriteHeader(http.StatusForbidden)
	return nil
}

func (f *fakeAuth) SignIn(ctx *ActionContext, scheme string, principal *Principal, props *AuthenticationProperties) error {
	f.calls = append(f.calls, "signin "+scheme+" "+principal.Name)
	ctx.Writer.WriteHeader(http.StatusNoContent)
	return nil
}

func (f *fakeAuth) SignOut(ctx *ActionContext, scheme string, props *AuthenticationProperties) error {
	f.calls = append(f.calls, "signout "+scheme)
	return nil
}

func TestExecuteAuthenticationWithService(t *testing.T) {
	auth := &fakeAuth{}
	env := Environment{Auth: auth}

	decoded := roundTrip(t, env, Challenge("Bearer"))
	assert.Equal(t, &ChallengeResult{AuthenticationSchemes: []string{"Bearer"}}, decoded)

	roundTrip(t, env, SignIn(&Principal{Name: "alice"}, "Cookies"))
	roundTrip(t, env, SignOut("Cookies", "External"))
	assert.Equal(t, []string{"challenge Bearer", "signin Cookies alice", "signout Cookies", "signout External"}, auth.calls)
}

func TestExecuteSignInRequiresService(t *testing.T) {
	assert.Equal(t, 500, execute(t, Environment{}, SignIn(&Principal{}, "Cookies")).StatusCode)
	assert.Equal(t, 500, execute(t, Environment{}, SignOut()).StatusCode)
}
