package actionresult

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/resultassert/resultassert/framework/opt"
)

const (
	defaultJSONContentType = "application/json; charset=utf-8"
	defaultTextContentType = "text/plain; charset=utf-8"
	defaultHTMLContentType = "text/html; charset=utf-8"
	defaultFileContentType = "application/octet-stream"
)

func (r *EmptyResult) ExecuteResult(ctx *ActionContext) error {
	ctx.Writer.WriteHeader(http.StatusOK)
	return nil
}

func (r *StatusCodeResult) ExecuteResult(ctx *ActionContext) error {
	ctx.Writer.WriteHeader(r.StatusCode)
	return nil
}

func (r *ObjectResult) ExecuteResult(ctx *ActionContext) error {
	contentType := defaultJSONContentType
	if len(r.ContentTypes) != 0 {
		contentType = r.ContentTypes[0]
	}
	return writeValue(ctx.Writer, r.StatusCode.OrElse(http.StatusOK), contentType, r.Value)
}

func (r *ContentResult) ExecuteResult(ctx *ActionContext) error {
	ctx.Writer.Header().Set("Content-Type", orDefault(r.ContentType, defaultTextContentType))
	ctx.Writer.WriteHeader(r.StatusCode.OrElse(http.StatusOK))
	_, err := io.WriteString(ctx.Writer, r.Content)
	return err
}

func (r *JSONResult) ExecuteResult(ctx *ActionContext) error {
	return writeValue(ctx.Writer, r.StatusCode.OrElse(http.StatusOK), orDefault(r.ContentType, defaultJSONContentType), r.Value)
}

func (r *CreatedResult) ExecuteResult(ctx *ActionContext) error {
	return writeWithLocation(ctx, http.StatusCreated, r.Location, r.Value)
}

func (r *CreatedAtActionResult) ExecuteResult(ctx *ActionContext) error {
	location, err := actionURL(ctx, r.ActionName, r.ControllerName, r.RouteValues)
	if err != nil {
		return err
	}
	return writeWithLocation(ctx, http.StatusCreated, location, r.Value)
}

func (r *CreatedAtRouteResult) ExecuteResult(ctx *ActionContext) error {
	location, err := routeURL(ctx, r.RouteName, r.RouteValues)
	if err != nil {
		return err
	}
	return writeWithLocation(ctx, http.StatusCreated, location, r.Value)
}

func (r *AcceptedResult) ExecuteResult(ctx *ActionContext) error {
	return writeWithLocation(ctx, http.StatusAccepted, r.Location, r.Value)
}

func (r *AcceptedAtActionResult) ExecuteResult(ctx *ActionContext) error {
	location, err := actionURL(ctx, r.ActionName, r.ControllerName, r.RouteValues)
	if err != nil {
		return err
	}
	return writeWithLocation(ctx, http.StatusAccepted, location, r.Value)
}

func (r *AcceptedAtRouteResult) ExecuteResult(ctx *ActionContext) error {
	location, err := routeURL(ctx, r.RouteName, r.RouteValues)
	if err != nil {
		return err
	}
	return writeWithLocation(ctx, http.StatusAccepted, location, r.Value)
}

func (r *RedirectResult) ExecuteResult(ctx *ActionContext) error {
	if r.URL == "" {
		return errors.New("redirect URL must not be empty")
	}
	return writeRedirect(ctx, r.URL, r.Permanent, r.PreserveMethod)
}

func (r *LocalRedirectResult) ExecuteResult(ctx *ActionContext) error {
	if !IsLocalURL(r.LocalURL) {
		return fmt.Errorf("%q is not a local URL", r.LocalURL)
	}
	return writeRedirect(ctx, r.LocalURL, r.Permanent, r.PreserveMethod)
}

func (r *RedirectToActionResult) ExecuteResult(ctx *ActionContext) error {
	location, err := actionURL(ctx, r.ActionName, r.ControllerName, r.RouteValues)
	if err != nil {
		return err
	}
	return writeRedirect(ctx, withFragment(location, r.Fragment), r.Permanent, r.PreserveMethod)
}

func (r *RedirectToRouteResult) ExecuteResult(ctx *ActionContext) error {
	location, err := routeURL(ctx, r.RouteName, r.RouteValues)
	if err != nil {
		return err
	}
	return writeRedirect(ctx, withFragment(location, r.Fragment), r.Permanent, r.PreserveMethod)
}

func (r *FileContentResult) ExecuteResult(ctx *ActionContext) error {
	return r.serve(ctx, bytes.NewReader(r.FileContents))
}

func (r *FileStreamResult) ExecuteResult(ctx *ActionContext) error {
	if r.FileStream == nil {
		return errors.New("file stream must not be nil")
	}
	if closer, ok := r.FileStream.(io.Closer); ok {
		defer closer.Close() //nolint:errcheck
	}
	return r.serve(ctx, r.FileStream)
}

func (r *PhysicalFileResult) ExecuteResult(ctx *ActionContext) error {
	f, err := os.Open(r.FileName)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", r.FileName, err)
	}
	defer f.Close() //nolint:errcheck
	file := r.FileResult
	if !file.LastModified.IsDefined() {
		if info, err := f.Stat(); err == nil {
			file.LastModified = opt.Some(info.ModTime())
		}
	}
	return file.serve(ctx, f)
}

func (r *ViewResult) ExecuteResult(ctx *ActionContext) error {
	return renderView(ctx, ViewRequest{
		Name:     r.ViewName,
		Model:    r.Model,
		ViewData: r.ViewData,
		TempData: r.TempData,
	}, r.StatusCode.OrElse(http.StatusOK), r.ContentType)
}

func (r *PartialViewResult) ExecuteResult(ctx *ActionContext) error {
	return renderView(ctx, ViewRequest{
		Name:     r.ViewName,
		Partial:  true,
		Model:    r.Model,
		ViewData: r.ViewData,
		TempData: r.TempData,
	}, r.StatusCode.OrElse(http.StatusOK), r.ContentType)
}

func (r *ChallengeResult) ExecuteResult(ctx *ActionContext) error {
	if ctx.Auth == nil {
		for _, scheme := range r.AuthenticationSchemes {
			ctx.Writer.Header().Add("WWW-Authenticate", scheme)
		}
		ctx.Writer.WriteHeader(http.StatusUnauthorized)
		return nil
	}
	return forEachScheme(r.AuthenticationSchemes, func(scheme string) error {
		return ctx.Auth.Challenge(ctx, scheme, r.Properties)
	})
}

func (r *ForbidResult) ExecuteResult(ctx *ActionContext) error {
	if ctx.Auth == nil {
		ctx.Writer.WriteHeader(http.StatusForbidden)
		return nil
	}
	return forEachScheme(r.AuthenticationSchemes, func(scheme string) error {
		return ctx.Auth.Forbid(ctx, scheme, r.Properties)
	})
}

func (r *SignInResult) ExecuteResult(ctx *ActionContext) error {
	if ctx.Auth == nil {
		return ErrNoAuthentication
	}
	if r.Principal == nil {
		return errors.New("cannot sign in without a principal")
	}
	return ctx.Auth.SignIn(ctx, r.AuthenticationScheme, r.Principal, r.Properties)
}

func (r *SignOutResult) ExecuteResult(ctx *ActionContext) error {
	if ctx.Auth == nil {
		return ErrNoAuthentication
	}
	return forEachScheme(r.AuthenticationSchemes, func(scheme string) error {
		return ctx.Auth.SignOut(ctx, scheme, r.Properties)
	})
}

// IsLocalURL returns true if url is a path on the current host: it starts with "/" or "~/" but
// not with "//" or "/\".
func IsLocalURL(url string) bool {
	switch {
	case strings.HasPrefix(url, "~/"):
		return true
	case url == "/":
		return true
	case strings.HasPrefix(url, "/"):
		return url[1] != '/' && url[1] != '\\'
	}
	return false
}

// RedirectStatusCode returns the status code for a redirect with the given properties.
func RedirectStatusCode(permanent, preserveMethod bool) int {
	switch {
	case permanent && preserveMethod:
		return http.StatusPermanentRedirect
	case permanent:
		return http.StatusMovedPermanently
	case preserveMethod:
		return http.StatusTemporaryRedirect
	}
	return http.StatusFound
}

func writeValue(w http.ResponseWriter, statusCode int, contentType string, value interface{}) error {
	if value == nil {
		w.WriteHeader(statusCode)
		return nil
	}
	if err, ok := value.(error); ok {
		value = errorBody{Error: err.Error()}
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize %T: %w", value, err)
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)
	_, err = w.Write(data)
	return err
}

type errorBody struct {
	Error string `json:"error"`
}

func writeWithLocation(ctx *ActionContext, statusCode int, location string, value interface{}) error {
	if location != "" {
		ctx.Writer.Header().Set("Location", location)
	}
	return writeValue(ctx.Writer, statusCode, defaultJSONContentType, value)
}

func writeRedirect(ctx *ActionContext, location string, permanent, preserveMethod bool) error {
	location = strings.TrimPrefix(location, "~")
	ctx.Writer.Header().Set("Location", location)
	ctx.Writer.WriteHeader(RedirectStatusCode(permanent, preserveMethod))
	return nil
}

func routeURL(ctx *ActionContext, routeName string, values RouteValues) (string, error) {
	if ctx.URLs == nil {
		return "", ErrNoURLGenerator
	}
	return ctx.URLs.RouteURL(routeName, values)
}

func actionURL(ctx *ActionContext, actionName, controllerName string, values RouteValues) (string, error) {
	if ctx.URLs == nil {
		return "", ErrNoURLGenerator
	}
	return ctx.URLs.ActionURL(actionName, controllerName, values)
}

func withFragment(location, fragment string) string {
	if fragment == "" {
		return location
	}
	return location + "#" + fragment
}

func (f FileResult) writeHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Content-Type", orDefault(f.ContentType, defaultFileContentType))
	if f.FileDownloadName != "" {
		h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": f.FileDownloadName}))
	}
	if f.EntityTag != "" {
		h.Set("ETag", f.EntityTag)
	}
	if f.LastModified.IsDefined() {
		h.Set("Last-Modified", f.LastModified.Value().UTC().Format(http.TimeFormat))
	}
	if f.EnableRangeProcessing {
		h.Set("Accept-Ranges", "bytes")
	}
}

// serve sends the file content. If range processing is enabled and the content is seekable, it
// uses http.ServeContent, which also answers conditional requests.
func (f FileResult) serve(ctx *ActionContext, content io.Reader) error {
	f.writeHeaders(ctx.Writer)
	seeker, seekable := content.(io.ReadSeeker)
	if !f.EnableRangeProcessing || !seekable || ctx.Request == nil {
		ctx.Writer.WriteHeader(http.StatusOK)
		_, err := io.Copy(ctx.Writer, content)
		return err
	}
	var modTime time.Time
	if f.LastModified.IsDefined() {
		modTime = f.LastModified.Value()
	}
	http.ServeContent(ctx.Writer, ctx.Request, f.FileDownloadName, modTime, seeker)
	return nil
}

func renderView(ctx *ActionContext, view ViewRequest, statusCode int, contentType string) error {
	if ctx.Views == nil {
		return ErrNoViewEngine
	}
	if view.Name == "" {
		return errors.New("view name must not be empty")
	}
	var buf bytes.Buffer
	if err := ctx.Views.Render(&buf, view); err != nil {
		return fmt.Errorf("failed to render view %q: %w", view.Name, err)
	}
	ctx.Writer.Header().Set("Content-Type", orDefault(contentType, defaultHTMLContentType))
	ctx.Writer.WriteHeader(statusCode)
	_, err := buf.WriteTo(ctx.Writer)
	return err
}

func forEachScheme(schemes []string, fn func(string) error) error {
	if len(schemes) == 0 {
		return fn("")
	}
	for _, scheme := range schemes {
		if err := fn(scheme); err != nil {
			return fmt.Errorf("authentication scheme %q: %w", scheme, err)
		}
	}
	return nil
}

func orDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
