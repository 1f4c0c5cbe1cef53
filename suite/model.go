// Package suite reads check suites from JSON or YAML files and runs them against a live target.
//
// A suite file looks like this:
//
//	name: orders
//	constants:
//	  ORDER: 42
//	checks:
//	  - name: create
//	    request: { method: POST, path: /orders, body: { id: "<ORDER>" } }
//	    expect: { kind: Created, location: /orders/<ORDER>, valueAt: { id: "<ORDER>" } }
//
// See ExpandSubstitutions for the constants and parameters properties.
package suite

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"

	"github.com/resultassert/resultassert/framework/harness"
	"github.com/resultassert/resultassert/framework/opt"
)

// Suite is a named list of checks.
type Suite struct {
	Name   string  `json:"name"`
	Checks []Check `json:"checks"`

	// Source is where the suite was read from, if it was read from a file.
	Source SourceInfo `json:"-"`
}

// Check is one request and what its result is expected to be.
type Check struct {
	Name    string      `json:"name"`
	Request RequestSpec `json:"request"`
	Expect  Expectation `json:"expect"`
}

type RequestSpec struct {
	Method  string            `json:"method"`
	Path    string            `json:"path"`
	Headers map[string]string `json:"headers"`

	// Body is sent as JSON, unless it is a string, in which case the string is sent as is.
	Body json.RawMessage `json:"body"`
}

// Expectation lists the properties to check. Undefined properties are not checked.
type Expectation struct {
	// Kind is a result kind name as accepted by actionresult.ParseKind, such as "Created" or
	// "JsonResult".
	Kind                  string                   `json:"kind"`
	StatusCode            opt.Maybe[int]           `json:"statusCode"`
	Location              opt.Maybe[string]        `json:"location"`
	URL                   opt.Maybe[string]        `json:"url"`
	Permanent             opt.Maybe[bool]          `json:"permanent"`
	PreserveMethod        opt.Maybe[bool]          `json:"preserveMethod"`
	Content               opt.Maybe[string]        `json:"content"`
	ContentType           opt.Maybe[string]        `json:"contentType"`
	Value                 json.RawMessage          `json:"value"`
	ValueAt               map[string]ldvalue.Value `json:"valueAt"`
	Schema                json.RawMessage          `json:"schema"`
	FileDownloadName      opt.Maybe[string]        `json:"fileDownloadName"`
	AuthenticationSchemes []string                 `json:"authenticationSchemes"`
}

// Expectation property names, as they appear in suite files.
const (
	propStatusCode            = "statusCode"
	propLocation              = "location"
	propURL                   = "url"
	propPermanent             = "permanent"
	propPreserveMethod        = "preserveMethod"
	propContent               = "content"
	propContentType           = "contentType"
	propValue                 = "value"
	propValueAt               = "valueAt"
	propSchema                = "schema"
	propFileDownloadName      = "fileDownloadName"
	propAuthenticationSchemes = "authenticationSchemes"
)

func (e Expectation) definedProperties() []string {
	var ret []string
	add := func(defined bool, name string) {
		if defined {
			ret = append(ret, name)
		}
	}
	add(e.StatusCode.IsDefined(), propStatusCode)
	add(e.Location.IsDefined(), propLocation)
	add(e.URL.IsDefined(), propURL)
	add(e.Permanent.IsDefined(), propPermanent)
	add(e.PreserveMethod.IsDefined(), propPreserveMethod)
	add(e.Content.IsDefined(), propContent)
	add(e.ContentType.IsDefined(), propContentType)
	add(e.Value != nil, propValue)
	add(len(e.ValueAt) != 0, propValueAt)
	add(e.Schema != nil, propSchema)
	add(e.FileDownloadName.IsDefined(), propFileDownloadName)
	add(e.AuthenticationSchemes != nil, propAuthenticationSchemes)
	return ret
}

// schemaText returns the schema as JSON text. A schema can be written inline as an object, or as
// a string containing the schema.
func (e Expectation) schemaText() (string, error) {
	var s string
	if err := json.Unmarshal(e.Schema, &s); err == nil {
		return s, nil
	}
	if !json.Valid(e.Schema) {
		return "", fmt.Errorf("schema is not valid JSON")
	}
	return string(e.Schema), nil
}

// HarnessRequest converts the check's request to one the target client can send.
func (r RequestSpec) HarnessRequest() harness.Request {
	req := harness.Request{Method: r.Method, Path: r.Path}
	if len(r.Headers) != 0 {
		req.Header = make(http.Header, len(r.Headers))
		for k, v := range r.Headers {
			req.Header.Set(k, v)
		}
	}
	if len(r.Body) != 0 {
		var s string
		if err := json.Unmarshal(r.Body, &s); err == nil {
			req.Body = []byte(s)
			if req.Header.Get("Content-Type") == "" {
				if req.Header == nil {
					req.Header = make(http.Header)
				}
				req.Header.Set("Content-Type", "text/plain; charset=utf-8")
			}
		} else {
			req.Body = []byte(r.Body)
		}
	}
	return req
}

// Load reads suites from files or directories. A suite without a name is named after its file,
// with its parameters if it has any.
func Load(paths ...string) ([]Suite, error) {
	var ret []Suite
	for _, path := range paths {
		sources, err := ReadPath(path)
		if err != nil {
			return nil, err
		}
		for _, source := range sources {
			s, err := Parse(source)
			if err != nil {
				return nil, err
			}
			ret = append(ret, s)
		}
	}
	return ret, nil
}

// Parse parses one expanded source as a Suite.
func Parse(source SourceInfo) (Suite, error) {
	var s Suite
	if err := source.ParseInto(&s); err != nil {
		return Suite{}, err
	}
	s.Source = source
	if s.Name == "" {
		s.Name = source.BaseName
	}
	if ps := source.ParamsString(); ps != "" {
		s.Name += " " + ps
	}
	for i, c := range s.Checks {
		if c.Name == "" {
			s.Checks[i].Name = fmt.Sprintf("%s %s", c.Request.HarnessRequest().MethodName(), c.Request.Path)
		}
	}
	return s, nil
}
