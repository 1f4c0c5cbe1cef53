package harness

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/resultassert/resultassert/actionresult"
)

// Request describes an HTTP request to send to the Target.
type Request struct {
	Method string
	// Path is relative to the Target's base URL. An absolute URL is used as is.
	Path   string
	Header http.Header
	Body   []byte
}

// MethodName returns the method, defaulting to GET.
func (r Request) MethodName() string {
	if r.Method == "" {
		return http.MethodGet
	}
	return strings.ToUpper(r.Method)
}

// URL returns the full URL for the request.
func (t *Target) URL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return t.baseURL + path
}

// Do sends a request and decodes the response into the result that most plausibly produced it.
func (t *Target) Do(ctx context.Context, r Request) (actionresult.Result, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}
	resp, err := t.send(ctx, r)
	if err != nil {
		return nil, err
	}
	result, err := actionresult.Decode(resp)
	if err != nil {
		return nil, fmt.Errorf("could not decode response to %s %s: %w", r.MethodName(), r.Path, err)
	}
	t.logger.Printf("Decoded response as %s", result.Kind())
	return result, nil
}

func (t *Target) send(ctx context.Context, r Request) (*http.Response, error) {
	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}
	url := t.URL(r.Path)
	req, err := http.NewRequestWithContext(ctx, r.MethodName(), url, body)
	if err != nil {
		return nil, fmt.Errorf("invalid request %s %s: %w", r.MethodName(), r.Path, err)
	}
	for name, values := range r.Header {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	if r.Body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	if r.Body != nil {
		t.logger.Printf("Sending %s %s: %s", req.Method, url, string(r.Body))
	} else {
		t.logger.Printf("Sending %s %s", req.Method, url)
	}
	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s failed: %w", req.Method, url, err)
	}
	t.logger.Printf("Received status %d (Content-Type: %q)", resp.StatusCode, resp.Header.Get("Content-Type"))
	return resp, nil
}
