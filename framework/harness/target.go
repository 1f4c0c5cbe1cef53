// Package harness talks to a live web application whose responses are being checked.
package harness

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/resultassert/resultassert/framework"
	"github.com/resultassert/resultassert/framework/helpers"
)

const readinessPollInterval = time.Millisecond * 100

// TargetInfo is what the target returned for the initial readiness query.
type TargetInfo struct {
	// Name is the "name" property of a JSON status response, if the target provided one.
	Name string `json:"name"`

	// StatusCode is the status of the readiness response.
	StatusCode int `json:"-"`

	// FullData is the entire body of the readiness response.
	FullData []byte `json:"-"`
}

// Target is a web application that checks send requests to.
//
// It never follows redirects, so that a redirect is decoded as a RedirectResult rather than as
// whatever the redirect pointed to.
type Target struct {
	baseURL string
	info    TargetInfo
	timeout time.Duration
	client  *http.Client
	logger  framework.Logger
}

// NewTarget creates a Target and verifies that it is responding, by querying its base URL until
// it gets a response that is not a 5xx error or until timeout elapses. Progress is written to
// output. The same timeout applies to each request sent with Do.
func NewTarget(
	baseURL string,
	timeout time.Duration,
	debugLogger framework.Logger,
	output io.Writer,
) (*Target, error) {
	if debugLogger == nil {
		debugLogger = framework.NullLogger()
	}
	if output == nil {
		output = io.Discard
	}
	t := &Target{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		timeout: timeout,
		client: &http.Client{
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		logger: debugLogger,
	}
	info, err := t.queryTargetInfo(timeout, output)
	if err != nil {
		return nil, err
	}
	t.info = info
	return t, nil
}

// BaseURL returns the URL that request paths are relative to.
func (t *Target) BaseURL() string {
	return t.baseURL
}

// Info returns the information received from the readiness query.
func (t *Target) Info() TargetInfo {
	return t.info
}

// WithLogger returns a copy of the Target that writes debug output to logger.
func (t *Target) WithLogger(logger framework.Logger) *Target {
	if logger == nil {
		logger = framework.NullLogger()
	}
	ret := *t
	ret.logger = logger
	return &ret
}

func (t *Target) queryTargetInfo(timeout time.Duration, output io.Writer) (TargetInfo, error) {
	helpers.MustFprintf(output, "Connecting to target at %s", t.baseURL)

	// Every query shares the overall deadline.
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var info TargetInfo
	var lastErr error
	ready := helpers.PollForSpecificResultValue(func() bool {
		helpers.MustFprintf(output, ".")
		info, lastErr = t.queryOnce(ctx)
		return lastErr == nil
	}, timeout, readinessPollInterval, true)
	helpers.MustFprintln(output)

	if !ready {
		if lastErr == nil {
			lastErr = errors.New("no query completed")
		}
		return TargetInfo{}, fmt.Errorf("timed out, result of last query was: %w", lastErr)
	}
	if json.Valid(info.FullData) {
		t.logger.Printf("Readiness query returned: %s", helpers.CanonicalizedJSONString(json.RawMessage(info.FullData)))
	} else if len(info.FullData) != 0 {
		t.logger.Printf("Readiness query returned: %s", string(info.FullData))
	}
	return info, nil
}

func (t *Target) queryOnce(ctx context.Context) (TargetInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"/", nil)
	if err != nil {
		return TargetInfo{}, err
	}
	resp, err := t.client.Do(req)
	if err != nil {
		return TargetInfo{}, err
	}
	data, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return TargetInfo{}, err
	}
	if resp.StatusCode >= 500 {
		return TargetInfo{}, fmt.Errorf("target returned status code %d", resp.StatusCode)
	}
	var info TargetInfo
	if strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
		_ = json.Unmarshal(data, &info) // a status body is optional, so a malformed one is not an error
	}
	info.StatusCode = resp.StatusCode
	info.FullData = data
	return info, nil
}
