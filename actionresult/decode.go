package actionresult

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/resultassert/resultassert/framework/opt"
)

// Decode reads an HTTP response and returns the result kind that most plausibly produced it.
// It consumes and closes the response body.
//
//   - 201 and 202 are CreatedResult and AcceptedResult, with the Location header.
//   - 301, 302, 303, 307 and 308 are a RedirectResult.
//   - 401 with a WWW-Authenticate header is a ChallengeResult, and 403 with no body is a
//     ForbidResult.
//   - A response with "Content-Disposition: attachment" is a FileContentResult.
//   - Any other response without a body is a StatusCodeResult.
//   - A JSON body is a JSONResult if the status is 2xx, or an ObjectResult otherwise.
//   - Any other body is a ContentResult.
//
// JSON values are decoded the way encoding/json decodes into an interface{}.
func Decode(resp *http.Response) (Result, error) {
	if resp == nil {
		return nil, errors.New("no response")
	}
	var body []byte
	if resp.Body != nil {
		data, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read response body: %w", err)
		}
		body = data
	}

	status := resp.StatusCode
	contentType := resp.Header.Get("Content-Type")
	decodeValue := func() (interface{}, error) {
		if len(body) == 0 || !IsJSONContentType(contentType) {
			return nil, nil
		}
		var value interface{}
		if err := json.Unmarshal(body, &value); err != nil {
			return nil, fmt.Errorf("response has JSON content type but body could not be parsed: %w", err)
		}
		return value, nil
	}

	switch {
	case status == http.StatusCreated || status == http.StatusAccepted:
		value, err := decodeValue()
		if err != nil {
			return nil, err
		}
		location := resp.Header.Get("Location")
		if status == http.StatusCreated {
			return &CreatedResult{Location: location, Value: value}, nil
		}
		return &AcceptedResult{Location: location, Value: value}, nil

	case isRedirectStatus(status):
		return &RedirectResult{
			URL:            resp.Header.Get("Location"),
			Permanent:      status == http.StatusMovedPermanently || status == http.StatusPermanentRedirect,
			PreserveMethod: status == http.StatusTemporaryRedirect || status == http.StatusPermanentRedirect,
		}, nil

	case status == http.StatusUnauthorized && len(resp.Header.Values("WWW-Authenticate")) != 0:
		return &ChallengeResult{AuthenticationSchemes: challengeSchemes(resp.Header.Values("WWW-Authenticate"))}, nil

	case status == http.StatusForbidden && len(body) == 0:
		return &ForbidResult{}, nil
	}

	if name, ok := attachmentName(resp.Header.Get("Content-Disposition")); ok {
		file := &FileContentResult{
			FileResult: FileResult{
				ContentType:           contentType,
				FileDownloadName:      name,
				EntityTag:             resp.Header.Get("ETag"),
				EnableRangeProcessing: resp.Header.Get("Accept-Ranges") == "bytes",
			},
			FileContents: body,
		}
		if lastModified, err := http.ParseTime(resp.Header.Get("Last-Modified")); err == nil {
			file.LastModified = opt.Some(lastModified.UTC())
		}
		return file, nil
	}

	if len(body) == 0 {
		return &StatusCodeResult{StatusCode: status}, nil
	}

	if IsJSONContentType(contentType) {
		value, err := decodeValue()
		if err != nil {
			return nil, err
		}
		if status >= 200 && status < 300 {
			return &JSONResult{Value: value, ContentType: contentType, StatusCode: opt.Some(status)}, nil
		}
		return &ObjectResult{Value: value, StatusCode: opt.Some(status), ContentTypes: []string{contentType}}, nil
	}

	return &ContentResult{Content: string(body), ContentType: contentType, StatusCode: opt.Some(status)}, nil
}

// IsJSONContentType returns true for "application/json" and for "+json" media types such as
// "application/problem+json", with or without parameters.
func IsJSONContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func isRedirectStatus(status int) bool {
	switch status {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return true
	}
	return false
}

// challengeSchemes takes the scheme name from each WWW-Authenticate value, ignoring parameters
// such as realm.
func challengeSchemes(values []string) []string {
	var ret []string
	for _, v := range values {
		if fields := strings.Fields(v); len(fields) != 0 {
			ret = append(ret, strings.TrimSuffix(fields[0], ","))
		}
	}
	return ret
}

func attachmentName(contentDisposition string) (string, bool) {
	if contentDisposition == "" {
		return "", false
	}
	disposition, params, err := mime.ParseMediaType(contentDisposition)
	if err != nil || disposition != "attachment" {
		return "", false
	}
	return params["filename"], true
}
