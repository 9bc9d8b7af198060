package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TestContext holds the running server's address and the last response.
type TestContext struct {
	BaseURL    string
	HTTPClient *http.Client

	LastStatus int
	LastBody   []byte
	LastHeader http.Header
	lastJSON   map[string]any
}

// NewTestContext targets the server at baseURL.
func NewTestContext(baseURL string) *TestContext {
	return &TestContext{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Reset clears per-scenario state.
func (tc *TestContext) Reset() {
	tc.LastStatus = 0
	tc.LastBody = nil
	tc.LastHeader = nil
	tc.lastJSON = nil
}

// POST sends body as JSON.
func (tc *TestContext) POST(path string, body any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal body: %w", err)
	}
	return tc.do(http.MethodPost, path, bytes.NewReader(raw), map[string]string{"Content-Type": "application/json"})
}

// POSTForm sends values as a url-encoded form.
func (tc *TestContext) POSTForm(path string, values url.Values) error {
	return tc.do(http.MethodPost, path, strings.NewReader(values.Encode()), map[string]string{"Content-Type": "application/x-www-form-urlencoded"})
}

// POSTRaw sends body verbatim with the given content type.
func (tc *TestContext) POSTRaw(path, contentType, body string) error {
	return tc.do(http.MethodPost, path, strings.NewReader(body), map[string]string{"Content-Type": contentType})
}

// GET issues a GET with optional headers.
func (tc *TestContext) GET(path string, headers map[string]string) error {
	return tc.do(http.MethodGet, path, nil, headers)
}

func (tc *TestContext) do(method, path string, body io.Reader, headers map[string]string) error {
	req, err := http.NewRequestWithContext(context.Background(), method, tc.BaseURL+path, body)
	if err != nil {
		return err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := tc.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	tc.Reset()
	tc.LastStatus = resp.StatusCode
	tc.LastHeader = resp.Header
	tc.LastBody, err = io.ReadAll(resp.Body)
	return err
}

// GetResponseField resolves a dot-separated path in the last JSON response.
func (tc *TestContext) GetResponseField(field string) (any, error) {
	if tc.lastJSON == nil {
		if err := json.Unmarshal(tc.LastBody, &tc.lastJSON); err != nil {
			return nil, fmt.Errorf("response is not a JSON object: %w", err)
		}
	}

	var cur any = tc.lastJSON
	for _, part := range strings.Split(field, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q: %q is not an object", field, part)
		}
		cur, ok = obj[part]
		if !ok {
			return nil, fmt.Errorf("field %q not found in response", field)
		}
	}
	return cur, nil
}

// ResponseContains reports whether field resolves in the last response.
func (tc *TestContext) ResponseContains(field string) bool {
	_, err := tc.GetResponseField(field)
	return err == nil
}

// StatusCode returns the last response status.
func (tc *TestContext) StatusCode() int {
	return tc.LastStatus
}

// Header returns a header of the last response.
func (tc *TestContext) Header(name string) string {
	return tc.LastHeader.Get(name)
}
