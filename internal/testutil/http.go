package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// Envelope mirrors the API response wrapper for decoding in tests.
// Data is left raw so each test can unmarshal it into the type it
// expects.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Detail  string          `json:"detail"`
}

// NewJSONRequest creates an HTTP request with body marshaled as JSON.
// A nil body yields a request with no body.
func NewJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	if body == nil {
		return httptest.NewRequest(method, target, nil)
	}
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// NewRawRequest creates an HTTP request with the body used verbatim.
// Use this for malformed-payload tests.
func NewRawRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// DecodeEnvelope parses the recorded response body into an Envelope.
func DecodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()

	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response envelope: %v (body: %s)", err, rec.Body.String())
	}
	return env
}

// DecodeData parses the recorded response envelope and unmarshals its
// data field into out.
func DecodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) Envelope {
	t.Helper()

	env := DecodeEnvelope(t, rec)
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			t.Fatalf("decode response data: %v (data: %s)", err, env.Data)
		}
	}
	return env
}

// AssertStatus checks the response status code.
func AssertStatus(t *testing.T, rec *httptest.ResponseRecorder, expected int) {
	t.Helper()

	if rec.Code != expected {
		t.Errorf("status code: got %d, want %d (body: %s)", rec.Code, expected, rec.Body.String())
	}
}

// AssertFailure checks status plus the failure envelope shape: success
// false and the expected error message.
func AssertFailure(t *testing.T, rec *httptest.ResponseRecorder, status int, errMsg string) {
	t.Helper()

	AssertStatus(t, rec, status)
	env := DecodeEnvelope(t, rec)
	if env.Success {
		t.Errorf("success: got true, want false")
	}
	if env.Error != errMsg {
		t.Errorf("error message: got %q, want %q", env.Error, errMsg)
	}
}
