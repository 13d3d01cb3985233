package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rag-chat/backend"
)

func jsonResponse(status int, body string) *backend.Response {
	return &backend.Response{StatusCode: status, ContentType: "application/json", Body: []byte(body)}
}

func textResponse(status int, body string) *backend.Response {
	return &backend.Response{StatusCode: status, ContentType: "text/plain; charset=utf-8", Body: []byte(body)}
}

func TestChat(t *testing.T) {
	testCases := []struct {
		name     string
		resp     *backend.Response
		expected string
	}{
		{"answer", jsonResponse(200, `{"answer":"42"}`), "42"},
		{"error on success", jsonResponse(200, `{"error":"bad question"}`), "Error: bad question"},
		{"error wins over answer", jsonResponse(200, `{"answer":"x","error":"nope"}`), "Error: nope"},
		{"empty error is ignored", jsonResponse(200, `{"answer":"fine","error":""}`), "fine"},
		{"null error is ignored", jsonResponse(200, `{"answer":"fine","error":null}`), "fine"},
		{"missing answer", jsonResponse(200, `{}`), ""},
		{"numeric answer", jsonResponse(200, `{"answer":1.50}`), "1.5"},
		{"charset parameter", &backend.Response{StatusCode: 200, ContentType: "application/json; charset=utf-8", Body: []byte(`{"answer":"ok"}`)}, "ok"},
		{"plain text success", textResponse(200, "just text"), "just text"},
		{"no content type", &backend.Response{StatusCode: 200, Body: []byte(`{"answer":"raw"}`)}, `{"answer":"raw"}`},
		{"error status with json error", jsonResponse(429, `{"error":"rate limited"}`), "Error: rate limited"},
		{"error status with json without error", jsonResponse(500, `{ "detail": "boom", "code": 7 }`), `Error: {"detail":"boom","code":7}`},
		{"error status with empty error field", jsonResponse(400, `{"error": ""}`), `Error: {"error":""}`},
		{"error status with plain text", textResponse(503, "server down"), "Error: server down"},
		{"error status with structured error", jsonResponse(400, `{"error":{"reason":"x"}}`), `Error: {"reason":"x"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Chat(tc.resp)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestIngest(t *testing.T) {
	testCases := []struct {
		name     string
		resp     *backend.Response
		expected string
	}{
		{"filename", jsonResponse(200, `{"status":"ok","filename":"a.pdf"}`), "Uploaded: a.pdf"},
		{"no filename", jsonResponse(200, `{}`), "Uploaded: ok"},
		{"empty filename", jsonResponse(200, `{"filename":""}`), "Uploaded: ok"},
		{"plain text success", textResponse(201, "stored it"), "stored it"},
		{"error status with json error", jsonResponse(400, `{"error":"only PDF files are supported"}`), "Upload error: only PDF files are supported"},
		{"error status with json without error", jsonResponse(500, `{"status":"failed"}`), `Upload error: {"status":"failed"}`},
		{"error status with plain text", textResponse(502, "bad gateway"), "Upload error: bad gateway"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Ingest(tc.resp)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestMalformedJSON(t *testing.T) {
	_, err := Chat(jsonResponse(200, `{"answer":`))
	var malformed *MalformedError
	require.True(t, errors.As(err, &malformed))
	assert.Contains(t, err.Error(), "not valid JSON")

	_, err = Ingest(jsonResponse(500, `<html>oops</html>`))
	assert.True(t, errors.As(err, &malformed))
}

func TestFailureMessages(t *testing.T) {
	err := errors.New("connection refused")
	assert.Equal(t, "Request failed: connection refused", ChatFailure(err))
	assert.Equal(t, "Upload failed: connection refused", IngestFailure(err))
}
