// Package render turns backend replies into the text shown to the user.
package render

import (
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"rag-chat/backend"
)

const (
	Thinking   = "...thinking..."
	Uploading  = "Uploading..."
	NoFile     = "No file selected"
	uploadedOK = "ok"
)

// MalformedError is returned when a reply claims to be JSON but isn't
type MalformedError struct {
	Body []byte
}

func (e *MalformedError) Error() string {
	return "response body is not valid JSON: " + strconv.Quote(truncate(string(e.Body), 64))
}

// Chat renders a reply from the chat endpoint. An error means the reply could not be interpreted at all, and should
// be reported the same way as a failed request.
func Chat(resp *backend.Response) (string, error) {
	if !resp.IsJSON() {
		if !resp.OK() {
			return "Error: " + string(resp.Body), nil
		}
		return string(resp.Body), nil
	}

	payload, err := parse(resp.Body)
	if err != nil {
		return "", err
	}

	if !resp.OK() {
		return "Error: " + errorText(payload), nil
	}

	if e := payload.Get("error"); truthy(e) {
		return "Error: " + text(e), nil
	}

	return text(payload.Get("answer")), nil
}

// Ingest renders a reply from the ingestion endpoint
func Ingest(resp *backend.Response) (string, error) {
	if !resp.IsJSON() {
		if !resp.OK() {
			return "Upload error: " + string(resp.Body), nil
		}
		return string(resp.Body), nil
	}

	payload, err := parse(resp.Body)
	if err != nil {
		return "", err
	}

	if !resp.OK() {
		return "Upload error: " + errorText(payload), nil
	}

	filename := uploadedOK
	if f := payload.Get("filename"); truthy(f) {
		filename = text(f)
	}

	return "Uploaded: " + filename, nil
}

// ChatFailure is the message for a chat request that never produced a usable reply
func ChatFailure(err error) string {
	return "Request failed: " + err.Error()
}

// IngestFailure is the message for an upload that never produced a usable reply
func IngestFailure(err error) string {
	return "Upload failed: " + err.Error()
}

func parse(body []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, &MalformedError{Body: body}
	}
	return gjson.ParseBytes(body), nil
}

// errorText prefers the payload's own error field and falls back to the whole payload
func errorText(payload gjson.Result) string {
	if e := payload.Get("error"); truthy(e) {
		return text(e)
	}
	return string(pretty.Ugly([]byte(payload.Raw)))
}

// truthy applies loose truthiness: missing, null, false, zero and the empty string are all false
func truthy(r gjson.Result) bool {
	if !r.Exists() {
		return false
	}

	switch r.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.Number:
		return r.Num != 0
	case gjson.String:
		return r.Str != ""
	default:
		return true
	}
}

// text converts a field for display. Missing and null fields display as nothing.
func text(r gjson.Result) string {
	switch r.Type {
	case gjson.Null:
		return ""
	case gjson.String:
		return r.Str
	case gjson.Number:
		return strconv.FormatFloat(r.Num, 'f', -1, 64)
	case gjson.True:
		return "true"
	case gjson.False:
		return "false"
	default:
		return string(pretty.Ugly([]byte(r.Raw)))
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
