package backend

import "strings"

type ChatRequest struct {
	Question string `json:"question"`
}

// Response is a received backend reply, whatever its status
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// OK reports a 2xx status
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsJSON reports whether the declared content type marks the body as JSON. Anything mentioning application/json
// counts, parameters and all.
func (r *Response) IsJSON() bool {
	return strings.Contains(r.ContentType, "application/json")
}
