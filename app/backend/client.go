// Package backend is the typed client for the student-management REST
// service. All persistence lives behind that service; the console never
// talks to a database directly.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"college-admin/app/models"
)

// Client issues JSON requests against the backend base URL. All calls are
// independent request/response round-trips; nothing is retried.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the given base URL, e.g.
// "http://localhost:5000/api".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// errorBody is the structured error shape the backend uses for rejections.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (b errorBody) text() string {
	if b.Error != "" {
		return b.Error
	}
	return b.Message
}

// do executes one round-trip. A nil body sends no payload; a non-nil out
// receives the decoded 2xx response.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &models.TransportError{Message: "backend unreachable", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &models.TransportError{Status: resp.StatusCode, Message: "invalid response body", Err: err}
	}
	return nil
}

// decodeError maps a non-2xx response onto the error kinds the rest of
// the app understands. Any structured message is passed through verbatim.
func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var body errorBody
	_ = json.Unmarshal(raw, &body)
	msg := body.text()

	switch resp.StatusCode {
	case http.StatusNotFound:
		if msg == "" {
			msg = "not found"
		}
		return &models.NotFoundError{Message: msg}
	case http.StatusConflict:
		if msg == "" {
			msg = "conflict"
		}
		return &models.ConflictError{Message: msg}
	default:
		if msg == "" {
			msg = fmt.Sprintf("backend returned status %d", resp.StatusCode)
		}
		return &models.TransportError{Status: resp.StatusCode, Message: msg}
	}
}
