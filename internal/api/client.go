package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// genericErrorMessage is rendered when a failing response carries no detail field.
const genericErrorMessage = "An error occurred"

// RequestError is returned for every failed exchange with the interview
// service: non-2xx responses, connection failures and undecodable bodies.
// Message is human-readable and safe to show to the user as-is.
type RequestError struct {
	Status  int // 0 when the request never reached the server
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// Client talks to the interview service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the service at baseURL.
// A zero timeout leaves the http.Client default in place.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// CreateSession uploads the resume and job description as a multipart form
// and returns the new session's metadata. The part names (resume, jd) are
// fixed by the service; the content type comes from the multipart writer so
// the boundary is always consistent with the body.
func (c *Client) CreateSession(ctx context.Context, resumePath, jdPath string) (*SessionInfo, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, part := range []struct {
		field, path string
	}{
		{"resume", resumePath},
		{"jd", jdPath},
	} {
		if err := attachFile(w, part.field, part.path); err != nil {
			return nil, fmt.Errorf("attaching %s: %w", part.field, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalizing form: %w", err)
	}

	var info SessionInfo
	if err := c.do(ctx, http.MethodPost, "/api/session", w.FormDataContentType(), &buf, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// NextQuestion asks the service for the next question of the session.
func (c *Client) NextQuestion(ctx context.Context, sessionID string) (*Question, error) {
	var q Question
	err := c.send(ctx, http.MethodPost, "/api/next", map[string]string{"session_id": sessionID}, &q)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// SubmitAnswer sends the candidate's answer for evaluation.
func (c *Client) SubmitAnswer(ctx context.Context, sessionID, answer string) (*Evaluation, error) {
	var ev Evaluation
	err := c.send(ctx, http.MethodPost, "/api/answer", map[string]string{
		"session_id": sessionID,
		"answer":     answer,
	}, &ev)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// Health reports the service's liveness, uptime and session count.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var h Health
	if err := c.send(ctx, http.MethodGet, "/health", nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// ServerVersion returns the service build version and API revision.
func (c *Client) ServerVersion(ctx context.Context) (*Version, error) {
	var v Version
	if err := c.send(ctx, http.MethodGet, "/version", nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// SessionSummary fetches the server-side summary for a session.
func (c *Client) SessionSummary(ctx context.Context, sessionID string) (*SessionSummary, error) {
	var s SessionSummary
	if err := c.send(ctx, http.MethodGet, "/api/sessions/"+sessionID, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ExportSession fetches the full session export. The shape is owned by the
// server, so the document is returned raw for the caller to write out.
func (c *Client) ExportSession(ctx context.Context, sessionID string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.send(ctx, http.MethodGet, "/api/export/"+sessionID, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// send serializes body as JSON (when non-nil) and decodes the response into
// out. Every failure comes back as a *RequestError.
func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &RequestError{Message: fmt.Sprintf("encoding request: %v", err)}
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, contentType, reader, out)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &RequestError{Message: fmt.Sprintf("creating request: %v", err)}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RequestError{Status: resp.StatusCode, Message: fmt.Sprintf("reading response: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestError{Status: resp.StatusCode, Message: errorDetail(data)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &RequestError{Status: resp.StatusCode, Message: fmt.Sprintf("decoding response: %v", err)}
		}
	}
	return nil
}

// errorDetail extracts the detail field from a failing response body,
// falling back to a generic message when the body has none.
func errorDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	return genericErrorMessage
}

// attachFile adds one file part to the multipart form, named after the
// field with the file's base name as the reported filename.
func attachFile(w *multipart.Writer, field, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	part, err := w.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, f); err != nil {
		return err
	}
	return nil
}
