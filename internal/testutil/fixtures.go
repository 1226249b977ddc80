// Package testutil provides test helper utilities for interview client tests.
package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// UploadPair creates a temporary resume and job description file and
// returns their paths. The files are cleaned up when the test finishes.
func UploadPair(t *testing.T) (resume, jd string) {
	t.Helper()
	dir := t.TempDir()

	resume = filepath.Join(dir, "resume.pdf")
	jd = filepath.Join(dir, "jd.pdf")
	if err := os.WriteFile(resume, []byte("Alice\nBackend things"), 0644); err != nil {
		t.Fatalf("writing resume fixture: %v", err)
	}
	if err := os.WriteFile(jd, []byte("Backend Engineer\nGo, SQL"), 0644); err != nil {
		t.Fatalf("writing jd fixture: %v", err)
	}
	return resume, jd
}

// stubResponse is one scripted reply for a path.
type stubResponse struct {
	status int
	body   string
}

// recordedRequest captures what the client actually sent.
type recordedRequest struct {
	ContentType string
	Header      http.Header
	Body        []byte
}

// StubService is a scripted, in-process interview service. Tests register
// responses per path; the stub counts calls and records request bodies so
// tests can assert on what was sent and how often.
type StubService struct {
	mu        sync.Mutex
	server    *httptest.Server
	responses map[string][]stubResponse
	calls     map[string]int
	served    map[string]stubResponse
	requests  map[string]recordedRequest
	delays    map[string]time.Duration
}

// NewStubService starts the stub. It is shut down when the test finishes.
func NewStubService(t *testing.T) *StubService {
	t.Helper()
	s := &StubService{
		responses: make(map[string][]stubResponse),
		calls:     make(map[string]int),
		served:    make(map[string]stubResponse),
		requests:  make(map[string]recordedRequest),
		delays:    make(map[string]time.Duration),
	}
	s.server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.server.Close)
	return s
}

// URL returns the stub's base URL.
func (s *StubService) URL() string {
	return s.server.URL
}

// Respond queues a scripted response for path. Responses are consumed in
// order; the last one registered keeps repeating once the queue drains.
func (s *StubService) Respond(path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[path] = append(s.responses[path], stubResponse{status: status, body: body})
}

// Delay makes every response for path wait for d before being written,
// to let tests hold a request in flight.
func (s *StubService) Delay(path string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delays[path] = d
}

// Calls returns how many requests path has received.
func (s *StubService) Calls(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[path]
}

// LastRequest returns the content type and body of the most recent request
// to path.
func (s *StubService) LastRequest(path string) (contentType string, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req := s.requests[path]
	return req.ContentType, req.Body
}

// LastHeader returns a header value from the most recent request to path.
func (s *StubService) LastHeader(path, key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[path].Header.Get(key)
}

func (s *StubService) handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		body = nil
	}

	s.mu.Lock()
	path := r.URL.Path
	s.calls[path]++
	s.requests[path] = recordedRequest{
		ContentType: r.Header.Get("Content-Type"),
		Header:      r.Header.Clone(),
		Body:        body,
	}

	queue := s.responses[path]
	var resp stubResponse
	if len(queue) > 0 {
		resp = queue[0]
		s.responses[path] = queue[1:]
		s.served[path] = resp
	} else if last, ok := s.served[path]; ok {
		resp = last
	} else {
		resp = stubResponse{status: http.StatusNotFound, body: `{"detail":"no scripted response"}`}
	}
	delay := s.delays[path]
	s.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = w.Write([]byte(resp.body))
}
