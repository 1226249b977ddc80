package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"github.com/srinikhil9/Mock-Interview-System/internal/testutil"
)

func newTestClient(t *testing.T) (*Client, *testutil.StubService) {
	t.Helper()
	stub := testutil.NewStubService(t)
	return NewClient(stub.URL(), 5*time.Second), stub
}

func TestNextQuestionDecodesResponse(t *testing.T) {
	client, stub := newTestClient(t)
	stub.Respond("/api/next", 200, `{"topic":"SQL","depth":2,"question":"What is an index?"}`)

	q, err := client.NextQuestion(context.Background(), "s1")
	if err != nil {
		t.Fatalf("NextQuestion failed: %v", err)
	}
	if q.Topic != "SQL" || q.Depth != 2 || q.Question != "What is an index?" {
		t.Errorf("unexpected question: %+v", q)
	}

	_, body := stub.LastRequest("/api/next")
	var sent map[string]string
	if err := json.Unmarshal(body, &sent); err != nil {
		t.Fatalf("request body is not JSON: %v", err)
	}
	if sent["session_id"] != "s1" {
		t.Errorf("session_id: got %q, want %q", sent["session_id"], "s1")
	}
}

func TestSubmitAnswerSendsSessionAndAnswer(t *testing.T) {
	client, stub := newTestClient(t)
	stub.Respond("/api/answer", 200,
		`{"topic":"SQL","score":8.5,"brief_feedback":"Good","strengths":["clarity"],"improvements":[],"follow_up_question":"","topic_action":"stay","current_topic":"SQL"}`)

	ev, err := client.SubmitAnswer(context.Background(), "s1", "indexes speed up lookups")
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if ev.Score != 8.5 || ev.BriefFeedback != "Good" {
		t.Errorf("unexpected evaluation: %+v", ev)
	}
	if len(ev.Strengths) != 1 || ev.Strengths[0] != "clarity" {
		t.Errorf("strengths: got %v", ev.Strengths)
	}

	contentType, body := stub.LastRequest("/api/answer")
	if contentType != "application/json" {
		t.Errorf("content type: got %q, want application/json", contentType)
	}
	if !strings.Contains(string(body), "indexes speed up lookups") {
		t.Errorf("answer missing from body: %s", body)
	}
}

func TestErrorDetailExtracted(t *testing.T) {
	client, stub := newTestClient(t)
	stub.Respond("/api/next", 400, `{"detail":"Session not found"}`)

	_, err := client.NextQuestion(context.Background(), "missing")
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *RequestError, got %T: %v", err, err)
	}
	if reqErr.Status != 400 {
		t.Errorf("status: got %d, want 400", reqErr.Status)
	}
	if reqErr.Message != "Session not found" {
		t.Errorf("message: got %q, want %q", reqErr.Message, "Session not found")
	}
}

func TestErrorWithoutDetailFallsBack(t *testing.T) {
	client, stub := newTestClient(t)
	stub.Respond("/health", 500, `internal blowup`)

	_, err := client.Health(context.Background())
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *RequestError, got %T: %v", err, err)
	}
	if reqErr.Message != genericErrorMessage {
		t.Errorf("message: got %q, want %q", reqErr.Message, genericErrorMessage)
	}
}

func TestConnectionFailureIsRequestError(t *testing.T) {
	// Point at a port that is not listening.
	client := NewClient("http://127.0.0.1:1", time.Second)

	_, err := client.Health(context.Background())
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *RequestError, got %T: %v", err, err)
	}
	if reqErr.Status != 0 {
		t.Errorf("status: got %d, want 0 for transport failure", reqErr.Status)
	}
}

func TestMalformedSuccessBodyIsRequestError(t *testing.T) {
	client, stub := newTestClient(t)
	stub.Respond("/api/next", 200, `not json at all`)

	_, err := client.NextQuestion(context.Background(), "s1")
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *RequestError, got %T: %v", err, err)
	}
}

func TestRequestCarriesRequestID(t *testing.T) {
	client, stub := newTestClient(t)
	stub.Respond("/health", 200, `{"status":"ok","uptime_seconds":1.5,"sessions":0}`)

	if _, err := client.Health(context.Background()); err != nil {
		t.Fatalf("Health failed: %v", err)
	}
	if stub.LastHeader("/health", "X-Request-ID") == "" {
		t.Error("X-Request-ID header not set")
	}
}

func TestCreateSessionSendsMultipartParts(t *testing.T) {
	client, stub := newTestClient(t)
	stub.Respond("/api/session", 200,
		`{"session_id":"s1","candidate_name":"Alice","target_role":"Backend Engineer","topics":["SQL","Concurrency"]}`)
	resume, jd := testutil.UploadPair(t)

	info, err := client.CreateSession(context.Background(), resume, jd)
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if info.SessionID != "s1" || info.CandidateName != "Alice" {
		t.Errorf("unexpected session info: %+v", info)
	}
	if len(info.Topics) != 2 || info.Topics[0] != "SQL" || info.Topics[1] != "Concurrency" {
		t.Errorf("topics out of order: %v", info.Topics)
	}

	contentType, body := stub.LastRequest("/api/session")
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("parsing content type %q: %v", contentType, err)
	}
	if mediaType != "multipart/form-data" {
		t.Fatalf("media type: got %q, want multipart/form-data", mediaType)
	}

	names := map[string]string{}
	reader := multipart.NewReader(bytes.NewReader(body), params["boundary"])
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("reading part: %v", err)
		}
		names[part.FormName()] = part.FileName()
	}
	if names["resume"] != "resume.pdf" {
		t.Errorf("resume part: got %q, want resume.pdf", names["resume"])
	}
	if names["jd"] != "jd.pdf" {
		t.Errorf("jd part: got %q, want jd.pdf", names["jd"])
	}
}

func TestCreateSessionMissingFileFailsLocally(t *testing.T) {
	client, stub := newTestClient(t)
	resume, _ := testutil.UploadPair(t)

	_, err := client.CreateSession(context.Background(), resume, "/does/not/exist.pdf")
	if err == nil {
		t.Fatal("expected error for unreadable jd file")
	}
	if stub.Calls("/api/session") != 0 {
		t.Errorf("no request should be issued, got %d", stub.Calls("/api/session"))
	}
}

func TestSessionSummaryAndExport(t *testing.T) {
	client, stub := newTestClient(t)
	stub.Respond("/api/sessions/s1", 200,
		`{"session_id":"s1","num_questions":4,"avg_score":7.25,"current_topic":"Concurrency","finished":false}`)
	stub.Respond("/api/export/s1", 200, `{"session_id":"s1","interactions":[]}`)

	sum, err := client.SessionSummary(context.Background(), "s1")
	if err != nil {
		t.Fatalf("SessionSummary failed: %v", err)
	}
	if sum.NumQuestions != 4 || sum.CurrentTopic != "Concurrency" {
		t.Errorf("unexpected summary: %+v", sum)
	}

	raw, err := client.ExportSession(context.Background(), "s1")
	if err != nil {
		t.Fatalf("ExportSession failed: %v", err)
	}
	if !json.Valid(raw) {
		t.Errorf("export is not valid JSON: %s", raw)
	}
}

func TestServerVersion(t *testing.T) {
	client, stub := newTestClient(t)
	stub.Respond("/version", 200, `{"version":"0.1.0","api":"v1"}`)

	v, err := client.ServerVersion(context.Background())
	if err != nil {
		t.Fatalf("ServerVersion failed: %v", err)
	}
	if v.Version != "0.1.0" || v.API != "v1" {
		t.Errorf("unexpected version: %+v", v)
	}
}
