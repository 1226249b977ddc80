package log

import (
	"testing"
)

func TestAppendAndReadAll(t *testing.T) {
	logger, err := NewLogger(t.TempDir())
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	events := []LogEvent{
		{Event: EventSessionCreated, SessionID: "s1", Candidate: "Alice"},
		{Event: EventQuestionReceived, SessionID: "s1", Topic: "SQL", Depth: 1},
		{Event: EventAnswerEvaluated, SessionID: "s1", Topic: "SQL", Score: 8.5, TopicAction: "stay"},
	}
	for _, e := range events {
		if err := logger.Append(e); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	got, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("events: got %d, want 3", len(got))
	}
	if got[0].Event != EventSessionCreated || got[0].Candidate != "Alice" {
		t.Errorf("first event: %+v", got[0])
	}
	if got[2].Score != 8.5 {
		t.Errorf("score: got %v, want 8.5", got[2].Score)
	}
	for i, e := range got {
		if e.Time.IsZero() {
			t.Errorf("event %d has zero time", i)
		}
	}
}

func TestReadAllMissingFileIsEmpty(t *testing.T) {
	logger, err := NewLogger(t.TempDir())
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	got, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("events: got %d, want 0", len(got))
	}
}
