package interview

import (
	"strings"
	"testing"

	"github.com/srinikhil9/Mock-Interview-System/internal/api"
)

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{7.0, "7.0/10"},
		{7.25, "7.3/10"}, // one decimal, halves round away from zero
		{8.5, "8.5/10"},
		{0, "0.0/10"},
		{10, "10.0/10"},
		{12.34, "12.3/10"}, // out-of-range scores render as-is
		{-1.25, "-1.3/10"},
	}
	for _, tt := range tests {
		if got := formatScore(tt.score); got != tt.want {
			t.Errorf("formatScore(%v): got %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestFormatFeedbackOmitsEmptyLists(t *testing.T) {
	ev := &api.Evaluation{
		Score:         8.5,
		BriefFeedback: "Good",
		Strengths:     []string{"clarity"},
	}

	got := formatFeedback(ev)
	if !strings.Contains(got, "Feedback: Good (Score: 8.5/10)") {
		t.Errorf("feedback line wrong: %q", got)
	}
	if !strings.Contains(got, "Strengths: clarity") {
		t.Errorf("strengths line missing: %q", got)
	}
	if strings.Contains(got, "Areas for Improvement") {
		t.Errorf("improvements line present for empty list: %q", got)
	}
}

func TestFormatFeedbackPreservesItemOrder(t *testing.T) {
	ev := &api.Evaluation{
		Score:         6.0,
		BriefFeedback: "OK",
		Strengths:     []string{"b first", "a second"},
		Improvements:  []string{"z", "y", "x"},
	}

	got := formatFeedback(ev)
	if !strings.Contains(got, "Strengths: b first, a second") {
		t.Errorf("strengths order not preserved: %q", got)
	}
	if !strings.Contains(got, "Areas for Improvement: z, y, x") {
		t.Errorf("improvements order not preserved: %q", got)
	}
}
