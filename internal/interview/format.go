package interview

import (
	"fmt"
	"math"
	"strings"

	"github.com/srinikhil9/Mock-Interview-System/internal/api"
)

// formatScore renders a score with one decimal place, rounding halves away
// from zero (7.25 becomes 7.3). Out-of-range values print as-is: scores are
// display-only and never clamped.
func formatScore(score float64) string {
	return fmt.Sprintf("%.1f/10", math.Round(score*10)/10)
}

// formatFeedback builds the evaluator message for an answer: brief feedback
// with the score, then one line each for strengths and improvements,
// omitted entirely when the corresponding list is empty.
func formatFeedback(ev *api.Evaluation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Feedback: %s (Score: %s)", ev.BriefFeedback, formatScore(ev.Score))
	if len(ev.Strengths) > 0 {
		b.WriteString("\nStrengths: ")
		b.WriteString(strings.Join(ev.Strengths, ", "))
	}
	if len(ev.Improvements) > 0 {
		b.WriteString("\nAreas for Improvement: ")
		b.WriteString(strings.Join(ev.Improvements, ", "))
	}
	return b.String()
}
