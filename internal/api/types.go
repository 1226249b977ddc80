// Package api implements the HTTP client for the interview service.
package api

// SessionInfo is the response to a session-creation request.
type SessionInfo struct {
	SessionID     string   `json:"session_id"`
	CandidateName string   `json:"candidate_name"`
	TargetRole    string   `json:"target_role"`
	Topics        []string `json:"topics"`
}

// Question is the response to a next-question request.
type Question struct {
	Topic    string `json:"topic"`
	Depth    int    `json:"depth"`
	Question string `json:"question"`
}

// Evaluation is the response to an answer submission.
// TopicAction is "stay", "deepen" or "next" and describes what the
// server's topic manager decided after scoring the answer.
type Evaluation struct {
	Topic            string   `json:"topic"`
	Score            float64  `json:"score"`
	BriefFeedback    string   `json:"brief_feedback"`
	Strengths        []string `json:"strengths"`
	Improvements     []string `json:"improvements"`
	FollowUpQuestion string   `json:"follow_up_question"`
	Hint             string   `json:"hint,omitempty"`
	TopicAction      string   `json:"topic_action"`
	CurrentTopic     string   `json:"current_topic"`
}

// Health is the response from the service health endpoint.
type Health struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Sessions      int     `json:"sessions"`
}

// Version identifies the service build and API revision.
type Version struct {
	Version string `json:"version"`
	API     string `json:"api"`
}

// SessionSummary is a high-level view of a server-side session.
type SessionSummary struct {
	SessionID    string  `json:"session_id"`
	NumQuestions int     `json:"num_questions"`
	AvgScore     float64 `json:"avg_score"`
	CurrentTopic string  `json:"current_topic"`
	Finished     bool    `json:"finished"`
}
