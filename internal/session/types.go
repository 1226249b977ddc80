// Package session provides in-memory bookkeeping for interview sessions.
package session

import "time"

// Metadata describes one interview session as known to this client.
// The ID is assigned by the server; everything here exists only for the
// lifetime of the process.
type Metadata struct {
	ID        string
	Candidate string
	Role      string
	Topics    []string // insertion order fixed at creation
	StartedAt time.Time
}

// TurnKind distinguishes the two request/response exchanges a session is
// made of.
type TurnKind int

const (
	TurnQuestion TurnKind = iota
	TurnAnswer
)

// Turn is one recorded exchange with the server.
type Turn struct {
	Kind     TurnKind
	Topic    string
	Question string
	Answer   string
	Score    float64
	Feedback string
	FollowUp string
	At       time.Time
}
