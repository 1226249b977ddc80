package tui

import "sync"

// ChatMessage represents a single message in the chat history.
type ChatMessage struct {
	Sender string // "System", "You", "Interviewer (Topic: ...)", "Evaluator", "Hint"
	Text   string
}

// Transcript collects chat messages in arrival order. It implements the
// controller's Presenter contract and is read by the chat view, so it must
// tolerate appends from command goroutines while the view renders.
type Transcript struct {
	mu   sync.Mutex
	msgs []ChatMessage
}

// NewTranscript creates an empty Transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// AppendMessage adds a message to the end of the transcript.
func (t *Transcript) AppendMessage(sender, text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.msgs = append(t.msgs, ChatMessage{Sender: sender, Text: text})
}

// Messages returns a snapshot of the transcript in append order.
func (t *Transcript) Messages() []ChatMessage {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]ChatMessage, len(t.msgs))
	copy(out, t.msgs)
	return out
}
