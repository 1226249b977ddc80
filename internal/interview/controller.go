// Package interview implements the client-side turn state machine that
// drives a session against the interview service: session creation,
// question retrieval, answer submission and follow-up branching.
package interview

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/srinikhil9/Mock-Interview-System/internal/api"
	"github.com/srinikhil9/Mock-Interview-System/internal/log"
	"github.com/srinikhil9/Mock-Interview-System/internal/session"
)

// State represents the controller's position in the interview protocol.
type State int

const (
	StateNoSession        State = iota // no session bound to outbound requests
	StateAwaitingQuestion              // session active, next question not yet fetched
	StateAwaitingAnswer                // question displayed, answer pending
	StateAwaitingFollowUp              // follow-up question displayed, answer pending
)

// String returns a readable name for the state.
func (s State) String() string {
	switch s {
	case StateNoSession:
		return "no_session"
	case StateAwaitingQuestion:
		return "awaiting_question"
	case StateAwaitingAnswer:
		return "awaiting_answer"
	case StateAwaitingFollowUp:
		return "awaiting_follow_up"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Presenter renders chat messages. Implementations must preserve call
// order: messages display top-to-bottom in the order they arrive.
type Presenter interface {
	AppendMessage(sender, text string)
}

// ErrBusy is returned when an action arrives while a previous request is
// still in flight. The rejected action performs no work: no request is
// issued and nothing is rendered.
var ErrBusy = errors.New("a request is already in flight")

// ValidationError reports input rejected locally, before any request is
// issued. The state machine does not move.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Message sender labels, matching the roles in the chat transcript.
const (
	senderSystem      = "System"
	senderYou         = "You"
	senderInterviewer = "Interviewer"
	senderEvaluator   = "Evaluator"
	senderHint        = "Hint"
)

const welcomeText = "Welcome to your technical interview. Provide your resume " +
	"and the job description, then send a message to begin. You can type " +
	"'/next' to switch topics or '/quit' to end the session at any time."

// UploadPair holds the resume and job description paths until session
// creation. Both must be set before a session-creation request is issued.
type UploadPair struct {
	Resume string
	JD     string
}

// Controller owns the single active session and all turn-taking logic.
// One logical action runs at a time: overlapping actions are rejected with
// ErrBusy rather than interleaved.
type Controller struct {
	client    *api.Client
	registry  *session.Registry
	presenter Presenter
	logger    *log.Logger

	mu       sync.Mutex // guards the fields below
	inFlight bool
	state    State
	activeID string
	files    UploadPair
}

// NewController creates a Controller in StateNoSession.
func NewController(client *api.Client, registry *session.Registry, presenter Presenter, logger *log.Logger) *Controller {
	return &Controller{
		client:    client,
		registry:  registry,
		presenter: presenter,
		logger:    logger,
	}
}

// SetFiles records the pending upload pair used at session creation.
func (c *Controller) SetFiles(resume, jd string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.files = UploadPair{Resume: resume, JD: jd}
}

// Files returns the pending upload pair.
func (c *Controller) Files() UploadPair {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.files
}

// State returns the controller's current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// ActiveSession returns the active session ID, empty when none.
func (c *Controller) ActiveSession() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeID
}

// Welcome renders the greeting. The /next and /quit tokens it advertises
// are pass-through: the client sends them down the ordinary answer path
// and the server decides what they mean.
func (c *Controller) Welcome() {
	c.presenter.AppendMessage(senderSystem, welcomeText)
}

// HandleInput routes a user submission. With no active session it performs
// session creation instead (the text is not submitted as an answer);
// otherwise the text is submitted as an answer.
func (c *Controller) HandleInput(ctx context.Context, text string) error {
	if c.ActiveSession() == "" {
		return c.StartSession(ctx)
	}
	return c.SubmitAnswer(ctx, text)
}

// StartSession creates a new session from the pending upload pair and, on
// success, immediately requests the first question. On any failure the
// controller stays in StateNoSession and the error is rendered.
func (c *Controller) StartSession(ctx context.Context) error {
	if !c.begin("start_session") {
		return ErrBusy
	}
	defer c.end()
	return c.startSession(ctx)
}

// RequestNextQuestion fetches the next question for the active session.
// Retryable: on failure the controller stays in StateAwaitingQuestion.
func (c *Controller) RequestNextQuestion(ctx context.Context) error {
	if !c.begin("next_question") {
		return ErrBusy
	}
	defer c.end()
	return c.nextQuestion(ctx)
}

// SubmitAnswer sends the candidate's answer for evaluation, renders the
// structured feedback and branches on the follow-up question: a non-empty
// follow-up is displayed and awaits its own answer, otherwise the next
// topic question is fetched automatically.
func (c *Controller) SubmitAnswer(ctx context.Context, text string) error {
	if !c.begin("submit_answer") {
		return ErrBusy
	}
	defer c.end()
	return c.submitAnswer(ctx, text)
}

func (c *Controller) startSession(ctx context.Context) error {
	files := c.Files()
	if files.Resume == "" || files.JD == "" {
		c.presenter.AppendMessage(senderSystem, "Please upload both a resume and a job description.")
		return &ValidationError{Reason: "resume and job description are both required"}
	}

	start := time.Now()
	info, err := c.client.CreateSession(ctx, files.Resume, files.JD)
	if err != nil {
		c.renderError(err)
		c.logFailure("create_session", "", err)
		return err
	}

	c.registry.Put(info.SessionID, session.Metadata{
		Candidate: info.CandidateName,
		Role:      info.TargetRole,
		Topics:    info.Topics,
		StartedAt: time.Now(),
	})

	c.mu.Lock()
	c.activeID = info.SessionID
	c.state = StateAwaitingQuestion
	c.mu.Unlock()

	c.presenter.AppendMessage(senderSystem, fmt.Sprintf(
		"Session started for %s (Role: %s). Topics: %s.",
		info.CandidateName, info.TargetRole, strings.Join(info.Topics, ", ")))

	_ = c.logger.Append(log.LogEvent{
		Event:      log.EventSessionCreated,
		SessionID:  info.SessionID,
		Candidate:  info.CandidateName,
		Role:       info.TargetRole,
		DurationMs: time.Since(start).Milliseconds(),
	})

	return c.nextQuestion(ctx)
}

func (c *Controller) nextQuestion(ctx context.Context) error {
	id := c.ActiveSession()
	if id == "" {
		return nil
	}

	start := time.Now()
	q, err := c.client.NextQuestion(ctx, id)
	if err != nil {
		c.renderError(err)
		c.logFailure("next_question", id, err)
		return err
	}

	c.registry.AppendTurn(id, session.Turn{
		Kind:     session.TurnQuestion,
		Topic:    q.Topic,
		Question: q.Question,
	})
	c.presenter.AppendMessage(fmt.Sprintf("%s (Topic: %s)", senderInterviewer, q.Topic), q.Question)

	c.mu.Lock()
	c.state = StateAwaitingAnswer
	c.mu.Unlock()

	_ = c.logger.Append(log.LogEvent{
		Event:      log.EventQuestionReceived,
		SessionID:  id,
		Topic:      q.Topic,
		Depth:      q.Depth,
		DurationMs: time.Since(start).Milliseconds(),
	})

	return nil
}

func (c *Controller) submitAnswer(ctx context.Context, text string) error {
	id := c.ActiveSession()
	if id == "" {
		return &ValidationError{Reason: "no active session"}
	}

	answer := strings.TrimSpace(text)
	if answer == "" {
		// Deliberately silent: no request, no state change, no message.
		return &ValidationError{Reason: "empty answer"}
	}

	c.presenter.AppendMessage(senderYou, answer)

	start := time.Now()
	ev, err := c.client.SubmitAnswer(ctx, id, answer)
	if err != nil {
		c.renderError(err)
		c.logFailure("submit_answer", id, err)
		return err
	}

	c.registry.AppendTurn(id, session.Turn{
		Kind:     session.TurnAnswer,
		Topic:    ev.Topic,
		Answer:   answer,
		Score:    ev.Score,
		Feedback: ev.BriefFeedback,
		FollowUp: ev.FollowUpQuestion,
	})

	c.presenter.AppendMessage(senderEvaluator, formatFeedback(ev))
	if ev.Hint != "" {
		c.presenter.AppendMessage(senderHint, ev.Hint)
	}

	_ = c.logger.Append(log.LogEvent{
		Event:       log.EventAnswerEvaluated,
		SessionID:   id,
		Topic:       ev.Topic,
		Score:       ev.Score,
		TopicAction: ev.TopicAction,
		DurationMs:  time.Since(start).Milliseconds(),
	})

	if ev.FollowUpQuestion != "" {
		c.presenter.AppendMessage(senderInterviewer, ev.FollowUpQuestion)

		c.mu.Lock()
		c.state = StateAwaitingFollowUp
		c.mu.Unlock()

		_ = c.logger.Append(log.LogEvent{
			Event:     log.EventFollowUpReceived,
			SessionID: id,
			Topic:     ev.Topic,
		})
		return nil
	}

	c.mu.Lock()
	c.state = StateAwaitingQuestion
	c.mu.Unlock()

	return c.nextQuestion(ctx)
}

// begin claims the in-flight slot for one logical action. It returns false
// when another action is still running, in which case the caller must not
// touch any state.
func (c *Controller) begin(action string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inFlight {
		_ = c.logger.Append(log.LogEvent{
			Event:  log.EventActionRejected,
			Action: action,
		})
		return false
	}
	c.inFlight = true
	return true
}

func (c *Controller) end() {
	c.mu.Lock()
	c.inFlight = false
	c.mu.Unlock()
}

func (c *Controller) renderError(err error) {
	c.presenter.AppendMessage(senderSystem, fmt.Sprintf("Error: %s", err.Error()))
}

func (c *Controller) logFailure(action, sessionID string, err error) {
	_ = c.logger.Append(log.LogEvent{
		Event:     log.EventRequestFailed,
		SessionID: sessionID,
		Action:    action,
		Error:     err.Error(),
	})
}
