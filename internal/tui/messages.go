package tui

// ============================================================================
// Controller Messages
// ============================================================================

// TurnDoneMsg signals that a controller action (session creation, answer
// submission, question retrieval) has finished. Any user-facing outcome,
// including errors, is already in the transcript; Err exists so the app can
// distinguish a rejected overlapping action from a completed one.
type TurnDoneMsg struct {
	Err error
}

// ============================================================================
// Utility Messages
// ============================================================================

// CtrlCResetMsg resets the quit confirmation state after timeout.
type CtrlCResetMsg struct{}
