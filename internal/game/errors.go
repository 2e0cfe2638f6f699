package game

import "errors"

var (
	// ErrIllegalAction is returned when a seat keeps answering with an
	// action that is not in its legal set
	ErrIllegalAction = errors.New("illegal action")
	// ErrHandInProgress is returned by ResetForNewHand before the current
	// hand has finished
	ErrHandInProgress = errors.New("hand in progress")
	// ErrHandNotReady is returned by PlayHand when the match has not been
	// reset since the last hand
	ErrHandNotReady = errors.New("match not ready for a new hand")
)
