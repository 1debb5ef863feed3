package domain

import "errors"

// ============================================================================
// Train Lookup Errors
// ============================================================================

var (
	ErrLookupFailed     = errors.New("train name lookup failed")
	ErrUnexpectedStatus = errors.New("unexpected status from train name lookup")
	ErrEmptyTrainNumber = errors.New("train number is required")
)
