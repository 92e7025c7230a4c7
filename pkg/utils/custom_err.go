package utils

import "errors"

var (
	ErrEmptyPrompt            = errors.New("prompt is required")
	ErrNotTravelRelated       = errors.New("prompt is not travel related")
	ErrDestinationNotFound    = errors.New("destination not found in prompt")
	ErrPlanNotFound           = errors.New("travel plan not found")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected behavior of AI")
	ErrDatabaseError          = errors.New("database error")
)
