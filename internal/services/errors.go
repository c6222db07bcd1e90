package services

import "fmt"

// Service errors
var (
	ErrNoActiveCompetition = &ServiceError{Message: "no active competition"}
	ErrCompetitionClosed   = &ServiceError{Message: "competition is closed"}
	ErrEventNotHeld        = &ServiceError{Message: "event is not part of this competition"}
	ErrAttemptOutOfRange   = &ServiceError{Message: "attempt index out of range"}
	ErrAttemptDecided      = &ServiceError{Message: "attempt slot already submitted"}
	ErrSubmissionDecided   = &ServiceError{Message: "submission is already decided"}
	ErrSubmissionNotReview = &ServiceError{Message: "submission is not awaiting review"}
	ErrSubmissionNotFound  = &ServiceError{Message: "submission not found"}
	ErrCompetitorNotFound  = &ServiceError{Message: "competitor not found"}
	ErrEmptyName           = &ServiceError{Message: "competitor name must not be empty"}
)

// ServiceError represents a service-level error
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// UnknownEventError reports an event id outside the catalog
type UnknownEventError struct {
	EventID string
}

func (e *UnknownEventError) Error() string {
	return fmt.Sprintf("unknown event: %s", e.EventID)
}
