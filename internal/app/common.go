package app

import "fmt"

type LookupErrorCode string

const (
	LookupNotFound   LookupErrorCode = "NOT_FOUND"
	LookupInvalidArg LookupErrorCode = "INVALID_ARGUMENT"
)

// LookupError is returned when a requested entity is not part of the loaded
// snapshot.
type LookupError struct {
	Code    LookupErrorCode
	Entity  string
	ID      string
	Message string
}

func (e *LookupError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func NewNotFoundError(entity, id string) *LookupError {
	return &LookupError{
		Code:    LookupNotFound,
		Entity:  entity,
		ID:      id,
		Message: fmt.Sprintf("%s %q not found", entity, id),
	}
}

func NewInvalidArgError(entity, msg string) *LookupError {
	return &LookupError{
		Code:    LookupInvalidArg,
		Entity:  entity,
		Message: msg,
	}
}
