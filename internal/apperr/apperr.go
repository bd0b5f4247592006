package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a domain failure so the handler layer can pick
// an HTTP status without string-matching messages.
type Kind int

const (
	KindValidation Kind = iota
	KindConflict
	KindNotFound
	KindUnauthorized
	KindInvalidTransition
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Unauthorized always carries the generic message shown to callers.
func Unauthorized() *Error {
	return &Error{Kind: KindUnauthorized, Message: "Non autorisé"}
}

func InvalidTransition(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidTransition, Message: fmt.Sprintf(format, args...)}
}

func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func IsValidation(err error) bool        { k, ok := KindOf(err); return ok && k == KindValidation }
func IsConflict(err error) bool          { k, ok := KindOf(err); return ok && k == KindConflict }
func IsNotFound(err error) bool          { k, ok := KindOf(err); return ok && k == KindNotFound }
func IsUnauthorized(err error) bool      { k, ok := KindOf(err); return ok && k == KindUnauthorized }
func IsInvalidTransition(err error) bool { k, ok := KindOf(err); return ok && k == KindInvalidTransition }
