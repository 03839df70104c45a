// Package apperr описывает типизированные ошибки предметной области.
// Слой handlers отображает их Kind в HTTP-статус, не раскрывая внутренние детали.
package apperr

import (
	"errors"
	"fmt"
)

// Kind — вид ошибки.
type Kind string

const (
	KindNotFound             Kind = "not_found"
	KindForbidden            Kind = "forbidden"
	KindUnauthenticated      Kind = "unauthenticated"
	KindInvalidQuantity      Kind = "invalid_quantity"
	KindInsufficientQuantity Kind = "insufficient_quantity"
	KindInvalidTransition    Kind = "invalid_transition"
	KindValidation           Kind = "validation"
	KindConflict             Kind = "conflict"
	KindInternal             Kind = "internal"
)

// Error — ошибка с видом, сообщением для клиента и необязательной причиной.
type Error struct {
	Kind   Kind
	Msg    string
	Fields map[string]string // ошибки по полям для KindValidation
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is сравнивает ошибки по виду, так что errors.Is(err, ErrNotFound) срабатывает
// для любой ошибки KindNotFound.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrNotFound             = &Error{Kind: KindNotFound, Msg: "not found"}
	ErrForbidden            = &Error{Kind: KindForbidden, Msg: "forbidden"}
	ErrUnauthenticated      = &Error{Kind: KindUnauthenticated, Msg: "unauthenticated"}
	ErrInvalidQuantity      = &Error{Kind: KindInvalidQuantity, Msg: "invalid quantity"}
	ErrInsufficientQuantity = &Error{Kind: KindInsufficientQuantity, Msg: "insufficient quantity"}
	ErrInvalidTransition    = &Error{Kind: KindInvalidTransition, Msg: "invalid transition"}
	ErrValidation           = &Error{Kind: KindValidation, Msg: "validation failed"}
	ErrConflict             = &Error{Kind: KindConflict, Msg: "conflict"}
	ErrInternal             = &Error{Kind: KindInternal, Msg: "internal error"}
)

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func NotFound(what string) *Error {
	return &Error{Kind: KindNotFound, Msg: what + " not found"}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Msg: msg}
}

func InvalidQuantity(msg string) *Error {
	return &Error{Kind: KindInvalidQuantity, Msg: msg}
}

func InsufficientQuantity(msg string) *Error {
	return &Error{Kind: KindInsufficientQuantity, Msg: msg}
}

func InvalidTransition(msg string) *Error {
	return &Error{Kind: KindInvalidTransition, Msg: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Msg: msg}
}

// Validation собирает ошибку валидации с сообщениями по полям.
func Validation(msg string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Msg: msg, Fields: fields}
}

// Internal оборачивает неожиданную ошибку хранилища или инфраструктуры.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Msg: "internal error", Err: err}
}

// KindOf возвращает вид ошибки; для неизвестных ошибок — KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
