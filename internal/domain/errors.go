package domain

import (
	"errors"
	"net/http"
)

type ErrorCode string

const (
	ErrorCodeBadRequest   ErrorCode = "BAD_REQUEST"
	ErrorCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrorCodeConflict     ErrorCode = "CONFLICT"
	ErrorCodeUnauthorized ErrorCode = "UNAUTHORIZED"
)

type DomainError struct {
	Code       ErrorCode
	Message    string
	HTTPStatus int
}

func (e *DomainError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func NotFound(msg string) *DomainError {
	return &DomainError{Code: ErrorCodeNotFound, Message: msg, HTTPStatus: http.StatusNotFound}
}

func BadRequest(msg string) *DomainError {
	return &DomainError{Code: ErrorCodeBadRequest, Message: msg, HTTPStatus: http.StatusBadRequest}
}

func Conflict(msg string) *DomainError {
	return &DomainError{Code: ErrorCodeConflict, Message: msg, HTTPStatus: http.StatusConflict}
}

// IsNotFound reports whether err carries a NOT_FOUND domain error.
func IsNotFound(err error) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Code == ErrorCodeNotFound
}
