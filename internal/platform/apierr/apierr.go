package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func BadRequest(code string, err error) *Error {
	return New(http.StatusBadRequest, code, err)
}

func NotFound(code string) *Error {
	return New(http.StatusNotFound, code, errors.New("not found"))
}

func Conflict(code string, err error) *Error {
	return New(http.StatusConflict, code, err)
}

func Unavailable(code string, err error) *Error {
	return New(http.StatusServiceUnavailable, code, err)
}

// FromCode maps a store error code onto its HTTP status. Unknown codes are 500s.
func FromCode(code string, err error) *Error {
	switch code {
	case "not_found":
		return New(http.StatusNotFound, code, err)
	case "persistence_conflict":
		return Conflict(code, err)
	case "storage_unavailable":
		return Unavailable(code, err)
	case "":
		return New(http.StatusInternalServerError, "internal", err)
	default:
		return New(http.StatusInternalServerError, code, err)
	}
}

// As extracts an *Error from err, falling back to a 500 wrapper.
func As(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr != nil {
		return apiErr
	}
	return New(http.StatusInternalServerError, "internal", err)
}
