// Package errs provides the error taxonomy used across the HTTP boundary.
package errs

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
)

// ErrCode represents a code for a class of failure.
type ErrCode struct {
	value int
}

// Value returns the integer value of the code.
func (ec ErrCode) Value() int {
	return ec.value
}

// String returns the string representation of the code.
func (ec ErrCode) String() string {
	return codeNames[ec.value]
}

var (
	OK              = ErrCode{value: 0}
	InvalidArgument = ErrCode{value: 1}
	Unauthenticated = ErrCode{value: 2}
	NotFound        = ErrCode{value: 3}
	AlreadyExists   = ErrCode{value: 4}
	Internal        = ErrCode{value: 5}

	// InternalOnlyLog marks errors whose detail must never reach the client.
	// The errors middleware logs them and responds with a generic message.
	InternalOnlyLog = ErrCode{value: 6}
)

var codeNames = map[int]string{
	0: "ok",
	1: "invalid_argument",
	2: "unauthenticated",
	3: "not_found",
	4: "already_exists",
	5: "internal",
	6: "internal_only_log",
}

var httpStatus = map[int]int{
	0: http.StatusOK,
	1: http.StatusBadRequest,
	2: http.StatusUnauthorized,
	3: http.StatusNotFound,
	4: http.StatusConflict,
	5: http.StatusInternalServerError,
	6: http.StatusInternalServerError,
}

// Error represents an error in the system carrying a code and the location
// it was raised from.
type Error struct {
	Code     ErrCode `json:"-"`
	Message  string  `json:"error"`
	FuncName string  `json:"-"`
	FileName string  `json:"-"`
}

// New constructs an error based on an app error.
func New(code ErrCode, err error) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	return &Error{
		Code:     code,
		Message:  err.Error(),
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}
}

// Newf constructs an error based on a error message.
func Newf(code ErrCode, format string, v ...any) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	return &Error{
		Code:     code,
		Message:  fmt.Sprintf(format, v...),
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Encode implements the web Encoder interface.
func (e *Error) Encode() ([]byte, string, error) {
	data, err := json.Marshal(e)
	return data, "application/json; charset=utf-8", err
}

// HTTPStatus implements the web httpStatus interface so the code gets
// translated to the right status.
func (e *Error) HTTPStatus() int {
	s, ok := httpStatus[e.Code.value]
	if !ok {
		return http.StatusInternalServerError
	}
	return s
}
