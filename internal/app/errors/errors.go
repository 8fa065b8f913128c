package errors

import (
	"errors"
	"net/http"
	"strings"
)

type ResponseCodeError struct {
	err    error
	msg    string
	code   int
	fields []string
}

func New(err error, msg string) error {
	return ResponseCodeError{err: err, msg: msg, code: 500}
}
func NewWithCode(err error, msg string, code int) error {
	return ResponseCodeError{err: err, msg: msg, code: code}
}

// NewMissingFields reports absent request fields as a 400.
func NewMissingFields(fields ...string) error {
	msg := "Missing: " + strings.Join(fields, ", ")
	return ResponseCodeError{err: errors.New(msg), msg: msg, code: http.StatusBadRequest, fields: fields}
}
func (rce ResponseCodeError) Error() string {
	if rce.err == nil {
		return rce.msg
	}
	return rce.err.Error()
}
func (rce ResponseCodeError) Msg() string {
	return rce.msg
}
func (rce ResponseCodeError) Code() int {
	return rce.code
}
func (rce ResponseCodeError) Fields() []string {
	return rce.fields
}
func (rce ResponseCodeError) Unwrap() error {
	return rce.err
}
