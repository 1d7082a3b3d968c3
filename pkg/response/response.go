package response

import (
	"net/http"

	"github.com/fatflowers/coursehub/pkg/apperr"
)

type APIResponseCode int

const (
	APIResponseCodeOK           APIResponseCode = 0
	APIResponseCodeBadRequest   APIResponseCode = 40000
	APIResponseCodeUnauthorized APIResponseCode = 40100
	APIResponseCodeForbidden    APIResponseCode = 40300
	APIResponseCodeNotFound     APIResponseCode = 40400
	APIResponseCodeConflict     APIResponseCode = 40900
	APIResponseCodeTooMany      APIResponseCode = 42900
	APIResponseCodeError        APIResponseCode = 50000
	APIResponseCodeUpstream     APIResponseCode = 50200
)

var codeToMsg = map[APIResponseCode]string{
	APIResponseCodeOK:           "ok",
	APIResponseCodeBadRequest:   "bad request",
	APIResponseCodeUnauthorized: "unauthorized",
	APIResponseCodeForbidden:    "forbidden",
	APIResponseCodeNotFound:     "not found",
	APIResponseCodeConflict:     "conflict",
	APIResponseCodeTooMany:      "too many requests",
	APIResponseCodeError:        "Internal Server Error",
	APIResponseCodeUpstream:     "upstream error",
}

var statusToCode = map[int]APIResponseCode{
	http.StatusBadRequest:          APIResponseCodeBadRequest,
	http.StatusUnauthorized:        APIResponseCodeUnauthorized,
	http.StatusForbidden:           APIResponseCodeForbidden,
	http.StatusNotFound:            APIResponseCodeNotFound,
	http.StatusConflict:            APIResponseCodeConflict,
	http.StatusTooManyRequests:     APIResponseCodeTooMany,
	http.StatusBadGateway:          APIResponseCodeUpstream,
	http.StatusInternalServerError: APIResponseCodeError,
}

// APIResponse is the generic response envelope used by HTTP APIs.
// Use OKT / ErrorT / FromError to construct instances.
type APIResponse[T any] struct {
	Code    APIResponseCode `json:"code"`
	Message string          `json:"message"`
	Data    T               `json:"data"`
}

// OKT returns a successful response with data.
func OKT[T any](data T) *APIResponse[T] {
	return &APIResponse[T]{Code: APIResponseCodeOK, Message: codeToMsg[APIResponseCodeOK], Data: data}
}

// ErrorT returns an error response with the code's default message and optional data.
func ErrorT[T any](code APIResponseCode, data T) *APIResponse[T] {
	return &APIResponse[T]{Code: code, Message: codeToMsg[code], Data: data}
}

// FromError maps err to an HTTP status and envelope. Only apperr messages
// reach the client; anything else is reported as a bare 500.
func FromError(err error) (int, *APIResponse[any]) {
	status := apperr.StatusCode(err)
	code, ok := statusToCode[status]
	if !ok {
		code = APIResponseCodeError
	}
	msg := codeToMsg[APIResponseCodeError]
	if e, ok := apperr.As(err); ok && e.Message != "" {
		msg = e.Message
	}
	return status, &APIResponse[any]{Code: code, Message: msg}
}
