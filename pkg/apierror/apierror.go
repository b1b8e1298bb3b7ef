package apierror

import "fmt"

type APIError struct {
	Title      string `json:"error"`
	Detail     any    `json:"detail"`
	HTTPStatus int    `json:"-"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}

	if e.Detail != nil {
		return fmt.Sprintf("%s: %v", e.Title, e.Detail)
	}

	return e.Title
}

func New(title string, detail any, status int) *APIError {
	return &APIError{Title: title, Detail: detail, HTTPStatus: status}
}

// Issue is a single entry of an aggregated validation failure.
type Issue struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}
