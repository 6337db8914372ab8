package api_client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// APIError - не-2xx ответ API. Сообщение - текст тела ответа, если он есть.
type APIError struct {
	StatusCode        int
	Body              string
	Code              string // поле "error" из JSON-тела
	RetryAfterSeconds *int
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return e.Body
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// errorBody - {"error": "...", "retry_after_seconds": N}
type errorBody struct {
	Error             string `json:"error"`
	RetryAfterSeconds *int   `json:"retry_after_seconds"`
}

func newAPIError(resp *http.Response) *APIError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	e := &APIError{
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(raw)),
	}
	var eb errorBody
	if json.Unmarshal(raw, &eb) == nil {
		e.Code = eb.Error
		e.RetryAfterSeconds = eb.RetryAfterSeconds
	}
	return e
}

// AsAPIError - достаёт *APIError из цепочки ошибок
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
