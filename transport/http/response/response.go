package response

import (
	"encoding/json"
	"net/http"
	"portfolio/shared/constant"
	"portfolio/shared/failure"
	"portfolio/shared/logger"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// Ack is the envelope of the public intake endpoint. Error is omitted on server faults.
type Ack struct {
	OK    bool    `json:"ok"`
	ID    *int64  `json:"id,omitempty"`
	Error *string `json:"error,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

// WithError sends a response with an error message. Server faults get a generic text.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := failure.Message(err)

	response(writer, code, Error{Error: &errMsg})
}

// WithAck acknowledges an accepted submission.
func WithAck(writer http.ResponseWriter, id int64) {
	response(writer, http.StatusOK, Ack{OK: true, ID: &id})
}

// WithRejection reports a failed submission as {"ok":false,...}. Client errors carry
// their message, server errors carry nothing.
func WithRejection(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	ack := Ack{OK: false}
	if failure.IsClientError(err) {
		msg := failure.Message(err)
		ack.Error = &msg
	}

	response(writer, code, ack)
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

// WithHTML writes an already rendered page.
func WithHTML(writer http.ResponseWriter, code int, body []byte) {
	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	writer.WriteHeader(code)

	if _, err := writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
