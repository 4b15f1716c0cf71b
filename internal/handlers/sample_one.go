package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"lambda-workloads/internal/config"
	"lambda-workloads/pkg/lambda"

	"github.com/sirupsen/logrus"
)

// DefaultSampleOneMessage is used when CUSTOM_MESSAGE is not set
const DefaultSampleOneMessage = "Hello from Lambda Sample One!"

// SampleOne echoes the received event together with the function identity
type SampleOne struct {
	base
	environment string
	message     string
}

type sampleOneBody struct {
	Message         string          `json:"message"`
	FunctionName    string          `json:"function_name"`
	FunctionVersion string          `json:"function_version"`
	Environment     string          `json:"environment"`
	Timestamp       string          `json:"timestamp"`
	EventReceived   json.RawMessage `json:"event_received"`
	RequestID       string          `json:"request_id"`
}

type sampleOneError struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

// NewSampleOne creates the echo handler
func NewSampleOne(cfg *config.Config, logger logrus.FieldLogger, opts ...Option) *SampleOne {
	return &SampleOne{
		base:        newBase(logger, opts),
		environment: cfg.Environment,
		message:     cfg.MessageOr(DefaultSampleOneMessage),
	}
}

// Handle echoes any JSON payload. It never returns an error; failures are reported as a 500 response.
func (h *SampleOne) Handle(ctx context.Context, payload json.RawMessage) (resp lambda.Response, err error) {
	ev := rawEvent(payload)
	inv := lambda.FromContext(ctx)
	log := h.logger.WithFields(logrus.Fields{
		"function_name": inv.FunctionName,
		"request_id":    inv.RequestID,
	})
	log.WithField("event", string(ev)).Info("Received event")

	fail := func(err error) lambda.Response {
		return failureResponse(sampleOneError{
			Error:     "Internal server error",
			Message:   err.Error(),
			RequestID: inv.RequestID,
		})
	}
	defer recoverInto(&resp, log, fail)

	body, err := json.MarshalIndent(sampleOneBody{
		Message:         h.message,
		FunctionName:    inv.FunctionName,
		FunctionVersion: inv.FunctionVersion,
		Environment:     h.environment,
		Timestamp:       h.timestamp(),
		EventReceived:   ev,
		RequestID:       inv.RequestID,
	}, "", "  ")
	if err != nil {
		log.WithError(err).Error("Error processing request")
		return fail(err), nil
	}

	log.Info("Processing completed successfully")
	return lambda.NewResponse(http.StatusOK, body, nil), nil
}
