package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"lambda-workloads/internal/config"
	"lambda-workloads/internal/event"
	"lambda-workloads/internal/identity"
	"lambda-workloads/pkg/lambda"

	"github.com/sirupsen/logrus"
)

// DefaultSampleTwoMessage is used when CUSTOM_MESSAGE is not set
const DefaultSampleTwoMessage = "Hello from Lambda Sample Two!"

// SampleTwo classifies the event by its declared type and reports account context
type SampleTwo struct {
	base
	environment string
	region      string
	message     string
	accounts    identity.Resolver
}

type sampleTwoBody struct {
	Message         string        `json:"message"`
	FunctionName    string        `json:"function_name"`
	FunctionVersion string        `json:"function_version"`
	Environment     string        `json:"environment"`
	AWSRegion       string        `json:"aws_region"`
	AccountID       string        `json:"account_id"`
	Timestamp       string        `json:"timestamp"`
	EventType       any           `json:"event_type"`
	ProcessedData   event.Summary `json:"processed_data"`
	RequestID       string        `json:"request_id"`
	RemainingTimeMS int64         `json:"remaining_time_ms"`
}

type sampleTwoError struct {
	Error        string `json:"error"`
	Message      string `json:"message"`
	FunctionName string `json:"function_name"`
	RequestID    string `json:"request_id"`
	Timestamp    string `json:"timestamp"`
}

// NewSampleTwo creates the classifier handler
func NewSampleTwo(cfg *config.Config, accounts identity.Resolver, logger logrus.FieldLogger, opts ...Option) *SampleTwo {
	return &SampleTwo{
		base:        newBase(logger, opts),
		environment: cfg.Environment,
		region:      cfg.Region,
		message:     cfg.MessageOr(DefaultSampleTwoMessage),
		accounts:    accounts,
	}
}

// Handle expects a JSON object payload. It never returns an error; failures,
// including a payload that is not an object, are reported as a 500 response.
func (h *SampleTwo) Handle(ctx context.Context, payload json.RawMessage) (resp lambda.Response, err error) {
	raw := rawEvent(payload)
	inv := lambda.FromContext(ctx)
	log := h.logger.WithFields(logrus.Fields{
		"function_name": inv.FunctionName,
		"request_id":    inv.RequestID,
	})
	log.WithField("event", string(raw)).Info("Lambda Sample Two invoked")

	fail := func(err error) lambda.Response {
		return failureResponse(sampleTwoError{
			Error:        "Internal server error",
			Message:      err.Error(),
			FunctionName: inv.FunctionName,
			RequestID:    inv.RequestID,
			Timestamp:    h.safeTimestamp(),
		})
	}
	defer recoverInto(&resp, log, fail)

	body, eventType, err := h.process(ctx, inv, raw)
	if err != nil {
		log.WithError(err).Error("Error processing request")
		return fail(err), nil
	}

	log.WithField("event_type", eventType).Info("Processing completed successfully")
	return lambda.NewResponse(http.StatusOK, body, map[string]string{
		"X-Function-Name": inv.FunctionName,
		"X-Request-ID":    inv.RequestID,
	}), nil
}

func (h *SampleTwo) process(ctx context.Context, inv lambda.Invocation, raw json.RawMessage) ([]byte, any, error) {
	accountID, err := h.accounts.AccountID(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve account: %w", err)
	}

	ev, err := event.Parse(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("decode event: %w", err)
	}

	eventType := event.TypeValue(ev)
	now := h.now()

	body, err := json.MarshalIndent(sampleTwoBody{
		Message:         h.message,
		FunctionName:    inv.FunctionName,
		FunctionVersion: inv.FunctionVersion,
		Environment:     h.environment,
		AWSRegion:       h.region,
		AccountID:       accountID,
		Timestamp:       now.UTC().Format(time.RFC3339Nano),
		EventType:       eventType,
		ProcessedData:   event.Summarize(ev, event.TypeOf(ev)),
		RequestID:       inv.RequestID,
		RemainingTimeMS: inv.RemainingTime(now).Milliseconds(),
	}, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("encode response: %w", err)
	}
	return body, eventType, nil
}

// safeTimestamp keeps the failure path usable when the clock itself panics
func (h *SampleTwo) safeTimestamp() (ts string) {
	defer func() {
		if recover() != nil {
			ts = time.Now().UTC().Format(time.RFC3339Nano)
		}
	}()
	return h.timestamp()
}
