package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"lambda-workloads/pkg/lambda"

	"github.com/sirupsen/logrus"
)

// Handler is implemented by every sample function. The payload is passed
// through undecoded so that any JSON value reaches Handle.
type Handler interface {
	Handle(ctx context.Context, payload json.RawMessage) (lambda.Response, error)
}

// Option configures a handler
type Option func(*base)

// WithClock overrides the time source used for response timestamps
func WithClock(now func() time.Time) Option {
	return func(b *base) {
		b.now = now
	}
}

type base struct {
	logger logrus.FieldLogger
	now    func() time.Time
}

func newBase(logger logrus.FieldLogger, opts []Option) base {
	b := base{logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b *base) timestamp() string {
	return b.now().UTC().Format(time.RFC3339Nano)
}

// recoverInto converts a panic raised while building a response into a failure response.
// It must be deferred directly.
func recoverInto(resp *lambda.Response, log logrus.FieldLogger, fail func(error) lambda.Response) {
	r := recover()
	if r == nil {
		return
	}
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("%v", r)
	}
	log.WithError(err).WithField("stack", string(debug.Stack())).Error("Error processing request")
	*resp = fail(err)
}

// rawEvent normalizes an empty payload to JSON null
func rawEvent(payload json.RawMessage) json.RawMessage {
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	return payload
}

// failureResponse encodes body compactly with a 500 status
func failureResponse(body any) lambda.Response {
	data, err := json.Marshal(body)
	if err != nil {
		data = []byte(`{"error":"Internal server error"}`)
	}
	return lambda.NewResponse(http.StatusInternalServerError, data, nil)
}
