package lambda

import (
	"context"
	"time"

	"github.com/aws/aws-lambda-go/lambdacontext"
)

// ContentTypeJSON is the content type of every handler response body
const ContentTypeJSON = "application/json"

// Response is the envelope returned to the invoking runtime
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

// NewResponse builds a JSON response. Content-Type is always set; extra headers are merged on top.
func NewResponse(statusCode int, body []byte, extra map[string]string) Response {
	headers := map[string]string{"Content-Type": ContentTypeJSON}
	for k, v := range extra {
		headers[k] = v
	}
	return Response{
		StatusCode: statusCode,
		Headers:    headers,
		Body:       string(body),
	}
}

// Invocation is the metadata the hosting platform supplies for a single call
type Invocation struct {
	FunctionName    string
	FunctionVersion string
	RequestID       string
	Deadline        time.Time
}

// RemainingTime returns the time left before the deadline, or zero when there is none
func (i Invocation) RemainingTime(now time.Time) time.Duration {
	if i.Deadline.IsZero() {
		return 0
	}
	if remaining := i.Deadline.Sub(now); remaining > 0 {
		return remaining
	}
	return 0
}

type invocationKey struct{}

// NewContext attaches invocation metadata for callers that are not the Lambda runtime
func NewContext(ctx context.Context, inv Invocation) context.Context {
	return context.WithValue(ctx, invocationKey{}, inv)
}

// FromContext resolves invocation metadata. Values attached with NewContext win;
// otherwise the Lambda runtime context and environment are used.
func FromContext(ctx context.Context) Invocation {
	inv, ok := ctx.Value(invocationKey{}).(Invocation)
	if !ok {
		inv = Invocation{
			FunctionName:    lambdacontext.FunctionName,
			FunctionVersion: lambdacontext.FunctionVersion,
		}
		if lc, ok := lambdacontext.FromContext(ctx); ok {
			inv.RequestID = lc.AwsRequestID
		}
	}

	if inv.Deadline.IsZero() {
		if deadline, ok := ctx.Deadline(); ok {
			inv.Deadline = deadline
		}
	}
	return inv
}
