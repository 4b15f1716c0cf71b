// Package runner serves the sample functions over HTTP for local development.
package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"lambda-workloads/internal/event"
	"lambda-workloads/internal/handlers"
	"lambda-workloads/internal/metrics"
	"lambda-workloads/internal/middleware"
	"lambda-workloads/pkg/lambda"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// LocalVersion is reported as the function version for local invocations
const LocalVersion = "$LATEST"

// Runner routes HTTP requests to named functions
type Runner struct {
	functions map[string]handlers.Handler
	timeout   time.Duration
	logger    logrus.FieldLogger
}

// New creates a runner for the given functions
func New(functions map[string]handlers.Handler, timeout time.Duration, logger logrus.FieldLogger) *Runner {
	return &Runner{
		functions: functions,
		timeout:   timeout,
		logger:    logger,
	}
}

// Router builds the gin engine
func (r *Runner) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(r.logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC(),
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.POST("/invoke/:function", r.invoke)

	return router
}

// invoke returns the function's response envelope. The HTTP status reflects
// transport problems only; the function outcome lives in the envelope.
func (r *Runner) invoke(c *gin.Context) {
	name := c.Param("function")
	fn, ok := r.functions[name]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "function not found", "function": name})
		return
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		raw = []byte("{}")
	}
	if !json.Valid(raw) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event", "message": "request body is not valid JSON"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), r.timeout)
	defer cancel()
	ctx = lambda.NewContext(ctx, lambda.Invocation{
		FunctionName:    name,
		FunctionVersion: LocalVersion,
		RequestID:       c.GetString(middleware.RequestIDKey),
	})

	metrics.EventTypes.WithLabelValues(string(eventBranch(raw))).Inc()

	start := time.Now()
	resp, err := fn.Handle(ctx, json.RawMessage(raw))
	metrics.InvocationDuration.WithLabelValues(name).Observe(float64(time.Since(start).Microseconds()) / 1000)
	if err != nil {
		metrics.Invocations.WithLabelValues(name, "error").Inc()
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "function failed", "message": err.Error()})
		return
	}
	metrics.Invocations.WithLabelValues(name, strconv.Itoa(resp.StatusCode)).Inc()

	c.JSON(http.StatusOK, resp)
}

// eventBranch keeps the metric label set bounded to the summary branches
func eventBranch(raw []byte) event.Type {
	ev, err := event.Parse(raw)
	if err != nil {
		return event.TypeDefault
	}
	return event.Branch(event.TypeOf(ev))
}
