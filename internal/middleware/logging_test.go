package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func newTestRouter(logger logrus.FieldLogger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), StructuredLogger(logger))
	router.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})
	router.GET("/boom", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})
	return router
}

func TestRequestID(t *testing.T) {
	logger, _ := test.NewNullLogger()
	router := newTestRouter(logger)

	t.Run("KeepsIncomingHeader", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set("X-Request-ID", "given-id")
		router.ServeHTTP(w, req)

		if w.Body.String() != "given-id" {
			t.Errorf("Expected request id given-id, got %q", w.Body.String())
		}
		if w.Header().Get("X-Request-ID") != "given-id" {
			t.Errorf("Expected echoed header, got %q", w.Header().Get("X-Request-ID"))
		}
	})

	t.Run("GeneratesUUID", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

		if _, err := uuid.Parse(w.Body.String()); err != nil {
			t.Errorf("Expected generated UUID, got %q", w.Body.String())
		}
	})
}

func TestStructuredLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	router := newTestRouter(logger)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	entry := hook.LastEntry()
	if entry.Level != logrus.InfoLevel || entry.Data["status_code"] != http.StatusOK {
		t.Errorf("Unexpected entry for /ok: %v %v", entry.Level, entry.Data)
	}

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))
	entry = hook.LastEntry()
	if entry.Level != logrus.ErrorLevel || entry.Data["path"] != "/boom" {
		t.Errorf("Unexpected entry for /boom: %v %v", entry.Level, entry.Data)
	}
}
