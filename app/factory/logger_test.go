package factory

import (
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func TestNewModuleLogger(t *testing.T) {
	logger := NewModuleLogger("subscription-service")
	entry, ok := logger.(*logrus.Entry)
	if !ok {
		t.Fatalf("expected *logrus.Entry, got %T", logger)
	}
	if entry.Data["module"] != "subscription-service" {
		t.Fatalf("expected module field, got %+v", entry.Data)
	}
}

func TestLoggerWithContextUsesRequestHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest("GET", "/investors/abc/subscription", nil)
	req.Header.Set(echo.HeaderXRequestID, "rest-test-123")
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	logger := LoggerWithContext(logrus.NewEntry(logrus.StandardLogger()), ctx)
	entry, ok := logger.(*logrus.Entry)
	if !ok {
		t.Fatalf("expected *logrus.Entry, got %T", logger)
	}
	if entry.Data["request_id"] != "rest-test-123" {
		t.Fatalf("expected request_id field, got %+v", entry.Data)
	}
}

func TestLoggerWithContextFallsBackToResponseHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest("GET", "/plans", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.Response().Header().Set(echo.HeaderXRequestID, "rest-generated")

	entry := LoggerWithContext(logrus.NewEntry(logrus.StandardLogger()), ctx).(*logrus.Entry)
	if entry.Data["request_id"] != "rest-generated" {
		t.Fatalf("expected generated request_id, got %+v", entry.Data)
	}
}

func TestLoggerWithContextWithoutRequestID(t *testing.T) {
	e := echo.New()
	ctx := e.NewContext(httptest.NewRequest("GET", "/health", nil), httptest.NewRecorder())

	entry := LoggerWithContext(NewModuleLogger("test"), ctx).(*logrus.Entry)
	if _, ok := entry.Data["request_id"]; ok {
		t.Fatalf("expected no request_id, got %+v", entry.Data)
	}
}
