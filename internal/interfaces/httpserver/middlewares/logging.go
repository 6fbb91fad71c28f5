package middlewares

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/Dmitry2004126/ai-assistant/internal/infrastructure/logger"
	"github.com/Dmitry2004126/ai-assistant/internal/utils/apperrors"
)

const binaryBodyPlaceholder = "<binary payload omitted>"

// bufferedResponseWriter tees everything written to the response into a
// buffer so the middleware can log response bodies after the handler ran.
type bufferedResponseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bufferedResponseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bufferedResponseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// RequestLogging traces every request through a per-request logger, captures
// request and response bodies, converts attached application errors into
// JSON error responses and turns panics into opaque 500 responses. The
// processing time is always logged, whatever way the request ends.
func RequestLogging(traces *logger.TraceFactory) gin.HandlerFunc {
	return func(c *gin.Context) {
		trace := traces.Logger(logger.RequestIDFromHeader(c.Request))
		start := time.Now()
		defer func() {
			trace.Info(fmt.Sprintf("Process time: %.4f seconds", time.Since(start).Seconds()))
		}()

		trace.Info(fmt.Sprintf("Incoming request: %s %s", c.Request.Method, c.Request.URL.Path))
		requestBody := captureRequestBody(c, trace)

		writer := &bufferedResponseWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		defer func() {
			if r := recover(); r != nil {
				trace.Error(fmt.Sprintf("Exception occurred: %v", r))
				trace.Error("Traceback: " + string(debug.Stack()))
				trace.Error(fmt.Sprintf("Request failed: %s %s", c.Request.Method, c.Request.URL.Path))
				if !c.Writer.Written() {
					c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
				}
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) > 0 {
			appErr := apperrors.Get(c.Errors.Last().Err)
			if appErr == nil {
				appErr = apperrors.Wrap(apperrors.ErrorTypeInternal, "Internal Server Error", c.Errors.Last().Err)
			}
			trace.Error(fmt.Sprintf("Handled error occurred: %v", appErr.Detail))
			if len(appErr.Stack) > 0 {
				trace.Error("Traceback: " + string(appErr.Stack))
			}
			if !c.Writer.Written() {
				c.JSON(appErr.Status(), gin.H{"detail": appErr.Detail})
			}
			return
		}

		status := c.Writer.Status()
		trace.Info(fmt.Sprintf("Request completed: %s %s", c.Request.Method, c.Request.URL.Path))
		trace.Info(fmt.Sprintf("Status code: %d", status))
		if status != http.StatusOK && status != http.StatusCreated {
			trace.Error("Request body: " + requestBody)
			trace.Error("Response body: " + writer.body.String())
		}
	}
}

// captureRequestBody drains the request body, logs it and puts a replayable
// copy back so handlers can still bind it. Bodies that are not valid UTF-8
// are never logged raw.
func captureRequestBody(c *gin.Context, trace *logger.TraceLogger) string {
	if c.Request.Body == nil {
		return ""
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		trace.Error(fmt.Sprintf("Failed to read request body: %v", err))
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))
	if len(raw) == 0 {
		return ""
	}
	body := string(raw)
	if !utf8.Valid(raw) {
		body = binaryBodyPlaceholder
	}
	trace.Info("Request body: " + body)
	return body
}
