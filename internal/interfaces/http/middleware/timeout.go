// internal/interfaces/http/middleware/timeout.go
package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// timeoutWriter serializes access to the response. Once the deadline fires
// the timeout response is written exactly once and any late writes from the
// still-running handler are discarded instead of racing it.
type timeoutWriter struct {
	gin.ResponseWriter
	mu       sync.Mutex
	timedOut bool
	wrote    bool
}

func (w *timeoutWriter) WriteHeader(code int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timedOut {
		return
	}
	w.wrote = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *timeoutWriter) WriteHeaderNow() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timedOut {
		return
	}
	w.wrote = true
	w.ResponseWriter.WriteHeaderNow()
}

func (w *timeoutWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timedOut {
		return len(b), nil
	}
	w.wrote = true
	return w.ResponseWriter.Write(b)
}

func (w *timeoutWriter) WriteString(s string) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timedOut {
		return len(s), nil
	}
	w.wrote = true
	return w.ResponseWriter.WriteString(s)
}

// expire flips the writer into timed-out mode and emits the 408 unless the
// handler already produced a response.
func (w *timeoutWriter) expire() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.timedOut = true
	if w.wrote {
		return
	}
	w.ResponseWriter.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.ResponseWriter.WriteHeader(http.StatusRequestTimeout)
	w.ResponseWriter.WriteString(`{"error":"Request timeout"}`)
}

// Timeout bounds the total time a request may spend in the handler chain.
// The deadline rides on the request context, so downstream commerce API
// calls are cancelled along with the request; a handler that keeps running
// past the deadline has its late writes discarded.
func Timeout(limit time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), limit)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		w := &timeoutWriter{ResponseWriter: c.Writer}
		c.Writer = w

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			c.Next()
		}()

		select {
		case <-finished:
		case <-ctx.Done():
			w.expire()
		}
	}
}
