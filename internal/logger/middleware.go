package logger

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware reuses the caller's X-Request-ID or mints a UUID, and
// echoes it back. It must run before LoggingMiddleware.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.New().String()
		}

		ctx := WithRequestID(r.Context(), reqID)
		w.Header().Set(RequestIDHeader, reqID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LoggingMiddleware is chi's request logger writing through zap. Its entry is
// also what chi's Recoverer reports panics to.
var LoggingMiddleware = chimw.RequestLogger(zapFormatter{})

type zapFormatter struct{}

func (zapFormatter) NewLogEntry(r *http.Request) chimw.LogEntry {
	return &zapEntry{log: FromCtx(r.Context()).With(
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("query", r.URL.RawQuery),
		zap.String("ip", r.RemoteAddr),
	)}
}

type zapEntry struct {
	log *zap.Logger
}

func (e *zapEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ interface{}) {
	// chi reports 0 when the handler never wrote.
	if status == 0 {
		status = http.StatusOK
	}
	e.log.Info("incoming request",
		zap.Int("status", status),
		zap.Int("bytes", bytes),
		zap.Duration("duration", elapsed),
	)
}

func (e *zapEntry) Panic(v interface{}, stack []byte) {
	e.log.Error("panic recovered",
		zap.Any("panic", v),
		zap.ByteString("stack", stack),
	)
}
