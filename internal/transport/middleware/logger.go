package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/bullion-registry/pkg/ctxutil"
)

// requestRecord collects what inner middleware learns about a request so the
// outer Logger can report it once the handler returns.
type requestRecord struct {
	account uuid.UUID
}

type recordKey struct{}

// noteAccount records the authenticated caller for the access log. It is a
// no-op outside Logger.
func noteAccount(ctx context.Context, id uuid.UUID) {
	if rec, ok := ctx.Value(recordKey{}).(*requestRecord); ok {
		rec.account = id
	}
}

// Logger returns middleware that writes one access log line per request.
// 5xx responses log at ERROR, 401/403/429 at WARN, probe endpoints at DEBUG.
func Logger(logger *slog.Logger, quietPaths ...string) Middleware {
	quiet := make(map[string]struct{}, len(quietPaths))
	for _, p := range quietPaths {
		quiet[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			rec := &requestRecord{}

			next.ServeHTTP(sw, r.WithContext(context.WithValue(r.Context(), recordKey{}, rec)))

			ctx := r.Context()
			if rec.account != uuid.Nil {
				ctx = ctxutil.WithAccountID(ctx, rec.account)
			}

			attrs := append([]slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int64("bytes", sw.written),
				slog.Duration("duration", time.Since(start)),
			}, ctxutil.LogAttrs(ctx)...)

			logger.LogAttrs(ctx, accessLevel(r.URL.Path, sw.status, quiet), "http.request", attrs...)
		})
	}
}

func accessLevel(path string, status int, quiet map[string]struct{}) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status == http.StatusUnauthorized, status == http.StatusForbidden, status == http.StatusTooManyRequests:
		return slog.LevelWarn
	}
	if _, ok := quiet[path]; ok {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// statusWriter wraps http.ResponseWriter to capture the status code and body size.
type statusWriter struct {
	http.ResponseWriter
	status      int
	written     int64
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	n, err := w.ResponseWriter.Write(b)
	w.written += int64(n)
	return n, err
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
