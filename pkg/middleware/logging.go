package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/magnus-console/pkg/apiErrors"
	"github.com/vfg2006/magnus-console/pkg/log"
)

const (
	CorrelationIDHeader = "X-Correlation-ID"
	slowRequest         = 500 * time.Millisecond
)

// LoggingMiddleware registra cada requisição HTTP com o ID de correlação
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context(), r.Header.Get(CorrelationIDHeader))
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationIDHeader, correlationID)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			log.ForContext(ctx).WithFields(log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"query":       r.URL.RawQuery,
				"remote_addr": r.RemoteAddr,
				"user_agent":  r.UserAgent(),
			}).Debug("→ Iniciando requisição")

			next.ServeHTTP(lrw, r)

			responseTime := time.Since(startTime)
			logger := log.ForContext(ctx).WithFields(log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": lrw.statusCode,
				"duration_ms": responseTime.Milliseconds(),
			})

			msg := fmt.Sprintf("Completada em %s", formatDuration(responseTime))
			switch {
			case lrw.statusCode >= 500:
				logger.Error("✗ " + msg)
			case lrw.statusCode >= 400:
				logger.Warn("✗ " + msg)
			default:
				logger.Info("✓ " + msg)
			}

			if responseTime > slowRequest {
				logger.Warnf("⚠ Requisição lenta: %s %s (%dms)", r.Method, r.URL.Path, responseTime.Milliseconds())
			}
		})
	}
}

// formatDuration formata a duração de forma humana
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// loggingResponseWriter captura o status code da resposta
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	if !lrw.wroteHeader {
		lrw.statusCode = code
		lrw.wroteHeader = true
	}
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	lrw.wroteHeader = true
	return lrw.ResponseWriter.Write(b)
}

// Flush mantém o suporte a streaming dos handlers de progresso
func (lrw *loggingResponseWriter) Flush() {
	if flusher, ok := lrw.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// LogPanicMiddleware converte panics em 500 sem derrubar o servidor
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stackTrace := string(stack[:runtime.Stack(stack, false)])

					logger := log.ForContext(r.Context()).WithFields(log.Fields{
						"error":  fmt.Sprint(err),
						"method": r.Method,
						"path":   r.URL.Path,
					})
					logger.Error("❌ PANIC na aplicação")

					if log.IsDevelopment() {
						fmt.Fprintf(os.Stderr, "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stackTrace)
					} else {
						logger.WithField("stack_trace", stackTrace).Error("Stack trace do erro")
					}

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
