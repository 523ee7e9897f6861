package log

import (
	"context"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Fields logrus.Fields

// Logger é o subconjunto do logrus usado pelo console HTTP
type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
}

type contextKey string

const CorrelationIDKey contextKey = "correlation_id"

const correlationIDField = "correlation_id"

type logger struct {
	entry *logrus.Entry
}

// L escreve no logger padrão do logrus
var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

// IsDevelopment considera APP_ENV vazio como desenvolvimento
func IsDevelopment() bool {
	switch os.Getenv("APP_ENV") {
	case "", "development", "dev":
		return true
	}
	return false
}

// Em desenvolvimento só estes campos (e os prefixados com magnus_) chegam ao terminal
var devFields = map[string]struct{}{
	correlationIDField: {},
	"method":           {},
	"path":             {},
	"status_code":      {},
	"duration_ms":      {},
	"error":            {},
	"viewer_id":        {},
	"session_id":       {},
	"section":          {},
	"job":              {},
}

func keepInDevelopment(key string) bool {
	if _, ok := devFields[key]; ok {
		return true
	}
	return strings.HasPrefix(key, "magnus_")
}

func (l *logger) WithField(key string, value any) Logger {
	return l.WithFields(Fields{key: value})
}

func (l *logger) WithFields(fields Fields) Logger {
	kept := make(logrus.Fields, len(fields))
	dev := IsDevelopment()
	for key, value := range fields {
		if dev && !keepInDevelopment(key) {
			continue
		}
		kept[key] = value
	}
	if len(kept) == 0 {
		return l
	}
	return &logger{entry: l.entry.WithFields(kept)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

func (l *logger) Debug(args ...any) { l.entry.Debug(args...) }
func (l *logger) Info(args ...any)  { l.entry.Info(args...) }
func (l *logger) Warn(args ...any)  { l.entry.Warn(args...) }
func (l *logger) Error(args ...any) { l.entry.Error(args...) }

func (l *logger) Warnf(format string, args ...any) {
	l.entry.Warnf(format, args...)
}

// WithCorrelationID guarda o ID no contexto; vazio gera um uuid novo
func WithCorrelationID(ctx context.Context, correlationID string) (context.Context, string) {
	if correlationID == "" {
		correlationID = uuid.New().String()
	}
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	correlationID, _ := ctx.Value(CorrelationIDKey).(string)
	return correlationID
}

// ForContext devolve L já com o correlation_id da requisição, quando houver
func ForContext(ctx context.Context) Logger {
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		return L.WithField(correlationIDField, correlationID)
	}
	return L
}
