package logger

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "unlockd"

// Log глобальный логгер. До вызова Initialize ничего не пишет.
var Log *zap.Logger = zap.NewNop()

// Initialize настраивает Log. Для env == "development" вывод человекочитаемый, иначе JSON
// с полями service и env в каждой записи.
func Initialize(level, env string) error {
	logLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return fmt.Errorf("ошибка парсинга уровня логирования: %w", err)
	}

	var config zap.Config
	if env == "development" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
		config.InitialFields = map[string]any{"service": serviceName, "env": env}
	}
	config.Level = logLevel

	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("ошибка построения логгера: %w", err)
	}

	Log = logger

	return nil
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.size += n
	return n, err
}

// levelFor уровень записи о запросе по коду ответа. Preflight CORS пишется только в debug.
func levelFor(method string, status int) zapcore.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zapcore.ErrorLevel
	case status >= http.StatusBadRequest:
		return zapcore.WarnLevel
	case method == http.MethodOptions:
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

// RequestLogger пишет в лог каждый обработанный HTTP-запрос.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startTime := time.Now()
		wrappedWriter := newResponseWriter(w)

		next.ServeHTTP(wrappedWriter, r)

		if ce := Log.Check(levelFor(r.Method, wrappedWriter.statusCode), "request handled"); ce != nil {
			ce.Write(
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", wrappedWriter.statusCode),
				zap.Int("size", wrappedWriter.size),
				zap.Duration("duration", time.Since(startTime)),
			)
		}
	})
}
