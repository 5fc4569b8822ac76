package middleware

import (
	"time"

	"github.com/urinakcleaning/booking-service/pkg/jwtauth"
)

// TokenParser проверяет токен админ-сессии (pkg/jwtauth.Issuer)
type TokenParser interface {
	Parse(raw string) (*jwtauth.Claims, error)
}

// HTTPMetrics получатель метрик HTTP (pkg/metrics.Metrics)
type HTTPMetrics interface {
	ObserveHTTPRequest(method, route string, status int, elapsed time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
