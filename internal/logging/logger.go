// README: Named zap subsystem loggers shared across the app.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the root logger at the given level ("debug", "info", "warn",
// "error"). Unknown levels fall back to info.
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

// Subsystem names kept stable so log filtering stays predictable.
const (
	API     = "api"
	AI      = "ai"
	Routes  = "routes"
	Weather = "weather"
	Safety  = "safety"
)

// For returns the named subsystem logger.
func For(root *zap.Logger, subsystem string) *zap.Logger {
	return root.Named(subsystem)
}
