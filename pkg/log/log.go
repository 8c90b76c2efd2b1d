package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZapLogger builds a production sugared logger tagged with the service
// name. Falls back to a no-op logger if the build fails so callers never
// have to handle a logger construction error.
func NewZapLogger(service string, level zapcore.Level) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build(zap.Fields(zap.String("service", service)))
	if err != nil {
		return zap.NewNop().Sugar()
	}

	return logger.Sugar()
}
