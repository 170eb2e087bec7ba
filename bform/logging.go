package bform

import (
	"github.com/advdv/bmime"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a zap logger configured from the environment. Uses JSON
// encoding suitable for log aggregation. BMIME_LOG_LEVEL controls the level
// (debug, info, warn, error).
func NewLogger(env Environment) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(env.logLevel())
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

type zapLogger struct{ *zap.Logger }

func (l zapLogger) LogSinkSpill(accumulated, threshold int64) {
	l.Logger.Info("multipart sink spilled to disk",
		zap.Int64("accumulated_bytes", accumulated),
		zap.Int64("threshold_bytes", threshold))
}

func (l zapLogger) LogTempCleanupError(err error) {
	l.Logger.Error("error while cleaning up temporary storage", zap.Error(err))
}

// NewBuilderLogger adapts a zap logger to the [bmime.Logger] interface.
func NewBuilderLogger(l *zap.Logger) bmime.Logger {
	return zapLogger{l.Named("bmime")}
}
