package bmime

import (
	"log"
	"sync/atomic"
	"testing"
)

// Logger can be implemented to get informed about important states.
type Logger interface {
	LogSinkSpill(accumulated, threshold int64)
	LogTempCleanupError(err error)
}

type stdLogger struct{ *log.Logger }

func (l stdLogger) LogSinkSpill(accumulated, threshold int64) {
	l.Logger.Printf("bmime: sink spilled to disk: %d bytes buffered, threshold %d", accumulated, threshold)
}

func (l stdLogger) LogTempCleanupError(err error) {
	l.Logger.Printf("bmime: error while cleaning up temporary storage: %s", err)
}

func NewStdLogger(l *log.Logger) Logger {
	return stdLogger{l}
}

type TestLogger struct {
	tb testing.TB

	NumLogSinkSpill        int64
	NumLogTempCleanupError int64
}

func NewTestLogger(tb testing.TB) *TestLogger {
	return &TestLogger{tb: tb}
}

func (l *TestLogger) LogSinkSpill(accumulated, threshold int64) {
	atomic.AddInt64(&l.NumLogSinkSpill, 1)
	l.tb.Logf("bmime: sink spilled to disk: %d bytes buffered, threshold %d", accumulated, threshold)
}

func (l *TestLogger) LogTempCleanupError(err error) {
	atomic.AddInt64(&l.NumLogTempCleanupError, 1)
	l.tb.Logf("bmime: error while cleaning up temporary storage: %s", err)
}

var _ Logger = &TestLogger{}
