package bform

import (
	"github.com/advdv/bmime"
	"github.com/advdv/bmime/internal/memlimit"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Builders creates environment-configured [bmime.Builder] instances. A
// builder is mutable per-request state, so each assembled body should get
// its own.
type Builders struct {
	env  Environment
	logs *zap.Logger
}

// NewBuilders inits the factory from the parsed environment and logger.
func NewBuilders(env Environment, logs *zap.Logger) *Builders {
	return &Builders{env: env, logs: logs}
}

// New creates a builder backed by the OS stream factory, honoring the
// environment's temp dir and buffer-limit settings. A malformed
// BMIME_BUFFER_LIMIT fails with [bmime.KindConfiguration].
func (f *Builders) New() (*bmime.Builder, error) {
	logs := NewBuilderLogger(f.logs)
	builder := bmime.NewBuilderWith(bmime.OSFactory{TempDir: f.env.tempDir(), Logs: logs}, logs)

	if limit := f.env.bufferLimit(); limit != "" {
		threshold, err := memlimit.Parse(limit)
		if err != nil {
			return nil, errors.Wrap(
				bmime.NewError(bmime.KindConfiguration, err), "parse BMIME_BUFFER_LIMIT")
		}
		builder.SetBufferThreshold(threshold)
	}

	return builder, nil
}
