package bform

import (
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap/zapcore"
)

// Environment defines the interface that all environment configurations must
// implement. Embed BaseEnvironment in your struct to satisfy this interface.
type Environment interface {
	bufferLimit() string
	logLevel() zapcore.Level
	tempDir() string
}

// BaseEnvironment contains the bform environment variables. Embed this in
// your custom environment struct.
type BaseEnvironment struct {
	// BufferLimit caps how much of an assembled body stays in memory
	// before it spills to disk, in GOMEMLIMIT syntax (e.g. "32MiB").
	// Empty selects the builder's auto-estimated default.
	BufferLimit string        `env:"BMIME_BUFFER_LIMIT"`
	LogLevel    zapcore.Level `env:"BMIME_LOG_LEVEL" envDefault:"info"`
	// TempDir overrides where spilled bodies are stored. Empty means the
	// system default temporary directory.
	TempDir string `env:"BMIME_TEMP_DIR"`
}

func (e BaseEnvironment) bufferLimit() string {
	return e.BufferLimit
}

func (e BaseEnvironment) logLevel() zapcore.Level {
	return e.LogLevel
}

func (e BaseEnvironment) tempDir() string {
	return e.TempDir
}

var _ Environment = BaseEnvironment{}

// ParseEnv parses environment variables into the given Environment type.
func ParseEnv[E Environment]() func() (E, error) {
	return func() (e E, err error) {
		if err := env.Parse(&e); err != nil {
			return e, errors.Wrap(err, "failed to parse environment")
		}
		return e, nil
	}
}
