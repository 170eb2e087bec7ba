package bform

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module wires bform's components for fx-based applications: the parsed
// environment, the zap logger, and the [Builders] factory.
//
// Example:
//
//	var builders *bform.Builders
//	app := fx.New(
//	    bform.Module[bform.BaseEnvironment](),
//	    fx.Populate(&builders),
//	)
func Module[E Environment]() fx.Option {
	return fx.Module("bform",
		fx.Provide(
			ParseEnv[E](),
			func(env E) (*zap.Logger, error) { return NewLogger(env) },
			func(env E, logs *zap.Logger) *Builders { return NewBuilders(env, logs) },
		),
	)
}
