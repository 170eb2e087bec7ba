package bform_test

import (
	"testing"

	"github.com/advdv/bmime/bform"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestModuleWiring(t *testing.T) {
	t.Setenv("BMIME_LOG_LEVEL", "error")

	var builders *bform.Builders
	app := fx.New(
		bform.Module[bform.BaseEnvironment](),
		fx.Populate(&builders),
		fx.NopLogger,
	)
	require.NoError(t, app.Err())
	require.NotNil(t, builders)

	builder, err := builders.New()
	require.NoError(t, err)
	require.NotNil(t, builder)
}
