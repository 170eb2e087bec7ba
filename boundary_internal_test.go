package bmime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateBoundary(t *testing.T) {
	one := generateBoundary()
	two := generateBoundary()

	require.NotEqual(t, one, two)
	require.NoError(t, validateBoundary(one))
	require.NoError(t, validateBoundary(two))
}

func TestValidateBoundary(t *testing.T) {
	require.NoError(t, validateBoundary("simple"))
	require.NoError(t, validateBoundary("with-these:chars_0.9"))

	require.Error(t, validateBoundary(""))
	require.Error(t, validateBoundary("no spaces allowed"))
	require.Error(t, validateBoundary("no\"quotes"))
}
