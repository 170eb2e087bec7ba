package bmime_test

import (
	"testing"

	"github.com/advdv/bmime"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestErrorKind(t *testing.T) {
	err1 := bmime.NewError(bmime.KindConfiguration, errors.New("foo"))
	require.Equal(t, bmime.KindConfiguration, err1.Kind())
	require.Equal(t, bmime.KindConfiguration, bmime.KindOf(err1))
	require.Equal(t, "configuration: foo", err1.Error())

	require.Equal(t, bmime.KindUnknown, bmime.KindOf(errors.New("bar")))
	require.Equal(t, "unknown: rab", bmime.NewError(900, errors.New("rab")).Error())
}

func TestKindOfWrapped(t *testing.T) {
	inner := bmime.NewError(bmime.KindUnsupportedSource, errors.New("nope"))
	wrapped := errors.Wrap(inner, "while appending")

	require.Equal(t, bmime.KindUnsupportedSource, bmime.KindOf(wrapped))
}
