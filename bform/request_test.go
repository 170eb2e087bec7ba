package bform_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/advdv/bmime"
	"github.com/advdv/bmime/bform"
	"github.com/advdv/bmime/bform/bformtest"
	"github.com/carlmjohnson/requests"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

func TestNewRequestPostsMultipart(t *testing.T) {
	srv, rec := bformtest.NewServer(t)

	logs := bform.NewBuilderLogger(zap.NewNop())
	builder := bmime.NewBuilderWith(bmime.OSFactory{Logs: logs}, logs)
	require.NoError(t, builder.AddPart("name", "Ada"))
	require.NoError(t, builder.AddPart("bio", "wrote programs", bmime.WithFilename("bio.txt")))

	rb, err := bform.NewRequest(requests.URL(srv.URL), builder)
	require.NoError(t, err)

	var resp string
	err = rb.Method(http.MethodPost).ToString(&resp).Fetch(context.Background())
	require.NoError(t, err)

	require.Equal(t, "Ada", gjson.Get(resp, "fields.name").String())
	require.Equal(t, "bio.txt", gjson.Get(resp, "files.bio").String())

	capture := rec.Last(t)
	require.Contains(t, capture.ContentType, "multipart/form-data; boundary=")
	require.Equal(t, builder.Boundary(), capture.Boundary)
}

func TestNewRequestPropagatesBuildFailure(t *testing.T) {
	t.Setenv("BMIME_MEMORY_LIMIT", "over 9000")

	logs := bform.NewBuilderLogger(zap.NewNop())
	builder := bmime.NewBuilderWith(bmime.OSFactory{Logs: logs}, logs)
	require.NoError(t, builder.AddPart("a", "hi"))

	_, err := bform.NewRequest(requests.New(), builder)
	require.Error(t, err)
	require.Equal(t, bmime.KindConfiguration, bmime.KindOf(err))
}
