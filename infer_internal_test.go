package bmime

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func inferFor(t *testing.T, name string, content ByteStream, filename string, explicit ...PartHeader) *PartHeaders {
	t.Helper()

	hdrs := NewPartHeaders()
	for _, h := range explicit {
		hdrs.Set(h.Name, h.Value)
	}
	inferHeaders(hdrs, name, content, filename, NewMimetypes(nil))

	return hdrs
}

func TestInferDisposition(t *testing.T) {
	hdrs := inferFor(t, "field", &memStream{r: bytes.NewReader([]byte("x"))}, "")

	disp, ok := hdrs.Get("content-disposition")
	require.True(t, ok)
	require.Equal(t, `form-data; name="field"`, disp)
}

func TestInferDispositionEscapesQuotes(t *testing.T) {
	hdrs := inferFor(t, `we"ird\name`, &memStream{r: bytes.NewReader(nil)}, `qu"oted.txt`)

	disp, _ := hdrs.Get("Content-Disposition")
	require.Equal(t, `form-data; name="we\"ird\\name"; filename="qu\"oted.txt"`, disp)
}

func TestInferFilenameFromOrigin(t *testing.T) {
	stream := &originStream{origin: "/var/data/uploads/φωτογραφία.png"}
	hdrs := inferFor(t, "photo", stream, "")

	disp, _ := hdrs.Get("Content-Disposition")
	require.Equal(t, `form-data; name="photo"; filename="φωτογραφία.png"`, disp)

	typ, ok := hdrs.Get("Content-Type")
	require.True(t, ok)
	require.Equal(t, "image/png", typ)
}

func TestInferExplicitFilenameBeatsOrigin(t *testing.T) {
	stream := &originStream{origin: "/etc/origin.bin"}
	hdrs := inferFor(t, "f", stream, "chosen.txt")

	disp, _ := hdrs.Get("Content-Disposition")
	require.Contains(t, disp, `filename="chosen.txt"`)
}

func TestInferWindowsSeparator(t *testing.T) {
	hdrs := inferFor(t, "f", &memStream{r: bytes.NewReader(nil)}, `C:\Users\jan\Documenten\verslag.docx`)

	disp, _ := hdrs.Get("Content-Disposition")
	require.Contains(t, disp, `filename="verslag.docx"`)
}

// A reported size of exactly zero is a definite length and must be emitted;
// only an unknown size omits the header. Legacy implementations that treat
// zero as falsy conflate the two.
func TestInferContentLengthZeroIsEmitted(t *testing.T) {
	hdrs := inferFor(t, "empty", &memStream{r: bytes.NewReader(nil)}, "")

	length, ok := hdrs.Get("Content-Length")
	require.True(t, ok)
	require.Equal(t, "0", length)
}

func TestInferContentLengthUnknownIsOmitted(t *testing.T) {
	hdrs := inferFor(t, "f", &readerStream{r: bytes.NewReader([]byte("abc"))}, "")
	require.False(t, hdrs.Has("Content-Length"))
}

func TestInferSuppressedByAnyCaseVariant(t *testing.T) {
	stream := &originStream{origin: "pic.jpg"}
	hdrs := inferFor(t, "f", stream, "",
		PartHeader{Name: "content-disposition", Value: "custom"},
		PartHeader{Name: "CONTENT-TYPE", Value: "application/x-custom"},
		PartHeader{Name: "Content-length", Value: "99"},
	)

	require.Equal(t, 3, hdrs.Len())

	disp, _ := hdrs.Get("Content-Disposition")
	require.Equal(t, "custom", disp)

	typ, _ := hdrs.Get("Content-Type")
	require.Equal(t, "application/x-custom", typ)

	length, _ := hdrs.Get("Content-Length")
	require.Equal(t, "99", length)
}

func TestInferNoContentTypeWithoutFilename(t *testing.T) {
	hdrs := inferFor(t, "f", &memStream{r: bytes.NewReader([]byte("binary"))}, "")
	require.False(t, hdrs.Has("Content-Type"))
}

func TestBasename(t *testing.T) {
	for in, exp := range map[string]string{
		"plain.txt":             "plain.txt",
		"/abs/path/to/file.png": "file.png",
		`C:\win\style\doc.pdf`:  "doc.pdf",
		"trailing/":             "",
		"mixed/sep\\end.gif":    "end.gif",
		"дані/файл.csv":         "файл.csv",
	} {
		require.Equal(t, exp, basename(in), "input %q", in)
	}
}

// originStream is a seekable in-memory stream with a configurable origin,
// standing in for file-backed content in inference tests.
type originStream struct {
	origin string
	data   []byte
	pos    int
}

func (s *originStream) Read(p []byte) (int, error) {
	if s.pos >= len(s.data) {
		return 0, io.EOF
	}
	n := copy(p, s.data[s.pos:])
	s.pos += n
	return n, nil
}

func (s *originStream) Seekable() bool      { return true }
func (s *originStream) Rewind() error       { s.pos = 0; return nil }
func (s *originStream) Size() (int64, bool) { return int64(len(s.data)), true }
func (s *originStream) Origin() string      { return s.origin }
