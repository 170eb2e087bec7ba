package bmime

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
)

// StreamFactory turns raw part sources into ByteStreams and creates the
// growable sink a build assembles into.
type StreamFactory interface {
	// Wrap accepts a string, []byte, *os.File, io.Reader or an existing
	// [ByteStream]. Anything else fails with [KindUnsupportedSource].
	Wrap(source any) (ByteStream, error)

	// CreateSink returns a read/write sink that buffers up to threshold
	// bytes in memory before spilling to temporary storage.
	CreateSink(threshold int64) (Sink, error)
}

// FactoryLocator resolves a StreamFactory when the caller did not supply
// one. It is consulted exactly once at construction time; there is no
// implicit global registry behind it.
type FactoryLocator func() (StreamFactory, error)

// DefaultLocator resolves the OS-backed [OSFactory].
func DefaultLocator() (StreamFactory, error) {
	return OSFactory{}, nil
}

// OSFactory is a StreamFactory backed by process memory and the operating
// system's temporary directory. The zero value is ready to use.
type OSFactory struct {
	// TempDir overrides where spilled sinks place their temporary file.
	// Empty means the system default.
	TempDir string

	// Logs receives sink events. Nil means the standard library logger.
	Logs Logger
}

// Wrap implements [StreamFactory].
func (f OSFactory) Wrap(source any) (ByteStream, error) {
	switch src := source.(type) {
	case ByteStream:
		return src, nil
	case string:
		return &memStream{r: bytes.NewReader([]byte(src))}, nil
	case []byte:
		return &memStream{r: bytes.NewReader(src)}, nil
	case *os.File:
		return &fileStream{f: src}, nil
	case io.Reader:
		return &readerStream{r: src}, nil
	default:
		return nil, NewError(KindUnsupportedSource, fmt.Errorf(
			"cannot wrap %T as part content, accepted: string, []byte, *os.File, io.Reader, bmime.ByteStream", source))
	}
}

// CreateSink implements [StreamFactory].
func (f OSFactory) CreateSink(threshold int64) (Sink, error) {
	return &spillSink{threshold: threshold, tempDir: f.TempDir, logs: f.logger()}, nil
}

func (f OSFactory) logger() Logger {
	if f.Logs != nil {
		return f.Logs
	}
	return NewStdLogger(log.Default())
}

// memStream adapts an in-memory byte sequence. Its origin is anonymous, so
// no filename is ever derived from it.
type memStream struct {
	r *bytes.Reader
}

func (s *memStream) Read(p []byte) (int, error) { return s.r.Read(p) }
func (s *memStream) Seekable() bool             { return true }
func (s *memStream) Size() (int64, bool)        { return s.r.Size(), true }
func (s *memStream) Origin() string             { return "" }

func (s *memStream) Rewind() error {
	_, err := s.r.Seek(0, io.SeekStart)
	return err
}

// fileStream adapts an open *os.File. Its origin is the file's path, which
// header inference reduces to a basename.
type fileStream struct {
	f *os.File
}

func (s *fileStream) Read(p []byte) (int, error) { return s.f.Read(p) }
func (s *fileStream) Seekable() bool             { return true }
func (s *fileStream) Origin() string             { return s.f.Name() }

func (s *fileStream) Rewind() error {
	_, err := s.f.Seek(0, io.SeekStart)
	return err
}

func (s *fileStream) Size() (int64, bool) {
	info, err := s.f.Stat()
	if err != nil {
		return 0, false
	}
	return info.Size(), true
}

// readerStream adapts a plain io.Reader: not seekable, unknown size,
// anonymous origin.
type readerStream struct {
	r io.Reader
}

func (s *readerStream) Read(p []byte) (int, error) { return s.r.Read(p) }
func (s *readerStream) Seekable() bool             { return false }
func (s *readerStream) Size() (int64, bool)        { return 0, false }
func (s *readerStream) Origin() string             { return "" }

func (s *readerStream) Rewind() error {
	return fmt.Errorf("bmime: stream is not seekable")
}
