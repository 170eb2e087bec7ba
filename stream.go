package bmime

import "io"

// ByteStream is a readable, optionally seekable source of bytes. It is the
// capability the builder consumes for part content; concrete implementations
// come from a [StreamFactory].
type ByteStream interface {
	io.Reader

	// Seekable reports whether Rewind can restore the read position to the
	// start of the stream. Non-seekable streams are drained in a single
	// pass and cannot be read again by a later Build call.
	Seekable() bool

	// Rewind resets the read position to the start. It fails when the
	// stream is not seekable.
	Rewind() error

	// Size returns the total byte length when it is known up front. A
	// known length of zero is a definite length, distinct from unknown.
	Size() (int64, bool)

	// Origin identifies where the bytes come from, typically a file path.
	// The empty string is the anonymous sentinel: no filename is implied
	// and none is derived for the part.
	Origin() string
}

// Body is the assembled multipart stream returned by [Builder.Build]. The
// caller owns its lifetime; closing it releases any temporary file the
// output was spilled to.
type Body interface {
	ByteStream
	io.Closer
}

// Sink is the growable output a build assembles into. It keeps bytes in
// memory up to a threshold and spills to durable temporary storage beyond
// it, behind a single stream-compatible surface.
type Sink interface {
	Body
	io.Writer
}
