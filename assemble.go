package bmime

import (
	"fmt"
	"io"
	"os"
)

// copyChunkSize bounds peak memory while streaming a seekable part's
// content into the sink.
const copyChunkSize = 8 * 1024

// Build serializes the appended parts, in order, into a single body stream.
// It can be called repeatedly: each call re-serializes the current state
// and, given seekable part sources, produces byte-identical output under
// the same boundary. The caller owns the returned body and should close it
// to release temporary storage.
//
// Build blocks on part and sink I/O for its entire duration and is not
// cancellable internally; callers wanting a timeout wrap the call in a
// goroutine they supervise.
func (b *Builder) Build() (Body, error) {
	threshold, err := b.bufferThreshold()
	if err != nil {
		return nil, err
	}

	sink, err := b.factory.CreateSink(threshold)
	if err != nil {
		return nil, err
	}

	if err := b.assemble(sink); err != nil {
		if cerr := sink.Close(); cerr != nil {
			b.logs.LogTempCleanupError(cerr)
		}
		return nil, err
	}

	if err := sink.Rewind(); err != nil {
		if cerr := sink.Close(); cerr != nil {
			b.logs.LogTempCleanupError(cerr)
		}
		return nil, fmt.Errorf("rewind assembled body: %w", err)
	}

	return sink, nil
}

// assemble emits every part as
//
//	--<boundary>CRLF <headers> CRLF <content> CRLF
//
// followed by the closing --<boundary>--CRLF. Line endings are CRLF
// throughout, as HTTP interop requires.
func (b *Builder) assemble(sink Sink) error {
	boundary := b.Boundary()

	for i := range b.parts {
		part := &b.parts[i]

		if _, err := io.WriteString(sink, "--"+boundary+"\r\n"); err != nil {
			return err
		}

		for _, h := range part.Headers.entries {
			if _, err := io.WriteString(sink, h.Name+": "+h.Value+"\r\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(sink, "\r\n"); err != nil {
			return err
		}

		if err := copyContent(sink, part.Content); err != nil {
			return fmt.Errorf("write content of part %d (%q): %w", i, part.Name, err)
		}

		if _, err := io.WriteString(sink, "\r\n"); err != nil {
			return err
		}
	}

	_, err := io.WriteString(sink, "--"+boundary+"--\r\n")
	return err
}

// copyContent streams a part's bytes into the sink. Seekable content is
// rewound first so a repeated Build re-reads it from the start, then copied
// in fixed-size chunks. Non-seekable content is drained in a single call
// and cannot be re-read by a later Build.
func copyContent(sink Sink, content ByteStream) error {
	if content.Seekable() {
		if err := content.Rewind(); err != nil {
			return err
		}

		buf := make([]byte, copyChunkSize)
		_, err := io.CopyBuffer(sink, struct{ io.Reader }{content}, buf)
		return err
	}

	data, err := io.ReadAll(content)
	if err != nil {
		return err
	}

	_, err = sink.Write(data)
	return err
}

// bufferThreshold resolves the effective spill threshold: the explicitly
// configured value when positive, else an estimate computed once per
// builder and cached, including its error.
func (b *Builder) bufferThreshold() (int64, error) {
	if b.threshold > 0 {
		return b.threshold, nil
	}

	b.estimateOnce.Do(func() {
		b.estimated, b.estimateErr = estimateThreshold(os.Getenv(memLimitEnv))
	})

	return b.estimated, b.estimateErr
}
