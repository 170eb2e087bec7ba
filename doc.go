// Package bmime assembles named, heterogeneous parts (strings, files, byte
// streams) into a single multipart/form-data body, suitable for use as an
// HTTP request body with any client.
//
// # Overview
//
// A [Builder] collects parts in order and serializes them on demand:
//
//	b, _ := bmime.NewBuilder()
//	_ = b.AddPart("comment", "hello there")
//	_ = b.AddPart("attachment", file)
//
//	body, err := b.Build()
//	if err != nil { ... }
//	defer body.Close()
//
//	req.Header.Set("Content-Type", b.ContentType())
//
// Output order equals append order, and parts are never deduplicated by
// name: appending two parts named "a" yields two "a" segments.
//
// # Header inference
//
// AddPart fills in missing part headers at append time. Content-Disposition
// defaults to `form-data; name="..."`, extended with a filename field when
// one is known (explicit via [WithFilename], or derived from a file-backed
// source's path). Content-Length is set when the source reports a definite
// size, including a legitimate zero. Content-Type is set when a filename is
// known and its extension maps to a type in the static [Mimetypes] table.
// Supplying a header explicitly, in any case variant, suppresses inference
// of that header entirely.
//
// # Buffering
//
// Build streams all parts into a two-tier sink: bytes stay in memory up to
// a threshold and spill transparently to a temporary file beyond it. The
// threshold comes from [Builder.SetBufferThreshold]; when unset it is
// estimated once as a quarter of the process memory budget (the
// BMIME_MEMORY_LIMIT variable in GOMEMLIMIT syntax, else the runtime's
// memory limit), falling back to 100 MiB. Closing the returned [Body]
// releases the temporary file.
//
// # Boundaries
//
// The delimiter token is generated lazily per builder from a random and a
// timestamp-derived component, and stays stable until [Builder.Reset].
// [Builder.SetBoundary] pins it for deterministic output. The builder does
// not scan part content for the boundary token; guaranteeing the token does
// not occur in content is the caller's responsibility.
//
// # Streams
//
// Part sources and the output are [ByteStream] values produced by a
// [StreamFactory]; [OSFactory] backs them with process memory and the OS
// temp directory. Seekable sources are rewound and re-read on every Build.
// A plain io.Reader source is drained in a single pass, so a second Build
// cannot reproduce its bytes; this is a documented limitation, not an
// error.
//
// A Builder is not safe for concurrent use; Build blocks for its entire
// duration and is not cancellable internally.
package bmime
