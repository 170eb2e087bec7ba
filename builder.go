package bmime

import (
	"errors"
	"log"
	"sync"
)

// Builder assembles named, heterogeneous parts into a single
// multipart/form-data body. Parts keep their append order in the output and
// are never deduplicated by name.
//
// A Builder is ordinary mutable state: it must not be used from multiple
// goroutines without external synchronization.
type Builder struct {
	factory StreamFactory
	logs    Logger
	types   *Mimetypes

	parts     []Part
	boundary  string
	threshold int64

	estimateOnce sync.Once
	estimated    int64
	estimateErr  error
}

// NewBuilder creates a builder resolving the stream factory through
// [DefaultLocator].
func NewBuilder() (*Builder, error) {
	return NewBuilderFrom(DefaultLocator)
}

// NewBuilderFrom resolves the stream factory through a single call to the
// given locator. It fails with [KindFactoryResolution] when the locator is
// nil, errors, or yields no factory.
func NewBuilderFrom(locate FactoryLocator) (*Builder, error) {
	if locate == nil {
		return nil, NewError(KindFactoryResolution, errors.New("no stream factory supplied and no locator to resolve one"))
	}

	factory, err := locate()
	if err != nil {
		return nil, NewError(KindFactoryResolution, err)
	}
	if factory == nil {
		return nil, NewError(KindFactoryResolution, errors.New("locator resolved no stream factory"))
	}

	return NewBuilderWith(factory, NewStdLogger(log.Default())), nil
}

// NewBuilderWith creates a builder with explicit collaborators.
func NewBuilderWith(factory StreamFactory, logs Logger) *Builder {
	return &Builder{
		factory: factory,
		logs:    logs,
		types:   NewMimetypes(nil),
	}
}

// PartOption configures a single AddPart call.
type PartOption func(*partConfig)

type partConfig struct {
	filename string
	headers  []PartHeader
}

// WithHeader supplies an explicit header for the part. An explicit header
// suppresses inference of the same semantic header in any case variant.
// Options apply in order, so repeated WithHeader calls keep their relative
// emission order.
func WithHeader(name, value string) PartOption {
	return func(c *partConfig) {
		c.headers = append(c.headers, PartHeader{Name: name, Value: value})
	}
}

// WithFilename overrides the filename used for the Content-Disposition
// filename field and the mimetype lookup, taking precedence over the
// content's origin.
func WithFilename(filename string) PartOption {
	return func(c *partConfig) {
		c.filename = filename
	}
}

// AddPart appends a part. The source is wrapped through the stream factory;
// unsupported source types fail with [KindUnsupportedSource] before any
// state is mutated. Missing Content-Disposition, Content-Length and
// Content-Type headers are inferred here, at append time.
func (b *Builder) AddPart(name string, source any, opts ...PartOption) error {
	var cfg partConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	content, err := b.factory.Wrap(source)
	if err != nil {
		return err
	}

	hdrs := NewPartHeaders()
	for _, h := range cfg.headers {
		hdrs.Set(h.Name, h.Value)
	}
	inferHeaders(hdrs, name, content, cfg.filename, b.types)

	b.parts = append(b.parts, Part{Name: name, Content: content, Headers: hdrs})

	return nil
}

// Parts returns the appended parts in order.
func (b *Builder) Parts() []Part {
	out := make([]Part, len(b.parts))
	copy(out, b.parts)
	return out
}

// Boundary returns the delimiter token, generating and storing one on first
// use. The value stays stable across Build calls until Reset.
func (b *Builder) Boundary() string {
	if b.boundary == "" {
		b.boundary = generateBoundary()
	}
	return b.boundary
}

// SetBoundary overrides the generated boundary, typically for deterministic
// tests. The value is validated against the RFC 2046 token grammar.
func (b *Builder) SetBoundary(boundary string) error {
	if err := validateBoundary(boundary); err != nil {
		return err
	}

	b.boundary = boundary
	return nil
}

// ContentType returns the value for the request's Content-Type header,
// including the boundary parameter.
func (b *Builder) ContentType() string {
	return "multipart/form-data; boundary=" + b.Boundary()
}

// SetBufferThreshold sets how many bytes Build keeps in memory before
// spilling to temporary storage. Values of zero or less select the
// auto-estimated default.
func (b *Builder) SetBufferThreshold(bytes int64) *Builder {
	b.threshold = bytes
	return b
}

// SetMimetypes replaces the extension table used for Content-Type
// inference.
func (b *Builder) SetMimetypes(types *Mimetypes) *Builder {
	b.types = types
	return b
}

// Reset clears the appended parts and discards the boundary, so the next
// Boundary call generates a fresh one. The configured threshold and
// mimetype table are kept.
func (b *Builder) Reset() *Builder {
	b.parts = nil
	b.boundary = ""
	return b
}
