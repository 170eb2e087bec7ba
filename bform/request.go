package bform

import (
	"github.com/advdv/bmime"
	"github.com/carlmjohnson/requests"
	"github.com/cockroachdb/errors"
)

// NewRequest builds the multipart body and attaches it to the request
// builder, together with the matching Content-Type header. The body's
// temporary storage, if any, is released when the request's transport
// finishes reading it and the process exits; callers that want eager
// cleanup can Build and Close themselves.
func NewRequest(rb *requests.Builder, builder *bmime.Builder) (*requests.Builder, error) {
	body, err := builder.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build multipart body")
	}

	return rb.
		BodyReader(body).
		ContentType(builder.ContentType()), nil
}
