package bmime

import (
	"fmt"
	"strconv"
	"strings"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// basename returns the trailing path segment. It scans for separator bytes
// directly instead of going through the platform path packages, so the
// result never depends on the process locale and non-ASCII filenames pass
// through byte-identical. Both separator styles count, since origins may
// carry paths recorded on another platform.
func basename(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

// inferHeaders fills in the part's default headers. A header is only ever
// inferred when no case variant of it was supplied explicitly.
//
// The filename used for the Content-Disposition filename field and the
// mimetype lookup is the explicit one when given, else the content's origin
// when that is not the anonymous sentinel.
func inferHeaders(hdrs *PartHeaders, name string, content ByteStream, filename string, types *Mimetypes) {
	if filename == "" {
		filename = content.Origin()
	}

	if !hdrs.Has("Content-Disposition") {
		disposition := fmt.Sprintf(`form-data; name="%s"`, escapeQuotes(name))
		if filename != "" {
			disposition += fmt.Sprintf(`; filename="%s"`, escapeQuotes(basename(filename)))
		}
		hdrs.Set("Content-Disposition", disposition)
	}

	if !hdrs.Has("Content-Length") {
		// A known size of exactly zero is a definite length and is
		// emitted; only an unknown size omits the header.
		if size, ok := content.Size(); ok {
			hdrs.Set("Content-Length", strconv.FormatInt(size, 10))
		}
	}

	if !hdrs.Has("Content-Type") && filename != "" {
		if typ, ok := types.Lookup(basename(filename)); ok {
			hdrs.Set("Content-Type", typ)
		}
	}
}
