package bmime

import (
	"strings"

	"github.com/samber/lo"
)

// Mimetypes maps filename extensions to MIME type strings using a static
// table. It deliberately does not consult the operating system's mime
// database, so lookups behave identically on every host.
type Mimetypes struct {
	table map[string]string
}

// NewMimetypes inits the mapping. Overrides are consulted before the
// built-in table; keys are extensions without the leading dot and are
// matched case-insensitively.
func NewMimetypes(overrides map[string]string) *Mimetypes {
	folded := lo.MapKeys(overrides, func(_ string, ext string) string {
		return strings.ToLower(ext)
	})

	return &Mimetypes{table: lo.Assign(defaultMimetypes, folded)}
}

// Lookup maps the filename's extension (the substring after the last dot)
// to a MIME type. It returns false, not an error, when the extension is
// absent or unknown.
func (m *Mimetypes) Lookup(filename string) (string, bool) {
	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 || idx == len(filename)-1 {
		return "", false
	}

	typ, ok := m.table[strings.ToLower(filename[idx+1:])]
	return typ, ok
}

// defaultMimetypes covers the common extensions for images, documents,
// archives, text, audio, video and fonts.
var defaultMimetypes = map[string]string{
	// images
	"bmp":  "image/bmp",
	"gif":  "image/gif",
	"heic": "image/heic",
	"ico":  "image/vnd.microsoft.icon",
	"jpeg": "image/jpeg",
	"jpg":  "image/jpeg",
	"png":  "image/png",
	"psd":  "image/vnd.adobe.photoshop",
	"svg":  "image/svg+xml",
	"tif":  "image/tiff",
	"tiff": "image/tiff",
	"webp": "image/webp",

	// documents
	"doc":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"epub": "application/epub+zip",
	"odp":  "application/vnd.oasis.opendocument.presentation",
	"ods":  "application/vnd.oasis.opendocument.spreadsheet",
	"odt":  "application/vnd.oasis.opendocument.text",
	"pdf":  "application/pdf",
	"ppt":  "application/vnd.ms-powerpoint",
	"pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"rtf":  "application/rtf",
	"xls":  "application/vnd.ms-excel",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",

	// archives
	"7z":  "application/x-7z-compressed",
	"bz2": "application/x-bzip2",
	"gz":  "application/gzip",
	"rar": "application/vnd.rar",
	"tar": "application/x-tar",
	"zip": "application/zip",

	// text and data
	"css":  "text/css",
	"csv":  "text/csv",
	"htm":  "text/html",
	"html": "text/html",
	"ics":  "text/calendar",
	"js":   "text/javascript",
	"json": "application/json",
	"md":   "text/markdown",
	"txt":  "text/plain",
	"xml":  "application/xml",
	"yaml": "application/yaml",
	"yml":  "application/yaml",

	// audio
	"aac":  "audio/aac",
	"flac": "audio/flac",
	"m4a":  "audio/mp4",
	"mid":  "audio/midi",
	"mp3":  "audio/mpeg",
	"oga":  "audio/ogg",
	"opus": "audio/opus",
	"wav":  "audio/wav",
	"weba": "audio/webm",

	// video
	"avi":  "video/x-msvideo",
	"mkv":  "video/x-matroska",
	"mov":  "video/quicktime",
	"mp4":  "video/mp4",
	"mpeg": "video/mpeg",
	"ogv":  "video/ogg",
	"webm": "video/webm",
	"wmv":  "video/x-ms-wmv",

	// fonts
	"otf":   "font/otf",
	"ttf":   "font/ttf",
	"woff":  "font/woff",
	"woff2": "font/woff2",

	// misc binaries
	"apk":   "application/vnd.android.package-archive",
	"bin":   "application/octet-stream",
	"jar":   "application/java-archive",
	"wasm":  "application/wasm",
	"xhtml": "application/xhtml+xml",
}
