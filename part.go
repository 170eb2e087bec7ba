package bmime

// Part is one named or unnamed unit of content destined for one segment of
// the multipart body. Parts are immutable once appended; the part list is
// append-only and output order equals append order. Parts are never
// deduplicated by name: appending two parts with the same name yields two
// independent segments in the output.
type Part struct {
	Name    string
	Content ByteStream
	Headers *PartHeaders
}
