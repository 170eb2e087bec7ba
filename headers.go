package bmime

import "strings"

// PartHeader is a single name/value pair in a part's header block.
type PartHeader struct {
	Name  string
	Value string
}

// PartHeaders is an ordered header mapping with case-insensitive lookups.
// Emission order is insertion order. When the same name is set twice in any
// case variant, the value is replaced in place and the case of the first
// occurrence wins.
type PartHeaders struct {
	entries []PartHeader
	index   map[string]int
}

// NewPartHeaders inits an empty header mapping.
func NewPartHeaders() *PartHeaders {
	return &PartHeaders{index: make(map[string]int)}
}

// Set stores the header, replacing an existing value under any case variant
// of the same name.
func (h *PartHeaders) Set(name, value string) {
	folded := strings.ToLower(name)
	if i, ok := h.index[folded]; ok {
		h.entries[i].Value = value
		return
	}

	h.index[folded] = len(h.entries)
	h.entries = append(h.entries, PartHeader{Name: name, Value: value})
}

// Has reports whether any case variant of name is present.
func (h *PartHeaders) Has(name string) bool {
	_, ok := h.index[strings.ToLower(name)]
	return ok
}

// Get returns the value stored under any case variant of name.
func (h *PartHeaders) Get(name string) (string, bool) {
	i, ok := h.index[strings.ToLower(name)]
	if !ok {
		return "", false
	}
	return h.entries[i].Value, true
}

// Len returns the number of headers.
func (h *PartHeaders) Len() int {
	return len(h.entries)
}

// Entries returns the headers in insertion order.
func (h *PartHeaders) Entries() []PartHeader {
	out := make([]PartHeader, len(h.entries))
	copy(out, h.entries)
	return out
}
