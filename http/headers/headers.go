package headers

import "sort"

// Well-known header names, spelled exactly as they are looked up. The lookup is
// case-sensitive, so "content-length" and "Content-Length" are different entries.
const (
	ContentLength = "Content-Length"
	ContentType   = "Content-Type"
)

// Headers maps a header name to its value. Names are unique: storing an already presented
// name overrides the previous value. Neither names nor values are normalized or validated.
type Headers map[string]string

func New() Headers {
	return make(Headers)
}

// NewPrealloc returns an instance with pre-allocated space for n entries.
func NewPrealloc(n int) Headers {
	return make(Headers, n)
}

// Set stores the value under the key, overriding any previous value.
func (h Headers) Set(key, value string) Headers {
	h[key] = value
	return h
}

// Value returns a value corresponding to the key. Otherwise, empty string is returned
func (h Headers) Value(key string) string {
	return h.ValueOr(key, "")
}

// ValueOr returns either the value corresponding to the key or custom value, defined
// via the second parameter.
func (h Headers) ValueOr(key, or string) string {
	value, found := h[key]
	if !found {
		return or
	}

	return value
}

// Get returns a value and a bool, indicating whether the value was found.
func (h Headers) Get(key string) (value string, found bool) {
	value, found = h[key]
	return value, found
}

func (h Headers) Has(key string) bool {
	_, found := h[key]
	return found
}

func (h Headers) Len() int {
	return len(h)
}

func (h Headers) Empty() bool {
	return len(h) == 0
}

// Keys returns all the presented names in lexicographical order, so the result is
// reproducible across calls.
func (h Headers) Keys() []string {
	keys := make([]string, 0, len(h))
	for key := range h {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// Clone creates a copy, which may be used later or stored somewhere safely.
func (h Headers) Clone() Headers {
	clone := make(Headers, len(h))
	for key, value := range h {
		clone[key] = value
	}

	return clone
}

// Clear removes all the entries. The allocated space stays.
func (h Headers) Clear() Headers {
	for key := range h {
		delete(h, key)
	}

	return h
}
