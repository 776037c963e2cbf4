package generator

import "strings"

// StripFences removes a single leading markdown code fence (with optional
// language tag) and a single trailing closing fence, then trims surrounding
// whitespace. Content between the fences is returned unchanged. The function
// is idempotent for any input that does not contain further fence markers.
//
// Models sometimes wrap their output in ```html fences despite instructions
// not to; this undoes exactly that.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			// Drop the whole opening fence line, tag included.
			s = s[i+1:]
		} else {
			s = strings.TrimPrefix(s, "```html")
			s = strings.TrimPrefix(s, "```")
		}
	}

	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-3]
	}

	return strings.TrimSpace(s)
}
