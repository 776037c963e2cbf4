package generator

import "strings"

// IsValidDocument reports whether text looks like a complete HTML document:
// after trimming and lower-casing it must start with a doctype declaration
// and contain a closing </html> tag somewhere.
//
// This is a deliberate syntactic prefix/substring check, not well-formedness
// validation. It accepts many malformed documents and rejects valid fragments
// that omit the doctype. Kept weak on purpose: the generated document is
// rendered in a sandbox, and the check only guards against the model
// returning prose instead of markup.
func IsValidDocument(text string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(text))
	return strings.HasPrefix(trimmed, "<!doctype") && strings.Contains(trimmed, "</html>")
}
