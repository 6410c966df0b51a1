package devserve

import (
	"mime"
	"path"
	"strings"
	"unicode/utf8"
)

// NormalizeRequestPath maps a URL path onto a content-root-relative file
// path. The path is cleaned against a virtual root, so "." and ".."
// segments collapse without ever climbing above the content root. The query
// string and fragment are not the normalizer's concern; URL parsing strips
// them before the path reaches here.
//
// The root path ("/", "", or any traversal that collapses to the root)
// normalizes to the empty string.
func NormalizeRequestPath(p string) string {
	p = path.Clean("/" + p)
	return strings.TrimPrefix(p, "/")
}

// IsValidRequestPath reports whether a URL path is safe to resolve at all.
// It rejects paths that:
//   - contain null bytes, control characters (< 0x20), or DEL (0x7f)
//   - contain backslashes
//   - are not valid UTF-8
//
// Traversal sequences are not rejected here; NormalizeRequestPath
// canonicalizes them away instead, and the sandboxed store is the backstop.
func IsValidRequestPath(p string) bool {
	if strings.Contains(p, `\`) {
		return false
	}

	if !utf8.ValidString(p) {
		return false
	}

	for _, r := range p {
		if r == 0 || r < 0x20 || r == 0x7f {
			return false
		}
	}

	return true
}

// ContentType determines the MIME type to serve a file with, derived from
// its extension. Unknown extensions fall back to application/octet-stream.
func ContentType(p string) string {
	ext := path.Ext(p)
	if ext == "" {
		return "application/octet-stream"
	}

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		return "application/octet-stream"
	}

	return contentType
}
