package devserve

import "fmt"

// DefaultFallback is the conventional entry document name served for
// directories and for unresolved SPA routes.
const DefaultFallback = "index.html"

// ResolveMode identifies which of the three response strategies a request
// resolved to. Exactly one mode is chosen per request; nothing is cached
// across requests.
type ResolveMode string

const (
	// ModeDirectFile serves an existing regular file byte-for-byte.
	ModeDirectFile ResolveMode = "direct_file"
	// ModeDirectoryIndex serves the fallback document found inside the
	// requested directory, without an external redirect.
	ModeDirectoryIndex ResolveMode = "directory_index"
	// ModeFallback serves the site root's fallback document for paths that
	// resolve to nothing, with a success status.
	ModeFallback ResolveMode = "fallback"
)

func (m ResolveMode) IsValid() bool {
	switch m {
	case ModeDirectFile, ModeDirectoryIndex, ModeFallback:
		return true
	default:
		return false
	}
}

func ParseResolveMode(s string) (ResolveMode, error) {
	mode := ResolveMode(s)
	if !mode.IsValid() {
		return "", fmt.Errorf("invalid resolve mode: %s (valid modes: direct_file, directory_index, fallback)", s)
	}
	return mode, nil
}

// Resolution is the outcome of resolving one request path.
type Resolution struct {
	// Mode is the response strategy chosen for the request.
	Mode ResolveMode
	// Path is the content-root-relative file that will actually be served.
	Path string
}
