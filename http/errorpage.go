package http

import (
	"io"
	"net/http"
)

// Served when nothing matched and the fallback document itself is missing.
// A browser-friendly page, since dev servers are mostly hit from browsers.
const defaultNotFoundHTML = `<html>
<head><title>404 Not Found</title></head>
<body>
<center><h1>404 Not Found</h1></center>
<center><p>No file matched and the fallback document is missing.</p></center>
<hr><center>devserve</center>
</body>
</html>`

func writeDefaultNotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = io.WriteString(w, defaultNotFoundHTML)
}
