// Package devserve implements the request-resolution policy behind a local
// development HTTP server for single page applications.
//
// The policy is deliberately small: serve the real file when the request path
// names one, serve a directory's index document when the path names a
// directory that has one, and otherwise fall back to the site's entry
// document so client-side routing keeps working.
//
// # Resolution Modes
//
// Every request resolves to exactly one of three modes:
//
//   - ModeDirectFile: the path names a regular file, served byte-for-byte
//   - ModeDirectoryIndex: the path names a directory containing the fallback
//     document, which is served without an external redirect
//   - ModeFallback: nothing matched, the root fallback document is served
//     with a success status so client-side routes render
//
// # Key Components
//
//   - Resolver: applies the three-step policy against a SiteFS
//   - SiteFS: interface for read-only site content access (filesystem package)
//   - NormalizeRequestPath / IsValidRequestPath: request path hygiene
//
// # Example Usage
//
//	root, err := os.OpenRoot("./dist")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	store := filesystem.NewSiteStore(root)
//	resolver, err := devserve.NewResolver(store, devserve.ResolverConfig{})
//
//	res, err := resolver.Resolve(ctx, "/dashboard/settings")
//	// res.Mode == devserve.ModeFallback, res.Path == "index.html"
//
// See the http package for the HTTP adapter and the filesystem package for
// the sandboxed content store.
package devserve
