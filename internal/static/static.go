// Package static serves the embedded stylesheet, scripts and images.
package static

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed assets
var assetsFS embed.FS

// Prefix is the URL path the assets are mounted under.
const Prefix = "/static"

// CacheControl applied to every asset response.
const CacheControl = "public, max-age=3600"

// Assets returns the embedded asset tree rooted at assets/.
func Assets() fs.FS {
	sub, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		// assets is a compile-time embed; Sub only fails on an invalid path.
		panic(err)
	}
	return sub
}

// NewRouter builds the chi sub-router that serves the assets. Mount it with
// the Prefix stripped.
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Compress(5, "text/css", "application/javascript", "text/javascript", "image/svg+xml"))
	r.Use(middleware.SetHeader("Cache-Control", CacheControl))
	r.Use(middleware.SetHeader("X-Content-Type-Options", "nosniff"))

	fileServer := http.FileServer(http.FS(Assets()))
	r.Get("/*", fileServer.ServeHTTP)
	r.Head("/*", fileServer.ServeHTTP)
	return r
}

// Handler is NewRouter behind the Prefix, ready to hand to the main router.
func Handler() http.Handler {
	return http.StripPrefix(Prefix, NewRouter())
}
