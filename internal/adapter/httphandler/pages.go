package httphandler

import (
	"errors"
	"fmt"
	"html"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// searchKeywords maps a query keyword to a product list page.
// Lookup follows slice order.
var searchKeywords = []struct{ keyword, slug string }{
	{"intel", "intel"},
	{"intel i9", "intel"},
	{"amd", "amd"},
	{"ryzen", "amd"},
	{"xeon", "intel"},
	{"threadripper", "amd"},
	{"epyc", "amd"},
}

// PagesHandler serves the storefront from a frontend directory laid
// out as static/ and templates/.
type PagesHandler struct {
	staticDir    string
	templatesDir string
}

func RegisterPages(mux *http.ServeMux, frontendDir string) {
	h := PagesHandler{
		staticDir:    filepath.Join(frontendDir, "static"),
		templatesDir: filepath.Join(frontendDir, "templates"),
	}
	mux.HandleFunc("GET /{$}", h.GetIndex)
	mux.HandleFunc("GET /images/{path...}", h.GetImage)
	mux.HandleFunc("GET /productslist/{page}", h.GetProductPage)
	mux.HandleFunc("GET /search", h.GetSearch)
	mux.HandleFunc("GET /", h.GetFrontend)
}

func (h PagesHandler) GetIndex(w http.ResponseWriter, r *http.Request) {
	h.serveFile(w, r, h.templatesDir, "index.html")
}

func (h PagesHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	h.serveFile(w, r, h.staticDir, path.Join("images", r.PathValue("path")))
}

func (h PagesHandler) GetProductPage(w http.ResponseWriter, r *http.Request) {
	const op = "PagesHandler.GetProductPage"

	page := r.PathValue("page")
	slug, ok := strings.CutSuffix(page, ".html")
	if !ok {
		h.GetFrontend(w, r)
		return
	}
	slug = strings.ToLower(strings.TrimSpace(slug))

	name := path.Join("productslist", slug+".html")
	if !h.exists(h.templatesDir, name) {
		slog.Info("product page not found", "op", op, "slug", slug)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprintf(w, "<h2>Product page for '%s' not found.</h2>", html.EscapeString(slug))
		return
	}
	h.serveFile(w, r, h.templatesDir, name)
}

func (h PagesHandler) GetSearch(w http.ResponseWriter, r *http.Request) {
	q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	for _, k := range searchKeywords {
		if strings.Contains(q, k.keyword) {
			h.serveFile(w, r, h.templatesDir, path.Join("productslist", k.slug+".html"))
			return
		}
	}
	h.serveFile(w, r, h.templatesDir, "index.html")
}

// GetFrontend serves a static asset, then a template, then the index page.
func (h PagesHandler) GetFrontend(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/")
	for _, dir := range []string{h.staticDir, h.templatesDir} {
		if name != "" && h.exists(dir, name) {
			h.serveFile(w, r, dir, name)
			return
		}
	}
	h.serveFile(w, r, h.templatesDir, "index.html")
}

func (h PagesHandler) serveFile(
	w http.ResponseWriter, r *http.Request, dir, name string,
) {
	const op = "PagesHandler.serveFile"

	fullPath := h.resolve(dir, name)
	if !h.exists(dir, name) {
		slog.Warn("page is missing", "op", op, "path", fullPath)
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, fullPath)
}

func (h PagesHandler) exists(dir, name string) bool {
	fi, err := os.Stat(h.resolve(dir, name))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("failed to stat file", "err", err)
		}
		return false
	}
	return !fi.IsDir()
}

// resolve joins name to dir without letting it escape dir.
func (h PagesHandler) resolve(dir, name string) string {
	return filepath.Join(dir, filepath.FromSlash(path.Clean("/"+name)))
}
