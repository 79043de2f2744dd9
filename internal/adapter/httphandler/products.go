package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/niksmo/jubilant/internal/core/domain"
	"github.com/niksmo/jubilant/internal/core/port"
)

// GET /api/products/all      (200 OK)
// GET /api/products/hdd      (200 OK)
// GET /api/products/{id}     (200 OK, 404 Not found)

type ProductsHandler struct {
	catalog port.CatalogReader
	userID  string
}

func RegisterProducts(
	mux *http.ServeMux, catalog port.CatalogReader, userID string,
) {
	h := ProductsHandler{catalog, userID}
	mux.HandleFunc("GET /api/products/all", h.GetAll)
	mux.HandleFunc("GET /api/products/hdd", h.GetStorage)
	mux.HandleFunc("GET /api/products/{id}", h.GetProduct)
}

func (h ProductsHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetAll"
	log := slog.With("op", op)

	lps, err := h.catalog.ListAll(r.Context(), h.userID)
	if err != nil {
		writeError(w, log, err, genericFailure)
		return
	}

	products := make([]Product, 0, len(lps))
	for _, lp := range lps {
		products = append(products, listedFromDomain(lp))
	}
	writeJSON(w, http.StatusOK, ProductsResponse{
		Success: true, Products: products,
	})
}

func (h ProductsHandler) GetStorage(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetStorage"
	log := slog.With("op", op)

	ps, err := h.catalog.ListProducts(r.Context(), domain.KindStorage)
	if err != nil {
		writeError(w, log, err, genericFailure)
		return
	}

	products := make([]Product, 0, len(ps))
	for _, p := range ps {
		products = append(products, productFromDomain(p))
	}
	count := len(products)
	writeJSON(w, http.StatusOK, ProductsResponse{
		Success: true, Count: &count, Products: products,
	})
}

func (h ProductsHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetProduct"
	log := slog.With("op", op)

	p, err := h.catalog.FindProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, log, err, genericFailure)
		return
	}

	writeJSON(w, http.StatusOK, ProductResponse{
		Success: true, Product: productFromDomain(p),
	})
}
