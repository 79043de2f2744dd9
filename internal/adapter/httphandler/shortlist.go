package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/niksmo/jubilant/internal/core/domain"
	"github.com/niksmo/jubilant/internal/core/port"
)

// POST /api/shortlist/filter JSON FilterRequest (200 OK, 400 Bad request)
// POST /api/shortlist/toggle JSON {"productId", "action"} (201 Created, 200 OK, 400 Bad request)

const (
	msgAdded          = "Product added to shortlist."
	msgAlreadyListed  = "Already shortlisted."
	msgRemoved        = "Product removed from shortlist."
	msgInvalidToggle  = "Invalid product or action."
	msgInvalidFilters = "Invalid filter values."
)

type ShortlistHandler struct {
	toggler  port.ShortlistToggler
	filterer port.ShortlistFilterer
	userID   string
}

func RegisterShortlist(
	mux *http.ServeMux,
	toggler port.ShortlistToggler,
	filterer port.ShortlistFilterer,
	userID string,
) {
	h := ShortlistHandler{toggler, filterer, userID}
	mux.Handle("POST /api/shortlist/filter", AllowJSON(http.HandlerFunc(h.PostFilter)))
	mux.Handle("POST /api/shortlist/toggle", AllowJSON(http.HandlerFunc(h.PostToggle)))
}

func (h ShortlistHandler) PostFilter(w http.ResponseWriter, r *http.Request) {
	const op = "ShortlistHandler.PostFilter"
	log := slog.With("op", op)

	var req FilterRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("failed to parse JSON", "err", err)
		writeMessage(w, http.StatusBadRequest, false, msgInvalidFilters)
		return
	}

	lps, err := h.filterer.FilterShortlist(r.Context(), h.userID, req.toDomain())
	if err != nil {
		writeError(w, log, err, msgInvalidFilters)
		return
	}

	products := make([]Product, 0, len(lps))
	for _, lp := range lps {
		products = append(products, listedFromDomain(lp))
	}
	writeJSON(w, http.StatusOK, ProductsResponse{
		Success: true, Products: products,
	})
	log.Debug("filtered", "nProducts", len(products))
}

func (h ShortlistHandler) PostToggle(w http.ResponseWriter, r *http.Request) {
	const op = "ShortlistHandler.PostToggle"
	log := slog.With("op", op)

	var req ToggleRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("failed to parse JSON", "err", err)
		writeMessage(w, http.StatusBadRequest, false, msgInvalidToggle)
		return
	}

	toggle, err := domain.NewToggleRequest(req.ProductID, req.Action)
	if err != nil {
		writeError(w, log, err, msgInvalidToggle)
		return
	}

	outcome, err := h.toggler.Toggle(r.Context(), h.userID, toggle)
	if err != nil {
		writeError(w, log, err, msgInvalidToggle)
		return
	}

	switch outcome {
	case domain.ToggleCreated:
		writeMessage(w, http.StatusCreated, true, msgAdded)
	case domain.ToggleAlreadyExists:
		writeMessage(w, http.StatusOK, true, msgAlreadyListed)
	default:
		writeMessage(w, http.StatusOK, true, msgRemoved)
	}
	log.Info("toggled", "productID", toggle.ProductID, "outcome", outcome)
}
