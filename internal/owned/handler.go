package owned

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/bosta-shop/bosta/internal/catalog"
	"github.com/bosta-shop/bosta/internal/platform/httpx"
)

// Handler exposes the my-product lifecycle over JSON.
type Handler struct {
	logger   *slog.Logger
	facade   *Facade
	store    *Store
	validate *validator.Validate
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, facade *Facade, store *Store) *Handler {
	return &Handler{
		logger:   logger,
		facade:   facade,
		store:    store,
		validate: validator.New(),
	}
}

// MountRoutes registers my-product routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.remove)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.store.Products())
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req catalog.CreateProductRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	// Malformed payloads never reach the upstream.
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error(), false)
		return
	}
	product, err := h.facade.Create(r.Context(), req)
	if err != nil {
		h.logger.Warn("create product", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, product)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	product, ok := h.store.Get(id)
	if !ok {
		httpx.RespondError(w, httpx.ErrNotFound)
		return
	}
	var req catalog.UpdateProductRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error(), false)
		return
	}
	merged, err := h.facade.Update(r.Context(), product, req)
	if err != nil {
		h.logger.Warn("update product", slog.Int64("id", id), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, merged)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	product, ok := h.store.Get(id)
	if !ok {
		httpx.RespondError(w, httpx.ErrNotFound)
		return
	}
	if err := h.facade.Delete(r.Context(), product); err != nil {
		h.logger.Warn("delete product", slog.Int64("id", id), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
