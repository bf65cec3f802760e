package catalog

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/bosta-shop/bosta/internal/platform/httpx"
)

// Handler exposes the composed catalog read models.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers catalog routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/products", h.listProducts)
	r.Get("/products/{id}", h.getProduct)
	r.Get("/categories", h.listCategories)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := queryFromRequest(r)
	page, err := h.service.ListPage(r.Context(), q)
	if err != nil {
		h.logger.Warn("list products", slog.String("key", q.CacheKey()), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, page)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	product, err := h.service.EffectiveProduct(r.Context(), id, nil)
	if err != nil {
		if !IsNotFound(err) {
			h.logger.Warn("get product", slog.Int64("id", id), slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		h.logger.Warn("list categories", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, categories)
}

// queryFromRequest derives the composer inputs from URL parameters:
// category (absent = all), sort (asc|desc, default asc), page (default 1),
// q (free-text search).
func queryFromRequest(r *http.Request) ListQuery {
	values := r.URL.Query()
	page, err := strconv.Atoi(values.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return ListQuery{
		Category: strings.TrimSpace(values.Get("category")),
		Sort:     ParseSortOrder(values.Get("sort")),
		Page:     page,
		Search:   values.Get("q"),
	}
}
