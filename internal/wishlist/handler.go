package wishlist

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bosta-shop/bosta/internal/catalog"
	"github.com/bosta-shop/bosta/internal/platform/httpx"
)

// Handler exposes the wishlist store over JSON.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers wishlist routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.show)
	r.Post("/items", h.addItem)
	r.Post("/toggle", h.toggleItem)
	r.Delete("/items/{productID}", h.removeItem)
}

type wishlistView struct {
	Items []Item `json:"items"`
	Count int    `json:"count"`
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, wishlistView{
		Items: h.service.Items(),
		Count: h.service.Count(),
	})
}

type productRequest struct {
	Product catalog.Product `json:"product"`
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.Product.ID == 0 {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	h.service.AddItem(r.Context(), req.Product)
	h.show(w, r)
}

func (h *Handler) toggleItem(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.Product.ID == 0 {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	h.service.ToggleItem(r.Context(), req.Product)
	h.show(w, r)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	h.service.RemoveItem(r.Context(), productID)
	h.show(w, r)
}
