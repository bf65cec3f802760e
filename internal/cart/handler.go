package cart

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bosta-shop/bosta/internal/catalog"
	"github.com/bosta-shop/bosta/internal/platform/httpx"
)

// Handler exposes the cart store over JSON.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers cart routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.show)
	r.Post("/items", h.addItem)
	r.Put("/items/{productID}", h.updateQuantity)
	r.Delete("/items/{productID}", h.removeItem)
}

type cartView struct {
	Items     []Item  `json:"items"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"itemCount"`
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, cartView{
		Items:     h.service.Items(),
		Total:     h.service.Total(),
		ItemCount: h.service.ItemCount(),
	})
}

type addItemRequest struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.Product.ID == 0 {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	h.service.AddItem(r.Context(), req.Product, req.Quantity)
	h.show(w, r)
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	var req updateQuantityRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	h.service.UpdateQuantity(r.Context(), productID, req.Quantity)
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
