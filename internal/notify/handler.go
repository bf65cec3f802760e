package notify

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bosta-shop/bosta/internal/platform/httpx"
)

// Handler exposes the current toast.
type Handler struct {
	bus *Bus
}

// NewHandler builds Handler instance.
func NewHandler(bus *Bus) *Handler {
	return &Handler{bus: bus}
}

// MountRoutes registers notification routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/current", h.current)
	r.Delete("/current", h.hide)
}

type toastView struct {
	Message string `json:"message,omitempty"`
	Visible bool   `json:"visible"`
}

func (h *Handler) current(w http.ResponseWriter, r *http.Request) {
	message, visible := h.bus.Current()
	httpx.JSON(w, http.StatusOK, toastView{Message: message, Visible: visible})
}

func (h *Handler) hide(w http.ResponseWriter, r *http.Request) {
	h.bus.Hide()
	w.WriteHeader(http.StatusNoContent)
}
