package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/bosta-shop/bosta/internal/auth"
	"github.com/bosta-shop/bosta/internal/cart"
	"github.com/bosta-shop/bosta/internal/catalog"
	"github.com/bosta-shop/bosta/internal/notify"
	"github.com/bosta-shop/bosta/internal/owned"
	"github.com/bosta-shop/bosta/internal/platform/httpx"
	"github.com/bosta-shop/bosta/internal/wishlist"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger          *slog.Logger
	Config          *Config
	Bus             *notify.Bus
	AuthService     *auth.Service
	AuthHandler     *auth.Handler
	CatalogHandler  *catalog.Handler
	CartHandler     *cart.Handler
	WishlistHandler *wishlist.Handler
	OwnedHandler    *owned.Handler
	NotifyHandler   *notify.Handler
}

// NewRouter constructs the chi.Router with Bosta defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
		Bus:    params.Bus,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		params.CatalogHandler.MountRoutes(r)
		r.Route("/auth", params.AuthHandler.MountRoutes)
		r.Route("/cart", params.CartHandler.MountRoutes)
		r.Route("/wishlist", params.WishlistHandler.MountRoutes)
		r.Route("/notifications", params.NotifyHandler.MountRoutes)
		r.Route("/my-products", func(r chi.Router) {
			r.Use(RequireAuth(params.AuthService))
			params.OwnedHandler.MountRoutes(r)
		})
	})

	return r
}

// TokenHolder exposes the current session token, empty when logged out.
type TokenHolder interface {
	Token() string
}

// RequireAuth rejects requests while no session token is held. The token is
// opaque and never verified; holding one is the sole authorization signal.
func RequireAuth(tokens TokenHolder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tokens.Token() == "" {
				httpx.RespondError(w, httpx.ErrUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
