package server

import (
	"net/http"

	"risorte/internal/cart"
	"risorte/internal/catalog"
	"risorte/internal/checkout"
	"risorte/internal/profile"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// NewRouter mounts the storefront API consumed by the browser SPA.
func NewRouter(
	catalogCtrl *catalog.Controller,
	cartCtrl *cart.Controller,
	profileCtrl *profile.Controller,
	checkoutCtrl *checkout.Controller,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/catalog", func(r chi.Router) {
		r.Get("/products", catalogCtrl.HandleListProducts)
		r.Get("/categories", catalogCtrl.HandleListCategories)
		r.Get("/config", catalogCtrl.HandleGetConfig)
		r.Get("/orders", catalogCtrl.HandleListOrders)
	})

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", cartCtrl.HandleGetSummary)
		r.Post("/items", cartCtrl.HandleAddItem)
		r.Post("/items/{productId}/increase", cartCtrl.HandleIncreaseItem)
		r.Post("/items/{productId}/decrease", cartCtrl.HandleDecreaseItem)
		r.Put("/fulfillment", cartCtrl.HandleSetFulfillment)
	})

	r.Route("/profile", func(r chi.Router) {
		r.Get("/", profileCtrl.HandleGetProfile)
		r.Put("/", profileCtrl.HandleSaveProfile)
		r.Delete("/", profileCtrl.HandleDeleteProfile)
	})

	r.Route("/checkout", func(r chi.Router) {
		r.Post("/", checkoutCtrl.HandleBegin)
		r.Post("/confirm", checkoutCtrl.HandleConfirm)
		r.Post("/cancel", checkoutCtrl.HandleCancel)
		r.Get("/state", checkoutCtrl.HandleGetState)
		r.Get("/qrcode", checkoutCtrl.HandleQRCode)
	})

	logger.Info("router configured")
	return r
}
