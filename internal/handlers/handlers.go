package handlers

import (
	"JewelryStore/internal/config"
	"JewelryStore/internal/middleware"
	"JewelryStore/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	accountService *service.AccountService,
	branchService *service.BranchService,
	jewelryService *service.JewelryService,
	transferService *service.TransferService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	b := base{Logger: logger, Config: config}
	views := &viewComposer{base: b, accounts: accountService, branches: branchService, jewelry: jewelryService}

	// Handlers
	accountHandler := NewAccountHandler(accountService, b)
	branchHandler := NewBranchHandler(branchService, views, b)
	jewelryHandler := NewJewelryHandler(jewelryService, views, b)
	transferHandler := NewTransferHandler(transferService, views, b)
	systemHandler := NewSystemHandler(b)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Message: "endpoint not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Message: "method not allowed"})
	})

	r.Get("/healthz", systemHandler.Health)
	if !config.IsProduction() {
		r.Get("/api/system/info", systemHandler.Info)
	}

	// Auth routes
	r.Post("/api/auth/login", accountHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Post("/api/auth/register", accountHandler.Register)
		r.Get("/api/auth/me", accountHandler.Me)

		r.Route("/api/branches", func(r chi.Router) {
			r.Get("/", branchHandler.List)
			r.Post("/", branchHandler.Create)
			r.Get("/{id}", branchHandler.Get)
			r.Put("/{id}", branchHandler.Update)
			r.Delete("/{id}", branchHandler.Delete)
		})

		r.Route("/api/jewelry", func(r chi.Router) {
			r.Get("/", jewelryHandler.List)
			r.Post("/", jewelryHandler.Create)
			r.Get("/{id}", jewelryHandler.Get)
			r.Put("/{id}", jewelryHandler.Update)
			r.Delete("/{id}", jewelryHandler.Delete)
		})

		r.Route("/api/transfer-requests", func(r chi.Router) {
			r.Get("/", transferHandler.List)
			r.Post("/", transferHandler.Create)
			r.Get("/{id}", transferHandler.Get)
			r.Put("/{id}", transferHandler.Respond)
		})
	})

	return &Handler{Router: r}
}
