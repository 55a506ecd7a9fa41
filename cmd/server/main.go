package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Layan-Alghymah/Nexo/internal/blob"
	"github.com/Layan-Alghymah/Nexo/internal/config"
	"github.com/Layan-Alghymah/Nexo/internal/handlers"
	"github.com/Layan-Alghymah/Nexo/internal/metrics"
	"github.com/Layan-Alghymah/Nexo/internal/service"
	"github.com/Layan-Alghymah/Nexo/internal/store"
)

func main() {
	// Configure slog as early as possible in main
	handlerOpts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	// Using TextHandler for console readability; for production JSONHandler might be preferred.
	logger := slog.New(slog.NewTextHandler(os.Stdout, handlerOpts))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Init DB
	db, err := store.NewStore(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize store", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.InitSchema(); err != nil {
		slog.Error("Failed to init schema", "error", err)
		os.Exit(1)
	}
	if err := db.Migrate("migrations"); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// 3. Init Blob Store
	blobs, err := blob.NewDisk(cfg.UploadDir)
	if err != nil {
		slog.Error("Failed to initialize blob store", "error", err)
		os.Exit(1)
	}

	// 4. Wire Services and Handlers
	catalogHandler := &handlers.CatalogHandler{
		Catalog: &service.Catalog{Store: db},
	}
	orderHandler := &handlers.OrderHandler{
		Ledger: &service.Ledger{Store: db},
		Intake: &service.ProofIntake{Store: db, Blobs: blobs},
	}
	adminHandler := &handlers.AdminHandler{
		Gate:   &service.Gate{AdminKey: cfg.AdminAPIKey},
		Review: &service.Review{Store: db},
	}

	serverMetrics := metrics.NewServerMetrics("api")

	// One limiter per public write endpoint: placing an order must not
	// block the proof upload that immediately follows from the same IP.
	orderLimiter := handlers.NewRateLimiter(30 * time.Second)
	proofLimiter := handlers.NewRateLimiter(30 * time.Second)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	})
	mux.Handle("GET /metrics", metrics.Handler())

	// Public Routes
	mux.HandleFunc("GET /api/products", serverMetrics.Instrument("list_products", catalogHandler.List))
	mux.HandleFunc("GET /api/products/{id}", serverMetrics.Instrument("get_product", catalogHandler.Get))
	mux.HandleFunc("POST /api/orders", serverMetrics.Instrument("create_order", orderLimiter.Middleware(orderHandler.Create)))
	mux.HandleFunc("GET /api/orders/{id}", serverMetrics.Instrument("get_order", orderHandler.Get))
	mux.HandleFunc("POST /api/orders/{id}/payment-proof", serverMetrics.Instrument("submit_proof", proofLimiter.Middleware(orderHandler.SubmitProof)))

	// Admin Routes (shared-secret gated)
	mux.HandleFunc("POST /admin/orders/{id}/review", serverMetrics.Instrument("review_order", adminHandler.RequireAdmin(adminHandler.ReviewOrder)))
	mux.HandleFunc("GET /admin/orders", serverMetrics.Instrument("admin_list_orders", adminHandler.RequireAdmin(adminHandler.ListOrders)))
	mux.HandleFunc("GET /admin/stats", serverMetrics.Instrument("admin_stats", adminHandler.RequireAdmin(adminHandler.Stats)))

	// Chain: Logger -> Security Headers -> Mux
	handler := handlers.LoggingMiddleware(
		handlers.SecurityHeadersMiddleware(mux),
	)

	// 5. Start Server with Graceful Shutdown
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to listen and serve", "error", err)
			os.Exit(1)
		}
	}()

	<-stop

	slog.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited gracefully.")
}
