package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"capitaluy-backend/internal/auth"
	"capitaluy-backend/internal/cache"
	"capitaluy-backend/internal/config"
	"capitaluy-backend/internal/handlers"
	"capitaluy-backend/internal/health"
	h "capitaluy-backend/internal/http"
	"capitaluy-backend/internal/logger"
	"capitaluy-backend/internal/middleware"
	"capitaluy-backend/internal/repositories"
	"capitaluy-backend/internal/services"
	"capitaluy-backend/internal/store"
)

func main() {
	cfg := config.Load()

	syncLogs, err := logger.Init(cfg)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer syncLogs()
	sugar := zap.S()

	ctx := context.Background()

	// Document store
	openCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	documentStore, err := store.Open(openCtx, cfg)
	cancel()
	if err != nil {
		sugar.Fatalf("[Store] %v", err)
	}
	defer documentStore.Close()
	sugar.Infof("[Store] Using %s driver", documentStore.Name())

	// Optional read cache
	cacheTTL := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	if cfg.Cache.Enabled {
		if err := cache.Init(cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB); err != nil {
			sugar.Warnf("[Redis] Cache unavailable, reading straight from store: %v", err)
		} else {
			sugar.Infof("[Redis] Document cache enabled (ttl %s)", cacheTTL)
			defer cache.Close()
		}
	}

	// Repositories
	docs := repositories.NewDocumentRepository(documentStore, cacheTTL)
	siteConfigRepo := repositories.NewSiteConfigRepository(docs)
	aboutRepo := repositories.NewAboutRepository(docs)
	courseRepo := repositories.NewCourseRepository(docs)
	priceRepo := repositories.NewCryptoPriceRepository(docs)
	contactMessageRepo := repositories.NewContactMessageRepository(docs)
	adminAccountRepo := repositories.NewAdminAccountRepository(docs)

	// Session
	sessions := auth.NewSessionManager(cfg)
	adminSession := middleware.NewAdminSession(sessions, cfg.Session.CookieName)

	// Services
	siteConfigService := services.NewSiteConfigService(siteConfigRepo)
	aboutService := services.NewAboutService(aboutRepo)
	courseService := services.NewCourseService(courseRepo)
	priceService := services.NewCryptoPriceService(priceRepo)
	contactMessageService := services.NewContactMessageService(contactMessageRepo)
	authService := services.NewAuthService(adminAccountRepo, sessions, cfg.Admin.Username, cfg.Admin.Password)

	// Handlers
	router := h.NewRouter(
		handlers.NewSiteConfigHandler(siteConfigService),
		handlers.NewAboutHandler(aboutService),
		handlers.NewCourseHandler(courseService),
		handlers.NewPriceHandler(priceService, services.NewPriceExportService()),
		handlers.NewContactMessageHandler(contactMessageService),
		handlers.NewAuthHandler(authService, adminSession, cfg.Server.CookieSecure),
		handlers.NewHealthHandler(health.NewHealthChecker(documentStore)),
		adminSession,
	)

	corsMiddleware := middleware.NewCORS(cfg)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           corsMiddleware(router),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		sugar.Infof("Server running on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalf("Server failed to start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	sugar.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		sugar.Errorf("Graceful shutdown failed: %v", err)
	}
}
