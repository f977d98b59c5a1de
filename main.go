package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pharma-place/auth"
	"pharma-place/config"
	"pharma-place/controllers"
	"pharma-place/database"
	"pharma-place/gcs"
	"pharma-place/jobs"
	"pharma-place/logger"
	"pharma-place/middleware"
	"pharma-place/payment"
	"pharma-place/routes"
	"pharma-place/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.L().Fatal("invalid configuration", zap.Error(err))
	}
	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	ctx := context.Background()

	db, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	if err := db.EnsureIndexes(ctx); err != nil {
		log.Fatal("index setup failed", zap.Error(err))
	}
	log.Info("connected to mongodb", zap.String("database", database.Name))

	gateway, err := newGateway(cfg)
	if err != nil {
		log.Fatal("payment gateway setup failed", zap.Error(err))
	}

	users := services.NewUserService(db)
	payments := services.NewPaymentService(db)
	tokens := auth.NewTokenService(cfg.TokenSecret, auth.DefaultTTL)

	h := &controllers.Handler{
		Users:      users,
		Categories: services.NewCategoryService(db),
		Medicines:  services.NewMedicineService(db),
		Carts:      services.NewCartService(db),
		Payments:   payments,
		Reports:    services.NewReportService(db),
		Tokens:     tokens,
		Gateway:    gateway,
	}

	var uploader *gcs.Uploader
	if cfg.GCSBucket != "" {
		uploader, err = gcs.NewUploader(ctx, cfg.GCSBucket, cfg.GCSCredentials)
		if err != nil {
			log.Fatal("cloud storage setup failed", zap.Error(err))
		}
		h.Uploader = uploader
	}

	scheduler, err := jobs.NewScheduler(payments)
	if err != nil {
		log.Fatal("job scheduler setup failed", zap.Error(err))
	}
	scheduler.Start()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	routes.SetupRoutes(r, h, middleware.NewAccess(tokens, users), cfg.CORSOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("starting server", zap.String("port", cfg.Port), zap.String("payment_provider", cfg.PaymentProvider))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
	scheduler.Stop(shutdownCtx)
	if err := uploader.Close(); err != nil {
		log.Error("cloud storage close", zap.Error(err))
	}
	if err := db.Disconnect(shutdownCtx); err != nil {
		log.Error("database disconnect", zap.Error(err))
	}
}

func newGateway(cfg *config.Config) (payment.Gateway, error) {
	if cfg.PaymentProvider == config.ProviderOmise {
		return payment.NewOmiseGateway(cfg.OmisePublicKey, cfg.OmiseSecretKey)
	}
	return payment.NewStripeGateway(cfg.StripeSecretKey), nil
}
