package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"wayfinder/internal/auth"
	"wayfinder/internal/config"
	apphttp "wayfinder/internal/http"
	"wayfinder/internal/metrics"
	"wayfinder/internal/repository/sqlite"
	"wayfinder/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if strings.TrimSpace(cfg.Auth.SigningKey) == "" {
		logger.Fatalf("auth signing key is required")
	}
	if strings.TrimSpace(cfg.Auth.EncryptionKey) == "" {
		logger.Fatalf("auth encryption key is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer db.Close()

	userRepo := sqlite.NewUserRepository(db)
	taskRepo := sqlite.NewTaskRepository(db)
	recordRepo := sqlite.NewRecordRepository(db)
	tagRepo := sqlite.NewTagRepository(db)
	taskTagRepo := sqlite.NewTaskTagRepository(db)
	ownership := sqlite.NewOwnership(db)

	inits := []struct {
		name string
		init func(context.Context) error
	}{
		{"users", userRepo.Init},
		{"tasks", taskRepo.Init},
		{"records", recordRepo.Init},
		{"tags", tagRepo.Init},
		{"task tags", taskTagRepo.Init},
	}
	for _, r := range inits {
		if err := r.init(ctx); err != nil {
			logger.Fatalf("init %s repository: %v", r.name, err)
		}
	}

	tokens, err := auth.NewTokenService(
		cfg.Auth.SigningKey,
		cfg.Auth.EncryptionKey,
		cfg.Auth.Issuer,
		cfg.Auth.Audience,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
	)
	if err != nil {
		logger.Fatalf("setup token service: %v", err)
	}
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)

	authService := service.NewAuthService(userRepo, hasher, tokens)
	userService := service.NewUserService(userRepo, hasher)
	taskService := service.NewTaskService(taskRepo, ownership)
	recordService := service.NewRecordService(recordRepo, ownership)
	tagService := service.NewTagService(tagRepo, ownership)
	taskTagService := service.NewTaskTagService(taskTagRepo, ownership)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	handler := apphttp.NewHandler(
		authService,
		userService,
		taskService,
		recordService,
		tagService,
		taskTagService,
		tokens,
		metrics.New(),
		logger,
		cfg.Auth.LoginRatePerMin,
		cfg.Auth.LoginBurst,
	)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}
