package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/toolshare/toolshare-server/internal/annotate"
	"github.com/toolshare/toolshare-server/internal/api"
	"github.com/toolshare/toolshare-server/internal/config"
	"github.com/toolshare/toolshare-server/internal/repository"
	"github.com/toolshare/toolshare-server/internal/service"
	"github.com/toolshare/toolshare-server/internal/storage"
	"github.com/toolshare/toolshare-server/internal/utils"
)

func main() {
	log := utils.NewLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration", err)
	}

	ctx := context.Background()

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to open collection store", err)
	}
	defer store.Close()

	repo := repository.NewStoreRepository(store)

	if cfg.Storage.SeedDemoData {
		if err := repository.SeedDemoData(ctx, repo); err != nil {
			log.Fatal("Failed to seed demo data", err)
		}
		log.Info("Demo data seeded")
	}

	annotator := annotate.NewGeminiAnnotator(cfg.Annotate.GeminiAPIKey)
	svc := service.NewDefaultService(repo, annotator, cfg.Auth.JWTSecret)
	handler := api.NewHandler(svc)

	router := gin.Default()
	router.Use(func(c *gin.Context) {
		c.Set("jwtSecret", []byte(cfg.Auth.JWTSecret))
		c.Next()
	})
	handler.SetupRoutes(router)

	serverAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("Starting server", "addr", serverAddr, "storage", cfg.Storage.Driver)
	if err := http.ListenAndServe(serverAddr, router); err != nil {
		log.Fatal("Failed to start server", err)
	}
}

func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Driver {
	case "memory":
		return storage.NewMemoryStore(), nil
	case "file":
		return storage.NewFileStore(cfg.Storage.DataDir)
	case "postgres":
		return storage.NewPostgresStore(cfg.Database.GetDSN())
	case "redis":
		return storage.NewRedisStore(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
