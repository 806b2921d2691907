package main

import (
	"context"
	"os"
	"time"

	auth "stakex/internal/authService"
	bidding "stakex/internal/biddingService"
	"stakex/internal/cache"
	"stakex/internal/config"
	product "stakex/internal/productService"
	"stakex/internal/repository"
	"stakex/internal/server"
	user "stakex/internal/userService"
	"stakex/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("invalid configuration", map[string]any{"error": err.Error()})
	}
	utils.SetLevel(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	repo, err := buildRepo(ctx, cfg)
	if err != nil {
		utils.Fatal("failed to initialize storage", map[string]any{"error": err.Error()})
	}

	cacheStore := buildCache(ctx, cfg)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)

	svcs := server.Services{
		Auth:          auth.NewAuthService(repo, tokens, hasher),
		Products:      product.NewProductService(repo, cacheStore),
		Bidding:       bidding.NewBiddingService(repo, cacheStore),
		Users:         user.NewUserService(repo),
		MaxImageBytes: cfg.MaxImageBytes,
		Environment:   cfg.Environment,
	}

	router := server.SetupRouter(svcs)

	utils.Info("starting marketplace server", map[string]any{
		"addr":        cfg.HTTPAddr,
		"environment": cfg.Environment,
	})
	if err := router.Run(cfg.HTTPAddr); err != nil {
		utils.Error("server stopped", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

// buildRepo picks MongoDB when a URI is configured and falls back to
// the in-memory store otherwise.
func buildRepo(ctx context.Context, cfg config.Config) (repository.MarketDB, error) {
	if cfg.MongoURI == "" {
		utils.Info("using in-memory storage", nil)
		return repository.NewMemoryRepo(), nil
	}

	client, err := repository.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		return nil, err
	}
	repo := repository.NewMongoRepo(client.Database(cfg.MongoDatabase))
	if err := repo.EnsureIndexes(ctx); err != nil {
		return nil, err
	}
	utils.Info("connected to MongoDB", map[string]any{"database": cfg.MongoDatabase})
	return repo, nil
}

// buildCache connects to Redis when configured. The server runs fine
// without it.
func buildCache(ctx context.Context, cfg config.Config) cache.Store {
	if cfg.RedisAddr == "" {
		return nil
	}

	client, err := cache.Connect(ctx, cfg.RedisAddr)
	if err != nil {
		utils.Warn("redis unavailable, caching disabled", map[string]any{
			"addr":  cfg.RedisAddr,
			"error": err.Error(),
		})
		return nil
	}
	utils.Info("connected to Redis", map[string]any{"addr": cfg.RedisAddr})
	return cache.New(client, "stakex:", cfg.CacheTTL)
}
