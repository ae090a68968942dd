package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"grosirku-be/internal/banner"
	"grosirku-be/internal/cart"
	"grosirku-be/internal/config"
	"grosirku-be/internal/db"
	"grosirku-be/internal/handlers"
	"grosirku-be/internal/logger"
	"grosirku-be/internal/notify"
	"grosirku-be/internal/order"
	"grosirku-be/internal/pickup"
	"grosirku-be/internal/product"
	"grosirku-be/internal/receipt"
	"grosirku-be/internal/seller"
	"grosirku-be/internal/server"
	"grosirku-be/internal/upload"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Indirections for tests.
var (
	openDBFunc    = db.NewDatabase
	newRedisFunc  = newRedisClient
	runServerFunc = func(s *server.Server) error { return s.Run() }
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database, err := openDBFunc(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	redisClient, err := newRedisFunc(cfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	uploads, err := upload.NewStore(cfg.UploadDir)
	if err != nil {
		return err
	}

	srv, err := buildServer(cfg, database, redisClient, uploads)
	if err != nil {
		return err
	}

	return runServerFunc(srv)
}

func newRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}

func buildServer(
	cfg *config.Config,
	database *sql.DB,
	redisClient *redis.Client,
	uploads *upload.Store,
) (*server.Server, error) {
	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	bannerRepo := banner.NewRepository(database)
	bannerSvc := banner.NewService(bannerRepo)

	cartStore := cart.NewRedisStore(redisClient)
	cartSvc := cart.NewService(cartStore, productRepo)

	pickupRepo := pickup.NewRepository(database)
	pickupSvc := pickup.NewService(pickupRepo)

	notifier := notify.NewEmailNotifier(cfg)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, cartSvc, productRepo, pickupSvc, notifier)

	sellerRepo := seller.NewRepository(database)
	sellerSvc := seller.NewService(sellerRepo, cfg.JWTSecret)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := pickupSvc.EnsureSeeded(ctx); err != nil {
		return nil, err
	}
	if err := sellerSvc.EnsureDefault(ctx, cfg.DefaultSellerUsername, cfg.DefaultSellerPassword); err != nil {
		return nil, err
	}

	renderer := receipt.NewRenderer(receipt.ShopInfo{
		Name:        cfg.ShopName,
		Address:     cfg.ShopAddress,
		PaymentNote: cfg.PaymentNote,
	})

	h := handlers.NewHandlers(productSvc, bannerSvc, cartSvc,
		pickupSvc, orderSvc, sellerSvc, uploads, renderer)

	logger.L().Info("dependencies wired",
		zap.String("env", cfg.AppEnv),
		zap.Bool("mail_configured", cfg.MailConfigured()),
	)

	return server.New(cfg, h), nil
}
