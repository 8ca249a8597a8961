package main

import (
	"context"
	"log"
	"time"

	"shopfront/internal/config"
	httpctrl "shopfront/internal/controllers/http"
	"shopfront/internal/infra/mysql"
	"shopfront/internal/infra/paystack"
	"shopfront/internal/infra/rabbitmq"
	mysqlrepo "shopfront/internal/repository/mysql"
	"shopfront/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := newLogger(cfg.App.Env)
	defer logger.Sync()
	sugar := logger.Sugar()

	db := mysql.Connect(cfg.MySQL, sugar)

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	orderRepo := mysqlrepo.NewOrderRepository(db)
	productRepo := mysqlrepo.NewProductRepository(db)

	gateway := paystack.NewClient(cfg.Paystack.BaseURL, cfg.Paystack.Secret, 30*time.Second)

	var publisher rabbitmq.PublisherInterface
	if cfg.RabbitMQ.URL != "" {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			sugar.Warnw("rabbitmq unavailable, events disabled", "error", err)
		} else {
			defer pub.Close()
			publisher = pub
		}
	}

	catalogSvc := services.NewCatalogService(productRepo, sugar)
	orderSvc := services.NewOrderService(orderRepo, gateway, publisher, cfg.App.BaseURL, sugar)

	if cfg.Redis.Host != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Host + ":6379",
			DB:           0,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		})
		catalogSvc.SetRedisClient(redisClient)
	}

	handler := httpctrl.NewHandler(orderSvc, catalogSvc, cfg.Admin.Token, sugar)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		// The storefront still serves if seeding loses all its retries.
		if err := catalogSvc.SeedIfEmpty(ctx); err != nil {
			sugar.Errorw("failed to seed catalog", "error", err)
		}
		return nil
	})
	g.Go(func() error {
		sugar.Infow("starting storefront", "addr", cfg.Server.Address())
		return r.Run(cfg.Server.Address())
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("server exited", "error", err)
	}
}

func newLogger(env string) *zap.Logger {
	if env == "production" {
		logger, err := zap.NewProduction()
		if err != nil {
			log.Fatalf("logger: %v", err)
		}
		return logger
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	return logger
}
