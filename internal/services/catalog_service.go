package services

import (
	"context"
	"encoding/json"
	"time"

	"shopfront/internal/domain"
	"shopfront/internal/repository"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	catalogCacheKey = "catalog:products"
	catalogCacheTTL = 30 * time.Second

	seedAttempts = 5
	seedDelay    = 5 * time.Second
)

type CatalogService struct {
	repo        repository.ProductRepository
	redisClient *redis.Client
	log         *zap.SugaredLogger

	seedAttempts int
	seedDelay    time.Duration
}

func NewCatalogService(r repository.ProductRepository, log *zap.SugaredLogger) *CatalogService {
	return &CatalogService{
		repo:         r,
		log:          log,
		seedAttempts: seedAttempts,
		seedDelay:    seedDelay,
	}
}

func (s *CatalogService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// ListProducts returns the full catalog, read through a short-lived redis
// cache when one is configured.
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, catalogCacheKey).Result()
		if err == nil {
			var products []domain.Product
			if err := json.Unmarshal([]byte(cached), &products); err == nil {
				return products, nil
			}
		}
	}

	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(products); err == nil {
			s.redisClient.Set(ctx, catalogCacheKey, data, catalogCacheTTL)
		}
	}

	return products, nil
}

// SeedIfEmpty populates the catalog with the default products unless some
// already exist. Failures are retried a fixed number of times with a fixed
// delay, matching the storefront's startup behavior.
func (s *CatalogService) SeedIfEmpty(ctx context.Context) error {
	var lastErr error
	for attempt := 1; attempt <= s.seedAttempts; attempt++ {
		count, err := s.repo.Count(ctx)
		if err == nil {
			if count > 0 {
				s.log.Infow("products already seeded", "count", count)
				return nil
			}
			if err = s.repo.Insert(ctx, DefaultCatalog()); err == nil {
				s.log.Infow("seeded default catalog", "count", len(DefaultCatalog()))
				s.invalidateCache(ctx)
				return nil
			}
		}
		lastErr = err
		s.log.Errorw("seeding failed", "attempt", attempt, "error", err)
		if attempt < s.seedAttempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.seedDelay):
			}
		}
	}
	return lastErr
}

// Reseed replaces the catalog with the admin sample set.
func (s *CatalogService) Reseed(ctx context.Context) (int, error) {
	sample := SampleCatalog()
	if err := s.repo.ReplaceAll(ctx, sample); err != nil {
		return 0, err
	}
	s.invalidateCache(ctx)
	return len(sample), nil
}

func (s *CatalogService) invalidateCache(ctx context.Context) {
	if s.redisClient != nil {
		s.redisClient.Del(ctx, catalogCacheKey)
	}
}

// DefaultCatalog is what an empty store starts with.
func DefaultCatalog() []domain.Product {
	return []domain.Product{
		{
			Name:            "Crunchy Oat Cookie",
			Origin:          "Kenya",
			Price:           50,
			StrikePrice:     70,
			DiscountPercent: 10,
			DiscountQty:     10,
			Images:          []string{"/images/crunchy.png"},
			Stock:           domain.DefaultStock,
		},
		{
			Name:            "Birds-foot Cookies",
			Origin:          "Ethiopia",
			Price:           80,
			StrikePrice:     120,
			DiscountPercent: 10,
			DiscountQty:     10,
			Images:          []string{"/images/birds-foot.png"},
			Stock:           domain.DefaultStock,
		},
		{
			Name:            "Wholesome Package",
			Origin:          "Uganda",
			Price:           1850,
			StrikePrice:     2100,
			DiscountPercent: 10,
			DiscountQty:     5,
			Images:          []string{"/images/wholesome.png"},
			Stock:           domain.DefaultStock,
		},
		{
			Name:            "Sesame Snaps",
			Origin:          "Uganda",
			Price:           50,
			StrikePrice:     60,
			DiscountPercent: 10,
			DiscountQty:     10,
			Images:          []string{"/images/sesame.png"},
			Stock:           domain.DefaultStock,
		},
	}
}

// SampleCatalog is the smaller set installed by the admin seed endpoint.
func SampleCatalog() []domain.Product {
	return []domain.Product{
		{
			Name:        "Fresh Bananas",
			Origin:      "Kenya",
			Price:       100,
			StrikePrice: 150,
			Images:      []string{"/images/bananas.png"},
			Stock:       domain.DefaultStock,
		},
		{
			Name:        "Premium Coffee",
			Origin:      "Ethiopia",
			Price:       500,
			StrikePrice: 650,
			Images:      []string{"/images/coffee.png"},
			Stock:       domain.DefaultStock,
		},
	}
}
