package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"shopfront/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestCatalogService(repo *mocks.MockProductRepository) *CatalogService {
	s := NewCatalogService(repo, zap.NewNop().Sugar())
	s.seedDelay = time.Millisecond
	return s
}

func TestCatalogService_ListProducts(t *testing.T) {
	mockRepo := new(mocks.MockProductRepository)
	mockRepo.On("FindAll", mock.Anything).Return(DefaultCatalog(), nil)

	service := newTestCatalogService(mockRepo)
	products, err := service.ListProducts(context.Background())

	assert.NoError(t, err)
	assert.Len(t, products, len(DefaultCatalog()))
	assert.Equal(t, "Crunchy Oat Cookie", products[0].Name)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_ListProducts_StoreUnreachable(t *testing.T) {
	mockRepo := new(mocks.MockProductRepository)
	mockRepo.On("FindAll", mock.Anything).Return(nil, errors.New("connection refused"))

	service := newTestCatalogService(mockRepo)
	products, err := service.ListProducts(context.Background())

	assert.Error(t, err)
	assert.Nil(t, products)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_SeedIfEmpty_SkipsWhenPopulated(t *testing.T) {
	mockRepo := new(mocks.MockProductRepository)
	mockRepo.On("Count", mock.Anything).Return(int64(4), nil)

	service := newTestCatalogService(mockRepo)
	err := service.SeedIfEmpty(context.Background())

	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_SeedIfEmpty_InsertsDefaults(t *testing.T) {
	mockRepo := new(mocks.MockProductRepository)
	mockRepo.On("Count", mock.Anything).Return(int64(0), nil)
	mockRepo.On("Insert", mock.Anything, DefaultCatalog()).Return(nil)

	service := newTestCatalogService(mockRepo)
	err := service.SeedIfEmpty(context.Background())

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_SeedIfEmpty_RetriesAndGivesUp(t *testing.T) {
	mockRepo := new(mocks.MockProductRepository)
	mockRepo.On("Count", mock.Anything).Return(int64(0), errors.New("connection refused"))

	service := newTestCatalogService(mockRepo)
	err := service.SeedIfEmpty(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	mockRepo.AssertNumberOfCalls(t, "Count", seedAttempts)
}

func TestCatalogService_SeedIfEmpty_RecoversOnRetry(t *testing.T) {
	mockRepo := new(mocks.MockProductRepository)
	mockRepo.On("Count", mock.Anything).Return(int64(0), errors.New("connection refused")).Once()
	mockRepo.On("Count", mock.Anything).Return(int64(0), nil)
	mockRepo.On("Insert", mock.Anything, DefaultCatalog()).Return(nil)

	service := newTestCatalogService(mockRepo)
	err := service.SeedIfEmpty(context.Background())

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_Reseed(t *testing.T) {
	mockRepo := new(mocks.MockProductRepository)
	mockRepo.On("ReplaceAll", mock.Anything, SampleCatalog()).Return(nil)

	service := newTestCatalogService(mockRepo)
	count, err := service.Reseed(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, len(SampleCatalog()), count)
	mockRepo.AssertExpectations(t)
}
