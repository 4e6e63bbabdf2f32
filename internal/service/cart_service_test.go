package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/219WD/jamrock-front-sub001/internal/domain/model"
	"github.com/219WD/jamrock-front-sub001/internal/infra/cache"
	"github.com/219WD/jamrock-front-sub001/internal/infra/cache/memory"
	"github.com/219WD/jamrock-front-sub001/internal/infra/repository/redis_repo"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

const testCartID = "test-cart"

func testProduct(id string, price float64) model.Product {
	return model.Product{
		ProductID: id,
		Title:     "producto " + id,
		Image:     "https://img.example/" + id,
		Price:     decimal.NewFromFloat(price),
		Rating:    4,
		Stock:     10,
		IsActive:  true,
	}
}

type CartServiceTestSuite struct {
	suite.Suite
	cache  *memory.MemoryCache
	repo   *redis_repo.CartRepo
	logger zerolog.Logger
	svc    *CartService
}

func (suite *CartServiceTestSuite) SetupTest() {
	suite.cache = memory.NewMemoryCache()
	suite.repo = redis_repo.NewCartRepo(suite.cache)
	suite.logger = zerolog.Nop()
	suite.svc = NewCartService(context.Background(), testCartID, suite.repo, &suite.logger, nil)
}

func TestCartServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CartServiceTestSuite))
}

func (suite *CartServiceTestSuite) TestAddIncreasesTotalByPrice() {
	ctx := context.Background()
	before := suite.svc.Total()

	suite.svc.Add(ctx, testProduct("p1", 150.50), 1)

	diff := suite.svc.Total().Sub(before)
	assert.True(suite.T(), diff.Equal(decimal.NewFromFloat(150.50)), "total should grow by exactly the unit price, got %s", diff)
}

func (suite *CartServiceTestSuite) TestAddMergesExistingLine() {
	ctx := context.Background()
	suite.svc.Add(ctx, testProduct("p1", 100), 1)
	suite.svc.Add(ctx, testProduct("p1", 100), 2)

	items := suite.svc.Items()
	assert.Len(suite.T(), items, 1)
	assert.Equal(suite.T(), 3, items[0].Quantity)
}

func (suite *CartServiceTestSuite) TestInsertionOrderPreserved() {
	ctx := context.Background()
	suite.svc.Add(ctx, testProduct("p1", 10), 1)
	suite.svc.Add(ctx, testProduct("p2", 20), 1)
	suite.svc.Add(ctx, testProduct("p3", 30), 1)
	suite.svc.Add(ctx, testProduct("p2", 20), 1)

	items := suite.svc.Items()
	assert.Equal(suite.T(), []string{"p1", "p2", "p3"}, []string{items[0].ProductID, items[1].ProductID, items[2].ProductID})
}

func (suite *CartServiceTestSuite) TestUpdateQuantityClampsToOne() {
	ctx := context.Background()
	suite.svc.Add(ctx, testProduct("p1", 100), 5)

	// 減掉全部數量也只會夾到 1，不會變成移除
	suite.svc.UpdateQuantity(ctx, "p1", -5)

	items := suite.svc.Items()
	assert.Len(suite.T(), items, 1)
	assert.Equal(suite.T(), 1, items[0].Quantity)
}

func (suite *CartServiceTestSuite) TestUpdateQuantityAbsentIsNoop() {
	ctx := context.Background()
	suite.svc.Add(ctx, testProduct("p1", 100), 2)

	suite.svc.UpdateQuantity(ctx, "ghost", 3)

	items := suite.svc.Items()
	assert.Len(suite.T(), items, 1)
	assert.Equal(suite.T(), 2, items[0].Quantity)
}

func (suite *CartServiceTestSuite) TestRemoveAbsentIsNoop() {
	ctx := context.Background()
	suite.svc.Add(ctx, testProduct("p1", 100), 2)
	before := suite.svc.Items()

	suite.svc.Remove(ctx, "ghost")

	assert.Equal(suite.T(), before, suite.svc.Items())
}

func (suite *CartServiceTestSuite) TestRemoveDeletesLine() {
	ctx := context.Background()
	suite.svc.Add(ctx, testProduct("p1", 100), 2)
	suite.svc.Add(ctx, testProduct("p2", 50), 1)

	suite.svc.Remove(ctx, "p1")

	items := suite.svc.Items()
	assert.Len(suite.T(), items, 1)
	assert.Equal(suite.T(), "p2", items[0].ProductID)
}

func (suite *CartServiceTestSuite) TestTotalEmptyCartIsZero() {
	assert.True(suite.T(), suite.svc.Total().IsZero())
}

func (suite *CartServiceTestSuite) TestClearErasesSnapshot() {
	ctx := context.Background()
	suite.svc.Add(ctx, testProduct("p1", 100), 2)

	suite.svc.Clear(ctx)

	assert.Empty(suite.T(), suite.svc.Items())
	assert.True(suite.T(), suite.svc.Total().IsZero())

	exists, err := suite.cache.Exists(ctx, "cart:test-cart:snapshot")
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), exists)
}

func (suite *CartServiceTestSuite) TestSnapshotRoundTrip() {
	ctx := context.Background()
	suite.svc.Add(ctx, testProduct("p1", 150.50), 2)
	suite.svc.Add(ctx, testProduct("p2", 99.99), 1)
	original := suite.svc.Items()

	// 用同一份快取重建，品項集合要完全一致
	rebuilt := NewCartService(ctx, testCartID, suite.repo, &suite.logger, nil)
	assert.Equal(suite.T(), original, rebuilt.Items())
	assert.True(suite.T(), suite.svc.Total().Equal(rebuilt.Total()))
}

func (suite *CartServiceTestSuite) TestHydrateFallsBackOnCorruptSnapshot() {
	ctx := context.Background()
	err := suite.cache.Set(ctx, "cart:test-cart:snapshot", "not json at all", 0)
	assert.NoError(suite.T(), err)

	initial := []model.CartItem{{ProductID: "seed", Title: "seed", UnitPrice: decimal.NewFromInt(10), Quantity: 1}}
	svc := NewCartService(ctx, testCartID, suite.repo, &suite.logger, initial)

	assert.Equal(suite.T(), initial, svc.Items())
}

// failingCache 模擬快取完全不可用
type failingCache struct{}

var errCacheDown = errors.New("cache down")

func (f *failingCache) Ping(ctx context.Context) error { return errCacheDown }
func (f *failingCache) Get(ctx context.Context, key string) (string, error) {
	return "", errCacheDown
}
func (f *failingCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return errCacheDown
}
func (f *failingCache) Delete(ctx context.Context, key string) error { return errCacheDown }
func (f *failingCache) Exists(ctx context.Context, key string) (bool, error) {
	return false, errCacheDown
}

var _ cache.Cache = (*failingCache)(nil)

func (suite *CartServiceTestSuite) TestPersistenceFailureDoesNotCrash() {
	ctx := context.Background()
	repo := redis_repo.NewCartRepo(&failingCache{})
	svc := NewCartService(ctx, testCartID, repo, &suite.logger, nil)

	// 快取掛了，操作照常進行，只是不持久化
	svc.Add(ctx, testProduct("p1", 100), 2)
	svc.UpdateQuantity(ctx, "p1", 1)
	svc.Remove(ctx, "ghost")
	svc.Clear(ctx)

	assert.Empty(suite.T(), svc.Items())
}
