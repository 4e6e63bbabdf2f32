package appcontext

import (
	"context"
	"os"

	"github.com/219WD/jamrock-front-sub001/internal/config"
	"github.com/219WD/jamrock-front-sub001/internal/constants"
	"github.com/219WD/jamrock-front-sub001/internal/domain/model"
	"github.com/219WD/jamrock-front-sub001/internal/infra/cache"
	rediscache "github.com/219WD/jamrock-front-sub001/internal/infra/cache/redis"
	"github.com/219WD/jamrock-front-sub001/internal/infra/client"
	"github.com/219WD/jamrock-front-sub001/internal/infra/repository/redis_repo"
	"github.com/219WD/jamrock-front-sub001/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ApplicationContext 應用程式生命週期內所有元件的明確裝配
// 取代模組層級的全域狀態，初始化規則集中在這裡
type ApplicationContext struct {
	Cf             *config.Config
	Logger         *zerolog.Logger
	RedisClient    *redis.Client
	Cache          cache.Cache
	CartRepo       redis_repo.ICartRepo
	CartService    service.ICartService
	TurnoClient    client.ITurnoClient
	TurnoService   service.ITurnoService
	CatalogClient  client.ICatalogClient
	CatalogService service.ICatalogService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	if err := app.Init(); err != nil {
		return nil, err
	}
	return &app, nil
}

func (app *ApplicationContext) Init() error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "jamrock-portal").Logger()
	app.Logger = &logger

	app.RedisClient = redis.NewClient(&redis.Options{
		Addr:     app.Cf.RedisAddr,
		Password: app.Cf.RedisPassword,
		DB:       app.Cf.RedisDB,
	})
	app.Cache = rediscache.NewRedisCache(app.RedisClient, constants.CachePrefix)
	app.CartRepo = redis_repo.NewCartRepo(app.Cache)

	cartID := app.Cf.CartID
	if cartID == "" {
		cartID = constants.DefaultCartID
	}
	// 啟動時從快照還原購物車，沒有快照就從空車開始
	app.CartService = service.NewCartService(context.Background(), cartID, app.CartRepo, app.Logger, []model.CartItem{})

	app.TurnoClient = client.NewTurnoClient(app.Cf.TurnoServiceURL, constants.ServiceClientTimeout, app.Logger)
	app.TurnoService = service.NewTurnoService(app.TurnoClient, service.NewTurnoValidator(), app.Logger)

	app.CatalogClient = client.NewCatalogClient(app.Cf.CatalogServiceURL, constants.ServiceClientTimeout, app.Logger)
	app.CatalogService = service.NewCatalogService(app.CatalogClient)

	return nil
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	if app.RedisClient != nil {
		return app.RedisClient.Close()
	}
	return nil
}
