package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/storefront-bff/internal/cfg"
	"github.com/DRSN-tech/storefront-bff/internal/cart"
	"github.com/DRSN-tech/storefront-bff/internal/catalog"
	v1Grpc "github.com/DRSN-tech/storefront-bff/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/storefront-bff/internal/delivery/v1/http"
	"github.com/DRSN-tech/storefront-bff/internal/infrastructure"
	"github.com/DRSN-tech/storefront-bff/internal/infrastructure/kafka"
	minioInfra "github.com/DRSN-tech/storefront-bff/internal/infrastructure/minio"
	shop_api "github.com/DRSN-tech/storefront-bff/internal/infrastructure/shop-api"
	"github.com/DRSN-tech/storefront-bff/internal/repository/lru"
	"github.com/DRSN-tech/storefront-bff/internal/repository/memory"
	s3Repo "github.com/DRSN-tech/storefront-bff/internal/repository/minio"
	"github.com/DRSN-tech/storefront-bff/internal/repository/redis"
	redisConv "github.com/DRSN-tech/storefront-bff/internal/repository/redis/converter"
	"github.com/DRSN-tech/storefront-bff/internal/usecase"
	"github.com/DRSN-tech/storefront-bff/pkg/clients"
	"github.com/DRSN-tech/storefront-bff/pkg/closer"
	"github.com/DRSN-tech/storefront-bff/pkg/e"
	"github.com/DRSN-tech/storefront-bff/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	shutdownTimeout     = 10 * time.Second
	startupTimeout      = 10 * time.Second
	kafkaTopicTimeout   = 5 * time.Second
	healthCheckInterval = 5 * time.Second
	healthCheckTimeout  = 2 * time.Second
	forcedCloseTimeout  = 2 * time.Second
)

type App struct {
	cfg     *config.Config
	logger  logger.Logger
	closer  *closer.Closer
	httpSrv *v1Http.Server
	grpcSrv *v1Grpc.GRPCServer
	health  v1Grpc.Check
}

// NewApp собирает зависимости. Всё, что нужно закрыть, регистрируется в closer
// в порядке создания и закрывается в обратном.
func NewApp(cfg *config.Config, logger logger.Logger) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: logger,
		closer: closer.NewCloser(forcedCloseTimeout),
		health: func(context.Context) error { return nil },
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	storage, catalogCache, err := a.initStorage(ctx)
	if err != nil {
		a.closeOnError()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	carts, err := cart.NewManager(storage, cfg.Cart.StorageKey, cfg.Cart.MaxSessions, logger)
	if err != nil {
		a.closeOnError()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var publisher usecase.EventPublisher
	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(logger, cfg.Kafka)
		if err := producer.EnsureTopic(kafkaTopicTimeout); err != nil {
			logger.Warnf("failed to ensure kafka topic %s: %v", cfg.Kafka.Topic, err)
		}
		a.closer.AddSimple("kafka producer", producer.Close)

		carts.Observe(producer.CartObserver())
		publisher = producer
	} else {
		logger.Infof("KAFKA_BROKERS is empty, cart events are not published")
	}

	images, err := a.initImages(ctx)
	if err != nil {
		a.closeOnError()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	shopAPI := shop_api.NewClient(cfg.ShopAPI, nil, images, logger)

	catalogUC := usecase.NewCatalogUC(shopAPI, catalogCache, catalog.NewViewModel(cfg.Catalog.Locale), logger)
	cartUC := usecase.NewCartUC(carts, catalogUC, logger)
	checkoutUC := usecase.NewCheckoutUC(carts, shopAPI, publisher, logger)
	adminOrdersUC := usecase.NewAdminOrdersUC(shopAPI, logger)
	dashboardUC := usecase.NewDashboardUC(shopAPI, catalogUC, logger)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	router.Init(v1Http.UseCases{
		Catalog:     catalogUC,
		Cart:        cartUC,
		Checkout:    checkoutUC,
		AdminOrders: adminOrdersUC,
		Dashboard:   dashboardUC,
	}, v1Http.NewSessionMiddleware(cfg.Cart), cfg.Http.SwaggerURL)

	a.httpSrv = v1Http.NewServer(r, cfg.Http)
	a.grpcSrv = v1Grpc.NewGRPCServer(cfg.Grpc, logger)

	a.closer.Add("gRPC server", a.grpcSrv.Stop)
	a.closer.Add("HTTP server", a.httpSrv.Stop)

	return a, nil
}

// initStorage выбирает хранилище корзин и кэш каталога.
// В режиме redis оба живут в Redis, в режиме memory в памяти процесса.
func (a *App) initStorage(ctx context.Context) (cart.Storage, usecase.CatalogCacheRepository, error) {
	if a.cfg.Cart.Storage == config.CartStorageMemory {
		a.logger.Warnf("CART_STORAGE=memory, carts are lost on restart")
		return memory.NewCartRepo(), lru.NewCatalogCacheRepo(a.cfg.Catalog.CacheTTL), nil
	}

	redisClient := clients.NewRedisClient(a.cfg.Redis)
	a.closer.AddSimple("redis", redisClient.Close)

	if err := redisClient.Ping(ctx, a.logger); err != nil {
		a.logger.Errorf(err, "failed to connect to redis")
		return nil, nil, e.Wrap(whereami.WhereAmI(), err)
	}

	a.health = func(ctx context.Context) error {
		return redisClient.Client.Ping(ctx).Err()
	}

	cartRepo := redis.NewCartRepo(redisClient, a.cfg.Cart.TTL)
	cacheRepo := redis.NewCatalogCacheRepo(redisClient, redisConv.NewCatalogConverter(), a.cfg.Catalog.CacheTTL, a.logger)

	return cartRepo, cacheRepo, nil
}

// initImages строит резолвер ссылок на изображения: базовый URL или presigned-ссылки MinIO.
func (a *App) initImages(ctx context.Context) (usecase.ImageURLResolver, error) {
	base := infrastructure.NewBaseURLResolver(a.cfg.Images.PublicBaseURL)
	if a.cfg.Images.Mode != config.ImagesModeMinio {
		return base, nil
	}

	minioClient, err := clients.NewMinIOClient(a.cfg.Images)
	if err != nil {
		a.logger.Errorf(err, "failed to initialize minio client")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := clients.CheckBucket(ctx, minioClient, a.cfg.Images.BucketName); err != nil {
		a.logger.Errorf(err, "failed to check MinIO bucket")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	imageRepo := s3Repo.NewImageRepo(minioClient, a.cfg.Images.BucketName)

	return minioInfra.NewPresignResolver(imageRepo, a.cfg.Images.BucketName, a.cfg.Images.PresignExpiry, base, a.logger), nil
}

func (a *App) closeOnError() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.closer.Close(ctx); err != nil {
		a.logger.Warnf("cleanup after failed start: %v", err)
	}
}

// Run запускает HTTP и gRPC серверы и блокируется до сигнала или ошибки одного из них.
func (a *App) Run() error {
	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()

	grpcErrCh := make(chan error, 1)
	go func() {
		a.logger.Infof("gRPC server starting on %s:%s", a.cfg.Grpc.NetworkMode, a.cfg.Grpc.Port)
		if err := a.grpcSrv.Start(); err != nil {
			a.logger.Errorf(err, "gRPC server failed")
			grpcErrCh <- err
		}
	}()

	go a.grpcSrv.Watch(watchCtx, healthCheckInterval, healthCheckTimeout, a.health)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case appErr = <-grpcErrCh:
		a.logger.Errorf(appErr, "gRPC server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	stopWatch()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "shutdown finished with errors")
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}
