package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/DRSN-tech/storefront-bff/internal/catalog"
	"github.com/DRSN-tech/storefront-bff/internal/domain"
	"github.com/DRSN-tech/storefront-bff/pkg/e"
	"github.com/DRSN-tech/storefront-bff/pkg/logger"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	snapshotFlightKey = "catalog"
	cacheWriteTimeout = 500 * time.Millisecond
)

// CatalogUseCase отдаёт витрину: снимок каталога из кэша или API магазина,
// отфильтрованный и отсортированный view model.
type CatalogUseCase struct {
	shopAPI   ShopAPI
	cacheRepo CatalogCacheRepository
	vm        *catalog.ViewModel
	flight    singleflight.Group
	logger    logger.Logger
}

func NewCatalogUC(shopAPI ShopAPI, cacheRepo CatalogCacheRepository, vm *catalog.ViewModel, logger logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		shopAPI:   shopAPI,
		cacheRepo: cacheRepo,
		vm:        vm,
		logger:    logger,
	}
}

// Browse применяет фильтр к текущему каталогу.
// Имя категории по CategoryID разрешается на каждом запросе, когда категории уже загружены.
func (c *CatalogUseCase) Browse(ctx context.Context, req *BrowseCatalogReq) (*BrowseCatalogRes, error) {
	const op = "CatalogUseCase.Browse"

	snapshot, err := c.snapshot(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	filter := req.Filter
	if req.CategoryID != "" {
		filter.CategoryName = catalog.ResolveCategoryName(req.CategoryID, snapshot.Categories)
	}

	return &BrowseCatalogRes{
		Result:     c.vm.Apply(snapshot.Products, filter),
		Categories: snapshot.Categories,
		Filter:     filter,
	}, nil
}

func (c *CatalogUseCase) Categories(ctx context.Context) ([]domain.Category, error) {
	const op = "CatalogUseCase.Categories"

	snapshot, err := c.snapshot(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return snapshot.Categories, nil
}

// Product ищет товар по id в текущем каталоге.
func (c *CatalogUseCase) Product(ctx context.Context, id string) (*domain.CatalogProduct, error) {
	const op = "CatalogUseCase.Product"

	snapshot, err := c.snapshot(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	for i := range snapshot.Products {
		if snapshot.Products[i].ID == id {
			product := snapshot.Products[i]
			return &product, nil
		}
	}

	return nil, e.Wrap(op, e.ErrProductNotFound)
}

// ProductDetails возвращает товар и до catalog.RelatedLimit похожих товаров в наличии.
func (c *CatalogUseCase) ProductDetails(ctx context.Context, id string) (*ProductDetails, error) {
	const op = "CatalogUseCase.ProductDetails"

	snapshot, err := c.snapshot(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	for _, p := range snapshot.Products {
		if p.ID == id {
			return NewProductDetails(p, catalog.Related(snapshot.Products, p, catalog.RelatedLimit)), nil
		}
	}

	return nil, e.Wrap(op, e.ErrProductNotFound)
}

// ProductCount — число всех товаров каталога, включая отсутствующие.
func (c *CatalogUseCase) ProductCount(ctx context.Context) (int, error) {
	const op = "CatalogUseCase.ProductCount"

	snapshot, err := c.snapshot(ctx)
	if err != nil {
		return 0, e.Wrap(op, err)
	}

	return len(snapshot.Products), nil
}

// Refresh сбрасывает кэш каталога и сразу загружает свежий снимок.
// Токен только пробрасывается, проверяет его API магазина при админских вызовах.
func (c *CatalogUseCase) Refresh(ctx context.Context, token string) (*CatalogSnapshot, error) {
	const op = "CatalogUseCase.Refresh"

	if token == "" {
		return nil, e.Wrap(op, e.ErrUnauthorized)
	}

	if err := c.cacheRepo.Invalidate(ctx); err != nil {
		c.logger.Warnf("catalog cache invalidate failed: %v", e.Wrap(op, err))
	}

	snapshot, err := c.snapshot(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return snapshot, nil
}

// snapshot читает каталог из кэша, при промахе загружает из API.
// Одновременные промахи схлопываются в одну загрузку.
func (c *CatalogUseCase) snapshot(ctx context.Context) (*CatalogSnapshot, error) {
	const op = "CatalogUseCase.snapshot"

	cached, err := c.cacheRepo.Get(ctx)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, e.ErrCacheMiss) {
		c.logger.Warnf("catalog cache read failed, falling back to shop api: %v", e.Wrap(op, err))
	}

	v, err, _ := c.flight.Do(snapshotFlightKey, func() (any, error) {
		return c.load(ctx)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return v.(*CatalogSnapshot), nil
}

func (c *CatalogUseCase) load(ctx context.Context) (*CatalogSnapshot, error) {
	const op = "CatalogUseCase.load"

	var (
		products   []domain.CatalogProduct
		categories []domain.Category
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = c.shopAPI.Products(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = c.shopAPI.Categories(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, e.Wrap(op, err)
	}

	snapshot := NewCatalogSnapshot(products, categories)

	// Фоновая запись снимка в кэш
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), cacheWriteTimeout)
		defer cancel()

		if err := c.cacheRepo.Set(bgCtx, snapshot); err != nil {
			c.logger.Warnf("Failed to cache catalog in background: %v", e.Wrap(op, err))
		}
	}()

	return snapshot, nil
}
