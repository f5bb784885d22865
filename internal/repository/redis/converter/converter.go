package converter

import (
	"github.com/DRSN-tech/storefront-bff/internal/domain"
	"github.com/DRSN-tech/storefront-bff/internal/usecase"
	"github.com/shopspring/decimal"
)

// CatalogConverter переводит снимок каталога между usecase и моделью Redis.
type CatalogConverter struct{}

func NewCatalogConverter() CatalogConverter {
	return CatalogConverter{}
}

func (c CatalogConverter) ToRedisModel(snapshot *usecase.CatalogSnapshot) *CatalogSnapshotRedisModel {
	model := &CatalogSnapshotRedisModel{
		Products:   make([]CatalogProductRedisModel, 0, len(snapshot.Products)),
		Categories: make([]CategoryRedisModel, 0, len(snapshot.Categories)),
	}

	for _, p := range snapshot.Products {
		model.Products = append(model.Products, c.productToRedis(p))
	}
	for _, cat := range snapshot.Categories {
		model.Categories = append(model.Categories, CategoryRedisModel{ID: cat.ID, Name: cat.Name, Image: cat.Image})
	}

	return model
}

// ToUseCase восстанавливает снимок. Некорректная цена из кэша — ошибка, такой снимок считается промахом.
func (c CatalogConverter) ToUseCase(model *CatalogSnapshotRedisModel) (*usecase.CatalogSnapshot, error) {
	products := make([]domain.CatalogProduct, 0, len(model.Products))
	for _, m := range model.Products {
		p, err := c.productToDomain(m)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	categories := make([]domain.Category, 0, len(model.Categories))
	for _, m := range model.Categories {
		categories = append(categories, domain.NewCategory(m.ID, m.Name, m.Image))
	}

	return usecase.NewCatalogSnapshot(products, categories), nil
}

func (c CatalogConverter) productToRedis(p domain.CatalogProduct) CatalogProductRedisModel {
	m := CatalogProductRedisModel{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price.String(),
		Category:    p.Category,
		IsAvailable: p.IsAvailable,
		OnPromotion: p.OnPromotion,
		Images:      make([]ImageRedisModel, 0, len(p.Images)),
		Image:       p.Image,
	}

	if p.PreviousPrice != nil {
		prev := p.PreviousPrice.String()
		m.PreviousPrice = &prev
	}
	for _, img := range p.Images {
		m.Images = append(m.Images, ImageRedisModel{URL: img.URL, BlurHash: img.BlurHash})
	}

	return m
}

func (c CatalogConverter) productToDomain(m CatalogProductRedisModel) (domain.CatalogProduct, error) {
	price, err := decimal.NewFromString(m.Price)
	if err != nil {
		return domain.CatalogProduct{}, err
	}

	p := domain.CatalogProduct{
		ID:          m.ID,
		Name:        m.Name,
		Price:       price,
		Category:    m.Category,
		IsAvailable: m.IsAvailable,
		OnPromotion: m.OnPromotion,
		Images:      make([]domain.Image, 0, len(m.Images)),
		Image:       m.Image,
	}

	if m.PreviousPrice != nil {
		prev, err := decimal.NewFromString(*m.PreviousPrice)
		if err != nil {
			return domain.CatalogProduct{}, err
		}
		p.PreviousPrice = &prev
	}
	for _, img := range m.Images {
		p.Images = append(p.Images, domain.NewImage(img.URL, img.BlurHash))
	}

	return p, nil
}
