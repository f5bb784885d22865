package http

import (
	"net/http"
	"strings"

	"github.com/DRSN-tech/storefront-bff/internal/catalog"
	"github.com/DRSN-tech/storefront-bff/internal/usecase"
	"github.com/DRSN-tech/storefront-bff/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// browse
//
//	@Summary		Витрина
//	@Description	Товары после фильтра по наличию, поиску и категории, отсортированные выбранным способом
//	@Tags			catalog
//	@Produce		json
//	@Param			search			query		string	false	"Подстрока названия, без учёта регистра"
//	@Param			category		query		string	false	"Точное имя категории или All"
//	@Param			categoryId		query		string	false	"Id категории, перекрывает category"
//	@Param			sort			query		string	false	"best_match | newest | price_asc | price_desc | name_asc"
//	@Param			availableOnly	query		bool	false	"Только товары в наличии (по умолчанию true)"
//	@Success		200				{object}	CatalogResponse
//	@Failure		400				{object}	ErrorResponse
//	@Failure		502				{object}	ErrorResponse
//	@Router			/catalog [get]
func (c *CatalogHandler) browse(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := catalog.DefaultFilter()
	filter.SearchText = q.Get("search")
	filter.SortKey = catalog.ParseSortKey(q.Get("sort"))
	if category := strings.TrimSpace(q.Get("category")); category != "" {
		filter.CategoryName = category
	}

	availableOnly, err := parseBoolParam(r, "availableOnly", filter.AvailableOnly)
	if err != nil {
		c.logger.Warnf("%d %s: %s", http.StatusBadRequest, err.Error(), q.Get("availableOnly"))
		WriteError(w, err)
		return
	}
	filter.AvailableOnly = availableOnly

	res, err := c.catalogUsecase.Browse(r.Context(), usecase.NewBrowseCatalogReq(filter, strings.TrimSpace(q.Get("categoryId"))))
	if err != nil {
		c.logger.Errorf(err, "catalog browse failed")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCatalogResponse(res))
}

// categories
//
//	@Summary		Категории
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{array}		CategoryResponse
//	@Failure		502	{object}	ErrorResponse
//	@Router			/categories [get]
func (c *CatalogHandler) categories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.catalogUsecase.Categories(r.Context())
	if err != nil {
		c.logger.Errorf(err, "categories failed")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCategoryResponses(categories))
}

// product
//
//	@Summary		Товар
//	@Description	Товар и до четырёх похожих товаров в наличии из той же категории
//	@Tags			catalog
//	@Produce		json
//	@Param			productId	path		string	true	"Id товара"
//	@Success		200			{object}	ProductDetailsResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/products/{productId} [get]
func (c *CatalogHandler) product(w http.ResponseWriter, r *http.Request) {
	details, err := c.catalogUsecase.ProductDetails(r.Context(), chi.URLParam(r, "productId"))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductDetailsResponse(details))
}

// refresh
//
//	@Summary		Обновить каталог
//	@Description	Сбрасывает кэш каталога и загружает его заново из API магазина
//	@Tags			admin
//	@Security		BearerAuth
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		502	{object}	ErrorResponse
//	@Router			/admin/catalog/refresh [post]
func (c *CatalogHandler) refresh(w http.ResponseWriter, r *http.Request) {
	snapshot, err := c.catalogUsecase.Refresh(r.Context(), bearerToken(r))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	c.logger.Infof("catalog refreshed: %d products, %d categories", len(snapshot.Products), len(snapshot.Categories))
	w.WriteHeader(http.StatusNoContent)
}
