package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront-bff/internal/usecase"
	"github.com/DRSN-tech/storefront-bff/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

// get
//
//	@Summary	Корзина сессии
//	@Tags		cart
//	@Produce	json
//	@Success	200	{object}	CartResponse
//	@Router		/cart [get]
func (c *CartHandler) get(w http.ResponseWriter, r *http.Request) {
	snap := c.cartUsecase.Get(r.Context(), SessionFromContext(r.Context()))
	WriteSuccess(w, http.StatusOK, NewCartResponse(snap))
}

// addItem
//
//	@Summary		Добавить товар в корзину
//	@Description	Повторное добавление увеличивает количество. quantity 0 или отсутствие поля означает 1
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			body	body		AddItemRequest	true	"Товар и количество"
//	@Success		200		{object}	CartResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/cart/items [post]
func (c *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		c.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	snap, err := c.cartUsecase.AddItem(r.Context(),
		usecase.NewAddItemReq(SessionFromContext(r.Context()), string(req.ProductID), req.Quantity))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(snap))
}

// removeItem
//
//	@Summary	Уменьшить количество товара
//	@Tags		cart
//	@Produce	json
//	@Param		productId	path		string	true	"Id товара"
//	@Param		quantity	query		int		false	"На сколько уменьшить (по умолчанию 1)"
//	@Success	200			{object}	CartResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/cart/items/{productId} [delete]
func (c *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	quantity, err := parseQuantityParam(r)
	if err != nil {
		c.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	snap, err := c.cartUsecase.RemoveItem(r.Context(),
		usecase.NewRemoveItemReq(SessionFromContext(r.Context()), chi.URLParam(r, "productId"), quantity))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(snap))
}

// removeProduct
//
//	@Summary	Удалить товар из корзины целиком
//	@Tags		cart
//	@Produce	json
//	@Param		productId	path		string	true	"Id товара"
//	@Success	200			{object}	CartResponse
//	@Router		/cart/products/{productId} [delete]
func (c *CartHandler) removeProduct(w http.ResponseWriter, r *http.Request) {
	snap, err := c.cartUsecase.RemoveProduct(r.Context(), SessionFromContext(r.Context()), chi.URLParam(r, "productId"))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(snap))
}

// clear
//
//	@Summary	Очистить корзину
//	@Tags		cart
//	@Produce	json
//	@Success	200	{object}	CartResponse
//	@Router		/cart [delete]
func (c *CartHandler) clear(w http.ResponseWriter, r *http.Request) {
	snap := c.cartUsecase.Clear(r.Context(), SessionFromContext(r.Context()))
	WriteSuccess(w, http.StatusOK, NewCartResponse(snap))
}
