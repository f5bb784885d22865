package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront-bff/internal/usecase"
	"github.com/DRSN-tech/storefront-bff/pkg/logger"
)

type CheckoutHandler struct {
	checkoutUsecase usecase.CheckoutUC
	logger          logger.Logger
}

func NewCheckoutHandler(checkoutUsecase usecase.CheckoutUC, logger logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkoutUsecase: checkoutUsecase, logger: logger}
}

// placeOrder
//
//	@Summary		Оформить заказ
//	@Description	Проверяет форму, отправляет заказ из корзины сессии в API магазина и очищает корзину
//	@Tags			checkout
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CheckoutRequest	true	"Данные покупателя"
//	@Success		201		{object}	ConfirmationResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse	"Корзина пуста"
//	@Failure		422		{object}	ErrorResponse	"Ошибка валидации поля"
//	@Failure		502		{object}	ErrorResponse
//	@Router			/checkout [post]
func (c *CheckoutHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := decodeJSON(w, r, &req); err != nil {
		c.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	confirmation, err := c.checkoutUsecase.PlaceOrder(r.Context(),
		usecase.NewPlaceOrderReq(SessionFromContext(r.Context()), req.ToDomain()))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewConfirmationResponse(confirmation))
}
