package http

import (
	"net/http"
	"strings"

	"github.com/DRSN-tech/storefront-bff/internal/domain"
	"github.com/DRSN-tech/storefront-bff/internal/usecase"
	"github.com/DRSN-tech/storefront-bff/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type AdminOrdersHandler struct {
	ordersUsecase usecase.AdminOrdersUC
	logger        logger.Logger
}

func NewAdminOrdersHandler(ordersUsecase usecase.AdminOrdersUC, logger logger.Logger) *AdminOrdersHandler {
	return &AdminOrdersHandler{ordersUsecase: ordersUsecase, logger: logger}
}

// list
//
//	@Summary	Заказы
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		status		query		string	false	"Pending | Confirmed | Delivered | Cancelled"
//	@Param		customer	query		string	false	"Подстрока имени покупателя"
//	@Param		period		query		string	false	"day | week | month"
//	@Success	200			{array}		OrderResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	401			{object}	ErrorResponse
//	@Router		/admin/orders [get]
func (a *AdminOrdersHandler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	orders, err := a.ordersUsecase.List(r.Context(),
		usecase.NewListOrdersReq(bearerToken(r), domain.OrderStatus(q.Get("status")), q.Get("customer"),
			domain.OrderPeriod(strings.ToLower(strings.TrimSpace(q.Get("period"))))))
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewOrderResponses(orders))
}

// updateStatus
//
//	@Summary	Сменить статус заказа
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string						true	"Id заказа"
//	@Param		body	body		UpdateOrderStatusRequest	true	"Новый статус"
//	@Success	204
//	@Failure	400		{object}	ErrorResponse
//	@Failure	401		{object}	ErrorResponse
//	@Router		/admin/orders/{id}/status [put]
func (a *AdminOrdersHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateOrderStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		a.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	err := a.ordersUsecase.UpdateStatus(r.Context(),
		usecase.NewUpdateOrderStatusReq(bearerToken(r), chi.URLParam(r, "id"), domain.OrderStatus(req.Status)))
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// deleteOrder
//
//	@Summary	Удалить заказ
//	@Tags		admin
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Id заказа"
//	@Success	204
//	@Failure	401	{object}	ErrorResponse
//	@Router		/admin/orders/{id} [delete]
func (a *AdminOrdersHandler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := a.ordersUsecase.Delete(r.Context(), bearerToken(r), chi.URLParam(r, "id")); err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
