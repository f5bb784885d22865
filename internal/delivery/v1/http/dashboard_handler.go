package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront-bff/internal/usecase"
	"github.com/DRSN-tech/storefront-bff/pkg/logger"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUC
	logger           logger.Logger
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUC, logger logger.Logger) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase, logger: logger}
}

// stats
//
//	@Summary		Сводка админки
//	@Description	Число товаров, доставленные заказы всего и за текущий месяц, пять последних заказов
//	@Tags			admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	DashboardResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		502	{object}	ErrorResponse
//	@Router			/admin/dashboard [get]
func (d *DashboardHandler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := d.dashboardUsecase.Stats(r.Context(), bearerToken(r))
	if err != nil {
		d.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewDashboardResponse(stats))
}
