package http

import (
	"net/http"
	"time"

	_ "github.com/DRSN-tech/storefront-bff/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/storefront-bff/internal/usecase"
	"github.com/DRSN-tech/storefront-bff/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

// UseCases — всё, что нужно роутеру для регистрации обработчиков.
type UseCases struct {
	Catalog     usecase.CatalogUC
	Cart        usecase.CartUC
	Checkout    usecase.CheckoutUC
	AdminOrders usecase.AdminOrdersUC
	Dashboard   usecase.DashboardUC
}

func (r *Router) Init(ucs UseCases, session *SessionMiddleware, swaggerURL string) {
	r.router.Use(middleware.RequestID, middleware.RealIP, r.requestLogger, middleware.Recoverer)

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(swaggerURL), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerCatalogRoutes(v1, NewCatalogHandler(ucs.Catalog, r.logger))
		registerAdminOrderRoutes(v1, NewAdminOrdersHandler(ucs.AdminOrders, r.logger))
		registerDashboardRoutes(v1, NewDashboardHandler(ucs.Dashboard, r.logger))

		// Корзина и оформление живут в сессии
		v1.Group(func(s chi.Router) {
			s.Use(session.Handler)
			registerCartRoutes(s, NewCartHandler(ucs.Cart, r.logger))
			registerCheckoutRoutes(s, NewCheckoutHandler(ucs.Checkout, r.logger))
		})
	})
}

func registerCatalogRoutes(router chi.Router, h *CatalogHandler) {
	router.Get("/catalog", h.browse)
	router.Get("/categories", h.categories)
	router.Get("/products/{productId}", h.product)
	router.Post("/admin/catalog/refresh", h.refresh)
}

func registerCartRoutes(router chi.Router, h *CartHandler) {
	router.Route("/cart", func(cr chi.Router) {
		cr.Get("/", h.get)
		cr.Delete("/", h.clear)
		cr.Post("/items", h.addItem)
		cr.Delete("/items/{productId}", h.removeItem)
		cr.Delete("/products/{productId}", h.removeProduct)
	})
}

func registerCheckoutRoutes(router chi.Router, h *CheckoutHandler) {
	router.Post("/checkout", h.placeOrder)
}

func registerAdminOrderRoutes(router chi.Router, h *AdminOrdersHandler) {
	router.Route("/admin/orders", func(ar chi.Router) {
		ar.Get("/", h.list)
		ar.Put("/{id}/status", h.updateStatus)
		ar.Delete("/{id}", h.deleteOrder)
	})
}

func registerDashboardRoutes(router chi.Router, h *DashboardHandler) {
	router.Get("/admin/dashboard", h.stats)
}

func (r *Router) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, req)

		r.logger.Debugf("%s %s %d %v request_id=%s", req.Method, req.URL.Path, ww.Status(), time.Since(start), middleware.GetReqID(req.Context()))
	})
}
