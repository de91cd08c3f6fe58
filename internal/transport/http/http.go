package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"

	"github.com/mybasket/basket-svc/internal/service/models/cart"
	"github.com/mybasket/basket-svc/internal/service/models/order"
	carthandler "github.com/mybasket/basket-svc/internal/transport/http/cart"
	orderhandler "github.com/mybasket/basket-svc/internal/transport/http/orders"
	"github.com/mybasket/basket-svc/pkg/http/middleware/trace"
	"github.com/mybasket/basket-svc/pkg/logger"
)

type cartService interface {
	AddItem(ctx context.Context, userID, productID string, quantity int) (*cart.Cart, error)
	UpdateItem(ctx context.Context, userID, productID string, quantity int) (*cart.Cart, error)
	RemoveItem(ctx context.Context, userID, productID string) (*cart.Cart, error)
	ClearCart(ctx context.Context, userID string) (*cart.Cart, error)
	GetCart(ctx context.Context, userID string) (*cart.Cart, error)
	GetSummary(ctx context.Context, userID string) (cart.Summary, error)
}

type orderService interface {
	CreateOrder(ctx context.Context, model order.CreateOrderModel) (*order.Order, error)
	UpdateOrderStatus(ctx context.Context, userID, orderID, status string) (*order.Order, error)
	GetOrder(ctx context.Context, userID, orderID string) (*order.Order, error)
	ListOrders(ctx context.Context, userID string, filter *order.QueryOrdersModel) ([]order.Order, error)
}

type HTTPTransport struct {
	server   *http.Server
	router   *chi.Mux
	cartSvc  cartService
	orderSvc orderService
}

func NewHTTPTransport(cartSvc cartService, orderSvc orderService) *HTTPTransport {
	router := newRouter()
	server := newServer(router)
	return &HTTPTransport{
		server:   server,
		router:   router,
		cartSvc:  cartSvc,
		orderSvc: orderSvc,
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// RegisterRoutes registers the routes for the HTTPTransport.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.Route("/api", func(r chi.Router) {
		r.Route("/cart/{userId}", func(r chi.Router) {
			r.Get("/", h.getCart)
			r.Delete("/", h.clearCart)
			r.Get("/summary", h.getSummary)
			r.Post("/items", h.addItem)
			r.Put("/items/{productId}", h.updateItem)
			r.Delete("/items/{productId}", h.removeItem)
		})
		r.Route("/orders/{userId}", func(r chi.Router) {
			r.Post("/", h.createOrder)
			r.Get("/", h.listOrders)
			r.Get("/{orderId}", h.getOrder)
			r.Patch("/{orderId}/status", h.updateOrderStatus)
		})
	})
}

func (h *HTTPTransport) getCart(w http.ResponseWriter, r *http.Request) {
	carthandler.GetCart(w, r, h.cartSvc)
}

func (h *HTTPTransport) getSummary(w http.ResponseWriter, r *http.Request) {
	carthandler.GetSummary(w, r, h.cartSvc)
}

func (h *HTTPTransport) addItem(w http.ResponseWriter, r *http.Request) {
	carthandler.AddItem(w, r, h.cartSvc)
}

func (h *HTTPTransport) updateItem(w http.ResponseWriter, r *http.Request) {
	carthandler.UpdateItem(w, r, h.cartSvc)
}

func (h *HTTPTransport) removeItem(w http.ResponseWriter, r *http.Request) {
	carthandler.RemoveItem(w, r, h.cartSvc)
}

func (h *HTTPTransport) clearCart(w http.ResponseWriter, r *http.Request) {
	carthandler.ClearCart(w, r, h.cartSvc)
}

func (h *HTTPTransport) createOrder(w http.ResponseWriter, r *http.Request) {
	orderhandler.CreateOrder(w, r, h.orderSvc)
}

func (h *HTTPTransport) listOrders(w http.ResponseWriter, r *http.Request) {
	orderhandler.ListOrders(w, r, h.orderSvc)
}

func (h *HTTPTransport) getOrder(w http.ResponseWriter, r *http.Request) {
	orderhandler.GetOrder(w, r, h.orderSvc)
}

func (h *HTTPTransport) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderhandler.UpdateOrderStatus(w, r, h.orderSvc)
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))
	router.Use(trace.NewTraceMiddleware)

	allowedOrigins := viper.GetStringSlice("server.http.cors.allowed_origins")
	allowedMethods := viper.GetStringSlice("server.http.cors.allowed_methods")
	allowedHeaders := viper.GetStringSlice("server.http.cors.allowed_headers")
	exposedHeaders := viper.GetStringSlice("server.http.cors.exposed_headers")
	allowCredentials := viper.GetBool("server.http.cors.allow_credentials")
	maxAge := viper.GetInt("server.http.cors.max_age")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	})

	router.Use(c.Handler)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler: router,
	}
}
