package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"github.com/mybasket/basket-svc/internal/dal/catalog"
	"github.com/mybasket/basket-svc/internal/dal/interfaces/icatalog"
	cartmemory "github.com/mybasket/basket-svc/internal/dal/repositories/cart/memory"
	ordermemory "github.com/mybasket/basket-svc/internal/dal/repositories/order/memory"
	"github.com/mybasket/basket-svc/internal/otel"
	"github.com/mybasket/basket-svc/internal/service/services/cartsvc"
	"github.com/mybasket/basket-svc/internal/service/services/ordersvc"
	httptransport "github.com/mybasket/basket-svc/internal/transport/http"
	"github.com/mybasket/basket-svc/pkg/keylock"
)

// App represents the application.
type App struct {
	cartSvc        *cartsvc.CartService
	orderSvc       *ordersvc.OrderService
	transport      *httptransport.HTTPTransport
	otelController *otel.OtelController
}

// MustNewApp creates a new application.
func MustNewApp() *App {
	otelController := otel.MustInitOtel()

	cartRepo := cartmemory.NewMemoryCartRepository()
	orderRepo := ordermemory.NewMemoryOrderRepository()
	locks := keylock.New()

	// The seeded demo catalog serves local runs; a configured base URL
	// switches lookups to the real catalog service.
	var catalogLookup icatalog.ICatalogLookup = catalog.NewStaticCatalog()
	if viper.GetString("catalog.base_url") != "" {
		catalogLookup = catalog.NewClient()
	}

	cartSvc := cartsvc.MustNewCartService(
		cartsvc.WithCartRepository(cartRepo),
		cartsvc.WithCatalog(catalogLookup),
		cartsvc.WithKeyLock(locks),
	)

	orderSvc := ordersvc.MustNewOrderService(
		ordersvc.WithOrderRepository(orderRepo),
		ordersvc.WithCartRepository(cartRepo),
		ordersvc.WithKeyLock(locks),
	)

	transport := httptransport.NewHTTPTransport(cartSvc, orderSvc)
	transport.RegisterRoutes()

	return &App{
		cartSvc:        cartSvc,
		orderSvc:       orderSvc,
		transport:      transport,
		otelController: otelController,
	}
}

// Run starts the application.
// Tracks interrupt signal to gracefully shut down the application.
func (a *App) Run() {
	// Create a channel to receive OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("Starting HTTP server")
		if err := a.transport.Run(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	<-stop
	slog.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.transport.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped gracefully")
	}

	if err := a.otelController.Shutdown(); err != nil {
		slog.Error("Tracer provider shutdown error", "error", err)
	} else {
		slog.Info("Tracer provider stopped gracefully")
	}

	slog.Info("Application shutdown complete")
}
