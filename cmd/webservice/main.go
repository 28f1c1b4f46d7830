package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	_ "time/tzdata"

	"github.com/go-co-op/gocron/v2"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ArtytL/loh2-site/config"
	"github.com/ArtytL/loh2-site/internal/auth"
	"github.com/ArtytL/loh2-site/internal/controller"
	circuitbreaker "github.com/ArtytL/loh2-site/internal/infrastructure/circuit-breaker"
	"github.com/ArtytL/loh2-site/internal/infrastructure/kvstore"
	"github.com/ArtytL/loh2-site/internal/infrastructure/notification"
	"github.com/ArtytL/loh2-site/internal/infrastructure/tracing"
	localmiddleware "github.com/ArtytL/loh2-site/internal/middleware"
	"github.com/ArtytL/loh2-site/internal/repository"
	"github.com/ArtytL/loh2-site/internal/service"
	"github.com/ArtytL/loh2-site/pkg/response"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	config := config.CreateNewConfig()

	traceProvider, err := tracing.InitTracing(config.TracingConfig.CollectorHost)
	if err != nil {
		fmt.Println(err)
	}

	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			fmt.Println(err)
		}
	}()

	tracer := traceProvider.Tracer("storefront-service")

	var store kvstore.Store
	if config.KVRestAPIURL != "" {
		cb := circuitbreaker.CreateCircuitBreaker("storefront-kv")
		store = kvstore.CreateUpstashStore(config.KVRestAPIURL, config.KVRestAPIToken, cb)
	} else {
		log.Warn().Msg("KV_REST_API_URL not set, falling back to in-memory store")
		store = kvstore.CreateMemoryStore()
	}

	gate := auth.CreateJWTGate(config.AdminJWTSecret)

	var notifier notification.Notifier
	switch {
	case config.OrderWebhookURL != "":
		notifier = notification.CreateWebhookNotifier(config.OrderWebhookURL)
	case config.SMTPConfig.Host != "":
		notifier = notification.CreateEmailNotifier(config.SMTPConfig, config.AdminEmail)
	default:
		notifier = notification.CreateLogNotifier()
	}

	productRepo := repository.CreateProductRepository(store)
	orderRepo := repository.CreateOrderRepository(store)

	productSvc := service.CreateProductService(productRepo, gate)
	orderSvc := service.CreateOrderService(orderRepo, gate, notifier, config)
	adminSvc := service.CreateAdminService(gate, config)

	e := echo.New()
	g := e.Group("/api/v1")

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))
	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(localmiddleware.Logger)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "pong", nil)
	})

	controller.CreateController(g, productSvc, orderSvc, adminSvc)

	s, err := gocron.NewScheduler()
	if err != nil {
		panic(err)
	}

	// The id counters are best-effort; this periodically resyncs any counter
	// that has fallen behind the ids already in its collection.
	_, err = s.NewJob(
		gocron.DurationJob(
			time.Hour,
		),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := productRepo.SyncSequence(ctx); err != nil {
				log.Error().Err(err).Str("component", "SyncSequence").Msg("product counter resync failed")
			}
			if err := orderRepo.SyncSequence(ctx); err != nil {
				log.Error().Err(err).Str("component", "SyncSequence").Msg("order counter resync failed")
			}
		}),
	)
	if err != nil {
		panic(err)
	}

	s.Start()

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", config.ServicePort)))
}
