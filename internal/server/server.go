package server

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/jimothydawson/phoebe-fund/internal/handler"
	"github.com/jimothydawson/phoebe-fund/internal/service"
)

type Server struct {
	echo               *echo.Echo
	checkoutHandler    *handler.CheckoutHandler
	webhookHandler     *handler.WebhookHandler
	subscribeHandler   *handler.SubscribeHandler
	orderHandler       *handler.OrderHandler
	fundraisingHandler *handler.FundraisingHandler
}

func NewServer(
	checkoutService service.CheckoutService,
	webhookService service.WebhookService,
	subscriberService service.SubscriberService,
	orderService service.OrderService,
	fundraisingService service.FundraisingService,
	logger zerolog.Logger,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogMethod: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Err(v.Error).
				Msg("request")
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:               e,
		checkoutHandler:    handler.NewCheckoutHandler(checkoutService),
		webhookHandler:     handler.NewWebhookHandler(webhookService),
		subscribeHandler:   handler.NewSubscribeHandler(subscriberService),
		orderHandler:       handler.NewOrderHandler(orderService),
		fundraisingHandler: handler.NewFundraisingHandler(fundraisingService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	api.POST("/checkout/session", s.checkoutHandler.CreateSession)
	api.POST("/subscribe", s.subscribeHandler.Subscribe)
	api.GET("/orders", s.orderHandler.ListOrders)
	api.GET("/fundraising", s.fundraisingHandler.GetTotals)

	// -------- stripe webhooks --------
	api.POST("/stripe/webhook", s.webhookHandler.HandleStripeWebhook)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
