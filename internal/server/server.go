package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/REBCDR07/marketconnect/internal/apperr"
	"github.com/REBCDR07/marketconnect/internal/dto"
	"github.com/REBCDR07/marketconnect/internal/handler"
	"github.com/REBCDR07/marketconnect/internal/middleware"
	"github.com/REBCDR07/marketconnect/internal/model"
	"github.com/REBCDR07/marketconnect/internal/service"
)

type Server struct {
	echo                *echo.Echo
	jwtSecret           string
	authHandler         *handler.AuthHandler
	applicationHandler  *handler.ApplicationHandler
	productHandler      *handler.ProductHandler
	orderHandler        *handler.OrderHandler
	notificationHandler *handler.NotificationHandler
	adminHandler        *handler.AdminHandler
}

func NewServer(
	jwtSecret string,
	logger *zap.Logger,
	authService service.AuthService,
	applicationService service.ApplicationService,
	catalogService service.CatalogService,
	orderService service.OrderService,
	notificationService service.NotificationService,
	profileService service.AdminProfileService,
	statsService service.StatsService,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = newErrorHandler(logger)

	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Error(v.Error),
			)
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	s := &Server{
		echo:                e,
		jwtSecret:           jwtSecret,
		authHandler:         handler.NewAuthHandler(authService),
		applicationHandler:  handler.NewApplicationHandler(applicationService),
		productHandler:      handler.NewProductHandler(catalogService),
		orderHandler:        handler.NewOrderHandler(orderService),
		notificationHandler: handler.NewNotificationHandler(notificationService),
		adminHandler:        handler.NewAdminHandler(profileService, statsService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Time: time.Now()})
	})

	// -------- public --------
	authGroup := api.Group("/auth")
	authGroup.POST("/signup", s.authHandler.SignUp)
	authGroup.POST("/signin", s.authHandler.SignIn)
	authGroup.POST("/admin-login", s.authHandler.AdminLogin)

	api.POST("/applications", s.applicationHandler.Submit)

	api.GET("/products", s.productHandler.ListAll)
	api.GET("/products/:productId", s.productHandler.Get)
	api.GET("/sellers/top", s.adminHandler.TopSellers)
	api.GET("/sellers/:id", s.productHandler.GetSeller)
	api.GET("/sellers/:id/products", s.productHandler.ListBySeller)

	// -------- authenticated --------
	authed := api.Group("", middleware.Auth(s.jwtSecret))

	authed.GET("/auth/me", s.authHandler.Me)

	authed.POST("/orders", s.orderHandler.Create)
	authed.GET("/orders/:id", s.orderHandler.Get)
	authed.GET("/buyers/me/orders", s.orderHandler.ListForBuyer)
	authed.POST("/orders/:id/payment-proof", s.orderHandler.SubmitPaymentProof)
	authed.PATCH("/orders/:id/status", s.orderHandler.SetStatus)

	authed.PUT("/sellers/:id", s.productHandler.UpdateSellerProfile)
	authed.GET("/sellers/:id/orders", s.orderHandler.ListForSeller)
	authed.GET("/sellers/:id/stats", s.adminHandler.SellerStats)
	authed.POST("/sellers/:id/products", s.productHandler.Add)
	authed.PUT("/sellers/:id/products/:productId", s.productHandler.Update)
	authed.DELETE("/sellers/:id/products/:productId", s.productHandler.Delete)
	authed.POST("/products/suggest-description", s.productHandler.SuggestDescription,
		middleware.RequireRole(model.RoleSeller, model.RoleAdmin))

	authed.GET("/notifications", s.notificationHandler.ListUnread)
	authed.POST("/notifications/mark-read", s.notificationHandler.MarkAllRead)

	// -------- admin --------
	admin := api.Group("/admin", middleware.Auth(s.jwtSecret), middleware.RequireRole(model.RoleAdmin))
	admin.GET("/applications", s.applicationHandler.ListPending)
	admin.POST("/applications/:id/approve", s.applicationHandler.Approve)
	admin.POST("/applications/:id/reject", s.applicationHandler.Reject)
	admin.GET("/stats", s.adminHandler.Stats)
	admin.GET("/profile", s.adminHandler.GetProfile)
	admin.PUT("/profile", s.adminHandler.SaveProfile)
}

// newErrorHandler maps the apperr taxonomy onto HTTP statuses; anything
// unclassified is a 500 with the detail kept out of the response body.
func newErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "internal server error"

		switch apperr.KindOf(err) {
		case apperr.KindNotFound:
			status, message = http.StatusNotFound, err.Error()
		case apperr.KindDuplicate:
			status, message = http.StatusConflict, err.Error()
		case apperr.KindAuth:
			status, message = http.StatusUnauthorized, err.Error()
		case apperr.KindValidation:
			status, message = http.StatusBadRequest, err.Error()
		case apperr.KindStorage:
			logger.Error("storage failure", zap.Error(err), zap.String("path", c.Path()))
		default:
			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				status = httpErr.Code
				message = messageOf(httpErr)
			} else {
				logger.Error("unhandled error", zap.Error(err), zap.String("path", c.Path()))
			}
		}

		if err := c.JSON(status, map[string]string{"error": message}); err != nil {
			logger.Error("write error response", zap.Error(err))
		}
	}
}

func messageOf(httpErr *echo.HTTPError) string {
	if msg, ok := httpErr.Message.(string); ok {
		return msg
	}
	return http.StatusText(httpErr.Code)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}

// Echo exposes the router for handler-level tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
