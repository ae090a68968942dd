// Package server assembles the gin router: middleware chain, customer
// storefront routes, the JWT-gated seller admin, and ambient
// endpoints.
package server

import (
	"grosirku-be/internal/config"
	"grosirku-be/internal/handlers"
	"grosirku-be/internal/logger"
	"grosirku-be/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const loginPath = "/api/admin/login"

type Server struct {
	cfg    *config.Config
	router *gin.Engine
}

func New(cfg *config.Config, h *handlers.Handlers) *Server {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.RequestIDMiddleware())
	router.Use(logger.AccessLogMiddleware())
	router.Use(middleware.RateLimit(loginPath))

	s := &Server{cfg: cfg, router: router}
	s.setupRoutes(h)
	return s
}

func (s *Server) setupRoutes(h *handlers.Handlers) {
	s.router.GET("/health", handlers.HealthCheck)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.router.Static("/static/uploads", s.cfg.UploadDir)

	api := s.router.Group("/api")
	api.Use(middleware.Session())
	{
		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProduct)
		api.GET("/banners", h.ListBanners)

		api.POST("/cart/add", h.AddToCart)
		api.POST("/cart/update", h.UpdateCartItem)
		api.POST("/cart/remove", h.RemoveCartItem)
		api.GET("/cart", h.ViewCart)
		api.GET("/cart/count", h.CartCount)

		api.GET("/pickup/slots", h.PickupSlots)
		api.GET("/pickup/suggested-date", h.SuggestedPickupDate)

		api.POST("/checkout", h.Checkout)
		api.GET("/orders/:id", h.GetOrder)
		api.GET("/orders/:id/receipt", h.DownloadReceipt)
	}

	s.router.POST(loginPath, h.Login)

	admin := s.router.Group("/api/admin")
	admin.Use(middleware.SellerAuth(s.cfg.JWTSecret))
	{
		admin.GET("/products", h.AdminListProducts)
		admin.POST("/products", h.CreateProduct)
		admin.PUT("/products/:id", h.UpdateProduct)
		admin.DELETE("/products/:id", h.DeleteProduct)
		admin.POST("/products/:id/out-of-stock", h.MarkOutOfStock)

		admin.GET("/banners", h.AdminListBanners)
		admin.POST("/banners", h.CreateBanner)
		admin.PUT("/banners/:id", h.UpdateBanner)
		admin.DELETE("/banners/:id", h.DeleteBanner)

		admin.GET("/orders", h.AdminListOrders)
		admin.POST("/orders/:id/status", h.UpdateOrderStatus)
		admin.POST("/orders/:id/cancel", h.CancelOrder)
		admin.DELETE("/orders/:id", h.DeleteOrder)

		admin.GET("/dashboard", h.Dashboard)
	}
}

// Router exposes the engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Run() error {
	addr := ":" + s.cfg.AppPort
	logger.L().Info("starting server", zap.String("addr", addr))
	return s.router.Run(addr)
}
