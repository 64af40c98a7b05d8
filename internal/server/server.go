package server

import (
	"context"
	"net/http"
	"time"

	"github.com/agrimarket/marketplace-backend/internal/handler"
	"github.com/agrimarket/marketplace-backend/internal/repository"
	"github.com/agrimarket/marketplace-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

type Server struct {
	e  *echo.Echo
	db *gorm.DB

	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	paymentRepo repository.PaymentRepository
	disputeRepo repository.DisputeRepository
	gradRepo    repository.GraduateRepository
	configRepo  repository.ConfigRepository
	auditRepo   repository.AuditLogRepository
}

// New builds the echo app and the full handler graph. db may be nil; the
// server starts serving immediately and reports database: disconnected on
// /api/health until SetDB attaches a connection.
func New(db *gorm.DB) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: false,
	}))

	s := &Server{
		e:           e,
		db:          db,
		userRepo:    repository.NewUserRepository(db),
		productRepo: repository.NewProductRepository(db),
		paymentRepo: repository.NewPaymentRepository(db),
		disputeRepo: repository.NewDisputeRepository(db),
		gradRepo:    repository.NewGraduateRepository(db),
		configRepo:  repository.NewConfigRepository(db),
		auditRepo:   repository.NewAuditLogRepository(db),
	}

	authHandler := handler.NewAuthHandler(service.NewAuthService(s.userRepo))
	userHandler := handler.NewUserHandler(service.NewUserService(s.userRepo, s.auditRepo))
	productHandler := handler.NewProductHandler(service.NewProductService(s.productRepo, s.auditRepo))
	paymentHandler := handler.NewPaymentHandler(service.NewPaymentService(s.paymentRepo, s.productRepo, s.auditRepo))
	disputeHandler := handler.NewDisputeHandler(service.NewDisputeService(s.disputeRepo, s.auditRepo))
	gradHandler := handler.NewGraduateHandler(service.NewGraduateService(s.gradRepo))
	platformHandler := handler.NewPlatformHandler(service.NewPlatformService(s.configRepo, s.userRepo, s.auditRepo))
	auditHandler := handler.NewAuditHandler(service.NewAuditService(s.auditRepo))

	api := e.Group("/api")
	api.GET("/health", s.health)

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	api.GET("/users", userHandler.List)
	api.DELETE("/users/:id", userHandler.Delete)

	api.GET("/products", productHandler.List)
	api.POST("/products", productHandler.Create)
	api.DELETE("/products/:id", productHandler.Delete)

	api.GET("/payments", paymentHandler.List)
	api.POST("/payments", paymentHandler.Submit)
	api.PATCH("/payments/:id/verify", paymentHandler.Verify)

	api.GET("/disputes", disputeHandler.List)
	api.POST("/disputes", disputeHandler.Create)
	api.PATCH("/disputes/:id", disputeHandler.Update)

	api.GET("/graduates", gradHandler.List)
	api.POST("/graduates", gradHandler.Upsert)

	api.GET("/config", platformHandler.GetConfig)
	api.PATCH("/config", platformHandler.UpdateConfig)

	api.GET("/audit-logs", auditHandler.List)

	return s
}

func (s *Server) health(c echo.Context) error {
	state := "disconnected"
	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			ctx, cancel := context.WithTimeout(c.Request().Context(), time.Second)
			defer cancel()
			if sqlDB.PingContext(ctx) == nil {
				state = "connected"
			}
		}
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status":   "ok",
		"database": state,
	})
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

// SetDB attaches the late-connected database to every repository.
func (s *Server) SetDB(db *gorm.DB) {
	s.db = db
	s.userRepo.SetDB(db)
	s.productRepo.SetDB(db)
	s.paymentRepo.SetDB(db)
	s.disputeRepo.SetDB(db)
	s.gradRepo.SetDB(db)
	s.configRepo.SetDB(db)
	s.auditRepo.SetDB(db)
}
