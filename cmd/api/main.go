package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"bengkel/internal/config"
	"bengkel/internal/database"
	"bengkel/internal/middleware"
	"bengkel/internal/modules/auth"
	"bengkel/internal/modules/customer"
	"bengkel/internal/modules/employee"
	"bengkel/internal/modules/inventory"
	"bengkel/internal/modules/method"
	"bengkel/internal/modules/order"
	"bengkel/internal/modules/payment"
	"bengkel/internal/modules/report"
	"bengkel/internal/modules/supplier"
	"bengkel/internal/modules/system"
	"bengkel/internal/pkg/gemini"
	"bengkel/internal/pkg/idgen"
	jwtsvc "bengkel/internal/pkg/jwt"
	"bengkel/internal/repository"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	if err := repository.Migrate(db); err != nil {
		log.WithError(err).Fatal("migration failed")
	}
	if err := database.Seed(context.Background(), db); err != nil {
		log.WithError(err).Fatal("seeding failed")
	}

	ids, err := idgen.New(cfg.NodeID)
	if err != nil {
		log.WithError(err).Fatal("id generator init failed")
	}

	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	partRepo := repository.NewPartRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	methodRepo := repository.NewPaymentMethodRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.TokenTTL)
	ai := gemini.New(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeout)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	customerHandler := customer.NewHandler(customer.NewService(customerRepo, ids))
	inventoryHandler := inventory.NewHandler(inventory.NewService(partRepo, ids))
	supplierHandler := supplier.NewHandler(supplier.NewService(supplierRepo, partRepo, ids))
	employeeHandler := employee.NewHandler(employee.NewService(employeeRepo, ids))
	methodHandler := method.NewHandler(method.NewService(methodRepo, ids))
	orderHandler := order.NewHandler(order.NewService(
		orderRepo,
		partRepo,
		customerRepo,
		employeeRepo,
		paymentRepo,
		methodRepo,
		ai,
		ids,
	))
	paymentHandler := payment.NewHandler(payment.NewService(paymentRepo, orderRepo, customerRepo, employeeRepo, partRepo))
	reportHandler := report.NewHandler(report.NewService(orderRepo, paymentRepo, partRepo, customerRepo))
	systemHandler := system.NewHandler(system.NewService(db))

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Authenticate(j))
		{
			authHandler.RegisterProtectedRoutes(protected)

			dashboard := protected.Group("/", middleware.Require("dashboard"))
			reportHandler.RegisterDashboard(dashboard)

			orders := protected.Group("/", middleware.Require("orders"))
			orderHandler.RegisterRoutes(orders)

			parts := protected.Group("/", middleware.Require("parts"))
			inventoryHandler.RegisterRoutes(parts)

			customers := protected.Group("/", middleware.Require("customers"))
			customerHandler.RegisterRoutes(customers)

			payments := protected.Group("/", middleware.Require("payments"))
			paymentHandler.RegisterRoutes(payments)

			methods := protected.Group("/", middleware.Require("payment-methods"))
			methodHandler.RegisterRoutes(methods)

			suppliers := protected.Group("/", middleware.Require("suppliers"))
			supplierHandler.RegisterRoutes(suppliers)

			employees := protected.Group("/", middleware.Require("employees"))
			employeeHandler.RegisterRoutes(employees)

			reports := protected.Group("/", middleware.Require("reports"))
			reportHandler.RegisterReports(reports)

			sys := protected.Group("/", middleware.Require("system"))
			systemHandler.RegisterRoutes(sys)
		}
	}

	log.WithField("addr", cfg.Addr).Info("starting server")
	if err := r.Run(cfg.Addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
