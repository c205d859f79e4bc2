package router

import (
	"time"

	"shopledger/internal/config"
	"shopledger/internal/handler"
	"shopledger/internal/middleware"
	"shopledger/internal/repository"
	"shopledger/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires repositories, services and handlers onto a Gin engine.
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	duesRepo := repository.NewDuesRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)

	inventorySvc := service.NewInventoryService(productRepo)
	saleSvc := service.NewSaleService(saleRepo, inventorySvc)
	duesSvc := service.NewDuesService(saleRepo, duesRepo)
	customerSvc := service.NewCustomerService(customerRepo, duesSvc)
	expenseSvc := service.NewExpenseService(expenseRepo)
	reportSvc := service.NewReportService(saleRepo)

	products := handler.NewProductHandler(inventorySvc)
	sales := handler.NewSaleHandler(saleSvc)
	dues := handler.NewDuesHandler(duesSvc)
	customers := handler.NewCustomerHandler(customerSvc)
	expenses := handler.NewExpenseHandler(expenseSvc)
	reports := handler.NewReportHandler(reportSvc)
	health := handler.NewHealthHandler(db)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(300, time.Minute))

	r.GET("/health", health.Check)

	api := r.Group("/api/v1")
	{
		p := api.Group("/products")
		{
			p.POST("", products.Create)
			p.GET("", products.List)
			p.GET("/low-stock", products.LowStock)
			p.GET("/:id", products.Get)
			p.PUT("/:id", products.Update)
			p.DELETE("/:id", products.Delete)
			p.POST("/:id/transfer", products.Transfer)
			p.POST("/:id/purchase", products.Purchase)
		}

		s := api.Group("/sales")
		{
			s.POST("", sales.Create)
			s.GET("", sales.List)
		}

		d := api.Group("/dues")
		{
			d.GET("", dues.List)
			d.GET("/gross", dues.Gross)
			d.GET("/payments", dues.PaymentHistory)
			d.POST("/payments", dues.AddPayment)
			d.GET("/:name", dues.Balance)
		}

		cu := api.Group("/customers")
		{
			cu.POST("", customers.Create)
			cu.GET("", customers.List)
			cu.GET("/:id", customers.Get)
			cu.PUT("/:id", customers.Update)
			cu.DELETE("/:id", customers.Delete)
		}

		e := api.Group("/expenses")
		{
			e.POST("", expenses.Create)
			e.GET("", expenses.List)
			e.GET("/total", expenses.Total)
			e.GET("/summary", expenses.Summary)
			e.DELETE("/:id", expenses.Delete)
		}

		rep := api.Group("/reports")
		{
			rep.GET("/daily", reports.Daily)
			rep.GET("/monthly", reports.Monthly)
		}
	}

	return r
}
