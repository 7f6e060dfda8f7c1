package app

import (
	"database/sql"

	"sahl/internal/access"
	"sahl/internal/auth"
	"sahl/internal/bonus"
	"sahl/internal/branch"
	"sahl/internal/dailyclosing"
	"sahl/internal/expense"
	"sahl/internal/messaging/kafka"
	"sahl/internal/productrequest"
	"sahl/internal/request"
	"sahl/internal/revenue"
	"sahl/internal/shared/counter"
	"sahl/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	accessRepo := access.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	bonusRepo := bonus.NewRepository(gormDB)
	branchRepo := branch.NewRepository(gormDB)
	closingRepo := dailyclosing.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	expenseRepo := expense.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	productRequestRepo := productrequest.NewRepository(gormDB)
	requestRepo := request.NewRepository(gormDB)
	revenueRepo := revenue.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)

	// --- Access Core ---
	enforcer, err := access.NewEnforcer()
	if err != nil {
		return err
	}
	accessService := access.NewService(accessRepo, enforcer)

	// --- Services ---
	authService := auth.NewService(authRepo)
	bonusService := bonus.NewService(bonusRepo, revenueRepo, rdb)
	branchService := branch.NewService(branchRepo)
	closingService := dailyclosing.NewService(closingRepo, revenueRepo, expenseRepo)
	expenseService := expense.NewService(expenseRepo)
	productRequestService := productrequest.NewService(productRequestRepo)
	requestService := request.NewService(requestRepo)
	revenueService := revenue.NewService(db, revenueRepo, counterRepo, outboxRepo)
	userService := user.NewService(userRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	bonusHandler := bonus.NewHandler(bonusService)
	branchHandler := branch.NewHandler(branchService)
	closingHandler := dailyclosing.NewHandler(closingService)
	expenseHandler := expense.NewHandler(expenseService)
	productRequestHandler := productrequest.NewHandler(productRequestService)
	requestHandler := request.NewHandler(requestService)
	revenueHandler := revenue.NewHandler(revenueService)
	userHandler := user.NewHandler(userService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		bonus.RegisterRoutes(api, bonusHandler, accessService)
		branch.RegisterRoutes(api, branchHandler, accessService)
		dailyclosing.RegisterRoutes(api, closingHandler, accessService)
		expense.RegisterRoutes(api, expenseHandler, accessService)
		productrequest.RegisterRoutes(api, productRequestHandler, accessService)
		request.RegisterRoutes(api, requestHandler, accessService)
		revenue.RegisterRoutes(api, revenueHandler, accessService, rdb)
		user.RegisterRoutes(api, userHandler, accessService)
	}

	return nil
}
