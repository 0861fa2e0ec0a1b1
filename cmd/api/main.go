package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "expense-approval-service/internal/adapter/http"
	appmw "expense-approval-service/internal/adapter/middleware"
	"expense-approval-service/internal/adapter/repository/mysql"
	"expense-approval-service/internal/config"
	"expense-approval-service/internal/infrastructure/cache"
	"expense-approval-service/internal/infrastructure/countries"
	"expense-approval-service/internal/infrastructure/db"
	"expense-approval-service/internal/infrastructure/exchange"
	adminUC "expense-approval-service/internal/usecase/admin"
	approvalUC "expense-approval-service/internal/usecase/approval"
	authUC "expense-approval-service/internal/usecase/auth"
	expenseUC "expense-approval-service/internal/usecase/expense"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		logger.Fatal("mysql connect failed", zap.Error(err))
	}
	logger.Info("mysql connected", zap.String("db", cfg.MySQLDB))

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		logger.Fatal("redis connect failed", zap.Error(err))
	}
	logger.Info("redis connected", zap.String("addr", cfg.RedisAddr))

	// repositories
	users := mysql.NewUserRepository(gdb)
	companies := mysql.NewCompanyRepository(gdb)
	expenses := mysql.NewExpenseRepository(gdb)
	resets := mysql.NewPasswordResetRepository(gdb)
	rules := mysql.NewApprovalRuleRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	// currency gateway: external client behind a redis rate-table cache
	rateSource := exchange.NewCachedSource(exchange.NewClient(cfg.ExchangeBaseURL), rdb, cfg.RateCacheTTL)
	converter := exchange.NewConverter(rateSource, cfg.ExchangeTimeout, logger)
	countryClient := countries.NewClient(cfg.CountriesBaseURL)

	// usecases
	authUsecase := authUC.NewUsecase(users, companies, resets, countryClient, cfg.JWTSecret, cfg.TokenTTL, logger)
	expenseUsecase := expenseUC.NewUsecase(users, expenses)
	approvalUsecase := approvalUC.NewUsecase(tx, users, expenses, companies, converter, logger)
	adminUsecase := adminUC.NewUsecase(users, expenses, resets, rules, logger)

	// handlers
	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(authUsecase)
	expenseH := httpadp.NewExpenseHandler(expenseUsecase)
	approvalH := httpadp.NewApprovalHandler(approvalUsecase)
	adminH := httpadp.NewAdminHandler(adminUsecase)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	auth := e.Group("/api/auth")
	auth.POST("/signup", authH.Signup)
	auth.POST("/signin", authH.Signin)
	auth.POST("/set-password", authH.SetPassword)
	auth.POST("/forgot-password", authH.ForgotPassword)

	protect := appmw.Protect(users, cfg.JWTSecret)
	idemp := appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, logger)

	exp := e.Group("/api/expenses", protect, idemp)
	exp.POST("", expenseH.Create)
	exp.GET("", expenseH.ListOwn)

	admin := e.Group("/api/admin", protect, appmw.AdminOrManager, idemp)
	admin.GET("/approvals", approvalH.Queue)
	admin.PUT("/approvals/:id", approvalH.Decide)
	admin.GET("/team-expenses", approvalH.TeamExpenses)
	admin.GET("/all-expenses", approvalH.CompanyExpenses)
	admin.POST("/employees", adminH.CreateEmployee)
	admin.GET("/employees", adminH.ListEmployees)
	admin.PUT("/employees/:id", adminH.UpdateEmployee)
	admin.DELETE("/employees/:id", adminH.DeleteEmployee)
	admin.POST("/employees/:id/reset-password", adminH.ResetPassword)
	admin.GET("/password-resets", adminH.ListPasswordResets)
	admin.DELETE("/password-resets/:id", adminH.ResolvePasswordReset)
	admin.POST("/approval-rules", adminH.CreateRule)
	admin.GET("/approval-rules", adminH.ListRules)

	addr := ":" + cfg.AppPort
	logger.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
