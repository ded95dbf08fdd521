package app

import (
	"paydesk/internal/company"
	"paydesk/internal/messaging/kafka"
	"paydesk/internal/payrollapi"
	"paydesk/internal/salary"
	"paydesk/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func registerModules(
	router *gin.Engine,
	store *session.Store,
	gateway *payrollapi.Client,
	rdb *redis.Client,
	publisher *kafka.Publisher,
) {
	// --- Services ---
	companyService := company.NewService(gateway, rdb)
	sessionService := session.NewService(store, companyService, gateway)
	salaryService := salary.NewServiceWithPublisher(store, gateway, publisher)

	// --- Handlers ---
	companyHandler := company.NewHandler(companyService)
	sessionHandler := session.NewHandler(sessionService)
	salaryHandler := salary.NewHandlerWithRedis(salaryService, rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		company.RegisterRoutes(api, companyHandler)
		session.RegisterRoutes(api, sessionHandler)
		salary.RegisterRoutes(api, salaryHandler, rdb)
	}
}
