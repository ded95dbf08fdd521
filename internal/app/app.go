package app

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"paydesk/internal/messaging/kafka"
	"paydesk/internal/middleware"
	"paydesk/internal/payrollapi"
	"paydesk/internal/session"
	"paydesk/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const defaultSessionTTL = 2 * time.Hour

// BuildApp wires infrastructure and registers the workflow modules. Redis
// and kafka are optional: without them the service still runs, minus
// idempotency replay, company-list caching and audit events.
func BuildApp(ctx context.Context, router *gin.Engine) error {
	baseURL := os.Getenv("PAYROLL_API_BASE_URL")
	if baseURL == "" {
		return errors.New("PAYROLL_API_BASE_URL is required")
	}
	gateway := payrollapi.NewClient(strings.TrimRight(baseURL, "/"))

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		zap.L().Warn("redis unavailable, continuing without idempotency cache", zap.Error(err))
		rdb = nil
	}

	var publisher *kafka.Publisher
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		publisher = kafka.NewPublisher(strings.Split(brokers, ","))
	}

	store := session.NewStore(defaultSessionTTL)
	store.StartSweeper(ctx, 10*time.Minute)

	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(rate.Limit(50), 100))

	registerModules(router, store, gateway, rdb, publisher)

	return nil
}
