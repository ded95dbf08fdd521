package salary

import (
	"paydesk/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb ...*redis.Client) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	sessions := r.Group("/sessions")
	{
		if redisClient != nil {
			sessions.POST("/:id/calculations", middleware.Idempotency(redisClient), handler.Calculate)
		} else {
			sessions.POST("/:id/calculations", handler.Calculate)
		}
		sessions.GET("/:id/payslips/:employeeId", handler.Document)
		sessions.PUT("/:id/sheet/cells", handler.SheetCell)
		sessions.GET("/:id/exports/csv", handler.ExportCSV)
		sessions.GET("/:id/exports/payslips/pdf", handler.ExportBatchPDF)
		sessions.GET("/:id/exports/payslips/:employeeId/pdf", handler.ExportPDF)
		sessions.GET("/:id/exports/sheet", handler.ExportSheet)
	}
}
