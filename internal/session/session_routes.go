package session

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	sessions := r.Group("/sessions")
	{
		sessions.POST("", handler.Open)
		sessions.DELETE("/:id", handler.Close)
		sessions.PUT("/:id/company", handler.SelectCompany)
		sessions.DELETE("/:id/company", handler.ClearCompany)
		sessions.PUT("/:id/month", handler.SelectMonth)
		sessions.GET("/:id/employees", handler.Employees)
	}
}
