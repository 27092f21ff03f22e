package pricing

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/estimate", h.Estimate) // POST /api/estimate
}
