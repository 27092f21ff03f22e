package contact

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/create-contact", h.CreateContact) // POST /api/create-contact
}
