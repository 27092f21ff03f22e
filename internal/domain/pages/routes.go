package pages

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.Index)
	r.GET("/tax", h.Tax) // GET /tax?prepType=...&display=month
}
