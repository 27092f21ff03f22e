package documents

import "github.com/gin-gonic/gin"

// RegisterPages mounts the HTML portal.
func (h *Handler) RegisterPages(r gin.IRoutes) {
	r.GET("/documents", h.SearchPage)       // GET /documents?email=...
	r.GET("/documents/all", h.AllPage)      // GET /documents/all?q=...
	r.GET("/documents/:email", h.EmailPage) // GET /documents/:email
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/documents", h.ListGroups)          // GET /api/documents?q=...
	r.GET("/documents/:email", h.ListForEmail) // GET /api/documents/:email
}
