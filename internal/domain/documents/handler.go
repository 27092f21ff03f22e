package documents

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taxsite/internal/pkg/response"
	"taxsite/internal/pkg/sanitize"
	"taxsite/internal/storage/blob"
)

type Handler struct {
	service *Service
	log     *zap.Logger
}

func NewHandler(service *Service, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{service: service, log: log}
}

/* ---------- PAGES ---------- */

// SearchPage shows the email search form; a submitted email redirects to its listing.
func (h *Handler) SearchPage(c *gin.Context) {
	if email := strings.TrimSpace(c.Query("email")); email != "" {
		c.Redirect(http.StatusSeeOther, "/documents/"+url.PathEscape(sanitize.PathSegment(email)))
		return
	}
	c.HTML(http.StatusOK, "documents_search.html", gin.H{"Title": "Document Portal"})
}

// EmailPage lists one email's documents.
func (h *Handler) EmailPage(c *gin.Context) {
	seg := sanitize.PathSegment(c.Param("email"))
	items, err := h.service.ListForEmail(c.Request.Context(), seg)
	data := gin.H{"Title": "Documents for " + seg, "Email": seg, "Items": items}
	if err != nil {
		h.log.Error("list documents failed", zap.String("email", seg), zap.Error(err))
		data["Error"] = errorMessage(err)
	}
	c.HTML(http.StatusOK, "documents_email.html", data)
}

// AllPage browses every document grouped by email, filtered by ?q=.
func (h *Handler) AllPage(c *gin.Context) {
	q := c.Query("q")
	groups, err := h.service.BrowseAll(c.Request.Context())
	data := gin.H{"Title": "All Documents by Email", "Query": q}
	if err != nil {
		h.log.Error("browse documents failed", zap.Error(err))
		data["Error"] = errorMessage(err)
	} else {
		groups = FilterGroups(groups, q)
		data["Groups"] = groups
		data["FileCount"] = FileCount(groups)
		data["Total"] = len(groups)
	}
	c.HTML(http.StatusOK, "documents_all.html", data)
}

/* ---------- JSON ---------- */

// ListGroups returns every document grouped by email.
// @Summary Browse documents
// @Tags Documents
// @Produce json
// @Param q query string false "Filter by email or file name"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/documents [get]
func (h *Handler) ListGroups(c *gin.Context) {
	groups, err := h.service.BrowseAll(c.Request.Context())
	if err != nil {
		h.log.Error("browse documents failed", zap.Error(err))
		h.fail(c, err)
		return
	}
	groups = FilterGroups(groups, c.Query("q"))
	response.Success(c, http.StatusOK, gin.H{"groups": groups, "files": FileCount(groups)})
}

// ListForEmail returns one email's documents, newest first.
// @Summary List documents for an email
// @Tags Documents
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/documents/{email} [get]
func (h *Handler) ListForEmail(c *gin.Context) {
	seg := sanitize.PathSegment(c.Param("email"))
	items, err := h.service.ListForEmail(c.Request.Context(), seg)
	if err != nil {
		h.log.Error("list documents failed", zap.String("email", seg), zap.Error(err))
		h.fail(c, err)
		return
	}
	if items == nil {
		items = []blob.Item{}
	}
	response.Success(c, http.StatusOK, gin.H{"email": seg, "items": items})
}

func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, blob.ErrNotConfigured) {
		response.Error(c, http.StatusServiceUnavailable, "NOT_CONFIGURED", errorMessage(err))
		return
	}
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", errorMessage(err))
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, blob.ErrNotConfigured):
		return "Document storage is not configured"
	case errors.Is(err, blob.ErrTooManyPages):
		return "Too many documents to list"
	default:
		return "Failed to load documents"
	}
}
