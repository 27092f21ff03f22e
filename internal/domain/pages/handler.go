// Package pages serves the landing page and the fee calculator.
package pages

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taxsite/internal/domain/pricing"
)

type Handler struct {
	templatePath string
	log          *zap.Logger
}

func NewHandler(templatePath string, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{templatePath: templatePath, log: log}
}

// Index serves the landing page file, re-read on every request so edits
// show up without a restart.
func (h *Handler) Index(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	html, err := os.ReadFile(h.templatePath)
	if err != nil {
		h.log.Error("landing template unreadable", zap.String("path", h.templatePath), zap.Error(err))
		c.String(http.StatusInternalServerError, "Template not found")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// Tax renders the calculator for the answers in the query string.
func (h *Handler) Tax(c *gin.Context) {
	d := pricing.DefaultDetails()
	if err := c.ShouldBindQuery(&d); err != nil {
		h.log.Warn("tax query ignored", zap.Error(err))
		d = pricing.DefaultDetails()
	}

	mode := pricing.DisplayMode(c.Query("display"))
	if mode != pricing.DisplayMonth {
		mode = pricing.DisplayYear
	}

	toggle := func(m pricing.DisplayMode) string {
		v := c.Request.URL.Query()
		v.Set("display", string(m))
		return "/tax?" + v.Encode()
	}

	q := pricing.Calculate(d)
	c.HTML(http.StatusOK, "tax.html", gin.H{
		"Title":      "Tax Preparation Estimate",
		"Questions":  questions(d),
		"Quote":      q,
		"Display":    pricing.Display(q.Estimate, mode),
		"Info":       pricing.CategoryInfo(q.LeadCategory),
		"Monthly":    mode == pricing.DisplayMonth,
		"YearURL":    toggle(pricing.DisplayYear),
		"MonthURL":   toggle(pricing.DisplayMonth),
		"Individual": d.PrepType == pricing.PrepIndividual || d.PrepType == pricing.PrepBoth,
		"Business":   d.PrepType == pricing.PrepBusiness || d.PrepType == pricing.PrepBoth,
	})
}
