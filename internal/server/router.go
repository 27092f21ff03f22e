// Package server assembles the gin engine and runs it.
package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taxsite/internal/config"
	"taxsite/internal/crm"
	"taxsite/internal/domain/contact"
	"taxsite/internal/domain/documents"
	"taxsite/internal/domain/lead"
	"taxsite/internal/domain/pages"
	"taxsite/internal/domain/pricing"
	"taxsite/internal/middleware"
	"taxsite/internal/pkg/response"
	"taxsite/internal/storage/blob"
	"taxsite/internal/web"
	"taxsite/internal/webhook"
)

// Deps are the collaborators built in main.
type Deps struct {
	Config *config.Config
	Log    *zap.Logger
	// Store is nil when blob storage is not configured.
	Store blob.Store
	// Leads is nil without a database.
	Leads      lead.Repository
	HTTPClient *http.Client
}

// NewRouter wires every route onto a fresh engine.
func NewRouter(d Deps) *gin.Engine {
	cfg := d.Config
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	client := d.HTTPClient
	if client == nil {
		client = &http.Client{}
	}

	r := gin.New()
	r.MaxMultipartMemory = cfg.MaxUploadMemoryMB << 20
	r.SetHTMLTemplate(web.Templates())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.ErrorLogger(log))
	r.Use(middleware.NoIndex())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	provider := crm.Select(cfg.CRM, client, d.Leads, log)
	log.Info("crm provider selected", zap.String("provider", provider.Name()))

	pricingHandler := pricing.NewHandler()
	contactHandler := contact.NewHandler(
		contact.NewService(provider, crm.ReportedProvider(cfg.CRM), d.Store,
			webhook.NewForwarder(cfg.Webhook.URL, client, log), log),
		log,
	)
	documentsHandler := documents.NewHandler(documents.NewService(d.Store, cfg.Documents.StartYear), log)
	pagesHandler := pages.NewHandler(cfg.TemplatePath, log)

	pagesHandler.RegisterRoutes(r)
	documentsHandler.RegisterPages(r)

	api := r.Group("/api")
	{
		pricingHandler.RegisterRoutes(api)
		contactHandler.RegisterRoutes(api)
		documentsHandler.RegisterRoutes(api)
	}

	if mem, ok := d.Store.(*blob.MemoryStore); ok {
		r.GET(blob.MemoryBaseURL+"/*name", serveMemoryBlob(mem))
	}

	return r
}

func serveMemoryBlob(mem *blob.MemoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		f, ok := mem.Get(strings.TrimPrefix(c.Param("name"), "/"))
		if !ok {
			c.Status(http.StatusNotFound)
			return
		}
		ct := f.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		c.Data(http.StatusOK, ct, f.Content)
	}
}
