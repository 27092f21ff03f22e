package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	defaultWebhookURL = "https://webhook.latenode.com/41426/dev/a84ac0f8-6356-4aea-a2e1-212ffdf5ab6d"
	defaultPipedrive  = "https://api.pipedrive.com/v1"
	defaultHubSpot    = "https://api.hubapi.com"
)

// Config is the runtime configuration of the site, read from the environment.
type Config struct {
	AppEnv             string   `env:"APP_ENV" envDefault:"dev"`
	Port               int      `env:"PORT" envDefault:"8080"`
	LogLevel           string   `env:"LOG_LEVEL" envDefault:"info"`
	TemplatePath       string   `env:"TEMPLATE_PATH" envDefault:"template.html"`
	DatabaseURL        string   `env:"DATABASE_URL"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	MaxUploadMemoryMB  int64    `env:"MAX_UPLOAD_MEMORY_MB" envDefault:"32"`

	CRM       CRMConfig
	Blob      BlobConfig
	Webhook   WebhookConfig
	Documents DocumentsConfig
}

type CRMConfig struct {
	Provider         string `env:"CRM_PROVIDER"`
	HubSpotToken     string `env:"HUBSPOT_ACCESS_TOKEN"`
	HubSpotBaseURL   string `env:"HUBSPOT_BASE_URL" envDefault:"https://api.hubapi.com"`
	PipedriveToken   string `env:"PIPEDRIVE_API_TOKEN"`
	PipedriveBaseURL string `env:"PIPEDRIVE_BASE_URL" envDefault:"https://api.pipedrive.com/v1"`
}

type BlobConfig struct {
	Backend      string `env:"BLOB_BACKEND" envDefault:"azure"`
	SASURL       string `env:"AZURE_BLOB_CONTAINER_SAS_URL"`
	Account      string `env:"AZURE_STORAGE_ACCOUNT"`
	Container    string `env:"AZURE_STORAGE_CONTAINER"`
	SASToken     string `env:"AZURE_CONTAINER_SAS_TOKEN"`
	MaxListPages int    `env:"BLOB_LIST_MAX_PAGES" envDefault:"1000"`
}

type WebhookConfig struct {
	URL string `env:"WEBHOOK_URL" envDefault:"https://webhook.latenode.com/41426/dev/a84ac0f8-6356-4aea-a2e1-212ffdf5ab6d"`
}

type DocumentsConfig struct {
	StartYear int `env:"DOCUMENTS_START_YEAR" envDefault:"2020"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	normalize(cfg)
	if err := validateConfig(cfg, time.Now().UTC()); err != nil {
		return nil, err
	}
	return cfg, nil
}

func normalize(cfg *Config) {
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))
	if cfg.AppEnv == "" {
		cfg.AppEnv = "dev"
	}
	cfg.CRM.Provider = strings.ToLower(strings.TrimSpace(cfg.CRM.Provider))
	cfg.Blob.Backend = strings.ToLower(strings.TrimSpace(cfg.Blob.Backend))
	if cfg.Blob.Backend == "" {
		cfg.Blob.Backend = "azure"
	}
	if strings.TrimSpace(cfg.CRM.HubSpotBaseURL) == "" {
		cfg.CRM.HubSpotBaseURL = defaultHubSpot
	}
	if strings.TrimSpace(cfg.CRM.PipedriveBaseURL) == "" {
		cfg.CRM.PipedriveBaseURL = defaultPipedrive
	}
	if strings.TrimSpace(cfg.Webhook.URL) == "" {
		cfg.Webhook.URL = defaultWebhookURL
	}
	origins := cfg.CORSAllowedOrigins[:0]
	for _, o := range cfg.CORSAllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	cfg.CORSAllowedOrigins = origins
}

func validateConfig(cfg *Config, now time.Time) error {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}
	switch cfg.CRM.Provider {
	case "", "hubspot", "pipedrive", "local":
	default:
		return fmt.Errorf("CRM_PROVIDER must be one of: hubspot, pipedrive, local")
	}
	switch cfg.Blob.Backend {
	case "azure", "memory":
	default:
		return fmt.Errorf("BLOB_BACKEND must be one of: azure, memory")
	}
	if cfg.Blob.MaxListPages <= 0 {
		return fmt.Errorf("BLOB_LIST_MAX_PAGES must be > 0")
	}
	if cfg.Documents.StartYear > now.Year() {
		return fmt.Errorf("DOCUMENTS_START_YEAR must not be after %d", now.Year())
	}
	if cfg.MaxUploadMemoryMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MEMORY_MB must be > 0")
	}
	return nil
}

// IsProdLike reports whether the app runs in a production-like environment.
func (c *Config) IsProdLike() bool {
	env := strings.ToLower(strings.TrimSpace(c.AppEnv))
	return env == "prod" || env == "production" || env == "release"
}

// ContainerSASURL resolves the container SAS URL from either configuration
// shape: the full URL, or account + container + token. A leading "?" on the
// token is dropped. Returns "" when neither shape is complete.
func (b BlobConfig) ContainerSASURL() string {
	if u := strings.TrimSpace(b.SASURL); u != "" {
		return u
	}
	account := strings.TrimSpace(b.Account)
	container := strings.TrimSpace(b.Container)
	token := strings.TrimLeft(strings.TrimSpace(b.SASToken), "?")
	if account == "" || container == "" || token == "" {
		return ""
	}
	return fmt.Sprintf("https://%s.blob.core.windows.net/%s?%s", account, container, token)
}

// Configured reports whether blob storage can be reached.
func (b BlobConfig) Configured() bool {
	return b.Backend == "memory" || b.ContainerSASURL() != ""
}
