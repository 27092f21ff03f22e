package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	unsetenv(t, "APP_ENV", "PORT", "CRM_PROVIDER", "WEBHOOK_URL", "TEMPLATE_PATH",
		"PIPEDRIVE_BASE_URL", "HUBSPOT_BASE_URL", "DOCUMENTS_START_YEAR", "BLOB_LIST_MAX_PAGES", "BLOB_BACKEND")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "template.html", cfg.TemplatePath)
	assert.Equal(t, defaultWebhookURL, cfg.Webhook.URL)
	assert.Equal(t, defaultPipedrive, cfg.CRM.PipedriveBaseURL)
	assert.Equal(t, defaultHubSpot, cfg.CRM.HubSpotBaseURL)
	assert.Equal(t, 2020, cfg.Documents.StartYear)
	assert.Equal(t, 1000, cfg.Blob.MaxListPages)
	assert.Equal(t, "azure", cfg.Blob.Backend)
	assert.False(t, cfg.IsProdLike())
}

func TestLoad_ProviderIsLowercased(t *testing.T) {
	t.Setenv("CRM_PROVIDER", " HubSpot ")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "hubspot", cfg.CRM.Provider)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoad_RejectsUnknownProvider(t *testing.T) {
	t.Setenv("CRM_PROVIDER", "salesforce")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CRM_PROVIDER")
}

func TestValidateConfig(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	valid := func() *Config {
		return &Config{
			Port:              8080,
			MaxUploadMemoryMB: 32,
			Blob:              BlobConfig{Backend: "azure", MaxListPages: 10},
			Documents:         DocumentsConfig{StartYear: 2020},
		}
	}

	require.NoError(t, validateConfig(valid(), now))

	cfg := valid()
	cfg.Port = 0
	assert.Error(t, validateConfig(cfg, now))

	cfg = valid()
	cfg.Blob.MaxListPages = 0
	assert.Error(t, validateConfig(cfg, now))

	cfg = valid()
	cfg.Blob.Backend = "s3"
	assert.Error(t, validateConfig(cfg, now))

	cfg = valid()
	cfg.Documents.StartYear = 2026
	assert.Error(t, validateConfig(cfg, now))
}

func TestBlobConfig_ContainerSASURL(t *testing.T) {
	full := BlobConfig{SASURL: "https://acct.blob.core.windows.net/docs?sv=1&sig=x"}
	assert.Equal(t, "https://acct.blob.core.windows.net/docs?sv=1&sig=x", full.ContainerSASURL())
	assert.True(t, full.Configured())

	parts := BlobConfig{Account: "acct", Container: "docs", SASToken: "??sv=1&sig=x"}
	assert.Equal(t, "https://acct.blob.core.windows.net/docs?sv=1&sig=x", parts.ContainerSASURL())

	partial := BlobConfig{Backend: "azure", Account: "acct", Container: "docs"}
	assert.Equal(t, "", partial.ContainerSASURL())
	assert.False(t, partial.Configured())

	assert.True(t, BlobConfig{Backend: "memory"}.Configured())
}

func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
