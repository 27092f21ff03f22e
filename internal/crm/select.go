package crm

import (
	"net/http"

	"go.uber.org/zap"

	"taxsite/internal/config"
	"taxsite/internal/domain/lead"
)

// Select picks the provider for one submission. An explicit CRM_PROVIDER wins;
// otherwise HubSpot is used when its token is set, then Pipedrive. With no
// usable credentials the contact is captured locally.
func Select(cfg config.CRMConfig, httpClient *http.Client, leads lead.Repository, log *zap.Logger) Provider {
	override := cfg.Provider
	switch {
	case cfg.HubSpotToken != "" && (override == "" || override == ProviderHubSpot):
		return NewHubSpot(cfg.HubSpotToken, cfg.HubSpotBaseURL, httpClient)
	case cfg.PipedriveToken != "" && (override == "" || override == ProviderPipedrive):
		return NewPipedrive(cfg.PipedriveToken, cfg.PipedriveBaseURL, httpClient)
	default:
		return NewLocal(leads, log)
	}
}

// InferProvider names the provider implied by the configured credentials,
// or "" when none is configured.
func InferProvider(cfg config.CRMConfig) string {
	switch {
	case cfg.HubSpotToken != "":
		return ProviderHubSpot
	case cfg.PipedriveToken != "":
		return ProviderPipedrive
	default:
		return ""
	}
}

// ReportedProvider is the provider name echoed to callers: the explicit
// override when set, else the inferred one.
func ReportedProvider(cfg config.CRMConfig) string {
	if cfg.Provider != "" {
		return cfg.Provider
	}
	return InferProvider(cfg)
}
