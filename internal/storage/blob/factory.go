package blob

import (
	"taxsite/internal/config"
)

// MemoryBaseURL is where the API serves blobs of the in-memory backend.
const MemoryBaseURL = "/blobs"

// FromConfig builds the configured store. It returns ErrNotConfigured when
// the Azure backend is selected but no SAS URL can be assembled.
func FromConfig(cfg config.BlobConfig, opts ...Option) (Store, error) {
	if cfg.Backend == "memory" {
		return NewMemoryStore(MemoryBaseURL), nil
	}
	sasURL := cfg.ContainerSASURL()
	if sasURL == "" {
		return nil, ErrNotConfigured
	}
	opts = append([]Option{WithMaxPages(cfg.MaxListPages)}, opts...)
	return NewAzureStore(sasURL, opts...)
}
