package blob

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	azblobpkg "github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blockblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
)

const (
	DefaultMaxPages = 1000
	listPageSize    = 5000
)

// AzureStore talks to one Azure Blob container through a container SAS URL.
// Retries are disabled so every upload is exactly one PUT.
type AzureStore struct {
	client   *container.Client
	baseURL  string
	maxPages int
	now      func() time.Time
	suffix   func() string
}

type azureSettings struct {
	maxPages   int
	now        func() time.Time
	suffix     func() string
	httpClient *http.Client
}

type Option func(*azureSettings)

// WithMaxPages caps how many list pages one ListByPrefix call may fetch.
func WithMaxPages(n int) Option {
	return func(s *azureSettings) {
		if n > 0 {
			s.maxPages = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *azureSettings) { s.now = now }
}

func WithSuffix(suffix func() string) Option {
	return func(s *azureSettings) { s.suffix = suffix }
}

func WithHTTPClient(c *http.Client) Option {
	return func(s *azureSettings) { s.httpClient = c }
}

// NewAzureStore builds a store for the container addressed by containerSASURL
// (https://{account}.blob.core.windows.net/{container}?{sas}).
func NewAzureStore(containerSASURL string, opts ...Option) (*AzureStore, error) {
	containerSASURL = strings.TrimSpace(containerSASURL)
	if containerSASURL == "" {
		return nil, ErrNotConfigured
	}
	baseURL, _, err := splitSASURL(containerSASURL)
	if err != nil {
		return nil, err
	}

	s := azureSettings{maxPages: DefaultMaxPages, now: time.Now, suffix: RandomSuffix}
	for _, opt := range opts {
		opt(&s)
	}

	clientOpts := &container.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Retry: policy.RetryOptions{MaxRetries: -1},
		},
	}
	if s.httpClient != nil {
		clientOpts.Transport = s.httpClient
	}

	client, err := container.NewClientWithNoCredential(containerSASURL, clientOpts)
	if err != nil {
		return nil, err
	}

	return &AzureStore{
		client:   client,
		baseURL:  baseURL,
		maxPages: s.maxPages,
		now:      s.now,
		suffix:   s.suffix,
	}, nil
}

func splitSASURL(raw string) (baseURL, sas string, err error) {
	base, query, _ := strings.Cut(raw, "?")
	if query == "" {
		return "", "", ErrInvalidSASURL
	}
	return strings.TrimSuffix(base, "/"), query, nil
}

func (s *AzureStore) PublicURL(name string) string {
	return s.baseURL + "/" + url.PathEscape(name)
}

func (s *AzureStore) ListByPrefix(ctx context.Context, prefix string) ([]Item, error) {
	effective := strings.TrimLeft(prefix, "/")

	pager := s.client.NewListBlobsFlatPager(&container.ListBlobsFlatOptions{
		Prefix:     to.Ptr(effective),
		MaxResults: to.Ptr(int32(listPageSize)),
		Include:    container.ListBlobsInclude{Metadata: true},
	})

	var items []Item
	pages := 0
	for pager.More() {
		if pages == s.maxPages {
			return nil, ErrTooManyPages
		}
		resp, err := pager.NextPage(ctx)
		if err != nil {
			return nil, &ListError{Prefix: effective, StatusCode: statusOf(err), Err: err}
		}
		pages++

		if resp.Segment == nil {
			continue
		}
		for _, b := range resp.Segment.BlobItems {
			if b == nil || b.Name == nil || *b.Name == "" {
				continue
			}
			if !strings.HasPrefix(*b.Name, effective) {
				continue
			}
			item := Item{Name: *b.Name, URL: s.PublicURL(*b.Name)}
			if b.Properties != nil {
				item.Size = b.Properties.ContentLength
				item.LastModified = b.Properties.LastModified
			}
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *AzureStore) Upload(ctx context.Context, files []File, prefix string) (UploadResult, error) {
	var res UploadResult
	if len(files) == 0 {
		return res, nil
	}

	for _, f := range files {
		name := ObjectName(prefix, s.now(), s.suffix(), f.Name)
		contentType := f.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		_, err := s.client.NewBlockBlobClient(name).UploadBuffer(ctx, f.Content, &blockblob.UploadBufferOptions{
			HTTPHeaders: &azblobpkg.HTTPHeaders{BlobContentType: to.Ptr(contentType)},
		})
		if err != nil {
			return UploadResult{}, &UploadError{Name: f.Name, StatusCode: statusOf(err), Err: err}
		}

		res.URLs = append(res.URLs, s.PublicURL(name))
		res.Names = append(res.Names, name)
	}
	return res, nil
}

func statusOf(err error) int {
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode
	}
	return 0
}
