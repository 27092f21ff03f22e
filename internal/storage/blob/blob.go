// Package blob lists and uploads lead attachments in object storage.
package blob

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotConfigured = errors.New("blob storage is not configured")
	ErrInvalidSASURL = errors.New("invalid SAS URL: missing query")
	ErrTooManyPages  = errors.New("blob listing exceeded the page limit")
)

// Item is one listed blob.
type Item struct {
	Name         string     `json:"name"`
	URL          string     `json:"url"`
	Size         *int64     `json:"size,omitempty"`
	LastModified *time.Time `json:"lastModified,omitempty"`
}

// ModTime returns LastModified, or the zero time when it is unknown.
func (i Item) ModTime() time.Time {
	if i.LastModified == nil {
		return time.Time{}
	}
	return *i.LastModified
}

// File is an attachment to upload.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// UploadResult holds parallel lists of public URLs and blob names.
type UploadResult struct {
	URLs  []string
	Names []string
}

// Store is the object storage used for lead attachments.
type Store interface {
	// ListByPrefix returns every blob whose name starts with prefix,
	// following continuation markers until the service reports none.
	ListByPrefix(ctx context.Context, prefix string) ([]Item, error)
	// Upload stores files one at a time under prefix and stops at the first failure.
	Upload(ctx context.Context, files []File, prefix string) (UploadResult, error)
	// PublicURL is the unsigned URL of a blob.
	PublicURL(name string) string
}

// UploadError reports the file that failed and the storage status, if any.
type UploadError struct {
	Name       string
	StatusCode int
	Err        error
}

func (e *UploadError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("azure upload failed (%d) for %s: %v", e.StatusCode, e.Name, e.Err)
	}
	return fmt.Sprintf("azure upload failed for %s: %v", e.Name, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// ListError reports a failed list call.
type ListError struct {
	Prefix     string
	StatusCode int
	Err        error
}

func (e *ListError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("azure list failed (%d) for prefix %q: %v", e.StatusCode, e.Prefix, e.Err)
	}
	return fmt.Sprintf("azure list failed for prefix %q: %v", e.Prefix, e.Err)
}

func (e *ListError) Unwrap() error { return e.Err }
