package blob

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxsite/internal/config"
)

func TestFromConfig(t *testing.T) {
	store, err := FromConfig(config.BlobConfig{Backend: "memory"})
	require.NoError(t, err)
	mem, ok := store.(*MemoryStore)
	require.True(t, ok)
	assert.Equal(t, "/blobs/leads/a.pdf", mem.PublicURL("leads/a.pdf"))

	_, err = FromConfig(config.BlobConfig{Backend: "azure"})
	assert.ErrorIs(t, err, ErrNotConfigured)

	store, err = FromConfig(config.BlobConfig{Backend: "azure", Account: "acct", Container: "docs", SASToken: "sv=1&sig=x", MaxListPages: 5})
	require.NoError(t, err)
	az, ok := store.(*AzureStore)
	require.True(t, ok)
	assert.Equal(t, 5, az.maxPages)
	assert.Equal(t, "https://acct.blob.core.windows.net/docs/x", az.PublicURL("x"))
}

func TestMemoryStore_Get(t *testing.T) {
	m := NewMemoryStore("/blobs")
	res, err := m.Upload(context.Background(), []File{{Name: "a.txt", ContentType: "text/plain", Content: []byte("hi")}}, "leads/2025/01")
	require.NoError(t, err)

	f, ok := m.Get(res.Names[0])
	require.True(t, ok)
	assert.Equal(t, "text/plain", f.ContentType)
	assert.Equal(t, "hi", string(f.Content))

	_, ok = m.Get("missing")
	assert.False(t, ok)
}
