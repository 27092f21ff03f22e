package blob

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryStore keeps blobs in process memory. It backs BLOB_BACKEND=memory for
// local development and serves as the store in handler tests.
type MemoryStore struct {
	mu      sync.Mutex
	baseURL string
	blobs   map[string]memoryBlob
	now     func() time.Time
	suffix  func() string
}

type memoryBlob struct {
	item        Item
	contentType string
	content     []byte
}

func NewMemoryStore(baseURL string) *MemoryStore {
	return &MemoryStore{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		blobs:   make(map[string]memoryBlob),
		now:     time.Now,
		suffix:  RandomSuffix,
	}
}

// Put stores a blob under an exact name, for seeding.
func (m *MemoryStore) Put(name string, size int64, modified *time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sz := size
	m.blobs[name] = memoryBlob{item: Item{Name: name, URL: m.PublicURL(name), Size: &sz, LastModified: modified}}
}

func (m *MemoryStore) PublicURL(name string) string {
	return m.baseURL + "/" + name
}

func (m *MemoryStore) ListByPrefix(_ context.Context, prefix string) ([]Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	effective := strings.TrimLeft(prefix, "/")
	var items []Item
	for name, b := range m.blobs {
		if strings.HasPrefix(name, effective) {
			items = append(items, b.item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (m *MemoryStore) Upload(_ context.Context, files []File, prefix string) (UploadResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var res UploadResult
	for _, f := range files {
		at := m.now()
		name := ObjectName(prefix, at, m.suffix(), f.Name)
		size := int64(len(f.Content))
		m.blobs[name] = memoryBlob{
			item:        Item{Name: name, URL: m.PublicURL(name), Size: &size, LastModified: &at},
			contentType: f.ContentType,
			content:     append([]byte(nil), f.Content...),
		}
		res.URLs = append(res.URLs, m.PublicURL(name))
		res.Names = append(res.Names, name)
	}
	return res, nil
}

// Get returns a stored blob with its content type.
func (m *MemoryStore) Get(name string) (File, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.blobs[name]
	if !ok {
		return File{}, false
	}
	return File{Name: name, ContentType: b.contentType, Content: b.content}, true
}
