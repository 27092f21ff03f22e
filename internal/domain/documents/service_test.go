package documents

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"taxsite/internal/storage/blob"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func at(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
	return &t
}

func seededStore() *blob.MemoryStore {
	s := blob.NewMemoryStore("https://blob.test/docs")
	s.Put("leads/2021/jane-example.com/old.pdf", 10, at(2021, 3, 1))
	s.Put("leads/2024/jane-example.com/new.pdf", 20, at(2024, 5, 1))
	s.Put("leads/2024/jane-example.com/undated.txt", 5, nil)
	s.Put("leads/2023/jane-example.com/mid.png", 30, at(2023, 1, 1))
	s.Put("leads/2024/bob-example.com/w2.pdf", 40, at(2024, 2, 1))
	s.Put("leads/2024/Bob@Example.com/scan.jpg", 50, at(2024, 6, 1))
	s.Put("leads/2024/jane-example.com.au/other.pdf", 60, at(2024, 7, 1))
	s.Put("leads/misc/readme.txt", 1, nil)
	s.Put("leads/2024/orphan.pdf", 1, nil)
	s.Put("archive/2024/jane-example.com/x.pdf", 1, nil)
	return s
}

func newService(store blob.Store) *Service {
	s := NewService(store, 2020)
	s.now = func() time.Time { return time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC) }
	return s
}

func names(items []blob.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestPrefixes(t *testing.T) {
	s := newService(nil)
	assert.Equal(t, []string{
		"leads/2020/jane-example.com/",
		"leads/2021/jane-example.com/",
		"leads/2022/jane-example.com/",
		"leads/2023/jane-example.com/",
		"leads/2024/jane-example.com/",
	}, s.Prefixes("Jane@Example.com"))
}

func TestListForEmail_NewestFirstAcrossYears(t *testing.T) {
	s := newService(seededStore())

	items, err := s.ListForEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"leads/2024/jane-example.com/new.pdf",
		"leads/2023/jane-example.com/mid.png",
		"leads/2021/jane-example.com/old.pdf",
		"leads/2024/jane-example.com/undated.txt",
	}, names(items))
}

func TestListForEmail_DoesNotMatchLongerEmails(t *testing.T) {
	s := newService(seededStore())

	items, err := s.ListForEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.NotContains(t, names(items), "leads/2024/jane-example.com.au/other.pdf")
}

func TestListForEmail_NotConfigured(t *testing.T) {
	_, err := newService(nil).ListForEmail(context.Background(), "a@b.c")
	assert.ErrorIs(t, err, blob.ErrNotConfigured)
}

type failingStore struct{ blob.Store }

func (failingStore) ListByPrefix(context.Context, string) ([]blob.Item, error) {
	return nil, errors.New("boom")
}

func TestListForEmail_PropagatesErrors(t *testing.T) {
	_, err := newService(failingStore{}).ListForEmail(context.Background(), "a@b.c")
	assert.EqualError(t, err, "boom")
}

func TestBrowseAll_Groups(t *testing.T) {
	groups, err := newService(seededStore()).BrowseAll(context.Background())
	require.NoError(t, err)

	require.Len(t, groups, 3)
	assert.Equal(t, "bob-example.com", groups[0].Email)
	assert.Equal(t, []string{
		"leads/2024/Bob@Example.com/scan.jpg",
		"leads/2024/bob-example.com/w2.pdf",
	}, names(groups[0].Files))

	assert.Equal(t, "jane-example.com", groups[1].Email)
	assert.Len(t, groups[1].Files, 4)
	assert.Equal(t, "leads/2024/jane-example.com/new.pdf", groups[1].Files[0].Name)

	assert.Equal(t, "jane-example.com.au", groups[2].Email)
	assert.Equal(t, 7, FileCount(groups))
}

func TestFilterGroups(t *testing.T) {
	groups, err := newService(seededStore()).BrowseAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, groups, FilterGroups(groups, "  "))

	byEmail := FilterGroups(groups, "BOB")
	require.Len(t, byEmail, 1)
	assert.Len(t, byEmail[0].Files, 2)

	byFile := FilterGroups(groups, ".PNG")
	require.Len(t, byFile, 1)
	assert.Equal(t, "jane-example.com", byFile[0].Email)
	assert.Equal(t, []string{"leads/2023/jane-example.com/mid.png"}, names(byFile[0].Files))

	// "2024" appears only in paths, not in base names or emails.
	assert.Empty(t, FilterGroups(groups, "2024"))
}
