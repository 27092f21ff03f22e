// Package documents lists the files leads uploaded, by email.
package documents

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"
	"time"

	"taxsite/internal/pkg/sanitize"
	"taxsite/internal/storage/blob"
)

var leadPath = regexp.MustCompile(`^leads/\d{4}/[^/]+/.+`)

// Group is every file stored for one email segment.
type Group struct {
	Email string      `json:"email"`
	Files []blob.Item `json:"files"`
}

type Service struct {
	store     blob.Store
	startYear int
	now       func() time.Time
}

// NewService builds the portal over store; a nil store makes every listing
// return blob.ErrNotConfigured.
func NewService(store blob.Store, startYear int) *Service {
	return &Service{store: store, startYear: startYear, now: time.Now}
}

// Prefixes returns the per-year prefixes searched for an email.
func (s *Service) Prefixes(email string) []string {
	seg := sanitize.PathSegment(email)
	current := s.now().UTC().Year()
	prefixes := make([]string, 0, max(current-s.startYear+1, 0))
	for y := s.startYear; y <= current; y++ {
		prefixes = append(prefixes, fmt.Sprintf("leads/%d/%s/", y, seg))
	}
	return prefixes
}

// ListForEmail returns the email's files across all years, newest first.
func (s *Service) ListForEmail(ctx context.Context, email string) ([]blob.Item, error) {
	if s.store == nil {
		return nil, blob.ErrNotConfigured
	}
	var all []blob.Item
	for _, prefix := range s.Prefixes(email) {
		items, err := s.store.ListByPrefix(ctx, prefix)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
	}
	sortNewestFirst(all)
	return all, nil
}

// BrowseAll groups every lead file by its email segment. Groups are sorted
// by email; files newest first. Paths outside leads/<year>/<email>/ are skipped.
func (s *Service) BrowseAll(ctx context.Context) ([]Group, error) {
	if s.store == nil {
		return nil, blob.ErrNotConfigured
	}
	items, err := s.store.ListByPrefix(ctx, "leads/")
	if err != nil {
		return nil, err
	}

	byEmail := make(map[string]*Group)
	for _, it := range items {
		if !leadPath.MatchString(it.Name) {
			continue
		}
		seg := sanitize.PathSegment(strings.Split(it.Name, "/")[2])
		g, ok := byEmail[seg]
		if !ok {
			g = &Group{Email: seg}
			byEmail[seg] = g
		}
		g.Files = append(g.Files, it)
	}

	groups := make([]Group, 0, len(byEmail))
	for _, g := range byEmail {
		sortNewestFirst(g.Files)
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Email < groups[j].Email })
	return groups, nil
}

// FilterGroups narrows groups by q, case-insensitively. A group whose email
// matches keeps all its files; otherwise only files whose base name matches
// are kept. Groups left empty are dropped.
func FilterGroups(groups []Group, q string) []Group {
	term := strings.ToLower(strings.TrimSpace(q))
	if term == "" {
		return groups
	}
	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		if strings.Contains(strings.ToLower(g.Email), term) {
			out = append(out, g)
			continue
		}
		var files []blob.Item
		for _, f := range g.Files {
			if strings.Contains(strings.ToLower(path.Base(f.Name)), term) {
				files = append(files, f)
			}
		}
		if len(files) > 0 {
			out = append(out, Group{Email: g.Email, Files: files})
		}
	}
	return out
}

// FileCount totals the files across groups.
func FileCount(groups []Group) int {
	n := 0
	for _, g := range groups {
		n += len(g.Files)
	}
	return n
}

func sortNewestFirst(items []blob.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ModTime().After(items[j].ModTime())
	})
}
