// Package catalog merges the static internship list with recruiter-posted internships.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/jonathan/internship-matcher/internal/repository"
	"github.com/jonathan/internship-matcher/internal/schemas"
	"github.com/jonathan/internship-matcher/internal/skills"
	"github.com/jonathan/internship-matcher/internal/types"
)

// Load reads a static catalog file, validates it against the embedded catalog schema
// and normalizes each posting's skill lists.
func Load(path string) ([]types.InternshipPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	postings, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}

	log.Printf("[catalog] Loaded %d postings from %s", len(postings), path)
	return postings, nil
}

// Parse validates and decodes catalog JSON.
func Parse(data []byte) ([]types.InternshipPosting, error) {
	if err := schemas.ValidateDocument(schemas.KindCatalog, data); err != nil {
		return nil, err
	}

	var postings []types.InternshipPosting
	if err := json.Unmarshal(data, &postings); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	seen := make(map[string]bool, len(postings))
	for i := range postings {
		p := &postings[i]
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate intern_id: %s", p.ID)
		}
		seen[p.ID] = true

		p.RequiredSkills = skills.Dedupe(p.RequiredSkills)
		if len(p.Tags) == 0 {
			p.Tags = DefaultTags(p.RequiredSkills)
		}
	}

	return postings, nil
}

// DefaultTags returns the first three skills, used as display tags.
func DefaultTags(requiredSkills []string) []string {
	n := min(len(requiredSkills), 3)
	tags := make([]string, n)
	copy(tags, requiredSkills[:n])
	return tags
}

// Catalog serves the union of static and recruiter-posted internships.
type Catalog struct {
	static []types.InternshipPosting
	index  map[string]int
	store  repository.PostingStore
}

// New creates a catalog over static postings and a store of recruiter postings.
// store may be nil, in which case only the static postings are served.
func New(static []types.InternshipPosting, store repository.PostingStore) *Catalog {
	index := make(map[string]int, len(static))
	for i, p := range static {
		index[p.ID] = i
	}
	return &Catalog{static: static, index: index, store: store}
}

// Static returns a copy of the static postings.
func (c *Catalog) Static() []types.InternshipPosting {
	out := make([]types.InternshipPosting, len(c.static))
	copy(out, c.static)
	return out
}

// IsStatic reports whether id belongs to the static catalog.
func (c *Catalog) IsStatic(id string) bool {
	_, ok := c.index[id]
	return ok
}

// All returns the static postings followed by recruiter postings in the order they were posted.
func (c *Catalog) All(ctx context.Context) ([]types.InternshipPosting, error) {
	out := c.Static()
	if c.store == nil {
		return out, nil
	}

	posted, err := c.store.ListPostings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recruiter postings: %w", err)
	}
	for _, p := range posted {
		// Static entries win on an id clash
		if c.IsStatic(p.ID) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Find returns the posting with the given id from either source, or nil when absent.
func (c *Catalog) Find(ctx context.Context, id string) (*types.InternshipPosting, error) {
	if i, ok := c.index[id]; ok {
		p := c.static[i]
		return &p, nil
	}
	if c.store == nil {
		return nil, nil
	}
	return c.store.GetPosting(ctx, id)
}
