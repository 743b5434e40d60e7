package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/internship-matcher/internal/repository"
	"github.com/jonathan/internship-matcher/internal/schemas"
	"github.com/jonathan/internship-matcher/internal/types"
)

func TestLoad_ValidCatalog(t *testing.T) {
	postings, err := Load(filepath.Join("testdata", "catalog.json"))
	require.NoError(t, err)
	require.Len(t, postings, 2)

	first := postings[0]
	assert.Equal(t, "int_001", first.ID)
	assert.Equal(t, []string{"Excel", "Hindi"}, first.RequiredSkills, "skills should be deduplicated")
	assert.Equal(t, []string{"Excel", "Hindi"}, first.Tags)
	coords, ok := first.Location.Coordinates()
	require.True(t, ok)
	assert.Equal(t, 28.6139, coords.Lat)

	second := postings[1]
	assert.Equal(t, []string{"Survey"}, second.Tags, "explicit tags are kept")
	_, ok = second.Location.Coordinates()
	assert.False(t, ok)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read catalog file")
}

func TestLoad_DuplicateIDs(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "duplicate_ids.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate intern_id: dup")
}

func TestParse_SchemaViolation(t *testing.T) {
	_, err := Parse([]byte(`[{"intern_id":"x","title":"t"}]`))
	require.Error(t, err)
	var ve *schemas.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestDefaultTags(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, DefaultTags([]string{"A", "B", "C", "D"}))
	assert.Equal(t, []string{"A"}, DefaultTags([]string{"A"}))
	assert.Empty(t, DefaultTags(nil))
}

func TestCatalog_AllAndFind(t *testing.T) {
	ctx := context.Background()
	static := []types.InternshipPosting{
		{ID: "int_001", Title: "Static One"},
		{ID: "int_002", Title: "Static Two"},
	}
	store := repository.NewMemoryStore()
	require.NoError(t, store.CreatePosting(ctx, &types.InternshipPosting{ID: "rec_1", Title: "Posted", RecruiterID: "r1"}))
	require.NoError(t, store.CreatePosting(ctx, &types.InternshipPosting{ID: "int_001", Title: "Shadow", RecruiterID: "r1"}))

	c := New(static, store)

	all, err := c.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "int_001", all[0].ID)
	assert.Equal(t, "Static One", all[0].Title)
	assert.Equal(t, "rec_1", all[2].ID)

	found, err := c.Find(ctx, "rec_1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Posted", found.Title)

	found, err = c.Find(ctx, "int_002")
	require.NoError(t, err)
	assert.Equal(t, "Static Two", found.Title)

	found, err = c.Find(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, found)

	assert.True(t, c.IsStatic("int_001"))
	assert.False(t, c.IsStatic("rec_1"))
}

func TestCatalog_NilStore(t *testing.T) {
	c := New([]types.InternshipPosting{{ID: "only"}}, nil)

	all, err := c.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)

	found, err := c.Find(context.Background(), "other")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestCatalog_StaticIsCopy(t *testing.T) {
	c := New([]types.InternshipPosting{{ID: "a", Title: "Original"}}, nil)
	s := c.Static()
	s[0].Title = "Changed"
	assert.Equal(t, "Original", c.Static()[0].Title)
}
