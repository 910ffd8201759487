package repository

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/AjayKumbham/ctrl-plus-blog/internal/models"
	"github.com/AjayKumbham/ctrl-plus-blog/internal/utils"
	"github.com/stretchr/testify/assert"
)

// takenSet backs the conflict check with an in-memory slug table.
func takenSet(slugs ...string) (map[string]bool, func(slug string) (bool, error)) {
	set := map[string]bool{}
	for _, s := range slugs {
		set[s] = true
	}
	return set, func(slug string) (bool, error) {
		return set[slug], nil
	}
}

func TestUniquifySlug(t *testing.T) {
	t.Run("unclaimed candidate is returned as is", func(t *testing.T) {
		_, taken := takenSet()
		slug, err := uniquifySlug("hello-world", taken)

		assert.NoError(t, err)
		assert.Equal(t, "hello-world", slug)
	})

	t.Run("collision appends -1", func(t *testing.T) {
		_, taken := takenSet("hello-world")
		slug, err := uniquifySlug("hello-world", taken)

		assert.NoError(t, err)
		assert.Equal(t, "hello-world-1", slug)
	})

	t.Run("suffixes always extend the original candidate", func(t *testing.T) {
		_, taken := takenSet("hello-world", "hello-world-1", "hello-world-2")
		slug, err := uniquifySlug("hello-world", taken)

		assert.NoError(t, err)
		assert.Equal(t, "hello-world-3", slug)
	})

	t.Run("sequential creates yield -1, -2, -3 in creation order", func(t *testing.T) {
		set, taken := takenSet()

		var got []string
		for i := 0; i < 4; i++ {
			slug, err := uniquifySlug(utils.GenerateSlug("Hello World!"), taken)
			assert.NoError(t, err)
			set[slug] = true
			got = append(got, slug)
		}

		assert.Equal(t, []string{"hello-world", "hello-world-1", "hello-world-2", "hello-world-3"}, got)
	})

	t.Run("terminates against a dense table", func(t *testing.T) {
		set, taken := takenSet("post")
		for i := 1; i <= 50; i++ {
			set[fmt.Sprintf("post-%d", i)] = true
		}

		slug, err := uniquifySlug("post", taken)

		assert.NoError(t, err)
		assert.Equal(t, "post-51", slug)
	})

	t.Run("probe errors propagate", func(t *testing.T) {
		probeErr := errors.New("database error")
		slug, err := uniquifySlug("hello-world", func(string) (bool, error) {
			return false, probeErr
		})

		assert.ErrorIs(t, err, probeErr)
		assert.Empty(t, slug)
	})
}

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		name     string
		search   string
		expected string
	}{
		{"plain text untouched", "hello world", "hello world"},
		{"percent literalized", "100%", `100\%`},
		{"underscore literalized", "snake_case", `snake\_case`},
		{"backslash literalized first", `a\%b`, `a\\\%b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, escapeLike(tt.search))
		})
	}
}

func strPtr(s string) *string       { return &s }
func boolPtr(b bool) *bool          { return &b }
func timePtr(t time.Time) *time.Time { return &t }

func TestClampPagination(t *testing.T) {
	tests := []struct {
		name            string
		page, perPage   int
		wantPage        int
		wantPerPage     int
	}{
		{"defaults pass through", 1, 10, 1, 10},
		{"zero page clamped", 0, 10, 1, 10},
		{"negative page clamped", -5, 10, 1, 10},
		{"zero per_page defaulted", 3, 0, 3, 10},
		{"negative per_page defaulted", 3, -1, 3, 10},
		{"oversized per_page capped", 1, 5000, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, perPage := ClampPagination(tt.page, tt.perPage)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPerPage, perPage)
		})
	}
}

func TestBuildPatchUpdates(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	scheduled := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)

	t.Run("only present fields are included", func(t *testing.T) {
		patch := &models.UpdateBlogPostRequest{
			Content: strPtr("new body"),
			Tags:    &[]string{"go", "gin"},
		}
		updates := buildPatchUpdates(patch, &models.BlogPost{}, now)

		assert.Len(t, updates, 2)
		assert.Equal(t, "new body", updates["content"])
		assert.NotContains(t, updates, "title")
		assert.NotContains(t, updates, "excerpt")
	})

	t.Run("empty patch yields no updates", func(t *testing.T) {
		patch := &models.UpdateBlogPostRequest{}
		assert.True(t, patch.Empty())
		assert.Empty(t, buildPatchUpdates(patch, &models.BlogPost{}, now))
	})

	t.Run("scheduled date alone does not count as a field", func(t *testing.T) {
		patch := &models.UpdateBlogPostRequest{ScheduledDate: timePtr(scheduled)}
		assert.True(t, patch.Empty())
	})

	t.Run("first publish stamps published_date with now", func(t *testing.T) {
		patch := &models.UpdateBlogPostRequest{IsPublished: boolPtr(true)}
		updates := buildPatchUpdates(patch, &models.BlogPost{PublishedDate: nil}, now)

		assert.Equal(t, true, updates["is_published"])
		assert.Equal(t, now, updates["published_date"])
	})

	t.Run("first publish honors scheduled date", func(t *testing.T) {
		patch := &models.UpdateBlogPostRequest{
			IsPublished:   boolPtr(true),
			ScheduledDate: timePtr(scheduled),
		}
		updates := buildPatchUpdates(patch, &models.BlogPost{}, now)

		assert.Equal(t, scheduled, updates["published_date"])
	})

	t.Run("re-publishing never touches an existing published_date", func(t *testing.T) {
		already := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
		patch := &models.UpdateBlogPostRequest{IsPublished: boolPtr(true)}
		updates := buildPatchUpdates(patch, &models.BlogPost{PublishedDate: &already}, now)

		assert.Equal(t, true, updates["is_published"])
		assert.NotContains(t, updates, "published_date")
	})

	t.Run("unpublishing keeps published_date", func(t *testing.T) {
		already := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
		patch := &models.UpdateBlogPostRequest{IsPublished: boolPtr(false)}
		updates := buildPatchUpdates(patch, &models.BlogPost{PublishedDate: &already}, now)

		assert.Equal(t, false, updates["is_published"])
		assert.NotContains(t, updates, "published_date")
	})
}
