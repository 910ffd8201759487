package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/AjayKumbham/ctrl-plus-blog/internal/models"
	"github.com/AjayKumbham/ctrl-plus-blog/internal/utils"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	categoriesCacheKey = "blog:categories"
	tagsCacheKey       = "blog:tags"
	cacheExpiration    = 30 * time.Minute

	defaultPerPage = 10
	maxPerPage     = 100

	// How many times a write is retried when the slug unique index trips
	// despite the pre-check probe (two writers racing on the same title).
	slugWriteRetries = 3
)

type BlogPostRepository interface {
	FindPublished(page, perPage int, search, category string) ([]models.BlogPost, int64, error)
	FindBySlug(slug string) (*models.BlogPost, error)
	DistinctCategories() ([]string, error)
	DistinctTags() ([]string, error)
	Create(req *models.CreateBlogPostRequest, authorID uint) (*models.BlogPost, error)
	Update(id uint, patch *models.UpdateBlogPostRequest, authorID uint) (*models.BlogPost, error)
	Delete(id uint, authorID uint) error
	FindDrafts(authorID uint, page, perPage int) ([]models.BlogPost, int64, error)
}

type blogPostRepository struct {
	db    *gorm.DB
	redis *redis.Client
	ctx   context.Context
	now   func() time.Time
}

func NewBlogPostRepository(db *gorm.DB) BlogPostRepository {
	return &blogPostRepository{
		db:    db,
		redis: nil,
		ctx:   context.Background(),
		now:   time.Now,
	}
}

func NewCachedBlogPostRepository(db *gorm.DB, redisClient *redis.Client) BlogPostRepository {
	return &blogPostRepository{
		db:    db,
		redis: redisClient,
		ctx:   context.Background(),
		now:   time.Now,
	}
}

// ClampPagination bounds page and per_page so a request can never pull an
// unbounded result set.
func ClampPagination(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

// escapeLike neutralizes the ILIKE wildcards so a search term is always a
// literal substring match; "100%" must not match everything starting "100".
var escapeLike = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace

func (r *blogPostRepository) FindPublished(page, perPage int, search, category string) ([]models.BlogPost, int64, error) {
	page, perPage = ClampPagination(page, perPage)

	query := r.db.Model(&models.BlogPost{}).Where("is_published = ?", true)
	if search != "" {
		pattern := "%" + escapeLike(search) + "%"
		query = query.Where("(title ILIKE ? OR content ILIKE ? OR excerpt ILIKE ?)", pattern, pattern, pattern)
	}
	if category != "" {
		query = query.Where("? = ANY(categories)", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.BlogPost
	err := query.
		Order("published_date DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *blogPostRepository) FindBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.Where("slug = ? AND is_published = ?", slug, true).First(&post).Error; err != nil {
		return nil, err
	}

	// Atomic increment at the storage layer; UpdateColumn keeps updated_at
	// untouched since a view is not an edit.
	err := r.db.Model(&models.BlogPost{}).
		Where("id = ?", post.ID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
	if err != nil {
		return nil, err
	}

	// The caller observes the count including their own view.
	post.ViewCount++
	return &post, nil
}

func (r *blogPostRepository) DistinctCategories() ([]string, error) {
	return r.distinctValues("categories", categoriesCacheKey)
}

func (r *blogPostRepository) DistinctTags() ([]string, error) {
	return r.distinctValues("tags", tagsCacheKey)
}

func (r *blogPostRepository) distinctValues(column, cacheKey string) ([]string, error) {
	if r.redis != nil {
		cached, err := r.redis.Get(r.ctx, cacheKey).Result()
		if err == nil {
			var values []string
			if err := json.Unmarshal([]byte(cached), &values); err == nil {
				return values, nil
			}
		}
	}

	// column is one of our own constants, never caller input.
	query := fmt.Sprintf(
		"SELECT DISTINCT unnest(%s) AS value FROM blog_posts WHERE is_published = true AND %s IS NOT NULL ORDER BY value",
		column, column,
	)

	var values []string
	if err := r.db.Raw(query).Scan(&values).Error; err != nil {
		return nil, err
	}

	filtered := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			filtered = append(filtered, v)
		}
	}

	if r.redis != nil {
		if data, err := json.Marshal(filtered); err == nil {
			if err := r.redis.Set(r.ctx, cacheKey, data, cacheExpiration).Err(); err != nil {
				log.Printf("Failed to cache %s: %v", cacheKey, err)
			}
		}
	}

	return filtered, nil
}

// uniquifySlug probes taken for an unclaimed slug, appending -1, -2, … to
// the original candidate until one is free. The monotonically increasing
// suffix guarantees termination against a finite table. This is a
// best-effort pre-check; the unique index on slug is the authoritative
// guard and write paths retry on a duplicate-key error.
func uniquifySlug(candidate string, taken func(slug string) (bool, error)) (string, error) {
	slug := candidate
	for counter := 1; ; counter++ {
		inUse, err := taken(slug)
		if err != nil {
			return "", err
		}
		if !inUse {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", candidate, counter)
	}
}

// uniqueSlug runs the probe loop against storage. excludeID skips the row
// being updated so a post keeps its own slug.
func (r *blogPostRepository) uniqueSlug(candidate string, excludeID uint) (string, error) {
	return uniquifySlug(candidate, func(slug string) (bool, error) {
		query := r.db.Model(&models.BlogPost{}).Where("slug = ?", slug)
		if excludeID != 0 {
			query = query.Where("id <> ?", excludeID)
		}

		var count int64
		if err := query.Count(&count).Error; err != nil {
			return false, err
		}
		return count > 0, nil
	})
}

func (r *blogPostRepository) Create(req *models.CreateBlogPostRequest, authorID uint) (*models.BlogPost, error) {
	base := utils.GenerateSlug(req.Title)

	var lastErr error
	for attempt := 0; attempt <= slugWriteRetries; attempt++ {
		slug, err := r.uniqueSlug(base, 0)
		if err != nil {
			return nil, err
		}

		post := &models.BlogPost{
			Title:           req.Title,
			Slug:            slug,
			Content:         req.Content,
			Excerpt:         req.Excerpt,
			FeaturedImage:   req.FeaturedImage,
			MetaDescription: req.MetaDescription,
			Categories:      pq.StringArray(req.Categories),
			Tags:            pq.StringArray(req.Tags),
			MetaKeywords:    pq.StringArray(req.MetaKeywords),
			IsPublished:     req.IsPublished,
			AuthorID:        authorID,
		}
		if req.IsPublished {
			publishedDate := r.now()
			if req.ScheduledDate != nil {
				publishedDate = *req.ScheduledDate
			}
			post.PublishedDate = &publishedDate
		}

		err = r.db.Create(post).Error
		if err == nil {
			r.invalidateEnumCache()
			return post, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		// Lost the slug race to a concurrent create; probe again.
		lastErr = err
	}

	return nil, fmt.Errorf("could not allocate a unique slug for %q: %w", req.Title, lastErr)
}

// buildPatchUpdates translates a sparse patch into a column update map.
// Slug handling stays with the caller since it needs a storage probe.
func buildPatchUpdates(patch *models.UpdateBlogPostRequest, existing *models.BlogPost, now time.Time) map[string]interface{} {
	updates := map[string]interface{}{}

	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}
	if patch.Excerpt != nil {
		updates["excerpt"] = *patch.Excerpt
	}
	if patch.FeaturedImage != nil {
		updates["featured_image"] = *patch.FeaturedImage
	}
	if patch.MetaDescription != nil {
		updates["meta_description"] = *patch.MetaDescription
	}
	if patch.Categories != nil {
		updates["categories"] = pq.StringArray(*patch.Categories)
	}
	if patch.Tags != nil {
		updates["tags"] = pq.StringArray(*patch.Tags)
	}
	if patch.MetaKeywords != nil {
		updates["meta_keywords"] = pq.StringArray(*patch.MetaKeywords)
	}
	if patch.IsPublished != nil {
		updates["is_published"] = *patch.IsPublished

		// First transition to published stamps the date; once set it is
		// never cleared or overwritten by later publish toggles.
		if *patch.IsPublished && existing.PublishedDate == nil {
			publishedDate := now
			if patch.ScheduledDate != nil {
				publishedDate = *patch.ScheduledDate
			}
			updates["published_date"] = publishedDate
		}
	}

	return updates
}

func (r *blogPostRepository) Update(id uint, patch *models.UpdateBlogPostRequest, authorID uint) (*models.BlogPost, error) {
	// A single author-scoped lookup; a missing row and a foreign row are
	// indistinguishable to the caller so post existence never leaks.
	var existing models.BlogPost
	if err := r.db.Where("id = ? AND author_id = ?", id, authorID).First(&existing).Error; err != nil {
		return nil, err
	}

	// A patch with no recognized fields is a no-op, updated_at included.
	if patch.Empty() {
		return &existing, nil
	}

	// One clock sample per call so a first-publish published_date and
	// updated_at from the same update cannot drift apart.
	now := r.now()
	updates := buildPatchUpdates(patch, &existing, now)
	updates["updated_at"] = now

	needsSlug := false
	slugBase := ""
	if patch.Title != nil {
		if derived := utils.GenerateSlug(*patch.Title); derived != existing.Slug {
			needsSlug = true
			slugBase = derived
		}
	}

	var lastErr error
	for attempt := 0; attempt <= slugWriteRetries; attempt++ {
		if needsSlug {
			slug, err := r.uniqueSlug(slugBase, id)
			if err != nil {
				return nil, err
			}
			updates["slug"] = slug
		}

		err := r.db.Model(&models.BlogPost{}).Where("id = ?", id).Updates(updates).Error
		if err == nil {
			lastErr = nil
			break
		}
		if !needsSlug || !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		lastErr = err
	}
	if lastErr != nil {
		return nil, fmt.Errorf("could not allocate a unique slug for post %d: %w", id, lastErr)
	}

	var updated models.BlogPost
	if err := r.db.First(&updated, id).Error; err != nil {
		return nil, err
	}

	r.invalidateEnumCache()
	return &updated, nil
}

func (r *blogPostRepository) Delete(id uint, authorID uint) error {
	result := r.db.Where("id = ? AND author_id = ?", id, authorID).Delete(&models.BlogPost{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.invalidateEnumCache()
	return nil
}

func (r *blogPostRepository) FindDrafts(authorID uint, page, perPage int) ([]models.BlogPost, int64, error) {
	page, perPage = ClampPagination(page, perPage)

	query := r.db.Model(&models.BlogPost{}).
		Where("author_id = ? AND is_published = ?", authorID, false)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.BlogPost
	err := query.
		Order("updated_at DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *blogPostRepository) invalidateEnumCache() {
	if r.redis == nil {
		return
	}
	if err := r.redis.Del(r.ctx, categoriesCacheKey, tagsCacheKey).Err(); err != nil {
		log.Printf("Failed to invalidate enumeration cache: %v", err)
	}
}
