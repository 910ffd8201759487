package models

import (
	"time"

	"github.com/lib/pq"
)

// BlogPost is the persisted blog post entity. The slug carries a unique
// index, which is the authoritative guard against concurrent writers
// deriving the same slug.
type BlogPost struct {
	ID              uint           `gorm:"primaryKey" json:"id" example:"1"`
	Title           string         `gorm:"type:varchar(255);not null" json:"title" example:"Hello World"`
	Slug            string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug" example:"hello-world"`
	Content         string         `gorm:"type:text" json:"content"`
	Excerpt         *string        `gorm:"type:text" json:"excerpt,omitempty"`
	FeaturedImage   *string        `gorm:"type:text" json:"featured_image,omitempty"`
	MetaDescription *string        `gorm:"type:text" json:"meta_description,omitempty"`
	Categories      pq.StringArray `gorm:"type:text[]" json:"categories"`
	Tags            pq.StringArray `gorm:"type:text[]" json:"tags"`
	MetaKeywords    pq.StringArray `gorm:"type:text[]" json:"meta_keywords"`
	IsPublished     bool           `gorm:"default:false;index" json:"is_published"`
	PublishedDate   *time.Time     `json:"published_date,omitempty"`
	CreatedAt       time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt       time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	ViewCount       int            `gorm:"default:0" json:"view_count" example:"0"`
	AuthorID        uint           `gorm:"index;not null" json:"author_id"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}

// BlogPostResponse is the full post representation returned to clients.
// PublishedDate is always populated; unpublished posts substitute CreatedAt.
type BlogPostResponse struct {
	ID            uint           `json:"id"`
	Title         string         `json:"title"`
	Slug          string         `json:"slug"`
	Content       string         `json:"content"`
	Excerpt       *string        `json:"excerpt"`
	FeaturedImage *string        `json:"featured_image"`
	PublishedDate time.Time      `json:"published_date"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	Categories    []string       `json:"categories"`
	Tags          []string       `json:"tags"`
	IsPublished   bool           `json:"is_published"`
	ViewCount     int            `json:"view_count"`
}

// BlogPostSummary is the projection used in list views; it omits the body.
type BlogPostSummary struct {
	ID            uint       `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       *string    `json:"excerpt"`
	FeaturedImage *string    `json:"featured_image"`
	PublishedDate time.Time  `json:"published_date"`
	Categories    []string   `json:"categories"`
	Tags          []string   `json:"tags"`
	ViewCount     int        `json:"view_count"`
}

// BlogPostsResponse is a paginated page of summaries.
type BlogPostsResponse struct {
	Posts      []BlogPostSummary `json:"posts"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
	TotalPages int64             `json:"total_pages"`
}

type CreateBlogPostRequest struct {
	Title           string     `json:"title" binding:"required"`
	Content         string     `json:"content" binding:"required"`
	Excerpt         *string    `json:"excerpt"`
	FeaturedImage   *string    `json:"featured_image"`
	Categories      []string   `json:"categories"`
	Tags            []string   `json:"tags"`
	IsPublished     bool       `json:"is_published"`
	ScheduledDate   *time.Time `json:"scheduled_date"`
	MetaDescription *string    `json:"meta_description"`
	MetaKeywords    []string   `json:"meta_keywords"`
}

// UpdateBlogPostRequest is a sparse patch: nil fields are left untouched.
type UpdateBlogPostRequest struct {
	Title           *string    `json:"title"`
	Content         *string    `json:"content"`
	Excerpt         *string    `json:"excerpt"`
	FeaturedImage   *string    `json:"featured_image"`
	Categories      *[]string  `json:"categories"`
	Tags            *[]string  `json:"tags"`
	IsPublished     *bool      `json:"is_published"`
	ScheduledDate   *time.Time `json:"scheduled_date"`
	MetaDescription *string    `json:"meta_description"`
	MetaKeywords    *[]string  `json:"meta_keywords"`
}

// Empty reports whether the patch carries no recognized fields at all.
// ScheduledDate alone does not count; it only qualifies a publish transition.
func (r *UpdateBlogPostRequest) Empty() bool {
	return r.Title == nil && r.Content == nil && r.Excerpt == nil &&
		r.FeaturedImage == nil && r.Categories == nil && r.Tags == nil &&
		r.IsPublished == nil && r.MetaDescription == nil && r.MetaKeywords == nil
}

// ToResponse converts the stored entity into its client representation,
// substituting CreatedAt when the post has never been published.
func (p *BlogPost) ToResponse() BlogPostResponse {
	published := p.CreatedAt
	if p.PublishedDate != nil {
		published = *p.PublishedDate
	}
	return BlogPostResponse{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Content:       p.Content,
		Excerpt:       p.Excerpt,
		FeaturedImage: p.FeaturedImage,
		PublishedDate: published,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Categories:    p.Categories,
		Tags:          p.Tags,
		IsPublished:   p.IsPublished,
		ViewCount:     p.ViewCount,
	}
}

// ToSummary builds the list projection. Drafts have no published date, so
// the summary falls back to CreatedAt the same way ToResponse does.
func (p *BlogPost) ToSummary() BlogPostSummary {
	published := p.CreatedAt
	if p.PublishedDate != nil {
		published = *p.PublishedDate
	}
	return BlogPostSummary{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Excerpt:       p.Excerpt,
		FeaturedImage: p.FeaturedImage,
		PublishedDate: published,
		Categories:    p.Categories,
		Tags:          p.Tags,
		ViewCount:     p.ViewCount,
	}
}
