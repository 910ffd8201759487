package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AjayKumbham/ctrl-plus-blog/internal/models"
	"github.com/AjayKumbham/ctrl-plus-blog/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BlogPostController struct {
	repo repository.BlogPostRepository
}

func NewBlogPostController(repo repository.BlogPostRepository) *BlogPostController {
	return &BlogPostController{repo: repo}
}

func currentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}

func summarize(posts []models.BlogPost) []models.BlogPostSummary {
	summaries := make([]models.BlogPostSummary, 0, len(posts))
	for i := range posts {
		summaries = append(summaries, posts[i].ToSummary())
	}
	return summaries
}

func totalPages(total int64, perPage int) int64 {
	return (total + int64(perPage) - 1) / int64(perPage)
}

// GetBlogPosts godoc
// @Summary List published blog posts
// @Description Retrieve published posts with pagination and optional search/category filtering
// @Tags blog
// @Produce json
// @Param page query int false "Page number (1-indexed)" default(1)
// @Param per_page query int false "Results per page" default(10)
// @Param search query string false "Case-insensitive substring match on title, content and excerpt"
// @Param category query string false "Exact category filter"
// @Success 200 {object} map[string]interface{} "Posts retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve posts"
// @Router /blog/posts [get]
func (bc *BlogPostController) GetBlogPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	page, perPage = repository.ClampPagination(page, perPage)
	search := c.Query("search")
	category := c.Query("category")

	posts, total, err := bc.repo.FindPublished(page, perPage, search, category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve blog posts",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Blog posts retrieved successfully",
		"data": models.BlogPostsResponse{
			Posts:      summarize(posts),
			Total:      total,
			Page:       page,
			PerPage:    perPage,
			TotalPages: totalPages(total, perPage),
		},
	})
}

// GetBlogPostBySlug godoc
// @Summary Get a blog post by slug
// @Description Retrieve a single published post and increment its view count
// @Tags blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} map[string]interface{} "Post retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Post not found"
// @Router /blog/posts/{slug} [get]
func (bc *BlogPostController) GetBlogPostBySlug(c *gin.Context) {
	post, err := bc.repo.FindBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Blog post not found",
				"error":   "No published post exists with the provided slug",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve blog post",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Blog post retrieved successfully",
		"data":    post.ToResponse(),
	})
}

// GetCategories godoc
// @Summary List categories
// @Description Retrieve all distinct categories across published posts
// @Tags blog
// @Produce json
// @Success 200 {object} map[string]interface{} "Categories retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve categories"
// @Router /blog/categories [get]
func (bc *BlogPostController) GetCategories(c *gin.Context) {
	categories, err := bc.repo.DistinctCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve categories",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Categories retrieved successfully",
		"data":    gin.H{"categories": categories},
	})
}

// GetTags godoc
// @Summary List tags
// @Description Retrieve all distinct tags across published posts
// @Tags blog
// @Produce json
// @Success 200 {object} map[string]interface{} "Tags retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve tags"
// @Router /blog/tags [get]
func (bc *BlogPostController) GetTags(c *gin.Context) {
	tags, err := bc.repo.DistinctTags()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve tags",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Tags retrieved successfully",
		"data":    gin.H{"tags": tags},
	})
}

// CreateBlogPost godoc
// @Summary Create a blog post
// @Description Create a post owned by the authenticated user; the slug is derived from the title
// @Tags blog
// @Accept json
// @Produce json
// @Param post body models.CreateBlogPostRequest true "Post data"
// @Success 201 {object} map[string]interface{} "Post created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to create post"
// @Security BearerAuth
// @Router /blog/posts [post]
func (bc *BlogPostController) CreateBlogPost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User not authenticated",
		})
		return
	}

	var req models.CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	post, err := bc.repo.Create(&req, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create blog post",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Blog post created successfully",
		"data":    post.ToResponse(),
	})
}

// UpdateBlogPost godoc
// @Summary Update a blog post
// @Description Apply a partial update to a post owned by the authenticated user
// @Tags blog
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param post body models.UpdateBlogPostRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Post updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Post not found or access denied"
// @Failure 500 {object} map[string]interface{} "Failed to update post"
// @Security BearerAuth
// @Router /blog/posts/{id} [put]
func (bc *BlogPostController) UpdateBlogPost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User not authenticated",
		})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid post ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var patch models.UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	post, err := bc.repo.Update(uint(id), &patch, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Blog post not found or access denied",
				"error":   "No post exists with the provided ID for this user",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update blog post",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Blog post updated successfully",
		"data":    post.ToResponse(),
	})
}

// DeleteBlogPost godoc
// @Summary Delete a blog post
// @Description Delete a post owned by the authenticated user
// @Tags blog
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} map[string]interface{} "Post deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid post ID"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Post not found or access denied"
// @Failure 500 {object} map[string]interface{} "Failed to delete post"
// @Security BearerAuth
// @Router /blog/posts/{id} [delete]
func (bc *BlogPostController) DeleteBlogPost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User not authenticated",
		})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid post ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := bc.repo.Delete(uint(id), userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Blog post not found or access denied",
				"error":   "No post exists with the provided ID for this user",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete blog post",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Blog post deleted successfully",
		"data":    nil,
	})
}

// GetDraftPosts godoc
// @Summary List the caller's drafts
// @Description Retrieve the authenticated user's unpublished posts, most recently edited first
// @Tags blog
// @Produce json
// @Param page query int false "Page number (1-indexed)" default(1)
// @Param per_page query int false "Results per page" default(10)
// @Success 200 {object} map[string]interface{} "Drafts retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve drafts"
// @Security BearerAuth
// @Router /blog/posts/drafts [get]
func (bc *BlogPostController) GetDraftPosts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User not authenticated",
		})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	page, perPage = repository.ClampPagination(page, perPage)

	posts, total, err := bc.repo.FindDrafts(userID, page, perPage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve draft posts",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Draft posts retrieved successfully",
		"data": models.BlogPostsResponse{
			Posts:      summarize(posts),
			Total:      total,
			Page:       page,
			PerPage:    perPage,
			TotalPages: totalPages(total, perPage),
		},
	})
}
