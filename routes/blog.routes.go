package routes

import (
	"github.com/AjayKumbham/ctrl-plus-blog/internal/controllers"
	"github.com/AjayKumbham/ctrl-plus-blog/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterBlogRoutes(router *gin.Engine, blogController *controllers.BlogPostController) {
	blogRoutes := router.Group("/blog")
	{
		blogRoutes.GET("/posts", blogController.GetBlogPosts)
		blogRoutes.GET("/posts/drafts", middleware.AuthMiddleware(), blogController.GetDraftPosts)
		blogRoutes.GET("/posts/:slug", blogController.GetBlogPostBySlug)
		blogRoutes.GET("/categories", blogController.GetCategories)
		blogRoutes.GET("/tags", blogController.GetTags)

		blogRoutes.POST("/posts", middleware.AuthMiddleware(), blogController.CreateBlogPost)
		blogRoutes.PUT("/posts/:id", middleware.AuthMiddleware(), blogController.UpdateBlogPost)
		blogRoutes.DELETE("/posts/:id", middleware.AuthMiddleware(), blogController.DeleteBlogPost)
	}
}
