package handlers

import (
	"net/http"

	"symphony-forum/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine, tagArticleHandler *TagArticleHandler, jwtKey []byte) {
	h := tagArticleHandler.Helper

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/articles/:id/tags", tagArticleHandler.GetArticleTags)
		v1.GET("/tags/:id/articles", tagArticleHandler.GetTagArticles)

		// Admin only
		admin := v1.Group("/")
		admin.Use(middleware.AuthMiddleware(jwtKey, h), middleware.RequireRole(h, "admin"))
		{
			admin.POST("/tag-articles", tagArticleHandler.TagArticle)
			admin.DELETE("/tag-articles/:id", tagArticleHandler.RemoveRelation)
			admin.DELETE("/articles/:id/tags", tagArticleHandler.UntagArticle)
		}
	}
}
