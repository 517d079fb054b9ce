package api

import (
	"Wildsalt/internal/api/middleware"
	"Wildsalt/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})

		apiGroup.GET("/rss", group.FeedHandler.RSS)

		// 浏览与反应均为匿名接口
		apiGroup.POST("/views", group.ViewHandler.RecordView)
		apiGroup.GET("/views", group.ViewHandler.GetStats)
		apiGroup.POST("/reactions", group.ReactionHandler.AddReaction)
		apiGroup.GET("/reactions", group.ReactionHandler.GetReactions)

		apiGroup.GET("/articles", group.ArticleHandler.List)
		apiGroup.GET("/articles/:slug", group.ArticleHandler.GetBySlug)
		apiGroup.GET("/categories", group.CategoryHandler.List)
		apiGroup.GET("/settings", group.SettingHandler.GetAll)

		apiGroup.GET("/comments", group.CommentHandler.List)
		apiGroup.POST("/comments", middleware.CommentRateLimit(), group.CommentHandler.Create)

		adminGroup := apiGroup.Group("/admin")
		{
			adminGroup.POST("/auth", group.AuthHandler.Login)

			authed := adminGroup.Group("")
			authed.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
			{
				authed.GET("/auth", group.AuthHandler.Verify)
				authed.POST("/auth/logout", group.AuthHandler.Logout)
				authed.POST("/auth/update", group.AuthHandler.UpdateCredentials)

				authed.GET("/articles", group.ArticleHandler.ListAdmin)
				authed.POST("/articles", group.ArticleHandler.Create)
				authed.GET("/articles/:id", group.ArticleHandler.GetByID)
				authed.PUT("/articles/:id", group.ArticleHandler.Update)
				authed.DELETE("/articles/:id", group.ArticleHandler.Delete)

				authed.POST("/categories", group.CategoryHandler.Create)
				authed.PUT("/categories/:id", group.CategoryHandler.Update)
				authed.DELETE("/categories/:id", group.CategoryHandler.Delete)

				authed.GET("/comments", group.CommentHandler.ListAdmin)
				authed.PUT("/comments/:id/status", group.CommentHandler.UpdateStatus)
				authed.DELETE("/comments/:id", group.CommentHandler.Delete)

				authed.GET("/media", group.MediaHandler.List)
				authed.POST("/media", group.MediaHandler.Upload)
				authed.DELETE("/media/:id", group.MediaHandler.Delete)

				authed.PUT("/settings", group.SettingHandler.Update)
			}
		}
	}

	return r
}
