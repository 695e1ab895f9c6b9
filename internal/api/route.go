package api

import (
	"Meenews/internal/api/middleware"
	"Meenews/internal/pkg/consts"
	"Meenews/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		contentGroup := apiGroup.Group("/content")
		{
			// 公开读取，匿名可访问
			authOptGroup := contentGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/public", group.ContentHandler.ListNews)
				authOptGroup.GET("/news/:news_id", group.ContentHandler.GetNews)
			}

			contentGroup.GET("/:kind/:object_id/tags", group.TagHandler.ListByTarget)
			contentGroup.GET("/:kind/:object_id/stats", group.ContentHandler.ContentStats)

			authGroup := contentGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/tags", group.TagHandler.AttachTags)
				authGroup.DELETE("/:kind/:object_id/tags/:tag_id", group.TagHandler.DetachTag)
			}

			moderationGroup := contentGroup.Group("/moderation")
			moderationGroup.Use(middleware.AuthMiddleware())
			{
				// 历史查询只要求登录，提交与积压统计要求审核/管理员
				moderationGroup.GET("/:kind/:object_id", group.ModerationHandler.History)

				auditGroup := moderationGroup.Group("")
				auditGroup.Use(middleware.CheckRoles(consts.RoleAudit, consts.RoleAdmin))
				{
					auditGroup.POST("", group.ModerationHandler.Submit)
					auditGroup.GET("/pending-count", group.ModerationHandler.PendingCount)
				}
			}
		}

		tagGroup := apiGroup.Group("/tags")
		{
			tagGroup.GET("", group.TagHandler.ListTags)

			adminGroup := tagGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.POST("", group.TagHandler.CreateTag)
			}
		}

		interactionGroup := apiGroup.Group("")
		interactionGroup.Use(middleware.AuthMiddleware())
		{
			interactionGroup.POST("/likes", group.InteractionHandler.Like)
			interactionGroup.DELETE("/likes", group.InteractionHandler.Unlike)
			interactionGroup.GET("/likes/status", group.InteractionHandler.LikeStatus)

			interactionGroup.POST("/favorites", group.InteractionHandler.Favorite)
			interactionGroup.POST("/favorites/batch-create", group.InteractionHandler.BatchFavorite)
			interactionGroup.DELETE("/favorites/batch-delete", group.InteractionHandler.BatchDeleteFavorites)
			interactionGroup.GET("/favorites", group.InteractionHandler.ListFavorites)

			interactionGroup.POST("/shares", group.InteractionHandler.Share)
			interactionGroup.POST("/reports", group.InteractionHandler.Report)

			interactionGroup.POST("/play-history", group.InteractionHandler.RecordPlay)
			interactionGroup.GET("/play-history", group.InteractionHandler.ListPlayHistory)
			interactionGroup.DELETE("/play-history/batch-delete", group.InteractionHandler.BatchDeletePlayHistory)
			interactionGroup.GET("/play-history/total-duration", group.InteractionHandler.TotalPlayDuration)

			interactionGroup.GET("/user-behavior/total-play-time", group.ContentHandler.UserTotalPlayTime)
		}

		commentGroup := apiGroup.Group("/comments")
		{
			commentGroup.GET("", group.CommentHandler.List)
			commentGroup.GET("/:comment_id/replies", group.CommentHandler.Replies)

			authGroup := commentGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.CommentHandler.Create)
				authGroup.DELETE("/:comment_id", group.CommentHandler.Delete)
			}
		}

		recommendGroup := apiGroup.Group("/recommendations")
		recommendGroup.Use(middleware.AuthMiddleware())
		{
			recommendGroup.GET("/personalized", group.RecommendHandler.Personalized)
			recommendGroup.GET("/recent", group.RecommendHandler.Recent)
			recommendGroup.POST("/outcome", group.RecommendHandler.Outcome)

			adminGroup := recommendGroup.Group("")
			adminGroup.Use(middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.GET("/stats", group.RecommendHandler.Stats)
			}
		}

		trendingGroup := apiGroup.Group("/trending-topics")
		{
			trendingGroup.GET("/current", group.TrendingHandler.Current)

			adminGroup := trendingGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.GET("/stats", group.TrendingHandler.Overview)
			}
		}

		profileGroup := apiGroup.Group("/user-profiles")
		profileGroup.Use(middleware.AuthMiddleware())
		{
			profileGroup.GET("/me", group.ProfileHandler.Me)
			profileGroup.POST("/me/interests", group.ProfileHandler.UpdateInterests)
		}
	}

	return r
}
