package api

import "Meenews/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	ContentHandler     *handler.ContentHandler
	InteractionHandler *handler.InteractionHandler
	CommentHandler     *handler.CommentHandler
	TagHandler         *handler.TagHandler
	ModerationHandler  *handler.ModerationHandler
	RecommendHandler   *handler.RecommendHandler
	TrendingHandler    *handler.TrendingHandler
	ProfileHandler     *handler.ProfileHandler
}
