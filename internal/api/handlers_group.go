package api

import "Wildsalt/internal/api/handler"

// HandlersGroup 聚合所有 HTTP Handler，便于路由装配
type HandlersGroup struct {
	ViewHandler     *handler.ViewHandler
	ReactionHandler *handler.ReactionHandler
	AuthHandler     *handler.AuthHandler
	ArticleHandler  *handler.ArticleHandler
	CommentHandler  *handler.CommentHandler
	CategoryHandler *handler.CategoryHandler
	MediaHandler    *handler.MediaHandler
	SettingHandler  *handler.SettingHandler
	FeedHandler     *handler.FeedHandler
}
