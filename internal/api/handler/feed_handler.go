package handler

import (
	"Wildsalt/internal/pkg/response"
	"Wildsalt/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedSvc service.FeedService
}

func NewFeedHandler(feedSvc service.FeedService) *FeedHandler {
	return &FeedHandler{
		feedSvc: feedSvc,
	}
}

// RSS 输出 RSS 2.0 订阅源
func (s *FeedHandler) RSS(c *gin.Context) {
	body, err := s.feedSvc.BuildRSS(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", body)
}
