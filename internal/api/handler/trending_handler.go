package handler

import (
	"Meenews/internal/pkg/response"
	"Meenews/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type TrendingHandler struct {
	trendingSvc *service.TrendingService
}

func NewTrendingHandler(trendingSvc *service.TrendingService) *TrendingHandler {
	return &TrendingHandler{
		trendingSvc: trendingSvc,
	}
}

// Current 当前活跃话题，按互动分降序，公开接口
func (s *TrendingHandler) Current(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	topics, err := s.trendingSvc.Current(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, topics)
}

// Overview 话题面板统计
func (s *TrendingHandler) Overview(c *gin.Context) {
	overview, err := s.trendingSvc.Overview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, overview)
}
