package handler

import (
	"Meenews/internal/api/dto"
	"Meenews/internal/pkg/response"
	"Meenews/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentSvc *service.ContentService
	statsSvc   *service.StatsService
}

func NewContentHandler(contentSvc *service.ContentService, statsSvc *service.StatsService) *ContentHandler {
	return &ContentHandler{
		contentSvc: contentSvc,
		statsSvc:   statsSvc,
	}
}

// ListNews 公开资讯列表
func (s *ContentHandler) ListNews(c *gin.Context) {
	var query dto.NewsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	list, total, err := s.contentSvc.ListNews(c.Request.Context(), query.Category, query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.PageResult{List: list, Total: total, Page: query.Page, Size: query.PageSize})
}

// GetNews 资讯详情，匿名可读，已登录用户计入行为统计
func (s *ContentHandler) GetNews(c *gin.Context) {
	newsID, err := strconv.ParseUint(c.Param("news_id"), 10, 64)
	if err != nil || newsID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	viewerID := c.GetUint64("user_id")

	news, err := s.contentSvc.GetNews(c.Request.Context(), newsID, viewerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, news)
}

// ContentStats 内容互动统计：生命周期累计 + 逐日序列
func (s *ContentHandler) ContentStats(c *gin.Context) {
	objectID, err := strconv.ParseUint(c.Param("object_id"), 10, 64)
	if err != nil || objectID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var query dto.StatsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	stats, err := s.statsSvc.ContentStats(c.Request.Context(), query.ContentKind, objectID, query.Days)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}

// UserTotalPlayTime 当前用户累计播放时长
func (s *ContentHandler) UserTotalPlayTime(c *gin.Context) {
	userID := c.GetUint64("user_id")
	total, err := s.statsSvc.UserTotalPlayTime(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.TotalDurationDTO{TotalDuration: total})
}
