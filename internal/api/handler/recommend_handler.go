package handler

import (
	"Meenews/internal/api/dto"
	"Meenews/internal/pkg/response"
	"Meenews/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

type RecommendHandler struct {
	recommendSvc *service.RecommendationService
}

func NewRecommendHandler(recommendSvc *service.RecommendationService) *RecommendHandler {
	return &RecommendHandler{
		recommendSvc: recommendSvc,
	}
}

// Personalized 个性化推荐，曝光同步落库
func (s *RecommendHandler) Personalized(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var query dto.RecommendQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	records, err := s.recommendSvc.Personalized(c.Request.Context(), userID, query.ListType, query.Count)
	if err != nil {
		response.Error(c, err)
		return
	}

	var list []*dto.RecommendItemDTO
	if err := copier.Copy(&list, records); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// Outcome 推荐回流上报
func (s *RecommendHandler) Outcome(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.OutcomeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.recommendSvc.RecordOutcome(c.Request.Context(), userID, req.ContentKind, req.ObjectID, req.SessionID, req.Outcome); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Recent 用户最近收到的推荐曝光
func (s *RecommendHandler) Recent(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var query dto.RecentQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	records, err := s.recommendSvc.Recent(c.Request.Context(), userID, query.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	var list []*dto.RecentImpressionDTO
	if err := copier.Copy(&list, records); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// Stats 各算法曝光转化统计
func (s *RecommendHandler) Stats(c *gin.Context) {
	var query dto.AlgorithmStatsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	stats, err := s.recommendSvc.Stats(c.Request.Context(), query.Days)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}
