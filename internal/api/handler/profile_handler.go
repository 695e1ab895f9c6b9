package handler

import (
	"Meenews/internal/api/dto"
	"Meenews/internal/pkg/response"
	"Meenews/internal/service"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileSvc *service.ProfileService
}

func NewProfileHandler(profileSvc *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileSvc: profileSvc,
	}
}

// Me 当前用户画像，不存在则初始化空画像
func (s *ProfileHandler) Me(c *gin.Context) {
	userID := c.GetUint64("user_id")
	profile, err := s.profileSvc.Get(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ProfileDTO{
		UserID:     profile.UserID,
		Interests:  profile.Interests,
		ActiveDays: profile.ActiveDays,
	})
}

// UpdateInterests 显式兴趣增量更新
func (s *ProfileHandler) UpdateInterests(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.InterestDeltaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	profile, err := s.profileSvc.ApplyInterestDelta(c.Request.Context(), userID, req.Deltas)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ProfileDTO{
		UserID:     profile.UserID,
		Interests:  profile.Interests,
		ActiveDays: profile.ActiveDays,
	})
}
