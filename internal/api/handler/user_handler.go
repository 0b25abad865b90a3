package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/joeljosepholawale/campustng/internal/api/dto"
	"github.com/joeljosepholawale/campustng/internal/pkg/response"
	"github.com/joeljosepholawale/campustng/internal/pkg/util"
	"github.com/joeljosepholawale/campustng/internal/service"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func (s *UserHandler) GetMe(c *gin.Context) {
	userID := c.GetUint64("user_id")
	user, err := s.userSvc.GetMe(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) GetProfile(c *gin.Context) {
	targetID, err := parseIDParam(c, "user_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	viewerID := c.GetUint64("user_id")

	user, stats, err := s.userSvc.GetProfile(c.Request.Context(), targetID, viewerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{
		"user":  user,
		"stats": stats,
	})
}

func (s *UserHandler) UpdateProfile(c *gin.Context) {
	var updateDTO dto.UpdateProfileDTO
	if err := c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	user, err := s.userSvc.UpdateProfile(c.Request.Context(), userID, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) UpdatePushToken(c *gin.Context) {
	var tokenDTO dto.PushTokenDTO
	if err := c.ShouldBind(&tokenDTO); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	if err := s.userSvc.UpdatePushToken(c.Request.Context(), userID, tokenDTO.ExpoPushToken); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) SubmitIDVerification(c *gin.Context) {
	var idDTO dto.IDVerificationDTO
	if err := c.ShouldBind(&idDTO); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	if err := s.userSvc.SubmitIDVerification(c.Request.Context(), userID, idDTO.IDCardURL); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) Follow(c *gin.Context) {
	targetID, err := parseIDParam(c, "user_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err = s.userSvc.Follow(c.Request.Context(), userID, targetID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) Unfollow(c *gin.Context) {
	targetID, err := parseIDParam(c, "user_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err = s.userSvc.Unfollow(c.Request.Context(), userID, targetID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) GetAnalytics(c *gin.Context) {
	userID := c.GetUint64("user_id")
	analytics, err := s.userSvc.GetAnalytics(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, analytics)
}

func (s *UserHandler) CreateSavedSearch(c *gin.Context) {
	var createDTO dto.CreateSavedSearchDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	search, err := s.userSvc.CreateSavedSearch(c.Request.Context(), userID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, search)
}

func (s *UserHandler) ListSavedSearches(c *gin.Context) {
	userID := c.GetUint64("user_id")
	searches, err := s.userSvc.ListSavedSearches(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, searches)
}

func (s *UserHandler) DeleteSavedSearch(c *gin.Context) {
	searchID, err := parseIDParam(c, "search_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err = s.userSvc.DeleteSavedSearch(c.Request.Context(), userID, searchID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) CreateReport(c *gin.Context) {
	var reportDTO dto.CreateReportDTO
	if err := c.ShouldBind(&reportDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&reportDTO); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	if err := s.userSvc.CreateReport(c.Request.Context(), userID, &reportDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func parseIDParam(c *gin.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}
