package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/joeljosepholawale/campustng/internal/api/dto"
	"github.com/joeljosepholawale/campustng/internal/pkg/response"
	"github.com/joeljosepholawale/campustng/internal/pkg/util"
	"github.com/joeljosepholawale/campustng/internal/service"
)

type ReviewHandler struct {
	reviewSvc service.ReviewService
}

func NewReviewHandler(reviewSvc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewSvc: reviewSvc}
}

func (s *ReviewHandler) Create(c *gin.Context) {
	revieweeID, err := parseIDParam(c, "user_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var createDTO dto.CreateReviewDTO
	if err = c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}

	reviewerID := c.GetUint64("user_id")
	review, err := s.reviewSvc.Create(c.Request.Context(), reviewerID, revieweeID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, review)
}

func (s *ReviewHandler) ListForUser(c *gin.Context) {
	revieweeID, err := parseIDParam(c, "user_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	reviews, err := s.reviewSvc.ListForUser(c.Request.Context(), revieweeID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, reviews)
}
