package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/joeljosepholawale/campustng/internal/api/dto"
	"github.com/joeljosepholawale/campustng/internal/pkg/response"
	"github.com/joeljosepholawale/campustng/internal/pkg/util"
	"github.com/joeljosepholawale/campustng/internal/service"
)

type BoostHandler struct {
	boostSvc service.BoostService
}

func NewBoostHandler(boostSvc service.BoostService) *BoostHandler {
	return &BoostHandler{boostSvc: boostSvc}
}

func (s *BoostHandler) ListPlans(c *gin.Context) {
	plans, err := s.boostSvc.ListPlans(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, plans)
}

func (s *BoostHandler) Initialize(c *gin.Context) {
	var initDTO dto.InitializeBoostDTO
	if err := c.ShouldBind(&initDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&initDTO); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	result, err := s.boostSvc.Initialize(c.Request.Context(), userID, &initDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *BoostHandler) Verify(c *gin.Context) {
	var verifyDTO dto.VerifyBoostDTO
	if err := c.ShouldBind(&verifyDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&verifyDTO); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	result, err := s.boostSvc.Verify(c.Request.Context(), userID, &verifyDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *BoostHandler) ListTransactions(c *gin.Context) {
	userID := c.GetUint64("user_id")
	transactions, err := s.boostSvc.ListTransactions(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, transactions)
}
