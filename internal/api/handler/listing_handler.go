package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/joeljosepholawale/campustng/internal/api/dto"
	"github.com/joeljosepholawale/campustng/internal/pkg/response"
	"github.com/joeljosepholawale/campustng/internal/pkg/util"
	"github.com/joeljosepholawale/campustng/internal/service"
)

type ListingHandler struct {
	listingSvc service.ListingService
}

func NewListingHandler(listingSvc service.ListingService) *ListingHandler {
	return &ListingHandler{listingSvc: listingSvc}
}

func (s *ListingHandler) ListServices(c *gin.Context) {
	var listDTO dto.ListListingsDTO
	if err := c.ShouldBindQuery(&listDTO); err != nil {
		response.Error(c, err)
		return
	}

	services, total, err := s.listingSvc.ListServices(c.Request.Context(), &listDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.PagedDTO{
		Items: services,
		Total: total,
		Page:  listDTO.Page,
		Limit: listDTO.PageSize(),
	})
}

func (s *ListingHandler) GetService(c *gin.Context) {
	serviceID, err := parseIDParam(c, "service_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	svc, err := s.listingSvc.GetService(c.Request.Context(), serviceID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, svc)
}

func (s *ListingHandler) CreateService(c *gin.Context) {
	var createDTO dto.CreateServiceDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	svc, err := s.listingSvc.CreateService(c.Request.Context(), userID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, svc)
}

func (s *ListingHandler) UpdateService(c *gin.Context) {
	serviceID, err := parseIDParam(c, "service_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var updateDTO dto.UpdateServiceDTO
	if err = c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	svc, err := s.listingSvc.UpdateService(c.Request.Context(), userID, serviceID, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, svc)
}

func (s *ListingHandler) DeleteService(c *gin.Context) {
	serviceID, err := parseIDParam(c, "service_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err = s.listingSvc.DeleteService(c.Request.Context(), userID, serviceID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ListingHandler) ListRequests(c *gin.Context) {
	var listDTO dto.ListListingsDTO
	if err := c.ShouldBindQuery(&listDTO); err != nil {
		response.Error(c, err)
		return
	}

	requests, total, err := s.listingSvc.ListRequests(c.Request.Context(), &listDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.PagedDTO{
		Items: requests,
		Total: total,
		Page:  listDTO.Page,
		Limit: listDTO.PageSize(),
	})
}

func (s *ListingHandler) GetRequest(c *gin.Context) {
	requestID, err := parseIDParam(c, "request_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	req, err := s.listingSvc.GetRequest(c.Request.Context(), requestID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, req)
}

func (s *ListingHandler) CreateRequest(c *gin.Context) {
	var createDTO dto.CreateRequestDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	req, err := s.listingSvc.CreateRequest(c.Request.Context(), userID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, req)
}

func (s *ListingHandler) UpdateRequest(c *gin.Context) {
	requestID, err := parseIDParam(c, "request_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var updateDTO dto.UpdateRequestDTO
	if err = c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	req, err := s.listingSvc.UpdateRequest(c.Request.Context(), userID, requestID, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, req)
}

func (s *ListingHandler) DeleteRequest(c *gin.Context) {
	requestID, err := parseIDParam(c, "request_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err = s.listingSvc.DeleteRequest(c.Request.Context(), userID, requestID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
