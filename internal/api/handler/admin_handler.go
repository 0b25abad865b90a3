package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/joeljosepholawale/campustng/internal/api/dto"
	"github.com/joeljosepholawale/campustng/internal/pkg/response"
	"github.com/joeljosepholawale/campustng/internal/pkg/util"
	"github.com/joeljosepholawale/campustng/internal/service"
)

type AdminHandler struct {
	adminSvc service.AdminService
}

func NewAdminHandler(adminSvc service.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

func (s *AdminHandler) Stats(c *gin.Context) {
	stats, err := s.adminSvc.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}

func (s *AdminHandler) ListUsers(c *gin.Context) {
	var listDTO dto.ListUsersDTO
	if err := c.ShouldBindQuery(&listDTO); err != nil {
		response.Error(c, err)
		return
	}

	users, total, err := s.adminSvc.ListUsers(c.Request.Context(), &listDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.PagedDTO{Items: users, Total: total, Page: listDTO.Page, Limit: listDTO.PageSize()})
}

func (s *AdminHandler) BanUser(c *gin.Context) {
	targetID, err := parseIDParam(c, "user_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	adminID := c.GetUint64("user_id")
	if err = s.adminSvc.BanUser(c.Request.Context(), adminID, targetID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) UnbanUser(c *gin.Context) {
	targetID, err := parseIDParam(c, "user_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.adminSvc.UnbanUser(c.Request.Context(), targetID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) ApproveIDVerification(c *gin.Context) {
	targetID, err := parseIDParam(c, "user_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.adminSvc.ApproveIDVerification(c.Request.Context(), targetID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) ListReports(c *gin.Context) {
	var listDTO dto.ListReportsDTO
	if err := c.ShouldBindQuery(&listDTO); err != nil {
		response.Error(c, err)
		return
	}

	reports, total, err := s.adminSvc.ListReports(c.Request.Context(), &listDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.PagedDTO{Items: reports, Total: total, Page: listDTO.Page, Limit: listDTO.PageSize()})
}

func (s *AdminHandler) ResolveReport(c *gin.Context) {
	reportID, err := parseIDParam(c, "report_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var resolveDTO dto.ResolveReportDTO
	if err = c.ShouldBind(&resolveDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&resolveDTO); err != nil {
		response.Error(c, err)
		return
	}

	if err = s.adminSvc.ResolveReport(c.Request.Context(), reportID, resolveDTO.Status); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) RemoveProduct(c *gin.Context) {
	productID, err := parseIDParam(c, "product_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.adminSvc.RemoveProduct(c.Request.Context(), productID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) RemoveService(c *gin.Context) {
	serviceID, err := parseIDParam(c, "service_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.adminSvc.RemoveService(c.Request.Context(), serviceID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) RemoveRequest(c *gin.Context) {
	requestID, err := parseIDParam(c, "request_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.adminSvc.RemoveRequest(c.Request.Context(), requestID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) CreateCategory(c *gin.Context) {
	var createDTO dto.CreateCategoryDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}

	category, err := s.adminSvc.CreateCategory(c.Request.Context(), &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, category)
}

func (s *AdminHandler) UpdateCategory(c *gin.Context) {
	categoryID, err := parseIDParam(c, "category_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var updateDTO dto.UpdateCategoryDTO
	if err = c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}

	category, err := s.adminSvc.UpdateCategory(c.Request.Context(), categoryID, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, category)
}

func (s *AdminHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := parseIDParam(c, "category_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.adminSvc.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) CreateBoostPlan(c *gin.Context) {
	var createDTO dto.CreateBoostPlanDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}

	plan, err := s.adminSvc.CreateBoostPlan(c.Request.Context(), &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, plan)
}

func (s *AdminHandler) UpdateBoostPlan(c *gin.Context) {
	planID, err := parseIDParam(c, "plan_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var updateDTO dto.UpdateBoostPlanDTO
	if err = c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}

	plan, err := s.adminSvc.UpdateBoostPlan(c.Request.Context(), planID, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, plan)
}

func (s *AdminHandler) ListTransactions(c *gin.Context) {
	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}

	txs, total, err := s.adminSvc.ListTransactions(c.Request.Context(), &page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.PagedDTO{Items: txs, Total: total, Page: page.Page, Limit: page.PageSize()})
}

func (s *AdminHandler) ListIDVerifications(c *gin.Context) {
	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}

	users, total, err := s.adminSvc.ListIDVerificationQueue(c.Request.Context(), &page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.PagedDTO{Items: users, Total: total, Page: page.Page, Limit: page.PageSize()})
}

func (s *AdminHandler) RejectIDVerification(c *gin.Context) {
	targetID, err := parseIDParam(c, "user_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.adminSvc.RejectIDVerification(c.Request.Context(), targetID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) ApproveSchool(c *gin.Context) {
	schoolID, err := parseIDParam(c, "school_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.adminSvc.ApproveSchool(c.Request.Context(), schoolID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) RejectSchool(c *gin.Context) {
	schoolID, err := parseIDParam(c, "school_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.adminSvc.RejectSchool(c.Request.Context(), schoolID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) Broadcast(c *gin.Context) {
	var broadcastDTO dto.BroadcastDTO
	if err := c.ShouldBind(&broadcastDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&broadcastDTO); err != nil {
		response.Error(c, err)
		return
	}

	sent, err := s.adminSvc.Broadcast(c.Request.Context(), &broadcastDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"recipients": sent})
}
