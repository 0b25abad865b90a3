package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/joeljosepholawale/campustng/internal/api/dto"
	"github.com/joeljosepholawale/campustng/internal/pkg/response"
	"github.com/joeljosepholawale/campustng/internal/pkg/util"
	"github.com/joeljosepholawale/campustng/internal/service"
)

type SchoolHandler struct {
	schoolSvc service.SchoolService
}

func NewSchoolHandler(schoolSvc service.SchoolService) *SchoolHandler {
	return &SchoolHandler{schoolSvc: schoolSvc}
}

func (s *SchoolHandler) List(c *gin.Context) {
	var listDTO dto.ListSchoolsDTO
	if err := c.ShouldBindQuery(&listDTO); err != nil {
		response.Error(c, err)
		return
	}

	schools, err := s.schoolSvc.List(c.Request.Context(), &listDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, schools)
}

func (s *SchoolHandler) Suggest(c *gin.Context) {
	var createDTO dto.CreateSchoolDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}

	school, err := s.schoolSvc.Suggest(c.Request.Context(), &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, school)
}
