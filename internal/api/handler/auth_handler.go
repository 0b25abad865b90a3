package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/joeljosepholawale/campustng/internal/api/dto"
	"github.com/joeljosepholawale/campustng/internal/pkg/response"
	"github.com/joeljosepholawale/campustng/internal/pkg/util"
	"github.com/joeljosepholawale/campustng/internal/service"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

func (s *AuthHandler) Register(c *gin.Context) {
	var registerDTO dto.RegisterDTO
	if err := c.ShouldBind(&registerDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&registerDTO); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.authSvc.Register(c.Request.Context(), &registerDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *AuthHandler) Login(c *gin.Context) {
	var loginDTO dto.LoginDTO
	if err := c.ShouldBind(&loginDTO); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.authSvc.Login(c.Request.Context(), &loginDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *AuthHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if err := s.authSvc.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AuthHandler) VerifyEmail(c *gin.Context) {
	var verifyDTO dto.VerifyEmailDTO
	if err := c.ShouldBind(&verifyDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&verifyDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.authSvc.VerifyEmail(c.Request.Context(), &verifyDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AuthHandler) ResendVerification(c *gin.Context) {
	var emailDTO dto.EmailDTO
	if err := c.ShouldBind(&emailDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.authSvc.ResendVerification(c.Request.Context(), emailDTO.Email); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AuthHandler) ForgotPassword(c *gin.Context) {
	var emailDTO dto.EmailDTO
	if err := c.ShouldBind(&emailDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.authSvc.ForgotPassword(c.Request.Context(), emailDTO.Email); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AuthHandler) ResetPassword(c *gin.Context) {
	var resetDTO dto.ResetPasswordDTO
	if err := c.ShouldBind(&resetDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&resetDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.authSvc.ResetPassword(c.Request.Context(), &resetDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AuthHandler) ChangePassword(c *gin.Context) {
	var changeDTO dto.ChangePasswordDTO
	if err := c.ShouldBind(&changeDTO); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	if err := s.authSvc.ChangePassword(c.Request.Context(), userID, &changeDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
