package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/joeljosepholawale/campustng/internal/api/dto"
	"github.com/joeljosepholawale/campustng/internal/pkg/response"
	"github.com/joeljosepholawale/campustng/internal/service"
)

type NotificationHandler struct {
	notificationSvc service.NotificationService
}

func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

func (s *NotificationHandler) List(c *gin.Context) {
	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	notifs, err := s.notificationSvc.List(c.Request.Context(), userID, page.Offset(), page.PageSize())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, notifs)
}

func (s *NotificationHandler) UnreadCounts(c *gin.Context) {
	userID := c.GetUint64("user_id")
	counts, err := s.notificationSvc.UnreadCounts(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, counts)
}

func (s *NotificationHandler) MarkRead(c *gin.Context) {
	notificationID, err := parseIDParam(c, "notification_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err = s.notificationSvc.MarkRead(c.Request.Context(), userID, notificationID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := c.GetUint64("user_id")
	if err := s.notificationSvc.MarkAllRead(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *NotificationHandler) Delete(c *gin.Context) {
	notificationID, err := parseIDParam(c, "notification_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err = s.notificationSvc.Delete(c.Request.Context(), userID, notificationID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
