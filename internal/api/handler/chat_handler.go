package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/joeljosepholawale/campustng/internal/api/dto"
	"github.com/joeljosepholawale/campustng/internal/pkg/response"
	"github.com/joeljosepholawale/campustng/internal/pkg/util"
	"github.com/joeljosepholawale/campustng/internal/service"
)

type ChatHandler struct {
	chatSvc service.ChatService
}

func NewChatHandler(chatSvc service.ChatService) *ChatHandler {
	return &ChatHandler{chatSvc: chatSvc}
}

func (s *ChatHandler) StartConversation(c *gin.Context) {
	var startDTO dto.StartConversationDTO
	if err := c.ShouldBind(&startDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&startDTO); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	conv, err := s.chatSvc.StartConversation(c.Request.Context(), userID, &startDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, conv)
}

func (s *ChatHandler) ListConversations(c *gin.Context) {
	userID := c.GetUint64("user_id")
	convs, err := s.chatSvc.ListConversations(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, convs)
}

func (s *ChatHandler) ListMessages(c *gin.Context) {
	conversationID, err := parseIDParam(c, "conversation_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var page dto.PageDTO
	if err = c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	messages, err := s.chatSvc.ListMessages(c.Request.Context(), userID, conversationID, &page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, messages)
}

func (s *ChatHandler) SendMessage(c *gin.Context) {
	conversationID, err := parseIDParam(c, "conversation_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var sendDTO dto.SendMessageDTO
	if err = c.ShouldBind(&sendDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&sendDTO); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	msg, err := s.chatSvc.SendMessage(c.Request.Context(), userID, conversationID, sendDTO.Text)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, msg)
}

func (s *ChatHandler) MarkRead(c *gin.Context) {
	conversationID, err := parseIDParam(c, "conversation_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err = s.chatSvc.MarkRead(c.Request.Context(), userID, conversationID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
