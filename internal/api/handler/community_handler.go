package handler

import (
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/joeljosepholawale/campustng/internal/api/dto"
	"github.com/joeljosepholawale/campustng/internal/pkg/response"
	"github.com/joeljosepholawale/campustng/internal/pkg/security"
	"github.com/joeljosepholawale/campustng/internal/pkg/util"
	"github.com/joeljosepholawale/campustng/internal/service"
)

type CommunityHandler struct {
	communitySvc service.CommunityService
}

func NewCommunityHandler(communitySvc service.CommunityService) *CommunityHandler {
	return &CommunityHandler{communitySvc: communitySvc}
}

func (s *CommunityHandler) ListPosts(c *gin.Context) {
	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}

	posts, total, err := s.communitySvc.ListPosts(c.Request.Context(), c.Query("category"), &page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.PagedDTO{Items: posts, Total: total, Page: page.Page, Limit: page.PageSize()})
}

func (s *CommunityHandler) GetPost(c *gin.Context) {
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	post, comments, err := s.communitySvc.GetPost(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"post": post, "comments": comments})
}

func (s *CommunityHandler) CreatePost(c *gin.Context) {
	var createDTO dto.CreateForumPostDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	post, err := s.communitySvc.CreatePost(c.Request.Context(), userID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *CommunityHandler) DeletePost(c *gin.Context) {
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	userID := c.GetUint64("user_id")
	isAdmin := slices.Contains(c.GetStringSlice("roles"), security.RoleAdmin)
	if err = s.communitySvc.DeletePost(c.Request.Context(), userID, isAdmin, postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *CommunityHandler) AddComment(c *gin.Context) {
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var createDTO dto.CreateForumCommentDTO
	if err = c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	comment, err := s.communitySvc.AddComment(c.Request.Context(), userID, postID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

func (s *CommunityHandler) ListGroups(c *gin.Context) {
	userID := c.GetUint64("user_id")
	groups, err := s.communitySvc.ListGroups(c.Request.Context(), userID, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, groups)
}

func (s *CommunityHandler) CreateGroup(c *gin.Context) {
	var createDTO dto.CreateStudyGroupDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	group, err := s.communitySvc.CreateGroup(c.Request.Context(), userID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, group)
}

func (s *CommunityHandler) JoinGroup(c *gin.Context) {
	groupID, err := parseIDParam(c, "group_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	userID := c.GetUint64("user_id")
	if err = s.communitySvc.JoinGroup(c.Request.Context(), userID, groupID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *CommunityHandler) LeaveGroup(c *gin.Context) {
	groupID, err := parseIDParam(c, "group_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	userID := c.GetUint64("user_id")
	if err = s.communitySvc.LeaveGroup(c.Request.Context(), userID, groupID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *CommunityHandler) ListGroupMessages(c *gin.Context) {
	groupID, err := parseIDParam(c, "group_id")
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
	messages, err := s.communitySvc.ListGroupMessages(c.Request.Context(), userID, groupID, &page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, messages)
}

func (s *CommunityHandler) SendGroupMessage(c *gin.Context) {
	groupID, err := parseIDParam(c, "group_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var sendDTO dto.SendGroupMessageDTO
	if err = c.ShouldBind(&sendDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&sendDTO); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	message, err := s.communitySvc.SendGroupMessage(c.Request.Context(), userID, groupID, sendDTO.Text)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, message)
}
