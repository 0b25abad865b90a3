package service

import (
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/joeljosepholawale/campustng/internal/api/dto"
	"github.com/joeljosepholawale/campustng/internal/model"
	"github.com/joeljosepholawale/campustng/internal/pkg/consts"
	"github.com/joeljosepholawale/campustng/internal/pkg/redis"
	"github.com/joeljosepholawale/campustng/internal/repository"
)

type CommunityService interface {
	ListPosts(ctx context.Context, category string, page *dto.PageDTO) ([]*dto.ForumPostDTO, int64, error)
	GetPost(ctx context.Context, postID uint64) (*dto.ForumPostDTO, []*dto.ForumCommentDTO, error)
	CreatePost(ctx context.Context, userID uint64, createDTO *dto.CreateForumPostDTO) (*dto.ForumPostDTO, error)
	DeletePost(ctx context.Context, userID uint64, isAdmin bool, postID uint64) error
	AddComment(ctx context.Context, userID, postID uint64, createDTO *dto.CreateForumCommentDTO) (*dto.ForumCommentDTO, error)

	ListGroups(ctx context.Context, userID uint64, search string) ([]*dto.StudyGroupDTO, error)
	CreateGroup(ctx context.Context, userID uint64, createDTO *dto.CreateStudyGroupDTO) (*dto.StudyGroupDTO, error)
	JoinGroup(ctx context.Context, userID, groupID uint64) error
	LeaveGroup(ctx context.Context, userID, groupID uint64) error
	ListGroupMessages(ctx context.Context, userID, groupID uint64, page *dto.PageDTO) ([]*dto.GroupMessageDTO, error)
	SendGroupMessage(ctx context.Context, userID, groupID uint64, text string) (*dto.GroupMessageDTO, error)
	MemberGroupIDs(ctx context.Context, userID uint64) ([]uint64, error)
}

type CommunityServiceImpl struct {
	forumRepo      repository.ForumRepo
	studyGroupRepo repository.StudyGroupRepo
	userRepo       repository.UserRepo
}

func NewCommunityService(
	forumRepo repository.ForumRepo,
	studyGroupRepo repository.StudyGroupRepo,
	userRepo repository.UserRepo,
) CommunityService {
	return &CommunityServiceImpl{
		forumRepo:      forumRepo,
		studyGroupRepo: studyGroupRepo,
		userRepo:       userRepo,
	}
}

func (s *CommunityServiceImpl) ListPosts(ctx context.Context, category string, page *dto.PageDTO) ([]*dto.ForumPostDTO, int64, error) {
	posts, total, err := s.forumRepo.ListPosts(ctx, category, page.Offset(), page.PageSize())
	if err != nil {
		return nil, 0, err
	}

	postIDs := make([]uint64, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
	}
	counts, err := s.forumRepo.CountComments(ctx, postIDs)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*dto.ForumPostDTO, 0, len(posts))
	for _, post := range posts {
		postDTO := toForumPostDTO(post)
		postDTO.CommentCount = counts[post.ID]
		result = append(result, postDTO)
	}
	return result, total, nil
}

func (s *CommunityServiceImpl) GetPost(ctx context.Context, postID uint64) (*dto.ForumPostDTO, []*dto.ForumCommentDTO, error) {
	post, err := s.forumRepo.GetPostById(ctx, postID)
	if err != nil {
		return nil, nil, err
	}
	if post == nil {
		return nil, nil, ErrForumPostNotFound
	}

	comments, err := s.forumRepo.ListComments(ctx, postID)
	if err != nil {
		return nil, nil, err
	}

	commentDTOs := make([]*dto.ForumCommentDTO, 0, len(comments))
	for _, comment := range comments {
		commentDTOs = append(commentDTOs, toForumCommentDTO(comment))
	}

	postDTO := toForumPostDTO(post)
	postDTO.CommentCount = int64(len(comments))
	return postDTO, commentDTOs, nil
}

func (s *CommunityServiceImpl) CreatePost(ctx context.Context, userID uint64, createDTO *dto.CreateForumPostDTO) (*dto.ForumPostDTO, error) {
	post := &model.ForumPost{
		UserID:   userID,
		Title:    createDTO.Title,
		Content:  createDTO.Content,
		Category: createDTO.Category,
	}
	if err := s.forumRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetUserById(ctx, userID)
	if err == nil && author != nil {
		post.User = *author
	}
	return toForumPostDTO(post), nil
}

func (s *CommunityServiceImpl) DeletePost(ctx context.Context, userID uint64, isAdmin bool, postID uint64) error {
	post, err := s.forumRepo.GetPostById(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrForumPostNotFound
	}
	if post.UserID != userID && !isAdmin {
		return ErrAccessDenied
	}
	return s.forumRepo.DeletePost(ctx, postID)
}

func (s *CommunityServiceImpl) AddComment(ctx context.Context, userID, postID uint64, createDTO *dto.CreateForumCommentDTO) (*dto.ForumCommentDTO, error) {
	post, err := s.forumRepo.GetPostById(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrForumPostNotFound
	}

	comment := &model.ForumComment{
		PostID:  postID,
		UserID:  userID,
		Content: createDTO.Content,
	}
	if err = s.forumRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetUserById(ctx, userID)
	if err == nil && author != nil {
		comment.User = *author
	}
	return toForumCommentDTO(comment), nil
}

func (s *CommunityServiceImpl) ListGroups(ctx context.Context, userID uint64, search string) ([]*dto.StudyGroupDTO, error) {
	groups, err := s.studyGroupRepo.ListGroups(ctx, search)
	if err != nil {
		return nil, err
	}

	groupIDs := make([]uint64, 0, len(groups))
	for _, group := range groups {
		groupIDs = append(groupIDs, group.ID)
	}
	counts, err := s.studyGroupRepo.CountMembers(ctx, groupIDs)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.StudyGroupDTO, 0, len(groups))
	for _, group := range groups {
		groupDTO := toStudyGroupDTO(group)
		groupDTO.MemberCount = counts[group.ID]
		if userID != 0 {
			isMember, err := s.studyGroupRepo.IsMember(ctx, group.ID, userID)
			if err != nil {
				return nil, err
			}
			groupDTO.IsMember = isMember
		}
		result = append(result, groupDTO)
	}
	return result, nil
}

func (s *CommunityServiceImpl) CreateGroup(ctx context.Context, userID uint64, createDTO *dto.CreateStudyGroupDTO) (*dto.StudyGroupDTO, error) {
	group := &model.StudyGroup{
		CreatorID:   userID,
		Name:        createDTO.Name,
		Description: createDTO.Description,
		CourseCode:  createDTO.CourseCode,
	}
	if err := s.studyGroupRepo.CreateGroup(ctx, group, userID); err != nil {
		return nil, err
	}

	creator, err := s.userRepo.GetUserById(ctx, userID)
	if err == nil && creator != nil {
		group.Creator = *creator
	}
	groupDTO := toStudyGroupDTO(group)
	groupDTO.MemberCount = 1
	groupDTO.IsMember = true
	return groupDTO, nil
}

func (s *CommunityServiceImpl) JoinGroup(ctx context.Context, userID, groupID uint64) error {
	group, err := s.studyGroupRepo.GetGroupById(ctx, groupID)
	if err != nil {
		return err
	}
	if group == nil {
		return ErrGroupNotFound
	}

	isMember, err := s.studyGroupRepo.IsMember(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if isMember {
		return nil
	}
	return s.studyGroupRepo.AddMember(ctx, &model.StudyGroupMember{
		GroupID: groupID,
		UserID:  userID,
	})
}

func (s *CommunityServiceImpl) LeaveGroup(ctx context.Context, userID, groupID uint64) error {
	return s.studyGroupRepo.RemoveMember(ctx, groupID, userID)
}

func (s *CommunityServiceImpl) MemberGroupIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	return s.studyGroupRepo.ListGroupIDsByMember(ctx, userID)
}

func (s *CommunityServiceImpl) ListGroupMessages(ctx context.Context, userID, groupID uint64, page *dto.PageDTO) ([]*dto.GroupMessageDTO, error) {
	if err := s.requireMember(ctx, userID, groupID); err != nil {
		return nil, err
	}

	messages, err := s.studyGroupRepo.ListGroupMessages(ctx, groupID, page.Offset(), page.PageSize())
	if err != nil {
		return nil, err
	}

	result := make([]*dto.GroupMessageDTO, 0, len(messages))
	for _, msg := range messages {
		result = append(result, toGroupMessageDTO(msg))
	}
	return result, nil
}

func (s *CommunityServiceImpl) SendGroupMessage(ctx context.Context, userID, groupID uint64, text string) (*dto.GroupMessageDTO, error) {
	if err := s.requireMember(ctx, userID, groupID); err != nil {
		return nil, err
	}

	msg := &model.StudyGroupMessage{
		GroupID:   groupID,
		SenderID:  userID,
		Text:      text,
		CreatedAt: time.Now(),
	}
	if err := s.studyGroupRepo.CreateGroupMessage(ctx, msg); err != nil {
		return nil, err
	}

	sender, err := s.userRepo.GetUserById(ctx, userID)
	if err == nil && sender != nil {
		msg.Sender = *sender
	}

	event := &dto.ChatEventDTO{
		Type:       "group_message",
		GroupID:    groupID,
		MessageID:  msg.ID,
		SenderID:   userID,
		SenderName: displayName(&msg.Sender),
		Text:       text,
		CreatedAt:  msg.CreatedAt,
	}
	if payload, err := json.Marshal(event); err == nil {
		channel := consts.ChatGroupChannel + strconv.FormatUint(groupID, 10)
		if err = redis.Publish(ctx, channel, payload); err != nil {
			log.ErrorContext(ctx, "publish group event", "group_id", groupID, "err", err)
		}
	}
	return toGroupMessageDTO(msg), nil
}

func (s *CommunityServiceImpl) requireMember(ctx context.Context, userID, groupID uint64) error {
	group, err := s.studyGroupRepo.GetGroupById(ctx, groupID)
	if err != nil {
		return err
	}
	if group == nil {
		return ErrGroupNotFound
	}

	isMember, err := s.studyGroupRepo.IsMember(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if !isMember {
		return ErrNotGroupMember
	}
	return nil
}

func toForumPostDTO(post *model.ForumPost) *dto.ForumPostDTO {
	return &dto.ForumPostDTO{
		ID:          post.ID,
		Title:       post.Title,
		Content:     post.Content,
		Category:    post.Category,
		AuthorID:    post.UserID,
		AuthorName:  displayName(&post.User),
		AuthorPhoto: post.User.ProfilePhotoURL,
		CreatedAt:   post.CreatedAt,
	}
}

func toForumCommentDTO(comment *model.ForumComment) *dto.ForumCommentDTO {
	return &dto.ForumCommentDTO{
		ID:          comment.ID,
		PostID:      comment.PostID,
		Content:     comment.Content,
		AuthorID:    comment.UserID,
		AuthorName:  displayName(&comment.User),
		AuthorPhoto: comment.User.ProfilePhotoURL,
		CreatedAt:   comment.CreatedAt,
	}
}

func toStudyGroupDTO(group *model.StudyGroup) *dto.StudyGroupDTO {
	return &dto.StudyGroupDTO{
		ID:          group.ID,
		Name:        group.Name,
		Description: group.Description,
		CourseCode:  group.CourseCode,
		CreatorID:   group.CreatorID,
		CreatorName: displayName(&group.Creator),
		CreatedAt:   group.CreatedAt,
	}
}

func toGroupMessageDTO(msg *model.StudyGroupMessage) *dto.GroupMessageDTO {
	return &dto.GroupMessageDTO{
		ID:          msg.ID,
		GroupID:     msg.GroupID,
		SenderID:    msg.SenderID,
		SenderName:  displayName(&msg.Sender),
		SenderPhoto: msg.Sender.ProfilePhotoURL,
		Text:        msg.Text,
		CreatedAt:   msg.CreatedAt,
	}
}
