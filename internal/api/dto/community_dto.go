package dto

import "time"

type CreateForumPostDTO struct {
	Title    string  `json:"title" binding:"required" validate:"min=3,max=150"`
	Content  string  `json:"content" binding:"required" validate:"min=1,max=10000"`
	Category *string `json:"category" validate:"omitempty,max=60"`
}

type ForumPostDTO struct {
	ID           uint64    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Category     *string   `json:"category"`
	AuthorID     uint64    `json:"authorId"`
	AuthorName   string    `json:"authorName"`
	AuthorPhoto  *string   `json:"authorPhoto"`
	CommentCount int64     `json:"commentCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CreateForumCommentDTO struct {
	Content string `json:"content" binding:"required" validate:"min=1,max=2000"`
}

type ForumCommentDTO struct {
	ID          uint64    `json:"id"`
	PostID      uint64    `json:"postId"`
	Content     string    `json:"content"`
	AuthorID    uint64    `json:"authorId"`
	AuthorName  string    `json:"authorName"`
	AuthorPhoto *string   `json:"authorPhoto"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateStudyGroupDTO struct {
	Name        string  `json:"name" binding:"required" validate:"min=3,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	CourseCode  *string `json:"courseCode" validate:"omitempty,max=30"`
}

type StudyGroupDTO struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CourseCode  *string   `json:"courseCode"`
	CreatorID   uint64    `json:"creatorId"`
	CreatorName string    `json:"creatorName"`
	MemberCount int64     `json:"memberCount"`
	IsMember    bool      `json:"isMember"`
	CreatedAt   time.Time `json:"createdAt"`
}

type SendGroupMessageDTO struct {
	Text string `json:"text" binding:"required" validate:"min=1,max=2000"`
}

type GroupMessageDTO struct {
	ID          uint64    `json:"id"`
	GroupID     uint64    `json:"groupId"`
	SenderID    uint64    `json:"senderId"`
	SenderName  string    `json:"senderName"`
	SenderPhoto *string   `json:"senderPhoto"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"createdAt"`
}
