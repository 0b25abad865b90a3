package model

import "time"

type ForumPost struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"not null;index:idx_forum_user" json:"userId"`
	Title     string    `gorm:"type:varchar(150);not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Category  *string   `gorm:"type:varchar(60);index:idx_forum_category" json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (ForumPost) TableName() string { return "forum_posts" }

type ForumComment struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID    uint64    `gorm:"not null;index:idx_forum_comment_post" json:"postId"`
	UserID    uint64    `gorm:"not null" json:"userId"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"createdAt"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (ForumComment) TableName() string { return "forum_comments" }

type StudyGroup struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatorID   uint64    `gorm:"not null" json:"creatorId"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Description *string   `gorm:"type:varchar(500)" json:"description"`
	CourseCode  *string   `gorm:"type:varchar(30)" json:"courseCode"`
	CreatedAt   time.Time `json:"createdAt"`

	Creator User `gorm:"foreignKey:CreatorID;references:ID" json:"-"`
}

func (StudyGroup) TableName() string { return "study_groups" }

type StudyGroupMember struct {
	ID       uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	GroupID  uint64    `gorm:"not null;uniqueIndex:idx_group_user" json:"groupId"`
	UserID   uint64    `gorm:"not null;uniqueIndex:idx_group_user;index" json:"userId"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joinedAt"`
}

func (StudyGroupMember) TableName() string { return "study_group_members" }

type StudyGroupMessage struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	GroupID   uint64    `gorm:"not null;index:idx_group_msg" json:"groupId"`
	SenderID  uint64    `gorm:"not null" json:"senderId"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `json:"createdAt"`

	Sender User `gorm:"foreignKey:SenderID;references:ID" json:"-"`
}

func (StudyGroupMessage) TableName() string { return "study_group_messages" }
