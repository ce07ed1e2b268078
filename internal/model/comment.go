package model

import "time"

// Comment represents a comment on a post. Exactly one of UserID or GuestName
// is meaningful: authenticated comments carry UserID and a nil GuestName,
// anonymous comments carry GuestName (possibly empty) and a nil UserID.
// ParentID, when set, points at the comment being replied to.
type Comment struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	DatePosted time.Time `json:"date_posted" gorm:"index;not null"`
	UserID     *uint     `json:"user_id" gorm:"index"`
	GuestName  *string   `json:"guest_name" gorm:"size:80"`
	PostID     uint      `json:"post_id" gorm:"index;not null"`
	ParentID   *uint     `json:"parent_id"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:UserID"`
}

// CommentAuthor returns the comment's author as an explicit sum type.
func (c *Comment) CommentAuthor() Author {
	if c.UserID != nil {
		return Author{UserID: c.UserID}
	}
	return Author{GuestName: c.GuestName}
}
