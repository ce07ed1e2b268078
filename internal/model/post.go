package model

import "time"

// Post represents a published article. The author is fixed at creation and
// DatePosted is the server clock at commit time, stored in UTC.
type Post struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title" gorm:"size:100;not null"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	DatePosted time.Time `json:"date_posted" gorm:"index;not null"`
	UserID     uint      `json:"user_id" gorm:"index;not null"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:UserID"`
}
