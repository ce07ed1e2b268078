package handler

import (
	"time"

	"miniblog/internal/model"
	"miniblog/internal/timezone"
)

// UserResponse is the public view of a user.
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	Avatar   string `json:"avatar"`
}

// PostResponse is the rendered view of a post. DatePosted is the stored UTC
// timestamp; DateDisplay is the fixed display-timezone rendering.
type PostResponse struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Content     string        `json:"content"`
	DatePosted  time.Time     `json:"date_posted"`
	DateDisplay string        `json:"date_display"`
	Author      *UserResponse `json:"author,omitempty"`
}

// CommentResponse is the rendered view of a comment. Exactly one of Author
// and GuestName is set.
type CommentResponse struct {
	ID          uint          `json:"id"`
	Content     string        `json:"content"`
	DatePosted  time.Time     `json:"date_posted"`
	DateDisplay string        `json:"date_display"`
	PostID      uint          `json:"post_id"`
	ParentID    *uint         `json:"parent_id,omitempty"`
	Author      *UserResponse `json:"author,omitempty"`
	GuestName   *string       `json:"guest_name,omitempty"`
}

func toUserResponse(u *model.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:       u.ID,
		Username: u.Username,
		IsAdmin:  u.IsAdmin,
		Avatar:   u.Avatar,
	}
}

func toPostResponse(p *model.Post) PostResponse {
	return PostResponse{
		ID:          p.ID,
		Title:       p.Title,
		Content:     p.Content,
		DatePosted:  p.DatePosted,
		DateDisplay: timezone.Format(p.DatePosted),
		Author:      toUserResponse(p.Author),
	}
}

func toCommentResponse(c *model.Comment) CommentResponse {
	resp := CommentResponse{
		ID:          c.ID,
		Content:     c.Content,
		DatePosted:  c.DatePosted,
		DateDisplay: timezone.Format(c.DatePosted),
		PostID:      c.PostID,
		ParentID:    c.ParentID,
	}
	if c.CommentAuthor().IsGuest() {
		resp.GuestName = c.GuestName
	} else if c.Author != nil {
		resp.Author = toUserResponse(c.Author)
	} else {
		resp.Author = &UserResponse{ID: *c.UserID}
	}
	return resp
}
