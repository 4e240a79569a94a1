package models

import "time"

// HelpPost is a community help request or announcement
type HelpPost struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	AuthorName   string    `json:"author_name,omitempty"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	Category     string    `json:"category"`
	LikeCount    int       `json:"like_count"`
	CommentCount int       `json:"comment_count"`
	LikedByMe    bool      `json:"liked_by_me"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HelpPostComment is one comment on a help post
type HelpPostComment struct {
	ID         int       `json:"id"`
	PostID     int       `json:"post_id"`
	UserID     int       `json:"user_id"`
	AuthorName string    `json:"author_name,omitempty"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

// HelpPostRequest is the envelope for POST /api/help-posts
// Action selects create, like, or comment
type HelpPostRequest struct {
	Action   string `json:"action"`
	PostID   int    `json:"post_id,omitempty"`
	Title    string `json:"title,omitempty"`
	Body     string `json:"body,omitempty"`
	Category string `json:"category,omitempty"`
	Comment  string `json:"comment,omitempty"`
}

// HelpPostEvent is broadcast over the websocket hub on create/like/comment
type HelpPostEvent struct {
	Type         string `json:"type"` // post.created, post.liked, post.commented
	PostID       int    `json:"post_id"`
	LikeCount    int    `json:"like_count,omitempty"`
	CommentCount int    `json:"comment_count,omitempty"`
}
