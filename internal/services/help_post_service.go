package services

import (
	"context"
	"errors"
	"strings"

	"community-backend/internal/models"
	"community-backend/internal/repositories"
)

// Broadcaster pushes help-post events to connected websocket clients
type Broadcaster interface {
	BroadcastEvent(event models.HelpPostEvent)
}

type HelpPostService struct {
	Repo *repositories.HelpPostRepository
	Hub  Broadcaster
}

func NewHelpPostService(repo *repositories.HelpPostRepository, hub Broadcaster) *HelpPostService {
	return &HelpPostService{Repo: repo, Hub: hub}
}

// Create publishes a new help post
func (s *HelpPostService) Create(ctx context.Context, user *models.UserAccount, req *models.HelpPostRequest) (*models.HelpPost, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, errors.New("title is required")
	}
	if strings.TrimSpace(req.Body) == "" {
		return nil, errors.New("body is required")
	}

	post := &models.HelpPost{
		UserID:     user.ID,
		AuthorName: user.FullName,
		Title:      strings.TrimSpace(req.Title),
		Body:       strings.TrimSpace(req.Body),
		Category:   req.Category,
	}

	if err := s.Repo.Create(ctx, post); err != nil {
		return nil, errors.New("failed to create post: " + err.Error())
	}

	s.broadcast(models.HelpPostEvent{Type: "post.created", PostID: post.ID})
	return post, nil
}

// ToggleLike flips the caller's like on a post and returns the new count
func (s *HelpPostService) ToggleLike(ctx context.Context, userID, postID int) (int, bool, error) {
	count, liked, err := s.Repo.ToggleLike(ctx, postID, userID)
	if err != nil {
		return 0, false, errors.New("failed to update like: " + err.Error())
	}

	s.broadcast(models.HelpPostEvent{Type: "post.liked", PostID: postID, LikeCount: count})
	return count, liked, nil
}

// AddComment appends a comment to a post
func (s *HelpPostService) AddComment(ctx context.Context, user *models.UserAccount, postID int, body string) (*models.HelpPostComment, error) {
	if strings.TrimSpace(body) == "" {
		return nil, errors.New("comment body is required")
	}

	comment := &models.HelpPostComment{
		PostID:     postID,
		UserID:     user.ID,
		AuthorName: user.FullName,
		Body:       strings.TrimSpace(body),
	}

	if err := s.Repo.AddComment(ctx, comment); err != nil {
		return nil, errors.New("failed to add comment: " + err.Error())
	}

	post, err := s.Repo.Get(ctx, postID, user.ID)
	if err == nil {
		s.broadcast(models.HelpPostEvent{Type: "post.commented", PostID: postID, CommentCount: post.CommentCount})
	}

	return comment, nil
}

// Update edits the caller's own post
func (s *HelpPostService) Update(ctx context.Context, userID int, post *models.HelpPost) error {
	post.UserID = userID
	return s.Repo.Update(ctx, post)
}

// Delete removes a post; admins may delete any post
func (s *HelpPostService) Delete(ctx context.Context, user *models.UserAccount, postID int) error {
	ownerID := user.ID
	if user.UserType == models.UserTypeAdmin {
		ownerID = 0
	}

	removed, err := s.Repo.Delete(ctx, postID, ownerID)
	if err != nil {
		return errors.New("failed to delete post: " + err.Error())
	}
	if removed == 0 {
		return errors.New("post not found or not owned by you")
	}
	return nil
}

func (s *HelpPostService) broadcast(event models.HelpPostEvent) {
	if s.Hub != nil {
		s.Hub.BroadcastEvent(event)
	}
}
