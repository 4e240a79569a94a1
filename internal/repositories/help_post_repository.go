package repositories

import (
	"context"
	"errors"

	"community-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HelpPostRepository struct {
	DB *pgxpool.Pool
}

func NewHelpPostRepository(db *pgxpool.Pool) *HelpPostRepository {
	return &HelpPostRepository{DB: db}
}

// Create inserts a new help post
func (r *HelpPostRepository) Create(ctx context.Context, p *models.HelpPost) error {
	query := `
		INSERT INTO help_posts(user_id, title, body, category)
		VALUES($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	return r.DB.QueryRow(ctx, query, p.UserID, p.Title, p.Body, p.Category).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// Get retrieves one post with counts, and the viewer's like state
func (r *HelpPostRepository) Get(ctx context.Context, id, viewerID int) (*models.HelpPost, error) {
	query := `
		SELECT p.id, p.user_id, u.full_name, p.title, p.body, p.category,
		       (SELECT COUNT(*) FROM help_post_likes l WHERE l.post_id = p.id),
		       (SELECT COUNT(*) FROM help_post_comments c WHERE c.post_id = p.id),
		       EXISTS(SELECT 1 FROM help_post_likes l WHERE l.post_id = p.id AND l.user_id = $2),
		       p.created_at, p.updated_at
		FROM help_posts p
		JOIN users u ON u.id = p.user_id
		WHERE p.id = $1
	`

	var p models.HelpPost
	err := r.DB.QueryRow(ctx, query, id, viewerID).Scan(
		&p.ID, &p.UserID, &p.AuthorName, &p.Title, &p.Body, &p.Category,
		&p.LikeCount, &p.CommentCount, &p.LikedByMe, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns a page of posts, newest first
func (r *HelpPostRepository) List(ctx context.Context, viewerID, limit, offset int) ([]models.HelpPost, error) {
	query := `
		SELECT p.id, p.user_id, u.full_name, p.title, p.body, p.category,
		       (SELECT COUNT(*) FROM help_post_likes l WHERE l.post_id = p.id),
		       (SELECT COUNT(*) FROM help_post_comments c WHERE c.post_id = p.id),
		       EXISTS(SELECT 1 FROM help_post_likes l WHERE l.post_id = p.id AND l.user_id = $1),
		       p.created_at, p.updated_at
		FROM help_posts p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.DB.Query(ctx, query, viewerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []models.HelpPost
	for rows.Next() {
		var p models.HelpPost
		if err := rows.Scan(&p.ID, &p.UserID, &p.AuthorName, &p.Title, &p.Body, &p.Category,
			&p.LikeCount, &p.CommentCount, &p.LikedByMe, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	return posts, rows.Err()
}

// ToggleLike inserts or removes the user's like inside a transaction and
// returns the resulting count plus whether the user now likes the post
func (r *HelpPostRepository) ToggleLike(ctx context.Context, postID, userID int) (int, bool, error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, false, err
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM help_post_likes WHERE post_id = $1 AND user_id = $2)`,
		postID, userID,
	).Scan(&exists)
	if err != nil {
		return 0, false, err
	}

	liked := !exists
	if exists {
		if _, err := tx.Exec(ctx, `DELETE FROM help_post_likes WHERE post_id = $1 AND user_id = $2`, postID, userID); err != nil {
			return 0, false, err
		}
	} else {
		if _, err := tx.Exec(ctx, `INSERT INTO help_post_likes(post_id, user_id) VALUES($1, $2)`, postID, userID); err != nil {
			return 0, false, err
		}
	}

	var count int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM help_post_likes WHERE post_id = $1`, postID).Scan(&count); err != nil {
		return 0, false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, false, err
	}

	return count, liked, nil
}

// AddComment inserts a comment on a post
func (r *HelpPostRepository) AddComment(ctx context.Context, c *models.HelpPostComment) error {
	query := `
		INSERT INTO help_post_comments(post_id, user_id, body)
		VALUES($1, $2, $3)
		RETURNING id, created_at
	`
	return r.DB.QueryRow(ctx, query, c.PostID, c.UserID, c.Body).Scan(&c.ID, &c.CreatedAt)
}

// ListComments returns a post's comments, oldest first
func (r *HelpPostRepository) ListComments(ctx context.Context, postID int) ([]models.HelpPostComment, error) {
	query := `
		SELECT c.id, c.post_id, c.user_id, u.full_name, c.body, c.created_at
		FROM help_post_comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.post_id = $1
		ORDER BY c.created_at
	`

	rows, err := r.DB.Query(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []models.HelpPostComment
	for rows.Next() {
		var c models.HelpPostComment
		if err := rows.Scan(&c.ID, &c.PostID, &c.UserID, &c.AuthorName, &c.Body, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}

// Update edits a post's title/body/category; only the author may edit
func (r *HelpPostRepository) Update(ctx context.Context, p *models.HelpPost) error {
	query := `
		UPDATE help_posts SET title = $3, body = $4, category = $5, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`
	tag, err := r.DB.Exec(ctx, query, p.ID, p.UserID, p.Title, p.Body, p.Category)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("post not found or not owned by user")
	}
	return nil
}

// Delete removes a post. Admin deletes pass ownerID = 0 to skip the owner check
func (r *HelpPostRepository) Delete(ctx context.Context, id, ownerID int) (int64, error) {
	if ownerID == 0 {
		t, err := r.DB.Exec(ctx, `DELETE FROM help_posts WHERE id = $1`, id)
		if err != nil {
			return 0, err
		}
		return t.RowsAffected(), nil
	}
	t, err := r.DB.Exec(ctx, `DELETE FROM help_posts WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return 0, err
	}
	return t.RowsAffected(), nil
}
