package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/tariq235/csrf-protection-example/internal/database"
	"github.com/tariq235/csrf-protection-example/internal/models"
)

// PostRepository handles database operations for posts
type PostRepository struct {
	db *database.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *database.DB) *PostRepository {
	return &PostRepository{db: db}
}

// CreatePost inserts a new post
func (r *PostRepository) CreatePost(id, title, content, userID string) (*models.Post, error) {
	query := `
		INSERT INTO posts (id, title, content, user_id)
		VALUES (?, ?, ?, ?)
	`
	if _, err := r.db.Exec(query, id, title, content, userID); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return &models.Post{
		ID:        id,
		Title:     title,
		Content:   content,
		UserID:    userID,
		CreatedAt: time.Now(),
	}, nil
}

// GetPostByID retrieves a post by ID, or nil when absent
func (r *PostRepository) GetPostByID(id string) (*models.Post, error) {
	query := `
		SELECT id, title, content, user_id, created_at
		FROM posts
		WHERE id = ?
	`
	post := &models.Post{}
	err := r.db.QueryRow(query, id).Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.UserID,
		&post.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// ListPostsByUser retrieves all posts created by a user, newest first
func (r *PostRepository) ListPostsByUser(userID string) ([]*models.Post, error) {
	query := `
		SELECT id, title, content, user_id, created_at
		FROM posts
		WHERE user_id = ?
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post := &models.Post{}
		if err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.UserID, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read posts: %w", err)
	}

	return posts, nil
}
