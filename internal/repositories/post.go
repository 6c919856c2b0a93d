package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/nomadlog/travel-journal/internal/logger"
	"github.com/nomadlog/travel-journal/internal/models"
)

const postColumns = `post_id, user_id, title, story, visited_location, image_url, visited_date, is_favourite, created_at`

// PostWriteRepository handles travel post write operations.
// Every statement is scoped to the owning user.
type PostWriteRepository struct {
	db *sqlx.DB
}

func NewPostWriteRepository(db *sqlx.DB) *PostWriteRepository {
	return &PostWriteRepository{db: db}
}

// Save inserts a new post for the given user and returns the stored row.
func (r *PostWriteRepository) Save(ctx context.Context, userID uuid.UUID, title, story string, visitedLocation models.Locations, imageURL string, visitedDate time.Time) (*models.TravelPostDB, error) {
	const query = `
		INSERT INTO travel_posts (user_id, title, story, visited_location, image_url, visited_date, is_favourite, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, NOW())
		RETURNING ` + postColumns

	var post models.TravelPostDB
	err := r.db.GetContext(ctx, &post, query, userID, title, story, visitedLocation, imageURL, visitedDate)

	// Log with query in single line
	logger.Log.Infow("post insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, title},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Update overwrites the editable fields of an owned post and returns the
// updated row, or nil if no post matches the id and owner.
func (r *PostWriteRepository) Update(ctx context.Context, postID, userID uuid.UUID, title, story string, visitedLocation models.Locations, imageURL string, visitedDate time.Time) (*models.TravelPostDB, error) {
	const query = `
		UPDATE travel_posts
		SET title = $3, story = $4, visited_location = $5, image_url = $6, visited_date = $7
		WHERE post_id = $1 AND user_id = $2
		RETURNING ` + postColumns

	var post models.TravelPostDB
	err := r.db.GetContext(ctx, &post, query, postID, userID, title, story, visitedLocation, imageURL, visitedDate)

	logger.Log.Infow("post update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{postID, userID, title},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// SetFavourite flips the favourite flag of an owned post and returns the
// updated row, or nil if no post matches the id and owner.
func (r *PostWriteRepository) SetFavourite(ctx context.Context, postID, userID uuid.UUID, isFavourite bool) (*models.TravelPostDB, error) {
	const query = `
		UPDATE travel_posts
		SET is_favourite = $3
		WHERE post_id = $1 AND user_id = $2
		RETURNING ` + postColumns

	var post models.TravelPostDB
	err := r.db.GetContext(ctx, &post, query, postID, userID, isFavourite)

	logger.Log.Infow("post favourite update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{postID, userID, isFavourite},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete removes an owned post and returns the deleted row so callers
// can release the referenced image, or nil if nothing matched.
func (r *PostWriteRepository) Delete(ctx context.Context, postID, userID uuid.UUID) (*models.TravelPostDB, error) {
	const query = `
		DELETE FROM travel_posts
		WHERE post_id = $1 AND user_id = $2
		RETURNING ` + postColumns

	var post models.TravelPostDB
	err := r.db.GetContext(ctx, &post, query, postID, userID)

	logger.Log.Infow("post delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{postID, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// PostReadRepository handles travel post read operations.
type PostReadRepository struct {
	db *sqlx.DB
}

func NewPostReadRepository(db *sqlx.DB) *PostReadRepository {
	return &PostReadRepository{db: db}
}

// GetByID returns an owned post, or nil if no post matches the id and owner.
func (r *PostReadRepository) GetByID(ctx context.Context, postID, userID uuid.UUID) (*models.TravelPostDB, error) {
	const query = `
		SELECT ` + postColumns + `
		FROM travel_posts
		WHERE post_id = $1 AND user_id = $2
		LIMIT 1
	`

	var post models.TravelPostDB
	err := r.db.GetContext(ctx, &post, query, postID, userID)

	logger.Log.Infow("post query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{postID, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ListByUserID returns all posts of a user, favourites first.
func (r *PostReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.TravelPostDB, error) {
	const query = `
		SELECT ` + postColumns + `
		FROM travel_posts
		WHERE user_id = $1
		ORDER BY is_favourite DESC, created_at DESC
	`

	posts := []models.TravelPostDB{}
	err := r.db.SelectContext(ctx, &posts, query, userID)

	logger.Log.Infow("post list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"count", len(posts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Search returns the user's posts whose title, story, or visited
// locations contain the query, case-insensitively, favourites first.
func (r *PostReadRepository) Search(ctx context.Context, userID uuid.UUID, search string) ([]models.TravelPostDB, error) {
	const query = `
		SELECT ` + postColumns + `
		FROM travel_posts
		WHERE user_id = $1
		  AND (title ILIKE $2 OR story ILIKE $2 OR visited_location::TEXT ILIKE $2)
		ORDER BY is_favourite DESC, created_at DESC
	`
	pattern := "%" + search + "%"

	posts := []models.TravelPostDB{}
	err := r.db.SelectContext(ctx, &posts, query, userID, pattern)

	logger.Log.Infow("post search",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, pattern},
		"count", len(posts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return posts, nil
}

// FilterByDateRange returns the user's posts whose visited date falls
// inside [start, end], favourites first. An inverted range matches nothing.
func (r *PostReadRepository) FilterByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.TravelPostDB, error) {
	const query = `
		SELECT ` + postColumns + `
		FROM travel_posts
		WHERE user_id = $1
		  AND visited_date BETWEEN $2 AND $3
		ORDER BY is_favourite DESC, created_at DESC
	`

	posts := []models.TravelPostDB{}
	err := r.db.SelectContext(ctx, &posts, query, userID, start, end)

	logger.Log.Infow("post filter",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, start, end},
		"count", len(posts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return posts, nil
}
