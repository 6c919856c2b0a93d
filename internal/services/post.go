package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/nomadlog/travel-journal/internal/logger"
	"github.com/nomadlog/travel-journal/internal/models"
)

// Error variables
var (
	ErrPostNotFound        = errors.New("travel story not found")
	ErrSearchQueryRequired = errors.New("query is required")
)

// PostReader defines read operations over travel posts, always scoped
// to the owning user.
type PostReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.TravelPostDB, error)
	Search(ctx context.Context, userID uuid.UUID, search string) ([]models.TravelPostDB, error)
	FilterByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.TravelPostDB, error)
}

// PostWriter defines write operations over travel posts, always scoped
// to the owning user.
type PostWriter interface {
	Save(ctx context.Context, userID uuid.UUID, title, story string, visitedLocation models.Locations, imageURL string, visitedDate time.Time) (*models.TravelPostDB, error)
	Update(ctx context.Context, postID, userID uuid.UUID, title, story string, visitedLocation models.Locations, imageURL string, visitedDate time.Time) (*models.TravelPostDB, error)
	SetFavourite(ctx context.Context, postID, userID uuid.UUID, isFavourite bool) (*models.TravelPostDB, error)
	Delete(ctx context.Context, postID, userID uuid.UUID) (*models.TravelPostDB, error)
}

// ImageRemover deletes stored image files referenced by posts.
type ImageRemover interface {
	Delete(urlOrName string) error
}

// PostService handles owner-scoped travel post operations.
type PostService struct {
	reader         PostReader
	writer         PostWriter
	images         ImageRemover
	placeholderURL string
}

// NewPostService creates a new PostService instance. placeholderURL is
// substituted when an edit clears the image.
func NewPostService(reader PostReader, writer PostWriter, images ImageRemover, placeholderURL string) *PostService {
	return &PostService{
		reader:         reader,
		writer:         writer,
		images:         images,
		placeholderURL: placeholderURL,
	}
}

// AddPost persists a new post for the caller. Every field is required;
// validation failure stops the request before anything is written.
func (svc *PostService) AddPost(ctx context.Context, userID uuid.UUID, title, story string, visitedLocation models.Locations, imageURL string, visitedDate time.Time) (*models.TravelPostDB, error) {
	if title == "" || story == "" || len(visitedLocation) == 0 || imageURL == "" || visitedDate.IsZero() {
		return nil, ErrAllFieldsRequired
	}

	post, err := svc.writer.Save(ctx, userID, title, story, visitedLocation, imageURL, visitedDate)
	if err != nil {
		logger.Log.Errorw("failed to save post", "userID", userID, "err", err)
		return nil, err
	}
	return post, nil
}

// ListPosts returns all posts owned by the caller, favourites first.
func (svc *PostService) ListPosts(ctx context.Context, userID uuid.UUID) ([]models.TravelPostDB, error) {
	posts, err := svc.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list posts", "userID", userID, "err", err)
		return nil, err
	}
	return posts, nil
}

// EditPost overwrites the editable fields of an owned post. The image
// URL is the only optional field; when empty the placeholder is stored
// instead. The favourite flag is left untouched.
func (svc *PostService) EditPost(ctx context.Context, postID, userID uuid.UUID, title, story string, visitedLocation models.Locations, imageURL string, visitedDate time.Time) (*models.TravelPostDB, error) {
	if title == "" || story == "" || len(visitedLocation) == 0 || visitedDate.IsZero() {
		return nil, ErrAllFieldsRequired
	}
	if imageURL == "" {
		imageURL = svc.placeholderURL
	}

	post, err := svc.writer.Update(ctx, postID, userID, title, story, visitedLocation, imageURL, visitedDate)
	if err != nil {
		logger.Log.Errorw("failed to update post", "postID", postID, "userID", userID, "err", err)
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// DeletePost removes an owned post, then deletes the referenced image
// file best-effort. The record deletion stands even when the file
// cannot be removed.
func (svc *PostService) DeletePost(ctx context.Context, postID, userID uuid.UUID) error {
	post, err := svc.writer.Delete(ctx, postID, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete post", "postID", postID, "userID", userID, "err", err)
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	if err := svc.images.Delete(post.ImageURL); err != nil {
		logger.Log.Errorw("failed to delete image file", "imageUrl", post.ImageURL, "err", err)
	}
	return nil
}

// SetFavourite flips the favourite flag on an owned post.
func (svc *PostService) SetFavourite(ctx context.Context, postID, userID uuid.UUID, isFavourite bool) (*models.TravelPostDB, error) {
	post, err := svc.writer.SetFavourite(ctx, postID, userID, isFavourite)
	if err != nil {
		logger.Log.Errorw("failed to update favourite", "postID", postID, "userID", userID, "err", err)
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// Search matches the caller's posts against a non-empty query,
// case-insensitively over title, story and visited locations.
func (svc *PostService) Search(ctx context.Context, userID uuid.UUID, query string) ([]models.TravelPostDB, error) {
	if query == "" {
		return nil, ErrSearchQueryRequired
	}

	posts, err := svc.reader.Search(ctx, userID, query)
	if err != nil {
		logger.Log.Errorw("failed to search posts", "userID", userID, "query", query, "err", err)
		return nil, err
	}
	return posts, nil
}

// FilterByDateRange returns the caller's posts visited within the
// inclusive range. An inverted range yields an empty list.
func (svc *PostService) FilterByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.TravelPostDB, error) {
	posts, err := svc.reader.FilterByDateRange(ctx, userID, start, end)
	if err != nil {
		logger.Log.Errorw("failed to filter posts", "userID", userID, "err", err)
		return nil, err
	}
	return posts, nil
}
