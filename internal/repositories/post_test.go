package repositories

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomadlog/travel-journal/internal/models"
)

var postCols = []string{
	"post_id", "user_id", "title", "story", "visited_location",
	"image_url", "visited_date", "is_favourite", "created_at",
}

func postRow(postID, userID uuid.UUID, title string, favourite bool) []driver.Value {
	return []driver.Value{
		postID.String(), userID.String(), title, "a story", []byte(`["Paris"]`),
		"http://localhost:8000/uploads/1.jpg", time.Now(), favourite, time.Now(),
	}
}

func addPostRow(rows *sqlmock.Rows, values []driver.Value) *sqlmock.Rows {
	return rows.AddRow(values...)
}

func TestPostWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostWriteRepository(db)

	postID := uuid.New()
	userID := uuid.New()
	visited := time.Now()

	mock.ExpectQuery(`INSERT INTO travel_posts (.+) RETURNING (.+)`).
		WithArgs(userID, "Trip to Paris", "a story", sqlmock.AnyArg(), "http://localhost:8000/uploads/1.jpg", visited).
		WillReturnRows(addPostRow(sqlmock.NewRows(postCols), postRow(postID, userID, "Trip to Paris", false)))

	post, err := repo.Save(context.Background(), userID, "Trip to Paris", "a story",
		models.Locations{"Paris"}, "http://localhost:8000/uploads/1.jpg", visited)
	assert.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, postID, post.PostID)
	assert.Equal(t, models.Locations{"Paris"}, post.VisitedLocation)
	assert.False(t, post.IsFavourite)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostWriteRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostWriteRepository(db)

	postID := uuid.New()
	userID := uuid.New()
	visited := time.Now()

	mock.ExpectQuery(`UPDATE travel_posts SET (.+) WHERE post_id = \$1 AND user_id = \$2 RETURNING (.+)`).
		WithArgs(postID, userID, "New title", "new story", sqlmock.AnyArg(), "http://localhost:8000/uploads/2.jpg", visited).
		WillReturnRows(addPostRow(sqlmock.NewRows(postCols), postRow(postID, userID, "New title", false)))

	post, err := repo.Update(context.Background(), postID, userID, "New title", "new story",
		models.Locations{"Paris"}, "http://localhost:8000/uploads/2.jpg", visited)
	assert.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "New title", post.Title)
}

func TestPostWriteRepository_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostWriteRepository(db)

	mock.ExpectQuery(`UPDATE travel_posts`).
		WillReturnRows(sqlmock.NewRows(postCols))

	post, err := repo.Update(context.Background(), uuid.New(), uuid.New(), "t", "s",
		models.Locations{"x"}, "url", time.Now())
	assert.NoError(t, err)
	assert.Nil(t, post)
}

func TestPostWriteRepository_SetFavourite(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostWriteRepository(db)

	postID := uuid.New()
	userID := uuid.New()

	mock.ExpectQuery(`UPDATE travel_posts SET is_favourite = \$3`).
		WithArgs(postID, userID, true).
		WillReturnRows(addPostRow(sqlmock.NewRows(postCols), postRow(postID, userID, "Trip", true)))

	post, err := repo.SetFavourite(context.Background(), postID, userID, true)
	assert.NoError(t, err)
	require.NotNil(t, post)
	assert.True(t, post.IsFavourite)
}

func TestPostWriteRepository_SetFavourite_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostWriteRepository(db)

	mock.ExpectQuery(`UPDATE travel_posts SET is_favourite`).
		WillReturnRows(sqlmock.NewRows(postCols))

	post, err := repo.SetFavourite(context.Background(), uuid.New(), uuid.New(), true)
	assert.NoError(t, err)
	assert.Nil(t, post)
}

func TestPostWriteRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostWriteRepository(db)

	postID := uuid.New()
	userID := uuid.New()

	mock.ExpectQuery(`DELETE FROM travel_posts WHERE post_id = \$1 AND user_id = \$2 RETURNING (.+)`).
		WithArgs(postID, userID).
		WillReturnRows(addPostRow(sqlmock.NewRows(postCols), postRow(postID, userID, "Trip", false)))

	post, err := repo.Delete(context.Background(), postID, userID)
	assert.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "http://localhost:8000/uploads/1.jpg", post.ImageURL)
}

func TestPostWriteRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostWriteRepository(db)

	mock.ExpectQuery(`DELETE FROM travel_posts`).
		WillReturnRows(sqlmock.NewRows(postCols))

	post, err := repo.Delete(context.Background(), uuid.New(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, post)
}

func TestPostReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostReadRepository(db)

	postID := uuid.New()
	userID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM travel_posts WHERE post_id = \$1 AND user_id = \$2`).
		WithArgs(postID, userID).
		WillReturnRows(addPostRow(sqlmock.NewRows(postCols), postRow(postID, userID, "Trip", false)))

	post, err := repo.GetByID(context.Background(), postID, userID)
	assert.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, postID, post.PostID)
}

func TestPostReadRepository_ListByUserID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostReadRepository(db)

	userID := uuid.New()
	rows := sqlmock.NewRows(postCols)
	addPostRow(rows, postRow(uuid.New(), userID, "Favourite trip", true))
	addPostRow(rows, postRow(uuid.New(), userID, "Other trip", false))

	mock.ExpectQuery(`SELECT (.+) FROM travel_posts WHERE user_id = \$1 ORDER BY is_favourite DESC, created_at DESC`).
		WithArgs(userID).
		WillReturnRows(rows)

	posts, err := repo.ListByUserID(context.Background(), userID)
	assert.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "Favourite trip", posts[0].Title)
	assert.Equal(t, "Other trip", posts[1].Title)
}

func TestPostReadRepository_ListByUserID_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostReadRepository(db)

	userID := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM travel_posts WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(postCols))

	posts, err := repo.ListByUserID(context.Background(), userID)
	assert.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestPostReadRepository_Search(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostReadRepository(db)

	userID := uuid.New()
	rows := addPostRow(sqlmock.NewRows(postCols), postRow(uuid.New(), userID, "Trip to Paris", false))

	mock.ExpectQuery(`SELECT (.+) FROM travel_posts WHERE user_id = \$1 AND \(title ILIKE \$2 OR story ILIKE \$2 OR visited_location::TEXT ILIKE \$2\)`).
		WithArgs(userID, "%paris%").
		WillReturnRows(rows)

	posts, err := repo.Search(context.Background(), userID, "paris")
	assert.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Trip to Paris", posts[0].Title)
}

func TestPostReadRepository_FilterByDateRange(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostReadRepository(db)

	userID := uuid.New()
	start := time.Now().Add(-48 * time.Hour)
	end := time.Now()

	rows := addPostRow(sqlmock.NewRows(postCols), postRow(uuid.New(), userID, "Recent trip", false))

	mock.ExpectQuery(`SELECT (.+) FROM travel_posts WHERE user_id = \$1 AND visited_date BETWEEN \$2 AND \$3`).
		WithArgs(userID, start, end).
		WillReturnRows(rows)

	posts, err := repo.FilterByDateRange(context.Background(), userID, start, end)
	assert.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Recent trip", posts[0].Title)
}

func TestPostReadRepository_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostReadRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM travel_posts`).
		WillReturnError(errors.New("connection refused"))

	posts, err := repo.ListByUserID(context.Background(), uuid.New())
	assert.Error(t, err)
	assert.Nil(t, posts)
}
