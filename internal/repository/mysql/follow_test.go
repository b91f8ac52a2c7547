package mysql

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
)

func TestFollowStore(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFollowRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `follow`")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.Store(context.Background(), &domain.Follow{FollowerID: 1, AuthorID: 2})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The composite unique index rejecting the insert means a concurrent toggle
// already created the edge. The repository surfaces that as ErrConflict so
// the caller can re-read instead of failing.
func TestFollowStore_DuplicateEdge(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFollowRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `follow`")).
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry '1-2' for key 'idx_follower_author'"})
	mock.ExpectRollback()

	err := repo.Store(context.Background(), &domain.Follow{FollowerID: 1, AuthorID: 2})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowDelete_ReportsWhetherEdgeExisted(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFollowRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `follow` WHERE follower_id = ? AND author_id = ?")).
		WithArgs(int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	removed, err := repo.Delete(context.Background(), 1, 2)
	assert.NoError(t, err)
	assert.True(t, removed)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `follow` WHERE follower_id = ? AND author_id = ?")).
		WithArgs(int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	removed, err = repo.Delete(context.Background(), 1, 2)
	assert.NoError(t, err)
	assert.False(t, removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowExists(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFollowRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `follow` WHERE follower_id = ? AND author_id = ?")).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	exists, err := repo.Exists(context.Background(), 1, 2)
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowingIDs(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFollowRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT `author_id` FROM `follow` WHERE follower_id = ?")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"author_id"}).AddRow(2).AddRow(3))

	ids, err := repo.FollowingIDs(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
