package mysql

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return gormDB, mock
}

func TestCounterAdjust_Increment(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCounterRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `article` SET `likes_count`=likes_count + ?")).
		WithArgs(int64(1), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Adjust(context.Background(), domain.CounterEntityArticle, 42, domain.CounterLikes, 1)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCounterAdjust_GuardedDecrement(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCounterRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `user` SET `followers_count`=followers_count + ?")).
		WithArgs(int64(-1), int64(7), int64(-1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Adjust(context.Background(), domain.CounterEntityUser, 7, domain.CounterFollowers, -1)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A decrement that would go negative matches no row. The row still exists,
// so the counter is clamped to zero instead of failing the caller.
func TestCounterAdjust_DecrementClampsToZero(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCounterRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `comment` SET `likes_count`=likes_count + ?")).
		WithArgs(int64(-3), int64(5), int64(-3)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `comment` WHERE id = ?")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `comment` SET `likes_count`=?")).
		WithArgs(int64(0), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Adjust(context.Background(), domain.CounterEntityComment, 5, domain.CounterLikes, -3)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCounterAdjust_RowGone(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCounterRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `article` SET `likes_count`=likes_count + ?")).
		WithArgs(int64(-1), int64(42), int64(-1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `article` WHERE id = ?")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

	err := repo.Adjust(context.Background(), domain.CounterEntityArticle, 42, domain.CounterLikes, -1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCounterAdjust_UnknownColumn(t *testing.T) {
	db, _ := setupMockDB(t)
	repo := NewCounterRepository(db)

	err := repo.Adjust(context.Background(), domain.CounterEntityComment, 1, domain.CounterFollowers, 1)
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestRecomputeUserFollowCounts_EmptyBatch(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCounterRepository(db)

	err := repo.RecomputeUserFollowCounts(context.Background(), nil)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
