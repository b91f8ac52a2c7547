package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
	"github.com/vishnukothappllii/Blogging-Platform/domain/mocks"
)

type reconcilerMocks struct {
	counterRepo *mocks.CounterRepository
	userRepo    *mocks.UserRepository
	articleRepo *mocks.ArticleRepository
	commentRepo *mocks.CommentRepository
}

func newReconciler(interval time.Duration) (*counterReconciler, reconcilerMocks) {
	m := reconcilerMocks{
		counterRepo: new(mocks.CounterRepository),
		userRepo:    new(mocks.UserRepository),
		articleRepo: new(mocks.ArticleRepository),
		commentRepo: new(mocks.CommentRepository),
	}
	w := NewCounterReconciler(m.counterRepo, m.userRepo, m.articleRepo, m.commentRepo, interval)
	return w, m
}

func TestRunOnce_RecomputesEveryFamily(t *testing.T) {
	w, m := newReconciler(time.Hour)

	m.userRepo.On("FetchIDs", mock.Anything, int64(0), int64(scanBatchSize)).Return([]int64{1, 2}, nil)
	m.counterRepo.On("RecomputeUserFollowCounts", mock.Anything, []int64{1, 2}).Return(nil)
	m.articleRepo.On("FetchIDs", mock.Anything, int64(0), int64(scanBatchSize)).Return([]int64{50}, nil)
	m.counterRepo.On("RecomputeArticleEngagement", mock.Anything, []int64{50}).Return(nil)
	m.commentRepo.On("FetchIDs", mock.Anything, int64(0), int64(scanBatchSize)).Return([]int64{}, nil)

	w.runOnce(context.Background())

	m.counterRepo.AssertExpectations(t)
	m.counterRepo.AssertNotCalled(t, "RecomputeCommentLikes", mock.Anything, mock.Anything)
}

// A full batch means more rows may follow; the scan advances the cursor to
// the last seen ID and keeps going until a short batch.
func TestScan_PagesWithCursor(t *testing.T) {
	w, m := newReconciler(time.Hour)

	first := make([]int64, scanBatchSize)
	for i := range first {
		first[i] = int64(i + 1)
	}
	m.userRepo.On("FetchIDs", mock.Anything, int64(0), int64(scanBatchSize)).Return(first, nil).Once()
	m.userRepo.On("FetchIDs", mock.Anything, int64(scanBatchSize), int64(scanBatchSize)).Return([]int64{501}, nil).Once()
	m.counterRepo.On("RecomputeUserFollowCounts", mock.Anything, first).Return(nil).Once()
	m.counterRepo.On("RecomputeUserFollowCounts", mock.Anything, []int64{501}).Return(nil).Once()

	err := w.scan(context.Background(), m.userRepo.FetchIDs, m.counterRepo.RecomputeUserFollowCounts)
	require.NoError(t, err)
	m.userRepo.AssertExpectations(t)
	m.counterRepo.AssertExpectations(t)
}

func TestScan_StopsOnRecomputeFailure(t *testing.T) {
	w, m := newReconciler(time.Hour)

	m.userRepo.On("FetchIDs", mock.Anything, int64(0), int64(scanBatchSize)).Return([]int64{1}, nil)
	m.counterRepo.On("RecomputeUserFollowCounts", mock.Anything, []int64{1}).Return(domain.ErrStorageUnavailable)

	err := w.scan(context.Background(), m.userRepo.FetchIDs, m.counterRepo.RecomputeUserFollowCounts)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestStart_TriggerRunsAPass(t *testing.T) {
	w, m := newReconciler(time.Hour)

	done := make(chan struct{})
	m.userRepo.On("FetchIDs", mock.Anything, int64(0), int64(scanBatchSize)).Return([]int64{}, nil)
	m.articleRepo.On("FetchIDs", mock.Anything, int64(0), int64(scanBatchSize)).Return([]int64{}, nil)
	m.commentRepo.On("FetchIDs", mock.Anything, int64(0), int64(scanBatchSize)).Return([]int64{}, nil).Run(func(mock.Arguments) {
		select {
		case <-done:
		default:
			close(done)
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(stopped)
	}()

	w.Trigger()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("triggered pass never ran")
	}

	cancel()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("reconciler did not shut down")
	}
}

func TestTrigger_CoalescesWhilePending(t *testing.T) {
	w, _ := newReconciler(time.Hour)

	// both requests must fit without blocking; the second is absorbed
	w.Trigger()
	w.Trigger()

	assert.Len(t, w.trigger, 1)
}
