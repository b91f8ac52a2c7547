package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
)

const scanBatchSize = 500

type counterReconciler struct {
	counterRepo domain.CounterRepository
	userRepo    domain.UserRepository
	articleRepo domain.ArticleRepository
	commentRepo domain.CommentRepository

	interval time.Duration
	trigger  chan struct{}
}

var _ domain.CounterReconciler = (*counterReconciler)(nil)

func NewCounterReconciler(
	counterRepo domain.CounterRepository,
	userRepo domain.UserRepository,
	articleRepo domain.ArticleRepository,
	commentRepo domain.CommentRepository,
	interval time.Duration,
) *counterReconciler {
	return &counterReconciler{
		counterRepo: counterRepo,
		userRepo:    userRepo,
		articleRepo: articleRepo,
		commentRepo: commentRepo,
		interval:    interval,
		trigger:     make(chan struct{}, 1),
	}
}

// Trigger requests an immediate pass. A pass already pending absorbs the
// request.
func (w *counterReconciler) Trigger() {
	select {
	case w.trigger <- struct{}{}:
	default:
	}
}

func (w *counterReconciler) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.runOnce(ctx)
		case <-w.trigger:
			w.runOnce(ctx)
		case <-ctx.Done():
			logrus.Info("shutting down counter reconciler")
			return
		}
	}
}

// runOnce recomputes every denormalized counter from the edge tables. Only
// the Start loop calls it, one pass at a time; triggers arriving mid-pass
// coalesce in the buffered channel.
func (w *counterReconciler) runOnce(ctx context.Context) {
	start := time.Now()

	if err := w.scan(ctx, w.userRepo.FetchIDs, w.counterRepo.RecomputeUserFollowCounts); err != nil {
		logrus.Errorf("failed to reconcile user follow counters: %v", err)
	}
	if err := w.scan(ctx, w.articleRepo.FetchIDs, w.counterRepo.RecomputeArticleEngagement); err != nil {
		logrus.Errorf("failed to reconcile article counters: %v", err)
	}
	if err := w.scan(ctx, w.commentRepo.FetchIDs, w.counterRepo.RecomputeCommentLikes); err != nil {
		logrus.Errorf("failed to reconcile comment counters: %v", err)
	}

	logrus.Infof("counter reconciliation pass done in %s", time.Since(start))
}

// scan walks all IDs in cursor batches and feeds each batch to recompute.
func (w *counterReconciler) scan(
	ctx context.Context,
	fetchIDs func(ctx context.Context, cursor, limit int64) ([]int64, error),
	recompute func(ctx context.Context, ids []int64) error,
) error {
	var cursor int64
	for {
		ids, err := fetchIDs(ctx, cursor, scanBatchSize)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := recompute(ctx, ids); err != nil {
			return err
		}
		cursor = ids[len(ids)-1]
		if len(ids) < scanBatchSize {
			return nil
		}
	}
}
