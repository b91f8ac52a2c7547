// Package userfill resolves account details for display lists. Every list
// the layer serves (articles, posts, comments, follower pages) carries
// denormalized.author/owner IDs that need the full account row before the
// response goes out.
package userfill

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
)

/*
* Details resolves the given accounts with errgroup, one goroutine per
* distinct ID, following the pipeline pattern from
* godoc: https://godoc.org/golang.org/x/sync/errgroup#ex-Group--Pipeline
* A missing account fails the whole resolution.
 */
func Details(ctx context.Context, repo domain.UserRepository, ids []int64) (map[int64]domain.User, error) {
	g, ctx := errgroup.WithContext(ctx)
	mapUsers := map[int64]domain.User{}
	for _, id := range ids {
		mapUsers[id] = domain.User{}
	}

	chanUser := make(chan domain.User)
	for userID := range mapUsers {
		userID := userID
		g.Go(func() error {
			res, err := repo.GetByID(ctx, userID)
			if err != nil {
				return err
			}
			chanUser <- res
			return nil
		})
	}

	go func() {
		defer close(chanUser)
		if err := g.Wait(); err != nil {
			logrus.Error(err)
		}
	}()

	for user := range chanUser {
		if user != (domain.User{}) {
			mapUsers[user.ID] = user
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return mapUsers, nil
}

// Existing resolves accounts in one batched read. IDs of since-deleted
// accounts are silently absent from the result.
func Existing(ctx context.Context, repo domain.UserRepository, ids []int64) (map[int64]domain.User, error) {
	distinct := make([]int64, 0, len(ids))
	seen := map[int64]bool{}
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			distinct = append(distinct, id)
		}
	}

	users, err := repo.GetByIDs(ctx, distinct)
	if err != nil {
		return nil, err
	}
	mapUsers := make(map[int64]domain.User, len(users))
	for i := range users {
		mapUsers[users[i].ID] = users[i]
	}
	return mapUsers, nil
}
