package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
)

const (
	KeyFollowingSet = "engagement:user:%d:following"
	KeyLikedSet     = "engagement:user:%d:liked:%s"

	// sentinelMember keeps empty sets representable; no real entity has ID 0
	sentinelMember = 0

	// truncatedMember marks a set loaded with only the most recent likes.
	// While present, "not a member" is not proof of absence.
	truncatedMember = -1

	setTTLSeconds = 1800
)

type engagementCache struct {
	client *redis.Client
}

var _ domain.EngagementCache = (*engagementCache)(nil)

func NewEngagementCache(client *redis.Client) *engagementCache {
	return &engagementCache{
		client,
	}
}

// scriptIsMember returns -1 when the set is not cached, -2 when the member
// is absent from a truncated set, otherwise the SISMEMBER result,
// refreshing the TTL on the way.
var scriptIsMember = redis.NewScript(`
	if redis.call('EXISTS', KEYS[1]) == 0 then
		return -1
	end
	redis.call('EXPIRE', KEYS[1], ARGV[2])
	if redis.call('SISMEMBER', KEYS[1], ARGV[1]) == 1 then
		return 1
	end
	if redis.call('SISMEMBER', KEYS[1], ARGV[3]) == 1 then
		return -2
	end
	return 0
`)

var scriptAddMember = redis.NewScript(`
	if redis.call('EXISTS', KEYS[1]) == 0 then
		return -1
	end
	redis.call('SADD', KEYS[1], ARGV[1])
	redis.call('EXPIRE', KEYS[1], ARGV[2])
	return 1
`)

var scriptRemoveMember = redis.NewScript(`
	if redis.call('EXISTS', KEYS[1]) == 0 then
		return -1
	end
	redis.call('SREM', KEYS[1], ARGV[1])
	redis.call('EXPIRE', KEYS[1], ARGV[2])
	return 1
`)

func (c *engagementCache) isMember(ctx context.Context, key string, member int64) (bool, error) {
	res, err := scriptIsMember.Run(ctx, c.client, []string{key}, member, setTTLSeconds, truncatedMember).Int()
	if err != nil {
		return false, err
	}
	switch res {
	case -1:
		return false, domain.ErrCacheMiss
	case -2:
		return false, domain.ErrCacheIncomplete
	case 0:
		return false, nil
	default:
		return true, nil
	}
}

func (c *engagementCache) mutate(ctx context.Context, script *redis.Script, key string, member int64) error {
	res, err := script.Run(ctx, c.client, []string{key}, member, setTTLSeconds).Int()
	if err != nil {
		return err
	}
	if res == -1 {
		return domain.ErrCacheMiss
	}
	return nil
}

func (c *engagementCache) loadSet(ctx context.Context, key string, members []int64, complete bool) error {
	vals := make([]any, 0, len(members)+2)
	vals = append(vals, sentinelMember)
	if !complete {
		vals = append(vals, truncatedMember)
	}
	for _, m := range members {
		vals = append(vals, m)
	}

	pipe := c.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SAdd(ctx, key, vals...)
	pipe.Expire(ctx, key, setTTLSeconds*time.Second)
	_, err := pipe.Exec(ctx)
	return err
}

func followingKey(followerID int64) string {
	return fmt.Sprintf(KeyFollowingSet, followerID)
}

func likedKey(userID int64, target domain.LikeTarget) string {
	return fmt.Sprintf(KeyLikedSet, userID, string(target))
}

func (c *engagementCache) IsFollowing(ctx context.Context, followerID, authorID int64) (bool, error) {
	return c.isMember(ctx, followingKey(followerID), authorID)
}

func (c *engagementCache) AddFollowing(ctx context.Context, followerID, authorID int64) error {
	return c.mutate(ctx, scriptAddMember, followingKey(followerID), authorID)
}

func (c *engagementCache) RemoveFollowing(ctx context.Context, followerID, authorID int64) error {
	return c.mutate(ctx, scriptRemoveMember, followingKey(followerID), authorID)
}

func (c *engagementCache) SetFollowing(ctx context.Context, followerID int64, authorIDs []int64) error {
	return c.loadSet(ctx, followingKey(followerID), authorIDs, true)
}

func (c *engagementCache) IsLiked(ctx context.Context, userID, targetID int64, target domain.LikeTarget) (bool, error) {
	return c.isMember(ctx, likedKey(userID, target), targetID)
}

func (c *engagementCache) AddLiked(ctx context.Context, userID, targetID int64, target domain.LikeTarget) error {
	return c.mutate(ctx, scriptAddMember, likedKey(userID, target), targetID)
}

func (c *engagementCache) RemoveLiked(ctx context.Context, userID, targetID int64, target domain.LikeTarget) error {
	return c.mutate(ctx, scriptRemoveMember, likedKey(userID, target), targetID)
}

func (c *engagementCache) SetLiked(ctx context.Context, userID int64, target domain.LikeTarget, targetIDs []int64, complete bool) error {
	return c.loadSet(ctx, likedKey(userID, target), targetIDs, complete)
}

func (c *engagementCache) InvalidateUser(ctx context.Context, userID int64) error {
	return c.client.Del(ctx,
		followingKey(userID),
		likedKey(userID, domain.LikeTargetArticle),
		likedKey(userID, domain.LikeTargetComment),
	).Err()
}
