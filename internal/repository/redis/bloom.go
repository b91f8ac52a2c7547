package redis

import (
	"context"
	"fmt"
	"hash/crc32"
	"hash/fnv"

	"github.com/redis/go-redis/v9"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
)

const KeyArticleBloom = "bloom:article:ids"

// articleBloomRepo keeps a bloom filter over article IDs so requests
// against absent articles can be refused without a database round trip.
type articleBloomRepo struct {
	client  *redis.Client
	bitSize uint64
}

var _ domain.BloomRepository = (*articleBloomRepo)(nil)

func NewArticleBloomRepo(client *redis.Client, bitSize uint64) *articleBloomRepo {
	return &articleBloomRepo{
		client:  client,
		bitSize: bitSize,
	}
}

func (r *articleBloomRepo) Add(ctx context.Context, id int64) error {
	pipe := r.client.Pipeline()
	for _, offset := range r.offsets(id) {
		pipe.SetBit(ctx, KeyArticleBloom, int64(offset), 1)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (r *articleBloomRepo) Exists(ctx context.Context, id int64) (bool, error) {
	pipe := r.client.Pipeline()
	for _, offset := range r.offsets(id) {
		pipe.GetBit(ctx, KeyArticleBloom, int64(offset))
	}
	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, err
	}

	for _, cmd := range cmds {
		val, err := cmd.(*redis.IntCmd).Result()
		if err != nil {
			return false, err
		}
		if val == 0 {
			return false, nil
		}
	}

	return true, nil
}

func (r *articleBloomRepo) BulkAdd(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	pipe := r.client.Pipeline()
	for _, id := range ids {
		for _, offset := range r.offsets(id) {
			pipe.SetBit(ctx, KeyArticleBloom, int64(offset), 1)
		}
	}

	_, err := pipe.Exec(ctx)
	return err
}

// offsets derives k=3 bit positions for the given ID.
func (r *articleBloomRepo) offsets(id int64) []uint64 {
	data := fmt.Appendf(nil, "%d", id)
	offsets := make([]uint64, 3)

	offsets[0] = uint64(crc32.ChecksumIEEE(data)) % r.bitSize

	h := fnv.New64()
	h.Write(data)
	offsets[1] = h.Sum64() % r.bitSize

	offsets[2] = (offsets[0] + offsets[1] + 0xABC) % r.bitSize

	return offsets
}
