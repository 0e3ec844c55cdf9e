package sequence

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// Redis shares the counter between processes and survives restarts.
// The counter lives at "seq:<namespace>" and is advanced with INCR.
type Redis struct {
	rdb         redis.UniversalClient
	ns          string
	closeClient bool
}

var _ Sequence = (*Redis)(nil)

// NewRedis creates a Redis-backed sequence. namespace should match the
// phrasebook namespace. Set closeClient only if the sequence owns client.
func NewRedis(client redis.UniversalClient, namespace string, closeClient bool) *Redis {
	return &Redis{rdb: client, ns: namespace, closeClient: closeClient}
}

func (s *Redis) key() string { return "seq:" + s.ns }

func (s *Redis) Next(ctx context.Context) (uint32, error) {
	v, err := s.rdb.Incr(ctx, s.key()).Result()
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("redis seq: negative counter %d", v)
	}
	return idFor(uint64(v))
}

// Issued returns the raw counter; a missing key means nothing was issued.
func (s *Redis) Issued(ctx context.Context) (uint64, error) {
	res, err := s.rdb.Get(ctx, s.key()).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	u, err := strconv.ParseUint(res, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("redis seq parse: %w", err)
	}
	return min(u, maxIssued), nil
}

func (s *Redis) Close(context.Context) error {
	if s.closeClient {
		if err := s.rdb.Close(); err != nil && !errors.Is(err, redis.ErrClosed) {
			return err
		}
	}
	return nil
}
