package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"frontdesk/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

var ErrQueueEmpty = errors.New("queue is empty")

// Lua script for calling the next ticket: pops the queue head and
// records it as now-serving in one atomic step, so two desks can never
// call the same ticket.
const luaCallNext = `
-- KEYS[1] = waiting queue (sorted set)
-- KEYS[2] = now serving key
-- ARGV[1] = ttl seconds
local popped = redis.call("ZPOPMIN", KEYS[1])
if #popped == 0 then
    return false
end
local ticket = popped[1]
redis.call("SET", KEYS[2], ticket, "EX", tonumber(ARGV[1]))
return ticket
`

var callNextScript = redis.NewScript(luaCallNext)

// Config contains queue behaviour settings
type Config struct {
	// SnapshotMax caps the number of ticket codes in a Snapshot
	SnapshotMax int
	// TTL is applied to queue keys so abandoned locations expire
	TTL time.Duration
}

type Service interface {
	Join(ctx context.Context, locationID, ticketCode string) (position int, err error)
	Leave(ctx context.Context, locationID, ticketCode string) error
	Status(ctx context.Context, locationID, ticketCode string) (*Snapshot, error)
	CallNext(ctx context.Context, locationID string) (string, error)
	NowServing(ctx context.Context, locationID string) (string, error)
	Length(ctx context.Context, locationID string) (int64, error)
	PreloadScripts(ctx context.Context) error
}

type service struct {
	redis  *redis.Client
	config Config
}

func NewService(redisClient *redis.Client, config Config) Service {
	if config.SnapshotMax <= 0 {
		config.SnapshotMax = 50
	}
	if config.TTL <= 0 {
		config.TTL = 24 * time.Hour
	}
	return &service{
		redis:  redisClient,
		config: config,
	}
}

// PreloadScripts loads the Lua scripts so later calls hit EVALSHA
func (s *service) PreloadScripts(ctx context.Context) error {
	if err := callNextScript.Load(ctx, s.redis).Err(); err != nil {
		return fmt.Errorf("failed to preload call-next script: %w", err)
	}
	return nil
}

func (s *service) Join(ctx context.Context, locationID, ticketCode string) (int, error) {
	key := WaitingKey(locationID)

	// NX keeps the original position if the same ticket joins twice
	err := s.redis.ZAddNX(ctx, key, redis.Z{
		Score:  float64(time.Now().UnixNano()),
		Member: ticketCode,
	}).Err()
	if err != nil {
		metrics.TrackQueueOperation("join", locationID, "error")
		return 0, fmt.Errorf("failed to join queue: %w", err)
	}

	s.redis.Expire(ctx, key, s.config.TTL)

	rank, err := s.redis.ZRank(ctx, key, ticketCode).Result()
	if err != nil {
		metrics.TrackQueueOperation("join", locationID, "error")
		return 0, fmt.Errorf("failed to read queue position: %w", err)
	}

	metrics.TrackQueueOperation("join", locationID, "success")
	return int(rank) + 1, nil
}

func (s *service) Leave(ctx context.Context, locationID, ticketCode string) error {
	if err := s.redis.ZRem(ctx, WaitingKey(locationID), ticketCode).Err(); err != nil {
		metrics.TrackQueueOperation("leave", locationID, "error")
		return fmt.Errorf("failed to leave queue: %w", err)
	}
	metrics.TrackQueueOperation("leave", locationID, "success")
	return nil
}

// Status reports the queue as seen by one ticket. A ticket that is not
// queued gets the full queue length as TotalAhead, so the caller can
// still render a meaningful count.
func (s *service) Status(ctx context.Context, locationID, ticketCode string) (*Snapshot, error) {
	key := WaitingKey(locationID)

	nowServing, err := s.redis.Get(ctx, NowServingKey(locationID)).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to read now-serving: %w", err)
	}

	rank, err := s.redis.ZRank(ctx, key, ticketCode).Result()
	if err == redis.Nil {
		length, lenErr := s.redis.ZCard(ctx, key).Result()
		if lenErr != nil {
			return nil, fmt.Errorf("failed to read queue length: %w", lenErr)
		}
		return &Snapshot{
			NowServing: nowServing,
			TotalAhead: int(length),
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read queue position: %w", err)
	}

	// Include the waiting tickets up to and including the caller
	end := rank
	if end >= int64(s.config.SnapshotMax) {
		end = int64(s.config.SnapshotMax) - 1
	}
	waiting, err := s.redis.ZRange(ctx, key, 0, end).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read queue entries: %w", err)
	}

	return &Snapshot{
		Waiting:    waiting,
		NowServing: nowServing,
		TotalAhead: int(rank),
	}, nil
}

func (s *service) CallNext(ctx context.Context, locationID string) (string, error) {
	keys := []string{WaitingKey(locationID), NowServingKey(locationID)}
	ttlSeconds := int(s.config.TTL.Seconds())

	result, err := callNextScript.Run(ctx, s.redis, keys, ttlSeconds).Result()
	if err == redis.Nil {
		return "", ErrQueueEmpty
	}
	if err != nil {
		metrics.TrackQueueOperation("call_next", locationID, "error")
		return "", fmt.Errorf("failed to call next ticket: %w", err)
	}

	ticket, ok := result.(string)
	if !ok {
		metrics.TrackQueueOperation("call_next", locationID, "error")
		return "", fmt.Errorf("unexpected call-next reply type %T", result)
	}

	metrics.TrackQueueOperation("call_next", locationID, "success")
	return ticket, nil
}

func (s *service) NowServing(ctx context.Context, locationID string) (string, error) {
	ticket, err := s.redis.Get(ctx, NowServingKey(locationID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read now-serving: %w", err)
	}
	return ticket, nil
}

func (s *service) Length(ctx context.Context, locationID string) (int64, error) {
	length, err := s.redis.ZCard(ctx, WaitingKey(locationID)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read queue length: %w", err)
	}
	return length, nil
}
