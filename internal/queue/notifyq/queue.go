// Package notifyq is the Redis-backed notification job queue: the API
// pushes jobs, cmd/worker pops them.
package notifyq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lernexhq/lernex/internal/jobs"
)

const defaultKey = "lernex:notifications:jobs"

// ErrEmpty is returned by Dequeue when no job arrived within the wait
// window.
var ErrEmpty = errors.New("queue empty")

type Queue struct {
	rdb *redis.Client
	key string
}

func New(rdb *redis.Client) *Queue {
	return &Queue{rdb: rdb, key: defaultKey}
}

// Enqueue pushes a job onto the queue. FIFO via LPUSH + BRPOP.
func (q *Queue) Enqueue(ctx context.Context, j jobs.Job) error {
	if !j.Type.IsValid() {
		return jobs.ErrInvalidJobType
	}

	b, err := json.Marshal(j)

	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}

	return q.rdb.LPush(ctx, q.key, b).Err()
}

// Dequeue blocks up to wait for the next job. ErrEmpty on timeout.
func (q *Queue) Dequeue(ctx context.Context, wait time.Duration) (jobs.Job, error) {
	res, err := q.rdb.BRPop(ctx, wait, q.key).Result()

	if err != nil {
		if errors.Is(err, redis.Nil) {
			return jobs.Job{}, ErrEmpty
		}
		return jobs.Job{}, err
	}

	// BRPOP returns [key, value].
	if len(res) != 2 {
		return jobs.Job{}, fmt.Errorf("unexpected brpop reply of length %d", len(res))
	}

	var j jobs.Job

	if err := json.Unmarshal([]byte(res[1]), &j); err != nil {
		return jobs.Job{}, fmt.Errorf("unmarshal job: %w", err)
	}

	return j, nil
}
