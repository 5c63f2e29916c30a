package pipeline_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/askiada/go-toolbox/pkg/pipeline"
)

// dataPool records the name of every job when it completes.
type dataPool struct {
	mu   sync.Mutex
	data []string
}

func (dp *dataPool) add(value string) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.data = append(dp.data, value)
}

func (dp *dataPool) get() []string {
	dp.mu.Lock()
	defer dp.mu.Unlock()

	res := make([]string, len(dp.data))
	copy(res, dp.data)

	return res
}

// delayJob waits for delay, records its name and returns err.
type delayJob struct {
	pool  *dataPool
	name  string
	delay time.Duration
	err   error
}

func (dj *delayJob) Name() string {
	return dj.name
}

func (dj *delayJob) Run(ctx context.Context) error {
	time.Sleep(dj.delay)
	dj.pool.add(dj.name)

	return dj.err
}

func newDelayJob(pool *dataPool, name string, delay time.Duration) *delayJob {
	return &delayJob{pool: pool, name: name, delay: delay}
}

func createABCPipeline(t *testing.T, pool *dataPool) *pipeline.Pipeline {
	t.Helper()

	pipe, err := pipeline.New([]pipeline.Job{
		newDelayJob(pool, "A", 60*time.Millisecond),
		newDelayJob(pool, "B", 20*time.Millisecond),
		newDelayJob(pool, "C", 40*time.Millisecond),
	})
	if err != nil {
		t.Fatal(err)
	}

	return pipe
}
