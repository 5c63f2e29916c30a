package pipeline

import (
	"context"
)

// Job is a unit of work run by a pipeline. Run returns once the work is complete.
type Job interface {
	Run(ctx context.Context) error
}

// JobFunc is an adapter to allow the use of ordinary functions as jobs.
type JobFunc func(ctx context.Context) error

// Run calls f(ctx).
func (f JobFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// Namer is implemented by jobs that carry their own name.
// The name is only used by pipeline options.
type Namer interface {
	Name() string
}

type namedJob struct {
	Job
	name string
}

func (nj *namedJob) Name() string {
	return nj.name
}

// NamedJob attaches a name to a job.
func NamedJob(name string, job Job) Job {
	if job == nil {
		return nil
	}

	return &namedJob{Job: job, name: name}
}
