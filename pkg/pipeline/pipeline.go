package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/go-toolbox/pkg/pipeline/model"
)

// Pipeline is an ordered list of jobs.
type Pipeline struct {
	jobs  []Job
	infos []model.JobInfo
	opts  []model.PipelineOption
}

// New creates a new pipeline. The order of jobs is the order used by Sequence.
func New(jobs []Job, opts ...model.PipelineOption) (*Pipeline, error) {
	pipe := &Pipeline{
		jobs:  make([]Job, len(jobs)),
		infos: make([]model.JobInfo, len(jobs)),
		opts:  opts,
	}

	for idx, job := range jobs {
		if job == nil {
			return nil, errors.Wrapf(ErrJobMustBeSet, "job %d", idx)
		}

		name := model.DefaultJobName(idx)
		if namer, ok := job.(Namer); ok && namer.Name() != "" {
			name = namer.Name()
		}

		pipe.jobs[idx] = job
		pipe.infos[idx] = model.JobInfo{Name: name, Index: idx}
	}

	for _, opt := range opts {
		err := opt.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply pipeline option")
		}
	}

	return pipe, nil
}

// Len returns the number of jobs.
func (p *Pipeline) Len() int {
	return len(p.jobs)
}

// Jobs returns the description of the jobs in list order.
func (p *Pipeline) Jobs() []model.JobInfo {
	res := make([]model.JobInfo, len(p.infos))
	copy(res, p.infos)

	return res
}

// Sequence runs the jobs one at a time in list order. A job is started only once the previous one returned.
// The first error stops the run, the remaining jobs are never started and the error is returned as is.
func (p *Pipeline) Sequence(ctx context.Context) error {
	return p.run(ctx, model.SequenceMode, p.sequence)
}

// Parallel starts all the jobs at once and waits for every one of them to return.
// When several jobs fail, the error of the first job to return is reported.
// A failing job does not cancel the others.
func (p *Pipeline) Parallel(ctx context.Context) error {
	return p.run(ctx, model.ParallelMode, p.parallel)
}

// Close runs the Finish function of every option.
func (p *Pipeline) Close() error {
	if p == nil {
		return ErrPipelineMustBeSet
	}

	for _, opt := range p.opts {
		err := opt.Finish()
		if err != nil {
			return errors.Wrap(err, "unable to finish pipeline option")
		}
	}

	return nil
}

func (p *Pipeline) run(ctx context.Context, mode model.Mode, runFn func(context.Context, *model.RunInfo) error) error {
	if p == nil {
		return ErrPipelineMustBeSet
	}

	run := &model.RunInfo{
		ID:   uuid.NewString(),
		Mode: mode,
		Jobs: p.Jobs(),
	}

	for _, opt := range p.opts {
		err := opt.BeforeRun(run)
		if err != nil {
			return errors.Wrap(err, "unable to run before run function")
		}
	}

	start := time.Now()
	runErr := runFn(ctx, run)
	elapsed := time.Since(start)

	for _, opt := range p.opts {
		err := opt.AfterRun(run, elapsed, runErr)
		if err != nil && runErr == nil {
			runErr = errors.Wrap(err, "unable to run after run function")
		}
	}

	return runErr
}

func (p *Pipeline) sequence(ctx context.Context, run *model.RunInfo) error {
	for idx := range p.jobs {
		// a cancelled context stops the sequence before the next job starts
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := p.runJob(ctx, run, idx)
		if err != nil {
			return err
		}
	}

	return nil
}

func (p *Pipeline) parallel(ctx context.Context, run *model.RunInfo) error {
	// errgroup.Group without context: siblings of a failing job keep running,
	// Wait returns once all of them returned.
	var errGrp errgroup.Group

	for idx := range p.jobs {
		localIdx := idx

		errGrp.Go(func() error {
			return p.runJob(ctx, run, localIdx)
		})
	}

	return errGrp.Wait()
}

func (p *Pipeline) runJob(ctx context.Context, run *model.RunInfo, idx int) error {
	info := p.infos[idx]

	for _, opt := range p.opts {
		err := opt.OnJobStart(run, info)
		if err != nil {
			return errors.Wrapf(err, "unable to run job start function for %s", info.Name)
		}
	}

	start := time.Now()
	jobErr := p.jobs[idx].Run(ctx)
	elapsed := time.Since(start)

	var optErr error

	for _, opt := range p.opts {
		err := opt.OnJobEnd(run, info, elapsed, jobErr)
		if err != nil && optErr == nil {
			optErr = errors.Wrapf(err, "unable to run job end function for %s", info.Name)
		}
	}

	if jobErr != nil {
		return jobErr
	}

	return optErr
}
