// Package logger provides a pipeline option logging runs and jobs with zap.
package logger

import (
	"time"

	"go.uber.org/zap"

	"github.com/askiada/go-toolbox/pkg/pipeline/model"
)

type pipelineLogger struct {
	log *zap.Logger
}

func (pl *pipelineLogger) New() error {
	return nil
}

func (pl *pipelineLogger) BeforeRun(run *model.RunInfo) error {
	pl.log.Debug("Starting run",
		zap.String("run", run.ID),
		zap.String("mode", string(run.Mode)),
		zap.Int("jobs", len(run.Jobs)))

	return nil
}

func (pl *pipelineLogger) OnJobStart(run *model.RunInfo, job model.JobInfo) error {
	pl.log.Debug("Starting job",
		zap.String("run", run.ID),
		zap.String("job", job.Name),
		zap.Int("index", job.Index))

	return nil
}

func (pl *pipelineLogger) OnJobEnd(run *model.RunInfo, job model.JobInfo, elapsed time.Duration, jobErr error) error {
	fields := []zap.Field{
		zap.String("run", run.ID),
		zap.String("job", job.Name),
		zap.Int("index", job.Index),
		zap.Duration("elapsed", elapsed),
	}

	if jobErr != nil {
		pl.log.Warn("Job failed", append(fields, zap.Error(jobErr))...)

		return nil
	}

	pl.log.Debug("Job done", fields...)

	return nil
}

func (pl *pipelineLogger) AfterRun(run *model.RunInfo, elapsed time.Duration, runErr error) error {
	fields := []zap.Field{
		zap.String("run", run.ID),
		zap.String("mode", string(run.Mode)),
		zap.Duration("elapsed", elapsed),
	}

	if runErr != nil {
		pl.log.Error("Run failed", append(fields, zap.Error(runErr))...)

		return nil
	}

	pl.log.Info("Run done", fields...)

	return nil
}

func (pl *pipelineLogger) Finish() error {
	// Sync returns ENOTTY or EINVAL when the logger writes to a terminal.
	_ = pl.log.Sync()

	return nil
}

// PipelineLogger logs the start and the end of every run and every job. A nil logger logs nothing.
func PipelineLogger(log *zap.Logger) model.PipelineOption {
	if log == nil {
		log = zap.NewNop()
	}

	return &pipelineLogger{log: log.Named("pipeline")}
}
