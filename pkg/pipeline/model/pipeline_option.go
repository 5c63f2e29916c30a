package model

import "time"

// PipelineOption defines the interface for pipeline options.
//
// Runs of the same pipeline can overlap, so implementations must be safe for concurrent use.
type PipelineOption interface {
	// New initialises the pipeline option.
	New() error

	pipelineRunOption
	pipelineJobOption

	// Finish runs when the pipeline is closed.
	Finish() error
}

// pipelineRunOption defines the interface for run options at the pipeline level.
type pipelineRunOption interface {
	// BeforeRun runs before the first job of a run is started.
	BeforeRun(run *RunInfo) error
	// AfterRun runs once every started job of the run has returned.
	AfterRun(run *RunInfo, elapsed time.Duration, runErr error) error
}

// pipelineJobOption defines the interface for job options at the pipeline level.
type pipelineJobOption interface {
	// OnJobStart runs right before the job is started.
	OnJobStart(run *RunInfo, job JobInfo) error
	// OnJobEnd runs everytime a job returns, jobErr is the error returned by the job.
	OnJobEnd(run *RunInfo, job JobInfo, elapsed time.Duration, jobErr error) error
}
